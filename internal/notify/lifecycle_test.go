// internal/notify/lifecycle_test.go
package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babybook-core/internal/common/logger"
	"babybook-core/internal/models"
	"babybook-core/internal/records"
)

// fakeSource is a minimal in-memory RecordSource.
type fakeSource struct {
	baby     *models.Baby
	vaccines []models.VaccineRecord
	sleep    []models.SleepRecord
	growth   []models.GrowthMeasurement
}

func (f *fakeSource) CurrentBaby() (models.Baby, bool) {
	if f.baby == nil {
		return models.Baby{}, false
	}
	return *f.baby, true
}

func (f *fakeSource) Snapshot() records.Snapshot {
	return records.Snapshot{
		Vaccines: append([]models.VaccineRecord(nil), f.vaccines...),
		Sleep:    append([]models.SleepRecord(nil), f.sleep...),
		Growth:   append([]models.GrowthMeasurement(nil), f.growth...),
	}
}

func (f *fakeSource) Vaccines() []models.VaccineRecord {
	return append([]models.VaccineRecord(nil), f.vaccines...)
}

func (f *fakeSource) UpdateVaccine(_ context.Context, id string, updated models.VaccineRecord) (*models.VaccineRecord, error) {
	for i := range f.vaccines {
		if f.vaccines[i].ID == id {
			updated.ID = id
			f.vaccines[i] = updated
			out := f.vaccines[i]
			return &out, nil
		}
	}
	return nil, nil
}

type fakeOpener struct {
	saved  bool
	err    error
	opened []models.ActionTarget
}

func (f *fakeOpener) Open(_ context.Context, target models.ActionTarget) (bool, error) {
	f.opened = append(f.opened, target)
	return f.saved, f.err
}

func newTestLifecycle(t *testing.T, source *fakeSource, opener FormOpener) *Lifecycle {
	t.Helper()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	cat := stubCatalog{templates: map[models.TemplateType][]models.Template{
		models.TypeVaccine: {
			{ID: "vacina-bcg", Name: "BCG", Type: models.TypeVaccine, AgeRangeStart: 0},
		},
	}}
	engine := NewEngine(cat, testNotifConfig).WithClock(fixedClock(now))
	return NewLifecycle(engine, source, opener, logger.NewTestLogger(t))
}

func overdueSource() *fakeSource {
	// 40-day-old baby with a pending newborn vaccine and stale diaries:
	// refresh yields vaccine-pending, sleep-reminder, growth-reminder.
	return &fakeSource{
		baby: &models.Baby{ID: "b1", Name: "Aurora", BirthDate: "2026-07-19"},
		vaccines: []models.VaccineRecord{
			{ID: "v1", Name: "BCG", AgeRecommended: 0, Status: models.VaccineStatusPending},
		},
	}
}

func TestDismissAndClearAll(t *testing.T) {
	lc := newTestLifecycle(t, overdueSource(), &fakeOpener{})
	ctx := context.Background()

	items := lc.Refresh(ctx)
	require.Len(t, items, 3)

	assert.True(t, lc.Dismiss("sleep-reminder"))
	assert.False(t, lc.Dismiss("sleep-reminder"))
	assert.Equal(t, []string{"vaccine-pending", "growth-reminder"}, notifIDs(lc.Notifications("")))

	lc.ClearAll()
	assert.Empty(t, lc.Notifications(""))
}

func TestRefreshReintroducesDismissed(t *testing.T) {
	lc := newTestLifecycle(t, overdueSource(), &fakeOpener{})
	ctx := context.Background()

	lc.Refresh(ctx)
	require.True(t, lc.Dismiss("growth-reminder"))
	assert.NotContains(t, notifIDs(lc.Notifications("")), "growth-reminder")

	// Nothing about the records changed, so the reminder comes back.
	lc.Refresh(ctx)
	assert.Contains(t, notifIDs(lc.Notifications("")), "growth-reminder")
}

func TestSnoozeMovesRemindersOnly(t *testing.T) {
	lc := newTestLifecycle(t, overdueSource(), &fakeOpener{})
	lc.Refresh(context.Background())

	before := lc.Notifications("")
	require.Len(t, before, 3)

	lc.Snooze()
	after := lc.Notifications("")
	byID := map[string]models.Notification{}
	for _, n := range after {
		byID[n.ID] = n
	}

	// Action item untouched, reminders moved a day into the previous bucket.
	assert.Equal(t, models.CategoryThisWeek, byID["vaccine-pending"].Category)
	assert.Equal(t, models.CategoryPrevious, byID["sleep-reminder"].Category)
	assert.Equal(t, models.CategoryPrevious, byID["growth-reminder"].Category)

	sleepBefore := before[1]
	assert.Equal(t, sleepBefore.Date.Add(24*time.Hour), byID["sleep-reminder"].Date)

	// Second snooze is a no-op on categories and dates.
	lc.Snooze()
	again := lc.Notifications("")
	for _, n := range again {
		assert.Equal(t, byID[n.ID].Category, n.Category)
		assert.Equal(t, byID[n.ID].Date, n.Date)
	}
}

func TestToggleMuteThemesIsViewFilter(t *testing.T) {
	source := overdueSource()
	lc := newTestLifecycle(t, source, &fakeOpener{})
	lc.Refresh(context.Background())

	require.True(t, lc.ToggleMuteThemes())
	// Everything in this fixture is theme-scoped.
	assert.Empty(t, lc.Notifications(""))

	require.False(t, lc.ToggleMuteThemes())
	assert.Len(t, lc.Notifications(""), 3)
}

func TestNotificationsTypeFilter(t *testing.T) {
	lc := newTestLifecycle(t, overdueSource(), &fakeOpener{})
	lc.Refresh(context.Background())

	assert.Equal(t, []string{"vaccine-pending"}, notifIDs(lc.Notifications(models.NotificationAction)))
	assert.Equal(t, []string{"sleep-reminder", "growth-reminder"}, notifIDs(lc.Notifications(models.NotificationReminder)))
	assert.Empty(t, lc.Notifications(models.NotificationMilestone))
	assert.Len(t, lc.Notifications("all"), 3)
}

func TestPerformActionCompletesVaccine(t *testing.T) {
	source := overdueSource()
	opener := &fakeOpener{saved: true}
	lc := newTestLifecycle(t, source, opener)
	ctx := context.Background()

	lc.Refresh(ctx)
	saved, err := lc.PerformAction(ctx, "vaccine-pending")
	require.NoError(t, err)
	assert.True(t, saved)

	require.Len(t, opener.opened, 1)
	target, ok := opener.opened[0].(models.MomentFormTarget)
	require.True(t, ok)
	assert.Equal(t, "v1", target.VaccineID)

	assert.Equal(t, models.VaccineStatusCompleted, source.vaccines[0].Status)
	assert.Equal(t, "2026-08-28", source.vaccines[0].Date)

	// The refresh inside PerformAction drops the now-satisfied action.
	assert.NotContains(t, notifIDs(lc.Notifications("")), "vaccine-pending")
}

func TestPerformActionNotSaved(t *testing.T) {
	source := overdueSource()
	lc := newTestLifecycle(t, source, &fakeOpener{saved: false})
	ctx := context.Background()

	lc.Refresh(ctx)
	saved, err := lc.PerformAction(ctx, "vaccine-pending")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, models.VaccineStatusPending, source.vaccines[0].Status)
}

func TestPerformActionUnknownID(t *testing.T) {
	lc := newTestLifecycle(t, overdueSource(), &fakeOpener{saved: true})

	saved, err := lc.PerformAction(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestRefreshWithoutBaby(t *testing.T) {
	lc := newTestLifecycle(t, &fakeSource{}, &fakeOpener{})
	assert.Empty(t, lc.Refresh(context.Background()))
}
