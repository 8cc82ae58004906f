// internal/notify/lifecycle.go
package notify

import (
	"context"
	"sync"
	"time"

	"babybook-core/internal/common/logger"
	"babybook-core/internal/common/metrics"
	"babybook-core/internal/models"
	"babybook-core/internal/records"
)

// FormOpener hands an action target to the presentation layer and reports
// whether the user saved the form.
type FormOpener interface {
	Open(ctx context.Context, target models.ActionTarget) (saved bool, err error)
}

// Lifecycle is the in-memory state machine over the synthesized feed.
// Dismissals and snoozes live only here; Refresh recomputes the feed from
// scratch and deliberately forgets them.
type Lifecycle struct {
	mu     sync.Mutex
	engine *Engine
	store  RecordSource
	opener FormOpener
	log    logger.Logger

	items []models.Notification
	muted bool
}

// RecordSource is the slice of the record store the lifecycle needs.
type RecordSource interface {
	CurrentBaby() (models.Baby, bool)
	Snapshot() records.Snapshot
	Vaccines() []models.VaccineRecord
	UpdateVaccine(ctx context.Context, id string, updated models.VaccineRecord) (*models.VaccineRecord, error)
}

func NewLifecycle(engine *Engine, store RecordSource, opener FormOpener, log logger.Logger) *Lifecycle {
	return &Lifecycle{engine: engine, store: store, opener: opener, log: log}
}

// Refresh resynthesizes the whole feed. Prior dismissals do not survive: a
// notification whose trigger still holds will reappear.
func (l *Lifecycle) Refresh(ctx context.Context) []models.Notification {
	start := time.Now()
	defer func() {
		metrics.FeedRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	var babyPtr *models.Baby
	if baby, ok := l.store.CurrentBaby(); ok {
		babyPtr = &baby
	}
	items := l.engine.Synthesize(babyPtr, l.store.Snapshot())

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()

	l.log.Debug("notification feed refreshed", map[string]interface{}{"count": len(items)})
	return copySlice(items)
}

// Dismiss removes one notification from the current list. Terminal only
// until the next Refresh.
func (l *Lifecycle) Dismiss(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			metrics.NotificationActions.WithLabelValues("dismiss").Inc()
			return true
		}
	}
	return false
}

// ClearAll empties the current list.
func (l *Lifecycle) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	metrics.NotificationActions.WithLabelValues("clear_all").Inc()
}

// ToggleMuteThemes flips the theme mute and returns the new state. Muting is
// a view filter: theme-scoped items are hidden, not removed.
func (l *Lifecycle) ToggleMuteThemes() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.muted = !l.muted
	metrics.NotificationActions.WithLabelValues("mute_toggle").Inc()
	return l.muted
}

// Snooze pushes every non-action notification from this week into the
// previous bucket, a day later. Action items need acting on, not snoozing.
func (l *Lifecycle) Snooze() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].Type == models.NotificationAction {
			continue
		}
		if l.items[i].Category == models.CategoryThisWeek {
			l.items[i].Category = models.CategoryPrevious
			l.items[i].Date = l.items[i].Date.Add(24 * time.Hour)
		}
	}
	metrics.NotificationActions.WithLabelValues("snooze").Inc()
}

// Notifications returns the visible feed, optionally filtered by type
// ("action", "reminder", "milestone"; empty or "all" keeps everything).
func (l *Lifecycle) Notifications(filter string) []models.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Notification, 0, len(l.items))
	for _, n := range l.items {
		if l.muted && n.Scope == models.ScopeTheme {
			continue
		}
		if filter != "" && filter != "all" && n.Type != filter {
			continue
		}
		out = append(out, n)
	}
	return out
}

// PerformAction opens the notification's target form. When the form is saved
// and the action was bound to a pending vaccine, the vaccine record is
// completed with today's date and the feed refreshed.
func (l *Lifecycle) PerformAction(ctx context.Context, id string) (bool, error) {
	l.mu.Lock()
	var target models.ActionTarget
	for _, n := range l.items {
		if n.ID == id {
			target = n.Action.Target
			break
		}
	}
	l.mu.Unlock()

	if target == nil {
		return false, nil
	}

	saved, err := l.opener.Open(ctx, target)
	if err != nil || !saved {
		return false, err
	}
	metrics.NotificationActions.WithLabelValues("perform").Inc()

	if mt, ok := target.(models.MomentFormTarget); ok && mt.VaccineID != "" {
		l.completeVaccine(ctx, mt.VaccineID)
	}

	l.Refresh(ctx)
	return true, nil
}

func (l *Lifecycle) completeVaccine(ctx context.Context, vaccineID string) {
	for _, v := range l.store.Vaccines() {
		if v.ID != vaccineID {
			continue
		}
		v.Status = models.VaccineStatusCompleted
		v.Date = l.engine.now().Format("2006-01-02")
		if updated, err := l.store.UpdateVaccine(ctx, vaccineID, v); err != nil {
			l.log.WithError(err).Warn("vaccine completion rejected", map[string]interface{}{"vaccineId": vaccineID})
		} else if updated == nil {
			l.log.Warn("vaccine disappeared before completion", map[string]interface{}{"vaccineId": vaccineID})
		}
		return
	}
	l.log.Warn("action referenced unknown vaccine", map[string]interface{}{"vaccineId": vaccineID})
}

func copySlice(in []models.Notification) []models.Notification {
	out := make([]models.Notification, len(in))
	copy(out, in)
	return out
}
