// internal/api/api_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babybook-core/internal/catalog"
	"babybook-core/internal/common/config"
	"babybook-core/internal/common/logger"
	"babybook-core/internal/completion"
	"babybook-core/internal/models"
	"babybook-core/internal/notify"
	"babybook-core/internal/records"
)

type noopOpener struct{}

func (noopOpener) Open(_ context.Context, _ models.ActionTarget) (bool, error) {
	return false, nil
}

// testEnv wires the full stack over an in-memory blob store.
func testEnv(t *testing.T) (*records.Store, http.Handler) {
	t.Helper()

	log := logger.NewTestLogger(t)
	cat := catalog.New()
	store := records.NewStore(records.NewMemoryBlobStore(), log)

	engine := notify.NewEngine(cat, config.NotificationConfig{
		MonthBirthdayWindowDays: 10,
		VaccineOverdueGraceDays: 7,
		SleepReminderHours:      24,
		GrowthReminderDays:      10,
	})
	feed := notify.NewLifecycle(engine, store, noopOpener{}, log)

	router := NewRouter(cat, completion.NewResolver(cat), store, feed, log)
	return store, router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChaptersEndpoint(t *testing.T) {
	_, router := testEnv(t)

	w := doJSON(t, router, http.MethodGet, "/chapters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ChapterListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Chapters, 12)
	assert.Equal(t, "1", resp.Chapters[0].ID)
}

func TestChapterTemplatesQueries(t *testing.T) {
	_, router := testEnv(t)

	// Explicit age bypasses the active baby.
	w := doJSON(t, router, http.MethodGet, "/chapters/2/templates?age=40", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp TemplateListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 2)

	// all=true disables the window filter.
	w = doJSON(t, router, http.MethodGet, "/chapters/2/templates?all=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = TemplateListResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 6)

	// Unknown chapter.
	w = doJSON(t, router, http.MethodGet, "/chapters/99/templates?age=40", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No baby and no explicit age.
	w = doJSON(t, router, http.MethodGet, "/chapters/2/templates", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Non-numeric age.
	w = doJSON(t, router, http.MethodGet, "/chapters/2/templates?age=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBabyEndpoints(t *testing.T) {
	_, router := testEnv(t)

	w := doJSON(t, router, http.MethodGet, "/baby", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPut, "/baby", models.Baby{
		Name:      "Alice",
		BirthDate: "2026-01-10",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var baby models.Baby
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &baby))
	assert.True(t, baby.IsActive)
	assert.NotEmpty(t, baby.ID)

	w = doJSON(t, router, http.MethodGet, "/baby", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Missing birth date fails validation.
	w = doJSON(t, router, http.MethodPut, "/baby", models.Baby{Name: "Bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMomentCRUD(t *testing.T) {
	_, router := testEnv(t)

	w := doJSON(t, router, http.MethodPost, "/moments", models.Moment{
		ChapterID: "2",
		Title:     "Primeira foto",
		Date:      "2026-02-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Moment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.MomentStatusPublished, created.Status)

	w = doJSON(t, router, http.MethodPut, "/moments/"+created.ID, models.Moment{
		ChapterID: "2",
		Title:     "Primeira foto oficial",
		Date:      "2026-02-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Moment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Primeira foto oficial", updated.Title)

	w = doJSON(t, router, http.MethodPut, "/moments/missing", models.Moment{
		Title: "x", Date: "2026-02-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/moments/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/moments/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMomentValidationError(t *testing.T) {
	_, router := testEnv(t)

	// Title missing.
	w := doJSON(t, router, http.MethodPost, "/moments", models.Moment{Date: "2026-02-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body errResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid input", body.Error)
}

func TestVaccineEndpoints(t *testing.T) {
	_, router := testEnv(t)

	w := doJSON(t, router, http.MethodPost, "/vaccines", models.VaccineRecord{
		Name:           "BCG",
		AgeRecommended: 0,
		Dose:           "Dose única",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.VaccineRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.VaccineStatusPending, created.Status)

	created.Status = models.VaccineStatusCompleted
	created.Date = "2026-02-01"
	w = doJSON(t, router, http.MethodPut, "/vaccines/"+created.ID, created)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/vaccines/missing", created)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Updates are validated like creates: a cleared name with a bogus status
	// is rejected and the stored record survives.
	w = doJSON(t, router, http.MethodPut, "/vaccines/"+created.ID, models.VaccineRecord{Status: "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/vaccines", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"BCG"`)
}

func TestCompletionEndpoints(t *testing.T) {
	store, router := testEnv(t)

	// No baby yet.
	w := doJSON(t, router, http.MethodGet, "/completion", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	birth := time.Now().AddDate(0, 0, -40).Format("2006-01-02")
	w = doJSON(t, router, http.MethodPut, "/baby", models.Baby{Name: "Alice", BirthDate: birth})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/chapters/2/completion", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var chapter ChapterCompletionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chapter))
	assert.Equal(t, "2", chapter.ChapterID)
	assert.Equal(t, 2, chapter.Total)
	assert.Equal(t, 0, chapter.Completed)

	// Completing one placeholder moves the percentage.
	_, err := store.AddMoment(context.Background(), models.Moment{
		ChapterID:  "2",
		TemplateID: "triagens-registro-civil",
		Title:      "Registro civil",
		Date:       birth,
	})
	require.NoError(t, err)

	w = doJSON(t, router, http.MethodGet, "/chapters/2/completion", nil)
	require.Equal(t, http.StatusOK, w.Code)
	chapter = ChapterCompletionResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chapter))
	assert.Equal(t, 1, chapter.Completed)
	assert.Equal(t, 50, chapter.Percentage)

	w = doJSON(t, router, http.MethodGet, "/completion", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary CompletionSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary.Chapters, 12)
	assert.Equal(t, 1, summary.Completed)
}

func TestNotificationFlow(t *testing.T) {
	store, router := testEnv(t)

	birth := time.Now().AddDate(0, 0, -40).Format("2006-01-02")
	w := doJSON(t, router, http.MethodPut, "/baby", models.Baby{Name: "Alice", BirthDate: birth})
	require.Equal(t, http.StatusOK, w.Code)

	// Pending vaccine recommended at birth is long overdue at 40 days.
	_, err := store.AddVaccine(context.Background(), models.VaccineRecord{
		Name:           "BCG",
		AgeRecommended: 0,
		Dose:           "Dose única",
	})
	require.NoError(t, err)

	w = doJSON(t, router, http.MethodPost, "/notifications/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed NotificationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.NotEmpty(t, feed.Notifications)

	ids := make(map[string]bool)
	for _, n := range feed.Notifications {
		ids[n.ID] = true
	}
	assert.True(t, ids["vaccine-pending"])
	assert.True(t, ids["sleep-reminder"])
	assert.True(t, ids["growth-reminder"])

	// Dismiss one item; a second dismiss misses.
	w = doJSON(t, router, http.MethodPost, "/notifications/vaccine-pending/dismiss", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodPost, "/notifications/vaccine-pending/dismiss", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed = NotificationListResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	for _, n := range feed.Notifications {
		assert.NotEqual(t, "vaccine-pending", n.ID)
	}

	// Mute toggles and reports state.
	w = doJSON(t, router, http.MethodPost, "/notifications/mute", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mute MuteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mute))
	assert.True(t, mute.Muted)

	// Clear empties the feed until the next refresh.
	w = doJSON(t, router, http.MethodPost, "/notifications/clear", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed = NotificationListResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Empty(t, feed.Notifications)
}

func TestNotificationFilter(t *testing.T) {
	_, router := testEnv(t)

	birth := time.Now().AddDate(0, 0, -40).Format("2006-01-02")
	w := doJSON(t, router, http.MethodPut, "/baby", models.Baby{Name: "Alice", BirthDate: birth})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/notifications/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/notifications?filter=reminder", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed NotificationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	for _, n := range feed.Notifications {
		assert.Equal(t, models.NotificationReminder, n.Type)
	}
}

func TestHealthz(t *testing.T) {
	_, router := testEnv(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
