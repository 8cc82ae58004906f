// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"babybook-core/internal/catalog"
	"babybook-core/internal/common/logger"
	"babybook-core/internal/completion"
	"babybook-core/internal/notify"
	"babybook-core/internal/records"
)

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(cat *catalog.Store, resolver *completion.Resolver, store *records.Store, feed *notify.Lifecycle, log logger.Logger) chi.Router {
	h := NewHandler(cat, resolver, store, feed, log)

	r := chi.NewRouter()

	// Catalog and completion.
	r.Get("/chapters", h.Chapters)
	r.Get("/chapters/{id}/templates", h.ChapterTemplates)
	r.Get("/chapters/{id}/completion", h.ChapterCompletion)
	r.Get("/completion", h.CompletionSummary)

	// Active baby.
	r.Get("/baby", h.GetBaby)
	r.Put("/baby", h.PutBaby)

	// Records CRUD.
	r.Get("/moments", h.ListMoments)
	r.Post("/moments", h.CreateMoment)
	r.Put("/moments/{id}", h.UpdateMoment)
	r.Delete("/moments/{id}", h.DeleteMoment)

	r.Get("/vaccines", h.ListVaccines)
	r.Post("/vaccines", h.CreateVaccine)
	r.Put("/vaccines/{id}", h.UpdateVaccine)

	r.Get("/growth", h.ListGrowth)
	r.Post("/growth", h.CreateGrowth)

	r.Get("/sleep", h.ListSleep)
	r.Post("/sleep", h.CreateSleep)

	r.Get("/sleep-humor", h.ListSleepHumor)
	r.Post("/sleep-humor", h.CreateSleepHumor)

	r.Get("/family", h.ListFamily)
	r.Post("/family", h.CreateFamilyMember)

	// Notification feed.
	r.Get("/notifications", h.ListNotifications)
	r.Post("/notifications/refresh", h.RefreshNotifications)
	r.Post("/notifications/clear", h.ClearNotifications)
	r.Post("/notifications/snooze", h.SnoozeNotifications)
	r.Post("/notifications/mute", h.ToggleMute)
	r.Post("/notifications/{id}/dismiss", h.DismissNotification)
	r.Post("/notifications/{id}/action", h.PerformNotificationAction)

	// Operational endpoints.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
