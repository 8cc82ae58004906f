// internal/api/handlers.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"babybook-core/internal/age"
	"babybook-core/internal/catalog"
	apperrors "babybook-core/internal/common/errors"
	"babybook-core/internal/common/logger"
	"babybook-core/internal/completion"
	"babybook-core/internal/models"
	"babybook-core/internal/notify"
	"babybook-core/internal/records"
)

// Handler holds the API route handlers.
type Handler struct {
	catalog  *catalog.Store
	resolver *completion.Resolver
	store    *records.Store
	feed     *notify.Lifecycle
	log      logger.Logger
	now      func() time.Time
}

func NewHandler(cat *catalog.Store, resolver *completion.Resolver, store *records.Store, feed *notify.Lifecycle, log logger.Logger) *Handler {
	return &Handler{
		catalog:  cat,
		resolver: resolver,
		store:    store,
		feed:     feed,
		log:      log,
		now:      time.Now,
	}
}

// writeError maps domain errors onto HTTP statuses with a generic body; the
// details stay in the logs.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if std, ok := apperrors.AsStandard(err); ok {
		h.log.WithError(err).Warn("request failed", map[string]interface{}{"code": std.Code})
		switch std.Code {
		case apperrors.ErrCodeValidationFailed:
			writeJSON(w, http.StatusBadRequest, errorBody("invalid input"))
		case apperrors.ErrCodeChapterNotFound, apperrors.ErrCodeTemplateNotFound, apperrors.ErrCodeRecordNotFound:
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		case apperrors.ErrCodeBabyNotSet:
			writeJSON(w, http.StatusConflict, errorBody("no baby selected"))
		default:
			writeJSON(w, apperrors.HTTPStatus(std.Code), errorBody("could not save, try again"))
		}
		return
	}
	h.log.WithError(err).Error("request failed", nil)
	writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
}

// babyAgeInDays resolves the active baby's age at request time.
func (h *Handler) babyAgeInDays() (int, error) {
	baby, ok := h.store.CurrentBaby()
	if !ok {
		return 0, apperrors.NewBabyNotSetError()
	}
	return age.InDays(baby.BirthDate, h.now()), nil
}

// Chapters handles GET /chapters.
func (h *Handler) Chapters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ChapterListResponse{Chapters: h.catalog.Chapters()})
}

// ChapterTemplates handles GET /chapters/{id}/templates. The baby's age
// scopes the window filter; ?age=N overrides it and ?all=true disables it.
func (h *Handler) ChapterTemplates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.Chapter(id); !ok {
		h.writeError(w, apperrors.NewChapterNotFoundError(id))
		return
	}

	includeAll := r.URL.Query().Get("all") == "true"

	var ageDays int
	if raw := r.URL.Query().Get("age"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, apperrors.NewValidationFailedError("age must be an integer"))
			return
		}
		ageDays = parsed
	} else if !includeAll {
		var err error
		ageDays, err = h.babyAgeInDays()
		if err != nil {
			h.writeError(w, err)
			return
		}
	}

	templates := h.catalog.PlaceholdersForChapter(id, ageDays, includeAll)
	writeJSON(w, http.StatusOK, TemplateListResponse{Templates: templates})
}

// ChapterCompletion handles GET /chapters/{id}/completion.
func (h *Handler) ChapterCompletion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.Chapter(id); !ok {
		h.writeError(w, apperrors.NewChapterNotFoundError(id))
		return
	}

	ageDays, err := h.babyAgeInDays()
	if err != nil {
		h.writeError(w, err)
		return
	}

	resolved := h.resolver.ResolveChapter(id, ageDays, h.store.Moments())
	writeJSON(w, http.StatusOK, resolved)
}

// CompletionSummary handles GET /completion.
func (h *Handler) CompletionSummary(w http.ResponseWriter, _ *http.Request) {
	ageDays, err := h.babyAgeInDays()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.resolver.Aggregate(ageDays, h.store.Moments()))
}

// GetBaby handles GET /baby.
func (h *Handler) GetBaby(w http.ResponseWriter, _ *http.Request) {
	baby, ok := h.store.CurrentBaby()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("no baby selected"))
		return
	}
	writeJSON(w, http.StatusOK, baby)
}

// PutBaby handles PUT /baby. Switching the baby recomputes the feed.
func (h *Handler) PutBaby(w http.ResponseWriter, r *http.Request) {
	var body models.Baby
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	baby, err := h.store.SetCurrentBaby(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.feed.Refresh(r.Context())
	writeJSON(w, http.StatusOK, baby)
}

// ListMoments handles GET /moments.
func (h *Handler) ListMoments(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"moments": h.store.Moments()})
}

// CreateMoment handles POST /moments.
func (h *Handler) CreateMoment(w http.ResponseWriter, r *http.Request) {
	var body models.Moment
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	moment, err := h.store.AddMoment(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, moment)
}

// UpdateMoment handles PUT /moments/{id}.
func (h *Handler) UpdateMoment(w http.ResponseWriter, r *http.Request) {
	var body models.Moment
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.store.UpdateMoment(r.Context(), id, body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if updated == nil {
		h.writeError(w, apperrors.NewRecordNotFoundError("moment", id))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteMoment handles DELETE /moments/{id}.
func (h *Handler) DeleteMoment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.DeleteMoment(r.Context(), id) {
		h.writeError(w, apperrors.NewRecordNotFoundError("moment", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListVaccines handles GET /vaccines.
func (h *Handler) ListVaccines(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"vaccines": h.store.Vaccines()})
}

// CreateVaccine handles POST /vaccines.
func (h *Handler) CreateVaccine(w http.ResponseWriter, r *http.Request) {
	var body models.VaccineRecord
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	vaccine, err := h.store.AddVaccine(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vaccine)
}

// UpdateVaccine handles PUT /vaccines/{id}.
func (h *Handler) UpdateVaccine(w http.ResponseWriter, r *http.Request) {
	var body models.VaccineRecord
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.store.UpdateVaccine(r.Context(), id, body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if updated == nil {
		h.writeError(w, apperrors.NewRecordNotFoundError("vaccine", id))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ListGrowth handles GET /growth.
func (h *Handler) ListGrowth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"measurements": h.store.Growth()})
}

// CreateGrowth handles POST /growth.
func (h *Handler) CreateGrowth(w http.ResponseWriter, r *http.Request) {
	var body models.GrowthMeasurement
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	m, err := h.store.AddGrowthMeasurement(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// ListSleep handles GET /sleep.
func (h *Handler) ListSleep(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"records": h.store.Sleep()})
}

// CreateSleep handles POST /sleep.
func (h *Handler) CreateSleep(w http.ResponseWriter, r *http.Request) {
	var body models.SleepRecord
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	rec, err := h.store.AddSleepRecord(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// ListSleepHumor handles GET /sleep-humor.
func (h *Handler) ListSleepHumor(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"entries": h.store.SleepHumor()})
}

// CreateSleepHumor handles POST /sleep-humor.
func (h *Handler) CreateSleepHumor(w http.ResponseWriter, r *http.Request) {
	var body models.SleepHumorEntry
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	entry, err := h.store.AddSleepHumorEntry(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListFamily handles GET /family.
func (h *Handler) ListFamily(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"members": h.store.Family()})
}

// CreateFamilyMember handles POST /family.
func (h *Handler) CreateFamilyMember(w http.ResponseWriter, r *http.Request) {
	var body models.FamilyMember
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, apperrors.NewValidationFailedError(err.Error()))
		return
	}

	member, err := h.store.AddFamilyMember(r.Context(), body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

// ListNotifications handles GET /notifications with an optional type filter.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	writeJSON(w, http.StatusOK, notificationList(h.feed.Notifications(filter)))
}

// RefreshNotifications handles POST /notifications/refresh.
func (h *Handler) RefreshNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, notificationList(h.feed.Refresh(r.Context())))
}

// ClearNotifications handles POST /notifications/clear.
func (h *Handler) ClearNotifications(w http.ResponseWriter, _ *http.Request) {
	h.feed.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// SnoozeNotifications handles POST /notifications/snooze.
func (h *Handler) SnoozeNotifications(w http.ResponseWriter, _ *http.Request) {
	h.feed.Snooze()
	writeJSON(w, http.StatusOK, notificationList(h.feed.Notifications("")))
}

// ToggleMute handles POST /notifications/mute.
func (h *Handler) ToggleMute(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MuteResponse{Muted: h.feed.ToggleMuteThemes()})
}

// DismissNotification handles POST /notifications/{id}/dismiss.
func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.feed.Dismiss(id) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PerformNotificationAction handles POST /notifications/{id}/action.
func (h *Handler) PerformNotificationAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	saved, err := h.feed.PerformAction(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ActionResponse{Saved: saved})
}

func notificationList(items []models.Notification) NotificationListResponse {
	views := make([]NotificationView, 0, len(items))
	for _, n := range items {
		views = append(views, toNotificationView(n))
	}
	return NotificationListResponse{Notifications: views}
}
