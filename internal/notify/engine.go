// internal/notify/engine.go
package notify

import (
	"fmt"
	"math"
	"time"

	"babybook-core/internal/age"
	"babybook-core/internal/common/config"
	"babybook-core/internal/common/metrics"
	"babybook-core/internal/models"
	"babybook-core/internal/records"
)

// Catalog is the slice of the catalog store the engine reads.
type Catalog interface {
	TemplatesByType(t models.TemplateType) []models.Template
}

// Engine synthesizes the notification feed. Every rule is side-effect-free
// and skips silently when its inputs are absent; output order is rule order.
type Engine struct {
	catalog Catalog
	cfg     config.NotificationConfig
	now     func() time.Time
}

func NewEngine(catalog Catalog, cfg config.NotificationConfig) *Engine {
	return &Engine{catalog: catalog, cfg: cfg, now: time.Now}
}

// WithClock replaces the engine's clock. Tests pin it for determinism.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Synthesize recomputes the feed from scratch. No baby means an empty feed.
func (e *Engine) Synthesize(baby *models.Baby, snap records.Snapshot) []models.Notification {
	if baby == nil {
		return nil
	}

	now := e.now()
	notifs := make([]models.Notification, 0, 5)

	if n := e.monthBirthdayRule(baby, snap, now); n != nil {
		notifs = append(notifs, *n)
	}
	if n := e.vaccinePendingRule(baby, snap, now); n != nil {
		notifs = append(notifs, *n)
	}
	if n := e.sleepReminderRule(snap, now); n != nil {
		notifs = append(notifs, *n)
	}
	if n := e.growthReminderRule(snap, now); n != nil {
		notifs = append(notifs, *n)
	}
	if n := e.firstTimeSuggestionRule(snap, now); n != nil {
		notifs = append(notifs, *n)
	}

	return notifs
}

// monthBirthdayRule fires when the next month birthday is close and its
// celebration template has not been recorded yet.
func (e *Engine) monthBirthdayRule(baby *models.Baby, snap records.Snapshot, now time.Time) *models.Notification {
	birth, err := age.ParseDate(baby.BirthDate)
	if err != nil {
		return nil
	}

	ageInDays := age.InDays(baby.BirthDate, now)
	if ageInDays < 0 {
		return nil
	}
	nextSlot := ageInDays/30 + 1

	nextBirthday := birth.AddDate(0, nextSlot, 0)
	daysUntil := int(math.Ceil(nextBirthday.Sub(now).Hours() / 24))
	if daysUntil <= 0 || daysUntil > e.cfg.MonthBirthdayWindowDays {
		return nil
	}

	tpl := e.monthBirthdayTemplate(nextSlot)
	if tpl == nil || isCompleted(tpl.ID, snap.Moments) {
		return nil
	}

	metrics.NotificationsSynthesized.WithLabelValues("monthversary").Inc()
	return &models.Notification{
		ID:       "monthversary",
		Type:     models.NotificationMilestone,
		Scope:    models.ScopeBaby,
		Title:    fmt.Sprintf("%dº Mêsversário de %s", nextSlot, baby.Name),
		Subtitle: fmt.Sprintf("Em %d %s", daysUntil, dayPlural(daysUntil)),
		Action: models.Action{
			Label:  "Registrar",
			Target: models.MomentFormTarget{TemplateID: tpl.ID},
		},
		Date:     now.Add(-24 * time.Hour),
		Category: models.CategoryThisWeek,
	}
}

// vaccinePendingRule surfaces the first pending vaccine in store order.
func (e *Engine) vaccinePendingRule(baby *models.Baby, snap records.Snapshot, now time.Time) *models.Notification {
	var pending *models.VaccineRecord
	for i := range snap.Vaccines {
		if snap.Vaccines[i].Status == models.VaccineStatusPending {
			pending = &snap.Vaccines[i]
			break
		}
	}
	if pending == nil {
		return nil
	}

	ageInDays := age.InDays(baby.BirthDate, now)
	overdue := ageInDays > pending.AgeRecommended+e.cfg.VaccineOverdueGraceDays

	subtitle := fmt.Sprintf("Recomendada aos %d meses", pending.AgeRecommended/30)
	if overdue {
		subtitle = "Atrasada"
	}

	title := fmt.Sprintf("Vacina %s", pending.Name)
	if pending.Dose != "" {
		title = fmt.Sprintf("Vacina %s - %s", pending.Name, pending.Dose)
	}

	target := models.MomentFormTarget{VaccineID: pending.ID}
	if tpl := MatchVaccineTemplate(*pending, e.catalog.TemplatesByType(models.TypeVaccine)); tpl != nil {
		target.TemplateID = tpl.ID
	}

	metrics.NotificationsSynthesized.WithLabelValues("vaccine_pending").Inc()
	return &models.Notification{
		ID:       "vaccine-pending",
		Type:     models.NotificationAction,
		Scope:    models.ScopeTheme,
		Title:    title,
		Subtitle: subtitle,
		Action:   models.Action{Label: "Registrar", Target: target},
		Date:     now.Add(-48 * time.Hour),
		Category: models.CategoryThisWeek,
	}
}

func (e *Engine) sleepReminderRule(snap records.Snapshot, now time.Time) *models.Notification {
	if latest, ok := latestSleepDate(snap.Sleep); ok {
		if now.Sub(latest) < time.Duration(e.cfg.SleepReminderHours)*time.Hour {
			return nil
		}
	}

	metrics.NotificationsSynthesized.WithLabelValues("sleep_reminder").Inc()
	return &models.Notification{
		ID:       "sleep-reminder",
		Type:     models.NotificationReminder,
		Scope:    models.ScopeTheme,
		Title:    "Como foi o sono hoje?",
		Subtitle: "Registre a qualidade do sono de hoje",
		Action:   models.Action{Label: "Registrar", Target: models.SleepFormTarget{}},
		Date:     now.Add(-12 * time.Hour),
		Category: models.CategoryThisWeek,
	}
}

func (e *Engine) growthReminderRule(snap records.Snapshot, now time.Time) *models.Notification {
	if latest, ok := latestGrowthDate(snap.Growth); ok {
		daysSince := int(now.Sub(latest).Hours() / 24)
		if daysSince <= e.cfg.GrowthReminderDays {
			return nil
		}
	}

	metrics.NotificationsSynthesized.WithLabelValues("growth_reminder").Inc()
	return &models.Notification{
		ID:       "growth-reminder",
		Type:     models.NotificationReminder,
		Scope:    models.ScopeTheme,
		Title:    "Hora de medir!",
		Subtitle: "Registre peso e altura",
		Action:   models.Action{Label: "Registrar", Target: models.GrowthFormTarget{}},
		Date:     now.Add(-72 * time.Hour),
		Category: models.CategoryThisWeek,
	}
}

// firstTimeSuggestionRule is the low-priority nudge: complete the first
// first-time template still missing a moment.
func (e *Engine) firstTimeSuggestionRule(snap records.Snapshot, now time.Time) *models.Notification {
	var tpl *models.Template
	templates := e.catalog.TemplatesByType(models.TypeFirstTime)
	for i := range templates {
		if !isCompleted(templates[i].ID, snap.Moments) {
			tpl = &templates[i]
			break
		}
	}
	if tpl == nil {
		return nil
	}

	metrics.NotificationsSynthesized.WithLabelValues("first_time_suggestion").Inc()
	return &models.Notification{
		ID:       "first-time-suggestion",
		Type:     models.NotificationAction,
		Scope:    models.ScopeTheme,
		Title:    "Registre um momento especial",
		Subtitle: fmt.Sprintf("Completar \"%s\"", tpl.Name),
		Action: models.Action{
			Label:  "Ver",
			Target: models.MomentFormTarget{TemplateID: tpl.ID},
		},
		Date:     now.Add(-120 * time.Hour),
		Category: models.CategoryPrevious,
	}
}

func (e *Engine) monthBirthdayTemplate(slot int) *models.Template {
	templates := e.catalog.TemplatesByType(models.TypeMonthBirthday)
	for i := range templates {
		if meta, ok := templates[i].Meta.(models.MonthBirthdayMeta); ok && meta.Slot == slot {
			return &templates[i]
		}
	}
	return nil
}

func isCompleted(templateID string, moments []models.Moment) bool {
	for _, m := range moments {
		if m.TemplateID == templateID {
			return true
		}
	}
	return false
}

func latestSleepDate(entries []models.SleepRecord) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range entries {
		t, err := age.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	return latest, found
}

func latestGrowthDate(entries []models.GrowthMeasurement) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, g := range entries {
		t, err := age.ParseDate(g.Date)
		if err != nil {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	return latest, found
}

func dayPlural(n int) string {
	if n == 1 {
		return "dia"
	}
	return "dias"
}
