// internal/completion/resolver.go

// Package completion joins the authored catalog with recorded moments to
// answer "what has been filled in, and what is still waiting".
package completion

import (
	"math"

	"babybook-core/internal/catalog"
	"babybook-core/internal/models"
)

// TemplateStatus is one catalog placeholder annotated with its recording
// state. When several moments reference the same template the first recorded
// one wins, including for allowMultiple templates.
type TemplateStatus struct {
	Template    models.Template `json:"template"`
	IsCompleted bool            `json:"isCompleted"`
	MomentID    string          `json:"momentId,omitempty"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
}

// ChapterCompletion is the resolved view of a single chapter.
type ChapterCompletion struct {
	ChapterID  string           `json:"chapterId"`
	Templates  []TemplateStatus `json:"templates"`
	Completed  int              `json:"completed"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
}

// Summary aggregates completion across every chapter.
type Summary struct {
	Chapters   []ChapterCompletion `json:"chapters"`
	Completed  int                 `json:"completed"`
	Total      int                 `json:"total"`
	Percentage int                 `json:"percentage"`
}

// Resolver is stateless beyond the catalog it reads from.
type Resolver struct {
	catalog *catalog.Store
}

func NewResolver(c *catalog.Store) *Resolver {
	return &Resolver{catalog: c}
}

// ResolveChapter annotates the chapter's age-visible templates with the
// moments that complete them. Unknown chapters resolve to an empty, zero
// percent result.
func (r *Resolver) ResolveChapter(chapterID string, ageInDays int, moments []models.Moment) ChapterCompletion {
	templates := r.catalog.PlaceholdersForChapter(chapterID, ageInDays, false)

	out := ChapterCompletion{
		ChapterID: chapterID,
		Templates: make([]TemplateStatus, 0, len(templates)),
		Total:     len(templates),
	}
	for _, tpl := range templates {
		status := TemplateStatus{Template: tpl}
		if m, ok := firstMatch(tpl.ID, moments); ok {
			status.IsCompleted = true
			status.MomentID = m.ID
			if len(m.Media) > 0 {
				status.Thumbnail = m.Media[0]
			}
			out.Completed++
		}
		out.Templates = append(out.Templates, status)
	}
	out.Percentage = percentage(out.Completed, out.Total)
	return out
}

// Aggregate resolves every chapter and sums the counters.
func (r *Resolver) Aggregate(ageInDays int, moments []models.Moment) Summary {
	var sum Summary
	for _, ch := range r.catalog.Chapters() {
		resolved := r.ResolveChapter(ch.ID, ageInDays, moments)
		sum.Chapters = append(sum.Chapters, resolved)
		sum.Completed += resolved.Completed
		sum.Total += resolved.Total
	}
	sum.Percentage = percentage(sum.Completed, sum.Total)
	return sum
}

func firstMatch(templateID string, moments []models.Moment) (models.Moment, bool) {
	if templateID == "" {
		return models.Moment{}, false
	}
	for _, m := range moments {
		if m.TemplateID == templateID {
			return m, true
		}
	}
	return models.Moment{}, false
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
