// internal/catalog/catalog.go

// Package catalog is the read-only registry of chapters and placeholder
// templates. It is the single source of truth for what can be recorded,
// independent of what already has been.
package catalog

import "babybook-core/internal/models"

// Store holds the authored catalog. Chapter order and per-chapter template
// order are fixed by the author; every lookup preserves them.
type Store struct {
	chapters  []models.Chapter
	order     []string
	byChapter map[string][]models.Template
}

// New builds the full authored catalog.
func New() *Store {
	s := &Store{
		byChapter: make(map[string][]models.Template),
	}
	for _, c := range chapterConfigs {
		s.chapters = append(s.chapters, c.chapter)
		s.order = append(s.order, c.chapter.ID)
		s.byChapter[c.chapter.ID] = c.templates
	}
	return s
}

// Chapters returns the chapter list in catalog order.
func (s *Store) Chapters() []models.Chapter {
	out := make([]models.Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

// Chapter looks up a chapter by id.
func (s *Store) Chapter(id string) (models.Chapter, bool) {
	for _, c := range s.chapters {
		if c.ID == id {
			return c, true
		}
	}
	return models.Chapter{}, false
}

// TemplatesForChapter returns the chapter's templates in authored order.
// Unknown ids yield an empty list, never an error.
func (s *Store) TemplatesForChapter(chapterID string) []models.Template {
	tpls := s.byChapter[chapterID]
	out := make([]models.Template, len(tpls))
	copy(out, tpls)
	return out
}

// PlaceholdersForChapter composes the chapter lookup with the age window
// filter. includeAllAges skips the filter, which the vaccines screen uses to
// show the whole schedule regardless of the baby's age.
func (s *Store) PlaceholdersForChapter(chapterID string, ageInDays int, includeAllAges bool) []models.Template {
	if includeAllAges {
		return s.TemplatesForChapter(chapterID)
	}
	return FilterByAge(s.byChapter[chapterID], ageInDays)
}

// AllTemplates returns every template across chapters, in catalog order.
func (s *Store) AllTemplates() []models.Template {
	var out []models.Template
	for _, id := range s.order {
		out = append(out, s.byChapter[id]...)
	}
	return out
}

// TemplatesByType returns all templates of the given type, in catalog order.
func (s *Store) TemplatesByType(t models.TemplateType) []models.Template {
	var out []models.Template
	for _, id := range s.order {
		for _, tpl := range s.byChapter[id] {
			if tpl.Type == t {
				out = append(out, tpl)
			}
		}
	}
	return out
}

// FilterByAge keeps the templates whose age window contains ageInDays.
// Pure and order-preserving.
func FilterByAge(templates []models.Template, ageInDays int) []models.Template {
	out := make([]models.Template, 0, len(templates))
	for _, t := range templates {
		if t.InWindow(ageInDays) {
			out = append(out, t)
		}
	}
	return out
}
