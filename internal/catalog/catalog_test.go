// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babybook-core/internal/models"
)

func TestNewStoreChapters(t *testing.T) {
	store := New()

	chapters := store.Chapters()
	require.Len(t, chapters, 12)
	assert.Equal(t, "Gestação & Chegada", chapters[0].Name)
	assert.Equal(t, "Capítulos Custom", chapters[11].Name)

	ch, ok := store.Chapter("4")
	require.True(t, ok)
	assert.Equal(t, "Saúde & Crescimento", ch.Name)

	_, ok = store.Chapter("99")
	assert.False(t, ok)
}

func TestTemplatesForChapter(t *testing.T) {
	store := New()

	templates := store.TemplatesForChapter("1")
	require.Len(t, templates, 8)
	assert.Equal(t, "gestacao-descoberta-gravidez", templates[0].ID)

	// Unknown chapters yield an empty slice, never nil panics downstream.
	assert.Empty(t, store.TemplatesForChapter("nope"))

	// Custom chapter ships without authored templates.
	assert.Empty(t, store.TemplatesForChapter("12"))
}

func TestTemplatesForChapterReturnsCopy(t *testing.T) {
	store := New()

	first := store.TemplatesForChapter("1")
	first[0].Name = "mutated"

	again := store.TemplatesForChapter("1")
	assert.Equal(t, "Descoberta da Gravidez", again[0].Name)
}

func TestCatalogIntegrity(t *testing.T) {
	store := New()

	seen := map[string]bool{}
	for _, tpl := range store.AllTemplates() {
		require.NotEmpty(t, tpl.ID)
		require.Falsef(t, seen[tpl.ID], "duplicate template id %q", tpl.ID)
		seen[tpl.ID] = true

		if tpl.AgeRangeEnd != nil {
			assert.LessOrEqualf(t, tpl.AgeRangeStart, *tpl.AgeRangeEnd,
				"template %q has inverted age window", tpl.ID)
		}
	}
}

func TestInWindowBoundaries(t *testing.T) {
	store := New()

	var penta models.Template
	for _, tpl := range store.TemplatesForChapter("4") {
		if tpl.ID == "vacina-penta-2m" {
			penta = tpl
		}
	}
	require.Equal(t, "vacina-penta-2m", penta.ID)
	require.Equal(t, 60, penta.AgeRangeStart)
	require.NotNil(t, penta.AgeRangeEnd)
	require.Equal(t, 75, *penta.AgeRangeEnd)

	assert.False(t, penta.InWindow(59))
	assert.True(t, penta.InWindow(60))
	assert.True(t, penta.InWindow(74))
	assert.True(t, penta.InWindow(75))
	assert.False(t, penta.InWindow(76))
}

func TestInWindowOpenEnded(t *testing.T) {
	store := New()

	var medidas models.Template
	for _, tpl := range store.TemplatesByType(models.TypeMeasurement) {
		if tpl.ID == "saude-medidas" {
			medidas = tpl
		}
	}
	require.Equal(t, "saude-medidas", medidas.ID)
	require.Nil(t, medidas.AgeRangeEnd)

	assert.False(t, medidas.InWindow(-1))
	assert.True(t, medidas.InWindow(0))
	assert.True(t, medidas.InWindow(1000))
}

func TestPlaceholdersForChapter(t *testing.T) {
	store := New()

	// At 40 days the neonatal screening windows (up to 30 days) are closed;
	// only the two-month windows survive.
	placeholders := store.PlaceholdersForChapter("2", 40, false)
	ids := make([]string, 0, len(placeholders))
	for _, tpl := range placeholders {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"triagens-registro-civil", "triagens-primeira-foto-documento"}, ids)

	all := store.PlaceholdersForChapter("2", 40, true)
	assert.Len(t, all, 6)
}

func TestFilterByAge(t *testing.T) {
	store := New()

	all := store.TemplatesForChapter("6")
	atSixMonths := FilterByAge(all, 180)

	ids := make([]string, 0, len(atSixMonths))
	for _, tpl := range atSixMonths {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"mesversario-06", "resumo-mes-06"}, ids)
}

func TestTemplatesByType(t *testing.T) {
	store := New()

	vaccines := store.TemplatesByType(models.TypeVaccine)
	require.NotEmpty(t, vaccines)
	for _, tpl := range vaccines {
		assert.Equal(t, models.TypeVaccine, tpl.Type)
	}

	letters := store.TemplatesByType(models.TypeLetter)
	assert.Len(t, letters, 6)
}
