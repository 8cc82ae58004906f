// internal/completion/resolver_test.go
package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babybook-core/internal/catalog"
	"babybook-core/internal/models"
)

func TestResolveChapter(t *testing.T) {
	r := NewResolver(catalog.New())

	moments := []models.Moment{
		{
			ID:         "m1",
			ChapterID:  "2",
			TemplateID: "triagens-teste-pezinho",
			Title:      "Teste do Pezinho",
			Media:      []string{"photo-a.jpg", "photo-b.jpg"},
		},
	}

	// At 10 days all six screening templates are visible.
	resolved := r.ResolveChapter("2", 10, moments)
	require.Equal(t, 6, resolved.Total)
	assert.Equal(t, 1, resolved.Completed)
	assert.Equal(t, 17, resolved.Percentage)

	var pezinho TemplateStatus
	for _, st := range resolved.Templates {
		if st.Template.ID == "triagens-teste-pezinho" {
			pezinho = st
		}
	}
	require.True(t, pezinho.IsCompleted)
	assert.Equal(t, "m1", pezinho.MomentID)
	assert.Equal(t, "photo-a.jpg", pezinho.Thumbnail)
}

func TestResolveChapterFirstMatchWins(t *testing.T) {
	r := NewResolver(catalog.New())

	moments := []models.Moment{
		{ID: "m1", TemplateID: "saude-medidas"},
		{ID: "m2", TemplateID: "saude-medidas", Media: []string{"later.jpg"}},
	}

	resolved := r.ResolveChapter("4", 0, moments)
	for _, st := range resolved.Templates {
		if st.Template.ID == "saude-medidas" {
			assert.Equal(t, "m1", st.MomentID)
			assert.Empty(t, st.Thumbnail)
		}
	}
}

func TestResolveChapterIgnoresFreeFormMoments(t *testing.T) {
	r := NewResolver(catalog.New())

	// Free-form moments carry no template id and never complete a slot.
	moments := []models.Moment{{ID: "m1", ChapterID: "10", Title: "nota solta"}}

	resolved := r.ResolveChapter("10", 30, moments)
	assert.Equal(t, 0, resolved.Completed)
}

func TestResolveChapterUnknown(t *testing.T) {
	r := NewResolver(catalog.New())

	resolved := r.ResolveChapter("nope", 30, nil)
	assert.Zero(t, resolved.Total)
	assert.Zero(t, resolved.Percentage)
	assert.Empty(t, resolved.Templates)
}

func TestAggregate(t *testing.T) {
	r := NewResolver(catalog.New())

	moments := []models.Moment{
		{ID: "m1", TemplateID: "triagens-teste-pezinho"},
		{ID: "m2", TemplateID: "vacina-bcg"},
	}

	sum := r.Aggregate(10, moments)
	require.Len(t, sum.Chapters, 12)
	assert.Equal(t, 2, sum.Completed)

	var total int
	for _, ch := range sum.Chapters {
		total += ch.Total
	}
	assert.Equal(t, total, sum.Total)
	assert.Greater(t, sum.Total, 0)
	assert.Greater(t, sum.Percentage, 0)
}
