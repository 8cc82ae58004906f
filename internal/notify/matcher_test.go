// internal/notify/matcher_test.go
package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babybook-core/internal/catalog"
	"babybook-core/internal/models"
)

func vaccineTemplates() []models.Template {
	return catalog.New().TemplatesByType(models.TypeVaccine)
}

func TestMatchVaccineByName(t *testing.T) {
	templates := vaccineTemplates()

	tpl := MatchVaccineTemplate(models.VaccineRecord{Name: "BCG", AgeRecommended: 0}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, "vacina-bcg", tpl.ID)

	// Case-insensitive: the recorded name may be a fragment of the template
	// name. Three slots carry "Penta"; catalog order breaks the tie.
	tpl = MatchVaccineTemplate(models.VaccineRecord{Name: "penta", AgeRecommended: 120}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, "vacina-penta-2m", tpl.ID)

	// Description text counts too.
	tpl = MatchVaccineTemplate(models.VaccineRecord{Name: "Primeira dose aos 2 meses", AgeRecommended: 0}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, "vacina-penta-2m", tpl.ID)
}

func TestMatchVaccineNameBeatsAgeProximity(t *testing.T) {
	templates := []models.Template{
		{ID: "hep-b", Name: "Hepatite B", Type: models.TypeVaccine, AgeRangeStart: 0},
		{ID: "bcg", Name: "Vacina BCG", Type: models.TypeVaccine, AgeRangeStart: 180},
	}

	// "Vacina BCG" contains the recorded name, so the name tier wins even
	// though "Hepatite B" sits at the recommended age.
	tpl := MatchVaccineTemplate(models.VaccineRecord{Name: "BCG", AgeRecommended: 0}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, "bcg", tpl.ID)
}

func TestMatchVaccineByAgeProximity(t *testing.T) {
	templates := vaccineTemplates()

	// Unknown name, recommended at ~3 months: the meningo C slot starts at
	// 90 days and wins on proximity over later slots.
	tpl := MatchVaccineTemplate(models.VaccineRecord{Name: "Imunizante XYZ", AgeRecommended: 95}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, 60, tpl.AgeRangeStart) // 2-month slot rounds to month 2, within ±1 of month 3
}

func TestMatchVaccineByAgeTier(t *testing.T) {
	templates := []models.Template{
		{ID: "a", Type: models.TypeVaccine, AgeRangeStart: 0},
		{ID: "b", Type: models.TypeVaccine, AgeRangeStart: 180},
	}

	tpl := matchVaccineByAge(models.VaccineRecord{AgeRecommended: 170}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, "b", tpl.ID)

	assert.Nil(t, matchVaccineByAge(models.VaccineRecord{AgeRecommended: 90}, templates))
}

func TestMatchVaccineFallsBackToFirst(t *testing.T) {
	templates := []models.Template{
		{ID: "first", Type: models.TypeVaccine, AgeRangeStart: 720},
		{ID: "second", Type: models.TypeVaccine, AgeRangeStart: 720},
	}

	tpl := MatchVaccineTemplate(models.VaccineRecord{Name: "Desconhecida", AgeRecommended: 90}, templates)
	require.NotNil(t, tpl)
	assert.Equal(t, "first", tpl.ID)
}

func TestMatchVaccineNoTemplates(t *testing.T) {
	assert.Nil(t, MatchVaccineTemplate(models.VaccineRecord{Name: "BCG"}, nil))
}

func TestMatchVaccineDeterministic(t *testing.T) {
	templates := vaccineTemplates()
	record := models.VaccineRecord{Name: "Hepatite desconhecida", AgeRecommended: 365}

	first := MatchVaccineTemplate(record, templates)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := MatchVaccineTemplate(record, templates)
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}
}
