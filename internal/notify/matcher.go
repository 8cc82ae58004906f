// internal/notify/matcher.go

// Package notify synthesizes the notification feed from the current baby and
// a record store snapshot, and runs the dismiss/snooze/mute lifecycle over it.
package notify

import (
	"math"
	"strings"

	"babybook-core/internal/models"
)

// matchTier is one resolver step. Returns nil when the tier has no opinion;
// the next tier runs.
type matchTier func(v models.VaccineRecord, templates []models.Template) *models.Template

// vaccineMatchTiers is the fixed tie-break order. Keeping the tiers as a
// list makes each one independently testable.
var vaccineMatchTiers = []matchTier{
	matchVaccineByName,
	matchVaccineByAge,
	matchFirstVaccine,
}

// MatchVaccineTemplate resolves a vaccine record to the catalog template it
// most likely corresponds to. templates must be vaccine-typed, in catalog
// order; completed ones are legitimate matches. Nil when the list is empty.
func MatchVaccineTemplate(v models.VaccineRecord, templates []models.Template) *models.Template {
	for _, tier := range vaccineMatchTiers {
		if tpl := tier(v, templates); tpl != nil {
			return tpl
		}
	}
	return nil
}

// matchVaccineByName matches when the template's name or description
// contains the vaccine name, case-insensitively.
func matchVaccineByName(v models.VaccineRecord, templates []models.Template) *models.Template {
	name := strings.ToLower(strings.TrimSpace(v.Name))
	if name == "" {
		return nil
	}
	for i := range templates {
		if strings.Contains(strings.ToLower(templates[i].Name), name) {
			return &templates[i]
		}
		if strings.Contains(strings.ToLower(templates[i].Description), name) {
			return &templates[i]
		}
	}
	return nil
}

// matchVaccineByAge matches on recommended-age proximity: template window
// start and the record's recommended age round to the same month, give or
// take one.
func matchVaccineByAge(v models.VaccineRecord, templates []models.Template) *models.Template {
	recMonth := roundToMonth(v.AgeRecommended)
	for i := range templates {
		if diff := roundToMonth(templates[i].AgeRangeStart) - recMonth; diff >= -1 && diff <= 1 {
			return &templates[i]
		}
	}
	return nil
}

func matchFirstVaccine(_ models.VaccineRecord, templates []models.Template) *models.Template {
	if len(templates) == 0 {
		return nil
	}
	return &templates[0]
}

func roundToMonth(days int) int {
	return int(math.Round(float64(days) / 30))
}
