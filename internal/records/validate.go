// internal/records/validate.go
package records

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	apperrors "babybook-core/internal/common/errors"
	"babybook-core/internal/models"
)

func validateMoment(m models.Moment) error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Date, validation.Required),
		validation.Field(&m.Privacy, validation.Required,
			validation.In(models.PrivacyPrivate, models.PrivacyPeople, models.PrivacyLink)),
		validation.Field(&m.Status, validation.Required,
			validation.In(models.MomentStatusDraft, models.MomentStatusPublished)),
	)
	return wrapValidation(err)
}

func validateVaccine(v models.VaccineRecord) error {
	err := validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&v.AgeRecommended, validation.Min(0)),
		validation.Field(&v.Status, validation.Required,
			validation.In(models.VaccineStatusCompleted, models.VaccineStatusPending, models.VaccineStatusScheduled)),
	)
	return wrapValidation(err)
}

func validateGrowth(g models.GrowthMeasurement) error {
	err := validation.ValidateStruct(&g,
		validation.Field(&g.Date, validation.Required),
		validation.Field(&g.Weight, validation.Min(0.0)),
		validation.Field(&g.Height, validation.Min(0.0)),
		validation.Field(&g.HeadCircumference, validation.Min(0.0)),
	)
	return wrapValidation(err)
}

func validateSleep(r models.SleepRecord) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In("sleep", "nap")),
		validation.Field(&r.Duration, validation.Min(0.0)),
	)
	return wrapValidation(err)
}

func validateSleepHumor(e models.SleepHumorEntry) error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.SleepHours, validation.Min(0.0), validation.Max(24.0)),
		validation.Field(&e.SleepQuality, validation.Required,
			validation.In("excellent", "good", "fair", "poor")),
		validation.Field(&e.Mood, validation.Required,
			validation.In("happy", "calm", "fussy", "crying", "sleepy")),
	)
	return wrapValidation(err)
}

func validateFamilyMember(f models.FamilyMember) error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.Relation, validation.Required),
	)
	return wrapValidation(err)
}

func validateBaby(b models.Baby) error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&b.BirthDate, validation.Required),
	)
	return wrapValidation(err)
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.NewValidationFailedError(err.Error())
}

func decodeError(key string, err error) error {
	return apperrors.NewBlobDecodeFailedError(key, err)
}
