// internal/models/records.go
package models

// Privacy levels for a moment.
const (
	PrivacyPrivate = "private"
	PrivacyPeople  = "people"
	PrivacyLink    = "link"
)

// Moment statuses.
const (
	MomentStatusDraft     = "draft"
	MomentStatusPublished = "published"
)

// Vaccine statuses.
const (
	VaccineStatusCompleted = "completed"
	VaccineStatusPending   = "pending"
	VaccineStatusScheduled = "scheduled"
)

// Moment is a user-authored record. TemplateID is empty for free-form notes;
// a template is completed when at least one moment references it.
type Moment struct {
	ID         string   `json:"id"`
	ChapterID  string   `json:"chapterId"`
	TemplateID string   `json:"templateId,omitempty"`
	Title      string   `json:"title"`
	Date       string   `json:"date"` // ISO 8601
	Age        string   `json:"age"`
	Location   string   `json:"location,omitempty"`
	People     []string `json:"people,omitempty"`
	Media      []string `json:"media"`
	NoteShort  string   `json:"noteShort,omitempty"`
	NoteLong   string   `json:"noteLong,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Privacy    string   `json:"privacy"`
	Status     string   `json:"status"`
}

// VaccineRecord tracks one dose of the vaccination schedule.
type VaccineRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date,omitempty"`
	AgeRecommended int    `json:"ageRecommended"` // days
	Dose           string `json:"dose"`
	Lot            string `json:"lot,omitempty"`
	Location       string `json:"location,omitempty"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
}

// GrowthMeasurement is one point of the growth time series. Entries keep
// insertion order; they are never re-sorted.
type GrowthMeasurement struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Age               string  `json:"age,omitempty"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	HeadCircumference float64 `json:"headCircumference,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// SleepRecord is one sleep or nap entry.
type SleepRecord struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Type     string  `json:"type"` // "sleep" or "nap"
	Duration float64 `json:"duration"` // hours
	Mood     string  `json:"mood,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// SleepHumorEntry is the daily sleep-and-mood diary entry.
type SleepHumorEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	SleepHours   float64 `json:"sleepHours"`
	SleepQuality string  `json:"sleepQuality"` // excellent, good, fair, poor
	Mood         string  `json:"mood"`         // happy, calm, fussy, crying, sleepy
	Notes        string  `json:"notes,omitempty"`
}
