// internal/models/template.go
package models

// TemplateType tags a placeholder template with the kind of record it expects.
type TemplateType string

const (
	TypeMonthBirthday TemplateType = "mesversario"
	TypeFirstTime     TemplateType = "primeira-vez"
	TypeConsultation  TemplateType = "consulta"
	TypeVaccine       TemplateType = "vacina"
	TypeMeasurement   TemplateType = "medida"
	TypeLetter        TemplateType = "carta"
	TypeNote          TemplateType = "nota"
	TypeEvent         TemplateType = "evento"
	TypeArt           TemplateType = "arte"
	TypeScreening     TemplateType = "triagem"
	TypeRecord        TemplateType = "registro"
)

// TemplateMeta is the per-type metadata attached to a template. Exactly one
// variant exists per TemplateType; consumers switch over the concrete type.
type TemplateMeta interface {
	templateMeta()
}

// MonthBirthdayMeta describes a monthly anniversary slot.
type MonthBirthdayMeta struct {
	Slot     int    `json:"slot"`
	SeriesID string `json:"seriesId,omitempty"`
}

// FirstTimeMeta describes a first-time milestone.
type FirstTimeMeta struct {
	Categories []string `json:"categories,omitempty"`
	Category   string   `json:"category,omitempty"`
}

// ConsultationMeta describes a medical consultation template.
type ConsultationMeta struct {
	Kinds    []string `json:"kinds,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

// VaccineMeta describes a vaccination slot.
type VaccineMeta struct {
	Dose     string `json:"dose,omitempty"`
	Scheme   string `json:"scheme,omitempty"`
	Regional bool   `json:"regional,omitempty"`
}

// MeasurementMeta describes a growth measurement template.
type MeasurementMeta struct{}

// LetterMeta describes a letter or time-capsule template.
type LetterMeta struct {
	FutureDelivery bool `json:"futureDelivery,omitempty"`
	Optional       bool `json:"optional,omitempty"`
}

// NoteMeta describes a free-form note template.
type NoteMeta struct {
	SeriesID   string `json:"seriesId,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
	Slot       int    `json:"slot,omitempty"`
	Section    string `json:"section,omitempty"`
	Input      string `json:"input,omitempty"`
	Optional   bool   `json:"optional,omitempty"`
	Default    bool   `json:"default,omitempty"`
}

// EventMeta describes an event template.
type EventMeta struct {
	Custom bool `json:"custom,omitempty"`
}

// ArtMeta describes an artwork template.
type ArtMeta struct{}

// ScreeningMeta describes a newborn screening test.
type ScreeningMeta struct{}

// RecordMeta describes an administrative record template.
type RecordMeta struct {
	Optional  bool `json:"optional,omitempty"`
	Checklist bool `json:"checklist,omitempty"`
}

func (MonthBirthdayMeta) templateMeta() {}
func (FirstTimeMeta) templateMeta()     {}
func (ConsultationMeta) templateMeta()  {}
func (VaccineMeta) templateMeta()       {}
func (MeasurementMeta) templateMeta()   {}
func (LetterMeta) templateMeta()        {}
func (NoteMeta) templateMeta()          {}
func (EventMeta) templateMeta()         {}
func (ArtMeta) templateMeta()           {}
func (ScreeningMeta) templateMeta()     {}
func (RecordMeta) templateMeta()        {}

// Template is a recordable slot with a valid age window and a type tag.
// AgeRangeStart/AgeRangeEnd are in days since birth; a nil end means the
// window never closes. Invariant: start <= end when the end is set.
type Template struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Icon          string       `json:"icon"`
	Description   string       `json:"description"`
	Type          TemplateType `json:"templateType"`
	AgeRangeStart int          `json:"ageRangeStart"`
	AgeRangeEnd   *int         `json:"ageRangeEnd,omitempty"`
	AllowMultiple bool         `json:"allowMultiple,omitempty"`
	Meta          TemplateMeta `json:"-"`
}

// InWindow reports whether ageInDays falls inside the template's age window.
func (t Template) InWindow(ageInDays int) bool {
	if ageInDays < t.AgeRangeStart {
		return false
	}
	if t.AgeRangeEnd != nil && ageInDays > *t.AgeRangeEnd {
		return false
	}
	return true
}

// Chapter is a thematic grouping of templates. Template ownership lives in
// the catalog, not inline.
type Chapter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Objective   string `json:"objective,omitempty"`
	Viewer      string `json:"viewer,omitempty"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}
