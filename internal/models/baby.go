// internal/models/baby.go
package models

// Baby is the child whose birth date anchors every age computation. One baby
// is active at a time; switching recomputes all derived state.
type Baby struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // ISO 8601 date
	City      string `json:"city,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Gender    string `json:"gender,omitempty"`
	IsActive  bool   `json:"isActive,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// FamilyMember is a person in the baby's family tree.
type FamilyMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Relation  string `json:"relation"`
	BirthDate string `json:"birthDate,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
	Order     int    `json:"order,omitempty"`
}
