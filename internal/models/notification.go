// internal/models/notification.go
package models

import "time"

// Notification types.
const (
	NotificationAction    = "action"
	NotificationReminder  = "reminder"
	NotificationMilestone = "milestone"
)

// Notification scopes. Baby-scoped items concern the specific child;
// theme-scoped items concern a recurring theme and can be muted as a group.
const (
	ScopeBaby  = "baby"
	ScopeTheme = "theme"
)

// Notification categories (time buckets on the notifications screen).
const (
	CategoryThisWeek = "this-week"
	CategoryPrevious = "previous"
)

// ActionTarget names the external form an action opens. The set is sealed;
// every consumer switches exhaustively over the variants.
type ActionTarget interface {
	actionTarget()
}

// MomentFormTarget opens the moment form, optionally pre-bound to a catalog
// template. VaccineID, when set, links the saved moment back to a pending
// vaccine record.
type MomentFormTarget struct {
	ChapterID  string `json:"chapterId,omitempty"`
	TemplateID string `json:"templateId,omitempty"`
	VaccineID  string `json:"vaccineId,omitempty"`
}

// SleepFormTarget opens the sleep diary form.
type SleepFormTarget struct{}

// GrowthFormTarget opens the growth measurement form.
type GrowthFormTarget struct{}

func (MomentFormTarget) actionTarget() {}
func (SleepFormTarget) actionTarget()  {}
func (GrowthFormTarget) actionTarget() {}

// Action is the one-tap affordance attached to a notification.
type Action struct {
	Label  string       `json:"label"`
	Target ActionTarget `json:"-"`
}

// Notification is a synthesized reminder. Notifications are transient: they
// are recomputed from scratch on every refresh and never persisted. Date is
// synthetic and used only for bucketing.
type Notification struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Scope    string    `json:"scope"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Action   Action    `json:"action"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
}
