// internal/api/dto.go
package api

import (
	"babybook-core/internal/completion"
	"babybook-core/internal/models"
)

// ChapterListResponse wraps the ordered chapter list.
type ChapterListResponse struct {
	Chapters []models.Chapter `json:"chapters"`
}

// TemplateListResponse wraps a chapter's placeholder templates.
type TemplateListResponse struct {
	Templates []models.Template `json:"templates"`
}

// ChapterCompletionResponse is the resolved chapter view (aliased from the
// domain layer).
type ChapterCompletionResponse = completion.ChapterCompletion

// CompletionSummaryResponse is the cross-chapter aggregate (aliased from the
// domain layer).
type CompletionSummaryResponse = completion.Summary

// NotificationListResponse wraps the visible feed.
type NotificationListResponse struct {
	Notifications []NotificationView `json:"notifications"`
}

// NotificationView flattens the sealed action target for JSON clients.
type NotificationView struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Scope    string `json:"scope"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Action   struct {
		Label      string `json:"label"`
		Kind       string `json:"kind"` // moment | sleep | growth
		ChapterID  string `json:"chapterId,omitempty"`
		TemplateID string `json:"templateId,omitempty"`
		VaccineID  string `json:"vaccineId,omitempty"`
	} `json:"action"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// MuteResponse reports the mute state after a toggle.
type MuteResponse struct {
	Muted bool `json:"muted"`
}

// ActionResponse reports whether the opener saved the form.
type ActionResponse struct {
	Saved bool `json:"saved"`
}
