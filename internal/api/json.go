// internal/api/json.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"babybook-core/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encode errors mean the client went away; nothing useful to do.
	_ = json.NewEncoder(w).Encode(v)
}

type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func toNotificationView(n models.Notification) NotificationView {
	view := NotificationView{
		ID:       n.ID,
		Type:     n.Type,
		Scope:    n.Scope,
		Title:    n.Title,
		Subtitle: n.Subtitle,
		Date:     n.Date.Format(time.RFC3339),
		Category: n.Category,
	}
	view.Action.Label = n.Action.Label

	switch target := n.Action.Target.(type) {
	case models.MomentFormTarget:
		view.Action.Kind = "moment"
		view.Action.ChapterID = target.ChapterID
		view.Action.TemplateID = target.TemplateID
		view.Action.VaccineID = target.VaccineID
	case models.SleepFormTarget:
		view.Action.Kind = "sleep"
	case models.GrowthFormTarget:
		view.Action.Kind = "growth"
	}
	return view
}
