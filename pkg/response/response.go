// Package response writes the JSON envelopes used across the API.
//
// Two envelope families exist because the dashboard consumes both:
//
//   - the account/admin routes answer {"success": bool, "message": ...}
//   - the menu routes answer {"status": "ok"|"error", "data": ...}
package response

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// ─── success/message envelope ─────────────────────────────────────────────────

type successEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK sends a 200 {"success":true} response with an optional message.
func OK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Message: message})
}

// OKData sends a 200 {"success":true} response carrying data.
func OKData(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Message: message, Data: data})
}

// CreatedMsg sends a 201 {"success":true} response.
func CreatedMsg(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusCreated, successEnvelope{Success: true, Message: message})
}

// Fail sends {"success":false} with the given HTTP status and message.
// The message is surfaced verbatim by the dashboard, so keep it user-readable.
func Fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, successEnvelope{Success: false, Message: message})
}

// ─── status/data envelope (menu routes) ───────────────────────────────────────

type statusEnvelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Status sends a 200 {"status":"ok"} response with data.
func Status(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, statusEnvelope{Status: "ok", Data: data})
}

// StatusMsg sends a 200 {"status":"ok"} response with a message and data.
func StatusMsg(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, statusEnvelope{Status: "ok", Message: message, Data: data})
}

// StatusError sends {"status":"error"} with the given HTTP status.
func StatusError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, statusEnvelope{Status: "error", Message: message})
}

// ─── generic helpers ──────────────────────────────────────────────────────────

// JSON writes an arbitrary body with the given status. Used where the wire
// shape is a bare value (e.g. the /viewusers array).
func JSON(w http.ResponseWriter, status int, body interface{}) {
	writeJSON(w, status, body)
}

// Error sends a plain JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, successEnvelope{Success: false, Message: message})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}{false, "Validation failed", errs})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Fail(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Fail(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Fail(w, http.StatusNotFound, "Not found")
}
