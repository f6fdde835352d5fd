package rest

import (
	"encoding/json"
	"net/http"
)

// notice carries a user-facing flash message alongside the payload.
type notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func infoNotice(msg string) *notice    { return &notice{Level: "info", Message: msg} }
func successNotice(msg string) *notice { return &notice{Level: "success", Message: msg} }
func warnNotice(msg string) *notice    { return &notice{Level: "warning", Message: msg} }
func errorNotice(msg string) *notice   { return &notice{Level: "error", Message: msg} }

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write response", "error", err)
	}
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:   "MALFORMED_BODY",
			Notice: errorNotice("The request body could not be read"),
		})
		return false
	}
	return true
}
