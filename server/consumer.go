package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

const maxResultBodySize = 32 << 20

// commandResult is the body posted by the extension once a command is executed.
type commandResult struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// handlePoll hands the oldest undelivered command, or a heartbeat, to the extension.
func (s *Server) handlePoll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}
	delivery, err := s.bridge.TakeNext(r.Context())
	if err != nil {
		log.Printf("poll failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, delivery)
}

// handleResult settles a command with the posted payload; unknown ids are acknowledged too.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxResultBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("failed to read body: %v", err)))
		return
	}
	result := &commandResult{}
	if err = json.Unmarshal(data, result); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(fmt.Sprintf("invalid command result: %v", err)))
		return
	}
	if err = s.bridge.Complete(r.Context(), result.ID, result.Payload); err != nil {
		log.Printf("command %v result failed: %v", result.ID, err)
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorBody(err.Error()))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
