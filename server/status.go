package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

type statusView struct {
	Agent             string `json:"agent"`
	ConsumerConnected bool   `json:"consumerConnected"`
	LastConsumerPing  string `json:"lastConsumerPing"`
	CommandsExecuted  int    `json:"commandsExecuted"`
	QueueLength       int    `json:"queueLength"`
	Timestamp         string `json:"timestamp"`
}

type healthView struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.bridge.Status(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, &statusView{
		Agent:             s.info.Name + "-agent",
		ConsumerConnected: status.Connected,
		LastConsumerPing:  status.LastPing,
		CommandsExecuted:  status.CommandsExecuted,
		QueueLength:       status.PendingCommands,
		Timestamp:         time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &healthView{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Service:   s.info.Name,
		Version:   s.info.Version,
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "%v %v\n\n", s.info.Name, s.info.Version)
	builder.WriteString("Model Context Protocol tools for controlling the designer through its browser extension.\n\n")
	builder.WriteString("Available endpoints:\n")
	fmt.Fprintf(builder, "- %v - SSE connection for MCP clients\n", s.sseURI)
	fmt.Fprintf(builder, "- %v - streamable HTTP connection for MCP clients\n", s.streamableURI)
	fmt.Fprintf(builder, "- %v - extension polling endpoint\n", PollURI)
	fmt.Fprintf(builder, "- %v - command result submission\n", ResultURI)
	builder.WriteString("- /status - server status\n")
	builder.WriteString("- /health - health check\n")
	fmt.Fprintf(builder, "\nTools: %v\n", s.catalog.Len())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(builder.String()))
}
