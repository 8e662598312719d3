package server

import (
	"net/http"
)

const protocolVersionHeader = "MCP-Protocol-Version"

// knownProtocolVersions lists revisions accepted besides the served one.
var knownProtocolVersions = []string{"2024-11-05", "2025-03-26", "2025-06-18"}

// protocolVersionMiddleware rejects requests declaring an unknown protocol
// version and echoes the served version.
func protocolVersionMiddleware(version string) Middleware {
	accepted := map[string]bool{version: true}
	for _, known := range knownProtocolVersions {
		accepted[known] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested := r.Header.Get(protocolVersionHeader)
			if requested != "" && !accepted[requested] {
				http.Error(w, "invalid MCP-Protocol-Version", http.StatusBadRequest)
				return
			}
			w.Header().Set(protocolVersionHeader, version)
			next.ServeHTTP(w, r)
		})
	}
}
