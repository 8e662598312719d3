package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-protocol/schema"
)

func TestLogger_ToolEvents(t *testing.T) {
	failure := &Failure{Error: true, Message: "Tool get_site_info timed out", ToolName: "get_site_info", Kind: KindTimeout}
	var testCases = []struct {
		description string
		level       schema.LoggingLevel
		expect      []string
	}{
		{description: "level not set", level: ""},
		{description: "warning hides started", level: schema.Warning, expect: []string{`{"tool":"get_site_info","message":"Tool get_site_info timed out","kind":"timeout"}`}},
		{description: "debug shows all", level: schema.LoggingLevelDebug, expect: []string{
			`{"tool":"get_site_info","message":"executing tool: get_site_info"}`,
			`{"tool":"get_site_info","message":"Tool get_site_info timed out","kind":"timeout"}`,
		}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			notifier := &testNotifier{}
			level := testCase.level
			aLogger := NewLogger("designer-mcp", &level, notifier)
			require.NoError(t, aLogger.ToolStarted(ctx, "get_site_info"))
			require.NoError(t, aLogger.ToolFailed(ctx, failure))
			require.Len(t, notifier.notifications, len(testCase.expect))
			for i, expect := range testCase.expect {
				params := &struct {
					Logger string          `json:"logger"`
					Data   json.RawMessage `json:"data"`
				}{}
				require.NoError(t, json.Unmarshal(notifier.notifications[i].Params, params))
				assert.Equal(t, "designer-mcp", params.Logger)
				assert.JSONEq(t, expect, string(params.Data))
			}
		})
	}
}
