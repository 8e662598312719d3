package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/viant/designer-mcp/bridge"
	"github.com/viant/mcp-protocol/schema"
)

// Failure kinds reported in tool failure bodies.
const (
	KindConsumerUnavailable = "consumerUnavailable"
	KindTimeout             = "timeout"
	KindExecutionFailed     = "toolExecutionFailed"
	KindCancelled           = "cancelled"
)

// Failure is the in-band body of a failed tool call.
type Failure struct {
	Error    bool            `json:"error"`
	Message  string          `json:"message"`
	ToolName string          `json:"toolName"`
	Kind     string          `json:"kind"`
	Args     json.RawMessage `json:"args,omitempty"`
}

// NewFailure classifies err returned by the bridge; it returns nil for errors that
// are not part of the tool call outcome (store failures).
func NewFailure(toolName string, err error) *Failure {
	ret := &Failure{Error: true, Message: err.Error(), ToolName: toolName}
	unavailable := &bridge.UnavailableError{}
	timeout := &bridge.TimeoutError{}
	execution := &bridge.ExecutionError{}
	switch {
	case errors.As(err, &unavailable):
		ret.Kind = KindConsumerUnavailable
		ret.Args = unavailable.Args
		if len(bytes.TrimSpace(ret.Args)) == 0 {
			ret.Args = json.RawMessage("{}")
		}
	case errors.As(err, &timeout):
		ret.Kind = KindTimeout
	case errors.As(err, &execution):
		ret.Kind = KindExecutionFailed
	case errors.Is(err, bridge.ErrClosed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ret.Kind = KindCancelled
	default:
		return nil
	}
	return ret
}

// FormatPayload renders a result payload as text: JSON strings verbatim,
// anything else indented with two spaces.
func FormatPayload(payload json.RawMessage) string {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return "null"
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil {
			return text
		}
	}
	buffer := &bytes.Buffer{}
	if err := json.Indent(buffer, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}
	return buffer.String()
}

func textResult(text string, isError bool) *schema.CallToolResult {
	ret := &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			{
				Type: "text",
				Text: text,
			},
		},
	}
	if isError {
		ret.IsError = &isError
	}
	return ret
}

func failureResult(failure *Failure) *schema.CallToolResult {
	data, err := json.Marshal(failure)
	if err != nil {
		return textResult(failure.Message, true)
	}
	return textResult(string(data), true)
}
