package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Logger sends notifications/message to the MCP client once it has set a logging level
type Logger struct {
	name     string
	level    *schema.LoggingLevel
	notifier transport.Notifier
}

// toolEvent is the message data emitted for tool calls.
type toolEvent struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func (l *Logger) log(ctx context.Context, level schema.LoggingLevel, data any) error {
	if l.notifier == nil || l.level == nil || *l.level == "" || l.level.Ordinal() > level.Ordinal() {
		return nil
	}
	request := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	request.Params, err = json.Marshal(params)
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, request)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelDebug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Info, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Warning, data)
}

// ToolStarted reports a command handed to the bridge.
func (l *Logger) ToolStarted(ctx context.Context, tool string) error {
	return l.Info(ctx, &toolEvent{Tool: tool, Message: "executing tool: " + tool})
}

// ToolFailed reports a call that ended with a failure result.
func (l *Logger) ToolFailed(ctx context.Context, failure *Failure) error {
	return l.Warning(ctx, &toolEvent{Tool: failure.ToolName, Message: failure.Message, Kind: failure.Kind})
}

func NewLogger(name string, level *schema.LoggingLevel, notifier transport.Notifier) *Logger {
	return &Logger{
		name:     name,
		level:    level,
		notifier: notifier,
	}
}
