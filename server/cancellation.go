package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/designer-mcp/internal/conv"
	"github.com/viant/jsonrpc"
)

type cancelledParams struct {
	RequestId interface{} `json:"requestId"`
	Reason    string      `json:"reason,omitempty"`
}

// Cancel stops waiting for the request named by a notifications/cancelled message.
// The bridge command itself stays queued until its result or timeout.
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	var params cancelledParams
	if err := json.Unmarshal(notification.Params, &params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	if params.RequestId == nil {
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	if h.cancelOperation(conv.AsKey(params.RequestId)) {
		_ = h.Logger.Debug(ctx, fmt.Sprintf("request %v cancelled: %v", params.RequestId, params.Reason))
	}
	return nil
}
