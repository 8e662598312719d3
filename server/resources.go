package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

const (
	// SiteInfoURI exposes the aggregate bridge status.
	SiteInfoURI = "designer://site-info"
	// CommandQueueURI exposes the pending command detail.
	CommandQueueURI = "designer://command-queue"

	jsonMimeType = "application/json"
)

func resources() []schema.Resource {
	mimeType := jsonMimeType
	siteInfo := "Current designer site information and connection status"
	commandQueue := "Current command queue status"
	return []schema.Resource{
		{Name: "Site Information", Uri: SiteInfoURI, Description: &siteInfo, MimeType: &mimeType},
		{Name: "Command Queue", Uri: CommandQueueURI, Description: &commandQueue, MimeType: &mimeType},
	}
}

// ListResources handles the resources/list method
func (h *Handler) ListResources(_ context.Context, _ *jsonrpc.Request) (*schema.ListResourcesResult, *jsonrpc.Error) {
	return &schema.ListResourcesResult{Resources: resources()}, nil
}

// ReadResource handles the resources/read method
func (h *Handler) ReadResource(ctx context.Context, request *jsonrpc.Request) (*schema.ReadResourceResult, *jsonrpc.Error) {
	readRequest := &schema.ReadResourceRequest{Method: schema.MethodResourcesRead}
	if err := json.Unmarshal(request.Params, &readRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	uri := readRequest.Params.Uri
	var view interface{}
	var err error
	switch uri {
	case SiteInfoURI:
		view, err = h.bridge.Status(ctx)
	case CommandQueueURI:
		view, err = h.bridge.Queue(ctx)
	default:
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("Unknown resource: %v", uri), request.Params)
	}
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	mimeType := jsonMimeType
	return &schema.ReadResourceResult{
		Contents: []schema.ReadResourceResultContentsElem{
			{
				Uri:      uri,
				MimeType: &mimeType,
				Text:     string(data),
			},
		},
	}, nil
}
