package server

import (
	"context"
	"errors"

	"github.com/viant/designer-mcp/bridge"
	"github.com/viant/designer-mcp/catalog"
	"github.com/viant/designer-mcp/internal/collection"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

const (
	// Name is the implementation name reported to MCP clients.
	Name = "designer-mcp"
	// Version is the implementation version.
	Version = "2.0.0"
)

// Server represents the MCP protocol front of the command bridge
type Server struct {
	bridge  *bridge.Bridge
	catalog *catalog.Catalog
	info    schema.Implementation

	instructions    *string
	protocolVersion string
	loggerName      string

	httpServer
	stdioServer
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(_ context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:         s,
		Notifier:       notifier,
		activeContexts: collection.NewSyncMap[string, *activeContext](),
	}
	ret.Logger = NewLogger(s.loggerName, &ret.loggingLevel, notifier)
	return ret
}

// Catalog returns the served tool catalog
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog
}

// New creates a new Server instance
func New(aBridge *bridge.Bridge, options ...Option) (*Server, error) {
	if aBridge == nil {
		return nil, errors.New("bridge was nil")
	}
	s := &Server{
		bridge: aBridge,
		info: schema.Implementation{
			Name:    Name,
			Version: Version,
		},
		loggerName:      Name,
		protocolVersion: schema.LatestProtocolVersion,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	return s, nil
}
