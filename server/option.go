package server

import (
	"errors"
	"net/http"

	"github.com/viant/designer-mcp/catalog"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithCatalog sets the tool catalog.
func WithCatalog(aCatalog *catalog.Catalog) Option {
	return func(s *Server) error {
		if aCatalog == nil {
			return errors.New("catalog was nil")
		}
		s.catalog = aCatalog
		return nil
	}
}

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithInstructions sets instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		if instructions != "" {
			s.instructions = &instructions
		}
		return nil
	}
}

// WithProtocolVersion sets the protocol version returned on initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		if version != "" {
			s.protocolVersion = version
		}
		return nil
	}
}

// WithLoggerName sets the logger name.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithCORS sets the CORS policy.
func WithCORS(cors *Cors) Option {
	return func(s *Server) error {
		s.cors = cors
		return nil
	}
}

// WithConsumerAuthorizer protects the extension endpoints.
func WithConsumerAuthorizer(authorizer Middleware) Option {
	return func(s *Server) error {
		s.consumerAuthorizer = authorizer
		return nil
	}
}

// WithEndpoint sets the default HTTP listen address.
func WithEndpoint(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithSSEURI sets the SSE stream and message URIs.
func WithSSEURI(uri, messageURI string) Option {
	return func(s *Server) error {
		s.sseURI = uri
		s.sseMessageURI = messageURI
		return nil
	}
}

// WithStreamableURI sets the streamable HTTP URI.
func WithStreamableURI(uri string) Option {
	return func(s *Server) error {
		s.streamableURI = uri
		return nil
	}
}

// WithCustomHTTPHandler mounts an additional handler.
func WithCustomHTTPHandler(path string, handler http.HandlerFunc) Option {
	return func(s *Server) error {
		if s.customHTTPHandlers == nil {
			s.customHTTPHandlers = make(map[string]http.HandlerFunc)
		}
		s.customHTTPHandlers[path] = handler
		return nil
	}
}

// WithStdioOptions sets stdio server options.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = options
		return nil
	}
}
