package server

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc/transport/server/http/sse"
	"github.com/viant/jsonrpc/transport/server/http/streamable"
)

const (
	// PollURI is polled by the extension for the next command.
	PollURI = "/mcp/bridge/events"
	// ResultURI receives command results from the extension.
	ResultURI = "/mcp/command-result"

	defaultAddr = "127.0.0.1:8787"
)

type httpServer struct {
	sseHandler         *sse.Handler
	streamingHandler   *streamable.Handler
	addr               string
	cors               *Cors
	consumerAuthorizer Middleware
	customHTTPHandlers map[string]http.HandlerFunc
	sseURI             string
	sseMessageURI      string
	streamableURI      string
}

// HTTP creates an HTTP server exposing the MCP doors and the extension endpoints.
func (s *Server) HTTP(_ context.Context, addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		addr = defaultAddr
	}
	if s.sseURI == "" {
		s.sseURI = "/sse"
	}
	if s.sseMessageURI == "" {
		s.sseMessageURI = "/sse/message"
	}
	if s.streamableURI == "" {
		s.streamableURI = "/mcp"
	}
	if s.cors == nil {
		s.cors = DefaultCors()
	}
	s.sseHandler = sse.New(s.NewHandler,
		sse.WithURI(s.sseURI),
		sse.WithMessageURI(s.sseMessageURI),
	)
	s.streamingHandler = streamable.New(s.NewHandler,
		streamable.WithURI(s.streamableURI),
	)

	cors := &corsHandler{Cors: s.cors}
	common := []Middleware{recoveryMiddleware, cors.Middleware, originValidationMiddleware(s.cors.AllowOrigins)}
	mcpMiddleware := append(append([]Middleware{}, common...), protocolVersionMiddleware(s.protocolVersion))
	consumerMiddleware := append([]Middleware{}, common...)
	if s.consumerAuthorizer != nil {
		consumerMiddleware = append(consumerMiddleware, s.consumerAuthorizer)
	}

	mux := http.NewServeMux()
	for path, handler := range s.customHTTPHandlers {
		mux.Handle(path, ChainMiddlewareHandlers(handler, common...))
	}
	sseChain := ChainMiddlewareHandlers(s.sseHandler, mcpMiddleware...)
	mux.Handle(s.sseURI, sseChain)
	mux.Handle(s.sseMessageURI, sseChain)
	mux.Handle(s.streamableURI, ChainMiddlewareHandlers(s.streamingHandler, mcpMiddleware...))

	mux.Handle(PollURI, ChainMiddlewareHandlers(http.HandlerFunc(s.handlePoll), consumerMiddleware...))
	mux.Handle(ResultURI, ChainMiddlewareHandlers(http.HandlerFunc(s.handleResult), consumerMiddleware...))
	mux.Handle("/status", ChainMiddlewareHandlers(http.HandlerFunc(s.handleStatus), common...))
	mux.Handle("/health", ChainMiddlewareHandlers(http.HandlerFunc(s.handleHealth), common...))
	mux.Handle("/", ChainMiddlewareHandlers(http.HandlerFunc(s.handleInfo), common...))
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
