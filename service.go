package designer

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/viant/designer-mcp/bridge"
	"github.com/viant/designer-mcp/server"
	"github.com/viant/designer-mcp/state"
	"github.com/viant/jsonrpc/transport/server/stdio"
)

// Service bundles the state store, the bridge and the MCP front.
type Service struct {
	Store   state.Store
	Bridge  *bridge.Bridge
	Server  *server.Server
	options *ServerOptions
}

// HTTP returns the HTTP server for the configured address
func (s *Service) HTTP(ctx context.Context) *http.Server {
	return s.Server.HTTP(ctx, s.options.Addr())
}

// Stdio returns an MCP server over stdin/stdout sharing the bridge
func (s *Service) Stdio(ctx context.Context) *stdio.Server {
	return s.Server.Stdio(ctx)
}

// Close rejects every waiting tool call
func (s *Service) Close() error {
	return s.Bridge.Close()
}

// NewStore creates the state store selected by options.
func NewStore(options *StoreOptions) state.Store {
	if options == nil || options.URL == "" {
		return state.NewMemoryStore()
	}
	return state.NewFileStore(options.URL)
}

// NewService creates the relay; commands left in a durable store by a previous process are dropped.
func NewService(ctx context.Context, options *ServerOptions) (*Service, error) {
	if options == nil {
		options = &ServerOptions{}
	}
	store := NewStore(options.Store)
	var bridgeOptions []bridge.Option
	if bridgeConfig := options.Bridge; bridgeConfig != nil {
		bridgeOptions = append(bridgeOptions,
			bridge.WithLivenessWindow(bridgeConfig.LivenessWindow),
			bridge.WithCommandTimeout(bridgeConfig.CommandTimeout),
		)
	}
	if options.Verbose {
		bridgeOptions = append(bridgeOptions, bridge.WithListener(logStateUpdate))
	}
	aBridge := bridge.New(store, bridgeOptions...)
	dropped, err := aBridge.Recover(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover state: %w", err)
	}
	if dropped > 0 {
		log.Printf("dropped %v orphaned command(s)", dropped)
	}
	srv, err := NewServer(aBridge, options)
	if err != nil {
		_ = aBridge.Close()
		return nil, err
	}
	return &Service{Store: store, Bridge: aBridge, Server: srv, options: options}, nil
}

func logStateUpdate(snapshot *state.State) {
	log.Printf("state updated: commandCount=%v queueLength=%v consumerConnected=%v",
		snapshot.CommandCount, snapshot.Pending.Len(), snapshot.ConsumerConnected)
}
