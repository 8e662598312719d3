package designer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/afs"
	"github.com/viant/designer-mcp/bridge"
	"github.com/viant/designer-mcp/catalog"
	"github.com/viant/designer-mcp/server"
	"github.com/viant/mcp-protocol/schema"
	"gopkg.in/yaml.v3"
)

// ServerOptions defines options for configuring the relay.
type ServerOptions struct {
	Name            string           `yaml:"name" json:"name"`
	Version         string           `yaml:"version" json:"version"`
	ProtocolVersion string           `yaml:"protocol" json:"protocol"`
	LoggerName      string           `yaml:"loggerName" json:"loggerName"`
	Instructions    string           `yaml:"instructions" json:"instructions"`
	Verbose         bool             `yaml:"verbose" json:"verbose"`
	Bridge          *BridgeOptions   `yaml:"bridge" json:"bridge"`
	Store           *StoreOptions    `yaml:"store" json:"store"`
	Transport       *ServerTransport `yaml:"transport" json:"transport"`
}

// BridgeOptions tunes consumer liveness and command timeouts.
type BridgeOptions struct {
	LivenessWindow time.Duration `yaml:"livenessWindow" json:"livenessWindow"`
	CommandTimeout time.Duration `yaml:"commandTimeout" json:"commandTimeout"`
}

// StoreOptions selects the state store; an empty URL keeps state in memory.
type StoreOptions struct {
	URL string `yaml:"url" json:"url"`
}

type ServerTransport struct {
	Type           string                      `yaml:"type" json:"type"` // stdio additionally serves MCP over stdin/stdout
	Options        *ServerTransportOptions     `yaml:"options" json:"options"`
	Auth           *ServerOptionAuth           `yaml:"auth" json:"auth"`
	CustomHandlers map[string]http.HandlerFunc `yaml:"-" json:"-"`
}

type ServerTransportOptions struct {
	Host          string       `yaml:"host" json:"host"`
	Port          int          `yaml:"port" json:"port"`
	Cors          *server.Cors `yaml:"cors" json:"cors"`
	SSEURI        string       `yaml:"sseURI" json:"sseURI"`
	SSEMessageURI string       `yaml:"sseMessageURI" json:"sseMessageURI"`
	StreamableURI string       `yaml:"streamableURI" json:"streamableURI"`
}

// ServerOptionAuth protects the extension endpoints with HS256 bearer tokens.
type ServerOptionAuth struct {
	TokenSecret string            `yaml:"tokenSecret" json:"tokenSecret"`
	Authorizer  server.Middleware `yaml:"-" json:"-"`
}

// Addr returns the HTTP listen address.
func (o *ServerOptions) Addr() string {
	if o == nil || o.Transport == nil || o.Transport.Options == nil || o.Transport.Options.Port == 0 {
		return ""
	}
	return fmt.Sprintf("%v:%v", o.Transport.Options.Host, o.Transport.Options.Port)
}

// LoadServerOptions reads YAML options from any afs URL (local path, file://, mem://, gs:// ...).
func LoadServerOptions(ctx context.Context, URL string) (*ServerOptions, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &ServerOptions{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}

// NewServer creates the MCP front for aBridge with the given options.
func NewServer(aBridge *bridge.Bridge, options *ServerOptions) (*server.Server, error) {
	if aBridge == nil {
		return nil, fmt.Errorf("bridge was nil")
	}
	serverOptions := []server.Option{server.WithCatalog(catalog.Default())}
	if options == nil {
		return server.New(aBridge, serverOptions...)
	}
	if options.Name != "" || options.Version != "" {
		impl := schema.Implementation{Name: server.Name, Version: server.Version}
		if options.Name != "" {
			impl.Name = options.Name
		}
		if options.Version != "" {
			impl.Version = options.Version
		}
		serverOptions = append(serverOptions, server.WithImplementation(impl))
	}
	if options.ProtocolVersion != "" {
		serverOptions = append(serverOptions, server.WithProtocolVersion(options.ProtocolVersion))
	}
	if options.LoggerName != "" {
		serverOptions = append(serverOptions, server.WithLoggerName(options.LoggerName))
	}
	if options.Instructions != "" {
		serverOptions = append(serverOptions, server.WithInstructions(options.Instructions))
	}
	if transport := options.Transport; transport != nil {
		if transportOptions := transport.Options; transportOptions != nil {
			if addr := options.Addr(); addr != "" {
				serverOptions = append(serverOptions, server.WithEndpoint(addr))
			}
			if transportOptions.Cors != nil {
				serverOptions = append(serverOptions, server.WithCORS(transportOptions.Cors))
			}
			if transportOptions.SSEURI != "" || transportOptions.SSEMessageURI != "" {
				serverOptions = append(serverOptions, server.WithSSEURI(transportOptions.SSEURI, transportOptions.SSEMessageURI))
			}
			if transportOptions.StreamableURI != "" {
				serverOptions = append(serverOptions, server.WithStreamableURI(transportOptions.StreamableURI))
			}
		}
		if authOptions := transport.Auth; authOptions != nil {
			if authOptions.Authorizer == nil && authOptions.TokenSecret != "" {
				authOptions.Authorizer = server.TokenAuthorizer([]byte(authOptions.TokenSecret))
			}
			if authOptions.Authorizer != nil {
				serverOptions = append(serverOptions, server.WithConsumerAuthorizer(authOptions.Authorizer))
			}
		}
		for path, handler := range transport.CustomHandlers {
			serverOptions = append(serverOptions, server.WithCustomHTTPHandler(path, handler))
		}
	}
	return server.New(aBridge, serverOptions...)
}
