package main

import (
	"context"
	"time"

	designer "github.com/viant/designer-mcp"
)

const defaultPort = 8787

// Options represents command line options
type Options struct {
	Config         string        `short:"c" long:"config" description:"YAML config URL"`
	Host           string        `long:"host" description:"HTTP listen host"`
	Port           int           `short:"p" long:"port" description:"HTTP listen port (default 8787)"`
	StateURL       string        `short:"s" long:"state" description:"state snapshot URL (file://, mem://, gs:// ...), in memory when empty"`
	Stdio          bool          `long:"stdio" description:"also serve MCP over stdin/stdout"`
	CommandTimeout time.Duration `long:"timeout" description:"per command timeout, e.g. 30s"`
	LivenessWindow time.Duration `long:"liveness" description:"extension liveness window, e.g. 60s"`
	TokenSecret    string        `long:"token-secret" env:"DESIGNER_MCP_TOKEN_SECRET" description:"HS256 secret protecting extension endpoints"`
	IssueToken     string        `long:"issue-token" description:"print an extension token for the given subject and exit"`
	TokenTTL       time.Duration `long:"token-ttl" description:"issued token lifetime, no expiry when 0"`
	Verbose        bool          `short:"v" long:"verbose" description:"log state updates"`
}

// serverOptions loads the optional config and applies command line overrides.
func (o *Options) serverOptions(ctx context.Context) (*designer.ServerOptions, error) {
	ret := &designer.ServerOptions{}
	if o.Config != "" {
		var err error
		if ret, err = designer.LoadServerOptions(ctx, o.Config); err != nil {
			return nil, err
		}
	}
	if ret.Transport == nil {
		ret.Transport = &designer.ServerTransport{}
	}
	if ret.Transport.Options == nil {
		ret.Transport.Options = &designer.ServerTransportOptions{}
	}
	if o.Host != "" {
		ret.Transport.Options.Host = o.Host
	}
	if o.Port != 0 {
		ret.Transport.Options.Port = o.Port
	}
	if ret.Transport.Options.Port == 0 {
		ret.Transport.Options.Port = defaultPort
	}
	if o.StateURL != "" {
		ret.Store = &designer.StoreOptions{URL: o.StateURL}
	}
	if o.CommandTimeout > 0 || o.LivenessWindow > 0 {
		if ret.Bridge == nil {
			ret.Bridge = &designer.BridgeOptions{}
		}
		if o.CommandTimeout > 0 {
			ret.Bridge.CommandTimeout = o.CommandTimeout
		}
		if o.LivenessWindow > 0 {
			ret.Bridge.LivenessWindow = o.LivenessWindow
		}
	}
	if o.TokenSecret != "" {
		if ret.Transport.Auth == nil {
			ret.Transport.Auth = &designer.ServerOptionAuth{}
		}
		ret.Transport.Auth.TokenSecret = o.TokenSecret
	}
	if o.Verbose {
		ret.Verbose = true
	}
	return ret, nil
}
