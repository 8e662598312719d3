// Package designer wires the designer-mcp relay from configuration.
//
// The relay exposes the designer tool catalog to MCP clients and hands every
// tool call to the design-tool browser extension, which polls for commands,
// executes them in the designer and posts the results back.
//
// Callers typically load ServerOptions from YAML and start a Service:
//
//	options, _ := designer.LoadServerOptions(ctx, "config.yaml")
//	service, _ := designer.NewService(ctx, options)
//	log.Fatal(service.HTTP(ctx).ListenAndServe())
package designer
