// Package server exposes the command bridge to MCP clients and to the
// design-tool extension.
//
// MCP clients reach the tool catalog through JSON-RPC over HTTP-SSE,
// streamable HTTP or stdio; every tools/call is submitted to the bridge and
// answered with the result posted by the extension. The extension talks to
// plain HTTP endpoints: it polls for the next command and posts results back.
//
//	s, _ := server.New(aBridge, server.WithCatalog(catalog.Default()))
//	log.Fatal(s.HTTP(ctx, ":8787").ListenAndServe())
package server
