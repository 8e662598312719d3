package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	designer "github.com/viant/designer-mcp"
	"github.com/viant/designer-mcp/server"
)

const shutdownTimeout = 5 * time.Second

// Run parses args and runs the relay until interrupted
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, options, os.Stdout)
}

func run(ctx context.Context, options *Options, stdout io.Writer) error {
	if options.IssueToken != "" {
		token, err := server.IssueToken([]byte(options.TokenSecret), options.IssueToken, options.TokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, token)
		return err
	}
	serverOptions, err := options.serverOptions(ctx)
	if err != nil {
		return err
	}
	service, err := designer.NewService(ctx, serverOptions)
	if err != nil {
		return err
	}
	defer service.Close()

	httpServer := service.HTTP(ctx)
	errs := make(chan error, 2)
	go func() {
		log.Printf("designer-mcp listening on %v", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	if options.Stdio || serverOptions.Transport.Type == "stdio" {
		go func() {
			errs <- service.Stdio(ctx).ListenAndServe()
		}()
	}
	select {
	case <-ctx.Done():
	case err = <-errs:
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}
