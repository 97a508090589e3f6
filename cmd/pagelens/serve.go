package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	pagelensgin "github.com/pagelens/pagelens/gin"
	pageslog "github.com/pagelens/pagelens/slog"
)

// shutdownGrace is how long in-flight requests get to finish on shutdown.
const shutdownGrace = 5 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	handler := &pagelensgin.Handler{
		Fetcher:    pageslog.NewLoggingFetcher(deps.Fetcher, logger),
		Extractor:  pageslog.NewLoggingExtractor(deps.Extractor, logger),
		Contacts:   deps.Contacts,
		Storage:    deps.DB,
		DefaultURL: c.DefaultURL,
	}

	srv := &http.Server{
		Addr:    c.Addr,
		Handler: pagelensgin.NewServer(handler),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "pagelens listening on %s\n", c.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-deps.Ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
