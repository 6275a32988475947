// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"
	libsentry "github.com/bborbe/sentry"
	"github.com/bborbe/service"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/mcp_template_server/pkg"
)

func main() {
	loadDotEnv(os.Stderr)
	app := &application{}
	os.Exit(service.Main(context.Background(), app, &app.SentryDSN, &app.SentryProxy))
}

// loadDotEnv runs before flags are parsed, so failures go to w instead of glog.
func loadDotEnv(w io.Writer, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "load .env failed: %v\n", err)
	}
}

type application struct {
	SentryDSN   string `required:"false" arg:"sentry-dsn"   env:"SENTRY_DSN"   usage:"SentryDSN"            display:"length"`
	SentryProxy string `required:"false" arg:"sentry-proxy" env:"SENTRY_PROXY" usage:"Sentry Proxy"`
	Port        int    `required:"false" arg:"port"         env:"PORT"         usage:"port to listen on"    default:"3001"`
}

func (a *application) Run(ctx context.Context, sentryClient libsentry.Client) error {
	if a.Port <= 0 {
		a.Port = pkg.DefaultPort
	}

	sessionRegistry := pkg.NewSessionRegistry(pkg.NewMetrics())
	hooks := &server.Hooks{}
	sessionRegistry.RegisterHooks(hooks)

	listen := fmt.Sprintf(":%d", a.Port)
	// no write timeout, event streams are long lived
	httpServer := &http.Server{
		Addr:              listen,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	sseServer := pkg.NewSSEServer(
		pkg.NewMCPServer(ctx, server.WithHooks(hooks)),
		server.WithHTTPServer(httpServer),
	)
	httpServer.Handler = pkg.NewRouter(sseServer)

	glog.Infof("%s v%s listening on %s", pkg.ServerName, pkg.ServerVersion, listen)
	glog.Infof("SSE endpoint available at http://localhost%s%s", listen, pkg.SSEEndpoint)
	glog.Infof("Message endpoint available at http://localhost%s%s", listen, pkg.MessageEndpoint)

	err := run.CancelOnFirstFinish(
		ctx,
		func(ctx context.Context) error {
			if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return errors.Wrapf(ctx, err, "listen on %s failed", listen)
			}
			return nil
		},
		func(ctx context.Context) error {
			<-ctx.Done()
			sessionIDs := sessionRegistry.IDs()
			glog.Infof("close %d open sessions %v", len(sessionIDs), sessionIDs)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return sseServer.Shutdown(shutdownCtx)
		},
	)
	if err != nil {
		return errors.Wrapf(ctx, err, "run sse server failed")
	}
	return nil
}
