// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	stderrors "errors"
	"io"
	"log"
	"os"

	"github.com/bborbe/errors"
	libsentry "github.com/bborbe/sentry"
	"github.com/bborbe/service"
	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/mcp_template_server/pkg"
)

func main() {
	app := &application{}
	os.Exit(service.Main(context.Background(), app, &app.SentryDSN, &app.SentryProxy))
}

type application struct {
	SentryDSN   string `required:"false" arg:"sentry-dsn"   env:"SENTRY_DSN"   usage:"SentryDSN"    display:"length"`
	SentryProxy string `required:"false" arg:"sentry-proxy" env:"SENTRY_PROXY" usage:"Sentry Proxy"`
}

func (a *application) Run(ctx context.Context, sentryClient libsentry.Client) error {
	stdioServer := server.NewStdioServer(pkg.NewMCPServer(ctx))
	// stdout carries the protocol, everything else goes to stderr
	stdioServer.SetErrorLogger(log.New(os.Stderr, "", log.LstdFlags))

	glog.V(1).Infof("%s v%s listening on stdio", pkg.ServerName, pkg.ServerVersion)
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, context.Canceled) {
			return nil
		}
		return errors.Wrapf(ctx, err, "listen on stdio failed")
	}
	return nil
}
