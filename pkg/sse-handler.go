// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"bytes"
	"io"
	"net/http"

	libhttp "github.com/bborbe/http"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewSSEServer creates the SSE transport. The message endpoint announced to
// clients is relative so the server works behind any host name.
func NewSSEServer(mcpServer *server.MCPServer, options ...server.SSEOption) *server.SSEServer {
	return server.NewSSEServer(
		mcpServer,
		append(
			[]server.SSEOption{
				server.WithSSEEndpoint(SSEEndpoint),
				server.WithMessageEndpoint(MessageEndpoint),
				server.WithUseFullURLForMessageEndpoint(false),
			},
			options...,
		)...,
	)
}

// NewRouter serves the SSE transport next to health and metrics endpoints.
func NewRouter(sseServer *server.SSEServer) http.Handler {
	router := mux.NewRouter()
	router.Path("/healthz").Handler(libhttp.NewPrintHandler("OK"))
	router.Path("/readiness").Handler(libhttp.NewPrintHandler("OK"))
	router.Path("/metrics").Handler(promhttp.Handler())

	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && glog.V(3) {
				c, _ := io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(c))
				glog.Infof("%s %s %s", r.Method, r.URL, string(c))
			} else {
				glog.V(2).Infof("%s %s", r.Method, r.URL)
			}
			handler.ServeHTTP(w, r)
		})
	})

	router.Path(SSEEndpoint).Methods(http.MethodGet).Handler(sseServer.SSEHandler())
	router.Path(MessageEndpoint).Methods(http.MethodPost).Handler(sseServer.MessageHandler())
	return router
}
