// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer creates the mcp server with the example resources, tools and prompts.
func NewMCPServer(ctx context.Context, options ...server.ServerOption) *server.MCPServer {
	metrics := NewMetrics()
	return NewMCPServerWithProviders(
		ctx,
		NewResourceProvider(metrics),
		NewPromptProvider(metrics),
		NewToolProvider(metrics, NewCurrentTimeGetter()),
		options...,
	)
}

func NewMCPServerWithProviders(
	ctx context.Context,
	resourceProvider ResourceProvider,
	promptProvider PromptProvider,
	toolProvider ToolProvider,
	options ...server.ServerOption,
) *server.MCPServer {
	// Create a new MCP server
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		append(
			[]server.ServerOption{
				server.WithResourceCapabilities(false, false),
				server.WithPromptCapabilities(false),
				server.WithToolCapabilities(false),
				server.WithRecovery(),
			},
			options...,
		)...,
	)
	RegisterResources(ctx, s, resourceProvider)
	RegisterTools(ctx, s, toolProvider)
	RegisterPrompts(ctx, s, promptProvider)
	return s
}
