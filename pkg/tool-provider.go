// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolProvider interface {
	List(ctx context.Context) []mcp.Tool
	Call(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error)
	ServerTools() []server.ServerTool
}

func NewToolProvider(
	metrics Metrics,
	currentTimeGetter CurrentTimeGetter,
) ToolProvider {
	tools := []server.ServerTool{
		NewEchoTool(),
		NewTimestampTool(currentTimeGetter),
		NewCalculatorTool(),
	}
	for i := range tools {
		tools[i].Handler = withToolMetrics(metrics, tools[i].Tool.Name, tools[i].Handler)
	}
	return &toolProvider{
		metrics: metrics,
		tools:   tools,
	}
}

type toolProvider struct {
	metrics Metrics
	tools   []server.ServerTool
}

func (t *toolProvider) List(ctx context.Context) []mcp.Tool {
	result := make([]mcp.Tool, 0, len(t.tools))
	for _, tool := range t.tools {
		result = append(result, tool.Tool)
	}
	return result
}

func (t *toolProvider) Call(
	ctx context.Context,
	name string,
	arguments map[string]interface{},
) (*mcp.CallToolResult, error) {
	for _, tool := range t.tools {
		if tool.Tool.Name != name {
			continue
		}
		request := mcp.CallToolRequest{}
		request.Params.Name = name
		request.Params.Arguments = arguments
		return tool.Handler(ctx, request)
	}
	t.metrics.ToolCall(name, ResultNotFound)
	return nil, errors.Wrapf(ctx, ErrNotFound, "tool not found: %s", name)
}

func (t *toolProvider) ServerTools() []server.ServerTool {
	return t.tools
}

func withToolMetrics(metrics Metrics, name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		glog.V(2).Infof("call tool %s", name)
		result, err := next(ctx, request)
		switch {
		case err != nil:
			metrics.ToolCall(name, ResultError)
		case result != nil && result.IsError:
			glog.V(2).Infof("tool %s returned error result", name)
			metrics.ToolCall(name, ResultError)
		default:
			metrics.ToolCall(name, ResultSuccess)
		}
		return result, err
	}
}

// RegisterTools adds every tool of the provider to the mcp server.
func RegisterTools(ctx context.Context, mcpServer *server.MCPServer, provider ToolProvider) {
	tools := provider.ServerTools()
	mcpServer.AddTools(tools...)
	glog.V(1).Infof("%d tools registered", len(tools))
}
