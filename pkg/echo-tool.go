// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func NewEchoTool() server.ServerTool {

	type EchoArgs struct {
		Message string `json:"message"`
	}

	tool := mcp.NewTool("echo",
		mcp.WithDescription("Echoes back the input message"),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The message to echo back"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args EchoArgs,
	) (*mcp.CallToolResult, error) {
		if args.Message == "" {
			return mcp.NewToolResultError("message is required"), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Echo: %s", args.Message)), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
