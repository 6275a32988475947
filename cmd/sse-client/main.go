// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bborbe/errors"
	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bborbe/mcp_template_server/pkg"
)

var defaultURL = fmt.Sprintf("http://localhost:%d%s", pkg.DefaultPort, pkg.SSEEndpoint)

func main() {
	url := flag.String("url", defaultURL, "MCP server SSE URL")
	timeout := flag.Duration("timeout", 30*time.Second, "timeout for the whole session")
	flag.Parse()
	defer glog.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *url); err != nil {
		glog.Errorf("sse client failed: %v", err)
		cancel()
		glog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, url string) error {
	sseTransport, err := transport.NewSSE(url)
	if err != nil {
		return errors.Wrapf(ctx, err, "create sse transport failed")
	}
	defer sseTransport.Close()

	mcpClient := client.NewClient(sseTransport)
	if err := mcpClient.Start(ctx); err != nil {
		return errors.Wrapf(ctx, err, "start client failed")
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "sse-test-client",
		Version: pkg.ServerVersion,
	}
	initResult, err := mcpClient.Initialize(ctx, initRequest)
	if err != nil {
		return errors.Wrapf(ctx, err, "initialize mcp session failed")
	}
	fmt.Printf("Connected to %s v%s\n", initResult.ServerInfo.Name, initResult.ServerInfo.Version)

	resources, err := mcpClient.ListResources(ctx, mcp.ListResourcesRequest{})
	if err != nil {
		return errors.Wrapf(ctx, err, "list resources failed")
	}
	fmt.Printf("\nResources (%d):\n", len(resources.Resources))
	for _, resource := range resources.Resources {
		fmt.Printf("- %s (%s): %s\n", resource.Name, resource.URI, resource.Description)
	}

	prompts, err := mcpClient.ListPrompts(ctx, mcp.ListPromptsRequest{})
	if err != nil {
		return errors.Wrapf(ctx, err, "list prompts failed")
	}
	fmt.Printf("\nPrompts (%d):\n", len(prompts.Prompts))
	for _, prompt := range prompts.Prompts {
		fmt.Printf("- %s: %s (%d arguments)\n", prompt.Name, prompt.Description, len(prompt.Arguments))
	}

	tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return errors.Wrapf(ctx, err, "list tools failed")
	}
	fmt.Printf("\nTools (%d):\n", len(tools.Tools))
	for _, tool := range tools.Tools {
		fmt.Printf("- %s: %s\n", tool.Name, tool.Description)
	}

	callRequest := mcp.CallToolRequest{}
	callRequest.Params.Name = "calculator"
	callRequest.Params.Arguments = map[string]interface{}{
		"operation": pkg.OperationAdd,
		"a":         2,
		"b":         3,
	}
	callResult, err := mcpClient.CallTool(ctx, callRequest)
	if err != nil {
		return errors.Wrapf(ctx, err, "call calculator failed")
	}
	for _, content := range callResult.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			fmt.Printf("\ncalculator add 2 3 = %s\n", textContent.Text)
		}
	}
	return nil
}
