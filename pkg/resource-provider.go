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

type exampleResource struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
	Text        string
}

var exampleResources = []exampleResource{
	{
		URI:         "example://greeting",
		Name:        "Greeting",
		Description: "A simple greeting resource",
		MIMEType:    "text/plain",
		Text:        "Hello from MCP Server!",
	},
	{
		URI:         "example://about",
		Name:        "About",
		Description: "Information about this MCP server",
		MIMEType:    "text/plain",
		Text:        "This is mcp-template-server, an example MCP server exposing resources, tools and prompts.",
	},
}

type ResourceProvider interface {
	List(ctx context.Context) []mcp.Resource
	Read(ctx context.Context, uri string) ([]mcp.ResourceContents, error)
}

func NewResourceProvider(metrics Metrics) ResourceProvider {
	return &resourceProvider{
		metrics: metrics,
	}
}

type resourceProvider struct {
	metrics Metrics
}

func (r *resourceProvider) List(ctx context.Context) []mcp.Resource {
	result := make([]mcp.Resource, 0, len(exampleResources))
	for _, resource := range exampleResources {
		result = append(result, mcp.NewResource(
			resource.URI,
			resource.Name,
			mcp.WithResourceDescription(resource.Description),
			mcp.WithMIMEType(resource.MIMEType),
		))
	}
	return result
}

func (r *resourceProvider) Read(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	glog.V(2).Infof("read resource %s", uri)
	for _, resource := range exampleResources {
		if resource.URI != uri {
			continue
		}
		r.metrics.ResourceRead(uri, ResultSuccess)
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: resource.MIMEType,
				Text:     resource.Text,
			},
		}, nil
	}
	r.metrics.ResourceRead(uri, ResultNotFound)
	return nil, errors.Wrapf(ctx, ErrNotFound, "resource not found: %s", uri)
}

// RegisterResources adds every resource of the provider to the mcp server.
func RegisterResources(ctx context.Context, mcpServer *server.MCPServer, provider ResourceProvider) {
	resources := provider.List(ctx)
	for _, resource := range resources {
		mcpServer.AddResource(
			resource,
			func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return provider.Read(ctx, request.Params.URI)
			},
		)
	}
	glog.V(1).Infof("%d resources registered", len(resources))
}
