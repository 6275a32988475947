// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"

	"github.com/bborbe/errors"
	"github.com/golang/glog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type PromptProvider interface {
	List(ctx context.Context) []mcp.Prompt
	Get(ctx context.Context, name string, args map[string]string) (*mcp.GetPromptResult, error)
}

func NewPromptProvider(metrics Metrics) PromptProvider {
	return &promptProvider{
		metrics: metrics,
	}
}

type promptProvider struct {
	metrics Metrics
}

func (p *promptProvider) List(ctx context.Context) []mcp.Prompt {
	return []mcp.Prompt{
		mcp.NewPrompt("greeting",
			mcp.WithPromptDescription("Generate a customized greeting"),
			mcp.WithArgument("name",
				mcp.ArgumentDescription("The name to greet"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("style",
				mcp.ArgumentDescription("Style of greeting (formal, casual, enthusiastic)"),
			),
		),
		mcp.NewPrompt("summarize",
			mcp.WithPromptDescription("Create a summary of text"),
			mcp.WithArgument("text",
				mcp.ArgumentDescription("The text to summarize"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("length",
				mcp.ArgumentDescription("Length of summary (short, medium, long)"),
			),
		),
	}
}

func (p *promptProvider) Get(
	ctx context.Context,
	name string,
	args map[string]string,
) (*mcp.GetPromptResult, error) {
	glog.V(2).Infof("get prompt %s with %d arguments", name, len(args))
	switch name {
	case "greeting":
		p.metrics.PromptGet(name, ResultSuccess)
		return greetingPrompt(
			valueOrDefault(args, "name", "User"),
			valueOrDefault(args, "style", "casual"),
		), nil
	case "summarize":
		p.metrics.PromptGet(name, ResultSuccess)
		return summarizePrompt(
			valueOrDefault(args, "text", ""),
			valueOrDefault(args, "length", "medium"),
		), nil
	default:
		p.metrics.PromptGet(name, ResultNotFound)
		return nil, errors.Wrapf(ctx, ErrNotFound, "prompt not found: %s", name)
	}
}

func greetingPrompt(name string, style string) *mcp.GetPromptResult {
	var instruction, prompt string
	switch style {
	case "formal":
		instruction = "You are a formal and professional assistant."
		prompt = fmt.Sprintf("Please provide a formal greeting for %s.", name)
	case "enthusiastic":
		instruction = "You are an enthusiastic and energetic assistant."
		prompt = fmt.Sprintf("Please provide an enthusiastic and energetic greeting for %s!", name)
	default:
		instruction = "You are a friendly and casual assistant."
		prompt = fmt.Sprintf("Please provide a friendly greeting for %s.", name)
	}
	return newPromptResult("Generate a customized greeting", instruction, prompt)
}

func summarizePrompt(text string, length string) *mcp.GetPromptResult {
	var wordCount string
	switch length {
	case "short":
		wordCount = "50"
	case "long":
		wordCount = "200"
	default:
		wordCount = "100"
	}
	return newPromptResult(
		"Create a summary of text",
		"You are a helpful assistant that creates clear and concise summaries.",
		fmt.Sprintf("Please summarize the following text in approximately %s words:\n\n%s", wordCount, text),
	)
}

// newPromptResult returns the instruction followed by the user message.
// MCP only knows the roles user and assistant, so the instruction is sent as assistant.
func newPromptResult(description string, instruction string, prompt string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(
		description,
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(instruction)),
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(prompt)),
		},
	)
}

func valueOrDefault(args map[string]string, key string, defaultValue string) string {
	if value := args[key]; value != "" {
		return value
	}
	return defaultValue
}

// RegisterPrompts adds every prompt of the provider to the mcp server.
func RegisterPrompts(ctx context.Context, mcpServer *server.MCPServer, provider PromptProvider) {
	prompts := provider.List(ctx)
	for _, prompt := range prompts {
		mcpServer.AddPrompt(
			prompt,
			func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return provider.Get(ctx, request.Params.Name, request.Params.Arguments)
			},
		)
	}
	glog.V(1).Infof("%d prompts registered", len(prompts))
}
