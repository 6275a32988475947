// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pkg contains the resources, tools and prompts of the MCP template
// server together with the wiring into mcp-go.
package pkg

//go:generate go run -mod=mod github.com/maxbrunsfeld/counterfeiter/v6 -generate
