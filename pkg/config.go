// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

const (
	ServerName    = "mcp-template-server"
	ServerVersion = "1.0.0"

	// DefaultPort is used by the SSE server when PORT is not set.
	DefaultPort = 3001

	SSEEndpoint     = "/sse"
	MessageEndpoint = "/messages"
)
