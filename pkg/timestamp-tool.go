// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	TimestampFormatISO      = "iso"
	TimestampFormatUnix     = "unix"
	TimestampFormatReadable = "readable"
)

const (
	isoLayout      = "2006-01-02T15:04:05.000Z"
	readableLayout = "1/2/2006, 3:04:05 PM"
)

func NewTimestampTool(currentTimeGetter CurrentTimeGetter) server.ServerTool {

	type TimestampArgs struct {
		Format string `json:"format"`
	}

	tool := mcp.NewTool("timestamp",
		mcp.WithDescription("Returns the current timestamp in various formats"),
		mcp.WithString("format",
			mcp.Enum(TimestampFormatISO, TimestampFormatUnix, TimestampFormatReadable),
			mcp.Description("The format of the timestamp"),
			mcp.DefaultString(TimestampFormatISO),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args TimestampArgs,
	) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(
			FormatTimestamp(currentTimeGetter.Now(), args.Format),
		), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

// FormatTimestamp falls back to iso for empty or unknown formats.
func FormatTimestamp(now time.Time, format string) string {
	switch format {
	case TimestampFormatUnix:
		return strconv.FormatInt(now.Unix(), 10)
	case TimestampFormatReadable:
		return now.Local().Format(readableLayout)
	default:
		return now.UTC().Format(isoLayout)
	}
}
