// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
	OperationMultiply = "multiply"
	OperationDivide   = "divide"
)

func NewCalculatorTool() server.ServerTool {

	type CalculatorArgs struct {
		Operation string  `json:"operation"`
		A         CalculatorNumber `json:"a"`
		B         CalculatorNumber `json:"b"`
	}

	tool := mcp.NewTool("calculator",
		mcp.WithDescription("Performs basic arithmetic operations"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Enum(OperationAdd, OperationSubtract, OperationMultiply, OperationDivide),
			mcp.Description("The operation to perform"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First number"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second number"),
		),
	)
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args CalculatorArgs,
	) (*mcp.CallToolResult, error) {
		a, b := float64(args.A), float64(args.B)
		var result float64
		switch args.Operation {
		case OperationAdd:
			result = a + b
		case OperationSubtract:
			result = a - b
		case OperationMultiply:
			result = a * b
		case OperationDivide:
			if b == 0 {
				return mcp.NewToolResultError("Error: Division by zero"), nil
			}
			result = a / b
		default:
			return mcp.NewToolResultError(
				fmt.Sprintf("Error: Unknown operation '%s'", args.Operation),
			), nil
		}
		return mcp.NewToolResultText(FormatNumber(result)), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

// CalculatorNumber accepts JSON numbers and numeric strings like "2.5".
// An empty string counts as zero.
type CalculatorNumber float64

func (c *CalculatorNumber) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err == nil {
		*c = CalculatorNumber(value)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return errors.Wrapf(context.Background(), err, "number expected but got %s", string(data))
	}
	text = strings.TrimSpace(text)
	if text == "" {
		*c = 0
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errors.Wrapf(context.Background(), err, "parse number '%s' failed", text)
	}
	*c = CalculatorNumber(value)
	return nil
}

// FormatNumber prints the shortest decimal form, infinities as Infinity and -Infinity.
func FormatNumber(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case math.IsNaN(value):
		return "NaN"
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}
