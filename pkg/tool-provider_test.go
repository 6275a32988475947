// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_template_server/mocks"
	"github.com/bborbe/mcp_template_server/pkg"
)

var _ = Describe("ToolProvider", func() {
	var ctx context.Context
	var metrics *mocks.Metrics
	var currentTimeGetter *mocks.CurrentTimeGetter
	var toolProvider pkg.ToolProvider

	BeforeEach(func() {
		ctx = context.Background()
		metrics = &mocks.Metrics{}
		currentTimeGetter = &mocks.CurrentTimeGetter{}
		currentTimeGetter.NowReturns(time.Unix(1700000000, 0))
		toolProvider = pkg.NewToolProvider(metrics, currentTimeGetter)
	})

	Context("List", func() {
		It("returns echo, timestamp and calculator", func() {
			tools := toolProvider.List(ctx)
			Expect(tools).To(HaveLen(3))
			Expect(tools[0].Name).To(Equal("echo"))
			Expect(tools[1].Name).To(Equal("timestamp"))
			Expect(tools[2].Name).To(Equal("calculator"))
		})

		It("returns object input schemas", func() {
			for _, tool := range toolProvider.List(ctx) {
				Expect(tool.InputSchema.Type).To(Equal("object"))
			}
		})

		It("returns the same table on every call", func() {
			Expect(toolProvider.List(ctx)).To(Equal(toolProvider.List(ctx)))
		})
	})

	Context("Call", func() {
		var name string
		var arguments map[string]interface{}
		var result *mcp.CallToolResult
		var err error

		JustBeforeEach(func() {
			result, err = toolProvider.Call(ctx, name, arguments)
		})

		Context("calculator add", func() {
			BeforeEach(func() {
				name = "calculator"
				arguments = map[string]interface{}{
					"operation": "add",
					"a":         2,
					"b":         3,
				}
			})

			It("returns 5", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeFalse())
				Expect(getTextContent(result.Content[0])).To(Equal("5"))
			})

			It("counts success", func() {
				Expect(metrics.ToolCallCallCount()).To(Equal(1))
				toolName, toolResult := metrics.ToolCallArgsForCall(0)
				Expect(toolName).To(Equal("calculator"))
				Expect(toolResult).To(Equal(pkg.ResultSuccess))
			})
		})

		Context("calculator divide by zero", func() {
			BeforeEach(func() {
				name = "calculator"
				arguments = map[string]interface{}{
					"operation": "divide",
					"a":         10,
					"b":         0,
				}
			})

			It("returns error result instead of error", func() {
				Expect(err).To(BeNil())
				Expect(result.IsError).To(BeTrue())
				Expect(getTextContent(result.Content[0])).To(ContainSubstring("Division by zero"))
			})

			It("counts error", func() {
				_, toolResult := metrics.ToolCallArgsForCall(0)
				Expect(toolResult).To(Equal(pkg.ResultError))
			})
		})

		Context("timestamp unix", func() {
			BeforeEach(func() {
				name = "timestamp"
				arguments = map[string]interface{}{
					"format": "unix",
				}
			})

			It("uses the current time getter", func() {
				Expect(err).To(BeNil())
				Expect(getTextContent(result.Content[0])).To(Equal("1700000000"))
				Expect(currentTimeGetter.NowCallCount()).To(Equal(1))
			})
		})

		Context("unknown tool", func() {
			BeforeEach(func() {
				name = "teleport"
				arguments = map[string]interface{}{}
			})

			It("returns not found error", func() {
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, pkg.ErrNotFound)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("tool not found: teleport"))
			})

			It("returns no result", func() {
				Expect(result).To(BeNil())
			})

			It("counts not found", func() {
				_, toolResult := metrics.ToolCallArgsForCall(0)
				Expect(toolResult).To(Equal(pkg.ResultNotFound))
			})
		})
	})
})
