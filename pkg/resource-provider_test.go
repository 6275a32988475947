// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_template_server/mocks"
	"github.com/bborbe/mcp_template_server/pkg"
)

var _ = Describe("ResourceProvider", func() {
	var ctx context.Context
	var metrics *mocks.Metrics
	var resourceProvider pkg.ResourceProvider

	BeforeEach(func() {
		ctx = context.Background()
		metrics = &mocks.Metrics{}
		resourceProvider = pkg.NewResourceProvider(metrics)
	})

	Context("List", func() {
		var resources []mcp.Resource

		BeforeEach(func() {
			resources = resourceProvider.List(ctx)
		})

		It("returns two resources", func() {
			Expect(resources).To(HaveLen(2))
		})

		It("returns greeting resource", func() {
			Expect(resources[0].URI).To(Equal("example://greeting"))
			Expect(resources[0].Name).To(Equal("Greeting"))
			Expect(resources[0].Description).To(Equal("A simple greeting resource"))
			Expect(resources[0].MIMEType).To(Equal("text/plain"))
		})

		It("returns about resource", func() {
			Expect(resources[1].URI).To(Equal("example://about"))
			Expect(resources[1].MIMEType).To(Equal("text/plain"))
		})

		It("returns the same table on every call", func() {
			Expect(resourceProvider.List(ctx)).To(Equal(resources))
		})
	})

	Context("Read", func() {
		var uri string
		var contents []mcp.ResourceContents
		var err error

		JustBeforeEach(func() {
			contents, err = resourceProvider.Read(ctx, uri)
		})

		Context("greeting", func() {
			BeforeEach(func() {
				uri = "example://greeting"
			})

			It("returns no error", func() {
				Expect(err).To(BeNil())
			})

			It("returns fixed text", func() {
				Expect(contents).To(HaveLen(1))
				textContents, ok := contents[0].(mcp.TextResourceContents)
				Expect(ok).To(BeTrue())
				Expect(textContents.URI).To(Equal("example://greeting"))
				Expect(textContents.MIMEType).To(Equal("text/plain"))
				Expect(textContents.Text).To(Equal("Hello from MCP Server!"))
			})

			It("counts a successful read", func() {
				Expect(metrics.ResourceReadCallCount()).To(Equal(1))
				readURI, result := metrics.ResourceReadArgsForCall(0)
				Expect(readURI).To(Equal("example://greeting"))
				Expect(result).To(Equal(pkg.ResultSuccess))
			})
		})

		Context("about", func() {
			BeforeEach(func() {
				uri = "example://about"
			})

			It("returns fixed text", func() {
				Expect(err).To(BeNil())
				textContents, ok := contents[0].(mcp.TextResourceContents)
				Expect(ok).To(BeTrue())
				Expect(textContents.Text).To(ContainSubstring("mcp-template-server"))
			})
		})

		Context("unknown uri", func() {
			BeforeEach(func() {
				uri = "example://unknown"
			})

			It("returns not found error", func() {
				Expect(err).NotTo(BeNil())
				Expect(stderrors.Is(err, pkg.ErrNotFound)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("resource not found: example://unknown"))
			})

			It("returns no contents", func() {
				Expect(contents).To(BeNil())
			})

			It("counts not found", func() {
				_, result := metrics.ResourceReadArgsForCall(0)
				Expect(result).To(Equal(pkg.ResultNotFound))
			})
		})
	})
})
