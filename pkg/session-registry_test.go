// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_template_server/mocks"
	"github.com/bborbe/mcp_template_server/pkg"
)

var _ = Describe("SessionRegistry", func() {
	var ctx context.Context
	var metrics *mocks.Metrics
	var sessionRegistry pkg.SessionRegistry

	BeforeEach(func() {
		ctx = context.Background()
		metrics = &mocks.Metrics{}
		sessionRegistry = pkg.NewSessionRegistry(metrics)
	})

	It("starts empty", func() {
		Expect(sessionRegistry.IDs()).To(BeEmpty())
	})

	It("ignores removal of unknown session", func() {
		sessionRegistry.Remove(ctx, "unknown")
		Expect(sessionRegistry.IDs()).To(BeEmpty())
		Expect(metrics.SSESessionsCallCount()).To(Equal(0))
	})
})
