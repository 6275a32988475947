// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_template_server/pkg"
)

var _ = Describe("CurrentTimeGetter", func() {
	It("returns the time of the func", func() {
		now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
		getter := pkg.CurrentTimeGetterFunc(func() time.Time { return now })
		Expect(getter.Now()).To(Equal(now))
	})

	It("returns the wall clock by default", func() {
		Expect(pkg.NewCurrentTimeGetter().Now()).To(BeTemporally("~", time.Now(), time.Second))
	})
})
