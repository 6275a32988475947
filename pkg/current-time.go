// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import "time"

//counterfeiter:generate -o ../mocks/current-time-getter.go --fake-name CurrentTimeGetter . CurrentTimeGetter
type CurrentTimeGetter interface {
	Now() time.Time
}

type CurrentTimeGetterFunc func() time.Time

func (c CurrentTimeGetterFunc) Now() time.Time {
	return c()
}

func NewCurrentTimeGetter() CurrentTimeGetter {
	return CurrentTimeGetterFunc(time.Now)
}
