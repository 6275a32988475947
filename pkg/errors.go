// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import stderrors "errors"

// ErrNotFound is returned for unknown resource uris, prompt names and tool names.
var ErrNotFound = stderrors.New("not found")
