// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package skyjson

import (
	"github.com/creachadair/skyjson/internal/escape"

	"go4.org/mem"
)

// Quote escapes src for use as the body of a JSON string. Quotation marks,
// backslashes, and control characters are escaped; enclosing quotation
// marks are not added.
func Quote(src string) string {
	m := mem.S(src)
	if !escape.NeedsEscape(m) {
		return src
	}
	return string(escape.Append(make([]byte, 0, len(src)+8), m))
}
