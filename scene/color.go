// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses "#rrggbb" (the leading # is optional, case is ignored)
// into channels in [0, 1]. Shorthand "#rgb" is rejected.
func ParseHex(s string) (RGB, error) {
	h := "#" + strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(h) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex(h)
	// Hex stops at the first non-hex digit, so a clean parse must print back
	// unchanged
	if err != nil || c.Hex() != h {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}, nil
}
