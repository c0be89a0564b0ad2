// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package colornope

// termAllowsColor reports whether the terminal kind permits color.
//
// On most platforms an unset TERM means a minimal environment that
// probably cannot render color. Windows consoles do not conventionally
// set TERM, so absence does not rule out color there. A terminal kind of
// exactly "dumb" disallows color on every platform; any other present
// value, including the empty string, allows it.
func termAllowsColor(windows bool, term envValue) bool {
	if !term.set {
		return windows
	}

	return term.value != "dumb"
}
