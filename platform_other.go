// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package colornope

// windowsStyleTerm selects the terminal-kind policy for platforms where
// TERM is conventionally set, so its absence suggests a minimal
// environment that cannot render color.
const windowsStyleTerm = false
