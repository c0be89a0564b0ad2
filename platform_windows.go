// Copyright (c) Thom Wright 2026. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package colornope

// windowsStyleTerm selects the terminal-kind policy for platforms where
// an unset TERM is normal and does not imply a color-incapable console.
const windowsStyleTerm = true
