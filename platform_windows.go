//go:build amd64 || 386

package main

// Registers the Win32 provider.
import _ "github.com/mj1618/magnify-cli/internal/platform/win32"
