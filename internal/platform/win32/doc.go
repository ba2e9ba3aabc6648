//go:build windows && (amd64 || 386)

// Package win32 provides Win32 platform support using the Magnification
// API and user32. Importing it for side effects registers the provider.
package win32
