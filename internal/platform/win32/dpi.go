//go:build windows && (amd64 || 386)

package win32

// enableDPIAwareness must run before any metrics are read, otherwise a
// scaled desktop reports virtualized coordinates. Tries Per-Monitor V2,
// then V1, then the Windows 8.1 shcore API, then the Vista call.
func enableDPIAwareness() bool {
	if procSetProcessDpiAwarenessContext.Find() == nil {
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)-4.
		if r, _, _ := procSetProcessDpiAwarenessContext.Call(^uintptr(3)); r != 0 {
			return true
		}
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE is (HANDLE)-3.
		if r, _, _ := procSetProcessDpiAwarenessContext.Call(^uintptr(2)); r != 0 {
			return true
		}
	}

	if procSetProcessDpiAwareness.Find() == nil {
		// PROCESS_PER_MONITOR_DPI_AWARE; S_OK is 0.
		if r, _, _ := procSetProcessDpiAwareness.Call(2); r == 0 {
			return true
		}
	}

	if procSetProcessDPIAware.Find() == nil {
		r, _, _ := procSetProcessDPIAware.Call()
		return r != 0
	}
	return false
}
