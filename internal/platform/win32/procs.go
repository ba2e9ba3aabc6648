//go:build windows && (amd64 || 386)

package win32

import "golang.org/x/sys/windows"

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modshcore   = windows.NewLazySystemDLL("shcore.dll")
	modmag      = windows.NewLazySystemDLL("Magnification.dll")

	procMagInitialize                      = modmag.NewProc("MagInitialize")
	procMagUninitialize                    = modmag.NewProc("MagUninitialize")
	procMagSetFullscreenTransform          = modmag.NewProc("MagSetFullscreenTransform")
	procMagSetFullscreenUseBitmapSmoothing = modmag.NewProc("MagSetFullscreenUseBitmapSmoothing")
	procMagSetLensUseBitmapSmoothing       = modmag.NewProc("MagSetLensUseBitmapSmoothing")

	procGetSystemMetrics           = moduser32.NewProc("GetSystemMetrics")
	procEnumWindows                = moduser32.NewProc("EnumWindows")
	procIsWindow                   = moduser32.NewProc("IsWindow")
	procIsWindowVisible            = moduser32.NewProc("IsWindowVisible")
	procGetWindowTextLengthW       = moduser32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW             = moduser32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId   = moduser32.NewProc("GetWindowThreadProcessId")
	procGetClientRect              = moduser32.NewProc("GetClientRect")
	procClientToScreen             = moduser32.NewProc("ClientToScreen")
	procRegisterClassExW           = moduser32.NewProc("RegisterClassExW")
	procUnregisterClassW           = moduser32.NewProc("UnregisterClassW")
	procCreateWindowExW            = moduser32.NewProc("CreateWindowExW")
	procDestroyWindow              = moduser32.NewProc("DestroyWindow")
	procDefWindowProcW             = moduser32.NewProc("DefWindowProcW")
	procShowWindow                 = moduser32.NewProc("ShowWindow")
	procSetLayeredWindowAttributes = moduser32.NewProc("SetLayeredWindowAttributes")
	procInvalidateRect             = moduser32.NewProc("InvalidateRect")
	procUpdateWindow               = moduser32.NewProc("UpdateWindow")
	procRegisterHotKey             = moduser32.NewProc("RegisterHotKey")
	procUnregisterHotKey           = moduser32.NewProc("UnregisterHotKey")
	procSetTimer                   = moduser32.NewProc("SetTimer")
	procKillTimer                  = moduser32.NewProc("KillTimer")
	procGetMessageW                = moduser32.NewProc("GetMessageW")
	procTranslateMessage           = moduser32.NewProc("TranslateMessage")
	procDispatchMessageW           = moduser32.NewProc("DispatchMessageW")
	procPostMessageW               = moduser32.NewProc("PostMessageW")
	procPostQuitMessage            = moduser32.NewProc("PostQuitMessage")

	procSetProcessDpiAwarenessContext = moduser32.NewProc("SetProcessDpiAwarenessContext")
	procSetProcessDPIAware            = moduser32.NewProc("SetProcessDPIAware")
	procSetProcessDpiAwareness        = modshcore.NewProc("SetProcessDpiAwareness")

	procGetConsoleWindow = modkernel32.NewProc("GetConsoleWindow")
	procGetModuleHandleW = modkernel32.NewProc("GetModuleHandleW")
)

const (
	smCXScreen = 0
	smCYScreen = 1

	wsPopup         = 0x80000000
	wsExTopmost     = 0x00000008
	wsExTransparent = 0x00000020
	wsExLayered     = 0x00080000

	swShow   = 5
	lwaAlpha = 0x2

	wmDestroy = 0x0002
	wmClose   = 0x0010
	wmTimer   = 0x0113
	wmHotkey  = 0x0312
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}
