package overlay

import "sync"

// 默认实例的初始视口尺寸, 宿主应在集成时调用 Resize 匹配实际窗口
const (
	defaultWidth  = 1920
	defaultHeight = 1080
)

var (
	defaultOnce    sync.Once
	defaultOverlay *Overlay
)

// Default returns the lazily created shared overlay instance, for hosts
// that want one globally reachable layer instead of threading their own
// through the call graph. Settings come from the environment-aware
// SettingsManager in degraded (in-memory) mode.
//
// Hosts that embed multiple windows should still create explicit
// instances with New; Default exists for the common single-window case.
func Default() *Overlay {
	defaultOnce.Do(func() {
		sm, err := NewSettingsManager(nil)
		if err != nil {
			sm = nil
		}
		defaultOverlay = New(defaultWidth, defaultHeight, sm)
	})
	return defaultOverlay
}
