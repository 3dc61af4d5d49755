package components

// MessageComponent 是消息浮层的单例组件
//
// 整个渲染层最多存在一个消息实体: 再次 show 时复用同一实体,
// 重置文本与不透明度并重新计时, 不会叠加第二个浮层。
//
// This is a pure data component following ECS principles - it contains no methods.
type MessageComponent struct {
	// Text 当前显示的文本
	Text string

	// Alpha 当前不透明度 (0-1)
	Alpha float64

	// HoldRemaining 完全不透明状态的剩余保持时间 秒
	// 归零后进入淡出阶段
	HoldRemaining float64

	// FadeRemaining 淡出阶段剩余时间 秒
	// 淡出期间 Alpha = FadeRemaining / 淡出总时长, 归零后实体销毁
	FadeRemaining float64
}
