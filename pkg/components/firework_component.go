package components

import "image/color"

// RocketPhase 标识火箭在两阶段状态机中的位置
//
// 所有火箭由 FireworkSystem 的统一更新循环推进, 不存在每个火箭
// 独立的回调链。阶段只会单向推进: pending → ascending → exploded。
type RocketPhase int

const (
	// RocketPhasePending 等待错峰延迟, 尚未点火
	RocketPhasePending RocketPhase = iota
	// RocketPhaseAscending 正在上升
	RocketPhaseAscending
	// RocketPhaseExploded 已到达目标高度并爆裂
	// 状态翻转恰好发生一次, 当帧火箭实体被销毁并替换为一组火花
	RocketPhaseExploded
)

// RocketComponent represents the launch phase of a firework.
// Position is managed via a separate PositionComponent.
//
// This is a pure data component following ECS principles - it contains no methods.
type RocketComponent struct {
	// TargetY 爆炸目标高度(屏幕坐标, 每个发射点独立随机)
	TargetY float64

	// VelocityY 上升速度 px/s (负值)
	VelocityY float64

	// Color 火箭及其火花的颜色(按发射序号从颜色集合轮换)
	Color color.RGBA

	// Phase 当前阶段
	Phase RocketPhase

	// LaunchDelay 点火前剩余延迟 秒
	// 同一次 spawn 内第 i 个发射点初始为 i × RocketLaunchStagger
	LaunchDelay float64
}

// SparkComponent represents a single spark of a firework burst.
// Position is managed via a separate PositionComponent.
//
// Sparks are seeded radially at even angular spacing around the explosion
// point, pulled down by gravity each frame, and destroyed once Life
// reaches zero. Each spark carries its own random decay rate.
//
// This is a pure data component following ECS principles - it contains no methods.
type SparkComponent struct {
	// Velocity (速度, 像素/秒), 径向初速 + 每帧重力
	VelocityX float64
	VelocityY float64

	// Color 继承自爆裂的火箭
	Color color.RGBA

	// Life (生命值, 0-1), 渲染时作为不透明度
	Life float64

	// DecayRate 本火花的生命值衰减速率 /s, 在固定区间内随机
	DecayRate float64
}
