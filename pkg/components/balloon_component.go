package components

import "image/color"

// BalloonComponent represents a single rising balloon.
// Position is managed via a separate PositionComponent; the X stored there
// is the base position, horizontal bobbing is applied at render time only.
//
// A balloon is destroyed when Life reaches zero OR its position passes
// fully above the top edge, whichever happens first.
//
// This is a pure data component following ECS principles - it contains no methods.
type BalloonComponent struct {
	// Velocity (速度, 像素/秒)
	VelocityX float64 // 横向漂移
	VelocityY float64 // 上升速度(负值, Y 向下为正)

	// Visual properties
	Color color.RGBA
	Size  float64 // Balloon radius in pixels

	// BobPhase 摆动相位偏移(弧度)
	// 渲染横坐标 = 基准 X + sin(时间×摆动角速度 + BobPhase) × 摆动幅度
	// 每只气球随机相位, 避免整排气球同步摆动
	BobPhase float64

	// Life (生命值, 0-1), 衰减比彩纸屑慢
	Life float64
}
