package components

// PositionComponent 存储实体在渲染表面上的坐标
//
// 坐标系为标准屏幕坐标: 原点在左上角, X 向右为正, Y 向下为正。
// This is a pure data component following ECS principles - it contains no methods.
type PositionComponent struct {
	X float64
	Y float64
}
