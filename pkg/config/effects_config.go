package config

// 效果引擎物理与数量配置
//
// 单位约定: 所有速度为 像素/秒, 加速度为 像素/秒², 旋转为 度/秒,
// 生命值衰减为 每秒衰减量(生命值归一化到 [0,1])。
//
// 参考实现以 60fps 逐帧为单位定义这些数值(每帧增量), 这里统一换算为
// 标准每秒单位: 速度 ×60, 加速度 ×3600, 与 dt 积分配合使用。
// 例如: 重力每帧 0.1 px → 0.1 × 60 × 60 = 360 px/s²

// ========== 彩纸屑 (confetti) ==========

const (
	// ConfettiSpawnY 粒子初始 Y 坐标(视口顶缘上方)
	ConfettiSpawnY = -10.0
	// ConfettiLateralSpeed 横向初速度半幅: vx ∈ (-120, 120) px/s
	ConfettiLateralSpeed = 120.0
	// ConfettiFallSpeedMin 下落初速度下限 px/s
	ConfettiFallSpeedMin = 60.0
	// ConfettiFallSpeedMax 下落初速度上限 px/s
	ConfettiFallSpeedMax = 240.0
	// ConfettiGravity 重力加速度 px/s²
	ConfettiGravity = 360.0
	// ConfettiSizeMin 粒子边长下限 px
	ConfettiSizeMin = 2.0
	// ConfettiSizeMax 粒子边长上限 px
	ConfettiSizeMax = 6.0
	// ConfettiSpinSpeed 旋转速度半幅: ∈ (-300, 300) 度/s
	ConfettiSpinSpeed = 300.0
	// ConfettiLifeDecay 生命值衰减速率 /s (满生命约 3.3 秒耗尽)
	ConfettiLifeDecay = 0.3
)

// ========== 气球 (balloons) ==========

const (
	// BalloonSpawnMargin 生成位置距左右边缘的留白 px
	BalloonSpawnMargin = 50.0
	// BalloonSpawnOffsetY 生成位置在视口底缘下方的偏移 px
	BalloonSpawnOffsetY = 50.0
	// BalloonRiseSpeedMin 上升速度下限(绝对值) px/s
	BalloonRiseSpeedMin = 120.0
	// BalloonRiseSpeedMax 上升速度上限(绝对值) px/s
	BalloonRiseSpeedMax = 180.0
	// BalloonDriftSpeed 横向漂移速度半幅: ∈ (-60, 60) px/s
	BalloonDriftSpeed = 60.0
	// BalloonSizeMin 气球半径下限 px
	BalloonSizeMin = 30.0
	// BalloonSizeMax 气球半径上限 px
	BalloonSizeMax = 50.0
	// BalloonBobAmplitude 左右摆动幅度 px
	BalloonBobAmplitude = 2.0
	// BalloonBobRate 摆动角速度 弧度/s
	BalloonBobRate = 10.0
	// BalloonLifeDecay 生命值衰减速率 /s (比彩纸屑慢, 气球存活更久)
	BalloonLifeDecay = 0.12
	// BalloonStringLength 吊绳长度 px
	BalloonStringLength = 30.0
)

// ========== 烟花 (fireworks) ==========

const (
	// RocketAscentSpeed 火箭上升速度(绝对值) px/s
	RocketAscentSpeed = 480.0
	// RocketApexMarginTop 爆炸高度上限距顶缘的最小距离 px
	// 目标高度在 [RocketApexMarginTop, RocketApexMarginTop + 视口高/2) 内随机
	RocketApexMarginTop = 50.0
	// RocketLaunchStagger 同一次 spawn 内相邻发射点的错峰间隔 秒
	RocketLaunchStagger = 0.5
	// RocketBarWidth 火箭渲染竖条宽度 px
	RocketBarWidth = 4.0
	// RocketBarHeight 火箭渲染竖条高度 px
	RocketBarHeight = 10.0

	// SparkCount 每次爆裂的火花数量(固定, 与发射数量无关)
	SparkCount = 30
	// SparkSpeedMin 火花径向速度下限 px/s
	SparkSpeedMin = 120.0
	// SparkSpeedMax 火花径向速度上限 px/s
	SparkSpeedMax = 360.0
	// SparkDecayMin 火花生命值衰减速率下限 /s
	SparkDecayMin = 0.9
	// SparkDecayMax 火花生命值衰减速率上限 /s
	SparkDecayMax = 1.5
	// SparkGravity 火花重力加速度 px/s²
	SparkGravity = 360.0
	// SparkDotSize 火花渲染点边长 px
	SparkDotSize = 2.0
)

// ========== 调度与生命周期 ==========

const (
	// DispatchStagger 载荷内相邻触发的错峰间隔 秒
	// 第 i 个触发在 i × DispatchStagger 后执行
	DispatchStagger = 0.5
	// MessageFadeDelay 消息保持完全不透明的时长 秒
	MessageFadeDelay = 3.0
	// MessageFadeDuration 消息淡出过渡时长 秒
	MessageFadeDuration = 1.0
	// SurfaceFadeDuration 渲染表面整体淡出时长 秒, 淡出结束后表面被销毁
	SurfaceFadeDuration = 1.0
)

// ========== 消息渲染 ==========

const (
	// MessageFontSize 消息文字字号 px
	MessageFontSize = 32.0
	// MessageTopRatio 消息垂直位置(视口高度比例, 从顶部算起)
	MessageTopRatio = 0.2
)
