package components

// LifetimeComponent 管理实体的生命周期
// 用于延迟销毁（如过渡特效在存在 MaxLifetime 秒后自动清理）
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
