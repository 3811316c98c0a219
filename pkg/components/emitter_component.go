package components

// EmitterComponent 粒子发射器
//
// 只保存发射速率与累计发射量，具体粒子的外观由渲染层根据速率决定。
// 过渡期间速率会被线性淡出到 0，结束时 Active 置为 false。
type EmitterComponent struct {
	Active bool    // 是否仍在发射
	Rate   float64 // 当前发射速率(个/秒)
	Age    float64 // 发射器已运行时间(秒)

	// Accumulator 未满一个粒子的发射量，跨帧累积
	Accumulator float64
	// TotalLaunched 累计发射粒子数
	TotalLaunched int
}
