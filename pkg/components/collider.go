package components

// ColliderComponent 球形碰撞体，用于点击命中检测
type ColliderComponent struct {
	// Radius 未缩放时的半径(米)，实际半径 = Radius * 最大缩放分量
	Radius float64
}
