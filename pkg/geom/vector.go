// Package geom 提供 3D 点、变换和射线的基础运算
//
// 所有位置与缩放统一使用 r3.Vector（github.com/golang/geo/r3），
// 本包只补充 r3 没有的逐分量插值和平面变换。
package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Point3 三维点/向量，用于位置和缩放因子
type Point3 = r3.Vector

// Epsilon 浮点比较容差
const Epsilon = 1e-9

// Zero 返回零向量
func Zero() Point3 {
	return Point3{}
}

// One 返回单位缩放向量 (1, 1, 1)
func One() Point3 {
	return Point3{X: 1, Y: 1, Z: 1}
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 逐分量线性插值: start + (end - start) * t
// t 不做限制，调用方负责钳制
func Lerp(start, end Point3, t float64) Point3 {
	return Point3{
		X: start.X + (end.X-start.X)*t,
		Y: start.Y + (end.Y-start.Y)*t,
		Z: start.Z + (end.Z-start.Z)*t,
	}
}

// NearlyEqual 逐分量比较两个向量，差值不超过 eps 视为相等
func NearlyEqual(a, b Point3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// IsFinite 检查三个分量是否均为有限实数
func IsFinite(p Point3) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// MaxComponent 返回绝对值最大的分量（用于按缩放调整碰撞半径）
func MaxComponent(p Point3) float64 {
	return math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
}
