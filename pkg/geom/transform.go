package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Transform 平面/物体的世界变换
// 平面只做水平旋转（绕 Y 轴），因此只保存偏航角
type Transform struct {
	Position Point3
	// Yaw 绕 Y 轴旋转角度（弧度）
	Yaw   float64
	Scale Point3
}

// IdentityTransform 返回单位变换
func IdentityTransform() Transform {
	return Transform{Scale: One()}
}

// TransformPoint 将局部坐标转换为世界坐标: 先缩放，再旋转，最后平移
func (t Transform) TransformPoint(local Point3) Point3 {
	scaled := Point3{X: local.X * t.Scale.X, Y: local.Y * t.Scale.Y, Z: local.Z * t.Scale.Z}
	sin, cos := math.Sincos(t.Yaw)
	rotated := Point3{
		X: scaled.X*cos + scaled.Z*sin,
		Y: scaled.Y,
		Z: -scaled.X*sin + scaled.Z*cos,
	}
	return t.Position.Add(rotated)
}

// Ray 射线：Origin + Direction * t (t >= 0)
type Ray struct {
	Origin    Point3
	Direction Point3
}

// NewRay 创建射线，方向会被归一化
func NewRay(origin, direction r3.Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At 返回射线上参数 t 处的点
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectSphere 计算射线与球体的最近交点参数
// 返回:
//   - float64: 交点距离（射线起点在球内时返回 0）
//   - bool: 是否相交
func (r Ray) IntersectSphere(center Point3, radius float64) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Norm2() - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
