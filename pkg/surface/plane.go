// Package surface 描述 AR 子系统检测到的水平平面
//
// 平面检测/跟踪算法不在本项目范围内：这里只定义上层逻辑读取的数据形状，
// 以及桌面调试用的模拟跟踪器。
package surface

import (
	"math"

	"github.com/gonewx/arspawn/pkg/geom"
)

// Mesh 平面的三角网格（局部坐标）
// Indices 每 3 个一组构成一个三角形
type Mesh struct {
	Vertices []geom.Point3
	Indices  []int
}

// TriangleCount 返回完整三角形的数量
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Plane 检测到的平面
type Plane struct {
	ID        int
	Mesh      Mesh
	Transform geom.Transform
	// Center 平面中心（世界坐标），Center.Y 作为物体贴合的参考高度
	Center geom.Point3
}

// NewFanPlane 以中心点为原点，按边界多边形扇形三角化创建平面
//
// 顶点 0 为中心（局部原点），顶点 1..n 为边界；
// 第 i 个三角形为 (i, i+1, 0)，即前两个顶点是边界点，第三个是原点。
func NewFanPlane(id int, boundary []geom.Point3, transform geom.Transform) *Plane {
	vertices := make([]geom.Point3, 0, len(boundary)+1)
	vertices = append(vertices, geom.Zero())
	vertices = append(vertices, boundary...)

	n := len(boundary)
	indices := make([]int, 0, n*3)
	if n >= 2 {
		for i := 0; i < n; i++ {
			next := (i+1)%n + 1
			indices = append(indices, i+1, next, 0)
		}
	}

	return &Plane{
		ID:        id,
		Mesh:      Mesh{Vertices: vertices, Indices: indices},
		Transform: transform,
		Center:    transform.Position,
	}
}

// RegularPolygon 生成 XZ 平面上半径为 radius 的正多边形边界（局部坐标）
func RegularPolygon(sides int, radius float64) []geom.Point3 {
	if sides < 3 {
		return nil
	}
	boundary := make([]geom.Point3, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range boundary {
		sin, cos := math.Sincos(step * float64(i))
		boundary[i] = geom.Point3{X: cos * radius, Z: sin * radius}
	}
	return boundary
}
