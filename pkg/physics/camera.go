package physics

import (
	"math"

	"github.com/gonewx/arspawn/pkg/geom"
)

// TopDownCamera 垂直向下俯视的针孔相机
// 屏幕 x 向右对应世界 +X，屏幕 y 向下对应世界 +Z
type TopDownCamera struct {
	Position     geom.Point3
	FieldOfView  float64 // 垂直视角(度)
	ScreenWidth  int
	ScreenHeight int
}

// focal 返回以像素为单位的焦距
func (c TopDownCamera) focal() float64 {
	return float64(c.ScreenHeight) / 2 / math.Tan(c.FieldOfView*math.Pi/360)
}

// ScreenPointToRay 由屏幕坐标生成从相机出发的射线
func (c TopDownCamera) ScreenPointToRay(x, y float64) geom.Ray {
	f := c.focal()
	dx := (x - float64(c.ScreenWidth)/2) / f
	dz := (y - float64(c.ScreenHeight)/2) / f
	return geom.NewRay(c.Position, geom.Point3{X: dx, Y: -1, Z: dz})
}

// WorldToScreen 将世界坐标投影到屏幕
// 点不在相机下方时 ok 为 false
func (c TopDownCamera) WorldToScreen(p geom.Point3) (x, y float64, ok bool) {
	depth := c.Position.Y - p.Y
	if depth <= 0 {
		return 0, 0, false
	}
	f := c.focal()
	x = (p.X-c.Position.X)/depth*f + float64(c.ScreenWidth)/2
	y = (p.Z-c.Position.Z)/depth*f + float64(c.ScreenHeight)/2
	return x, y, true
}

// PixelsPerMeter 返回深度 p.Y 处每米对应的像素数
func (c TopDownCamera) PixelsPerMeter(y float64) float64 {
	depth := c.Position.Y - y
	if depth <= 0 {
		return 0
	}
	return c.focal() / depth
}
