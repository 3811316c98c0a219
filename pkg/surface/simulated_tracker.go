package surface

import (
	"log"
	"math/rand"

	"github.com/gonewx/arspawn/pkg/geom"
)

// SimulatedTrackerConfig 模拟跟踪器参数
type SimulatedTrackerConfig struct {
	WarmUp       float64     // 检测到平面前的等待时间(秒)
	Sides        int         // 边界多边形边数
	Radius       float64     // 平面半径(米)
	Center       geom.Point3 // 平面中心（世界坐标）
	Yaw          float64     // 平面朝向(弧度)
	HeightJitter float64     // 每帧高度修正幅度(米)，模拟跟踪抖动
}

// SimulatedTracker 桌面调试用的平面跟踪器
// 预热结束后"检测"到一个扇形三角化的多边形平面，之后每帧对高度做微小修正
type SimulatedTracker struct {
	config  SimulatedTrackerConfig
	rng     *rand.Rand
	elapsed float64
	plane   *Plane
	baseY   float64
}

// NewSimulatedTracker 创建模拟跟踪器
func NewSimulatedTracker(cfg SimulatedTrackerConfig, rng *rand.Rand) *SimulatedTracker {
	return &SimulatedTracker{
		config: cfg,
		rng:    rng,
		baseY:  cfg.Center.Y,
	}
}

// Update 推进跟踪状态
func (t *SimulatedTracker) Update(deltaTime float64) {
	t.elapsed += deltaTime

	if t.plane == nil {
		if t.elapsed < t.config.WarmUp {
			return
		}
		transform := geom.IdentityTransform()
		transform.Position = t.config.Center
		transform.Yaw = t.config.Yaw
		t.plane = NewFanPlane(1, RegularPolygon(t.config.Sides, t.config.Radius), transform)
		log.Printf("[SimulatedTracker] Plane detected: %d triangles", t.plane.Mesh.TriangleCount())
		return
	}

	if t.config.HeightJitter <= 0 || t.rng == nil {
		return
	}
	offset := (t.rng.Float64()*2 - 1) * t.config.HeightJitter
	y := t.baseY + offset
	t.plane.Transform.Position.Y = y
	t.plane.Center.Y = y
}

// CurrentPlane 实现 Tracker
func (t *SimulatedTracker) CurrentPlane() *Plane {
	return t.plane
}

// ReticlePosition 准星位于平面中心偏前的位置
func (t *SimulatedTracker) ReticlePosition() (geom.Point3, bool) {
	if t.plane == nil {
		return geom.Point3{}, false
	}
	offset := geom.Point3{Z: t.config.Radius * 0.5}
	return t.plane.Transform.TransformPoint(offset), true
}
