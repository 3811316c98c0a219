package surface

import (
	"log"

	"github.com/gonewx/arspawn/pkg/geom"
)

// Tracker 平面跟踪器（准星下当前命中的平面）
type Tracker interface {
	// CurrentPlane 返回准星当前所在的平面，没有时返回 nil
	CurrentPlane() *Plane
	// ReticlePosition 返回准星在平面上的世界坐标
	ReticlePosition() (geom.Point3, bool)
	// Update 每帧推进跟踪状态
	Update(deltaTime float64)
}

// Manager 管理"锁定平面"
// 锁定后上层逻辑只读取它，不做修改
type Manager struct {
	locked *Plane
}

// NewManager 创建平面管理器
func NewManager() *Manager {
	return &Manager{}
}

// LockPlane 锁定平面；已锁定时忽略后续请求
// 返回是否发生了锁定
func (m *Manager) LockPlane(plane *Plane) bool {
	if plane == nil || m.locked != nil {
		return false
	}
	m.locked = plane
	log.Printf("[SurfaceManager] Plane %d locked (center y=%.3f)", plane.ID, plane.Center.Y)
	return true
}

// LockedPlane 返回当前锁定的平面（可能为 nil）
func (m *Manager) LockedPlane() *Plane {
	return m.locked
}
