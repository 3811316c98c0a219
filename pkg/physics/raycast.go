// Package physics 提供点击命中检测用的最小射线查询
package physics

import (
	"math"

	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/geom"
)

// Hit 射线命中结果
type Hit struct {
	Entity   ecs.EntityID
	Distance float64
	Point    geom.Point3
}

// Raycaster 射线命中服务：返回射线遇到的第一个碰撞体
type Raycaster interface {
	Raycast(ray geom.Ray) (Hit, bool)
}

// SphereRaycaster 基于 ColliderComponent 球形碰撞体的射线检测
type SphereRaycaster struct {
	em *ecs.EntityManager
}

// NewSphereRaycaster 创建射线检测器
func NewSphereRaycaster(em *ecs.EntityManager) *SphereRaycaster {
	return &SphereRaycaster{em: em}
}

// Raycast 返回距离最近的命中实体
// 碰撞半径随实体缩放变化，缩放为 0 的实体不可被命中
func (r *SphereRaycaster) Raycast(ray geom.Ray) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, id := range ecs.GetEntitiesWith2[*components.ColliderComponent, *components.TransformComponent](r.em) {
		if !r.em.IsAlive(id) {
			continue
		}
		collider, _ := ecs.GetComponent[*components.ColliderComponent](r.em, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](r.em, id)

		radius := collider.Radius * geom.MaxComponent(tr.Scale)
		dist, ok := ray.IntersectSphere(tr.Position, radius)
		if !ok || dist >= best.Distance {
			continue
		}
		best = Hit{Entity: id, Distance: dist, Point: ray.At(dist)}
		found = true
	}

	return best, found
}
