package systems

import (
	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/ecs"
)

// EmitterSystem 推进粒子发射器：按当前速率累积发射量
// 粒子本身只用于调试视图显示，不作为独立实体存在
type EmitterSystem struct {
	entityManager *ecs.EntityManager
}

// NewEmitterSystem 创建发射器系统
func NewEmitterSystem(em *ecs.EntityManager) *EmitterSystem {
	return &EmitterSystem{entityManager: em}
}

// Update 更新所有发射器
func (s *EmitterSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.EmitterComponent](s.entityManager) {
		emitter, ok := ecs.GetComponent[*components.EmitterComponent](s.entityManager, id)
		if !ok {
			continue
		}
		emitter.Age += dt
		if !emitter.Active || emitter.Rate <= 0 {
			continue
		}
		emitter.Accumulator += emitter.Rate * dt
		spawned := int(emitter.Accumulator)
		emitter.Accumulator -= float64(spawned)
		emitter.TotalLaunched += spawned
	}
}
