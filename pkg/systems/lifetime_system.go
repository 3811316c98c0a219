package systems

import (
	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期，实现"延迟销毁"
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
// 返回本帧新过期的实体数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		// 增加当前生命时间
		lifetime.CurrentLifetime += deltaTime

		// 检查是否过期,过期则标记实体待删除
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			if s.entityManager.DestroyEntity(id) {
				expired++
			}
		}
	}
	return expired
}
