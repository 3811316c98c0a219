package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/config"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/geom"
)

// PrefabFactory 按预制体配置实例化/销毁实体
//
// 同时实现过渡控制器需要的对象存取接口（缩放读写、销毁），
// 对已销毁实体的访问统一返回 ecs.ErrStaleReference。
type PrefabFactory struct {
	em      *ecs.EntityManager
	prefabs map[string]config.PrefabConfig
	roles   map[string]components.SpawnRole
}

// NewPrefabFactory 创建预制体工厂
func NewPrefabFactory(em *ecs.EntityManager, cfg *config.DemoConfig) *PrefabFactory {
	roles := map[string]components.SpawnRole{
		cfg.Spawn.Primary:   components.RoleProp,
		cfg.Spawn.Alternate: components.RoleProp,
		cfg.Spawn.Car:       components.RoleCar,
	}
	if cfg.Spawn.Effect != "" {
		roles[cfg.Spawn.Effect] = components.RoleEffect
	}
	return &PrefabFactory{
		em:      em,
		prefabs: cfg.Prefabs,
		roles:   roles,
	}
}

// Instantiate 在指定位置创建预制体实例
//
// 参数:
//   - prefab: 预制体名称
//   - position: 世界坐标
//
// 返回:
//   - ecs.EntityID: 新实体ID
//   - error: 预制体未定义时返回错误
func (f *PrefabFactory) Instantiate(prefab string, position geom.Point3) (ecs.EntityID, error) {
	pc, ok := f.prefabs[prefab]
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("unknown prefab %q", prefab)
	}

	// 配置中省略 scale 时视为单位缩放
	scale := geom.Point3{X: pc.Scale[0], Y: pc.Scale[1], Z: pc.Scale[2]}
	if scale == geom.Zero() {
		scale = geom.One()
	}

	id := f.em.CreateEntity()
	ecs.AddComponent(f.em, id, &components.TransformComponent{
		Position: position,
		Scale:    scale,
	})
	ecs.AddComponent(f.em, id, &components.PrefabComponent{
		Prefab: prefab,
		Name:   prefab + "(Clone)",
	})
	ecs.AddComponent(f.em, id, &components.RoleComponent{Role: f.roles[prefab]})
	if pc.ColliderRadius > 0 {
		ecs.AddComponent(f.em, id, &components.ColliderComponent{Radius: pc.ColliderRadius})
	}

	log.Printf("[PrefabFactory] Instantiated %s as entity %d at (%.3f, %.3f, %.3f)",
		prefab, id, position.X, position.Y, position.Z)
	return id, nil
}

// NewTransitionEffect 在指定位置创建过渡粒子特效，lifetime 秒后自动销毁
func (f *PrefabFactory) NewTransitionEffect(prefab string, position geom.Point3, rate, lifetime float64) (ecs.EntityID, error) {
	id, err := f.Instantiate(prefab, position)
	if err != nil {
		return ecs.InvalidEntity, err
	}
	ecs.AddComponent(f.em, id, &components.EmitterComponent{
		Active: true,
		Rate:   rate,
	})
	f.DestroyAfter(id, lifetime)
	return id, nil
}

// DestroyAfter 在 delay 秒后销毁实体（由 LifetimeSystem 执行）
func (f *PrefabFactory) DestroyAfter(id ecs.EntityID, delay float64) {
	if !f.em.IsAlive(id) {
		return
	}
	ecs.AddComponent(f.em, id, &components.LifetimeComponent{MaxLifetime: delay})
}

// Destroy 立即标记实体销毁
func (f *PrefabFactory) Destroy(id ecs.EntityID) error {
	if !f.em.DestroyEntity(id) {
		return fmt.Errorf("destroy entity %d: %w", id, ecs.ErrStaleReference)
	}
	return nil
}

// IsAlive 检查实体是否仍存在
func (f *PrefabFactory) IsAlive(id ecs.EntityID) bool {
	return f.em.IsAlive(id)
}

// Scale 读取实体缩放
func (f *PrefabFactory) Scale(id ecs.EntityID) (geom.Point3, error) {
	tr, err := f.transform(id)
	if err != nil {
		return geom.Point3{}, err
	}
	return tr.Scale, nil
}

// SetScale 设置实体缩放
func (f *PrefabFactory) SetScale(id ecs.EntityID, scale geom.Point3) error {
	tr, err := f.transform(id)
	if err != nil {
		return err
	}
	tr.Scale = scale
	return nil
}

// Position 读取实体位置
func (f *PrefabFactory) Position(id ecs.EntityID) (geom.Point3, error) {
	tr, err := f.transform(id)
	if err != nil {
		return geom.Point3{}, err
	}
	return tr.Position, nil
}

// SetPosition 设置实体位置
func (f *PrefabFactory) SetPosition(id ecs.EntityID, position geom.Point3) error {
	tr, err := f.transform(id)
	if err != nil {
		return err
	}
	tr.Position = position
	return nil
}

// PrefabOf 返回实体的预制体名称与实例名
func (f *PrefabFactory) PrefabOf(id ecs.EntityID) (prefab, name string, ok bool) {
	if !f.em.IsAlive(id) {
		return "", "", false
	}
	pc, ok := ecs.GetComponent[*components.PrefabComponent](f.em, id)
	if !ok {
		return "", "", false
	}
	return pc.Prefab, pc.Name, true
}

func (f *PrefabFactory) transform(id ecs.EntityID) (*components.TransformComponent, error) {
	if !f.em.IsAlive(id) {
		return nil, fmt.Errorf("entity %d: %w", id, ecs.ErrStaleReference)
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](f.em, id)
	if !ok {
		return nil, fmt.Errorf("entity %d has no transform: %w", id, ecs.ErrStaleReference)
	}
	return tr, nil
}
