package systems

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gonewx/arspawn/pkg/config"
	"github.com/gonewx/arspawn/pkg/diag"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/entities"
	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/input"
	"github.com/gonewx/arspawn/pkg/physics"
	"github.com/gonewx/arspawn/pkg/sampling"
	"github.com/gonewx/arspawn/pkg/surface"
)

// ScreenRaySource 由屏幕坐标生成射线（相机）
type ScreenRaySource interface {
	ScreenPointToRay(x, y float64) geom.Ray
}

// PackageSpawnerDeps 包裹生成器依赖
type PackageSpawnerDeps struct {
	EntityManager *ecs.EntityManager
	Factory       *entities.PrefabFactory
	Surfaces      *surface.Manager
	Finder        *sampling.LocationFinder
	Raycaster     physics.Raycaster
	Camera        ScreenRaySource
	Input         input.Provider
	Transition    *TransitionController
	Sink          diag.Sink
}

// PackageSpawner 在锁定平面上生成包裹，并在点击包裹时替换为另一种外观
//
// 当前包裹（ActiveObjectSlot）只由本系统修改，且只在模拟线程上修改。
type PackageSpawner struct {
	em         *ecs.EntityManager
	factory    *entities.PrefabFactory
	surfaces   *surface.Manager
	finder     *sampling.LocationFinder
	raycaster  physics.Raycaster
	camera     ScreenRaySource
	input      input.Provider
	transition *TransitionController
	sink       diag.Sink

	spawn      config.SpawnConfig
	transCfg   config.TransitionConfig
	ambient    AmbientEffect
	current    ecs.EntityID
	lastEffect ecs.EntityID
}

// NewPackageSpawner 创建包裹生成器
func NewPackageSpawner(deps PackageSpawnerDeps, spawn config.SpawnConfig, transition config.TransitionConfig) *PackageSpawner {
	return &PackageSpawner{
		em:         deps.EntityManager,
		factory:    deps.Factory,
		surfaces:   deps.Surfaces,
		finder:     deps.Finder,
		raycaster:  deps.Raycaster,
		camera:     deps.Camera,
		input:      deps.Input,
		transition: deps.Transition,
		sink:       deps.Sink,
		spawn:      spawn,
		transCfg:   transition,
	}
}

// SetAmbientAudio 设置过渡期间淡出的环境音（可为 nil）
func (s *PackageSpawner) SetAmbientAudio(effect AmbientEffect) {
	s.ambient = effect
}

// Current 返回当前包裹实体；没有或已被销毁时返回 InvalidEntity
func (s *PackageSpawner) Current() ecs.EntityID {
	if s.current != ecs.InvalidEntity && !s.factory.IsAlive(s.current) {
		return ecs.InvalidEntity
	}
	return s.current
}

// LastEffect 返回最近一次过渡生成的特效实体
func (s *PackageSpawner) LastEffect() ecs.EntityID {
	return s.lastEffect
}

// Update 每帧调用
//
// 顺序：先处理输入；本帧有抬起事件时只处理点击，跳过生成和位置维护。
func (s *PackageSpawner) Update() {
	if s.input != nil && s.input.ReleasedThisFrame() {
		x, y := s.input.Position()
		if _, err := s.OnTapReleased(x, y); err != nil && !errors.Is(err, ErrTransitionInProgress) {
			log.Printf("[PackageSpawner] Warning: tap handling failed: %v", err)
		}
		return
	}

	plane := s.surfaces.LockedPlane()
	if plane == nil {
		return
	}
	if s.Current() == ecs.InvalidEntity {
		// 失败时保持空槽位，下一帧自然重试
		if err := s.OnSurfaceLocked(plane); err != nil {
			log.Printf("[PackageSpawner] Warning: spawn failed: %v", err)
			return
		}
	}
	s.Maintain(plane)
}

// OnSurfaceLocked 槽位为空且没有过渡进行时，在平面随机位置生成主包裹
// 已有包裹时为空操作（幂等）
func (s *PackageSpawner) OnSurfaceLocked(plane *surface.Plane) error {
	if s.Current() != ecs.InvalidEntity || s.transition.IsTransitioning() {
		return nil
	}

	location, err := s.finder.FindRandomLocation(plane)
	if err != nil {
		return fmt.Errorf("find spawn location: %w", err)
	}

	id, err := s.factory.Instantiate(s.spawn.Primary, location)
	if err != nil {
		return fmt.Errorf("instantiate %s: %w", s.spawn.Primary, err)
	}
	s.current = id
	diag.Append(s.sink, fmt.Sprintf("Package Spawned (%d)", id))
	return nil
}

// OnTapReleased 点击抬起时做命中检测；命中当前包裹且尚未是替换外观时开始替换
//
// 返回:
//   - bool: 是否触发了替换
//   - error: 过渡进行中返回 ErrTransitionInProgress，实例化失败返回对应错误
func (s *PackageSpawner) OnTapReleased(x, y float64) (bool, error) {
	current := s.Current()
	if current == ecs.InvalidEntity || s.raycaster == nil || s.camera == nil {
		return false, nil
	}

	hit, ok := s.raycaster.Raycast(s.camera.ScreenPointToRay(x, y))
	if !ok || hit.Entity != current {
		return false, nil
	}

	if s.IsAlternate(current) {
		return false, nil
	}
	if s.transition.IsTransitioning() {
		return false, ErrTransitionInProgress
	}

	if err := s.replaceCurrent(current); err != nil {
		return false, err
	}
	return true, nil
}

// IsAlternate 判断实体是否已是替换外观
// 主外观与替换外观为同一预制体时总是返回 false（允许重复替换）
func (s *PackageSpawner) IsAlternate(id ecs.EntityID) bool {
	if s.spawn.Primary == s.spawn.Alternate {
		return false
	}
	_, name, ok := s.factory.PrefabOf(id)
	return ok && strings.HasPrefix(name, s.spawn.Alternate)
}

// replaceCurrent 在同一位置生成替换外观并启动过渡，槽位立即指向新包裹
func (s *PackageSpawner) replaceCurrent(current ecs.EntityID) error {
	position, err := s.factory.Position(current)
	if err != nil {
		return fmt.Errorf("read current position: %w", err)
	}

	effects := make([]AmbientEffect, 0, 2)
	if s.spawn.Effect != "" {
		effectID, err := s.factory.NewTransitionEffect(s.spawn.Effect, position, s.transCfg.EffectRate, s.transCfg.EffectLifetime)
		if err != nil {
			log.Printf("[PackageSpawner] Warning: transition effect skipped: %v", err)
		} else {
			s.lastEffect = effectID
			effects = append(effects, NewEmitterEffect(s.em, effectID))
		}
	}
	if s.ambient != nil {
		effects = append(effects, s.ambient)
	}

	incoming, err := s.factory.Instantiate(s.spawn.Alternate, position)
	if err != nil {
		return fmt.Errorf("instantiate %s: %w", s.spawn.Alternate, err)
	}

	if err := s.transition.Begin(current, incoming, effects...); err != nil {
		_ = s.factory.Destroy(incoming)
		return err
	}

	s.current = incoming
	diag.Append(s.sink, fmt.Sprintf("Package Replaced (%d -> %d)", current, incoming))
	return nil
}

// Maintain 将当前包裹的高度固定在锁定平面的参考高度，水平位置不变
func (s *PackageSpawner) Maintain(plane *surface.Plane) {
	current := s.Current()
	if current == ecs.InvalidEntity || plane == nil {
		return
	}
	position, err := s.factory.Position(current)
	if err != nil {
		return
	}
	position.Y = plane.Center.Y
	_ = s.factory.SetPosition(current, position)
}
