package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/arspawn/pkg/config"
	"github.com/gonewx/arspawn/pkg/diag"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/entities"
	"github.com/gonewx/arspawn/pkg/game"
	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/input"
	"github.com/gonewx/arspawn/pkg/physics"
	"github.com/gonewx/arspawn/pkg/sampling"
	"github.com/gonewx/arspawn/pkg/surface"
	"github.com/gonewx/arspawn/pkg/systems"
)

// DemoSceneOptions 创建演示场景所需的参数
type DemoSceneOptions struct {
	Config   *config.DemoConfig
	Settings *game.SettingsManager // 可为 nil
	Audio    *game.AudioManager    // 可为 nil，表示不播放环境音
	Input    input.Provider
	Sink     diag.Sink // 额外的诊断输出（如结构化日志），可为 nil
}

// DemoScene 平面检测 → 放置车辆 → 生成包裹 → 点击替换外观 的演示场景
//
// 每帧系统更新顺序：
//  1. 平面跟踪器
//  2. 输入
//  3. 外观替换过渡
//  4. 车辆生成（按下）
//  5. 包裹生成（抬起 / 生成 / 高度维护）
//  6. 粒子发射器、生命周期
//  7. 清理标记删除的实体
type DemoScene struct {
	cfg      *config.DemoConfig
	settings *game.SettingsManager

	entityManager *ecs.EntityManager
	factory       *entities.PrefabFactory
	tracker       *surface.SimulatedTracker
	surfaces      *surface.Manager
	camera        physics.TopDownCamera
	input         input.Provider
	debugText     *diag.DebugText

	transition     *systems.TransitionController
	carSpawner     *systems.CarSpawner
	packageSpawner *systems.PackageSpawner
	emitterSystem  *systems.EmitterSystem
	lifetimeSystem *systems.LifetimeSystem
	renderSystem   *systems.DebugRenderSystem
}

// NewDemoScene 创建演示场景
func NewDemoScene(opts DemoSceneOptions) *DemoScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultDemoConfig()
	}

	seed := cfg.Spawn.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[DemoScene] Random seed: %d", seed)

	spawnCfg := cfg.Spawn
	transitionCfg := cfg.Transition
	showDebug := true
	if opts.Settings != nil {
		settings := opts.Settings.GetSettings()
		if !settings.EffectsEnabled {
			spawnCfg.Effect = ""
		}
		showDebug = settings.ShowDebugText
		transitionCfg.Duration = opts.Settings.ResolveTransitionDuration(cfg.Transition.Duration)
	}

	s := &DemoScene{
		cfg:           cfg,
		settings:      opts.Settings,
		entityManager: ecs.NewEntityManager(),
		surfaces:      surface.NewManager(),
		input:         opts.Input,
		debugText:     diag.NewDebugText(cfg.Camera.DebugMaxLines),
		camera: physics.TopDownCamera{
			Position:     geom.Point3{Y: cfg.Camera.Height},
			FieldOfView:  cfg.Camera.FieldOfView,
			ScreenWidth:  cfg.Camera.ScreenWidth,
			ScreenHeight: cfg.Camera.ScreenHeight,
		},
	}

	var sink diag.Sink = opts.Sink
	if showDebug {
		sink = diag.Tee{s.debugText, opts.Sink}
	}

	s.factory = entities.NewPrefabFactory(s.entityManager, cfg)
	s.tracker = surface.NewSimulatedTracker(surface.SimulatedTrackerConfig{
		WarmUp:       cfg.Tracker.WarmUp,
		Sides:        cfg.Tracker.Sides,
		Radius:       cfg.Tracker.Radius,
		Center:       geom.Point3{X: cfg.Tracker.Center[0], Y: cfg.Tracker.Center[1], Z: cfg.Tracker.Center[2]},
		Yaw:          cfg.Tracker.Yaw,
		HeightJitter: cfg.Tracker.HeightJitter,
	}, rng)

	s.transition = systems.NewTransitionController(s.factory, transitionCfg.Duration, sink)
	s.carSpawner = systems.NewCarSpawner(s.factory, s.tracker, s.surfaces, s.input, spawnCfg.Car, sink)
	s.packageSpawner = systems.NewPackageSpawner(systems.PackageSpawnerDeps{
		EntityManager: s.entityManager,
		Factory:       s.factory,
		Surfaces:      s.surfaces,
		Finder:        sampling.NewLocationFinder(rng),
		Raycaster:     physics.NewSphereRaycaster(s.entityManager),
		Camera:        s.camera,
		Input:         s.input,
		Transition:    s.transition,
		Sink:          sink,
	}, spawnCfg, transitionCfg)
	s.emitterSystem = systems.NewEmitterSystem(s.entityManager)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)
	s.renderSystem = systems.NewDebugRenderSystem(s.entityManager, s.camera, cfg)

	if opts.Audio != nil {
		tone, err := opts.Audio.StartAmbient()
		if err != nil {
			log.Printf("[DemoScene] Warning: ambient audio unavailable: %v", err)
		} else if tone != nil {
			s.packageSpawner.SetAmbientAudio(tone)
		}
	}

	return s
}

// Update 推进一帧
func (s *DemoScene) Update(deltaTime float64) {
	s.tracker.Update(deltaTime)
	if s.input != nil {
		s.input.Update()
	}

	if incoming, done := s.transition.Update(deltaTime); done {
		log.Printf("[DemoScene] Transition finished, current package %d", incoming)
	}

	if s.input != nil {
		s.carSpawner.Update()
	}
	s.packageSpawner.Update()

	s.emitterSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制俯视调试视图
func (s *DemoScene) Draw(screen *ebiten.Image) {
	reticle, hasReticle := s.tracker.ReticlePosition()
	s.renderSystem.Draw(screen, s.tracker.CurrentPlane(), s.surfaces.LockedPlane(),
		reticle, hasReticle, s.debugText.String())
}

// SaveOnExit 保存用户设置
func (s *DemoScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[DemoScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}

// EntityManager 返回场景的实体管理器
func (s *DemoScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// Factory 返回预制体工厂
func (s *DemoScene) Factory() *entities.PrefabFactory { return s.factory }

// Camera 返回命中检测用相机
func (s *DemoScene) Camera() physics.TopDownCamera { return s.camera }

// PackageSpawner 返回包裹生成器
func (s *DemoScene) PackageSpawner() *systems.PackageSpawner { return s.packageSpawner }

// CarSpawner 返回车辆生成器
func (s *DemoScene) CarSpawner() *systems.CarSpawner { return s.carSpawner }

// Transition 返回外观替换过渡控制器
func (s *DemoScene) Transition() *systems.TransitionController { return s.transition }

// Surfaces 返回平面管理器
func (s *DemoScene) Surfaces() *surface.Manager { return s.surfaces }

// DebugText 返回屏幕诊断文本
func (s *DemoScene) DebugText() *diag.DebugText { return s.debugText }
