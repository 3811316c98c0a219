// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/gonewx/arspawn/pkg/config"
	"github.com/gonewx/arspawn/pkg/diag"
	"github.com/gonewx/arspawn/pkg/game"
	"github.com/gonewx/arspawn/pkg/input"
	"github.com/gonewx/arspawn/pkg/scenes"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "arspawn"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 演示配置文件路径，为空时使用 ConfigData
	ConfigPath string
	// ConfigData 内置配置内容，为空时使用默认配置
	ConfigData []byte
	// Seed 非 0 时覆盖配置中的随机种子
	Seed int64
	// AppName gdata 存储名，为空时使用 DefaultAppName
	AppName string
	// Mute 不创建音频上下文
	Mute bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	demoConfig   *config.DemoConfig
	logger       *zap.Logger
	verbose      bool
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	logger, err := diag.NewDevelopmentLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("日志初始化失败: %w", err)
	}

	demoConfig, err := loadDemoConfig(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		demoConfig.Spawn.Seed = cfg.Seed
	}

	settings, _ := game.NewSettingsManager(openStorage(cfg.AppName))

	var audioManager *game.AudioManager
	if !cfg.Mute {
		audioContext := audio.NewContext(demoConfig.Ambient.SampleRate)
		audioManager = game.NewAudioManager(audioContext, settings, demoConfig.Ambient)
		log.Printf("[App] AudioManager initialized")
	}

	sink := diag.NewZapSink(logger, "demo")
	provider := input.NewEbitenProvider()

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewDemoScene(scenes.DemoSceneOptions{
			Config:   demoConfig,
			Settings: settings,
			Audio:    audioManager,
			Input:    provider,
			Sink:     sink,
		})
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("无法创建演示场景")
	}

	logger.Info("demo started",
		zap.Float64("transitionDuration", settings.ResolveTransitionDuration(demoConfig.Transition.Duration)),
		zap.Int64("seed", demoConfig.Spawn.Seed))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		demoConfig:   demoConfig,
		logger:       logger,
		verbose:      cfg.Verbose,
	}, nil
}

// loadDemoConfig 按优先级加载配置：文件 > 内置数据 > 默认值
func loadDemoConfig(cfg Config) (*config.DemoConfig, error) {
	switch {
	case cfg.ConfigPath != "":
		demoConfig, err := config.LoadDemoConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
		return demoConfig, nil
	case len(cfg.ConfigData) > 0:
		demoConfig, err := config.ParseDemoConfig(cfg.ConfigData)
		if err != nil {
			return nil, fmt.Errorf("内置配置解析失败: %w", err)
		}
		return demoConfig, nil
	default:
		return config.DefaultDemoConfig(), nil
	}
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage(appName string) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	// R 重新开始：重新检测平面并清空所有物体
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Restart()
	}
	// E 切换过渡特效，下次重新开始时生效
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		enabled := !a.settings.GetSettings().EffectsEnabled
		a.settings.SetEffectsEnabled(enabled)
		a.logger.Info("effects toggled", zap.Bool("enabled", enabled))
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，与命中检测相机的屏幕尺寸一致
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.demoConfig.Camera.ScreenWidth, a.demoConfig.Camera.ScreenHeight
}

// Shutdown 保存设置并刷新日志
func (a *App) Shutdown() {
	if !a.sceneManager.SaveCurrent() {
		log.Printf("[App] Warning: settings were not saved")
	}
	_ = a.logger.Sync()
}

// WindowSize 返回初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.demoConfig.Camera.ScreenWidth, a.demoConfig.Camera.ScreenHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
