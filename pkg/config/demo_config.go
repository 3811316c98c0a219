package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 预制体名称
const (
	PrefabCar              = "Car"
	PrefabPackage          = "Package"
	PrefabAlternatePackage = "AlternatePackage"
	PrefabTransitionEffect = "TransitionEffect"
)

// DemoConfig 演示场景配置
type DemoConfig struct {
	Transition TransitionConfig        `yaml:"transition"` // 外观替换过渡
	Prefabs    map[string]PrefabConfig `yaml:"prefabs"`    // 预制体名称 -> 参数
	Spawn      SpawnConfig             `yaml:"spawn"`      // 生成规则
	Tracker    TrackerConfig           `yaml:"tracker"`    // 模拟平面跟踪器
	Camera     CameraConfig            `yaml:"camera"`     // 命中检测用相机
	Ambient    AmbientConfig           `yaml:"ambient"`    // 环境音
}

// TransitionConfig 过渡参数
type TransitionConfig struct {
	Duration       float64 `yaml:"duration"`       // 缩放过渡时长(秒)
	EffectLifetime float64 `yaml:"effectLifetime"` // 过渡粒子特效存在时间(秒)
	EffectRate     float64 `yaml:"effectRate"`     // 特效初始发射速率(个/秒)
}

// PrefabConfig 预制体参数
type PrefabConfig struct {
	ColliderRadius float64    `yaml:"colliderRadius"` // 球形碰撞体半径(米)，0 表示无碰撞体
	Scale          [3]float64 `yaml:"scale"`          // 初始缩放
	Color          string     `yaml:"color"`          // 调试视图颜色(#RRGGBB)
}

// SpawnConfig 生成规则
type SpawnConfig struct {
	Primary   string `yaml:"primary"`   // 锁定平面后生成的物体
	Alternate string `yaml:"alternate"` // 点击后替换成的外观
	Car       string `yaml:"car"`       // 点击平面生成的车辆
	Effect    string `yaml:"effect"`    // 过渡特效，为空则不生成
	Seed      int64  `yaml:"seed"`      // 随机种子，0 表示使用时间
}

// TrackerConfig 模拟平面跟踪器参数
type TrackerConfig struct {
	WarmUp       float64    `yaml:"warmUp"`
	Sides        int        `yaml:"sides"`
	Radius       float64    `yaml:"radius"`
	Center       [3]float64 `yaml:"center"`
	Yaw          float64    `yaml:"yaw"`
	HeightJitter float64    `yaml:"heightJitter"`
}

// CameraConfig 俯视相机参数
type CameraConfig struct {
	Height        float64 `yaml:"height"`        // 相机离地高度(米)
	FieldOfView   float64 `yaml:"fieldOfView"`   // 垂直视角(度)
	ScreenWidth   int     `yaml:"screenWidth"`   // 逻辑屏幕宽度
	ScreenHeight  int     `yaml:"screenHeight"`  // 逻辑屏幕高度
	DebugMaxLines int     `yaml:"debugMaxLines"` // 调试文本最多保留行数
}

// AmbientConfig 环境音参数
type AmbientConfig struct {
	Frequency  float64 `yaml:"frequency"`  // 音调频率(Hz)
	SampleRate int     `yaml:"sampleRate"` // 采样率
}

// DefaultDemoConfig 返回内置默认配置
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		Transition: TransitionConfig{
			Duration:       0.75,
			EffectLifetime: 2.0,
			EffectRate:     40,
		},
		Prefabs: map[string]PrefabConfig{
			PrefabCar:              {ColliderRadius: 0.15, Scale: [3]float64{1, 1, 1}, Color: "#d04030"},
			PrefabPackage:          {ColliderRadius: 0.12, Scale: [3]float64{1, 1, 1}, Color: "#c89650"},
			PrefabAlternatePackage: {ColliderRadius: 0.12, Scale: [3]float64{1, 1, 1}, Color: "#50a0d0"},
			PrefabTransitionEffect: {Scale: [3]float64{1, 1, 1}, Color: "#ffffff"},
		},
		Spawn: SpawnConfig{
			Primary:   PrefabPackage,
			Alternate: PrefabAlternatePackage,
			Car:       PrefabCar,
			Effect:    PrefabTransitionEffect,
		},
		Tracker: TrackerConfig{
			WarmUp:       1.5,
			Sides:        12,
			Radius:       1.5,
			Center:       [3]float64{0, -1, 0},
			HeightJitter: 0.005,
		},
		Camera: CameraConfig{
			Height:        3,
			FieldOfView:   60,
			ScreenWidth:   800,
			ScreenHeight:  600,
			DebugMaxLines: 12,
		},
		Ambient: AmbientConfig{
			Frequency:  220,
			SampleRate: 48000,
		},
	}
}

// ParseDemoConfig 解析 YAML，未出现的字段保留默认值
func ParseDemoConfig(data []byte) (*DemoConfig, error) {
	cfg := DefaultDemoConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demo config: %w", err)
	}
	return cfg, nil
}

// LoadDemoConfig 从 YAML 文件加载配置
func LoadDemoConfig(filePath string) (*DemoConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo config file: %w", err)
	}
	return ParseDemoConfig(data)
}

// Validate 验证配置的有效性
func (c *DemoConfig) Validate() error {
	if c.Transition.Duration < 0 {
		return fmt.Errorf("transition.duration must be >= 0, got %v", c.Transition.Duration)
	}
	if c.Transition.EffectLifetime < 0 {
		return fmt.Errorf("transition.effectLifetime must be >= 0, got %v", c.Transition.EffectLifetime)
	}
	if c.Transition.EffectRate < 0 {
		return fmt.Errorf("transition.effectRate must be >= 0, got %v", c.Transition.EffectRate)
	}

	for _, name := range []string{c.Spawn.Primary, c.Spawn.Alternate, c.Spawn.Car} {
		if name == "" {
			return errors.New("spawn.primary, spawn.alternate and spawn.car are required")
		}
		if _, ok := c.Prefabs[name]; !ok {
			return fmt.Errorf("prefab %q is not defined", name)
		}
	}
	if c.Spawn.Effect != "" {
		if _, ok := c.Prefabs[c.Spawn.Effect]; !ok {
			return fmt.Errorf("effect prefab %q is not defined", c.Spawn.Effect)
		}
	}

	for name, p := range c.Prefabs {
		if p.ColliderRadius < 0 {
			return fmt.Errorf("prefab %s: colliderRadius must be >= 0, got %v", name, p.ColliderRadius)
		}
		if p.Color != "" {
			if _, err := ParseHexColor(p.Color); err != nil {
				return fmt.Errorf("prefab %s: %w", name, err)
			}
		}
	}

	if c.Tracker.Sides < 3 {
		return fmt.Errorf("tracker.sides must be >= 3, got %d", c.Tracker.Sides)
	}
	if c.Tracker.Radius <= 0 {
		return fmt.Errorf("tracker.radius must be > 0, got %v", c.Tracker.Radius)
	}
	if c.Camera.Height <= 0 || c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		return fmt.Errorf("camera height/fieldOfView out of range: %v/%v", c.Camera.Height, c.Camera.FieldOfView)
	}
	if c.Camera.ScreenWidth <= 0 || c.Camera.ScreenHeight <= 0 {
		return fmt.Errorf("camera screen size must be positive, got %dx%d", c.Camera.ScreenWidth, c.Camera.ScreenHeight)
	}
	if c.Ambient.SampleRate <= 0 || c.Ambient.Frequency <= 0 {
		return fmt.Errorf("ambient frequency/sampleRate must be positive, got %v/%d", c.Ambient.Frequency, c.Ambient.SampleRate)
	}
	return nil
}
