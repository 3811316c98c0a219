package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	toneaudio "github.com/gonewx/arspawn/internal/audio"
	"github.com/gonewx/arspawn/pkg/config"
)

// ambientAmplitude 环境音波形峰值，音量由 Player 控制
const ambientAmplitude = 0.3

// volumePlayer 环境音播放器需要的最小接口（*audio.Player 满足）
type volumePlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	Volume() float64
	SetVolume(volume float64)
}

// AmbientTone 循环播放的环境音
//
// 实现过渡系统的环境效果接口：Magnitude 为当前音量，
// 过渡期间音量随进度淡出到 0，结束时暂停播放。
type AmbientTone struct {
	player volumePlayer
}

// NewAmbientTone 包装播放器
func NewAmbientTone(player volumePlayer) *AmbientTone {
	return &AmbientTone{player: player}
}

// Magnitude 返回当前音量
func (t *AmbientTone) Magnitude() float64 {
	if t.player == nil {
		return 0
	}
	return t.player.Volume()
}

// SetMagnitude 设置音量，限制在 0.0 ~ 1.0
func (t *AmbientTone) SetMagnitude(value float64) {
	if t.player == nil {
		return
	}
	t.player.SetVolume(clampVolume(value))
}

// Stop 暂停播放
func (t *AmbientTone) Stop() {
	if t.player == nil {
		return
	}
	t.player.Pause()
}

// Resume 以指定音量重新开始播放
func (t *AmbientTone) Resume(volume float64) {
	if t.player == nil {
		return
	}
	t.player.SetVolume(clampVolume(volume))
	if !t.player.IsPlaying() {
		t.player.Play()
	}
}

// IsPlaying 是否正在播放
func (t *AmbientTone) IsPlaying() bool {
	return t.player != nil && t.player.IsPlaying()
}

// AudioManager 音频管理器
// 职责：
//   - 持有 ebiten 音频上下文
//   - 创建环境音并应用 SettingsManager 中的音量与开关
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager // 可为 nil
	cfg             config.AmbientConfig
	ambient         *AmbientTone
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率需与 cfg.SampleRate 一致
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - cfg: 环境音参数
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, cfg config.AmbientConfig) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		cfg:             cfg,
	}
}

// StartAmbient 创建并开始播放环境音
//
// 返回：
//   - *AmbientTone: 环境音；设置中关闭环境音时返回 nil, nil
//   - error: 生成音频流或创建播放器失败
func (am *AudioManager) StartAmbient() (*AmbientTone, error) {
	if am.ambient != nil {
		return am.ambient, nil
	}

	volume := 0.5
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.AmbientEnabled {
			log.Printf("[AudioManager] Ambient tone disabled by settings")
			return nil, nil
		}
		volume = settings.AmbientVolume
	}

	stream, err := toneaudio.NewToneStream(am.cfg.SampleRate, am.cfg.Frequency, ambientAmplitude)
	if err != nil {
		return nil, fmt.Errorf("failed to render ambient tone: %w", err)
	}

	player, err := am.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create ambient player: %w", err)
	}

	am.ambient = NewAmbientTone(player)
	am.ambient.Resume(volume)
	log.Printf("[AudioManager] Ambient tone started (%d Hz, volume %.2f)", stream.Frequency(), volume)
	return am.ambient, nil
}

// Ambient 返回已创建的环境音，未创建时返回 nil
func (am *AudioManager) Ambient() *AmbientTone {
	return am.ambient
}
