package game

import (
	"testing"

	"github.com/gonewx/arspawn/pkg/config"
)

// fakePlayer 记录播放状态和音量
type fakePlayer struct {
	playing bool
	volume  float64
	plays   int
}

func (p *fakePlayer) Play()                    { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()                   { p.playing = false }
func (p *fakePlayer) IsPlaying() bool          { return p.playing }
func (p *fakePlayer) Volume() float64          { return p.volume }
func (p *fakePlayer) SetVolume(volume float64) { p.volume = volume }

func TestAmbientToneMagnitudeIsVolume(t *testing.T) {
	player := &fakePlayer{}
	tone := NewAmbientTone(player)

	tone.Resume(0.8)
	if !tone.IsPlaying() || tone.Magnitude() != 0.8 {
		t.Fatalf("after Resume: playing=%v magnitude=%v", tone.IsPlaying(), tone.Magnitude())
	}

	tone.SetMagnitude(0.2)
	if player.volume != 0.2 {
		t.Errorf("volume = %v, want 0.2", player.volume)
	}
	tone.SetMagnitude(3)
	if player.volume != 1 {
		t.Errorf("volume = %v, want clamped 1", player.volume)
	}

	tone.Stop()
	if tone.IsPlaying() {
		t.Error("Stop should pause the player")
	}
}

func TestAmbientToneResumeDoesNotRestartPlayingPlayer(t *testing.T) {
	player := &fakePlayer{}
	tone := NewAmbientTone(player)

	tone.Resume(0.5)
	tone.Resume(0.6)
	if player.plays != 1 {
		t.Errorf("Play called %d times, want 1", player.plays)
	}
	if player.volume != 0.6 {
		t.Errorf("volume = %v, want 0.6", player.volume)
	}
}

func TestAmbientToneNilPlayer(t *testing.T) {
	tone := NewAmbientTone(nil)
	tone.SetMagnitude(1)
	tone.Stop()
	tone.Resume(1)
	if tone.Magnitude() != 0 || tone.IsPlaying() {
		t.Error("nil player should behave as a silent effect")
	}
}

func TestStartAmbientDisabledBySettings(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetAmbientEnabled(false)

	am := NewAudioManager(nil, sm, config.DefaultDemoConfig().Ambient)
	tone, err := am.StartAmbient()
	if err != nil || tone != nil {
		t.Errorf("StartAmbient = %v, %v; want nil, nil", tone, err)
	}
	if am.Ambient() != nil {
		t.Error("Ambient() should stay nil")
	}
}

func TestStartAmbientInvalidConfig(t *testing.T) {
	am := NewAudioManager(nil, nil, config.AmbientConfig{Frequency: 0, SampleRate: 48000})
	if _, err := am.StartAmbient(); err == nil {
		t.Error("expected error for zero frequency")
	}
}
