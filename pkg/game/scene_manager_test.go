package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用情况的场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// savingScene 实现 Saveable 的场景
type savingScene struct {
	MockScene
	saves  int
	result bool
}

func (s *savingScene) SaveOnExit() bool {
	s.saves++
	return s.result
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no current scene initially")
	}
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	if !sm.SaveCurrent() {
		t.Error("SaveCurrent without a scene should succeed")
	}
}

func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(10, 10))
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	if sm.Restart() {
		t.Fatal("Restart without a factory should fail")
	}

	old := &savingScene{result: true}
	sm.SwitchTo(old)

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})

	if !sm.Restart() {
		t.Fatal("Restart should succeed")
	}
	if old.saves != 1 {
		t.Errorf("old scene saved %d times, want 1", old.saves)
	}
	if created != 1 || sm.GetCurrentScene() == Scene(old) {
		t.Error("Restart should switch to a freshly created scene")
	}
}

func TestSceneManagerRestartNilScene(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	sm.SwitchTo(first)
	sm.SetSceneFactory(func() Scene { return nil })

	if sm.Restart() {
		t.Error("Restart should fail when the factory returns nil")
	}
	if sm.GetCurrentScene() != Scene(first) {
		t.Error("current scene should be kept when restart fails")
	}
}
