package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于重建演示场景（重新检测平面、清空所有物体），避免循环依赖
type SceneFactory func() Scene

// SceneManager 管理当前活动场景，同一时刻只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SaveCurrent 当前场景实现 Saveable 时保存其状态
// 没有场景或场景不需要保存时返回 true
func (sm *SceneManager) SaveCurrent() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// Restart 保存当前场景后用工厂函数重建
//
// 返回：
//   - bool: 是否成功切换到新场景
func (sm *SceneManager) Restart() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	if !sm.SaveCurrent() {
		log.Printf("[SceneManager] Warning: failed to save scene before restart")
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景")
		return false
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] Scene restarted")
	return true
}

// Update 更新当前场景，没有场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景，没有场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
