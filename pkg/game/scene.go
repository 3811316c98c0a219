package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景接口，每帧由 SceneManager 调用
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在退出或重建前保存状态（例如用户设置）
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，程序仍会正常退出
	SaveOnExit() bool
}
