package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenProvider 基于 ebiten 的主触点输入
// 优先跟踪触摸（移动设备），没有触摸时退回鼠标左键（桌面设备）
type EbitenProvider struct {
	touchID     ebiten.TouchID
	tracking    bool
	pressed     bool
	released    bool
	x, y        int
	touchBuffer []ebiten.TouchID
}

// NewEbitenProvider 创建 ebiten 输入
func NewEbitenProvider() *EbitenProvider {
	return &EbitenProvider{}
}

// Update 读取本帧输入，必须在 ebiten 的 Update 中调用
func (p *EbitenProvider) Update() {
	p.pressed = false
	p.released = false

	// 首先检查触摸输入
	p.touchBuffer = inpututil.AppendJustPressedTouchIDs(p.touchBuffer[:0])
	if !p.tracking && len(p.touchBuffer) > 0 {
		p.touchID = p.touchBuffer[0]
		p.tracking = true
		p.pressed = true
		p.x, p.y = ebiten.TouchPosition(p.touchID)
		return
	}

	if p.tracking {
		if inpututil.IsTouchJustReleased(p.touchID) {
			// 抬起后 TouchPosition 返回 (0,0)，使用上一帧位置
			p.x, p.y = inpututil.TouchPositionInPreviousTick(p.touchID)
			p.tracking = false
			p.released = true
			return
		}
		p.x, p.y = ebiten.TouchPosition(p.touchID)
		return
	}

	// 其次检查鼠标输入
	p.x, p.y = ebiten.CursorPosition()
	p.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	p.released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// PressedThisFrame 实现 Provider
func (p *EbitenProvider) PressedThisFrame() bool { return p.pressed }

// ReleasedThisFrame 实现 Provider
func (p *EbitenProvider) ReleasedThisFrame() bool { return p.released }

// Position 实现 Provider
func (p *EbitenProvider) Position() (float64, float64) { return float64(p.x), float64(p.y) }
