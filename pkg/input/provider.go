// Package input 统一主触点（触摸或鼠标左键）的逐帧状态
package input

// Provider 主触点输入
// 每帧先调用 Update，再读取本帧状态
type Provider interface {
	Update()
	// PressedThisFrame 主触点是否在本帧按下
	PressedThisFrame() bool
	// ReleasedThisFrame 主触点是否在本帧抬起
	ReleasedThisFrame() bool
	// Position 主触点当前（或最后一次）屏幕坐标
	Position() (x, y float64)
}

// FrameState 单帧输入快照
type FrameState struct {
	Pressed  bool
	Released bool
	X, Y     float64
}

// ScriptedProvider 按预设帧序列回放输入，用于测试和无窗口运行
// 序列播放完后保持最后位置、不再产生按下/抬起事件
type ScriptedProvider struct {
	frames  []FrameState
	index   int
	current FrameState
}

// NewScriptedProvider 创建回放输入
func NewScriptedProvider(frames ...FrameState) *ScriptedProvider {
	return &ScriptedProvider{frames: frames, index: -1}
}

// Push 在序列末尾追加帧
func (p *ScriptedProvider) Push(frames ...FrameState) {
	p.frames = append(p.frames, frames...)
}

// Update 前进一帧
func (p *ScriptedProvider) Update() {
	p.index++
	if p.index < len(p.frames) {
		p.current = p.frames[p.index]
		return
	}
	p.index = len(p.frames) - 1
	p.current = FrameState{X: p.current.X, Y: p.current.Y}
}

// PressedThisFrame 实现 Provider
func (p *ScriptedProvider) PressedThisFrame() bool { return p.current.Pressed }

// ReleasedThisFrame 实现 Provider
func (p *ScriptedProvider) ReleasedThisFrame() bool { return p.current.Released }

// Position 实现 Provider
func (p *ScriptedProvider) Position() (float64, float64) { return p.current.X, p.current.Y }
