package input

import "testing"

func TestScriptedProvider(t *testing.T) {
	p := NewScriptedProvider(
		FrameState{Pressed: true, X: 10, Y: 20},
		FrameState{X: 12, Y: 22},
		FrameState{Released: true, X: 14, Y: 24},
	)

	p.Update()
	if !p.PressedThisFrame() || p.ReleasedThisFrame() {
		t.Errorf("frame 1: pressed=%v released=%v", p.PressedThisFrame(), p.ReleasedThisFrame())
	}

	p.Update()
	if p.PressedThisFrame() || p.ReleasedThisFrame() {
		t.Error("frame 2 should have no edge events")
	}

	p.Update()
	if !p.ReleasedThisFrame() {
		t.Error("frame 3 should report release")
	}
	if x, y := p.Position(); x != 14 || y != 24 {
		t.Errorf("frame 3 position = (%v, %v), want (14, 24)", x, y)
	}

	// 序列结束后保持最后位置
	p.Update()
	if p.PressedThisFrame() || p.ReleasedThisFrame() {
		t.Error("exhausted script should not produce events")
	}
	if x, y := p.Position(); x != 14 || y != 24 {
		t.Errorf("exhausted position = (%v, %v), want (14, 24)", x, y)
	}

	p.Push(FrameState{Pressed: true, X: 1, Y: 2})
	p.Update()
	if !p.PressedThisFrame() {
		t.Error("pushed frame should be played")
	}
}
