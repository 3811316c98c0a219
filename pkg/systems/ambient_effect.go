package systems

import (
	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/ecs"
)

// AmbientEffect 过渡期间随进度淡出的环境效果（粒子发射速率、音量等）
type AmbientEffect interface {
	// Magnitude 当前强度
	Magnitude() float64
	// SetMagnitude 设置强度
	SetMagnitude(value float64)
	// Stop 停止效果（停止发射/暂停播放）
	Stop()
}

// EmitterEffect 将实体上的 EmitterComponent 适配为 AmbientEffect
// 实体已销毁时所有操作为空操作
type EmitterEffect struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// NewEmitterEffect 创建发射器效果适配器
func NewEmitterEffect(em *ecs.EntityManager, id ecs.EntityID) *EmitterEffect {
	return &EmitterEffect{em: em, id: id}
}

func (e *EmitterEffect) emitter() *components.EmitterComponent {
	if !e.em.IsAlive(e.id) {
		return nil
	}
	emitter, _ := ecs.GetComponent[*components.EmitterComponent](e.em, e.id)
	return emitter
}

// Magnitude 实现 AmbientEffect
func (e *EmitterEffect) Magnitude() float64 {
	if emitter := e.emitter(); emitter != nil {
		return emitter.Rate
	}
	return 0
}

// SetMagnitude 实现 AmbientEffect
func (e *EmitterEffect) SetMagnitude(value float64) {
	if emitter := e.emitter(); emitter != nil {
		emitter.Rate = value
	}
}

// Stop 实现 AmbientEffect
func (e *EmitterEffect) Stop() {
	if emitter := e.emitter(); emitter != nil {
		emitter.Rate = 0
		emitter.Active = false
	}
}
