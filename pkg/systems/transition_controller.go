package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/arspawn/pkg/diag"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/geom"
)

// ErrTransitionInProgress 已有过渡在进行，新的替换请求被拒绝
var ErrTransitionInProgress = errors.New("transition already in progress")

// completionEpsilon 判断过渡结束时容忍的浮点误差
// 例如 0.1 累加 3 次得到 0.30000000000000004
const completionEpsilon = 1e-9

// ObjectStore 过渡控制器读写的对象接口
// 对已销毁对象的操作返回 ecs.ErrStaleReference
type ObjectStore interface {
	Scale(id ecs.EntityID) (geom.Point3, error)
	SetScale(id ecs.EntityID, scale geom.Point3) error
	Destroy(id ecs.EntityID) error
}

// TransitionPhase 过渡控制器状态
type TransitionPhase int

const (
	// TransitionIdle 空闲
	TransitionIdle TransitionPhase = iota
	// TransitionRunning 过渡进行中
	TransitionRunning
)

func (p TransitionPhase) String() string {
	switch p {
	case TransitionIdle:
		return "Idle"
	case TransitionRunning:
		return "Transitioning"
	default:
		return fmt.Sprintf("TransitionPhase(%d)", int(p))
	}
}

// effectFade 过渡开始时捕获的效果初始强度
type effectFade struct {
	effect  AmbientEffect
	initial float64
}

// TransitionState 一次替换过渡的全部状态
// 替换触发时创建，每帧推进，结束时整体丢弃
type TransitionState struct {
	Outgoing ecs.EntityID
	Incoming ecs.EntityID

	Elapsed  float64
	Duration float64

	OutgoingStartScale geom.Point3
	OutgoingEndScale   geom.Point3 // 零向量
	IncomingEndScale   geom.Point3 // 单位向量

	// 对象在过渡中途被外部销毁后置为 true，此后不再对其插值
	OutgoingStale bool
	IncomingStale bool

	effects []effectFade
}

// Progress 返回归一化进度 t ∈ [0, 1]
// Duration 为 0 时视为立即完成
func (s *TransitionState) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	return geom.Clamp01(s.Elapsed / s.Duration)
}

// TransitionController 管理"旧物体缩小消失、新物体放大出现"的定时过渡
//
// 状态机只有两个状态：Idle 和 Transitioning。同一时刻最多一个过渡，
// 过渡中的第二次请求直接拒绝。过渡由外部每帧调用 Update(dt) 推进，不阻塞。
type TransitionController struct {
	store    ObjectStore
	sink     diag.Sink
	duration float64
	state    *TransitionState
}

// NewTransitionController 创建过渡控制器
//
// 参数:
//   - store: 对象读写接口
//   - duration: 过渡时长(秒)，<= 0 时第一次 Update 即完成
//   - sink: 诊断输出，可为 nil
func NewTransitionController(store ObjectStore, duration float64, sink diag.Sink) *TransitionController {
	if duration < 0 {
		duration = 0
	}
	return &TransitionController{
		store:    store,
		sink:     sink,
		duration: duration,
	}
}

// Duration 返回过渡时长
func (c *TransitionController) Duration() float64 {
	return c.duration
}

// SetDuration 修改后续过渡的时长，不影响进行中的过渡
func (c *TransitionController) SetDuration(duration float64) {
	if duration < 0 {
		duration = 0
	}
	c.duration = duration
}

// Phase 返回当前状态
func (c *TransitionController) Phase() TransitionPhase {
	if c.state == nil {
		return TransitionIdle
	}
	return TransitionRunning
}

// IsTransitioning 是否有过渡在进行
func (c *TransitionController) IsTransitioning() bool {
	return c.state != nil
}

// State 返回进行中过渡的状态快照
func (c *TransitionController) State() (TransitionState, bool) {
	if c.state == nil {
		return TransitionState{}, false
	}
	return *c.state, true
}

// Begin 开始替换过渡: Idle → Transitioning
//
// 捕获旧物体当前缩放，将新物体缩放置零，并记录各效果的初始强度（nil 效果被忽略）。
// 已在过渡中时返回 ErrTransitionInProgress。
func (c *TransitionController) Begin(outgoing, incoming ecs.EntityID, effects ...AmbientEffect) error {
	if c.state != nil {
		return ErrTransitionInProgress
	}

	state := &TransitionState{
		Outgoing:         outgoing,
		Incoming:         incoming,
		Duration:         c.duration,
		OutgoingEndScale: geom.Zero(),
		IncomingEndScale: geom.One(),
	}

	startScale, err := c.store.Scale(outgoing)
	if err != nil {
		state.OutgoingStale = true
		c.fault("outgoing", outgoing, err)
	}
	state.OutgoingStartScale = startScale

	if err := c.store.SetScale(incoming, geom.Zero()); err != nil {
		state.IncomingStale = true
		c.fault("incoming", incoming, err)
	}

	for _, effect := range effects {
		if effect == nil {
			continue
		}
		state.effects = append(state.effects, effectFade{effect: effect, initial: effect.Magnitude()})
	}

	c.state = state
	log.Printf("[TransitionController] Begin: %d -> %d (duration %.2fs, %d effects)",
		outgoing, incoming, state.Duration, len(state.effects))
	return nil
}

// Update 推进过渡
//
// 返回:
//   - ecs.EntityID: 过渡在本帧完成时返回新物体，否则为 InvalidEntity
//   - bool: 过渡是否在本帧完成
//
// 空闲状态下调用无任何效果。
func (c *TransitionController) Update(dt float64) (ecs.EntityID, bool) {
	s := c.state
	if s == nil {
		return ecs.InvalidEntity, false
	}

	if dt > 0 {
		s.Elapsed += dt
	}

	if s.Duration <= 0 || s.Elapsed >= s.Duration-completionEpsilon {
		return c.complete(), true
	}

	c.apply(s.Progress())
	return ecs.InvalidEntity, false
}

// apply 按进度 t 写入缩放与效果强度
func (c *TransitionController) apply(t float64) {
	s := c.state
	c.setScale(&s.OutgoingStale, "outgoing", s.Outgoing, geom.Lerp(s.OutgoingStartScale, s.OutgoingEndScale, t))
	c.setScale(&s.IncomingStale, "incoming", s.Incoming, geom.Lerp(geom.Zero(), s.IncomingEndScale, t))
	for _, f := range s.effects {
		f.effect.SetMagnitude(f.initial + (0-f.initial)*t)
	}
}

// complete 强制写入终值、停止效果、销毁旧物体并回到 Idle
func (c *TransitionController) complete() ecs.EntityID {
	s := c.state

	c.setScale(&s.OutgoingStale, "outgoing", s.Outgoing, s.OutgoingEndScale)
	c.setScale(&s.IncomingStale, "incoming", s.Incoming, s.IncomingEndScale)
	for _, f := range s.effects {
		f.effect.SetMagnitude(0)
		f.effect.Stop()
	}

	if !s.OutgoingStale {
		if err := c.store.Destroy(s.Outgoing); err != nil {
			c.fault("outgoing", s.Outgoing, err)
		}
	}

	c.state = nil
	log.Printf("[TransitionController] Complete: %d replaced by %d", s.Outgoing, s.Incoming)
	return s.Incoming
}

func (c *TransitionController) setScale(stale *bool, role string, id ecs.EntityID, scale geom.Point3) {
	if *stale {
		return
	}
	if err := c.store.SetScale(id, scale); err != nil {
		*stale = true
		c.fault(role, id, err)
	}
}

// fault 记录非致命的对象访问错误
func (c *TransitionController) fault(role string, id ecs.EntityID, err error) {
	if errors.Is(err, ecs.ErrStaleReference) {
		diag.Append(c.sink, fmt.Sprintf("Transition: %s object %d is gone, skipping it", role, id))
		return
	}
	diag.Append(c.sink, fmt.Sprintf("Transition: %s object %d: %v", role, id, err))
}
