package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/arspawn/pkg/diag"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/entities"
	"github.com/gonewx/arspawn/pkg/input"
	"github.com/gonewx/arspawn/pkg/surface"
)

// CarSpawner 点击平面时在准星位置生成车辆，并锁定该平面
// 车辆只生成一次；锁定平面后包裹生成器开始工作
type CarSpawner struct {
	factory  *entities.PrefabFactory
	tracker  surface.Tracker
	surfaces *surface.Manager
	input    input.Provider
	sink     diag.Sink
	prefab   string
	car      ecs.EntityID
}

// NewCarSpawner 创建车辆生成器
func NewCarSpawner(factory *entities.PrefabFactory, tracker surface.Tracker, surfaces *surface.Manager,
	in input.Provider, prefab string, sink diag.Sink) *CarSpawner {
	return &CarSpawner{
		factory:  factory,
		tracker:  tracker,
		surfaces: surfaces,
		input:    in,
		sink:     sink,
		prefab:   prefab,
	}
}

// Car 返回车辆实体（未生成时为 InvalidEntity）
func (s *CarSpawner) Car() ecs.EntityID {
	if s.car != ecs.InvalidEntity && !s.factory.IsAlive(s.car) {
		return ecs.InvalidEntity
	}
	return s.car
}

// Update 每帧调用：没有车辆、本帧按下且准星在平面上时生成车辆
func (s *CarSpawner) Update() {
	if s.Car() != ecs.InvalidEntity || !s.input.PressedThisFrame() {
		return
	}
	plane := s.tracker.CurrentPlane()
	if plane == nil {
		return
	}
	reticle, ok := s.tracker.ReticlePosition()
	if !ok {
		return
	}

	id, err := s.factory.Instantiate(s.prefab, reticle)
	if err != nil {
		log.Printf("[CarSpawner] Warning: %v", err)
		return
	}
	diag.Append(s.sink, "Car Instantiated")
	s.car = id
	diag.Append(s.sink, fmt.Sprintf("Car Set (%d)", id))
	s.surfaces.LockPlane(plane)
}
