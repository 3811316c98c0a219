package physics

import (
	"math"
	"testing"

	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/geom"
)

func newBall(em *ecs.EntityManager, pos geom.Point3, radius float64, scale geom.Point3) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: pos, Scale: scale})
	em.AddComponent(id, &components.ColliderComponent{Radius: radius})
	return id
}

func TestRaycastNearestHit(t *testing.T) {
	em := ecs.NewEntityManager()
	low := newBall(em, geom.Point3{Y: -1}, 0.2, geom.One())
	high := newBall(em, geom.Point3{Y: 0}, 0.2, geom.One())
	newBall(em, geom.Point3{X: 5}, 0.2, geom.One())

	rc := NewSphereRaycaster(em)
	hit, ok := rc.Raycast(geom.NewRay(geom.Point3{Y: 3}, geom.Point3{Y: -1}))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Entity != high {
		t.Errorf("hit entity %d, want nearest %d (not %d)", hit.Entity, high, low)
	}
	if math.Abs(hit.Distance-2.8) > 1e-9 {
		t.Errorf("distance = %v, want 2.8", hit.Distance)
	}
}

func TestRaycastIgnoresZeroScaleAndDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	shrunk := newBall(em, geom.Point3{}, 0.2, geom.Zero())
	gone := newBall(em, geom.Point3{Y: 0.5}, 0.2, geom.One())
	em.DestroyEntity(gone)

	rc := NewSphereRaycaster(em)
	if hit, ok := rc.Raycast(geom.NewRay(geom.Point3{Y: 3}, geom.Point3{Y: -1})); ok {
		t.Errorf("unexpected hit on entity %d (shrunk=%d, destroyed=%d)", hit.Entity, shrunk, gone)
	}
}

func TestTopDownCameraRoundTrip(t *testing.T) {
	cam := TopDownCamera{
		Position:     geom.Point3{Y: 2},
		FieldOfView:  60,
		ScreenWidth:  800,
		ScreenHeight: 600,
	}

	world := geom.Point3{X: 0.4, Y: -1, Z: -0.3}
	sx, sy, ok := cam.WorldToScreen(world)
	if !ok {
		t.Fatal("point below camera should project")
	}

	// 沿射线到达同一高度应回到原来的世界坐标
	ray := cam.ScreenPointToRay(sx, sy)
	dist := (cam.Position.Y - world.Y) / -ray.Direction.Y
	if got := ray.At(dist); !geom.NearlyEqual(got, world, 1e-9) {
		t.Errorf("round trip = %v, want %v", got, world)
	}

	cx, cy, _ := cam.WorldToScreen(geom.Point3{Y: -1})
	if cx != 400 || cy != 300 {
		t.Errorf("origin projects to (%v, %v), want screen center", cx, cy)
	}

	if _, _, ok := cam.WorldToScreen(geom.Point3{Y: 5}); ok {
		t.Error("point above camera should not project")
	}
}
