package systems

import (
	"math"
	"testing"

	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/config"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/entities"
	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/physics"
)

func TestDebugRenderMarkers(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	em := ecs.NewEntityManager()
	factory := entities.NewPrefabFactory(em, cfg)
	camera := physics.TopDownCamera{
		Position:     geom.Point3{Y: 2},
		FieldOfView:  60,
		ScreenWidth:  800,
		ScreenHeight: 600,
	}
	render := NewDebugRenderSystem(em, camera, cfg)

	pkg, _ := factory.Instantiate(config.PrefabPackage, geom.Point3{Y: -1})
	hidden, _ := factory.Instantiate(config.PrefabAlternatePackage, geom.Point3{Y: -1})
	_ = factory.SetScale(hidden, geom.Zero())
	effect, _ := factory.NewTransitionEffect(config.PrefabTransitionEffect, geom.Point3{Y: -1}, 10, 1)
	gone, _ := factory.Instantiate(config.PrefabCar, geom.Point3{Y: -1})
	_ = factory.Destroy(gone)

	markers := render.Markers()
	if len(markers) != 2 {
		t.Fatalf("markers = %d, want 2 (zero-scale and destroyed skipped)", len(markers))
	}

	m := markers[0]
	if m.Entity != pkg || m.Role != components.RoleProp {
		t.Errorf("first marker = %+v, want package", m)
	}
	if math.Abs(m.X-400) > 1e-9 || math.Abs(m.Y-300) > 1e-9 {
		t.Errorf("marker at (%v, %v), want screen center", m.X, m.Y)
	}
	wantRadius := cfg.Prefabs[config.PrefabPackage].ColliderRadius * camera.PixelsPerMeter(-1)
	if math.Abs(m.Radius-wantRadius) > 1e-9 {
		t.Errorf("radius = %v, want %v", m.Radius, wantRadius)
	}
	if m.Color != cfg.Prefabs[config.PrefabPackage].RGBA() {
		t.Errorf("color = %v", m.Color)
	}

	if markers[1].Entity != effect || markers[1].Role != components.RoleEffect {
		t.Errorf("second marker = %+v, want effect", markers[1])
	}
}
