package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/arspawn/pkg/components"
	"github.com/gonewx/arspawn/pkg/config"
	"github.com/gonewx/arspawn/pkg/ecs"
	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/physics"
	"github.com/gonewx/arspawn/pkg/surface"
)

// 无碰撞体实体的显示半径(米)
const defaultMarkerRadius = 0.05

// 特效粒子最多绘制数量
const maxEffectParticles = 32

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	planeColor      = color.RGBA{R: 90, G: 200, B: 120, A: 160}
	lockedColor     = color.RGBA{R: 240, G: 220, B: 90, A: 220}
	reticleColor    = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// Marker 实体在屏幕上的圆形标记
type Marker struct {
	Entity ecs.EntityID
	X, Y   float64
	Radius float64
	Color  color.RGBA
	Role   components.SpawnRole
}

// DebugRenderSystem 俯视调试视图：平面三角网格、准星、实体圆形标记和诊断文本
type DebugRenderSystem struct {
	entityManager *ecs.EntityManager
	camera        physics.TopDownCamera
	colors        map[string]color.RGBA
}

// NewDebugRenderSystem 创建调试渲染系统
func NewDebugRenderSystem(em *ecs.EntityManager, camera physics.TopDownCamera, cfg *config.DemoConfig) *DebugRenderSystem {
	colors := make(map[string]color.RGBA, len(cfg.Prefabs))
	for name, p := range cfg.Prefabs {
		colors[name] = p.RGBA()
	}
	return &DebugRenderSystem{
		entityManager: em,
		camera:        camera,
		colors:        colors,
	}
}

// Markers 计算所有可见实体的屏幕标记（按实体ID升序）
// 缩放为零或不在相机下方的实体不输出
func (s *DebugRenderSystem) Markers() []Marker {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.PrefabComponent](s.entityManager)
	markers := make([]Marker, 0, len(ids))

	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		prefab, _ := ecs.GetComponent[*components.PrefabComponent](s.entityManager, id)

		scale := geom.MaxComponent(tr.Scale)
		if scale <= 0 {
			continue
		}
		x, y, ok := s.camera.WorldToScreen(tr.Position)
		if !ok {
			continue
		}

		radius := defaultMarkerRadius
		if collider, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id); ok {
			radius = collider.Radius
		}
		role := components.RoleProp
		if rc, ok := ecs.GetComponent[*components.RoleComponent](s.entityManager, id); ok {
			role = rc.Role
		}

		markers = append(markers, Marker{
			Entity: id,
			X:      x,
			Y:      y,
			Radius: radius * scale * s.camera.PixelsPerMeter(tr.Position.Y),
			Color:  s.colors[prefab.Prefab],
			Role:   role,
		})
	}
	return markers
}

// Draw 绘制调试视图
//
// 参数:
//   - tracked: 跟踪器当前检测到的平面，可为 nil
//   - locked: 已锁定的平面，可为 nil
//   - reticle/hasReticle: 准星位置
//   - text: 诊断文本
func (s *DebugRenderSystem) Draw(screen *ebiten.Image, tracked, locked *surface.Plane,
	reticle geom.Point3, hasReticle bool, text string) {
	screen.Fill(backgroundColor)

	if tracked != nil {
		clr := planeColor
		if tracked == locked {
			clr = lockedColor
		}
		s.drawPlane(screen, tracked, clr)
	}

	if hasReticle {
		if x, y, ok := s.camera.WorldToScreen(reticle); ok {
			vector.StrokeLine(screen, float32(x-8), float32(y), float32(x+8), float32(y), 1, reticleColor, true)
			vector.StrokeLine(screen, float32(x), float32(y-8), float32(x), float32(y+8), 1, reticleColor, true)
		}
	}

	for _, m := range s.Markers() {
		if m.Role == components.RoleEffect {
			s.drawEffect(screen, m)
			continue
		}
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius), m.Color, true)
	}

	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

// drawPlane 绘制平面网格的所有三角形边
func (s *DebugRenderSystem) drawPlane(screen *ebiten.Image, plane *surface.Plane, clr color.RGBA) {
	mesh := plane.Mesh
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var pts [3][2]float32
		visible := true
		for k := 0; k < 3; k++ {
			idx := mesh.Indices[i+k]
			if idx < 0 || idx >= len(mesh.Vertices) {
				visible = false
				break
			}
			x, y, ok := s.camera.WorldToScreen(plane.Transform.TransformPoint(mesh.Vertices[idx]))
			if !ok {
				visible = false
				break
			}
			pts[k] = [2]float32{float32(x), float32(y)}
		}
		if !visible {
			continue
		}
		for k := 0; k < 3; k++ {
			a, b := pts[k], pts[(k+1)%3]
			vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, clr, true)
		}
	}
}

// drawEffect 特效绘制为向外扩散的粒子环，粒子数随累计发射量增加
func (s *DebugRenderSystem) drawEffect(screen *ebiten.Image, m Marker) {
	emitter, ok := ecs.GetComponent[*components.EmitterComponent](s.entityManager, m.Entity)
	if !ok {
		return
	}
	count := emitter.TotalLaunched
	if count > maxEffectParticles {
		count = maxEffectParticles
	}
	if count == 0 {
		return
	}

	spread := float32(m.Radius + 30*emitter.Age)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		x := float32(m.X) + spread*float32(math.Cos(angle))
		y := float32(m.Y) + spread*float32(math.Sin(angle))
		vector.DrawFilledCircle(screen, x, y, 2, m.Color, true)
	}
}
