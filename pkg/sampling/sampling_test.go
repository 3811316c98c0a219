package sampling

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/surface"
)

// barycentric 求解 p = a*v1 + b*v2（v1/v2 位于 XZ 平面）
func barycentric(p, v1, v2 geom.Point3) (a, b float64) {
	det := v1.X*v2.Z - v2.X*v1.Z
	a = (p.X*v2.Z - v2.X*p.Z) / det
	b = (v1.X*p.Z - p.X*v1.Z) / det
	return a, b
}

func TestSampleTriangleInsideAndCentroid(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 geom.Point3
	}{
		{"直角三角形", geom.Point3{X: 1}, geom.Point3{Z: 1}},
		{"钝角三角形", geom.Point3{X: 2}, geom.Point3{X: 0.5, Z: 1.5}},
		{"负方向", geom.Point3{X: -3, Z: 1}, geom.Point3{X: -1, Z: -2}},
	}

	const samples = 200000
	const eps = 1e-9

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			var sum geom.Point3
			for i := 0; i < samples; i++ {
				p := SampleTriangle(rng, tt.v1, tt.v2)
				a, b := barycentric(p, tt.v1, tt.v2)
				c := 1 - a - b
				if a < -eps || b < -eps || c < -eps || a > 1+eps || b > 1+eps || c > 1+eps {
					t.Fatalf("sample %v outside triangle: barycentric (%v, %v, %v)", p, a, b, c)
				}
				if p.Y != 0 {
					t.Fatalf("sample %v left the triangle plane", p)
				}
				sum = sum.Add(p)
			}

			mean := sum.Mul(1.0 / samples)
			centroid := tt.v1.Add(tt.v2).Mul(1.0 / 3)
			if !geom.NearlyEqual(mean, centroid, 0.01) {
				t.Errorf("sample mean %v, want centroid %v", mean, centroid)
			}
		})
	}
}

func TestTriangleStartMultipleOfThree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{3, 6, 9, 30, 300} {
		seen := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			start := TriangleStart(rng, n)
			if start%3 != 0 {
				t.Fatalf("n=%d: start %d is not a multiple of 3", n, start)
			}
			if start < 0 || start+2 >= n {
				t.Fatalf("n=%d: start %d out of range", n, start)
			}
			seen[start] = true
		}
		// 小缓冲下每个三角形都应被选中过
		if n <= 30 && len(seen) != n/3 {
			t.Errorf("n=%d: %d distinct triangles chosen, want %d", n, len(seen), n/3)
		}
	}
}

func TestFindRandomLocationOnPlane(t *testing.T) {
	transform := geom.IdentityTransform()
	transform.Position = geom.Point3{X: 5, Y: -1.2, Z: 3}
	transform.Yaw = 0.7
	plane := surface.NewFanPlane(1, surface.RegularPolygon(6, 2), transform)

	finder := NewLocationFinder(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		p, err := finder.FindRandomLocation(plane)
		if err != nil {
			t.Fatalf("FindRandomLocation error: %v", err)
		}
		if math.Abs(p.Y-(-1.2)) > 1e-9 {
			t.Fatalf("point %v not on plane height", p)
		}
		// 正六边形内的点到中心距离不超过外接圆半径
		if d := math.Hypot(p.X-5, p.Z-3); d > 2+1e-9 {
			t.Fatalf("point %v is %v from center, want <= 2", p, d)
		}
	}
}

func TestFindRandomLocationReproducible(t *testing.T) {
	plane := surface.NewFanPlane(1, surface.RegularPolygon(8, 1), geom.IdentityTransform())

	a := NewLocationFinder(rand.New(rand.NewSource(99)))
	b := NewLocationFinder(rand.New(rand.NewSource(99)))
	for i := 0; i < 20; i++ {
		pa, _ := a.FindRandomLocation(plane)
		pb, _ := b.FindRandomLocation(plane)
		if pa != pb {
			t.Fatalf("iteration %d: %v != %v with the same seed", i, pa, pb)
		}
	}
}

func TestFindRandomLocationInvalidSurface(t *testing.T) {
	tests := []struct {
		name  string
		plane *surface.Plane
	}{
		{"nil 平面", nil},
		{"空索引", &surface.Plane{ID: 2, Mesh: surface.Mesh{Vertices: []geom.Point3{{}, {X: 1}}}}},
		{"索引不足", &surface.Plane{ID: 3, Mesh: surface.Mesh{
			Vertices: []geom.Point3{{}, {X: 1}, {Z: 1}},
			Indices:  []int{0, 1},
		}}},
		{"索引越界", &surface.Plane{ID: 4, Mesh: surface.Mesh{
			Vertices: []geom.Point3{{}, {X: 1}},
			Indices:  []int{0, 1, 5},
		}}},
	}

	finder := NewLocationFinder(rand.New(rand.NewSource(1)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finder.FindRandomLocation(tt.plane)
			var invalid *InvalidSurfaceError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want *InvalidSurfaceError", err)
			}
		})
	}
}
