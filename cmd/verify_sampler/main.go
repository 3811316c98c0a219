// verify_sampler 统计验证平面随机采样的均匀性
//
// 用法:
//
//	go run ./cmd/verify_sampler -samples 200000 -seed 7
//
// 对单个三角形比较样本均值与质心，对整个平面比较样本均值与平面中心，
// 并统计每个三角形的命中次数（正多边形各三角形面积相同，命中数应接近）。
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/sampling"
	"github.com/gonewx/arspawn/pkg/surface"
)

var (
	samples   = flag.Int("samples", 200000, "采样次数")
	seed      = flag.Int64("seed", 1, "随机种子")
	sides     = flag.Int("sides", 8, "平面边界多边形边数")
	radius    = flag.Float64("radius", 1.0, "平面半径(米)")
	tolerance = flag.Float64("tolerance", 0.01, "均值偏差容忍度(米)")
	verbose   = flag.Bool("verbose", false, "显示每个三角形的命中统计")
)

func main() {
	flag.Parse()
	if *samples <= 0 || *sides < 3 || *radius <= 0 {
		log.Fatalf("invalid arguments: samples=%d sides=%d radius=%v", *samples, *sides, *radius)
	}

	rng := rand.New(rand.NewSource(*seed))
	ok := true

	// 单个三角形：样本均值应接近 (v1 + v2) / 3
	v1 := geom.Point3{X: *radius}
	v2 := geom.Point3{Z: *radius}
	var sum geom.Point3
	for i := 0; i < *samples; i++ {
		sum = sum.Add(sampling.SampleTriangle(rng, v1, v2))
	}
	mean := sum.Mul(1 / float64(*samples))
	centroid := v1.Add(v2).Mul(1.0 / 3)
	deviation := mean.Sub(centroid).Norm()
	fmt.Printf("Triangle mean:     (%.4f, %.4f, %.4f)\n", mean.X, mean.Y, mean.Z)
	fmt.Printf("Triangle centroid: (%.4f, %.4f, %.4f)  deviation %.5f\n", centroid.X, centroid.Y, centroid.Z, deviation)
	if deviation > *tolerance {
		ok = false
	}

	// 整个平面：样本均值应接近平面中心
	transform := geom.IdentityTransform()
	plane := surface.NewFanPlane(1, surface.RegularPolygon(*sides, *radius), transform)
	finder := sampling.NewLocationFinder(rng)
	hits := make([]int, plane.Mesh.TriangleCount())

	sum = geom.Point3{}
	for i := 0; i < *samples; i++ {
		p, err := finder.FindRandomLocation(plane)
		if err != nil {
			log.Fatalf("FindRandomLocation: %v", err)
		}
		sum = sum.Add(p)
		hits[triangleOf(p, *sides)]++
	}
	mean = sum.Mul(1 / float64(*samples))
	deviation = mean.Sub(plane.Center).Norm()
	fmt.Printf("Plane mean:        (%.4f, %.4f, %.4f)  deviation %.5f\n", mean.X, mean.Y, mean.Z, deviation)
	if deviation > *tolerance {
		ok = false
	}

	expected := float64(*samples) / float64(len(hits))
	worst := 0.0
	for i, n := range hits {
		rel := math.Abs(float64(n)-expected) / expected
		worst = math.Max(worst, rel)
		if *verbose {
			fmt.Printf("  triangle %2d: %7d hits (%+.2f%%)\n", i, n, (float64(n)-expected)/expected*100)
		}
	}
	fmt.Printf("Triangle hit spread: worst %.2f%% from uniform\n", worst*100)

	if !ok {
		fmt.Println("FAIL: sample mean outside tolerance")
		os.Exit(1)
	}
	fmt.Println("OK")
}

// triangleOf 返回点所在的扇形三角形序号（以 +X 轴为起点逆时针）
func triangleOf(p geom.Point3, sides int) int {
	angle := math.Atan2(p.Z, p.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	i := int(angle / (2 * math.Pi / float64(sides)))
	if i >= sides {
		i = sides - 1
	}
	return i
}
