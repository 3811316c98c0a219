package sampling

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/arspawn/pkg/geom"
	"github.com/gonewx/arspawn/pkg/surface"
)

// InvalidSurfaceError 平面网格不满足取点前提（空网格、索引越界等）
type InvalidSurfaceError struct {
	PlaneID int
	Reason  string
}

func (e *InvalidSurfaceError) Error() string {
	return fmt.Sprintf("invalid surface %d: %s", e.PlaneID, e.Reason)
}

// LocationFinder 在平面上随机选取生成位置
type LocationFinder struct {
	rng *rand.Rand
}

// NewLocationFinder 创建位置查找器
// rng 决定结果是否可复现；测试中应传入固定种子
func NewLocationFinder(rng *rand.Rand) *LocationFinder {
	return &LocationFinder{rng: rng}
}

// TriangleStart 在长度为 indexCount 的索引缓冲中随机选一个位置，
// 并向下取整到 3 的倍数，保证落在同一个三角形的起点
func TriangleStart(rng *rand.Rand, indexCount int) int {
	return rng.Intn(indexCount) / 3 * 3
}

// FindRandomLocation 返回平面上的随机世界坐标
//
// 取点在三角形局部完成：以第三个顶点为原点，前两个顶点相对它的偏移作为 v1/v2，
// 扇形三角化的 AR 平面第三个顶点就是局部原点。
func (f *LocationFinder) FindRandomLocation(plane *surface.Plane) (geom.Point3, error) {
	if plane == nil {
		return geom.Point3{}, &InvalidSurfaceError{Reason: "nil plane"}
	}

	indices := plane.Mesh.Indices
	vertices := plane.Mesh.Vertices
	if len(indices) < 3 {
		return geom.Point3{}, &InvalidSurfaceError{
			PlaneID: plane.ID,
			Reason:  fmt.Sprintf("index buffer has %d entries, need at least 3", len(indices)),
		}
	}

	// 只在完整三角形范围内取索引，忽略尾部不足 3 个的残留
	start := TriangleStart(f.rng, len(indices)/3*3)

	var tri [3]geom.Point3
	for k := 0; k < 3; k++ {
		idx := indices[start+k]
		if idx < 0 || idx >= len(vertices) {
			return geom.Point3{}, &InvalidSurfaceError{
				PlaneID: plane.ID,
				Reason:  fmt.Sprintf("index %d at %d out of range (%d vertices)", idx, start+k, len(vertices)),
			}
		}
		tri[k] = vertices[idx]
	}

	origin := tri[2]
	local := origin.Add(SampleTriangle(f.rng, tri[0].Sub(origin), tri[1].Sub(origin)))
	return plane.Transform.TransformPoint(local), nil
}
