// Package sampling 在平面网格上选取随机生成位置
package sampling

import (
	"math/rand"

	"github.com/gonewx/arspawn/pkg/geom"
)

// SampleTriangle 在由原点、v1、v2 构成的三角形内均匀取点
//
// 先在 v1/v2 张成的平行四边形内取点 (u, v)，
// 若落在对角线外侧 (u+v > 1) 则对折回三角形内。
func SampleTriangle(rng *rand.Rand, v1, v2 geom.Point3) geom.Point3 {
	u := rng.Float64()
	v := rng.Float64()
	if u+v > 1 {
		u = 1 - u
		v = 1 - v
	}
	return v1.Mul(u).Add(v2.Mul(v))
}
