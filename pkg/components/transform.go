package components

import "github.com/gonewx/arspawn/pkg/geom"

// TransformComponent 实体的世界位置与缩放
// 缩放直接参与命中检测（碰撞半径随缩放变化）和渲染
type TransformComponent struct {
	Position geom.Point3
	Scale    geom.Point3
}
