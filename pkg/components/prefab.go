package components

// PrefabComponent 记录实体由哪个预制体实例化而来
type PrefabComponent struct {
	// Prefab 预制体名称（如 "Package"、"AlternatePackage"）
	Prefab string
	// Name 实例名称，格式为 "<Prefab>(Clone)"
	Name string
}

// SpawnRole 实体在演示场景中的角色
type SpawnRole int

const (
	// RoleProp 可替换外观的道具（包裹）
	RoleProp SpawnRole = iota
	// RoleCar 车辆
	RoleCar
	// RoleEffect 过渡特效
	RoleEffect
)

// RoleComponent 标记实体角色，渲染和查询时使用
type RoleComponent struct {
	Role SpawnRole
}
