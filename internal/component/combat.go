package component

import "go-turret-defense/pkg/vec3"

// Health — компонент здоровья
type Health struct {
	Value float64
}

// ColliderShape — форма препятствия для трассировки сегмента движения
type ColliderShape int

const (
	ColliderSphere ColliderShape = iota
	ColliderPlane
)

// Collider — компонент препятствия. Сфера центрируется на позиции сущности,
// плоскость задаётся нормалью и смещением: dot(Normal, p) = Offset.
type Collider struct {
	Shape  ColliderShape
	Radius float64
	Normal vec3.Vec3
	Offset float64
}
