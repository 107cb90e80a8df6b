// internal/interfaces/world.go
package interfaces

import (
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// Obstruction — результат трассировки сегмента движения снаряда.
type Obstruction struct {
	Point  vec3.Vec3
	Normal vec3.Vec3
	Entity types.EntityID
}

// WorldQuery — пространственные запросы к миру. Ошибка трассировки считается
// временной: вызывающий обязан залогировать её и продолжить без столкновения.
type WorldQuery interface {
	// NearestObstruction ищет ближайшее препятствие на отрезке from..from+motion,
	// игнорируя перечисленные сущности.
	NearestObstruction(from, motion vec3.Vec3, exclude []types.EntityID) (Obstruction, bool, error)
	// EntitiesWithinRadius возвращает сущности в сфере, без дубликатов,
	// в устойчивом порядке (возрастание EntityID).
	EntitiesWithinRadius(center vec3.Vec3, radius float64, exclude []types.EntityID) []types.EntityID
}

// EntityAccess — интроспекция и воздействие на сущности мира.
type EntityAccess interface {
	Alive(id types.EntityID) bool
	HasHealth(id types.EntityID) bool
	Position(id types.EntityID) (vec3.Vec3, bool)
	Velocity(id types.EntityID) (vec3.Vec3, bool)
	// ApplyDamage возвращает false, если у сущности нет компонента здоровья.
	ApplyDamage(id types.EntityID, amount float64) bool
	ApplyImpulse(id types.EntityID, velocity vec3.Vec3, duration float64)
}

// VisualFactory — создание и управление визуальными объектами.
type VisualFactory interface {
	CreateProjectileVisual(radius float64, color [4]uint8) types.EntityID
	SetVisualTransform(id types.EntityID, pos vec3.Vec3)
	SetVisualVisible(id types.EntityID, visible bool)
	DestroyVisual(id types.EntityID)
	// SpawnHitFlash вешает на цель подсветку с автоснятием через duration секунд.
	SpawnHitFlash(target types.EntityID, duration float64)
}

// Clock — монотонное время симуляции в секундах.
type Clock interface {
	Now() float64
}

// Scheduler — регистрация покадровых обработчиков.
type Scheduler interface {
	Register(id types.EntityID, fn func(dt float64))
	Unregister(id types.EntityID)
}
