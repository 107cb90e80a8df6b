// internal/component/weapon.go
package component

import (
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// WeaponState — состояние орудия в текущем такте
type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponTracking
	WeaponFiring
)

func (s WeaponState) String() string {
	switch s {
	case WeaponIdle:
		return "Idle"
	case WeaponTracking:
		return "Tracking"
	case WeaponFiring:
		return "Firing"
	}
	return "Unknown"
}

// WeaponConfig — разрешённая конфигурация орудия. Все числовые поля > 0,
// кроме MaxBounces >= 0. OwnerID может быть нулевым (орудие без владельца).
type WeaponConfig struct {
	DetectionRange     float64
	FireRate           float64 // минимум секунд между выстрелами
	Damage             float64
	ProjectileSpeed    float64
	ProjectileLifetime float64
	MaxBounces         int
	OwnerID            types.EntityID
}

// Anchor — опорная точка модели орудия
type Anchor struct {
	Position vec3.Vec3
}

// WeaponMount — модель орудия с базовой и ствольной опорами. Detached
// выставляется внешним миром при отсоединении модели; орудие, увидев это,
// выполняет Shutdown.
type WeaponMount struct {
	Base     *Anchor // точка измерения дистанции до целей
	Barrel   *Anchor // точка вылета снарядов и наведения
	Detached bool
}
