// internal/component/projectile.go
package component

import (
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// Projectile представляет летящий снаряд. Урон копируется из конфигурации
// орудия в момент выстрела, позднейшие апгрейды его не меняют.
type Projectile struct {
	Position    vec3.Vec3
	Velocity    vec3.Vec3
	Damage      float64
	SpawnedAt   float64 // абсолютное время выстрела, сек
	Lifetime    float64 // сек
	BounceCount int
	MaxBounces  int
	Visual      types.EntityID // хэндл визуала, взятый из пула
}
