// internal/system/targeting.go
package system

import (
	"math"

	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// TargetSelector выбирает ближайшую пригодную цель в радиусе обнаружения.
// Выбор пересчитывается каждый такт, цель не "липкая".
type TargetSelector struct {
	world    interfaces.WorldQuery
	entities interfaces.EntityAccess
}

func NewTargetSelector(world interfaces.WorldQuery, entities interfaces.EntityAccess) *TargetSelector {
	return &TargetSelector{world: world, entities: entities}
}

// Select возвращает ближайшую живую цель с компонентом здоровья, исключая
// владельца орудия. При равных дистанциях остаётся первая найденная.
func (s *TargetSelector) Select(base vec3.Vec3, detectionRange float64, owner types.EntityID) (types.EntityID, bool) {
	candidates := s.world.EntitiesWithinRadius(base, detectionRange, nil)

	var best types.EntityID
	bestDist := math.MaxFloat64
	found := false
	seen := make(map[types.EntityID]struct{}, len(candidates))

	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if owner != 0 && id == owner {
			continue
		}
		if !s.entities.Alive(id) || !s.entities.HasHealth(id) {
			continue
		}
		pos, ok := s.entities.Position(id)
		if !ok {
			continue
		}
		dist := pos.Sub(base).Length()
		if dist < bestDist {
			bestDist = dist
			best = id
			found = true
		}
	}

	return best, found
}
