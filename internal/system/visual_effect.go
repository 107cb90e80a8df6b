// internal/system/visual_effect.go
package system

import (
	"go-turret-defense/internal/entity"
)

// VisualEffectSystem ведёт таймеры вспышек попаданий и удаляет истёкшие.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.HitFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.HitFlashes, id)
		}
	}
}
