// internal/system/movement.go
package system

import (
	"go-turret-defense/internal/entity"
)

// MovementSystem продвигает все сущности с позицией и скоростью и
// расходует временные толчки от попаданий.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update сдвигает позиции на скорость плюс активный толчок. Толчок
// затухает дискретно: по истечении остатка времени компонент удаляется.
func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		pos.Vec3 = pos.Vec3.Add(vel.Vec3.Scale(deltaTime))
	}

	for id, imp := range s.ecs.Impulses {
		pos, ok := s.ecs.Positions[id]
		if ok {
			pos.Vec3 = pos.Vec3.Add(imp.Velocity.Scale(deltaTime))
		}
		imp.Remaining -= deltaTime
		if imp.Remaining <= 0 || !ok {
			delete(s.ecs.Impulses, id)
		}
	}
}
