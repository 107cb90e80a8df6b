// internal/entity/visuals.go
package entity

import (
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// Реализация interfaces.VisualFactory поверх хранилищ ECS: визуальный хэндл —
// это сущность с Renderable без коллайдера, снаряды её не задевают.

func (e *ECS) CreateProjectileVisual(radius float64, color [4]uint8) types.EntityID {
	id := e.NewEntity()
	e.Positions[id] = &component.Position{}
	e.Renderables[id] = &component.Renderable{
		Color:   color,
		Radius:  radius,
		Visible: true,
	}
	return id
}

func (e *ECS) SetVisualTransform(id types.EntityID, pos vec3.Vec3) {
	p, ok := e.Positions[id]
	if !ok {
		p = &component.Position{}
		e.Positions[id] = p
	}
	p.Vec3 = pos
}

func (e *ECS) SetVisualVisible(id types.EntityID, visible bool) {
	if r, ok := e.Renderables[id]; ok {
		r.Visible = visible
	}
}

func (e *ECS) DestroyVisual(id types.EntityID) {
	e.RemoveEntity(id)
}

func (e *ECS) SpawnHitFlash(target types.EntityID, duration float64) {
	e.HitFlashes[target] = &component.HitFlash{Timer: duration}
}
