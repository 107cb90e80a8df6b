// internal/entity/ecs.go
package entity

import (
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/event"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// ECS — хранилище компонентов мира. Предполагается однопоточный
// кооперативный доступ из покадрового цикла симуляции.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Colliders   map[types.EntityID]*component.Collider
	Renderables map[types.EntityID]*component.Renderable
	Impulses    map[types.EntityID]*component.Impulse
	HitFlashes  map[types.EntityID]*component.HitFlash

	dispatcher *event.Dispatcher
}

func NewECS(dispatcher *event.Dispatcher) *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Impulses:    make(map[types.EntityID]*component.Impulse),
		HitFlashes:  make(map[types.EntityID]*component.HitFlash),
		dispatcher:  dispatcher,
	}
}

func (e *ECS) NewEntity() types.EntityID {
	id := e.NextID
	e.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ.
func (e *ECS) RemoveEntity(id types.EntityID) {
	delete(e.Positions, id)
	delete(e.Velocities, id)
	delete(e.Healths, id)
	delete(e.Colliders, id)
	delete(e.Renderables, id)
	delete(e.Impulses, id)
	delete(e.HitFlashes, id)
}

// Now реализует interfaces.Clock.
func (e *ECS) Now() float64 {
	return e.GameTime
}

// Alive — сущность существует и, если у неё есть здоровье, оно положительно.
func (e *ECS) Alive(id types.EntityID) bool {
	if _, ok := e.Positions[id]; !ok {
		return false
	}
	if health, ok := e.Healths[id]; ok {
		return health.Value > 0
	}
	return true
}

func (e *ECS) HasHealth(id types.EntityID) bool {
	_, ok := e.Healths[id]
	return ok
}

func (e *ECS) Position(id types.EntityID) (vec3.Vec3, bool) {
	pos, ok := e.Positions[id]
	if !ok {
		return vec3.Vec3{}, false
	}
	return pos.Vec3, true
}

func (e *ECS) Velocity(id types.EntityID) (vec3.Vec3, bool) {
	vel, ok := e.Velocities[id]
	if !ok {
		return vec3.Vec3{}, false
	}
	return vel.Vec3, true
}

// ApplyDamage снимает здоровье и публикует TargetDestroyed при добивании.
// Возвращает false, если компонента здоровья нет.
func (e *ECS) ApplyDamage(id types.EntityID, amount float64) bool {
	health, ok := e.Healths[id]
	if !ok {
		return false
	}
	if health.Value <= 0 {
		return true // уже мертва, урон уходит в пустоту
	}
	health.Value -= amount
	if health.Value <= 0 {
		health.Value = 0
		e.dispatcher.Publish(event.Event{Type: event.TargetDestroyed, Source: id, Data: id})
	}
	return true
}

// ApplyImpulse вешает на сущность затухающий толчок.
func (e *ECS) ApplyImpulse(id types.EntityID, velocity vec3.Vec3, duration float64) {
	if _, ok := e.Positions[id]; !ok {
		return
	}
	e.Impulses[id] = &component.Impulse{Velocity: velocity, Remaining: duration}
}
