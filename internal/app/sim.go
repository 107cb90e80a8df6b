// internal/app/sim.go
package app

import (
	"fmt"
	"log"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/entity"
	"go-turret-defense/internal/event"
	"go-turret-defense/internal/system"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// Simulation — владелец мира и всех систем. Реализует interfaces.Scheduler
// для покадровых обработчиков орудий; пулы снарядов создаются по одному на
// определение орудия и живут до конца симуляции.
type Simulation struct {
	ECS                *entity.ECS
	Events             *event.Dispatcher
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem

	pools   map[string]*system.ProjectilePool
	weapons map[types.EntityID]*system.Weapon

	callbacks map[types.EntityID]func(dt float64)
	order     []types.EntityID
}

func NewSimulation() *Simulation {
	events := event.NewDispatcher()
	ecs := entity.NewECS(events)
	s := &Simulation{
		ECS:                ecs,
		Events:             events,
		MovementSystem:     system.NewMovementSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		pools:              make(map[string]*system.ProjectilePool),
		weapons:            make(map[types.EntityID]*system.Weapon),
		callbacks:          make(map[types.EntityID]func(dt float64)),
	}
	events.Subscribe(event.TargetDestroyed, &targetReaper{ecs: ecs})
	return s
}

// targetReaper убирает уничтоженные цели из мира после такта.
type targetReaper struct {
	ecs *entity.ECS
}

func (r *targetReaper) OnEvent(ev event.Event) {
	id, ok := ev.Data.(types.EntityID)
	if !ok {
		log.Printf("Simulation: TargetDestroyed carries %T, want EntityID", ev.Data)
		return
	}
	r.ecs.RemoveEntity(id)
}

// Register реализует interfaces.Scheduler.
func (s *Simulation) Register(id types.EntityID, fn func(dt float64)) {
	if _, exists := s.callbacks[id]; !exists {
		s.order = append(s.order, id)
	}
	s.callbacks[id] = fn
}

// Unregister реализует interfaces.Scheduler.
func (s *Simulation) Unregister(id types.EntityID) {
	if _, exists := s.callbacks[id]; !exists {
		return
	}
	delete(s.callbacks, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Update продвигает симуляцию на dt секунд. Неположительный dt игнорируется,
// большие скачки (пауза отладчика, свёрнутое окно) срезаются до предела.
func (s *Simulation) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	s.ECS.GameTime += dt

	s.MovementSystem.Update(dt)

	// Копия на случай Shutdown орудия посреди обхода
	ids := make([]types.EntityID, len(s.order))
	copy(ids, s.order)
	for _, id := range ids {
		if fn, ok := s.callbacks[id]; ok {
			fn(dt)
		}
	}

	s.VisualEffectSystem.Update(dt)
	s.Events.Drain()
}

// AttachWeapon конструирует орудие по определению из библиотеки, сажает его
// на модель и запускает. Пул визуалов общий для всех орудий одного типа.
func (s *Simulation) AttachWeapon(mount *component.WeaponMount, defID string, owner types.EntityID) (*system.Weapon, error) {
	def, ok := defs.WeaponLibrary[defID]
	if !ok {
		return nil, fmt.Errorf("attach weapon: unknown definition %q", defID)
	}

	pool, ok := s.pools[defID]
	if !ok {
		radius := def.Visuals.ProjectileRadius
		if radius <= 0 {
			radius = config.ProjectileRadius
		}
		pool = system.NewProjectilePool(s.ECS, config.PoolMaxIdle, radius, def.Visuals.Color)
		s.pools[defID] = pool
	}

	id := s.ECS.NewEntity()
	w, err := system.NewWeapon(mount, def, owner, system.WeaponDeps{
		World:     s.ECS,
		Entities:  s.ECS,
		Visuals:   s.ECS,
		Clock:     s.ECS,
		Scheduler: s,
		Pool:      pool,
		Events:    s.Events,
		ID:        id,
	})
	if err != nil {
		return nil, err
	}

	s.weapons[id] = w
	w.Start()
	return w, nil
}

// DetachWeapon выводит орудие из строя и забывает о нём.
func (s *Simulation) DetachWeapon(id types.EntityID) {
	w, ok := s.weapons[id]
	if !ok {
		return
	}
	w.Shutdown()
	delete(s.weapons, id)
}

// Weapons возвращает живые орудия в порядке регистрации.
func (s *Simulation) Weapons() []*system.Weapon {
	out := make([]*system.Weapon, 0, len(s.weapons))
	for _, id := range s.order {
		if w, ok := s.weapons[id]; ok {
			out = append(out, w)
		}
	}
	return out
}

// SpawnTarget создаёт движущуюся цель со здоровьем и сферическим коллайдером.
func (s *Simulation) SpawnTarget(pos, vel vec3.Vec3, health, radius float64) types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{Vec3: pos}
	s.ECS.Velocities[id] = &component.Velocity{Vec3: vel}
	s.ECS.Healths[id] = &component.Health{Value: health}
	s.ECS.Colliders[id] = &component.Collider{Shape: component.ColliderSphere, Radius: radius}
	s.ECS.Renderables[id] = &component.Renderable{
		Color:   [4]uint8{200, 60, 60, 255},
		Radius:  radius,
		Visible: true,
	}
	return id
}

// SpawnObstacleSphere создаёт неподвижное инертное препятствие.
func (s *Simulation) SpawnObstacleSphere(pos vec3.Vec3, radius float64) types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{Vec3: pos}
	s.ECS.Colliders[id] = &component.Collider{Shape: component.ColliderSphere, Radius: radius}
	s.ECS.Renderables[id] = &component.Renderable{
		Color:   [4]uint8{120, 120, 120, 255},
		Radius:  radius,
		Visible: true,
	}
	return id
}

// SpawnGround создаёт бесконечную плоскость пола на высоте height.
func (s *Simulation) SpawnGround(height float64) types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{Vec3: vec3.Vec3{Y: height}}
	s.ECS.Colliders[id] = &component.Collider{
		Shape:  component.ColliderPlane,
		Normal: vec3.Vec3{Y: 1},
		Offset: height,
	}
	return id
}
