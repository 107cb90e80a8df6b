// internal/system/helpers_test.go
package system

import (
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/event"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// fakeWorld serves radius queries from a fake entity store and returns a
// scripted obstruction for segment traces.
type fakeWorld struct {
	entities *fakeEntities

	obs         interfaces.Obstruction
	hasObs      bool
	obsErr      error
	obsOnce     bool // report the obstruction on the first trace only
	traceCalls  int
	lastExclude []types.EntityID
}

func (w *fakeWorld) NearestObstruction(from, motion vec3.Vec3, exclude []types.EntityID) (interfaces.Obstruction, bool, error) {
	w.traceCalls++
	w.lastExclude = exclude
	if w.obsErr != nil {
		return interfaces.Obstruction{}, false, w.obsErr
	}
	if !w.hasObs {
		return interfaces.Obstruction{}, false, nil
	}
	if w.obsOnce && w.traceCalls > 1 {
		return interfaces.Obstruction{}, false, nil
	}
	return w.obs, true, nil
}

func (w *fakeWorld) EntitiesWithinRadius(center vec3.Vec3, radius float64, exclude []types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, id := range w.entities.order {
		pos := w.entities.positions[id]
		if pos.Sub(center).LengthSq() > radius*radius {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if ex == id {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, id)
		}
	}
	return out
}

type impulseRecord struct {
	velocity vec3.Vec3
	duration float64
}

// fakeEntities is an in-memory entity store. Entities in flaky have a health
// component that vanishes between HasHealth and ApplyDamage.
type fakeEntities struct {
	order      []types.EntityID
	positions  map[types.EntityID]vec3.Vec3
	velocities map[types.EntityID]vec3.Vec3
	healths    map[types.EntityID]float64
	flaky      map[types.EntityID]bool

	damaged  map[types.EntityID]float64
	impulses map[types.EntityID]impulseRecord
}

func newFakeEntities() *fakeEntities {
	return &fakeEntities{
		positions:  make(map[types.EntityID]vec3.Vec3),
		velocities: make(map[types.EntityID]vec3.Vec3),
		healths:    make(map[types.EntityID]float64),
		flaky:      make(map[types.EntityID]bool),
		damaged:    make(map[types.EntityID]float64),
		impulses:   make(map[types.EntityID]impulseRecord),
	}
}

func (e *fakeEntities) add(id types.EntityID, pos vec3.Vec3, health float64) {
	e.order = append(e.order, id)
	e.positions[id] = pos
	if health > 0 {
		e.healths[id] = health
	}
}

func (e *fakeEntities) Alive(id types.EntityID) bool {
	if _, ok := e.positions[id]; !ok {
		return false
	}
	if hp, ok := e.healths[id]; ok {
		return hp > 0
	}
	return true
}

func (e *fakeEntities) HasHealth(id types.EntityID) bool {
	if e.flaky[id] {
		return true
	}
	_, ok := e.healths[id]
	return ok
}

func (e *fakeEntities) Position(id types.EntityID) (vec3.Vec3, bool) {
	pos, ok := e.positions[id]
	return pos, ok
}

func (e *fakeEntities) Velocity(id types.EntityID) (vec3.Vec3, bool) {
	vel, ok := e.velocities[id]
	return vel, ok
}

func (e *fakeEntities) ApplyDamage(id types.EntityID, amount float64) bool {
	if _, ok := e.healths[id]; !ok {
		return false
	}
	e.healths[id] -= amount
	e.damaged[id] += amount
	return true
}

func (e *fakeEntities) ApplyImpulse(id types.EntityID, velocity vec3.Vec3, duration float64) {
	e.impulses[id] = impulseRecord{velocity: velocity, duration: duration}
}

// fakeVisuals counts created and destroyed handles.
type fakeVisuals struct {
	nextID     types.EntityID
	created    int
	destroyed  int
	visible    map[types.EntityID]bool
	transforms map[types.EntityID]vec3.Vec3
	flashes    map[types.EntityID]float64
}

func newFakeVisuals() *fakeVisuals {
	return &fakeVisuals{
		nextID:     1000,
		visible:    make(map[types.EntityID]bool),
		transforms: make(map[types.EntityID]vec3.Vec3),
		flashes:    make(map[types.EntityID]float64),
	}
}

func (v *fakeVisuals) CreateProjectileVisual(radius float64, color [4]uint8) types.EntityID {
	v.nextID++
	v.created++
	v.visible[v.nextID] = true
	return v.nextID
}

func (v *fakeVisuals) SetVisualTransform(id types.EntityID, pos vec3.Vec3) {
	v.transforms[id] = pos
}

func (v *fakeVisuals) SetVisualVisible(id types.EntityID, visible bool) {
	v.visible[id] = visible
}

func (v *fakeVisuals) DestroyVisual(id types.EntityID) {
	v.destroyed++
	delete(v.visible, id)
	delete(v.transforms, id)
}

func (v *fakeVisuals) SpawnHitFlash(target types.EntityID, duration float64) {
	v.flashes[target] = duration
}

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

type fakeScheduler struct {
	registered map[types.EntityID]func(dt float64)
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{registered: make(map[types.EntityID]func(dt float64))}
}

func (s *fakeScheduler) Register(id types.EntityID, fn func(dt float64)) {
	s.registered[id] = fn
}

func (s *fakeScheduler) Unregister(id types.EntityID) {
	delete(s.registered, id)
}

// weaponEnv bundles a weapon with all its fake services for weapon tests.
type weaponEnv struct {
	world    *fakeWorld
	entities *fakeEntities
	visuals  *fakeVisuals
	clock    *fakeClock
	sched    *fakeScheduler
	pool     *ProjectilePool
	events   *event.Dispatcher
	mount    *component.WeaponMount
	weapon   *Weapon
}

func newWeaponEnv(def defs.WeaponDefinition) (*weaponEnv, error) {
	entities := newFakeEntities()
	world := &fakeWorld{entities: entities}
	visuals := newFakeVisuals()
	clock := &fakeClock{}
	sched := newFakeScheduler()
	pool := NewProjectilePool(visuals, 64, 0.5, [4]uint8{255, 200, 0, 255})
	events := event.NewDispatcher()
	mount := &component.WeaponMount{
		Base:   &component.Anchor{Position: vec3.Vec3{}},
		Barrel: &component.Anchor{Position: vec3.Vec3{Y: 1}},
	}

	w, err := NewWeapon(mount, def, 0, WeaponDeps{
		World:     world,
		Entities:  entities,
		Visuals:   visuals,
		Clock:     clock,
		Scheduler: sched,
		Pool:      pool,
		Events:    events,
		ID:        1,
	})
	if err != nil {
		return nil, err
	}
	return &weaponEnv{
		world:    world,
		entities: entities,
		visuals:  visuals,
		clock:    clock,
		sched:    sched,
		pool:     pool,
		events:   events,
		mount:    mount,
		weapon:   w,
	}, nil
}

// tick advances the clock and runs one weapon update.
func (env *weaponEnv) tick(dt float64) {
	env.clock.now += dt
	env.weapon.Update(dt)
}

// eventCounter counts delivered events by type.
type eventCounter struct {
	counts map[event.EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[event.EventType]int)}
}

func (c *eventCounter) OnEvent(ev event.Event) {
	c.counts[ev.Type]++
}
