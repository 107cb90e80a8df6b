// internal/system/weapon.go
package system

import (
	"errors"
	"fmt"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/event"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// ErrMissingAnchor возвращается, если у модели орудия нет базовой или
// ствольной опоры. Конструирование прерывается.
var ErrMissingAnchor = errors.New("weapon mount is missing a required anchor")

// worldForward — начальное направление ствола до первого захвата цели.
var worldForward = vec3.Vec3{Z: 1}

// WeaponDeps — внешние сервисы, которые орудие получает при конструировании.
type WeaponDeps struct {
	World     interfaces.WorldQuery
	Entities  interfaces.EntityAccess
	Visuals   interfaces.VisualFactory
	Clock     interfaces.Clock
	Scheduler interfaces.Scheduler
	Pool      *ProjectilePool
	Events    *event.Dispatcher
	ID        types.EntityID
}

// Weapon — автономная турель: владеет конфигурацией, текущей целью,
// направлением ствола и множеством живых снарядов; раз в такт оркестрирует
// выбор цели, наведение, стрельбу и полёт снарядов.
type Weapon struct {
	id      types.EntityID
	cfg     component.WeaponConfig
	mount   *component.WeaponMount
	state   component.WeaponState
	active  bool
	running bool

	orientation vec3.Vec3 // единичный вектор направления ствола
	lastFireAt  float64
	target      types.EntityID
	hasTarget   bool
	projectiles []*component.Projectile
	gravity     vec3.Vec3

	selector *TargetSelector
	aim      *AimController
	resolver *CollisionResolver
	pool     *ProjectilePool

	entities  interfaces.EntityAccess
	visuals   interfaces.VisualFactory
	clock     interfaces.Clock
	scheduler interfaces.Scheduler
	events    *event.Dispatcher
}

// NewWeapon конструирует орудие на модели с обязательными опорами.
// Незаданные поля определения получают значения по умолчанию.
func NewWeapon(mount *component.WeaponMount, def defs.WeaponDefinition, owner types.EntityID, deps WeaponDeps) (*Weapon, error) {
	if mount == nil || mount.Base == nil || mount.Barrel == nil {
		return nil, fmt.Errorf("weapon %q: %w", def.ID, ErrMissingAnchor)
	}

	w := &Weapon{
		id:          deps.ID,
		cfg:         resolveConfig(def, owner),
		mount:       mount,
		state:       component.WeaponIdle,
		active:      true,
		orientation: worldForward,
		gravity:     vec3.Vec3{Y: -config.Gravity},
		selector:    NewTargetSelector(deps.World, deps.Entities),
		aim:         NewAimController(deps.Entities),
		resolver:    NewCollisionResolver(deps.World, deps.Entities, deps.Visuals),
		pool:        deps.Pool,
		entities:    deps.Entities,
		visuals:     deps.Visuals,
		clock:       deps.Clock,
		scheduler:   deps.Scheduler,
		events:      deps.Events,
	}
	return w, nil
}

// resolveConfig применяет значения по умолчанию к незаданным полям.
// Заданные поля переносятся дословно.
func resolveConfig(def defs.WeaponDefinition, owner types.EntityID) component.WeaponConfig {
	cfg := component.WeaponConfig{
		DetectionRange:     def.DetectionRange,
		FireRate:           def.FireRate,
		Damage:             def.Damage,
		ProjectileSpeed:    def.ProjectileSpeed,
		ProjectileLifetime: def.ProjectileLifetime,
		MaxBounces:         config.DefaultMaxBounces,
		OwnerID:            owner,
	}
	if cfg.DetectionRange <= 0 {
		cfg.DetectionRange = config.DefaultDetectionRange
	}
	if cfg.FireRate <= 0 {
		cfg.FireRate = config.DefaultFireRate
	}
	if cfg.Damage <= 0 {
		cfg.Damage = config.DefaultDamage
	}
	if cfg.ProjectileSpeed <= 0 {
		cfg.ProjectileSpeed = config.DefaultProjectileSpeed
	}
	if cfg.ProjectileLifetime <= 0 {
		cfg.ProjectileLifetime = config.DefaultProjectileLifetime
	}
	if def.MaxBounces != nil && *def.MaxBounces >= 0 {
		cfg.MaxBounces = *def.MaxBounces
	}
	return cfg
}

func (w *Weapon) ID() types.EntityID               { return w.id }
func (w *Weapon) Config() component.WeaponConfig   { return w.cfg }
func (w *Weapon) State() component.WeaponState     { return w.state }
func (w *Weapon) Active() bool                     { return w.active }
func (w *Weapon) Orientation() vec3.Vec3           { return w.orientation }
func (w *Weapon) LiveProjectiles() int             { return len(w.projectiles) }
func (w *Weapon) Target() (types.EntityID, bool)   { return w.target, w.hasTarget }

// Start подключает орудие к покадровому планировщику. Идемпотентен.
func (w *Weapon) Start() {
	if !w.active || w.running {
		return
	}
	w.scheduler.Register(w.id, w.Update)
	w.running = true
}

// Stop отключает орудие от планировщика. Идемпотентен.
func (w *Weapon) Stop() {
	if !w.running {
		return
	}
	w.scheduler.Unregister(w.id)
	w.running = false
}

// Update — оркестрация одного такта. Порядок фиксирован: выбор цели, затем
// наведение по цели этого же такта, затем стрельба уже повёрнутым стволом,
// затем продвижение всех живых снарядов.
func (w *Weapon) Update(dt float64) {
	if dt <= 0 || !w.active {
		return
	}
	if w.mount.Detached {
		w.Shutdown()
		return
	}

	now := w.clock.Now()
	base := w.mount.Base.Position
	barrel := w.mount.Barrel.Position

	w.target, w.hasTarget = w.selector.Select(base, w.cfg.DetectionRange, w.cfg.OwnerID)

	if w.hasTarget {
		w.state = component.WeaponTracking
		w.orientation = w.aim.Aim(w.orientation, barrel, w.target, w.cfg.ProjectileSpeed, dt)
		if now-w.lastFireAt >= w.cfg.FireRate {
			w.FireProjectile()
			w.lastFireAt = now
			w.state = component.WeaponFiring
		}
	} else {
		w.state = component.WeaponIdle
	}

	w.advanceProjectiles(dt, now)
}

// FireProjectile выпускает снаряд по текущему направлению ствола. Урон и
// параметры полёта снимаются с конфигурации в момент выстрела.
func (w *Weapon) FireProjectile() *component.Projectile {
	if !w.active {
		return nil
	}

	handle := w.pool.Acquire()
	proj := &component.Projectile{
		Position:   w.mount.Barrel.Position,
		Velocity:   w.orientation.Scale(w.cfg.ProjectileSpeed),
		Damage:     w.cfg.Damage,
		SpawnedAt:  w.clock.Now(),
		Lifetime:   w.cfg.ProjectileLifetime,
		MaxBounces: w.cfg.MaxBounces,
		Visual:     handle,
	}
	w.visuals.SetVisualTransform(handle, proj.Position)
	w.projectiles = append(w.projectiles, proj)
	w.events.Publish(event.Event{Type: event.ProjectileFired, Source: w.id})
	return proj
}

// advanceProjectiles делает шаг баллистики и разрешает столкновения для
// каждого живого снаряда. Истечение времени жизни проверяется до физики.
func (w *Weapon) advanceProjectiles(dt, now float64) {
	live := w.projectiles[:0]
	for _, proj := range w.projectiles {
		if now-proj.SpawnedAt >= proj.Lifetime {
			w.releaseProjectile(proj)
			w.events.Publish(event.Event{Type: event.ProjectileExpired, Source: w.id})
			continue
		}

		newPos, newVel := IntegrateStep(proj.Position, proj.Velocity, dt, w.gravity)
		outcome := w.resolver.Resolve(proj, newPos, newVel)
		if outcome == OutcomeDamage || outcome == OutcomeDestroy {
			w.releaseProjectile(proj)
			continue
		}

		w.visuals.SetVisualTransform(proj.Visual, proj.Position)
		live = append(live, proj)
	}
	// Обнуляем хвост, чтобы не держать уничтоженные снаряды
	for i := len(live); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = live
}

func (w *Weapon) releaseProjectile(proj *component.Projectile) {
	if proj.Visual != 0 {
		w.pool.Release(proj.Visual)
		proj.Visual = 0
	}
}

// Upgrade вливает заданные поля заплатки в конфигурацию. Действует на
// будущие выстрелы и наведение, никогда — на снаряды в полёте.
func (w *Weapon) Upgrade(patch defs.WeaponPatch) {
	if patch.DetectionRange != nil && *patch.DetectionRange > 0 {
		w.cfg.DetectionRange = *patch.DetectionRange
	}
	if patch.FireRate != nil && *patch.FireRate > 0 {
		w.cfg.FireRate = *patch.FireRate
	}
	if patch.Damage != nil && *patch.Damage > 0 {
		w.cfg.Damage = *patch.Damage
	}
	if patch.ProjectileSpeed != nil && *patch.ProjectileSpeed > 0 {
		w.cfg.ProjectileSpeed = *patch.ProjectileSpeed
	}
	if patch.ProjectileLifetime != nil && *patch.ProjectileLifetime > 0 {
		w.cfg.ProjectileLifetime = *patch.ProjectileLifetime
	}
	if patch.MaxBounces != nil && *patch.MaxBounces >= 0 {
		w.cfg.MaxBounces = *patch.MaxBounces
	}
}

// Shutdown снимает орудие с планировщика, уничтожает все живые снаряды с
// возвратом визуалов в пул и освобождает модель. Идемпотентен: повторный
// вызов не приводит к двойному возврату хэндлов.
func (w *Weapon) Shutdown() {
	if !w.active {
		return
	}
	w.active = false
	w.Stop()
	for _, proj := range w.projectiles {
		w.releaseProjectile(proj)
	}
	w.projectiles = nil
	w.hasTarget = false
	w.target = 0
	w.events.Publish(event.Event{Type: event.WeaponShutdown, Source: w.id})
}

// ProjectileTrajectory — отладочный предпросмотр траектории: прогон
// интегратора вперёд без проверки столкновений. Не авторитетен.
func (w *Weapon) ProjectileTrajectory(steps int, stepDt float64) []vec3.Vec3 {
	if !w.active {
		return nil
	}
	start := w.mount.Barrel.Position
	vel := w.orientation.Scale(w.cfg.ProjectileSpeed)
	return Trajectory(start, vel, w.gravity, steps, stepDt)
}
