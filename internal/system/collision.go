// internal/system/collision.go
package system

import (
	"log"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// Outcome — исход шага снаряда после разрешения столкновений.
type Outcome int

const (
	// OutcomeNone — препятствий нет, снаряд продолжает полёт.
	OutcomeNone Outcome = iota
	// OutcomeDamage — урон нанесён, снаряд уничтожается независимо от
	// оставшегося запаса рикошетов.
	OutcomeDamage
	// OutcomeBounce — рикошет, полёт продолжается со следующего такта.
	OutcomeBounce
	// OutcomeDestroy — запас рикошетов исчерпан на безвредном попадании.
	OutcomeDestroy
)

// CollisionResolver разрешает столкновения на сегменте движения снаряда и
// применяет исход: урон, импульс и подсветка цели либо отражение скорости.
type CollisionResolver struct {
	world    interfaces.WorldQuery
	entities interfaces.EntityAccess
	visuals  interfaces.VisualFactory
}

func NewCollisionResolver(world interfaces.WorldQuery, entities interfaces.EntityAccess, visuals interfaces.VisualFactory) *CollisionResolver {
	return &CollisionResolver{world: world, entities: entities, visuals: visuals}
}

// Resolve принимает снаряд и его проинтегрированные позицию и скорость.
// Мутирует снаряд согласно исходу. Сбой запроса к миру считается временным:
// логируется и трактуется как отсутствие препятствия, снаряд никогда не
// остаётся в повреждённом состоянии.
func (r *CollisionResolver) Resolve(proj *component.Projectile, newPos, newVel vec3.Vec3) Outcome {
	motion := newPos.Sub(proj.Position)

	obs, hit, err := r.world.NearestObstruction(proj.Position, motion, []types.EntityID{proj.Visual})
	if err != nil {
		log.Printf("CollisionResolver: world query failed, treating as clear path: %v", err)
		proj.Position = newPos
		proj.Velocity = newVel
		return OutcomeNone
	}

	if !hit {
		proj.Position = newPos
		proj.Velocity = newVel
		return OutcomeNone
	}

	// Прижимаем снаряд к точке попадания
	proj.Position = obs.Point
	proj.Velocity = newVel

	if r.entities.HasHealth(obs.Entity) {
		if r.entities.ApplyDamage(obs.Entity, proj.Damage) {
			pushDir := newVel.Normalize()
			r.entities.ApplyImpulse(obs.Entity, pushDir.Scale(config.ImpactImpulse), config.ImpactImpulseDuration)
			r.visuals.SpawnHitFlash(obs.Entity, config.HitFlashDuration)
			return OutcomeDamage
		}
		// Компонент здоровья пропал между запросом и ударом — урон
		// пропускается, попадание разрешается как безвредное.
		log.Printf("CollisionResolver: entity %d has no health component, damage skipped", obs.Entity)
	}

	if proj.BounceCount < proj.MaxBounces {
		r.bounce(proj, obs)
		return OutcomeBounce
	}

	return OutcomeDestroy
}

// bounce отражает скорость о нормаль поверхности с затуханием и отступом от
// поверхности против мгновенного повторного столкновения.
func (r *CollisionResolver) bounce(proj *component.Projectile, obs interfaces.Obstruction) {
	preSpeed := proj.Velocity.Length()

	reflected := vec3.Reflect(proj.Velocity, obs.Normal).Scale(config.Restitution)

	// Страховка от численного разгона: после рикошета не быстрее, чем до
	if speed := reflected.Length(); speed > preSpeed && speed > 0 {
		reflected = reflected.Scale(preSpeed / speed)
	}

	proj.Velocity = reflected
	proj.Position = obs.Point.Add(obs.Normal.Scale(config.BounceNudge))
	proj.BounceCount++
}
