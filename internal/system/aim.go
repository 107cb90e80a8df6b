// internal/system/aim.go
package system

import (
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
	"go-turret-defense/internal/utils"
	"go-turret-defense/pkg/vec3"
)

// AimController вычисляет направление ствола: прямое наведение либо
// наведение с упреждением, со сглаживанием поворота по времени.
type AimController struct {
	entities interfaces.EntityAccess
}

func NewAimController(entities interfaces.EntityAccess) *AimController {
	return &AimController{entities: entities}
}

// InterceptPoint — точка упреждения по линейной оценке времени подлёта:
// timeToReach = dist / projectileSpeed, однократно, без итераций и без учёта
// гравитационного сноса снаряда. Это намеренное приближение первого порядка.
// Для цели без скорости возвращает позицию ствола и false — вызывающий
// переходит на прямое наведение.
func (a *AimController) InterceptPoint(target types.EntityID, barrel vec3.Vec3, projectileSpeed float64) (vec3.Vec3, bool) {
	targetPos, ok := a.entities.Position(target)
	if !ok {
		return barrel, false
	}
	targetVel, hasVel := a.entities.Velocity(target)
	if !hasVel {
		return barrel, false
	}
	timeToReach := targetPos.Sub(barrel).Length() / projectileSpeed
	return targetPos.Add(targetVel.Scale(timeToReach)), true
}

// Aim возвращает новое направление ствола, сглаженное к желаемому:
// slerp(current, desired, clamp(dt*rate, 0, 1)). Малые dt дают ограниченную
// скорость поворота, большие насыщаются до мгновенного доворота.
func (a *AimController) Aim(current vec3.Vec3, barrel vec3.Vec3, target types.EntityID, projectileSpeed, dt float64) vec3.Vec3 {
	aimPoint, ok := a.InterceptPoint(target, barrel, projectileSpeed)
	if !ok {
		targetPos, has := a.entities.Position(target)
		if !has {
			return current
		}
		aimPoint = targetPos
	}

	desired := aimPoint.Sub(barrel).Normalize()
	if desired.IsZero() {
		return current
	}

	t := utils.Clamp(dt*config.AimSmoothingRate, 0, 1)
	return vec3.Slerp(current, desired, t)
}
