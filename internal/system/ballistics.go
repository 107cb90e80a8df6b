// internal/system/ballistics.go
package system

import "go-turret-defense/pkg/vec3"

// IntegrateStep продвигает снаряд на один шаг полуявным методом Эйлера при
// постоянной гравитации. Детерминирован для одинаковых входов.
func IntegrateStep(pos, vel vec3.Vec3, dt float64, gravity vec3.Vec3) (vec3.Vec3, vec3.Vec3) {
	newPos := pos.Add(vel.Scale(dt)).Add(gravity.Scale(0.5 * dt * dt))
	newVel := vel.Add(gravity.Scale(dt))
	return newPos, newVel
}

// Trajectory прогоняет интегратор вперёд на steps шагов без проверки
// столкновений. Используется только отладочным предпросмотром траектории.
func Trajectory(pos, vel vec3.Vec3, gravity vec3.Vec3, steps int, dt float64) []vec3.Vec3 {
	if steps <= 0 || dt <= 0 {
		return nil
	}
	points := make([]vec3.Vec3, 0, steps+1)
	points = append(points, pos)
	for i := 0; i < steps; i++ {
		pos, vel = IntegrateStep(pos, vel, dt, gravity)
		points = append(points, pos)
	}
	return points
}
