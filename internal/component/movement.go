// component/movement.go
package component

import "go-turret-defense/pkg/vec3"

// Position — компонент позиции в мировом пространстве
type Position struct {
	vec3.Vec3
}

// Velocity — компонент скорости
type Velocity struct {
	vec3.Vec3
}

// Impulse — временный толчок от попадания снаряда. Складывается со
// штатной скоростью, пока не истечёт Remaining.
type Impulse struct {
	Velocity  vec3.Vec3
	Remaining float64
}
