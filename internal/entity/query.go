// internal/entity/query.go
package entity

import (
	"math"
	"slices"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"
)

// NearestObstruction реализует interfaces.WorldQuery: ищет ближайшее
// пересечение отрезка from..from+motion с коллайдерами мира.
func (e *ECS) NearestObstruction(from, motion vec3.Vec3, exclude []types.EntityID) (interfaces.Obstruction, bool, error) {
	var best interfaces.Obstruction
	bestT := math.MaxFloat64
	found := false

	for id, col := range e.Colliders {
		if slices.Contains(exclude, id) {
			continue
		}

		var t float64
		var normal vec3.Vec3
		var hit bool
		switch col.Shape {
		case component.ColliderSphere:
			center, ok := e.Position(id)
			if !ok {
				continue
			}
			t, normal, hit = segmentSphere(from, motion, center, col.Radius)
		case component.ColliderPlane:
			t, normal, hit = segmentPlane(from, motion, col.Normal, col.Offset)
		}

		if hit && t < bestT {
			bestT = t
			best = interfaces.Obstruction{
				Point:  from.Add(motion.Scale(t)),
				Normal: normal,
				Entity: id,
			}
			found = true
		}
	}

	return best, found, nil
}

// EntitiesWithinRadius возвращает сущности в сфере в порядке возрастания ID,
// что даёт детерминированное "первое найденное" при равных дистанциях.
func (e *ECS) EntitiesWithinRadius(center vec3.Vec3, radius float64, exclude []types.EntityID) []types.EntityID {
	var result []types.EntityID
	radiusSq := radius * radius
	for id, pos := range e.Positions {
		if slices.Contains(exclude, id) {
			continue
		}
		if pos.Sub(center).LengthSq() <= radiusSq {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// segmentSphere пересекает отрезок from..from+motion со сферой.
// Возвращает параметр t в [0,1] и внешнюю нормаль в точке входа.
func segmentSphere(from, motion, center vec3.Vec3, radius float64) (float64, vec3.Vec3, bool) {
	oc := from.Sub(center)
	a := motion.LengthSq()
	if a == 0 {
		return 0, vec3.Vec3{}, false
	}
	b := 2 * oc.Dot(motion)
	c := oc.LengthSq() - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, vec3.Vec3{}, false
	}

	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 || t > 1 {
		// Старт внутри сферы или сфера за пределами отрезка — не считаем
		// столкновением, отступ после рикошета исключает залипание.
		return 0, vec3.Vec3{}, false
	}

	point := from.Add(motion.Scale(t))
	normal := point.Sub(center).Normalize()
	return t, normal, true
}

// segmentPlane пересекает отрезок с плоскостью dot(n, p) = offset.
// Засчитывается только движение навстречу нормали.
func segmentPlane(from, motion, normal vec3.Vec3, offset float64) (float64, vec3.Vec3, bool) {
	denom := motion.Dot(normal)
	if denom >= 0 {
		// Параллельно плоскости или движение от неё
		return 0, vec3.Vec3{}, false
	}
	t := (offset - from.Dot(normal)) / denom
	if t < 0 || t > 1 {
		return 0, vec3.Vec3{}, false
	}
	return t, normal, true
}
