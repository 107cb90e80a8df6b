// internal/system/render_rl.go
package system

import (
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/entity"
	"go-turret-defense/internal/utils"
	"go-turret-defense/pkg/vec3"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RenderSystemRL - система 3D-рендеринга сцены через raylib
type RenderSystemRL struct {
	ecs    *entity.ECS
	camera *rl.Camera3D
}

func NewRenderSystemRL(ecs *entity.ECS) *RenderSystemRL {
	return &RenderSystemRL{ecs: ecs}
}

func (s *RenderSystemRL) SetCamera(camera *rl.Camera3D) {
	s.camera = camera
}

// Draw рисует все видимые сущности. Вспышка попадания осветляет цвет
// пропорционально оставшемуся времени таймера.
func (s *RenderSystemRL) Draw() {
	if s.camera == nil {
		return
	}

	for id, renderable := range s.ecs.Renderables {
		if !renderable.Visible {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		col := rl.Color{
			R: renderable.Color[0],
			G: renderable.Color[1],
			B: renderable.Color[2],
			A: renderable.Color[3],
		}
		if flash, ok := s.ecs.HitFlashes[id]; ok {
			t := utils.Clamp(flash.Timer/config.HitFlashDuration, 0, 1)
			col.R = uint8(utils.Lerp(float64(col.R), 255, t))
			col.G = uint8(utils.Lerp(float64(col.G), 255, t))
			col.B = uint8(utils.Lerp(float64(col.B), 255, t))
		}

		rl.DrawSphere(toRL(pos.Vec3), float32(renderable.Radius), col)
	}
}

func toRL(v vec3.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
