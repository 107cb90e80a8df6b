// cmd/viewer_raylib/main.go
package main

import (
	"fmt"
	"math/rand"

	"go-turret-defense/internal/app"
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/system"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func toRL(v vec3.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Turret Viewer | Q/E - Rotate, T - Trajectory")
	rl.SetTargetFPS(60)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Position = rl.NewVector3(60, 50, 60)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Fovy = 55.0
	camera.Projection = rl.CameraPerspective

	// --- Сцена ---
	sim := app.NewSimulation()
	sim.SpawnGround(0)
	sim.SpawnObstacleSphere(vec3.Vec3{X: 15, Y: 2, Z: -10}, 4)

	mount := &component.WeaponMount{
		Base:   &component.Anchor{Position: vec3.Vec3{}},
		Barrel: &component.Anchor{Position: vec3.Vec3{Y: 3}},
	}
	weapon, err := sim.AttachWeapon(mount, "TURRET_RICOCHET", types.EntityID(0))
	if err != nil {
		panic(err)
	}

	renderSystem := system.NewRenderSystemRL(sim.ECS)
	renderSystem.SetCamera(&camera)

	showTrajectory := true
	nextSpawnAt := 0.0

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		// Вращение камеры вокруг сцены
		if rl.IsKeyDown(rl.KeyQ) {
			camera.Position = rl.Vector3RotateByAxisAngle(camera.Position, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			camera.Position = rl.Vector3RotateByAxisAngle(camera.Position, camera.Up, 0.02)
		}
		if rl.IsKeyPressed(rl.KeyT) {
			showTrajectory = !showTrajectory
		}

		dt := float64(rl.GetFrameTime())
		sim.Update(dt)

		if sim.ECS.GameTime >= nextSpawnAt {
			pos := vec3.Vec3{X: 40 - rand.Float64()*80, Y: 1.5, Z: 40 - rand.Float64()*80}
			vel := vec3.Vec3{}.Sub(pos).Normalize().Scale(5)
			vel.Y = 0
			sim.SpawnTarget(pos, vel, 60, 2)
			nextSpawnAt = sim.ECS.GameTime + 3
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		rl.DrawGrid(24, 5)
		renderSystem.Draw()

		// Корпус и ствол турели
		base := mount.Base.Position
		barrel := mount.Barrel.Position
		rl.DrawCylinder(toRL(base), 1.5, 1.8, 3, 12, rl.DarkGray)
		muzzle := barrel.Add(weapon.Orientation().Scale(3))
		rl.DrawLine3D(toRL(barrel), toRL(muzzle), rl.Yellow)

		if showTrajectory {
			pts := weapon.ProjectileTrajectory(60, 1.0/30.0)
			for i := 1; i < len(pts); i++ {
				rl.DrawLine3D(toRL(pts[i-1]), toRL(pts[i]), rl.NewColor(120, 220, 120, 160))
			}
		}

		rl.EndMode3D()

		hud := fmt.Sprintf("state: %s | projectiles: %d", weapon.State(), weapon.LiveProjectiles())
		rl.DrawText(hud, 10, 10, 20, rl.RayWhite)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
