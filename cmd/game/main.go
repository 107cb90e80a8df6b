// cmd/game/main.go
package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-turret-defense/internal/app"
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/types"
	"go-turret-defense/pkg/vec3"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// worldScale — пикселей на мировую единицу в виде сверху
const worldScale = 8.0

// AppGame — демо-сцена: четыре турели отстреливаются от набегающих целей.
// Вид сверху, ось X вправо, ось Z вниз экрана.
type AppGame struct {
	sim            *app.Simulation
	lastUpdateTime time.Time
	nextSpawnAt    float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.sim.Update(deltaTime)

	if a.sim.ECS.GameTime >= a.nextSpawnAt {
		a.spawnRunner()
		a.nextSpawnAt = a.sim.ECS.GameTime + 1.5 + rand.Float64()*2
	}
	return nil
}

// spawnRunner выпускает цель с края сцены в сторону центра.
func (a *AppGame) spawnRunner() {
	angle := rand.Float64() * 2 * math.Pi
	dir := vec3.Vec3{X: -math.Cos(angle), Z: -math.Sin(angle)}
	pos := dir.Scale(-45)
	pos.Y = 1
	speed := 4 + rand.Float64()*6
	a.sim.SpawnTarget(pos, dir.Scale(speed), 40, 1.5)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2

	for id, renderable := range a.sim.ECS.Renderables {
		if !renderable.Visible {
			continue
		}
		pos, ok := a.sim.ECS.Positions[id]
		if !ok {
			continue
		}
		col := color.RGBA{renderable.Color[0], renderable.Color[1], renderable.Color[2], renderable.Color[3]}
		if _, hit := a.sim.ECS.HitFlashes[id]; hit {
			col = color.RGBA{255, 255, 255, 255}
		}
		x := cx + float32(pos.X*worldScale)
		y := cy + float32(pos.Z*worldScale)
		vector.DrawFilledCircle(screen, x, y, float32(renderable.Radius*worldScale), col, true)
	}

	for _, w := range a.sim.Weapons() {
		hud := fmt.Sprintf("weapon %d: %s, projectiles %d", w.ID(), w.State(), w.LiveProjectiles())
		text.Draw(screen, hud, basicfont.Face7x13, 10, 20+14*int(w.ID()%8), color.White)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if path := os.Getenv("WEAPON_DEFS"); path != "" {
		if err := defs.LoadWeaponDefinitions(path); err != nil {
			log.Fatalf("weapon definitions: %v", err)
		}
	}

	sim := app.NewSimulation()
	sim.SpawnGround(0)

	variants := []string{"TURRET_MK1", "TURRET_RAPID", "TURRET_HEAVY", "TURRET_RICOCHET"}
	offsets := []vec3.Vec3{{X: 12, Z: 12}, {X: -12, Z: 12}, {X: 12, Z: -12}, {X: -12, Z: -12}}
	for i, defID := range variants {
		mount := &component.WeaponMount{
			Base:   &component.Anchor{Position: offsets[i]},
			Barrel: &component.Anchor{Position: offsets[i].Add(vec3.Vec3{Y: 2})},
		}
		w, err := sim.AttachWeapon(mount, defID, types.EntityID(0))
		if err != nil {
			log.Fatalf("attach %s: %v", defID, err)
		}
		markTurret(sim, w.ID(), offsets[i], defID)
	}

	game := &AppGame{
		sim:            sim,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Turret Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// markTurret даёт турели видимое тело на сцене.
func markTurret(sim *app.Simulation, id types.EntityID, pos vec3.Vec3, defID string) {
	def := defs.WeaponLibrary[defID]
	sim.ECS.Positions[id] = &component.Position{Vec3: pos}
	sim.ECS.Renderables[id] = &component.Renderable{
		Color:   def.Visuals.Color,
		Radius:  1.2,
		Visible: true,
	}
}
