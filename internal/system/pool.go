// internal/system/pool.go
package system

import (
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/types"
)

// ProjectilePool — free-list визуальных хэндлов снарядов одного стиля.
// Экземпляр принадлежит симуляции и передаётся орудиям явно; глобального
// состояния нет. Пул рассчитан на однопоточный покадровый доступ — при
// многопоточном планировщике потребуется внешняя синхронизация.
type ProjectilePool struct {
	visuals interfaces.VisualFactory
	free    []types.EntityID
	maxIdle int
	radius  float64
	color   [4]uint8
}

// NewProjectilePool создаёт пул. maxIdle ограничивает число простаивающих
// хэндлов: возвращённые сверх лимита уничтожаются, чтобы пул не рос
// неограниченно. Число выданных хэндлов не ограничено.
func NewProjectilePool(visuals interfaces.VisualFactory, maxIdle int, radius float64, color [4]uint8) *ProjectilePool {
	return &ProjectilePool{
		visuals: visuals,
		maxIdle: maxIdle,
		radius:  radius,
		color:   color,
	}
}

// Acquire выдаёт хэндл из пула либо создаёт новый. Никогда не блокирует и
// не завершается ошибкой.
func (p *ProjectilePool) Acquire() types.EntityID {
	if n := len(p.free); n > 0 {
		handle := p.free[n-1]
		p.free = p.free[:n-1]
		p.visuals.SetVisualVisible(handle, true)
		return handle
	}
	return p.visuals.CreateProjectileVisual(p.radius, p.color)
}

// Release прячет визуал и возвращает хэндл в пул; сверх лимита — уничтожает.
func (p *ProjectilePool) Release(handle types.EntityID) {
	p.visuals.SetVisualVisible(handle, false)
	if len(p.free) >= p.maxIdle {
		p.visuals.DestroyVisual(handle)
		return
	}
	p.free = append(p.free, handle)
}

// Idle возвращает число простаивающих хэндлов.
func (p *ProjectilePool) Idle() int {
	return len(p.free)
}
