// internal/system/pool_test.go
package system

import (
	"testing"

	"go-turret-defense/internal/types"
)

func TestPoolReusesReleasedHandles(t *testing.T) {
	visuals := newFakeVisuals()
	pool := NewProjectilePool(visuals, 8, 0.5, [4]uint8{255, 0, 0, 255})

	h1 := pool.Acquire()
	pool.Release(h1)
	h2 := pool.Acquire()

	if h1 != h2 {
		t.Errorf("released handle must be reused: got %d, want %d", h2, h1)
	}
	if visuals.created != 1 {
		t.Errorf("created %d visuals, want 1", visuals.created)
	}
	if !visuals.visible[h2] {
		t.Error("reacquired handle must be visible")
	}
}

func TestPoolOutstandingMatchesBalance(t *testing.T) {
	visuals := newFakeVisuals()
	pool := NewProjectilePool(visuals, 64, 0.5, [4]uint8{})

	handles := make([]types.EntityID, 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, pool.Acquire())
	}
	for _, h := range handles[:4] {
		pool.Release(h)
	}

	// 10 acquired, 4 released: 6 outstanding, 4 idle, nothing destroyed.
	if pool.Idle() != 4 {
		t.Errorf("idle = %d, want 4", pool.Idle())
	}
	if visuals.created != 10 || visuals.destroyed != 0 {
		t.Errorf("created/destroyed = %d/%d, want 10/0", visuals.created, visuals.destroyed)
	}
	visible := 0
	for _, on := range visuals.visible {
		if on {
			visible++
		}
	}
	if visible != 6 {
		t.Errorf("visible handles = %d, want 6 outstanding", visible)
	}
}

func TestPoolHighWaterMark(t *testing.T) {
	visuals := newFakeVisuals()
	pool := NewProjectilePool(visuals, 2, 0.5, [4]uint8{})

	handles := make([]types.EntityID, 0, 5)
	for i := 0; i < 5; i++ {
		handles = append(handles, pool.Acquire())
	}
	for _, h := range handles {
		pool.Release(h)
	}

	if pool.Idle() != 2 {
		t.Errorf("idle = %d, want maxIdle cap of 2", pool.Idle())
	}
	if visuals.destroyed != 3 {
		t.Errorf("destroyed = %d, want 3 over-cap handles destroyed", visuals.destroyed)
	}
}

func TestPoolAcquireNeverFails(t *testing.T) {
	visuals := newFakeVisuals()
	pool := NewProjectilePool(visuals, 0, 0.5, [4]uint8{})

	// maxIdle of zero: every release destroys, every acquire creates.
	h := pool.Acquire()
	pool.Release(h)
	if pool.Idle() != 0 {
		t.Errorf("idle = %d, want 0", pool.Idle())
	}
	if h2 := pool.Acquire(); h2 == 0 {
		t.Error("acquire must always return a handle")
	}
}
