// internal/component/visual.go
package component

// Renderable — визуальное представление сущности
type Renderable struct {
	Color   [4]uint8
	Radius  float64
	Visible bool
}

// HitFlash — временная подсветка поражённой цели
type HitFlash struct {
	Timer float64 // оставшееся время жизни эффекта, сек
}
