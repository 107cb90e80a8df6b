// internal/event/types.go
package event

const (
	ProjectileFired   EventType = "ProjectileFired"   // орудие выстрелило
	ProjectileExpired EventType = "ProjectileExpired" // снаряд истёк по времени жизни
	TargetDestroyed   EventType = "TargetDestroyed"   // цель уничтожена, Data = types.EntityID
	WeaponShutdown    EventType = "WeaponShutdown"    // орудие выведено из строя
)
