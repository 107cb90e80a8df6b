// internal/config/config.go
package config

const (
	// Значения по умолчанию для незаданных полей конфигурации орудия
	DefaultDetectionRange     = 50.0
	DefaultFireRate           = 2.0 // минимальный интервал между выстрелами, сек
	DefaultDamage             = 20.0
	DefaultProjectileSpeed    = 100.0
	DefaultProjectileLifetime = 5.0 // сек
	DefaultMaxBounces         = 2

	// Физика полёта
	Gravity     = 9.81 // модуль ускорения свободного падения, направление — мировой "низ"
	Restitution = 0.8  // затухание скорости при рикошете
	BounceNudge = 0.5  // отступ от поверхности после рикошета, против повторного столкновения

	// Наведение
	AimSmoothingRate = 5.0 // коэффициент сглаживания поворота ствола

	// Эффекты попадания
	ImpactImpulse         = 5.0 // модуль импульса, толкающего поражённую цель
	ImpactImpulseDuration = 0.5 // сек
	HitFlashDuration      = 1.0 // сек

	// Пул визуальных объектов снарядов
	PoolMaxIdle = 64 // лишние хэндлы сверх лимита уничтожаются, а не копятся

	MaxDeltaTime = 0.06

	// Окно демо-сцены
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Отладочный предпросмотр траектории
	TrajectorySteps  = 60
	TrajectoryStepDt = 1.0 / 30.0

	ProjectileRadius = 0.5 // радиус визуала снаряда по умолчанию
)
