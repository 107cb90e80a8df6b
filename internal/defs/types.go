// internal/defs/types.go
package defs

// WeaponDefinition describes one weapon archetype. Zero-valued numeric fields
// mean "unset" and receive engine defaults at construction time; a nil
// MaxBounces likewise falls back to the default.
type WeaponDefinition struct {
	ID                 string        `json:"id"`
	DetectionRange     float64       `json:"detection_range"`
	FireRate           float64       `json:"fire_rate"`
	Damage             float64       `json:"damage"`
	ProjectileSpeed    float64       `json:"projectile_speed"`
	ProjectileLifetime float64       `json:"projectile_lifetime"`
	MaxBounces         *int          `json:"max_bounces,omitempty"`
	Visuals            WeaponVisuals `json:"visuals"`
}

// WeaponVisuals holds the cosmetic constants that distinguish weapon skins.
type WeaponVisuals struct {
	Color            [4]uint8 `json:"color"`
	ProjectileRadius float64  `json:"projectile_radius"`
	BarrelLength     float64  `json:"barrel_length"`
}

// WeaponPatch is a partial configuration used for upgrades. Nil fields are
// left untouched by the merge.
type WeaponPatch struct {
	DetectionRange     *float64
	FireRate           *float64
	Damage             *float64
	ProjectileSpeed    *float64
	ProjectileLifetime *float64
	MaxBounces         *int
}
