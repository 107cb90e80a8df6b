// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// WeaponLibrary is a map to hold all weapon definitions, keyed by their ID.
// It starts with the built-in archetypes and may be replaced by
// LoadWeaponDefinitions.
var WeaponLibrary = builtinLibrary()

// LoadWeaponDefinitions reads the weapon configuration file and populates the
// WeaponLibrary.
func LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	WeaponLibrary = make(map[string]WeaponDefinition)
	for _, def := range weaponDefs {
		WeaponLibrary[def.ID] = def
	}

	return nil
}

func intPtr(v int) *int { return &v }

// builtinLibrary returns the four stock turret variants. They share one
// engine; only tuning and cosmetic constants differ.
func builtinLibrary() map[string]WeaponDefinition {
	defs := []WeaponDefinition{
		{
			ID:      "TURRET_MK1",
			Visuals: WeaponVisuals{Color: [4]uint8{230, 200, 80, 255}, ProjectileRadius: 0.5, BarrelLength: 2.0},
		},
		{
			ID:       "TURRET_RAPID",
			FireRate: 0.5,
			Damage:   8,
			Visuals:  WeaponVisuals{Color: [4]uint8{220, 80, 80, 255}, ProjectileRadius: 0.3, BarrelLength: 1.5},
		},
		{
			ID:              "TURRET_HEAVY",
			FireRate:        4,
			Damage:          60,
			ProjectileSpeed: 80,
			Visuals:         WeaponVisuals{Color: [4]uint8{140, 140, 170, 255}, ProjectileRadius: 0.8, BarrelLength: 3.0},
		},
		{
			ID:         "TURRET_RICOCHET",
			MaxBounces: intPtr(5),
			Visuals:    WeaponVisuals{Color: [4]uint8{80, 200, 220, 255}, ProjectileRadius: 0.4, BarrelLength: 2.0},
		},
	}

	lib := make(map[string]WeaponDefinition, len(defs))
	for _, def := range defs {
		lib[def.ID] = def
	}
	return lib
}
