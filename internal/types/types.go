// internal/types/types.go
package types

// EntityID — идентификатор сущности мира. Ноль означает "нет сущности".
type EntityID uint64
