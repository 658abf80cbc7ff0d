// Package models contains data structures for the application's domain models.
package models

// LifecycleStatus represents the lifecycle state of a soft-deletable entity.
// Deactivation is terminal: no exposed operation reactivates an entity.
type LifecycleStatus string

const (
	// StatusActive indicates a live, mutable entity.
	StatusActive LifecycleStatus = "active"
	// StatusDeactivated indicates a soft-deleted entity. The row persists
	// but the entity is logically absent for non-owner operations.
	StatusDeactivated LifecycleStatus = "deactivated"
)
