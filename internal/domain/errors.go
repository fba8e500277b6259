package domain

import "errors"

var (
	// ErrBattleNotFound is returned when a payload references a battle that was never imported
	ErrBattleNotFound = errors.New("battle not found")

	// ErrMaterialNotFound is returned when an ability recipe references an unknown material
	ErrMaterialNotFound = errors.New("material not found")

	// ErrInvalidCategory is returned when a listing is requested for an unknown category
	ErrInvalidCategory = errors.New("invalid category")
)
