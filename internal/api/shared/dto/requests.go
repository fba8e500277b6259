package dto

import (
	"errors"

	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// LookupQuery holds the flags of GET /json/:id
type LookupQuery struct {
	All   bool `form:"all"`
	Enemy bool `form:"enemy"`
}

// CategoryQuery holds the parameters of GET /json
type CategoryQuery struct {
	Category domain.Category `form:"category"`
	Rarity   int             `form:"rarity"`
	Filter   int64           `form:"filter"`
}

// Validate checks the listing parameters
func (q *CategoryQuery) Validate() error {
	if q.Category == "" {
		return errors.New("category is required")
	}
	if q.Rarity < 0 {
		return errors.New("rarity must not be negative")
	}
	return nil
}
