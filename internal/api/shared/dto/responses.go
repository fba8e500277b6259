package dto

import (
	"github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/errors"
	"github.com/rEtSaMfF/ffrk-bottle/internal/domain"
)

// PostResponse is the reply to POST /post
type PostResponse struct {
	Success bool             `json:"success"`
	Error   errors.ErrorCode `json:"error,omitempty"`
}

// LookupResponse is a tagged lookup result with projected rows
type LookupResponse struct {
	Kind  domain.EntityKind `json:"kind"`
	ID    int64             `json:"id,omitempty"`
	Items []map[string]any  `json:"items"`
}

// ListResponse is a list of projected rows
type ListResponse struct {
	Items []map[string]any `json:"items"`
	Count int              `json:"count"`
}

// NewListResponse wraps projected rows
func NewListResponse(items []map[string]any) *ListResponse {
	return &ListResponse{Items: items, Count: len(items)}
}
