package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	gormSchema "gorm.io/gorm/schema"

	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

var schemaCache sync.Map

// Project flattens a model into its column map plus a computed search_id
func Project(ctx context.Context, entity any) (map[string]any, error) {
	s, err := gormSchema.Parse(entity, &schemaCache, gormSchema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema of %T: %w", entity, err)
	}

	value := reflect.ValueOf(entity)
	out := make(map[string]any, len(s.Fields)+1)
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		v, _ := field.ValueOf(ctx, value)
		out[field.DBName] = deref(v)
	}

	if searchable, ok := entity.(schema.Searchable); ok {
		out["search_id"] = searchable.SearchID()
	} else if len(s.PrimaryFields) == 1 {
		out["search_id"] = out[s.PrimaryFields[0].DBName]
	}

	return out, nil
}

// ProjectAll projects every item, stopping at the first failure
func ProjectAll(ctx context.Context, items []any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		projected, err := Project(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, projected)
	}
	return out, nil
}
