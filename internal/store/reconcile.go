package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormSchema "gorm.io/gorm/schema"

	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
	"github.com/rEtSaMfF/ffrk-bottle/internal/store/schema"
)

// Key is the natural key of a row: column name to value
type Key map[string]any

// IgnoreFunc reports whether a difference on column is explained by a known cause
// and must not be applied.
type IgnoreFunc func(column string, old, new any) bool

type createOptions struct {
	untracked bool
	suffix    string
	parent    schema.Entity
	child     schema.Entity
}

// CreateOption customizes the audit entry written by GetOrCreate
type CreateOption func(*createOptions)

// Untracked creates the row without an audit entry
func Untracked() CreateOption {
	return func(o *createOptions) {
		o.untracked = true
	}
}

// WithSuffix appends text to the audit message, e.g. " from Dungeon(...)"
func WithSuffix(suffix string) CreateOption {
	return func(o *createOptions) {
		o.suffix = suffix
	}
}

// AsAssociation records the creation as "Add Child(...) to Parent(...)"
func AsAssociation(child, parent schema.Entity) CreateOption {
	return func(o *createOptions) {
		o.child = child
		o.parent = parent
	}
}

// Describe renders an entity the way audit entries reference it, e.g. "World([Realm] Cornelia)"
func Describe(e schema.Entity) string {
	return fmt.Sprintf("%s(%s)", e.EntityName(), e.String())
}

// Find returns the first row matching key, or nil when there is none
func Find[E any](ctx context.Context, tx *Tx, key Key) (*E, error) {
	var existing E
	err := tx.db.WithContext(ctx).Where(map[string]interface{}(key)).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query %T: %w", existing, err)
	}
	return &existing, nil
}

// FindAll returns every row matching key in primary key order
func FindAll[E any](ctx context.Context, tx *Tx, key Key) ([]E, error) {
	var rows []E
	err := tx.db.WithContext(ctx).Where(map[string]interface{}(key)).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query %T: %w", rows, err)
	}
	return rows, nil
}

// GetOrCreate returns the row matching key, creating it from build when absent.
// The boolean result is true when a row was created.
func GetOrCreate[E any, T interface {
	*E
	schema.Entity
}](ctx context.Context, tx *Tx, key Key, build func() T, opts ...CreateOption) (T, bool, error) {
	existing, err := Find[E](ctx, tx, key)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return T(existing), false, nil
	}

	options := &createOptions{}
	for _, opt := range opts {
		opt(options)
	}

	row := build()
	if err := tx.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", row.EntityName(), err)
	}

	if options.untracked {
		logger.DebugCtx(ctx, "Create untracked row",
			zap.String("entity", row.EntityName()),
			zap.String("repr", row.String()),
		)
		return row, true, nil
	}

	if options.parent != nil {
		message := fmt.Sprintf("Add %s to %s%s", Describe(options.child), Describe(options.parent), options.suffix)
		meta := map[string]any{
			"child":  options.child.EntityName(),
			"parent": options.parent.EntityName(),
		}
		if err := tx.Record(ctx, row, schema.LogActionAssociate, message, meta); err != nil {
			return nil, false, err
		}
		return row, true, nil
	}

	message := fmt.Sprintf("Create %s%s", Describe(row), options.suffix)
	if err := tx.Record(ctx, row, schema.LogActionCreate, message, nil); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// DiffUpdate compares the given columns of existing and incoming, applies every
// difference not suppressed by ignore and writes one audit entry per applied column.
// existing is updated in place. The names of the applied columns are returned.
func DiffUpdate[E any, T interface {
	*E
	schema.Entity
}](ctx context.Context, tx *Tx, existing, incoming T, columns []string, ignore IgnoreFunc) ([]string, error) {
	return diffUpdate[E, T](ctx, tx, existing, incoming, columns, ignore, true)
}

func diffUpdate[E any, T interface {
	*E
	schema.Entity
}](ctx context.Context, tx *Tx, existing, incoming T, columns []string, ignore IgnoreFunc, reportIgnored bool) ([]string, error) {
	stmt := &gorm.Statement{DB: tx.db}
	if err := stmt.Parse(existing); err != nil {
		return nil, fmt.Errorf("failed to parse %s schema: %w", existing.EntityName(), err)
	}

	existingValue := reflect.ValueOf(existing)
	incomingValue := reflect.ValueOf(incoming)

	// Describe before mutation so messages reference the stored row
	subject := Describe(existing)

	type change struct {
		field *gormSchema.Field
		old   any
		new   any
	}
	var changes []change
	for _, column := range columns {
		field := stmt.Schema.LookUpField(column)
		if field == nil {
			return nil, fmt.Errorf("unknown column %s on %s", column, existing.EntityName())
		}

		oldValue, _ := field.ValueOf(ctx, existingValue)
		newValue, _ := field.ValueOf(ctx, incomingValue)
		if reflect.DeepEqual(oldValue, newValue) {
			continue
		}

		if ignore != nil && ignore(column, deref(oldValue), deref(newValue)) {
			if reportIgnored {
				logger.InfoCtx(ctx, "Ignore update",
					zap.String("subject", subject),
					zap.String("column", column),
					zap.Any("old", deref(oldValue)),
					zap.Any("new", deref(newValue)),
				)
			}
			continue
		}
		changes = append(changes, change{field: field, old: oldValue, new: newValue})
	}

	if len(changes) == 0 {
		return nil, nil
	}

	updates := make(map[string]interface{}, len(changes))
	applied := make([]string, 0, len(changes))
	for _, c := range changes {
		updates[c.field.DBName] = c.new
		applied = append(applied, c.field.DBName)
	}
	if err := tx.db.WithContext(ctx).Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", existing.EntityName(), err)
	}

	for _, c := range changes {
		if err := c.field.Set(ctx, existingValue, c.new); err != nil {
			return nil, fmt.Errorf("failed to set %s.%s: %w", existing.EntityName(), c.field.DBName, err)
		}
		message := fmt.Sprintf("Update %s.%s from %v to %v", subject, c.field.DBName, deref(c.old), deref(c.new))
		meta := map[string]any{
			"column": c.field.DBName,
			"old":    deref(c.old),
			"new":    deref(c.new),
		}
		if err := tx.Record(ctx, existing, schema.LogActionUpdate, message, meta); err != nil {
			return nil, err
		}
	}

	return applied, nil
}

// Backfill is a DiffUpdate that only fills columns still holding their zero value
func Backfill[E any, T interface {
	*E
	schema.Entity
}](ctx context.Context, tx *Tx, existing, incoming T, columns []string) ([]string, error) {
	return diffUpdate[E, T](ctx, tx, existing, incoming, columns, func(_ string, old, _ any) bool {
		return !isZero(old)
	}, false)
}

// deref unwraps pointer values so audit messages show the value, not the address
func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
