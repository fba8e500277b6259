package schema

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// LogAction identifies what kind of mutation a log entry records
type LogAction string

const (
	// LogActionCreate records a new row
	LogActionCreate LogAction = "create"
	// LogActionAssociate records a new association row
	LogActionAssociate LogAction = "associate"
	// LogActionUpdate records a changed column
	LogActionUpdate LogAction = "update"
)

// MaxLogLength is the length of the log column
const MaxLogLength = 256

// Log represents the logs table - append-only audit trail of every import mutation
type Log struct {
	// ID is an auto-incrementing sequence number that orders the audit trail
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Timestamp is when the mutation was applied
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
	// Message is the human readable description, e.g. "Create World([Realm] Cornelia)"
	Message string `gorm:"column:log;not null;size:256"`
	// Entity is the kind of the subject of the mutation
	Entity string `gorm:"column:entity;not null;size:32"`
	// Meta contains structured details about the mutation (action, column, old, new)
	Meta datatypes.JSON `gorm:"column:meta"`
}

// TableName specifies the table name for the Log model
func (Log) TableName() string {
	return "logs"
}

func (Log) EntityName() string { return "Log" }

func (l Log) String() string {
	return fmt.Sprintf("%s %s", l.Timestamp.Format(time.RFC3339), l.Message)
}

func (l Log) SearchID() any { return nil }
