package model

import (
	"time"
)

// SchemaVersion records an applied database schema version
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the schema version model
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
