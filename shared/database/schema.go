package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"eventhub-seeder/shared/database/models"
)

var ErrMissingTable = errors.New("table does not exist in the database")

// MissingTableError names the first required table the database lacks
type MissingTableError struct {
	Table string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("table %s does not exist in the database", e.Table)
}

func (e *MissingTableError) Is(target error) bool {
	return target == ErrMissingTable
}

// Table describes a table the seeder expects. Model is nil for tables that
// are required but never written.
type Table struct {
	Name  string
	Model any
}

// RequiredTables lists, in check order, the tables the application schema must provide
var RequiredTables = []Table{
	{Name: models.User{}.TableName(), Model: &models.User{}},
	{Name: models.UserRole{}.TableName(), Model: &models.UserRole{}},
	{Name: models.Role{}.TableName(), Model: &models.Role{}},
	{Name: models.Event{}.TableName(), Model: &models.Event{}},
	{Name: models.AssistanceTableName},
	{Name: models.Category{}.TableName(), Model: &models.Category{}},
}

// ValidateSchema checks that every required table exists
func ValidateSchema(db *gorm.DB) error {
	log.Println("🔄 Checking database schema...")

	migrator := db.Migrator()
	for _, table := range RequiredTables {
		if !migrator.HasTable(table.Name) {
			return &MissingTableError{Table: table.Name}
		}
	}

	log.Printf("✅ Database schema has all %d required tables", len(RequiredTables))
	return nil
}
