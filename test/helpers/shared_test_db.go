package helpers

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/database"
)

// SharedTestDB is the database shared by the BDD scenarios
var SharedTestDB *gorm.DB

// InitializeSharedTestDB creates and migrates the shared test database.
// Called once in TestMain before running any scenario.
func InitializeSharedTestDB() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open shared test database: %w", err)
	}
	SharedTestDB = db
	return nil
}

// TruncateAllTables clears saved plans between scenarios
func TruncateAllTables() error {
	if SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}

	// Legs first, they reference plans
	for _, table := range []string{"plan_legs", "plans"} {
		if err := SharedTestDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	return nil
}

// CloseSharedTestDB closes the shared test database
func CloseSharedTestDB() {
	if SharedTestDB != nil {
		_ = database.Close(SharedTestDB)
		SharedTestDB = nil
	}
}
