package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventhub-seeder/shared/database/models"
	"eventhub-seeder/shared/utils/fake"
)

var testNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

// newTestDB returns an in-memory database holding the application schema,
// minus the tables listed in skip.
func newTestDB(t *testing.T, skip ...string) *gorm.DB {
	t.Helper()

	db, err := open(sqlite.Open(":memory:"), logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	skipped := map[string]bool{}
	for _, name := range skip {
		skipped[name] = true
	}

	for _, table := range RequiredTables {
		if skipped[table.Name] {
			continue
		}
		if table.Model == nil {
			require.NoError(t, db.Exec(`CREATE TABLE "`+table.Name+`" ("Id" text PRIMARY KEY)`).Error)
			continue
		}
		require.NoError(t, db.AutoMigrate(table.Model))
	}

	return db
}

func newTestGenerator(seed int64) *fake.Generator {
	return fake.New(seed,
		fake.WithClock(func() time.Time { return testNow }),
		fake.WithPasswordHasher(func(password string) (string, error) { return "hashed:" + password, nil }),
	)
}

func createRoles(t *testing.T, db *gorm.DB, names ...string) []models.Role {
	t.Helper()

	roles := make([]models.Role, 0, len(names))
	for i, name := range names {
		roles = append(roles, models.Role{
			ID:             "role-" + string(rune('a'+i)),
			Name:           name,
			NormalizedName: name,
		})
	}
	require.NoError(t, db.Create(&roles).Error)
	return roles
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
