package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub-seeder/shared/database/models"
	"eventhub-seeder/shared/utils/fake"
)

const (
	UserCount     = 200
	CategoryCount = 10
	EventCount    = 100

	OrganizerRoleName = "Organizer"

	batchSize = 50
)

var (
	ErrOrganizerRoleMissing = errors.New("organizer role does not exist in the database")
	ErrNoOrganizers         = errors.New("no users with the organizer role found in the database")
	ErrNoCategories         = errors.New("no categories found in the database")
)

// Result counts the rows inserted by a seeding run
type Result struct {
	Users      int
	UserRoles  int
	Categories int
	Events     int
}

type Seeder struct {
	db  *gorm.DB
	gen *fake.Generator
}

func NewSeeder(db *gorm.DB, gen *fake.Generator) *Seeder {
	return &Seeder{db: db, gen: gen}
}

// Run validates the schema and then seeds users, role assignments,
// categories and events, in that order. Each step commits on its own, so
// a failing step leaves the earlier ones in place.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var (
		result Result
		err    error
	)

	if err = ValidateSchema(s.db.WithContext(ctx)); err != nil {
		return result, err
	}

	if result.Users, err = s.SeedUsers(ctx); err != nil {
		return result, err
	}
	if result.UserRoles, err = s.SeedUserRoles(ctx); err != nil {
		return result, err
	}
	if result.Categories, err = s.SeedCategories(ctx); err != nil {
		return result, err
	}
	if result.Events, err = s.SeedEvents(ctx); err != nil {
		return result, err
	}

	log.Printf("✅ Database seeding completed (%d users, %d user roles, %d categories, %d events created)",
		result.Users, result.UserRoles, result.Categories, result.Events)
	return result, nil
}

// unitOfWork runs step in a transaction committed when step succeeds
func (s *Seeder) unitOfWork(ctx context.Context, name string, step func(tx *gorm.DB) (int, error)) (int, error) {
	var created int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = step(tx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", name, err)
	}
	return created, nil
}

func (s *Seeder) SeedUsers(ctx context.Context) (int, error) {
	return s.unitOfWork(ctx, "users", func(tx *gorm.DB) (int, error) {
		users := make([]models.User, 0, UserCount)
		for i := 0; i < UserCount; i++ {
			user, err := s.gen.User()
			if err != nil {
				return 0, err
			}
			users = append(users, user)
		}

		if err := tx.CreateInBatches(&users, batchSize).Error; err != nil {
			return 0, err
		}

		log.Printf("👤 Created %d users", len(users))
		return len(users), nil
	})
}

// SeedUserRoles gives every user one random role. Without roles it
// does nothing.
func (s *Seeder) SeedUserRoles(ctx context.Context) (int, error) {
	return s.unitOfWork(ctx, "user roles", func(tx *gorm.DB) (int, error) {
		var roleIDs []string
		if err := tx.Model(&models.Role{}).Pluck("Id", &roleIDs).Error; err != nil {
			return 0, fmt.Errorf("failed to fetch roles: %w", err)
		}

		if len(roleIDs) == 0 {
			log.Println("⚠️  No roles found in the database to assign to users")
			return 0, nil
		}

		var userIDs []string
		if err := tx.Model(&models.User{}).Pluck("Id", &userIDs).Error; err != nil {
			return 0, fmt.Errorf("failed to fetch users: %w", err)
		}

		if len(userIDs) == 0 {
			return 0, nil
		}

		userRoles := make([]models.UserRole, 0, len(userIDs))
		for _, userID := range userIDs {
			userRoles = append(userRoles, s.gen.UserRole(userID, roleIDs))
		}

		if err := tx.CreateInBatches(&userRoles, batchSize).Error; err != nil {
			return 0, err
		}

		log.Printf("🔗 Assigned roles to %d users", len(userRoles))
		return len(userRoles), nil
	})
}

func (s *Seeder) SeedCategories(ctx context.Context) (int, error) {
	return s.unitOfWork(ctx, "categories", func(tx *gorm.DB) (int, error) {
		categories := make([]models.Category, 0, CategoryCount)
		for i := 0; i < CategoryCount; i++ {
			categories = append(categories, s.gen.Category())
		}

		if err := tx.Create(&categories).Error; err != nil {
			return 0, err
		}

		log.Printf("🏷️  Created %d categories", len(categories))
		return len(categories), nil
	})
}

// SeedEvents creates events owned by users holding the organizer role.
// Preconditions are checked before anything is inserted.
func (s *Seeder) SeedEvents(ctx context.Context) (int, error) {
	return s.unitOfWork(ctx, "events", func(tx *gorm.DB) (int, error) {
		organizerIDs, err := findOrganizers(tx)
		if err != nil {
			return 0, err
		}

		var categoryIDs []uuid.UUID
		if err := tx.Model(&models.Category{}).Pluck("Id", &categoryIDs).Error; err != nil {
			return 0, fmt.Errorf("failed to fetch categories: %w", err)
		}
		if len(categoryIDs) == 0 {
			return 0, ErrNoCategories
		}

		events := make([]models.Event, 0, EventCount)
		for i := 0; i < EventCount; i++ {
			events = append(events, s.gen.Event(organizerIDs, categoryIDs))
		}

		if err := tx.CreateInBatches(&events, batchSize).Error; err != nil {
			return 0, err
		}

		log.Printf("📅 Created %d events for %d organizers", len(events), len(organizerIDs))
		return len(events), nil
	})
}

// findOrganizers returns the ids of the users holding the organizer role
func findOrganizers(tx *gorm.DB) ([]string, error) {
	var organizerRole models.Role
	err := tx.Where(&models.Role{Name: OrganizerRoleName}).First(&organizerRole).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizerRoleMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizer role: %w", err)
	}

	var organizerIDs []string
	err = tx.Model(&models.User{}).
		Joins(`JOIN "AspNetUserRoles" ON "AspNetUserRoles"."UserId" = "AspNetUsers"."Id"`).
		Where(`"AspNetUserRoles"."RoleId" = ?`, organizerRole.ID).
		Pluck(`"AspNetUsers"."Id"`, &organizerIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizers: %w", err)
	}

	if len(organizerIDs) == 0 {
		return nil, ErrNoOrganizers
	}
	return organizerIDs, nil
}
