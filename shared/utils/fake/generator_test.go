package fake_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utils "eventhub-seeder/shared/utils/auth"
	"eventhub-seeder/shared/utils/fake"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func plainHasher(password string) (string, error) { return "hash:" + password, nil }

func newGenerator(seed int64) *fake.Generator {
	return fake.New(seed, fake.WithClock(clock), fake.WithPasswordHasher(plainHasher))
}

func TestGenerator_User(t *testing.T) {
	gen := newGenerator(42)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		user, err := gen.User()
		require.NoError(t, err)

		assert.False(t, seen[user.ID], "duplicate id %s", user.ID)
		seen[user.ID] = true
		_, err = uuid.Parse(user.ID)
		assert.NoError(t, err)

		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
		assert.False(t, user.CreatedAt.After(fixedNow))
		assert.Equal(t, 0, user.CreatedAt.Hour())
		assert.GreaterOrEqual(t, user.Balance, 0.0)
		assert.Less(t, user.Balance, fake.MaxBalance)

		assert.Equal(t, strings.ToUpper(user.UserName), user.NormalizedUserName)
		assert.Equal(t, strings.ToUpper(user.Email), user.NormalizedEmail)
		assert.NoError(t, utils.ValidateEmail(user.Email))
		assert.True(t, strings.HasPrefix(user.PasswordHash, "hash:"))
		assert.NotEmpty(t, user.PhoneNumber)

		assert.True(t, user.EmailConfirmed)
		assert.False(t, user.PhoneNumberConfirmed)
		assert.False(t, user.TwoFactorEnabled)
		assert.True(t, user.LockoutEnabled)
		assert.Nil(t, user.LockoutEnd)
		assert.Zero(t, user.AccessFailedCount)
	}
}

func TestGenerator_User_BcryptByDefault(t *testing.T) {
	gen := fake.New(7, fake.WithClock(clock))

	user, err := gen.User()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2a$"))
}

func TestGenerator_User_HashFailure(t *testing.T) {
	gen := fake.New(7, fake.WithPasswordHasher(func(string) (string, error) {
		return "", errors.New("boom")
	}))

	_, err := gen.User()
	assert.ErrorContains(t, err, "boom")
}

func TestGenerator_UserRole(t *testing.T) {
	gen := newGenerator(1)
	roleIDs := []string{"admin", "organizer", "attendee"}

	for i := 0; i < 50; i++ {
		userRole := gen.UserRole("user-1", roleIDs)
		assert.Equal(t, "user-1", userRole.UserID)
		assert.Contains(t, roleIDs, userRole.RoleID)
	}
}

func TestGenerator_Category(t *testing.T) {
	gen := newGenerator(3)

	category := gen.Category()
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.NotEmpty(t, category.Name)
	assert.True(t, category.Active)
	assert.Equal(t, category.CreatedAt, category.UpdatedAt)
}

func TestGenerator_Event(t *testing.T) {
	gen := newGenerator(99)
	organizers := []string{"org-1", "org-2"}
	categories := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	windowStart := fixedNow.Add(fake.EventWindowStart)
	windowEnd := fixedNow.Add(fake.EventWindowEnd)

	for i := 0; i < 100; i++ {
		event := gen.Event(organizers, categories)

		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.NotEmpty(t, event.Title)
		assert.True(t, strings.HasPrefix(event.ImageURL, fake.ImagePrefix))
		assert.Contains(t, fake.EventImages, strings.TrimPrefix(event.ImageURL, fake.ImagePrefix))
		assert.LessOrEqual(t, len(event.Description), fake.MaxDescriptionLen)
		assert.NotEmpty(t, event.Description)
		assert.NotEmpty(t, event.Address)

		assert.True(t, event.Date.After(windowStart), "date %s before window", event.Date)
		assert.True(t, event.Date.Before(windowEnd), "date %s after window", event.Date)

		assert.True(t, event.IsPublished)
		assert.False(t, event.RequireAcceptance)
		assert.True(t, event.Active)
		assert.GreaterOrEqual(t, event.LimitParticipants, fake.MinParticipants)
		assert.LessOrEqual(t, event.LimitParticipants, fake.MaxParticipants)
		assert.GreaterOrEqual(t, event.Duration, fake.MinDuration)
		assert.LessOrEqual(t, event.Duration, fake.MaxDuration)
		assert.GreaterOrEqual(t, event.Price, fake.MinPrice)
		assert.Less(t, event.Price, fake.MaxPrice)

		assert.Contains(t, organizers, event.OrganizerID)
		assert.Contains(t, categories, event.CategoryID)
		assert.Equal(t, event.CreatedAt, event.UpdatedAt)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	organizers := []string{"org-1", "org-2", "org-3"}
	categories := []uuid.UUID{uuid.New(), uuid.New()}

	a, b := newGenerator(2024), newGenerator(2024)

	userA, err := a.User()
	require.NoError(t, err)
	userB, err := b.User()
	require.NoError(t, err)
	assert.Equal(t, userA, userB)

	assert.Equal(t, a.Category(), b.Category())
	assert.Equal(t, a.Event(organizers, categories), b.Event(organizers, categories))

	other := newGenerator(2025)
	assert.NotEqual(t, a.Category().ID, other.Category().ID)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "hello world", max: 20, want: "hello world"},
		{name: "exact", in: "hello", max: 5, want: "hello"},
		{name: "word boundary", in: "hello brave new world", max: 14, want: "hello brave"},
		{name: "no space", in: "abcdefghij", max: 4, want: "abcd"},
		{name: "trailing punctuation", in: "one, two three", max: 6, want: "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fake.Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.max)
		})
	}
}
