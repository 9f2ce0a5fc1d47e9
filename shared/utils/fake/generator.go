package fake

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"eventhub-seeder/shared/database/models"
	utils "eventhub-seeder/shared/utils/auth"
)

const (
	// ImagePrefix is where the web application serves event images from
	ImagePrefix = "/images/"

	MaxBalance        = 70.0
	MinPrice          = 5.0
	MaxPrice          = 100.0
	MinParticipants   = 20
	MaxParticipants   = 100
	MinDuration       = 1
	MaxDuration       = 10
	MaxDescriptionLen = 200

	EventWindowStart = 5 * 24 * time.Hour
	EventWindowEnd   = 20 * 24 * time.Hour

	identityFieldSize = 256
	maxEmailAttempts  = 5
)

// EventImages are the image files shipped with the web application
var EventImages = []string{
	"event_1.jpeg",
	"event_2.jpeg",
	"event_3.jpeg",
	"food-festival.jpg",
	"music-festival.jpg",
	"symphony.jpg",
	"tech-conference.jpeg",
	"art-exhibition.jpeg",
}

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator builds random rows. All randomness comes from one seeded
// faker, so two generators with the same seed and clock produce the same
// rows (password hashes excepted, bcrypt salts them).
type Generator struct {
	faker        *gofakeit.Faker
	now          func() time.Time
	hashPassword func(string) (string, error)
}

type Option func(*Generator)

// WithClock replaces time.Now as the reference for dates
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithPasswordHasher replaces the bcrypt hasher used for user passwords
func WithPasswordHasher(hash func(string) (string, error)) Option {
	return func(g *Generator) {
		g.hashPassword = hash
	}
}

// New creates a generator seeded with seed. A zero seed picks a random one.
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
		hashPassword: func(password string) (string, error) {
			return utils.HashPasswordWithCost(password, utils.SeedPasswordCost)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) User() (models.User, error) {
	userName := g.faker.Username()
	if err := utils.ValidateLength(userName, "username", 1, identityFieldSize); err != nil {
		return models.User{}, err
	}

	email, err := g.email()
	if err != nil {
		return models.User{}, err
	}

	passwordHash, err := g.hashPassword(g.faker.Password(true, true, true, true, false, 16))
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	createdAt := g.pastDate()
	return models.User{
		ID:                   g.faker.UUID(),
		CreatedAt:            createdAt,
		UpdatedAt:            createdAt,
		Active:               g.faker.Bool(),
		UserName:             userName,
		NormalizedUserName:   strings.ToUpper(userName),
		Email:                email,
		NormalizedEmail:      strings.ToUpper(email),
		EmailConfirmed:       true,
		PasswordHash:         passwordHash,
		SecurityStamp:        g.faker.UUID(),
		ConcurrencyStamp:     g.faker.UUID(),
		PhoneNumber:          g.faker.PhoneFormatted(),
		PhoneNumberConfirmed: false,
		TwoFactorEnabled:     false,
		LockoutEnabled:       true,
		AccessFailedCount:    0,
		Balance:              g.faker.Float64Range(0, MaxBalance),
	}, nil
}

// UserRole assigns a single role, picked uniformly from roleIDs, to the user.
// roleIDs must not be empty.
func (g *Generator) UserRole(userID string, roleIDs []string) models.UserRole {
	return models.UserRole{
		UserID: userID,
		RoleID: pick(g.faker, roleIDs),
	}
}

func (g *Generator) Category() models.Category {
	createdAt := g.pastDate()
	return models.Category{
		ID:        g.uuid(),
		Name:      g.faker.Name(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Active:    true,
	}
}

// Event builds a published event owned by one of organizerIDs in one of
// categoryIDs. Both slices must not be empty.
func (g *Generator) Event(organizerIDs []string, categoryIDs []uuid.UUID) models.Event {
	createdAt := g.pastDate()
	return models.Event{
		ID:                g.uuid(),
		Title:             g.faker.Name(),
		ImageURL:          ImagePrefix + g.faker.RandomString(EventImages),
		Description:       Truncate(g.faker.Paragraph(1, 4, 12, " "), MaxDescriptionLen),
		Date:              g.eventDate(),
		IsPublished:       true,
		RequireAcceptance: false,
		LimitParticipants: g.faker.Number(MinParticipants, MaxParticipants),
		Address:           g.faker.Address().Address,
		Duration:          g.faker.Number(MinDuration, MaxDuration),
		Price:             g.faker.Float64Range(MinPrice, MaxPrice),
		OrganizerID:       pick(g.faker, organizerIDs),
		CategoryID:        pick(g.faker, categoryIDs),
		Active:            true,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

// email draws addresses until one parses; some faker last names do not
// make valid domains.
func (g *Generator) email() (string, error) {
	var err error
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		email := g.faker.Email()
		if err = utils.ValidateEmail(email); err == nil {
			return email, nil
		}
	}
	return "", fmt.Errorf("failed to generate email: %w", err)
}

func (g *Generator) uuid() uuid.UUID {
	return uuid.MustParse(g.faker.UUID())
}

// pastDate returns a calendar date between the epoch and today
func (g *Generator) pastDate() time.Time {
	return g.faker.DateRange(epoch, g.now().UTC()).Truncate(24 * time.Hour)
}

// eventDate returns an instant strictly inside (now+5d, now+20d)
func (g *Generator) eventDate() time.Time {
	start := g.now().UTC().Add(EventWindowStart)
	span := int(EventWindowEnd - EventWindowStart)
	return start.Add(time.Duration(g.faker.Number(1, span-1)))
}

func pick[T any](f *gofakeit.Faker, items []T) T {
	return items[f.Number(0, len(items)-1)]
}

// Truncate shortens s to at most max bytes, cutting at the last word
// boundary when there is one.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;")
}
