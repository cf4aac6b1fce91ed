package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, name string) domain.Category {
	t.Helper()
	ctx := context.Background()

	cat := domain.Category{
		ID:   uuid.New(),
		Name: name + "-" + uniqueSuffix(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)`,
		cat.ID, cat.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return cat
}

// SeedComponent creates a component in the given category with the given price.
func SeedComponent(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, name, price string) domain.Component {
	t.Helper()
	ctx := context.Background()

	comp := domain.Component{
		ID:            uuid.New(),
		Name:          name,
		CategoryID:    categoryID,
		Price:         decimal.RequireFromString(price),
		Specification: "spec for " + name,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO components (id, name, category_id, price, specification)
		 VALUES ($1, $2, $3, $4, $5)`,
		comp.ID, comp.Name, comp.CategoryID, comp.Price.String(), comp.Specification,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComponent insert: %v", err)
	}

	return comp
}

// SeedAssembly creates an assembly owned by the given user.
func SeedAssembly(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Assembly {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	asm := domain.Assembly{
		ID:          uuid.New(),
		UserID:      userID,
		RegisterDay: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO assemblies (id, user_id, register_day, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		asm.ID, asm.UserID, asm.RegisterDay, asm.CreatedAt, asm.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssembly insert: %v", err)
	}

	return asm
}

// SeedLine creates one assembly_lines row.
func SeedLine(t *testing.T, pool *pgxpool.Pool, assemblyID, componentID uuid.UUID, quantity int) domain.AssemblyLine {
	t.Helper()
	ctx := context.Background()

	line := domain.AssemblyLine{
		AssemblyID:  assemblyID,
		ComponentID: componentID,
		Quantity:    quantity,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO assembly_lines (assembly_id, component_id, quantity)
		 VALUES ($1, $2, $3)`,
		line.AssemblyID, line.ComponentID, line.Quantity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLine insert: %v", err)
	}

	return line
}

// SeedLocation creates a location with a unique city name.
func SeedLocation(t *testing.T, pool *pgxpool.Pool) domain.Location {
	t.Helper()
	ctx := context.Background()

	loc := domain.Location{
		ID:        uuid.New(),
		Country:   "Brasil",
		State:     "ES",
		City:      "Vila Velha " + uniqueSuffix(),
		Latitude:  -20.3305,
		Longitude: -40.2922,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO locations (id, country, state, city, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		loc.ID, loc.Country, loc.State, loc.City, loc.Latitude, loc.Longitude,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLocation insert: %v", err)
	}

	return loc
}

// SeedReading creates one reading row at the given time and frequency.
func SeedReading(t *testing.T, pool *pgxpool.Pool, assemblyID, locationID uuid.UUID, at time.Time, frequency float64) domain.Reading {
	t.Helper()
	ctx := context.Background()

	r := domain.Reading{
		ID:           uuid.New(),
		AssemblyID:   assemblyID,
		LocationID:   locationID,
		RegisterDate: at.UTC().Truncate(time.Microsecond),
		Frequency:    frequency,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO readings (id, assembly_id, location_id, register_date, frequency)
		 VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.AssemblyID, r.LocationID, r.RegisterDate, r.Frequency,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReading insert: %v", err)
	}

	return r
}
