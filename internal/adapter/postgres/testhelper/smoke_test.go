package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)
	ctx := context.Background()

	user := SeedUser(t, pool)
	cat := SeedCategory(t, pool, "Sensors")
	comp := SeedComponent(t, pool, cat.ID, "GUVA-S12D", "4.50")

	var email string
	err := pool.QueryRow(ctx, `SELECT email FROM users WHERE id = $1`, user.ID).Scan(&email)
	if err != nil {
		t.Fatalf("expected user in DB, got error: %v", err)
	}
	if email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, email)
	}

	var price string
	err = pool.QueryRow(ctx,
		`SELECT price::text FROM components WHERE id = $1`, comp.ID,
	).Scan(&price)
	if err != nil {
		t.Fatalf("expected component in DB, got error: %v", err)
	}
	if price != "4.50" {
		t.Fatalf("expected price 4.50, got %q", price)
	}
}
