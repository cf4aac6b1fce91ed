package reading_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/amteixeira/uvtrack-backend/internal/adapter/postgres/reading"
	"github.com/amteixeira/uvtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

func TestRepo_GetOrCreateLocation(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := reading.New(pool)
	ctx := context.Background()

	loc := domain.Location{
		Country:   "Brasil",
		State:     "ES",
		City:      "Guarapari-" + time.Now().Format("150405.000000"),
		Latitude:  -20.6667,
		Longitude: -40.4975,
	}

	first, err := repo.GetOrCreateLocation(ctx, loc)
	if err != nil {
		t.Fatalf("GetOrCreateLocation: %v", err)
	}

	second, err := repo.GetOrCreateLocation(ctx, loc)
	if err != nil {
		t.Fatalf("GetOrCreateLocation again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("same location produced two rows: %v and %v", first.ID, second.ID)
	}

	// Different coordinates mean a different place, even in the same city.
	loc.Latitude = -20.7
	third, err := repo.GetOrCreateLocation(ctx, loc)
	if err != nil {
		t.Fatalf("GetOrCreateLocation shifted: %v", err)
	}
	if third.ID == first.ID {
		t.Error("shifted coordinates reused the existing row")
	}
}

func TestRepo_CreateReadingAndListTimes(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := reading.New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	asm := testhelper.SeedAssembly(t, pool, user.ID)
	loc := testhelper.SeedLocation(t, pool)

	// Far future so parallel tests' readings stay out of the window.
	base := time.Date(2100, 6, 1, 12, 0, 0, 0, time.UTC)

	created, err := repo.CreateReading(ctx, domain.Reading{
		AssemblyID:   asm.ID,
		LocationID:   loc.ID,
		RegisterDate: base,
		Frequency:    7.25,
	})
	if err != nil {
		t.Fatalf("CreateReading: %v", err)
	}
	if created.Frequency != 7.25 {
		t.Errorf("frequency = %v, want 7.25", created.Frequency)
	}

	testhelper.SeedReading(t, pool, asm.ID, loc.ID, base.Add(48*time.Hour), 3.5)

	times, err := repo.ListTimesSince(ctx, base)
	if err != nil {
		t.Fatalf("ListTimesSince: %v", err)
	}
	if len(times) != 2 {
		t.Fatalf("got %d times, want 2", len(times))
	}
	if !times[0].Before(times[1]) {
		t.Errorf("times not ascending: %v", times)
	}

	later, err := repo.ListTimesSince(ctx, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("ListTimesSince later: %v", err)
	}
	if len(later) != 1 {
		t.Errorf("got %d times after boundary, want 1", len(later))
	}
}

func TestRepo_CountAndAvg(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := reading.New(pool)
	ctx := context.Background()

	// Other parallel tests insert readings too, so assert deltas, not totals.
	beforeCount, _, err := repo.CountAndAvg(ctx)
	if err != nil {
		t.Fatalf("CountAndAvg: %v", err)
	}

	user := testhelper.SeedUser(t, pool)
	asm := testhelper.SeedAssembly(t, pool, user.ID)
	loc := testhelper.SeedLocation(t, pool)
	now := time.Now().UTC()
	testhelper.SeedReading(t, pool, asm.ID, loc.ID, now, 2.0)
	testhelper.SeedReading(t, pool, asm.ID, loc.ID, now, 4.0)

	afterCount, avg, err := repo.CountAndAvg(ctx)
	if err != nil {
		t.Fatalf("CountAndAvg: %v", err)
	}
	if afterCount != beforeCount+2 {
		t.Errorf("count = %d, want %d", afterCount, beforeCount+2)
	}
	if avg <= 0 {
		t.Errorf("avg = %v, want > 0", avg)
	}
}

func TestRepo_TopLocations(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := reading.New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	asm := testhelper.SeedAssembly(t, pool, user.ID)
	busy := testhelper.SeedLocation(t, pool)
	quiet := testhelper.SeedLocation(t, pool)

	now := time.Now().UTC()
	testhelper.SeedReading(t, pool, asm.ID, busy.ID, now, 1.0)
	testhelper.SeedReading(t, pool, asm.ID, busy.ID, now, 3.0)
	testhelper.SeedReading(t, pool, asm.ID, busy.ID, now, 5.0)
	testhelper.SeedReading(t, pool, asm.ID, quiet.ID, now, 9.0)

	// Large limit: other tests' locations may rank in between, so find ours.
	stats, err := repo.TopLocations(ctx, 1000)
	if err != nil {
		t.Fatalf("TopLocations: %v", err)
	}

	var busyIdx, quietIdx = -1, -1
	for i, s := range stats {
		switch s.Location.ID {
		case busy.ID:
			busyIdx = i
			if s.ReadingCount != 3 {
				t.Errorf("busy count = %d, want 3", s.ReadingCount)
			}
			if math.Abs(s.AvgFrequency-3.0) > 1e-9 {
				t.Errorf("busy avg = %v, want 3.0", s.AvgFrequency)
			}
		case quiet.ID:
			quietIdx = i
			if s.ReadingCount != 1 {
				t.Errorf("quiet count = %d, want 1", s.ReadingCount)
			}
		}
	}
	if busyIdx == -1 || quietIdx == -1 {
		t.Fatalf("seeded locations missing from ranking")
	}
	if busyIdx > quietIdx {
		t.Errorf("busy location ranked below quiet one: %d > %d", busyIdx, quietIdx)
	}

	limited, err := repo.TopLocations(ctx, 1)
	if err != nil {
		t.Fatalf("TopLocations limit 1: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d locations with limit 1, want 1", len(limited))
	}
}

func TestRepo_DailyAverages(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := reading.New(pool)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	asm := testhelper.SeedAssembly(t, pool, user.ID)
	loc := testhelper.SeedLocation(t, pool)

	// Far future keeps these days most-recent regardless of parallel tests.
	day1 := time.Date(2200, 1, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2200, 1, 11, 9, 0, 0, 0, time.UTC)
	testhelper.SeedReading(t, pool, asm.ID, loc.ID, day1, 2.0)
	testhelper.SeedReading(t, pool, asm.ID, loc.ID, day1.Add(3*time.Hour), 6.0)
	testhelper.SeedReading(t, pool, asm.ID, loc.ID, day2, 10.0)

	averages, err := repo.DailyAverages(ctx, 2)
	if err != nil {
		t.Fatalf("DailyAverages: %v", err)
	}
	if len(averages) != 2 {
		t.Fatalf("got %d days, want 2", len(averages))
	}
	if !averages[0].Day.Before(averages[1].Day) {
		t.Errorf("days not chronological: %v then %v", averages[0].Day, averages[1].Day)
	}
	if math.Abs(averages[0].AvgFrequency-4.0) > 1e-9 {
		t.Errorf("day1 avg = %v, want 4.0", averages[0].AvgFrequency)
	}
	if math.Abs(averages[1].AvgFrequency-10.0) > 1e-9 {
		t.Errorf("day2 avg = %v, want 10.0", averages[1].AvgFrequency)
	}
}
