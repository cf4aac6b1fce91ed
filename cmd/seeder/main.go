// Command seeder populates the component catalog with the reference set
// of UV sensor parts. It is idempotent: categories and components are
// upserted by name, so re-running it updates prices and specifications
// without creating duplicates.
//
// Flags:
//
//	--dry-run  print what would be inserted without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/amteixeira/uvtrack-backend/internal/adapter/postgres"
	"github.com/amteixeira/uvtrack-backend/internal/app"
	"github.com/amteixeira/uvtrack-backend/internal/config"
)

type componentSeed struct {
	name          string
	price         string
	specification string
}

// catalogSeed is the reference catalog, grouped by category name.
var catalogSeed = map[string][]componentSeed{
	"Sensors": {
		{"GUVA-S12D", "120.00", "Analog UV sensor, 240-370nm spectral range"},
		{"VEML6075", "89.90", "Digital UVA/UVB sensor, I2C interface"},
		{"ML8511", "64.50", "Analog UV sensor with built-in amplifier"},
	},
	"Boards": {
		{"Arduino Uno R3", "154.90", "ATmega328P, 16MHz, 14 digital I/O pins"},
		{"Arduino Nano", "99.00", "ATmega328P, breadboard-friendly form factor"},
		{"ESP32 DevKit", "79.90", "Dual-core 240MHz, Wi-Fi and Bluetooth"},
	},
	"Connectivity": {
		{"SIM800L GSM Module", "69.90", "Quad-band GSM/GPRS, serial interface"},
		{"NEO-6M GPS Module", "54.90", "GPS receiver with ceramic antenna"},
	},
	"Power": {
		{"18650 Battery Holder", "12.50", "Single-cell holder with leads"},
		{"TP4056 Charger Module", "8.90", "Li-ion charging board, micro USB"},
		{"Solar Panel 5V 1W", "34.90", "Polycrystalline, 110x69mm"},
	},
	"Enclosure": {
		{"ABS Case 100x60x25", "18.00", "IP54 project box"},
		{"Cable Gland PG7", "3.50", "Nylon, 3-6.5mm cable diameter"},
	},
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print what would be inserted without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	ctx := context.Background()

	if *dryRun {
		for category, components := range catalogSeed {
			for _, c := range components {
				fmt.Printf("%s\t%s\t%s\n", category, c.name, c.price)
			}
		}
		return
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	total := 0
	for category, components := range catalogSeed {
		var categoryID string
		err := pool.QueryRow(ctx,
			`INSERT INTO categories (name) VALUES ($1)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			category,
		).Scan(&categoryID)
		if err != nil {
			logger.Error("upsert category",
				slog.String("category", category),
				slog.String("error", err.Error()))
			os.Exit(1)
		}

		for _, c := range components {
			_, err := pool.Exec(ctx,
				`INSERT INTO components (name, category_id, price, specification)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (name, category_id) DO UPDATE
				 SET price = EXCLUDED.price, specification = EXCLUDED.specification`,
				c.name, categoryID, c.price, c.specification,
			)
			if err != nil {
				logger.Error("upsert component",
					slog.String("component", c.name),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
			total++
		}
	}

	logger.Info("catalog seeded",
		slog.Int("categories", len(catalogSeed)),
		slog.Int("components", total),
	)
}
