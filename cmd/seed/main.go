package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/checkmate-hq/checkmate-backend-go/internal/config"
	"github.com/checkmate-hq/checkmate-backend-go/internal/fixtures"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/joho/godotenv"
)

// Seeds the demo team and a month of attendance. Safe to re-run: ids are
// deterministic, so every insert is an upsert.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, falling back to process environment")
	}

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		log.Fatal("Error loading database config: ", err)
	}

	db, err := database.NewPostgreSQLDB(dbConfig.URL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	users := fixtures.SampleUsers()
	for _, u := range users {
		_, err := db.Exec(ctx, `
			INSERT INTO users (id, full_name, email, role, joining_date, notes, is_admin)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				full_name = EXCLUDED.full_name,
				email = EXCLUDED.email,
				role = EXCLUDED.role,
				joining_date = EXCLUDED.joining_date,
				notes = EXCLUDED.notes,
				is_admin = EXCLUDED.is_admin,
				updated_at = NOW()
		`, u.ID, u.FullName, u.Email, u.Role, u.JoiningDate, u.Notes, u.IsAdmin)
		if err != nil {
			log.Fatalf("Error seeding user %s: %v", u.Email, err)
		}
	}
	fmt.Printf("Seeded %d users\n", len(users))

	now := time.Now().UTC()
	records := fixtures.SampleDayRecords(now.Year(), now.Month())
	for _, rec := range records {
		_, err := db.Exec(ctx, `
			INSERT INTO day_records (id, user_id, date, status, check_in, check_out, notes)
			VALUES ($1, $2, $3::date, $4, $5, $6, $7)
			ON CONFLICT (user_id, date) DO UPDATE SET
				status = EXCLUDED.status,
				check_in = EXCLUDED.check_in,
				check_out = EXCLUDED.check_out,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`, rec.ID, rec.UserID, rec.Date, rec.Status, rec.CheckIn, rec.CheckOut, rec.Notes)
		if err != nil {
			log.Fatalf("Error seeding day record %s/%s: %v", rec.UserID, rec.Date, err)
		}
	}
	fmt.Printf("Seeded %d day records for %s %d\n", len(records), now.Month(), now.Year())
}
