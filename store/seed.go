package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/careconnect/charityevents-api/models"
)

// Seed inserts the sample catalog (6 categories, 3 organisations, 11
// events) when the store holds no events yet. It is idempotent across
// restarts: a non-empty events table is left alone.
func Seed(ctx context.Context, s Store, log *slog.Logger) error {
	existing, err := s.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("seed: list events: %w", err)
	}
	if len(existing) > 0 {
		log.Debug("seed skipped, store already populated", slog.Int("events", len(existing)))
		return nil
	}

	catIDs := make(map[string]int)
	for _, name := range []string{
		"Fun Run", "Gala Dinner", "Silent Auction",
		"Concert", "Charity Ball", "Sports Tournament",
	} {
		id, err := s.InsertCategory(ctx, models.Category{Name: name, CreatedAt: time.Now()})
		if err != nil {
			return fmt.Errorf("seed: insert category %q: %w", name, err)
		}
		catIDs[name] = id
	}

	orgIDs := make(map[string]int)
	for _, org := range []models.Organisation{
		{Name: "Red Cross Australia", Description: "Helping people in crisis", ContactEmail: "contact@redcross.org.au", Phone: "1800 733 276", Website: "https://www.redcross.org.au"},
		{Name: "Cancer Council", Description: "Leading cancer charity", ContactEmail: "info@cancer.org.au", Phone: "13 11 20", Website: "https://www.cancer.org.au"},
		{Name: "World Wildlife Fund", Description: "Conserving nature and wildlife", ContactEmail: "enquiries@wwf.org.au", Phone: "1800 032 551", Website: "https://www.wwf.org.au"},
	} {
		org.CreatedAt = time.Now()
		id, err := s.InsertOrganisation(ctx, org)
		if err != nil {
			return fmt.Errorf("seed: insert organisation %q: %w", org.Name, err)
		}
		orgIDs[org.Name] = id
	}

	type row struct {
		name, desc, date, t, loc, cat, org string
		goal, current, ticket              models.Money
	}
	rows := []row{
		{"Summer Fun Run", "10km coastal run for ocean conservation", "2025-01-20", "07:00:00", "Bondi Beach, Sydney", "Fun Run", "Cancer Council", 40000, 25000, 30},
		{"Winter Charity Gala 2025", "Elegant formal ball for medical research", "2025-08-25", "19:30:00", "Four Seasons Hotel", "Gala Dinner", "Cancer Council", 60000, 35000, 120},
		{"Art & Culture Silent Auction", "Auction featuring local artist masterpieces", "2025-09-30", "18:30:00", "Art Gallery of NSW", "Silent Auction", "Red Cross Australia", 20000, 12000, 0},
		{"Hope Concert 2025", "Live music festival for disaster relief", "2025-12-05", "20:00:00", "Opera House, Sydney", "Concert", "Red Cross Australia", 30000, 18000, 50},
		{"Sydney Marathon 2025", "Annual city marathon for cancer research", "2025-10-15", "08:00:00", "Sydney Park, NSW", "Fun Run", "Cancer Council", 50000, 32500, 25},
		{"Community Basketball Tournament", "Youth sports event for education programs", "2025-10-10", "09:00:00", "Sydney Sports Centre", "Sports Tournament", "Red Cross Australia", 15000, 8000, 15},
		{"Wildlife Conservation Gala", "Exclusive dinner for wildlife protection", "2025-11-20", "19:00:00", "Hilton Hotel, Sydney", "Gala Dinner", "World Wildlife Fund", 75000, 45000, 150},
		{"Classical Music Festival", "Symphony orchestra for education funds", "2025-11-15", "19:00:00", "City Recital Hall", "Concert", "World Wildlife Fund", 25000, 15000, 45},
		{"Spring Charity Ball", "Elegant spring ball supporting arts education programs", "2025-05-20", "19:00:00", "Sydney Opera House", "Charity Ball", "Red Cross Australia", 55000, 28000, 125},
		{"Annual Charity Auction", "Live auction with celebrity hosts for children education", "2025-06-20", "18:00:00", "Sydney Convention Centre", "Silent Auction", "Red Cross Australia", 45000, 22000, 0},
		{"Jazz Night for Hope", "An evening of jazz music supporting mental health awareness", "2025-07-12", "19:30:00", "The Basement, Sydney", "Concert", "Cancer Council", 18000, 9500, 35},
	}

	for _, r := range rows {
		date, err := models.ParseDate(r.date)
		if err != nil {
			return fmt.Errorf("seed: event %q: %w", r.name, err)
		}
		catID := catIDs[r.cat]
		orgID := orgIDs[r.org]
		ev := models.Event{
			Name:           r.name,
			Description:    r.desc,
			EventDate:      date,
			EventTime:      r.t,
			Location:       r.loc,
			CategoryID:     &catID,
			OrganisationID: &orgID,
			GoalAmount:     r.goal,
			CurrentAmount:  r.current,
			TicketPrice:    r.ticket,
			IsActive:       true,
			CreatedAt:      time.Now(),
		}
		if _, err := s.InsertEvent(ctx, ev); err != nil {
			return fmt.Errorf("seed: insert event %q: %w", r.name, err)
		}
	}

	log.Info("sample data seeded",
		slog.Int("categories", len(catIDs)),
		slog.Int("organisations", len(orgIDs)),
		slog.Int("events", len(rows)))
	return nil
}
