// Package sqlite implements store.Store on an embedded SQLite
// database. It is the default driver for local runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/careconnect/charityevents-api/models"
	"github.com/careconnect/charityevents-api/store"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and bootstraps the
// schema. Use "file::memory:?cache=shared" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS organisations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			contact_email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			event_date TEXT NOT NULL,
			event_time TEXT,
			location TEXT NOT NULL,
			category_id INTEGER REFERENCES categories(id),
			organisation_id INTEGER REFERENCES organisations(id),
			goal_amount REAL NOT NULL DEFAULT 0,
			current_amount REAL NOT NULL DEFAULT 0,
			ticket_price REAL NOT NULL DEFAULT 0,
			is_active INTEGER NOT NULL DEFAULT 1,
			image_url TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

const eventColumns = `id, name, description, event_date, event_time, location,
	category_id, organisation_id, goal_amount, current_amount, ticket_price,
	is_active, image_url, created_at`

func scanEvent(row interface{ Scan(...any) error }) (models.Event, error) {
	var (
		ev        models.Event
		eventTime sql.NullString
		catID     sql.NullInt64
		orgID     sql.NullInt64
	)
	err := row.Scan(&ev.ID, &ev.Name, &ev.Description, &ev.EventDate, &eventTime,
		&ev.Location, &catID, &orgID, &ev.GoalAmount, &ev.CurrentAmount,
		&ev.TicketPrice, &ev.IsActive, &ev.ImageURL, &ev.CreatedAt)
	if err != nil {
		return models.Event{}, err
	}
	if eventTime.Valid {
		ev.EventTime = eventTime.String
	}
	if catID.Valid {
		id := int(catID.Int64)
		ev.CategoryID = &id
	}
	if orgID.Valid {
		id := int(orgID.Int64)
		ev.OrganisationID = &id
	}
	return ev, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *Store) GetEvent(ctx context.Context, id int) (models.Event, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, store.ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return ev, nil
}

func (s *Store) InsertEvent(ctx context.Context, ev models.Event) (int, error) {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	var eventTime any
	if ev.EventTime != "" {
		eventTime = ev.EventTime
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO events
		(name, description, event_date, event_time, location, category_id,
		 organisation_id, goal_amount, current_amount, ticket_price, is_active,
		 image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Name, ev.Description, ev.EventDate, eventTime, ev.Location,
		nullableInt(ev.CategoryID), nullableInt(ev.OrganisationID),
		ev.GoalAmount, ev.CurrentAmount, ev.TicketPrice, ev.IsActive,
		ev.ImageURL, ev.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *Store) UpdateEvent(ctx context.Context, id int, patch store.EventPatch) error {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.EventDate != nil {
		add("event_date", *patch.EventDate)
	}
	if patch.EventTime != nil {
		add("event_time", *patch.EventTime)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}
	if patch.OrganisationID != nil {
		add("organisation_id", *patch.OrganisationID)
	}
	if patch.GoalAmount != nil {
		add("goal_amount", *patch.GoalAmount)
	}
	if patch.CurrentAmount != nil {
		add("current_amount", *patch.CurrentAmount)
	}
	if patch.TicketPrice != nil {
		add("ticket_price", *patch.TicketPrice)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update event %d: %w", id, err)
	}
	return checkAffected(res)
}

func (s *Store) DeleteEvent(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return checkAffected(res)
}

func (s *Store) SetEventActive(ctx context.Context, id int, active bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE events SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return fmt.Errorf("set event %d active: %w", id, err)
	}
	return checkAffected(res)
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *Store) InsertCategory(ctx context.Context, c models.Category) (int, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, created_at) VALUES (?, ?)`, c.Name, c.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *Store) ListOrganisations(ctx context.Context) ([]models.Organisation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, contact_email,
		phone, website, created_at FROM organisations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	defer rows.Close()

	var orgs []models.Organisation
	for rows.Next() {
		var o models.Organisation
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.ContactEmail,
			&o.Phone, &o.Website, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan organisation: %w", err)
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (s *Store) InsertOrganisation(ctx context.Context, o models.Organisation) (int, error) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO organisations
		(name, description, contact_email, phone, website, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.Name, o.Description, o.ContactEmail, o.Phone, o.Website, o.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert organisation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
