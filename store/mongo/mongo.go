// Package mongo implements store.Store on MongoDB. Records keep the
// same integer ids as the relational schema; ids are allocated from a
// counters collection so the two drivers stay interchangeable.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careconnect/charityevents-api/models"
	"github.com/careconnect/charityevents-api/store"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) events() *mongo.Collection        { return s.db.Collection("events") }
func (s *Store) categories() *mongo.Collection    { return s.db.Collection("categories") }
func (s *Store) organisations() *mongo.Collection { return s.db.Collection("organisations") }

// nextID atomically increments and returns the named sequence.
func (s *Store) nextID(ctx context.Context, seq string) (int, error) {
	res := s.db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": seq},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))
	var doc struct {
		Value int `bson:"value"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", seq, err)
	}
	return doc.Value, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	cursor, err := s.events().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (s *Store) GetEvent(ctx context.Context, id int) (models.Event, error) {
	var ev models.Event
	err := s.events().FindOne(ctx, bson.M{"id": id}).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, store.ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return ev, nil
}

func (s *Store) InsertEvent(ctx context.Context, ev models.Event) (int, error) {
	id, err := s.nextID(ctx, "events")
	if err != nil {
		return 0, err
	}
	ev.ID = id
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	if _, err := s.events().InsertOne(ctx, ev); err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateEvent(ctx context.Context, id int, patch store.EventPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.EventDate != nil {
		set["event_date"] = *patch.EventDate
	}
	if patch.EventTime != nil {
		set["event_time"] = *patch.EventTime
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.CategoryID != nil {
		set["category_id"] = *patch.CategoryID
	}
	if patch.OrganisationID != nil {
		set["organisation_id"] = *patch.OrganisationID
	}
	if patch.GoalAmount != nil {
		set["goal_amount"] = *patch.GoalAmount
	}
	if patch.CurrentAmount != nil {
		set["current_amount"] = *patch.CurrentAmount
	}
	if patch.TicketPrice != nil {
		set["ticket_price"] = *patch.TicketPrice
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if len(set) == 0 {
		return nil
	}
	res, err := s.events().UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update event %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id int) error {
	res, err := s.events().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SetEventActive(ctx context.Context, id int, active bool) error {
	res, err := s.events().UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"is_active": active}})
	if err != nil {
		return fmt.Errorf("set event %d active: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return cats, nil
}

func (s *Store) InsertCategory(ctx context.Context, c models.Category) (int, error) {
	id, err := s.nextID(ctx, "categories")
	if err != nil {
		return 0, err
	}
	c.ID = id
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if _, err := s.categories().InsertOne(ctx, c); err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

func (s *Store) ListOrganisations(ctx context.Context) ([]models.Organisation, error) {
	cursor, err := s.organisations().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	var orgs []models.Organisation
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, fmt.Errorf("decode organisations: %w", err)
	}
	return orgs, nil
}

func (s *Store) InsertOrganisation(ctx context.Context, o models.Organisation) (int, error) {
	id, err := s.nextID(ctx, "organisations")
	if err != nil {
		return 0, err
	}
	o.ID = id
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	if _, err := s.organisations().InsertOne(ctx, o); err != nil {
		return 0, fmt.Errorf("insert organisation: %w", err)
	}
	return id, nil
}
