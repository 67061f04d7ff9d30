package models

import "time"

type Event struct {
	ID             int       `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Description    string    `bson:"description,omitempty" json:"description"`
	EventDate      Date      `bson:"event_date" json:"event_date"`
	EventTime      string    `bson:"event_time,omitempty" json:"event_time,omitempty"`
	Location       string    `bson:"location" json:"location"`
	CategoryID     *int      `bson:"category_id,omitempty" json:"category_id"`
	OrganisationID *int      `bson:"organisation_id,omitempty" json:"organisation_id"`
	GoalAmount     Money     `bson:"goal_amount" json:"goal_amount"`
	CurrentAmount  Money     `bson:"current_amount" json:"current_amount"`
	TicketPrice    Money     `bson:"ticket_price" json:"ticket_price"`
	IsActive       bool      `bson:"is_active" json:"is_active"`
	ImageURL       string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
