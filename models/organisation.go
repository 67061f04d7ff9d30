package models

import "time"

type Organisation struct {
	ID           int       `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	ContactEmail string    `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Website      string    `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
