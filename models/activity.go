package models

import "time"

// Activity is a bookable activity hosted at a venue.
type Activity struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	Price       float64   `bson:"price" json:"price"`
	City        string    `bson:"city" json:"city"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	VenueID     string    `bson:"venue_id" json:"venueId"`
	Venue       *Venue    `bson:"venue,omitempty" json:"venue,omitempty"` // populated on list reads
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
