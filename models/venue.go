package models

// Venue is a physical location hosting one or more activities.
type Venue struct {
	ID           string   `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Address      string   `bson:"address" json:"address"`
	PhoneNumber  string   `bson:"phone_number" json:"phoneNumber"`
	Email        string   `bson:"email" json:"email"`
	Description  string   `bson:"description" json:"description"`
	ImageURL     string   `bson:"image_url" json:"imageUrl"`
	Amenities    []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Website      string   `bson:"website,omitempty" json:"website,omitempty"`
	OpeningHours string   `bson:"opening_hours,omitempty" json:"openingHours,omitempty"`
}
