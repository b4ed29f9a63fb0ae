package models

// CartEntry is one pending booking in a user's Lobby. Entries are identified
// by the (activity, date, time) triple; two entries with the same triple must
// never coexist in one cart.
type CartEntry struct {
	ActivityID string `bson:"activity_id" json:"activityId"`
	Title      string `bson:"title" json:"title"` // denormalized at add time
	Date       string `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Time       string `bson:"time" json:"time"`   // slot label, e.g. "10:00 AM"
	Count      int    `bson:"count" json:"count"`
}

// SameKey reports whether two entries share the merge key.
func (e CartEntry) SameKey(other CartEntry) bool {
	return e.ActivityID == other.ActivityID && e.Date == other.Date && e.Time == other.Time
}

// LineItem is a cart entry resolved against its activity for display and
// pricing.
type LineItem struct {
	ActivityID string  `json:"activityId"`
	Title      string  `json:"title"`
	ImageURL   string  `json:"imageUrl"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// TimeSlots is the fixed set of bookable slot labels.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM",
}
