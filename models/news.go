package models

import "time"

// News priorities
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// NewsItem is a news entry shown on the public site once published
type NewsItem struct {
	Tracked   `bson:",inline"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Excerpt   string    `bson:"excerpt" json:"excerpt"`
	Image     string    `bson:"image" json:"image"`
	Date      time.Time `bson:"date" json:"date"`
	Priority  string    `bson:"priority" json:"priority"`
	Published bool      `bson:"published" json:"published"`
}

// Defaults sets the values used when a create request omits them
func (n *NewsItem) Defaults() {
	n.Priority = PriorityNormal
	n.Published = true
}

// Touch stamps the update time and dates undated news with it
func (n *NewsItem) Touch(now time.Time) {
	n.Tracked.Touch(now)
	if n.Date.IsZero() {
		n.Date = now
	}
}

// Validate checks required fields and the priority
func (n *NewsItem) Validate() error {
	return firstError(
		required("title", n.Title),
		required("content", n.Content),
		oneOf("priority", n.Priority, PriorityNormal, PriorityHigh, PriorityUrgent),
	)
}
