package models

import (
	"net/mail"
	"strings"
	"time"
)

// Entity is implemented by every stored document. Identity fields are owned by
// the server: they are assigned on create and survive every update.
type Entity interface {
	Identity() (string, time.Time)
	Identify(id string, createdAt time.Time)
	Touch(now time.Time)
	Defaults()
	Validate() error
}

// EntityPtr constrains generic stores and handlers to pointers of entity types
type EntityPtr[T any] interface {
	*T
	Entity
}

// Base holds the generated identifier and creation time shared by all documents
type Base struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Identity returns the identifier and creation time
func (b *Base) Identity() (string, time.Time) {
	return b.ID, b.CreatedAt
}

// Identify sets the identifier and creation time
func (b *Base) Identify(id string, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
}

// Touch is a no-op for kinds without an update timestamp
func (b *Base) Touch(time.Time) {}

// Tracked is a Base that also records when it was last updated
type Tracked struct {
	Base      `bson:",inline"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Touch stamps the update time
func (t *Tracked) Touch(now time.Time) {
	t.UpdatedAt = now
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field, "field required")
	}
	return nil
}

func validEmail(field, value string) error {
	if err := required(field, value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value[strings.LastIndex(value, "@"):], ".") {
		return Invalid(field, "value is not a valid email address")
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return Invalid(field, "must be one of %s", strings.Join(allowed, ", "))
}

// firstError returns the first non-nil error
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
