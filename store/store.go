package store

import (
	"context"
	"errors"

	"github.com/careconnect/charityevents-api/models"
)

// ErrNotFound is returned when a lookup by id matches no record. It is
// an expected outcome, not a failure; callers check it with errors.Is.
var ErrNotFound = errors.New("record not found")

// EventPatch carries a partial update; nil fields are left untouched.
type EventPatch struct {
	Name           *string
	Description    *string
	EventDate      *models.Date
	EventTime      *string
	Location       *string
	CategoryID     *int
	OrganisationID *int
	GoalAmount     *models.Money
	CurrentAmount  *models.Money
	TicketPrice    *models.Money
	IsActive       *bool
	ImageURL       *string
}

// Empty reports whether the patch changes nothing.
func (p EventPatch) Empty() bool {
	return p == EventPatch{}
}

// Store is the record store the discovery engine reads from and the
// admin surface writes to. Implementations serialize their own
// concurrent access; the engine treats the store as opaque.
type Store interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int) (models.Event, error)
	InsertEvent(ctx context.Context, ev models.Event) (int, error)
	UpdateEvent(ctx context.Context, id int, patch EventPatch) error
	DeleteEvent(ctx context.Context, id int) error
	SetEventActive(ctx context.Context, id int, active bool) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, c models.Category) (int, error)

	ListOrganisations(ctx context.Context) ([]models.Organisation, error)
	InsertOrganisation(ctx context.Context, o models.Organisation) (int, error)
}
