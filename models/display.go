package models

// DisplayRecord is an Event enriched with its resolved category and
// organisation names plus the derived lifecycle and fundraising
// annotations. It is computed per request and never persisted; a nil
// name means the foreign key was absent or dangling, and label
// substitution ("Uncategorized", "Unknown") is left to the clients.
type DisplayRecord struct {
	Event

	CategoryName     *string `json:"category_name" bson:"-"`
	OrganisationName *string `json:"organisation_name" bson:"-"`

	Status   string  `json:"status" bson:"-"`   // upcoming, past or paused
	Progress float64 `json:"progress" bson:"-"` // 0..100

	// Organisation detail, populated on single-event lookups only.
	OrganisationDescription string `json:"organisation_description,omitempty" bson:"-"`
	ContactEmail            string `json:"contact_email,omitempty" bson:"-"`
	Phone                   string `json:"phone,omitempty" bson:"-"`
	Website                 string `json:"website,omitempty" bson:"-"`
}
