package discovery

import (
	"time"

	"github.com/careconnect/charityevents-api/models"
)

// Lookups are the id-keyed category and organisation tables used to
// resolve an event's foreign keys. Either map may be partial or empty.
type Lookups struct {
	Categories    map[int]models.Category
	Organisations map[int]models.Organisation
}

// NewLookups indexes the fetched reference tables by id.
func NewLookups(cats []models.Category, orgs []models.Organisation) Lookups {
	l := Lookups{
		Categories:    make(map[int]models.Category, len(cats)),
		Organisations: make(map[int]models.Organisation, len(orgs)),
	}
	for _, c := range cats {
		l.Categories[c.ID] = c
	}
	for _, o := range orgs {
		l.Organisations[o.ID] = o
	}
	return l
}

// Enrich resolves ev's foreign keys into a display record and derives
// its lifecycle and progress annotations. A missing or dangling
// foreign key leaves the name nil; no error is ever raised here.
func Enrich(ev models.Event, lookups Lookups, now time.Time) models.DisplayRecord {
	rec := models.DisplayRecord{Event: ev}
	if ev.CategoryID != nil {
		if c, ok := lookups.Categories[*ev.CategoryID]; ok {
			name := c.Name
			rec.CategoryName = &name
		}
	}
	if ev.OrganisationID != nil {
		if o, ok := lookups.Organisations[*ev.OrganisationID]; ok {
			name := o.Name
			rec.OrganisationName = &name
		}
	}
	rec.Status = string(Classify(ev.IsActive, ev.EventDate, now))
	rec.Progress = Progress(float64(ev.CurrentAmount), float64(ev.GoalAmount))
	return rec
}

// EnrichDetail is Enrich plus the organisation contact fields shown on
// single-event pages.
func EnrichDetail(ev models.Event, lookups Lookups, now time.Time) models.DisplayRecord {
	rec := Enrich(ev, lookups, now)
	if ev.OrganisationID != nil {
		if o, ok := lookups.Organisations[*ev.OrganisationID]; ok {
			rec.OrganisationDescription = o.Description
			rec.ContactEmail = o.ContactEmail
			rec.Phone = o.Phone
			rec.Website = o.Website
		}
	}
	return rec
}
