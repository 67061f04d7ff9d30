package discovery

import (
	"strconv"
	"strings"

	"github.com/careconnect/charityevents-api/models"
)

// Filters holds the optional search criteria. Every field is
// independent: a zero value contributes no constraint, and an empty
// Filters accepts every record.
type Filters struct {
	CategoryID   *int         // exact match on the resolved category id
	CategoryName string       // exact, case-sensitive match on the resolved category name
	Keyword      string       // case-insensitive substring of name, description or location
	Location     string       // case-insensitive substring of location
	ExactDate    *models.Date // equality on event_date
}

// Predicate reports whether a display record belongs in a result set.
type Predicate func(models.DisplayRecord) bool

// Compile builds the conjunction of one sub-predicate per present
// filter field. Supplying both CategoryID and CategoryName means both
// must hold.
func (f Filters) Compile() Predicate {
	var preds []Predicate

	if f.CategoryID != nil {
		want := *f.CategoryID
		preds = append(preds, func(rec models.DisplayRecord) bool {
			return rec.CategoryID != nil && *rec.CategoryID == want
		})
	}
	if f.CategoryName != "" {
		want := f.CategoryName
		preds = append(preds, func(rec models.DisplayRecord) bool {
			return rec.CategoryName != nil && *rec.CategoryName == want
		})
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		preds = append(preds, func(rec models.DisplayRecord) bool {
			return strings.Contains(strings.ToLower(rec.Name), kw) ||
				strings.Contains(strings.ToLower(rec.Description), kw) ||
				strings.Contains(strings.ToLower(rec.Location), kw)
		})
	}
	if f.Location != "" {
		loc := strings.ToLower(f.Location)
		preds = append(preds, func(rec models.DisplayRecord) bool {
			return strings.Contains(strings.ToLower(rec.Location), loc)
		})
	}
	if f.ExactDate != nil {
		want := f.ExactDate.String()
		preds = append(preds, func(rec models.DisplayRecord) bool {
			return rec.EventDate.String() == want
		})
	}

	return func(rec models.DisplayRecord) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// ParseCategoryID coerces a raw category id input to a positive
// integer. Non-numeric or out-of-range values report ok=false so the
// caller can drop the constraint instead of failing the request.
func ParseCategoryID(raw string) (id int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
