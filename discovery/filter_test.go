package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/charityevents-api/models"
)

func testRecords() []models.DisplayRecord {
	funRun := "Fun Run"
	concert := "Concert"
	funRunID, concertID := 1, 4
	return []models.DisplayRecord{
		{
			Event: models.Event{
				ID:          1,
				Name:        "Summer Fun Run",
				Description: "10km coastal run for ocean conservation",
				EventDate:   models.NewDate(2025, time.January, 20),
				Location:    "Bondi Beach, Sydney",
				CategoryID:  &funRunID,
			},
			CategoryName: &funRun,
		},
		{
			Event: models.Event{
				ID:          2,
				Name:        "Hope Concert",
				Description: "Live music festival for disaster relief",
				EventDate:   models.NewDate(2025, time.December, 5),
				Location:    "Opera House, Sydney",
				CategoryID:  &concertID,
			},
			CategoryName: &concert,
		},
		{
			Event: models.Event{
				ID:        3,
				Name:      "Mystery Dinner",
				EventDate: models.NewDate(2025, time.March, 1),
				Location:  "Melbourne",
			},
			// no category resolved
		},
	}
}

func apply(pred Predicate, recs []models.DisplayRecord) []int {
	var ids []int
	for _, r := range recs {
		if pred(r) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func TestCompileEmptyAcceptsAll(t *testing.T) {
	pred := Filters{}.Compile()
	for _, rec := range testRecords() {
		assert.True(t, pred(rec))
	}
}

func TestKeywordMatchesAnyTextField(t *testing.T) {
	recs := testRecords()

	// "Bondi" appears only in event 1's location.
	assert.Equal(t, []int{1}, apply(Filters{Keyword: "bondi"}.Compile(), recs))
	// name match
	assert.Equal(t, []int{2}, apply(Filters{Keyword: "hope"}.Compile(), recs))
	// description match
	assert.Equal(t, []int{1}, apply(Filters{Keyword: "coastal"}.Compile(), recs))
	// case-insensitive
	assert.Equal(t, []int{1, 2}, apply(Filters{Keyword: "SYDNEY"}.Compile(), recs))
}

func TestCategoryByIDAndByNameAgree(t *testing.T) {
	recs := testRecords()

	id := 1
	byID := apply(Filters{CategoryID: &id}.Compile(), recs)
	byName := apply(Filters{CategoryName: "Fun Run"}.Compile(), recs)
	assert.Equal(t, byID, byName)
	assert.Equal(t, []int{1}, byID)
}

func TestCategoryNameIsCaseSensitiveExact(t *testing.T) {
	recs := testRecords()
	assert.Empty(t, apply(Filters{CategoryName: "fun run"}.Compile(), recs))
	assert.Empty(t, apply(Filters{CategoryName: "Fun"}.Compile(), recs))
}

func TestBothCategoryKeysAreConjoined(t *testing.T) {
	recs := testRecords()

	// Matching pair selects the event.
	id := 1
	assert.Equal(t, []int{1}, apply(Filters{CategoryID: &id, CategoryName: "Fun Run"}.Compile(), recs))

	// Mismatched pair selects nothing.
	concertID := 4
	assert.Empty(t, apply(Filters{CategoryID: &concertID, CategoryName: "Fun Run"}.Compile(), recs))
}

func TestLocationSubstring(t *testing.T) {
	recs := testRecords()
	assert.Equal(t, []int{2}, apply(Filters{Location: "opera"}.Compile(), recs))
	assert.Equal(t, []int{1, 2}, apply(Filters{Location: "sydney"}.Compile(), recs))
}

func TestExactDate(t *testing.T) {
	recs := testRecords()
	date := models.NewDate(2025, time.December, 5)
	assert.Equal(t, []int{2}, apply(Filters{ExactDate: &date}.Compile(), recs))

	none := models.NewDate(2025, time.December, 6)
	assert.Empty(t, apply(Filters{ExactDate: &none}.Compile(), recs))
}

func TestUnresolvedCategoryNeverMatchesCategoryFilters(t *testing.T) {
	recs := testRecords()
	id := 3
	assert.Empty(t, apply(Filters{CategoryID: &id}.Compile(), recs))
	assert.Empty(t, apply(Filters{CategoryName: "Mystery"}.Compile(), recs))
}

func TestParseCategoryID(t *testing.T) {
	id, ok := ParseCategoryID("42")
	require.True(t, ok)
	assert.Equal(t, 42, id)

	id, ok = ParseCategoryID(" 7 ")
	require.True(t, ok)
	assert.Equal(t, 7, id)

	for _, raw := range []string{"", "abc", "1.5", "-3", "0", "1e3"} {
		_, ok := ParseCategoryID(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}
