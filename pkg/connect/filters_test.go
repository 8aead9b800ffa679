package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/connect/pkg/connect"
)

func TestVocabulary_Parse(t *testing.T) {
	t.Parallel()

	segment, err := connect.EditorialSegments.Parse("news")
	require.NoError(t, err)
	assert.Equal(t, "news", segment.Value())
	assert.Equal(t, "news", segment.String())
	assert.False(t, segment.IsZero())
}

func TestVocabulary_ParseRejectsNonMember(t *testing.T) {
	t.Parallel()

	_, err := connect.EditorialSegments.Parse("not_a_real_segment")
	require.Error(t, err)

	var valErr *connect.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "editorial_segments", valErr.Category)
	assert.Equal(t, "not_a_real_segment", valErr.Value)
	assert.Equal(t, connect.EditorialSegments.Members(), valErr.Accepted)
	assert.Contains(t, err.Error(), "editorial_segments")
	assert.Contains(t, err.Error(), "archival, entertainment, news, publicity, royalty, sport")
}

func TestVocabulary_ParseIsCaseSensitive(t *testing.T) {
	t.Parallel()

	_, err := connect.SortOrders.Parse("Newest")
	assert.True(t, connect.IsValidationError(err))

	_, err = connect.SortOrders.Parse("")
	assert.True(t, connect.IsValidationError(err))
}

func TestVocabulary_MustParsePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { connect.FileTypes.MustParse("tiff") })
	assert.NotPanics(t, func() { connect.FileTypes.MustParse("jpg") })
}

func TestVocabulary_MembersIsCopy(t *testing.T) {
	t.Parallel()

	members := connect.LicenseModels.Members()
	members[0] = "mutated"

	assert.True(t, connect.LicenseModels.Contains("rightsmanaged"))
	assert.False(t, connect.LicenseModels.Contains("mutated"))
}

func TestVocabularies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		contains []string
	}{
		{name: "graphical styles", category: connect.GraphicalStyles.Category(), contains: []string{"fine_art", "vector"}},
		{name: "orientations", category: connect.Orientations.Category(), contains: []string{"horizontal", "square"}},
		{name: "sort orders", category: connect.SortOrders.Category(), contains: []string{"best_match", "random"}},
		{name: "number of people", category: connect.NumberOfPeopleValues.Category(), contains: []string{"none", "group"}},
		{name: "ages", category: connect.AgesOfPeople.Category(), contains: []string{"newborn", "100_over"}},
		{name: "compositions", category: connect.Compositions.Category(), contains: []string{"abstract", "waist_up"}},
	}

	lookup := map[string]func(string) bool{
		connect.GraphicalStyles.Category():      connect.GraphicalStyles.Contains,
		connect.Orientations.Category():         connect.Orientations.Contains,
		connect.SortOrders.Category():           connect.SortOrders.Contains,
		connect.NumberOfPeopleValues.Category(): connect.NumberOfPeopleValues.Contains,
		connect.AgesOfPeople.Category():         connect.AgesOfPeople.Contains,
		connect.Compositions.Category():         connect.Compositions.Contains,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, value := range tt.contains {
				assert.True(t, lookup[tt.category](value), value)
			}
		})
	}
}

func TestFilterValue_ZeroValue(t *testing.T) {
	t.Parallel()

	var segment connect.EditorialSegment

	assert.True(t, segment.IsZero())
	assert.Empty(t, segment.Value())
}
