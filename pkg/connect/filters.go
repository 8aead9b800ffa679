package connect

import (
	"fmt"
	"slices"
)

// Vocabulary is the closed set of legal values of one filter family.
// K is a marker type that keeps values of different families apart at compile time.
type Vocabulary[K any] struct {
	category string
	members  []string
}

// NewVocabulary creates a vocabulary for the given query parameter category.
func NewVocabulary[K any](category string, members ...string) *Vocabulary[K] {
	return &Vocabulary[K]{
		category: category,
		members:  members,
	}
}

// Category returns the name of the filter family.
func (v *Vocabulary[K]) Category() string {
	return v.category
}

// Members returns a copy of the accepted values in declaration order.
func (v *Vocabulary[K]) Members() []string {
	return slices.Clone(v.members)
}

// Contains reports whether value is an exact member.
func (v *Vocabulary[K]) Contains(value string) bool {
	return slices.Contains(v.members, value)
}

// Parse returns the FilterValue for value, or a *ValidationError when it is not a member.
func (v *Vocabulary[K]) Parse(value string) (FilterValue[K], error) {
	if !v.Contains(value) {
		return FilterValue[K]{}, &ValidationError{
			Category: v.category,
			Value:    value,
			Accepted: v.Members(),
		}
	}

	return FilterValue[K]{value: value}, nil
}

// MustParse is like Parse but panics on a non-member. Intended for package-level values.
func (v *Vocabulary[K]) MustParse(value string) FilterValue[K] {
	fv, err := v.Parse(value)
	if err != nil {
		panic(fmt.Sprintf("connect: %v", err))
	}

	return fv
}

// FilterValue is one validated member of a Vocabulary.
// The zero value is not a member of any vocabulary and is ignored by setters.
type FilterValue[K any] struct {
	value string
}

// Value returns the canonical query value.
func (f FilterValue[K]) Value() string {
	return f.value
}

// String implements fmt.Stringer.
func (f FilterValue[K]) String() string {
	return f.value
}

// IsZero reports whether the value was not obtained from Parse.
func (f FilterValue[K]) IsZero() bool {
	return f.value == ""
}

// Marker types for each filter family.
type (
	editorialSegmentKind struct{}
	graphicalStyleKind   struct{}
	orientationKind      struct{}
	sortOrderKind        struct{}
	fileTypeKind         struct{}
	licenseModelKind     struct{}
	numberOfPeopleKind   struct{}
	ageOfPeopleKind      struct{}
	compositionKind      struct{}
)

// Filter value types accepted by the request setters.
type (
	EditorialSegment = FilterValue[editorialSegmentKind]
	GraphicalStyle   = FilterValue[graphicalStyleKind]
	Orientation      = FilterValue[orientationKind]
	SortOrder        = FilterValue[sortOrderKind]
	FileType         = FilterValue[fileTypeKind]
	LicenseModel     = FilterValue[licenseModelKind]
	NumberOfPeople   = FilterValue[numberOfPeopleKind]
	AgeOfPeople      = FilterValue[ageOfPeopleKind]
	Composition      = FilterValue[compositionKind]
)

// Vocabularies of the search filters.
var (
	EditorialSegments = NewVocabulary[editorialSegmentKind]("editorial_segments",
		"archival", "entertainment", "news", "publicity", "royalty", "sport")

	GraphicalStyles = NewVocabulary[graphicalStyleKind]("graphical_styles",
		"fine_art", "illustration", "photography", "vector")

	Orientations = NewVocabulary[orientationKind]("orientations",
		"horizontal", "panoramic_horizontal", "panoramic_vertical", "square", "vertical")

	SortOrders = NewVocabulary[sortOrderKind]("sort_order",
		"best_match", "most_popular", "newest", "oldest", "random")

	FileTypes = NewVocabulary[fileTypeKind]("file_types",
		"eps", "gif", "jpg", "png")

	LicenseModels = NewVocabulary[licenseModelKind]("license_models",
		"rightsmanaged", "royaltyfree")

	NumberOfPeopleValues = NewVocabulary[numberOfPeopleKind]("number_of_people",
		"none", "one", "two", "group")

	AgesOfPeople = NewVocabulary[ageOfPeopleKind]("age_of_people",
		"newborn", "baby", "child", "teenager", "young_adult", "adult", "adults_only",
		"mature_adult", "senior_adult", "0-1_months", "2-5_months", "6-11_months",
		"12-17_months", "18-23_months", "2-3_years", "4-5_years", "6-7_years",
		"8-9_years", "10-11_years", "12-13_years", "14-15_years", "16-17_years",
		"18-19_years", "20-24_years", "20-29_years", "25-29_years", "30-34_years",
		"30-39_years", "35-39_years", "40-44_years", "40-49_years", "45-49_years",
		"50-54_years", "50-59_years", "55-59_years", "60-64_years", "60-69_years",
		"65-69_years", "70-79_years", "80-89_years", "90_plus_years", "100_over")

	Compositions = NewVocabulary[compositionKind]("compositions",
		"abstract", "candid", "close_up", "copy_space", "cut_out", "full_frame",
		"full_length", "headshot", "looking_at_camera", "macro", "portrait",
		"sparse", "still_life", "three_quarter_length", "waist_up")
)
