package model

import "time"

// Scholarship is a funding offer posted by an admin or moderator.
type Scholarship struct {
	ID                  string    `json:"_id"`
	ScholarshipName     string    `json:"scholarshipName"`
	UniversityName      string    `json:"universityName"`
	UniversityImage     string    `json:"universityImage"`
	UniversityCountry   string    `json:"universityCountry"`
	UniversityCity      string    `json:"universityCity"`
	UniversityWorldRank int       `json:"universityWorldRank"`
	SubjectCategory     string    `json:"subjectCategory"`
	ScholarshipCategory string    `json:"scholarshipCategory"`
	Degree              string    `json:"degree"`
	TuitionFees         *float64  `json:"tuitionFees"`
	ApplicationFees     float64   `json:"applicationFees"`
	ServiceCharge       float64   `json:"serviceCharge"`
	ApplicationDeadline string    `json:"applicationDeadline"`
	ScholarshipPostDate time.Time `json:"scholarshipPostDate"`
	PostedUserEmail     string    `json:"postedUserEmail"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ScholarshipInput is the body accepted when creating a scholarship.
// Numeric fields are pointers so that absence can be told apart from zero.
type ScholarshipInput struct {
	ScholarshipName     string   `json:"scholarshipName"`
	UniversityName      string   `json:"universityName"`
	UniversityImage     string   `json:"universityImage"`
	UniversityCountry   string   `json:"universityCountry"`
	UniversityCity      string   `json:"universityCity"`
	UniversityWorldRank *int     `json:"universityWorldRank"`
	SubjectCategory     string   `json:"subjectCategory"`
	ScholarshipCategory string   `json:"scholarshipCategory"`
	Degree              string   `json:"degree"`
	TuitionFees         *float64 `json:"tuitionFees"`
	ApplicationFees     *float64 `json:"applicationFees"`
	ServiceCharge       *float64 `json:"serviceCharge"`
	ApplicationDeadline string   `json:"applicationDeadline"`
	PostedUserEmail     string   `json:"postedUserEmail"`
}

// ScholarshipUpdate holds the fields a PUT may change.
type ScholarshipUpdate struct {
	ScholarshipName     *string  `json:"scholarshipName"`
	UniversityName      *string  `json:"universityName"`
	UniversityImage     *string  `json:"universityImage"`
	UniversityCountry   *string  `json:"universityCountry"`
	UniversityCity      *string  `json:"universityCity"`
	UniversityWorldRank *int     `json:"universityWorldRank"`
	SubjectCategory     *string  `json:"subjectCategory"`
	ScholarshipCategory *string  `json:"scholarshipCategory"`
	Degree              *string  `json:"degree"`
	TuitionFees         *float64 `json:"tuitionFees"`
	ApplicationFees     *float64 `json:"applicationFees"`
	ServiceCharge       *float64 `json:"serviceCharge"`
	ApplicationDeadline *string  `json:"applicationDeadline"`
}

// ScholarshipSort names an ordering accepted by the search endpoint.
type ScholarshipSort string

const (
	SortDefault  ScholarshipSort = ""
	SortFeesAsc  ScholarshipSort = "fees_asc"
	SortFeesDesc ScholarshipSort = "fees_desc"
	SortDateAsc  ScholarshipSort = "date_asc"
	SortDateDesc ScholarshipSort = "date_desc"
)

// Valid reports whether s is a supported ordering.
func (s ScholarshipSort) Valid() bool {
	switch s {
	case SortDefault, SortFeesAsc, SortFeesDesc, SortDateAsc, SortDateDesc:
		return true
	}
	return false
}

// ScholarshipFilter narrows the public scholarship listing.
type ScholarshipFilter struct {
	Search   string
	Country  string
	Category string
	Degree   string
	Sort     ScholarshipSort
	Limit    int
	Offset   int
}
