package model

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left by an applicant for a scholarship.
type Review struct {
	ID             string    `json:"_id"`
	ScholarshipID  string    `json:"scholarshipId"`
	UniversityName string    `json:"universityName"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	UserImage      string    `json:"userImage"`
	RatingPoint    int       `json:"ratingPoint"`
	ReviewComment  string    `json:"reviewComment"`
	ReviewDate     time.Time `json:"reviewDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReviewInput is the body accepted when posting a review.
type ReviewInput struct {
	ScholarshipID  string `json:"scholarshipId"`
	UniversityName string `json:"universityName"`
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	UserImage      string `json:"userImage"`
	RatingPoint    *int   `json:"ratingPoint"`
	ReviewComment  string `json:"reviewComment"`
}

// ReviewUpdate holds the fields a PUT may change.
type ReviewUpdate struct {
	RatingPoint   *int    `json:"ratingPoint"`
	ReviewComment *string `json:"reviewComment"`
	UserImage     *string `json:"userImage"`
}

// ReviewFilter narrows the public review listing.
type ReviewFilter struct {
	ScholarshipID  string
	UniversityName string
	MinRating      int
	UserEmail      string
}
