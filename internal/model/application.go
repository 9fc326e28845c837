package model

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Application is an applicant's request for one scholarship.
// At most one application exists per (ScholarshipID, UserEmail).
type Application struct {
	ID                  string    `json:"_id"`
	ScholarshipID       string    `json:"scholarshipId"`
	UserID              string    `json:"userId"`
	UserName            string    `json:"userName"`
	UserEmail           string    `json:"userEmail"`
	UniversityName      string    `json:"universityName"`
	ScholarshipCategory string    `json:"scholarshipCategory"`
	Degree              string    `json:"degree"`
	ApplicationFees     float64   `json:"applicationFees"`
	ServiceCharge       float64   `json:"serviceCharge"`
	ApplicationStatus   string    `json:"applicationStatus"`
	PaymentStatus       string    `json:"paymentStatus"`
	ApplicationDate     time.Time `json:"applicationDate"`
	Feedback            *string   `json:"feedback"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ApplicationInput is the body accepted when submitting an application.
type ApplicationInput struct {
	ScholarshipID       string   `json:"scholarshipId"`
	UserID              string   `json:"userId"`
	UserName            string   `json:"userName"`
	UserEmail           string   `json:"userEmail"`
	UniversityName      string   `json:"universityName"`
	ScholarshipCategory string   `json:"scholarshipCategory"`
	Degree              string   `json:"degree"`
	ApplicationFees     *float64 `json:"applicationFees"`
	ServiceCharge       *float64 `json:"serviceCharge"`
	PaymentStatus       string   `json:"paymentStatus"`
	Feedback            *string  `json:"feedback"`
}

// ApplicationUpdate holds every field a write may touch. Handlers fill only
// the subset their route allows.
type ApplicationUpdate struct {
	UserName            *string  `json:"userName"`
	UniversityName      *string  `json:"universityName"`
	ScholarshipCategory *string  `json:"scholarshipCategory"`
	Degree              *string  `json:"degree"`
	ApplicationFees     *float64 `json:"applicationFees"`
	ServiceCharge       *float64 `json:"serviceCharge"`
	ApplicationStatus   *string  `json:"applicationStatus"`
	PaymentStatus       *string  `json:"paymentStatus"`
	Feedback            *string  `json:"feedback"`
}

// ApplicationFilter narrows the staff application listing.
type ApplicationFilter struct {
	UserID        string
	UserEmail     string
	ScholarshipID string
	Status        string
	PaymentStatus string
}
