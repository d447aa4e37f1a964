package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingRejected   BookingStatus = "rejected"
)

// Terminal reports whether the status can never change again.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingCompleted, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress,
		BookingCompleted, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

type Role string

const (
	RolePetOwner  Role = "pet_owner"
	RoleCaregiver Role = "caregiver"
)

// Booking mirrors the upstream core API booking resource. The backend owns
// the entity; this service only reads it and requests status transitions.
type Booking struct {
	ID             string        `json:"id"`
	Status         BookingStatus `json:"booking_status"`
	OwnerID        string        `json:"owner_id"`
	CaregiverID    string        `json:"caregiver_id"`
	Service        *Service      `json:"caregiver_services,omitempty"`
	ServiceName    string        `json:"service_name,omitempty"`
	Owner          *UserRef      `json:"users,omitempty"`
	Caregiver      *CaregiverRef `json:"caregiver_profiles,omitempty"`
	Pets           PetList       `json:"pets"`
	StartDatetime  time.Time     `json:"start_datetime"`
	EndDatetime    time.Time     `json:"end_datetime"`
	TotalAmount    float64       `json:"total_amount"`
	Location       string        `json:"location,omitempty"`
	PaymentStatus  PaymentStatus `json:"payment_status,omitempty"`
	SpecialReqs    string        `json:"special_requirements,omitempty"`
	EmergencyPhone string        `json:"emergency_contact,omitempty"`
	Rating         float64       `json:"rating,omitempty"`
	ReviewText     string        `json:"review_text,omitempty"`
}

// Service is the listing a booking was made against.
type Service struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ServiceType string  `json:"service_type,omitempty"`
	IsActive    bool    `json:"is_active,omitempty"`
}

// UserRef is the embedded owner-side participant shape.
type UserRef struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// CaregiverRef is the embedded caregiver-side participant shape.
type CaregiverRef struct {
	Rating float64  `json:"rating"`
	User   *UserRef `json:"users,omitempty"`
}
