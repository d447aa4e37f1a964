package domain

// OwnerStats is the pet-owner dashboard summary. Zero value doubles as the
// fallback when the stats endpoint fails.
type OwnerStats struct {
	TotalBookings      int     `json:"total_bookings"`
	ActivePets         int     `json:"active_pets"`
	UpcomingServices   int     `json:"upcoming_services"`
	TotalSpent         float64 `json:"total_spent"`
	AverageRating      float64 `json:"average_rating"`
	CompletedBookings  int     `json:"completed_bookings"`
	FavoriteCaregivers int     `json:"favorite_caregivers"`
}

// CaregiverStats is the caregiver dashboard summary.
type CaregiverStats struct {
	AverageRating     float64 `json:"average_rating"`
	TotalBookings     int     `json:"total_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalReviews      int     `json:"total_reviews"`
	ResponseRate      float64 `json:"response_rate"`
	AcceptanceRate    float64 `json:"acceptance_rate"`
	ActiveServices    int     `json:"active_services"`
}

// Earnings is the caregiver payout summary.
type Earnings struct {
	CurrentMonth     float64 `json:"current_month_earnings"`
	LastMonth        float64 `json:"last_month_earnings"`
	CurrentWeek      float64 `json:"current_week_earnings"`
	Total            float64 `json:"total_earnings"`
	PendingPayouts   float64 `json:"pending_payouts"`
	CompletedPayouts float64 `json:"completed_payouts"`
}
