package dashboard

import (
	"context"

	"petbnb/internal/domain"
)

// Gateway is the slice of the upstream client the dashboard service needs.
type Gateway interface {
	OwnerStats(ctx context.Context, token string) (*domain.OwnerStats, error)
	CaregiverStats(ctx context.Context, token string) (*domain.CaregiverStats, error)
	CaregiverEarnings(ctx context.Context, token string) (*domain.Earnings, error)
	UpcomingBookings(ctx context.Context, token string) ([]domain.Booking, error)
	TodayBookings(ctx context.Context, token string) ([]domain.Booking, error)
	BookingHistory(ctx context.Context, token string, limit int) ([]domain.Booking, error)
	Pets(ctx context.Context, token string) ([]domain.Pet, error)
	CaregiverServices(ctx context.Context, token string) ([]domain.Service, error)
}
