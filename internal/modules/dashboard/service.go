package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"petbnb/internal/domain"
	"petbnb/internal/gateway"
)

// Service assembles role-specific dashboards from independent upstream
// calls. It is stateless per call; every fetch builds the model from
// scratch and no slice failure aborts the others.
type Service struct {
	gw           Gateway
	log          *zap.Logger
	historyLimit int
}

func NewService(gw Gateway, log *zap.Logger, historyLimit int) *Service {
	if historyLimit <= 0 {
		historyLimit = 5
	}
	return &Service{gw: gw, log: log, historyLimit: historyLimit}
}

// GetOwnerDashboard fans out to stats, upcoming bookings, recent history
// and pets concurrently and waits for all of them to settle. A failed slice
// is replaced by its zero value; the first failure (in slice order) becomes
// the model's Error message. The result is never nil.
func (s *Service) GetOwnerDashboard(ctx context.Context, token, userID string) *OwnerDashboard {
	s.log.Debug("loading pet owner dashboard", zap.String("user_id", userID))

	var (
		stats    *domain.OwnerStats
		upcoming []domain.Booking
		recent   []domain.Booking
		pets     []domain.Pet
	)
	names := [...]string{"stats", "upcoming_bookings", "recent_bookings", "pets"}
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	go func() { defer wg.Done(); stats, errs[0] = s.gw.OwnerStats(ctx, token) }()
	go func() { defer wg.Done(); upcoming, errs[1] = s.gw.UpcomingBookings(ctx, token) }()
	go func() { defer wg.Done(); recent, errs[2] = s.gw.BookingHistory(ctx, token, s.historyLimit) }()
	go func() { defer wg.Done(); pets, errs[3] = s.gw.Pets(ctx, token) }()
	wg.Wait()

	now := time.Now()
	model := &OwnerDashboard{
		UpcomingBookings: formatBookings(upcoming, domain.RolePetOwner, now),
		RecentBookings:   formatBookings(capBookings(recent, s.historyLimit), domain.RolePetOwner, now),
		Pets:             pets,
		Error:            s.firstFailure(userID, names[:], errs),
	}
	if stats != nil {
		model.Stats = *stats
	}
	if model.Pets == nil {
		model.Pets = []domain.Pet{}
	}
	return model
}

// GetCaregiverDashboard is the caregiver counterpart: stats, earnings,
// today's bookings, upcoming bookings and the caregiver's own listings.
func (s *Service) GetCaregiverDashboard(ctx context.Context, token, userID string) *CaregiverDashboard {
	s.log.Debug("loading caregiver dashboard", zap.String("user_id", userID))

	var (
		stats    *domain.CaregiverStats
		earnings *domain.Earnings
		today    []domain.Booking
		upcoming []domain.Booking
		services []domain.Service
	)
	names := [...]string{"stats", "earnings", "today_bookings", "upcoming_bookings", "services"}
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	go func() { defer wg.Done(); stats, errs[0] = s.gw.CaregiverStats(ctx, token) }()
	go func() { defer wg.Done(); earnings, errs[1] = s.gw.CaregiverEarnings(ctx, token) }()
	go func() { defer wg.Done(); today, errs[2] = s.gw.TodayBookings(ctx, token) }()
	go func() { defer wg.Done(); upcoming, errs[3] = s.gw.UpcomingBookings(ctx, token) }()
	go func() { defer wg.Done(); services, errs[4] = s.gw.CaregiverServices(ctx, token) }()
	wg.Wait()

	now := time.Now()
	model := &CaregiverDashboard{
		TodayBookings:    formatBookings(today, domain.RoleCaregiver, now),
		UpcomingBookings: formatBookings(upcoming, domain.RoleCaregiver, now),
		Services:         services,
		Error:            s.firstFailure(userID, names[:], errs),
	}
	if stats != nil {
		model.Stats = *stats
	}
	if earnings != nil {
		model.Earnings = *earnings
	}
	if model.Services == nil {
		model.Services = []domain.Service{}
	}
	return model
}

// firstFailure logs every failed slice and returns the user-facing message
// of the first one, in fixed slice order so the result is deterministic
// regardless of which request finished last.
func (s *Service) firstFailure(userID string, names []string, errs []error) string {
	msg := ""
	for i, err := range errs {
		if err == nil {
			continue
		}
		s.log.Warn("dashboard slice failed",
			zap.String("user_id", userID),
			zap.String("slice", names[i]),
			zap.Error(err))
		if msg == "" {
			msg = gateway.UserMessage(err)
		}
	}
	return msg
}

func capBookings(bookings []domain.Booking, limit int) []domain.Booking {
	if len(bookings) > limit {
		return bookings[:limit]
	}
	return bookings
}
