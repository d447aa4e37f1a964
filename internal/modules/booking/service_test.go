package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"petbnb/internal/domain"
	"petbnb/internal/gateway"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetBookingDetails(ctx context.Context, token, bookingID string) (*gateway.BookingDetails, error) {
	args := m.Called(ctx, token, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.BookingDetails), args.Error(1)
}

func (m *MockGateway) UpdateBookingStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, token, bookingID, status, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) BookingChanged(bookingID string, status domain.BookingStatus, userIDs ...string) {
	m.Called(bookingID, status, userIDs)
}

func TestService_ValidTransitionsSendTargetStatus(t *testing.T) {
	cases := []struct {
		name    string
		current domain.BookingStatus
		actor   domain.Role
		target  domain.BookingStatus
		run     func(s *Service) ActionResult
	}{
		{"accept", domain.BookingPending, domain.RoleCaregiver, domain.BookingConfirmed,
			func(s *Service) ActionResult {
				return s.Accept(context.Background(), "tok", domain.RoleCaregiver, "b1", domain.BookingPending)
			}},
		{"decline", domain.BookingPending, domain.RoleCaregiver, domain.BookingRejected,
			func(s *Service) ActionResult {
				return s.Decline(context.Background(), "tok", domain.RoleCaregiver, "b1", domain.BookingPending, "double booked")
			}},
		{"cancel", domain.BookingPending, domain.RolePetOwner, domain.BookingCancelled,
			func(s *Service) ActionResult {
				return s.Cancel(context.Background(), "tok", domain.RolePetOwner, "b1", domain.BookingPending, "plans changed")
			}},
		{"start", domain.BookingConfirmed, domain.RoleCaregiver, domain.BookingInProgress,
			func(s *Service) ActionResult {
				return s.Start(context.Background(), "tok", domain.RoleCaregiver, "b1", domain.BookingConfirmed)
			}},
		{"complete", domain.BookingInProgress, domain.RoleCaregiver, domain.BookingCompleted,
			func(s *Service) ActionResult {
				return s.Complete(context.Background(), "tok", domain.RoleCaregiver, "b1", domain.BookingInProgress)
			}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := new(MockGateway)
			updated := &domain.Booking{ID: "b1", Status: tc.target, OwnerID: "u1", CaregiverID: "u2"}
			gw.On("UpdateBookingStatus", mock.Anything, "tok", "b1", tc.target, mock.Anything).Return(updated, nil)

			events := new(MockEvents)
			events.On("BookingChanged", "b1", tc.target, []string{"u1", "u2"}).Return()

			service := NewService(gw, events, zap.NewNop())
			result := tc.run(service)

			assert.True(t, result.Success)
			require.NotNil(t, result.Booking)
			assert.Equal(t, tc.target, result.Booking.Status)
			assert.Nil(t, result.Error)
			gw.AssertExpectations(t)
			events.AssertExpectations(t)
		})
	}
}

func TestService_PreconditionFailureMakesNoUpstreamCall(t *testing.T) {
	cases := []struct {
		name    string
		current domain.BookingStatus
		actor   domain.Role
		run     func(s *Service, current domain.BookingStatus) ActionResult
	}{
		{"owner cannot accept", domain.BookingPending, domain.RolePetOwner,
			func(s *Service, cur domain.BookingStatus) ActionResult {
				return s.Accept(context.Background(), "tok", domain.RolePetOwner, "b1", cur)
			}},
		{"accept after confirm", domain.BookingConfirmed, domain.RoleCaregiver,
			func(s *Service, cur domain.BookingStatus) ActionResult {
				return s.Accept(context.Background(), "tok", domain.RoleCaregiver, "b1", cur)
			}},
		{"start before confirm", domain.BookingPending, domain.RoleCaregiver,
			func(s *Service, cur domain.BookingStatus) ActionResult {
				return s.Start(context.Background(), "tok", domain.RoleCaregiver, "b1", cur)
			}},
		{"cancel in progress", domain.BookingInProgress, domain.RolePetOwner,
			func(s *Service, cur domain.BookingStatus) ActionResult {
				return s.Cancel(context.Background(), "tok", domain.RolePetOwner, "b1", cur, "")
			}},
		{"complete completed", domain.BookingCompleted, domain.RoleCaregiver,
			func(s *Service, cur domain.BookingStatus) ActionResult {
				return s.Complete(context.Background(), "tok", domain.RoleCaregiver, "b1", cur)
			}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := new(MockGateway)
			events := new(MockEvents)
			service := NewService(gw, events, zap.NewNop())

			result := tc.run(service, tc.current)

			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
			assert.Equal(t, KindPrecondition, result.Error.Kind)
			assert.Empty(t, gw.Calls, "no upstream call may be made on a precondition failure")
			assert.Empty(t, events.Calls)
		})
	}
}

func TestService_DeclineCarriesReason(t *testing.T) {
	gw := new(MockGateway)
	updated := &domain.Booking{ID: "b1", Status: domain.BookingRejected}
	gw.On("UpdateBookingStatus", mock.Anything, "tok", "b1", domain.BookingRejected, "fully booked that week").Return(updated, nil)

	service := NewService(gw, nil, zap.NewNop())
	result := service.Decline(context.Background(), "tok", domain.RoleCaregiver, "b1", domain.BookingPending, "fully booked that week")

	assert.True(t, result.Success)
	gw.AssertExpectations(t)
}

func TestService_UpstreamAuthFailure(t *testing.T) {
	gw := new(MockGateway)
	gw.On("UpdateBookingStatus", mock.Anything, "tok", "b1", domain.BookingConfirmed, "").
		Return(nil, &gateway.Error{Kind: gateway.KindAuth, Status: 401})

	events := new(MockEvents)
	service := NewService(gw, events, zap.NewNop())
	result := service.Accept(context.Background(), "tok", domain.RoleCaregiver, "b1", domain.BookingPending)

	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, string(gateway.KindAuth), result.Error.Kind)
	assert.Equal(t, "Session expired. Please login again.", result.Error.Message)
	assert.Nil(t, result.Booking)
	assert.Empty(t, events.Calls)
}

func TestService_GetDetails_DerivesAllowedActions(t *testing.T) {
	gw := new(MockGateway)
	details := &gateway.BookingDetails{
		Booking: domain.Booking{
			ID:            "b1",
			Status:        domain.BookingPending,
			Service:       &domain.Service{Title: "Cat Sitting"},
			StartDatetime: time.Now().Add(time.Hour),
			EndDatetime:   time.Now().Add(2 * time.Hour),
		},
		ViewerRole: domain.RoleCaregiver,
		ThreadID:   "t9",
	}
	gw.On("GetBookingDetails", mock.Anything, "tok", "b1").Return(details, nil)

	service := NewService(gw, nil, zap.NewNop())
	view, err := service.GetDetails(context.Background(), "tok", domain.RoleCaregiver, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, view.Status)
	assert.Equal(t, "t9", view.ThreadID)
	assert.Equal(t, []domain.Action{domain.ActionAccept, domain.ActionDecline}, view.Actions)
	assert.Equal(t, "Cat Sitting", view.Booking.Service)
	assert.Nil(t, view.Booking.Caregiver)
}

func TestService_GetDetails_NotFound(t *testing.T) {
	gw := new(MockGateway)
	gw.On("GetBookingDetails", mock.Anything, "tok", "nope").
		Return(nil, &gateway.Error{Kind: gateway.KindNotFound, Status: 404})

	service := NewService(gw, nil, zap.NewNop())
	_, err := service.GetDetails(context.Background(), "tok", domain.RolePetOwner, "nope")

	require.Error(t, err)
	assert.Equal(t, gateway.KindNotFound, gateway.KindOf(err))
}

func TestService_ActionWithoutStatusFetchesItFirst(t *testing.T) {
	gw := new(MockGateway)
	details := &gateway.BookingDetails{
		Booking: domain.Booking{ID: "b1", Status: domain.BookingPending},
	}
	gw.On("GetBookingDetails", mock.Anything, "tok", "b1").Return(details, nil)
	updated := &domain.Booking{ID: "b1", Status: domain.BookingConfirmed, OwnerID: "u1", CaregiverID: "u2"}
	gw.On("UpdateBookingStatus", mock.Anything, "tok", "b1", domain.BookingConfirmed, "").Return(updated, nil)

	events := new(MockEvents)
	events.On("BookingChanged", "b1", domain.BookingConfirmed, []string{"u1", "u2"}).Return()

	service := NewService(gw, events, zap.NewNop())
	result := service.Accept(context.Background(), "tok", domain.RoleCaregiver, "b1", "")

	assert.True(t, result.Success)
	require.NotNil(t, result.Booking)
	assert.Equal(t, domain.BookingConfirmed, result.Booking.Status)
	gw.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_ActionWithoutStatusStopsAtGuardOnFetchedState(t *testing.T) {
	gw := new(MockGateway)
	details := &gateway.BookingDetails{
		Booking: domain.Booking{ID: "b1", Status: domain.BookingCompleted},
	}
	gw.On("GetBookingDetails", mock.Anything, "tok", "b1").Return(details, nil)

	service := NewService(gw, nil, zap.NewNop())
	result := service.Accept(context.Background(), "tok", domain.RoleCaregiver, "b1", "")

	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, KindPrecondition, result.Error.Kind)
	// The lookup is the only upstream call; the guard blocks the update.
	require.Len(t, gw.Calls, 1)
	assert.Equal(t, "GetBookingDetails", gw.Calls[0].Method)
}

func TestService_ActionWithoutStatusFetchFailure(t *testing.T) {
	gw := new(MockGateway)
	gw.On("GetBookingDetails", mock.Anything, "tok", "nope").
		Return(nil, &gateway.Error{Kind: gateway.KindNotFound, Status: 404})

	service := NewService(gw, nil, zap.NewNop())
	result := service.Cancel(context.Background(), "tok", domain.RolePetOwner, "nope", "", "")

	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, string(gateway.KindNotFound), result.Error.Kind)
	assert.Nil(t, result.Booking)
}
