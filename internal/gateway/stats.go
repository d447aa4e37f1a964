package gateway

import (
	"context"
	"net/http"

	"petbnb/internal/domain"
)

// OwnerStats returns the pet-owner dashboard counters.
func (c *Client) OwnerStats(ctx context.Context, token string) (*domain.OwnerStats, error) {
	var out domain.OwnerStats
	if err := c.do(ctx, token, http.MethodGet, "/api/stats/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CaregiverStats returns the caregiver dashboard counters.
func (c *Client) CaregiverStats(ctx context.Context, token string) (*domain.CaregiverStats, error) {
	var out domain.CaregiverStats
	if err := c.do(ctx, token, http.MethodGet, "/api/stats/caregiver", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CaregiverEarnings returns the caregiver payout summary.
func (c *Client) CaregiverEarnings(ctx context.Context, token string) (*domain.Earnings, error) {
	var out domain.Earnings
	if err := c.do(ctx, token, http.MethodGet, "/api/stats/caregiver/earnings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
