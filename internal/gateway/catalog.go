package gateway

import (
	"context"
	"net/http"

	"petbnb/internal/domain"
)

// Pets returns the pet owner's pets.
func (c *Client) Pets(ctx context.Context, token string) ([]domain.Pet, error) {
	var env listEnvelope[domain.Pet]
	if err := c.do(ctx, token, http.MethodGet, "/api/pets", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CaregiverServices returns the caregiver's own service listings.
func (c *Client) CaregiverServices(ctx context.Context, token string) ([]domain.Service, error) {
	var env listEnvelope[domain.Service]
	if err := c.do(ctx, token, http.MethodGet, "/api/caregiver/services", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
