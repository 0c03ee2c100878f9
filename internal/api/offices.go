package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lcabreja/psiq/internal/models"
)

// Offices lists the professional's active practice locations.
func (c *Client) Offices(ctx context.Context) ([]models.Office, error) {
	var offices []models.Office
	if err := c.get(ctx, "office/me/active", &offices); err != nil {
		return nil, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusNotFound:     "No office found.",
		})
	}
	return offices, nil
}

// CreateOffice registers a new practice location.
func (c *Client) CreateOffice(ctx context.Context, office models.Office) error {
	body := map[string]any{
		"name":    office.Name,
		"city":    office.City,
		"sector":  office.Sector,
		"address": office.Address,
		"active":  true,
	}
	err := c.send(ctx, http.MethodPost, "office/create", body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
	})
}

// UpdateOffice rewrites a practice location.
func (c *Client) UpdateOffice(ctx context.Context, officeID int, office models.Office) error {
	body := map[string]any{
		"name":    office.Name,
		"city":    office.City,
		"sector":  office.Sector,
		"address": office.Address,
		"active":  true,
	}
	path := fmt.Sprintf("office/update?id_office=%d", officeID)
	err := c.send(ctx, http.MethodPut, path, body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusNotFound:     "Office not found.",
		http.StatusForbidden:    "You do not have permission to update this office.",
	})
}
