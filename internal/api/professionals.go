package api

import (
	"context"
	"net/http"

	"github.com/lcabreja/psiq/internal/models"
)

// Me returns the signed-in professional's profile.
func (c *Client) Me(ctx context.Context) (models.Professional, error) {
	var prof models.Professional
	if err := c.get(ctx, "professional/me/info", &prof); err != nil {
		return models.Professional{}, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusNotFound:     "Professional not found.",
		})
	}
	return prof, nil
}

// UpdateMe rewrites the signed-in professional's profile.
func (c *Client) UpdateMe(ctx context.Context, prof models.Professional) error {
	body := map[string]any{
		"name":          prof.Name,
		"lastname":      prof.Lastname,
		"birthdate":     prof.Birthdate,
		"phone":         prof.Phone,
		"document_type": prof.DocumentType,
		"document":      prof.Document,
		"exequatur":     prof.Exequatur,
		"sex":           prof.Sex,
		"image":         prof.Image,
	}
	err := c.send(ctx, http.MethodPut, "professional/update", body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusNotFound:     "Professional not found.",
	})
}

// MyPatients lists the patients linked to the signed-in professional. This
// is the source of the patient selector on the appointment form.
func (c *Client) MyPatients(ctx context.Context) ([]models.PatientRef, error) {
	var patients []models.PatientRef
	if err := c.get(ctx, "professional/me/mypatients", &patients); err != nil {
		return nil, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusNotFound:     "No patient found.",
		})
	}
	return patients, nil
}

// LinkPatient attaches an existing patient account, found by email, to the
// signed-in professional.
func (c *Client) LinkPatient(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	err := c.send(ctx, http.MethodPut, "professional/new_patient", body, nil)
	err = mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
	})
	err = mapDetail(err, http.StatusNotFound, []string{
		"No user with this email found.",
		"This user is not a patient.",
	})
	return mapDetail(err, http.StatusForbidden, []string{
		"This patient already has a psychologist.",
		"This patient already has a psychiatrist.",
	})
}
