package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lcabreja/psiq/internal/models"
)

// Patient returns the full record for one of the professional's patients.
func (c *Client) Patient(ctx context.Context, patientID int) (models.Patient, error) {
	var patient models.Patient
	if err := c.get(ctx, fmt.Sprintf("patient/%d", patientID), &patient); err != nil {
		return models.Patient{}, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusNotFound:     "No patient found.",
			http.StatusForbidden:    "You cannot access this patient.",
		})
	}
	return patient, nil
}

// UpdatePatientAllergies replaces a patient's recorded allergies.
func (c *Client) UpdatePatientAllergies(ctx context.Context, patientID int, allergies string) error {
	body := map[string]string{"allergies": allergies}
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("patient/edit-allergies/%d", patientID), body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusForbidden:    "You are not authorized to edit this patient's allergies.",
	})
}

// UpdatePatientCondition replaces a patient's recorded condition.
func (c *Client) UpdatePatientCondition(ctx context.Context, patientID int, condition string) error {
	body := map[string]string{"condition": condition}
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("patient/edit-condition/%d", patientID), body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusForbidden:    "You are not authorized to edit this patient's conditions.",
	})
}
