package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lcabreja/psiq/internal/models"
)

// Prescriptions lists a patient's prescriptions.
func (c *Client) Prescriptions(ctx context.Context, patientID int) ([]models.Prescription, error) {
	var scripts []models.Prescription
	if err := c.get(ctx, fmt.Sprintf("prescription/patient/%d", patientID), &scripts); err != nil {
		return nil, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusNotFound:     "No patient found.",
			http.StatusForbidden:    "You are not this patient's psychiatrist.",
		})
	}
	return scripts, nil
}

// CreatePrescription opens a new prescription for a patient.
func (c *Client) CreatePrescription(ctx context.Context, patientID, psychiatristID int, notes string) error {
	body := map[string]any{
		"id_patient":      patientID,
		"id_psychiatrist": psychiatristID,
		"notes":           notes,
	}
	err := c.send(ctx, http.MethodPost, "prescription/create", body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusForbidden:    "You cannot create a prescription with another patient.",
	})
}

// UpdatePrescription rewrites a prescription's notes.
func (c *Client) UpdatePrescription(ctx context.Context, prescriptionID int, notes string) error {
	body := map[string]string{"notes": notes}
	path := fmt.Sprintf("prescription/update?id_prescription=%d", prescriptionID)
	err := c.send(ctx, http.MethodPut, path, body, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusNotFound:     "Prescription not found.",
		http.StatusForbidden:    "You cannot update this prescription.",
	})
}

// ActivatePrescription reactivates a disabled prescription.
func (c *Client) ActivatePrescription(ctx context.Context, prescriptionID int) error {
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("prescription/update/active/%d", prescriptionID), map[string]any{}, nil)
	err = mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusForbidden:    "This prescription is already active.",
	})
	return mapDetail(err, http.StatusNotFound, []string{
		"You cannot access this prescription or prescription does not exist.",
		"This medication does not exist in this prescription.",
	})
}

// DisablePrescription deactivates a prescription.
func (c *Client) DisablePrescription(ctx context.Context, prescriptionID int) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("prescription/delete/%d", prescriptionID), nil, "", nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusNotFound:     "This prescription does not exist.",
		http.StatusForbidden:    "You cannot delete this prescription.",
	})
}
