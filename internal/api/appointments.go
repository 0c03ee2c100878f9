package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lcabreja/psiq/internal/models"
)

// Appointments lists every appointment on the signed-in professional's
// calendar.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.get(ctx, "appointment/professional/", &appts); err != nil {
		return nil, mapStatus(err, map[int]string{
			http.StatusUnauthorized: "You cannot access this functionality.",
			http.StatusNotFound:     "No appointments found.",
		})
	}
	return appts, nil
}

// CreateAppointment books a new appointment. The backend owns conflict
// detection and reports an overlapping booking as a 500.
func (c *Client) CreateAppointment(ctx context.Context, in models.AppointmentInput) error {
	err := c.send(ctx, http.MethodPost, "appointment/create", in, nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized:        "You cannot access this functionality.",
		http.StatusForbidden:           "You are not authorized to create an appointment for this patient.",
		http.StatusInternalServerError: "There's already an appointment for this day and time.",
	})
}

// UpdateAppointment rewrites an existing appointment's tuple. A 403 means
// two different things depending on the backend's detail, so only the known
// details are surfaced.
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID int, in models.AppointmentInput) error {
	path := fmt.Sprintf("appointment/update?appointment_id=%d", appointmentID)
	err := c.send(ctx, http.MethodPut, path, in, nil)
	err = mapStatus(err, map[int]string{
		http.StatusUnauthorized: "You cannot access this functionality.",
		http.StatusNotFound:     "Appointment not found.",
	})
	return mapDetail(err, http.StatusForbidden, []string{
		"You are not authorized to update this appointment.",
		"You are not authorized to assign this appointment to the specified patient.",
	})
}

// DeleteAppointment removes an appointment from the calendar.
func (c *Client) DeleteAppointment(ctx context.Context, appointmentID int) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("appointment/delete/%d", appointmentID), nil, "", nil)
	return mapStatus(err, map[int]string{
		http.StatusUnauthorized: "Error deleting appointment",
		http.StatusNotFound:     "Appointment not found.",
		http.StatusForbidden:    "You are not authorized to delete this appointment.",
	})
}
