package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lcabreja/psiq/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	c.SetToken("test-token")
	return c
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	})

	if _, err := c.Appointments(context.Background()); err != nil {
		t.Fatalf("Appointments() error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-token")
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestAppointments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/appointment/professional/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.Appointment{
			{ID: 7, PatientID: 4, AppointmentDate: "2026-09-15", StartTime: "09:00", EndTime: "10:00", PatientName: "Ana", PatientLastname: "Reyes"},
		})
	})

	appts, err := c.Appointments(context.Background())
	if err != nil {
		t.Fatalf("Appointments() error: %v", err)
	}
	if len(appts) != 1 || appts[0].ID != 7 || appts[0].StartTime != "09:00" {
		t.Errorf("Appointments() = %+v", appts)
	}
}

func TestAppointmentsErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantMsg string
	}{
		{http.StatusUnauthorized, "You cannot access this functionality."},
		{http.StatusNotFound, "No appointments found."},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := c.Appointments(context.Background())
		if err == nil || err.Error() != tt.wantMsg {
			t.Errorf("status %d: error = %v, want %q", tt.status, err, tt.wantMsg)
		}
	}
}

func TestCreateAppointmentErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantMsg string
	}{
		{"conflict reported as 500", http.StatusInternalServerError, "There's already an appointment for this day and time."},
		{"unauthenticated", http.StatusUnauthorized, "You cannot access this functionality."},
		{"not my patient", http.StatusForbidden, "You are not authorized to create an appointment for this patient."},
	}

	input := models.AppointmentInput{
		PatientID:       4,
		AppointmentDate: "2026-09-15",
		StartTime:       "09:00",
		EndTime:         "10:00",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			err := c.CreateAppointment(context.Background(), input)
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCreateAppointmentBody(t *testing.T) {
	var got models.AppointmentInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/appointment/create" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte("{}"))
	})

	input := models.AppointmentInput{PatientID: 4, AppointmentDate: "2026-09-15", StartTime: "09:00", EndTime: "09:30"}
	if err := c.CreateAppointment(context.Background(), input); err != nil {
		t.Fatalf("CreateAppointment() error: %v", err)
	}
	if got != input {
		t.Errorf("request body = %+v, want %+v", got, input)
	}
}

func TestUpdateAppointmentDetailMapping(t *testing.T) {
	tests := []struct {
		name    string
		detail  string
		wantMsg string
		wantRaw bool
	}{
		{
			name:    "not the owner",
			detail:  "You are not authorized to update this appointment.",
			wantMsg: "You are not authorized to update this appointment.",
		},
		{
			name:    "patient not linked",
			detail:  "You are not authorized to assign this appointment to the specified patient.",
			wantMsg: "You are not authorized to assign this appointment to the specified patient.",
		},
		{
			name:    "unknown detail passes through",
			detail:  "something else",
			wantRaw: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"detail": tt.detail})
			})
			err := c.UpdateAppointment(context.Background(), 7, models.AppointmentInput{})
			if tt.wantRaw {
				var se *StatusError
				if !errors.As(err, &se) || se.Code != http.StatusForbidden {
					t.Fatalf("error = %v, want StatusError 403", err)
				}
				if se.Detail != tt.detail {
					t.Errorf("Detail = %q, want %q", se.Detail, tt.detail)
				}
				return
			}
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDeleteAppointmentErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantMsg string
	}{
		{http.StatusUnauthorized, "Error deleting appointment"},
		{http.StatusNotFound, "Appointment not found."},
		{http.StatusForbidden, "You are not authorized to delete this appointment."},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("method = %s, want DELETE", r.Method)
			}
			w.WriteHeader(tt.status)
		})
		err := c.DeleteAppointment(context.Background(), 7)
		if err == nil || err.Error() != tt.wantMsg {
			t.Errorf("status %d: error = %v, want %q", tt.status, err, tt.wantMsg)
		}
	}
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/usuarios/token/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		r.ParseForm()
		if r.PostForm.Get("username") != "doc@clinic.test" || r.PostForm.Get("password") != "hunter2" {
			t.Errorf("credentials = %v", r.PostForm)
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	})

	token, err := c.Login(context.Background(), "doc@clinic.test", "hunter2")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("token = %q, want %q", token, "tok-123")
	}
}

func TestLoginRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "doc@clinic.test", "wrong")
	if err == nil || err.Error() != "Incorrect username or password" {
		t.Errorf("error = %v, want %q", err, "Incorrect username or password")
	}
}

func TestUnmappedStatusPassesThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"detail": "upstream down"})
	})

	_, err := c.Appointments(context.Background())
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if se.Code != http.StatusBadGateway || se.Detail != "upstream down" {
		t.Errorf("StatusError = %+v", se)
	}
	if se.Error() != "request failed with status code 502" {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestMyPatients(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/professional/me/mypatients" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.PatientRef{
			{ID: 4, Name: "Ana", Lastname: "Reyes"},
			{ID: 9, Name: "Luis", Lastname: "Mota"},
		})
	})

	patients, err := c.MyPatients(context.Background())
	if err != nil {
		t.Fatalf("MyPatients() error: %v", err)
	}
	if len(patients) != 2 || patients[1].Name != "Luis" {
		t.Errorf("MyPatients() = %+v", patients)
	}
}

func TestTaskCompletionErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantMsg string
	}{
		{http.StatusForbidden, "This patient does not exist or does not belong to you."},
		{http.StatusNotFound, "No tasks found for the given criteria."},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		_, err := c.TaskCompletion(context.Background(), 4, "2026-09-01", "2026-09-15")
		if err == nil || err.Error() != tt.wantMsg {
			t.Errorf("status %d: error = %v, want %q", tt.status, err, tt.wantMsg)
		}
	}
}
