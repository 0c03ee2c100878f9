package cli

import (
	"strings"
	"testing"

	"github.com/lcabreja/psiq/internal/models"
)

func TestBuildAppointmentInput(t *testing.T) {
	got, err := buildAppointmentInput(4, "2026-09-15", "9:00 AM", "10:00 AM")
	if err != nil {
		t.Fatalf("buildAppointmentInput() error: %v", err)
	}

	want := models.AppointmentInput{
		PatientID:       4,
		AppointmentDate: "2026-09-15",
		StartTime:       "09:00",
		EndTime:         "10:00",
	}
	if got != want {
		t.Errorf("buildAppointmentInput() = %+v, want %+v", got, want)
	}
}

func TestBuildAppointmentInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		patient int
		date    string
		start   string
		end     string
		wantErr string
	}{
		{
			name:    "missing patient",
			date:    "2026-09-15",
			start:   "9:00 AM",
			end:     "9:30 AM",
			wantErr: "Patient is required.",
		},
		{
			name:    "missing end time",
			patient: 4,
			date:    "2026-09-15",
			start:   "9:00 AM",
			wantErr: "End time is required.",
		},
		{
			name:    "malformed start",
			patient: 4,
			date:    "2026-09-15",
			start:   "9am",
			end:     "9:30 AM",
			wantErr: "invalid start time",
		},
		{
			name:    "end not among offered slots",
			patient: 4,
			date:    "2026-09-15",
			start:   "9:00 AM",
			end:     "12:00 PM",
			wantErr: "invalid end time",
		},
		{
			name:    "end before start",
			patient: 4,
			date:    "2026-09-15",
			start:   "2:00 PM",
			end:     "1:00 PM",
			wantErr: "invalid end time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildAppointmentInput(tt.patient, tt.date, tt.start, tt.end)
			if err == nil {
				t.Fatal("buildAppointmentInput() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildAppointmentInputLateStart(t *testing.T) {
	// End times past clinic close are accepted when the backend offers
	// them for a late start.
	got, err := buildAppointmentInput(4, "2026-09-15", "4:30 PM", "6:30 PM")
	if err != nil {
		t.Fatalf("buildAppointmentInput() error: %v", err)
	}
	if got.EndTime != "18:30" {
		t.Errorf("EndTime = %q, want %q", got.EndTime, "18:30")
	}
}
