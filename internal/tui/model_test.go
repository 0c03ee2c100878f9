package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/models"
	"github.com/lcabreja/psiq/internal/session"
	"github.com/lcabreja/psiq/internal/tui/components/calendar"
)

func newTestModel() Model {
	return NewModel(api.New("http://localhost:8000"), nil, &session.Session{})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func deleteMsg(id int) calendar.DeleteAppointmentMsg {
	return calendar.DeleteAppointmentMsg{ID: id}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func TestViewCycle(t *testing.T) {
	order := []constants.SessionState{
		constants.StateCalendar,
		constants.StatePatients,
		constants.StateReports,
		constants.StateSettings,
		constants.StateCalendar,
	}

	m := newTestModel()
	for i := 1; i < len(order); i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.state != order[i] {
			t.Fatalf("after %d tabs state = %v, want %v", i, m.state, order[i])
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != constants.StateSettings {
		t.Errorf("shift+tab from Calendar = %v, want Settings", m.state)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, deleteMsg(7))
	if m.state != constants.StateConfirmDelete {
		t.Fatalf("state = %v, want ConfirmDelete", m.state)
	}
	if m.appointmentToDeleteID != 7 {
		t.Errorf("appointmentToDeleteID = %d, want 7", m.appointmentToDeleteID)
	}

	// Declining returns to the calendar without touching anything.
	m, cmd := update(t, m, keyMsg("n"))
	if m.state != constants.StateCalendar {
		t.Errorf("after [n] state = %v, want Calendar", m.state)
	}
	if cmd != nil {
		t.Error("declining the confirmation issued a command")
	}
}

func TestDeleteConfirmedSubmits(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, deleteMsg(7))
	m, cmd := update(t, m, keyMsg("y"))
	if m.state != constants.StateSubmitting {
		t.Errorf("after [y] state = %v, want Submitting", m.state)
	}
	if cmd == nil {
		t.Error("confirming the delete issued no command")
	}
}

func TestSubmittingSwallowsKeys(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateSubmitting

	for _, k := range []string{"y", "a", "d"} {
		next, cmd := update(t, m, keyMsg(k))
		if next.state != constants.StateSubmitting {
			t.Errorf("key %q moved state to %v", k, next.state)
		}
		if cmd != nil {
			t.Errorf("key %q issued a command while submitting", k)
		}
	}

	next, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if next.state != constants.StateSubmitting {
		t.Error("esc left the submitting state")
	}
}

func TestSaveErrorReturnsToForm(t *testing.T) {
	m := newTestModel()
	m.openAppointmentForm(constants.FormModeCreate, nil)
	m.state = constants.StateSubmitting

	m, _ = update(t, m, appointmentSavedMsg{err: errors.New("There's already an appointment for this day and time.")})
	if m.state != constants.StateAppointmentForm {
		t.Errorf("state = %v, want AppointmentForm", m.state)
	}
	if m.errorMessage != "There's already an appointment for this day and time." {
		t.Errorf("errorMessage = %q", m.errorMessage)
	}
}

func TestSaveSuccessReturnsToCalendar(t *testing.T) {
	m := newTestModel()
	m.openAppointmentForm(constants.FormModeCreate, nil)
	m.state = constants.StateSubmitting

	m, cmd := update(t, m, appointmentSavedMsg{})
	if m.state != constants.StateCalendar {
		t.Errorf("state = %v, want Calendar", m.state)
	}
	if m.statusMessage == "" {
		t.Error("no status message after successful save")
	}
	if cmd == nil {
		t.Error("successful save did not refresh the calendar")
	}
}

func TestEditPrefillsForm(t *testing.T) {
	m := newTestModel()

	appt := models.Appointment{
		ID:              7,
		PatientID:       4,
		AppointmentDate: "2026-09-15",
		StartTime:       "13:00",
		EndTime:         "14:30",
	}
	m.openAppointmentForm(constants.FormModeEdit, &appt)

	if m.state != constants.StateAppointmentForm {
		t.Fatalf("state = %v, want AppointmentForm", m.state)
	}
	if m.editingID != 7 {
		t.Errorf("editingID = %d, want 7", m.editingID)
	}
	if m.apptForm.StartTime != "1:00 PM" || m.apptForm.EndTime != "2:30 PM" {
		t.Errorf("prefilled times = %q - %q, want 12-hour display", m.apptForm.StartTime, m.apptForm.EndTime)
	}
	if m.apptForm.Date != "2026-09-15" || m.apptForm.PatientID != 4 {
		t.Errorf("prefilled form = %+v", m.apptForm)
	}
}

func TestFormEscReturnsToCalendar(t *testing.T) {
	m := newTestModel()
	m.openAppointmentForm(constants.FormModeCreate, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != constants.StateCalendar {
		t.Errorf("state = %v, want Calendar", m.state)
	}
}
