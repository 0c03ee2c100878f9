package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/models"
)

const requestTimeout = 15 * time.Second

// reportRangeDays is how far back the task completion report looks.
const reportRangeDays = 30

type appointmentsLoadedMsg struct {
	appointments []models.Appointment
	err          error
}

type patientsLoadedMsg struct {
	patients []models.PatientRef
	err      error
}

type patientDetailMsg struct {
	patient models.Patient
	err     error
}

type appointmentSavedMsg struct {
	err error
}

type appointmentDeletedMsg struct {
	err error
}

type reportsLoadedMsg struct {
	tasks   models.TaskReport
	taskErr error
	cards   models.FlashcardReport
	cardErr error
}

func loadAppointmentsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		appts, err := client.Appointments(ctx)
		return appointmentsLoadedMsg{appointments: appts, err: err}
	}
}

func loadPatientsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		patients, err := client.MyPatients(ctx)
		return patientsLoadedMsg{patients: patients, err: err}
	}
}

func loadPatientDetailCmd(client *api.Client, patientID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		patient, err := client.Patient(ctx, patientID)
		return patientDetailMsg{patient: patient, err: err}
	}
}

func createAppointmentCmd(client *api.Client, input models.AppointmentInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return appointmentSavedMsg{err: client.CreateAppointment(ctx, input)}
	}
}

func updateAppointmentCmd(client *api.Client, appointmentID int, input models.AppointmentInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return appointmentSavedMsg{err: client.UpdateAppointment(ctx, appointmentID, input)}
	}
}

func deleteAppointmentCmd(client *api.Client, appointmentID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return appointmentDeletedMsg{err: client.DeleteAppointment(ctx, appointmentID)}
	}
}

func loadReportsCmd(client *api.Client, patientID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		end := time.Now()
		start := end.AddDate(0, 0, -reportRangeDays)
		tasks, taskErr := client.TaskCompletion(ctx, patientID,
			start.Format(constants.DateFormat), end.Format(constants.DateFormat))
		cards, cardErr := client.FlashcardProgression(ctx, patientID)

		return reportsLoadedMsg{tasks: tasks, taskErr: taskErr, cards: cards, cardErr: cardErr}
	}
}
