// Package tui is the interactive terminal frontend. Every screen is a tagged
// state; the appointment form, the submitting wait, and the delete
// confirmation are explicit states rather than flags on a shared view.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/models"
	"github.com/lcabreja/psiq/internal/session"
	"github.com/lcabreja/psiq/internal/storage/sqlite"
	"github.com/lcabreja/psiq/internal/tui/components/calendar"
	"github.com/lcabreja/psiq/internal/tui/components/patients"
	"github.com/lcabreja/psiq/internal/tui/components/reports"
)

type Model struct {
	client  *api.Client
	store   *sqlite.Store
	session *session.Session

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	calendarModel calendar.Model
	patientsModel patients.Model
	reportsModel  reports.Model

	form         *huh.Form
	apptForm     *AppointmentFormModel
	settingsForm *SettingsFormModel
	formMode     constants.FormMode
	editingID    int

	patientRefs []models.PatientRef
	settings    models.Settings

	appointmentToDeleteID int
	statusMessage         string
	errorMessage          string
	quitting              bool
	width                 int
	height                int
}

func NewModel(client *api.Client, store *sqlite.Store, sess *session.Session) Model {
	var settings models.Settings
	if store != nil {
		settings, _ = store.GetSettings()
	}

	return Model{
		client:        client,
		store:         store,
		session:       sess,
		state:         constants.StateCalendar,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		calendarModel: calendar.New(nil, 0, 0),
		patientsModel: patients.New(nil, 0, 0),
		reportsModel:  reports.New(nil, 0, 0),
		settings:      settings,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadAppointmentsCmd(m.client),
		loadPatientsCmd(m.client),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateSettings {
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	var actions []key.Binding
	if m.state == constants.StateSettings {
		actions = []key.Binding{m.keys.Edit}
	}
	return [][]key.Binding{global, actions}
}

// setStatus records a success message and clears any stale error.
func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.errorMessage = ""
}

// setError records an error message and clears any stale status.
func (m *Model) setError(msg string) {
	m.errorMessage = msg
	m.statusMessage = ""
}
