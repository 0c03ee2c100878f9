package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/models"
	"github.com/lcabreja/psiq/internal/schedule"
	"github.com/lcabreja/psiq/internal/tui/components/calendar"
	"github.com/lcabreja/psiq/internal/tui/components/patients"
	"github.com/lcabreja/psiq/internal/tui/components/reports"
	"github.com/lcabreja/psiq/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.calendarModel.SetSize(msg.Width-4, msg.Height-6)
		m.patientsModel.SetSize(msg.Width-4, msg.Height-6)
		m.reportsModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case appointmentsLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			m.calendarModel.SetAppointments(nil)
		} else {
			m.calendarModel.SetAppointments(msg.appointments)
		}
		return m, nil

	case patientsLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
		} else {
			m.patientRefs = msg.patients
			m.patientsModel.SetPatients(msg.patients)
			m.reportsModel.SetPatients(msg.patients)
		}
		return m, nil

	case patientDetailMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
		} else {
			m.patientsModel.ShowDetail(msg.patient)
		}
		return m, nil

	case reportsLoadedMsg:
		m.reportsModel.SetReport(msg.tasks, msg.taskErr, msg.cards, msg.cardErr)
		return m, nil

	case appointmentSavedMsg:
		// Leaving the submitting state is the only way to react to a
		// save; repeated submit keypresses never fire a second request.
		if msg.err != nil {
			m.setError(msg.err.Error())
			m.state = constants.StateAppointmentForm
			m.form.State = huh.StateNormal
			return m, nil
		}
		m.setStatus("Appointment saved.")
		m.state = constants.StateCalendar
		return m, loadAppointmentsCmd(m.client)

	case appointmentDeletedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			m.state = constants.StateCalendar
			return m, nil
		}
		m.setStatus("Appointment deleted.")
		m.state = constants.StateCalendar
		return m, loadAppointmentsCmd(m.client)

	case calendar.AddAppointmentMsg:
		m.openAppointmentForm(constants.FormModeCreate, nil)
		return m, m.form.Init()

	case calendar.EditAppointmentMsg:
		appt := msg.Appointment
		m.openAppointmentForm(constants.FormModeEdit, &appt)
		return m, m.form.Init()

	case calendar.DeleteAppointmentMsg:
		m.appointmentToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case calendar.RefreshMsg:
		return m, loadAppointmentsCmd(m.client)

	case patients.ViewPatientMsg:
		return m, loadPatientDetailCmd(m.client, msg.ID)

	case patients.RefreshMsg:
		return m, loadPatientsCmd(m.client)

	case reports.LoadReportsMsg:
		return m, loadReportsCmd(m.client, msg.PatientID)
	}

	// State-specific handling from here down.
	switch m.state {
	case constants.StateSubmitting:
		// A request is in flight. Swallow everything except a hard quit
		// until the result message arrives.
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case constants.StateAppointmentForm:
		return m.updateAppointmentForm(msg)

	case constants.StateEditSettings:
		return m.updateSettingsForm(msg)

	case constants.StateConfirmDelete:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				m.state = constants.StateSubmitting
				return m, deleteAppointmentCmd(m.client, m.appointmentToDeleteID)
			case "n", "N", "esc":
				m.state = constants.StateCalendar
				return m, nil
			}
		}
		return m, nil
	}

	// Main views: global keys first, then the active component.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(keyMsg); handled {
			return m, cmd
		}
	}

	switch m.state {
	case constants.StateCalendar:
		var cmd tea.Cmd
		m.calendarModel, cmd = m.calendarModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StatePatients:
		var cmd tea.Cmd
		m.patientsModel, cmd = m.patientsModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateReports:
		var cmd tea.Cmd
		m.reportsModel, cmd = m.reportsModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateSettings:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "e" {
			m.openSettingsForm()
			return m, m.form.Init()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return true, tea.Quit
	case "tab":
		m.state = nextView(m.state)
		return true, nil
	case "shift+tab":
		m.state = prevView(m.state)
		return true, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}
	return false, nil
}

func nextView(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateCalendar:
		return constants.StatePatients
	case constants.StatePatients:
		return constants.StateReports
	case constants.StateReports:
		return constants.StateSettings
	case constants.StateSettings:
		return constants.StateCalendar
	}
	return state
}

func prevView(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateCalendar:
		return constants.StateSettings
	case constants.StatePatients:
		return constants.StateCalendar
	case constants.StateReports:
		return constants.StatePatients
	case constants.StateSettings:
		return constants.StateReports
	}
	return state
}

// openAppointmentForm enters the form state, blank for create or prefilled
// from an existing appointment for edit.
func (m *Model) openAppointmentForm(mode constants.FormMode, appt *models.Appointment) {
	fm := &AppointmentFormModel{}
	if mode == constants.FormModeEdit && appt != nil {
		fm.PatientID = appt.PatientID
		fm.Date = appt.AppointmentDate
		fm.StartTime = schedule.To12Hour(appt.StartTime)
		fm.EndTime = schedule.To12Hour(appt.EndTime)
		m.editingID = appt.ID
	}
	m.apptForm = fm
	m.formMode = mode
	m.form = newAppointmentForm(fm, m.patientRefs)
	m.errorMessage = ""
	m.state = constants.StateAppointmentForm
}

func (m *Model) openSettingsForm() {
	m.settingsForm = &SettingsFormModel{
		Language: m.settings.Language,
		APIURL:   m.settings.APIURL,
		Debug:    m.settings.Debug,
	}
	m.form = newSettingsForm(m.settingsForm)
	m.state = constants.StateEditSettings
}

func (m Model) updateAppointmentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateCalendar
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.apptForm

		patientID := ""
		if fm.PatientID > 0 {
			patientID = strconv.Itoa(fm.PatientID)
		}
		errs := validation.Validate(validation.AppointmentForm{
			PatientID: patientID,
			Date:      fm.Date,
			StartTime: fm.StartTime,
			EndTime:   fm.EndTime,
		})
		if !errs.Valid() {
			messages := make([]string, 0, len(errs))
			for _, msg := range errs {
				messages = append(messages, msg)
			}
			m.setError(strings.Join(messages, " "))
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		input := models.AppointmentInput{
			PatientID:       fm.PatientID,
			AppointmentDate: fm.Date,
			StartTime:       schedule.To24Hour(fm.StartTime),
			EndTime:         schedule.To24Hour(fm.EndTime),
		}

		m.state = constants.StateSubmitting
		if m.formMode == constants.FormModeEdit {
			return m, updateAppointmentCmd(m.client, m.editingID, input)
		}
		return m, createAppointmentCmd(m.client, input)

	case huh.StateAborted:
		m.state = constants.StateCalendar
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		updated := models.Settings{
			Language: m.settingsForm.Language,
			APIURL:   m.settingsForm.APIURL,
			Debug:    m.settingsForm.Debug,
		}
		if err := m.store.SaveSettings(updated); err != nil {
			m.setError("Failed to save settings: " + err.Error())
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.settings = updated
		m.setStatus("Settings saved. The backend URL applies on next launch.")
		m.state = constants.StateSettings
	case huh.StateAborted:
		m.state = constants.StateSettings
	}
	return m, tea.Batch(cmds...)
}
