package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lcabreja/psiq/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateCalendar:
		content = docStyle.Render(m.calendarModel.View())
	case constants.StatePatients:
		content = docStyle.Render(m.patientsModel.View())
	case constants.StateReports:
		content = docStyle.Render(m.reportsModel.View())
	case constants.StateSettings:
		content = m.viewSettings()
	case constants.StateAppointmentForm, constants.StateEditSettings:
		content = m.form.View()
	case constants.StateSubmitting:
		content = m.viewSubmitting()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Calendar", "Patients", "Reports", "Settings"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.statusMessage != "" {
		return statusStyle.Render(m.statusMessage)
	}
	return ""
}

func (m Model) viewSettings() string {
	who := "signed out"
	if m.session.SignedIn() {
		who = fmt.Sprintf("%s (%s)", m.session.Email, m.session.Role)
	}
	return docStyle.Render(fmt.Sprintf(
		"Signed in as: %s\n\nLanguage:    %s\nBackend URL: %s\nDebug:       %v\n\n[e] edit",
		who, m.settings.Language, m.settings.APIURL, m.settings.Debug,
	))
}

func (m Model) viewSubmitting() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		"Saving...",
	)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this appointment?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
