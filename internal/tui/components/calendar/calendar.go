package calendar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcabreja/psiq/internal/models"
	"github.com/lcabreja/psiq/internal/schedule"
)

type AddAppointmentMsg struct{}

type EditAppointmentMsg struct {
	Appointment models.Appointment
}

type DeleteAppointmentMsg struct {
	ID int
}

type RefreshMsg struct{}

type Item struct {
	Appointment models.Appointment
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s - %s",
		i.Appointment.AppointmentDate,
		schedule.To12Hour(i.Appointment.StartTime),
		schedule.To12Hour(i.Appointment.EndTime))
}

func (i Item) Description() string {
	return fmt.Sprintf("%s %s", i.Appointment.PatientName, i.Appointment.PatientLastname)
}

func (i Item) FilterValue() string {
	return i.Appointment.PatientName + " " + i.Appointment.PatientLastname
}

type KeyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(appointments []models.Appointment, width, height int) Model {
	items := make([]list.Item, len(appointments))
	for i, a := range appointments {
		items[i] = Item{Appointment: a}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Appointments"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Refresh}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Refresh}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetAppointments(appointments []models.Appointment) {
	items := make([]list.Item, len(appointments))
	for i, a := range appointments {
		items[i] = Item{Appointment: a}
	}
	m.list.SetItems(items)
}

// Selected returns the highlighted appointment, if any.
func (m Model) Selected() (models.Appointment, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Appointment{}, false
	}
	return item.Appointment, true
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddAppointmentMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return EditAppointmentMsg{Appointment: item.Appointment}
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return DeleteAppointmentMsg{ID: item.Appointment.ID}
				}
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
