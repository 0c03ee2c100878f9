package patients

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcabreja/psiq/internal/models"
)

type ViewPatientMsg struct {
	ID int
}

type RefreshMsg struct{}

type Item struct {
	Patient models.PatientRef
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", i.Patient.Name, i.Patient.Lastname)
}

func (i Item) Description() string {
	return fmt.Sprintf("#%d", i.Patient.ID)
}

func (i Item) FilterValue() string {
	return i.Patient.Name + " " + i.Patient.Lastname
}

type KeyMap struct {
	View    key.Binding
	Refresh key.Binding
	Back    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		View: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

type Model struct {
	list   list.Model
	keys   KeyMap
	detail *models.Patient
}

func New(patients []models.PatientRef, width, height int) Model {
	items := make([]list.Item, len(patients))
	for i, p := range patients {
		items[i] = Item{Patient: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Patients"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.View, keys.Refresh}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.View, keys.Refresh}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetPatients(patients []models.PatientRef) {
	items := make([]list.Item, len(patients))
	for i, p := range patients {
		items[i] = Item{Patient: p}
	}
	m.list.SetItems(items)
}

// ShowDetail switches the component to the single-patient view.
func (m *Model) ShowDetail(patient models.Patient) {
	m.detail = &patient
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
		if m.detail != nil {
			if key.Matches(msg, m.keys.Back) {
				m.detail = nil
			}
			return m, nil
		}
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.View):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return ViewPatientMsg{ID: item.Patient.ID}
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
	if m.detail != nil {
		return m.viewDetail()
	}
	return m.list.View()
}

func (m Model) viewDetail() string {
	p := m.detail
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", p.Name, p.Lastname)
	fmt.Fprintf(&b, "Birthdate: %s\n", p.Birthdate)
	fmt.Fprintf(&b, "Phone:     %s\n", p.Phone)
	fmt.Fprintf(&b, "Email:     %s\n", p.Email)
	fmt.Fprintf(&b, "Allergies: %s\n", orNone(p.Allergies))
	fmt.Fprintf(&b, "Condition: %s\n", orNone(p.Condition))
	b.WriteString("\n[esc] back")
	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none recorded"
	}
	return s
}
