package reports

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lcabreja/psiq/internal/models"
)

type LoadReportsMsg struct {
	PatientID int
}

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
	Load key.Binding
	Back key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "reports"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// Model lists the professional's patients and renders the task and
// flashcard reports for the selected one.
type Model struct {
	list    list.Model
	keys    KeyMap
	report  string
	showing bool
}

func New(patients []models.PatientRef, width, height int) Model {
	items := make([]list.Item, len(patients))
	for i, p := range patients {
		items[i] = Item{Patient: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Reports"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Load}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Load}
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

// SetReport renders the fetched reports. Either report may have failed
// independently; the error text stands in for the missing numbers.
func (m *Model) SetReport(tasks models.TaskReport, taskErr error, cards models.FlashcardReport, cardErr error) {
	var b strings.Builder

	b.WriteString("Task completion\n")
	if taskErr != nil {
		fmt.Fprintf(&b, "  %v\n", taskErr)
	} else {
		fmt.Fprintf(&b, "  Completed: %d\n  Pending:   %d\n", tasks.Completed, tasks.Pending)
	}

	b.WriteString("\nFlashcard progression\n")
	if cardErr != nil {
		fmt.Fprintf(&b, "  %v\n", cardErr)
	} else {
		fmt.Fprintf(&b, "  Reviewed:  %d\n  Remaining: %d\n", cards.Reviewed, cards.Remaining)
	}

	b.WriteString("\n[esc] back")
	m.report = b.String()
	m.showing = true
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
		if m.showing {
			if key.Matches(msg, m.keys.Back) {
				m.showing = false
			}
			return m, nil
		}
		if m.list.FilterState() == list.Filtering {
			break
		}

		if key.Matches(msg, m.keys.Load) {
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return LoadReportsMsg{PatientID: item.Patient.ID}
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.showing {
		return m.report
	}
	return m.list.View()
}
