package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/models"
	"github.com/lcabreja/psiq/internal/schedule"
)

type AppointmentFormModel struct {
	PatientID int
	Date      string
	StartTime string
	EndTime   string
}

type SettingsFormModel struct {
	Language string
	APIURL   string
	Debug    bool
}

// newAppointmentForm builds the create/edit appointment form. The end-time
// options are recomputed whenever the start time changes, so only the four
// half-hour steps after the chosen start are ever selectable.
func newAppointmentForm(fm *AppointmentFormModel, patients []models.PatientRef) *huh.Form {
	patientOptions := make([]huh.Option[int], len(patients))
	for i, p := range patients {
		patientOptions[i] = huh.NewOption(fmt.Sprintf("%s %s", p.Name, p.Lastname), p.ID)
	}

	slotOptions := make([]huh.Option[string], 0, len(schedule.Slots()))
	for _, slot := range schedule.Slots() {
		slotOptions = append(slotOptions, huh.NewOption(slot, slot))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Patient").
				Options(patientOptions...).
				Value(&fm.PatientID).
				Validate(func(id int) error {
					if id == 0 {
						return fmt.Errorf("patient is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("date is required")
					}
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Start time").
				Options(slotOptions...).
				Value(&fm.StartTime),
			huh.NewSelect[string]().
				Title("End time").
				OptionsFunc(func() []huh.Option[string] {
					candidates := schedule.EndTimeCandidates(fm.StartTime)
					options := make([]huh.Option[string], 0, len(candidates))
					for _, c := range candidates {
						options = append(options, huh.NewOption(c, c))
					}
					return options
				}, &fm.StartTime).
				Value(&fm.EndTime),
		),
	).WithTheme(huh.ThemeDracula())
}

// newSettingsForm builds the local preferences form.
func newSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", constants.LanguageEnglish),
					huh.NewOption("Español", constants.LanguageSpanish),
				).
				Value(&fm.Language),
			huh.NewInput().
				Title("Backend URL").
				Value(&fm.APIURL).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("backend URL is required")
					}
					u, err := url.Parse(s)
					if err != nil || u.Scheme == "" || u.Host == "" {
						return fmt.Errorf("invalid URL")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Debug logging").
				Value(&fm.Debug),
		),
	).WithTheme(huh.ThemeDracula())
}
