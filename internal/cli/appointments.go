package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/lcabreja/psiq/internal/models"
	"github.com/lcabreja/psiq/internal/schedule"
	"github.com/lcabreja/psiq/internal/validation"
)

type AppointmentListCmd struct{}

func (c *AppointmentListCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	appts, err := ctx.Client.Appointments(reqCtx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTART\tEND\tPATIENT")
	for _, a := range appts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s %s\n",
			a.ID, a.AppointmentDate,
			schedule.To12Hour(a.StartTime), schedule.To12Hour(a.EndTime),
			a.PatientName, a.PatientLastname)
	}
	return w.Flush()
}

type AppointmentAddCmd struct {
	Patient int    `help:"Patient id." required:""`
	Date    string `help:"Appointment date (YYYY-MM-DD)." required:""`
	Start   string `help:"Start time in 12-hour format, e.g. '9:00 AM'." required:""`
	End     string `help:"End time in 12-hour format. Must be one of the slots offered after the start."`
}

func (c *AppointmentAddCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	input, err := buildAppointmentInput(c.Patient, c.Date, c.Start, c.End)
	if err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.CreateAppointment(reqCtx, input); err != nil {
		return err
	}
	fmt.Println("Appointment saved.")
	return nil
}

type AppointmentEditCmd struct {
	ID      int    `arg:"" help:"Appointment id."`
	Patient int    `help:"Patient id." required:""`
	Date    string `help:"Appointment date (YYYY-MM-DD)." required:""`
	Start   string `help:"Start time in 12-hour format." required:""`
	End     string `help:"End time in 12-hour format."`
}

func (c *AppointmentEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	input, err := buildAppointmentInput(c.Patient, c.Date, c.Start, c.End)
	if err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.UpdateAppointment(reqCtx, c.ID, input); err != nil {
		return err
	}
	fmt.Println("Appointment updated.")
	return nil
}

type AppointmentDeleteCmd struct {
	ID  int  `arg:"" help:"Appointment id."`
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *AppointmentDeleteCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete appointment %d?", c.ID)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.DeleteAppointment(reqCtx, c.ID); err != nil {
		return err
	}
	fmt.Println("Appointment deleted.")
	return nil
}

// buildAppointmentInput validates the tuple and converts the display times
// to the wire format. The end time must be one of the candidates offered
// for the chosen start.
func buildAppointmentInput(patientID int, date, start, end string) (models.AppointmentInput, error) {
	patient := ""
	if patientID > 0 {
		patient = fmt.Sprintf("%d", patientID)
	}
	errs := validation.Validate(validation.AppointmentForm{
		PatientID: patient,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	if !errs.Valid() {
		messages := make([]string, 0, len(errs))
		for _, msg := range errs {
			messages = append(messages, msg)
		}
		return models.AppointmentInput{}, fmt.Errorf("%s", strings.Join(messages, " "))
	}

	candidates := schedule.EndTimeCandidates(start)
	if len(candidates) == 0 {
		return models.AppointmentInput{}, fmt.Errorf("invalid start time %q, expected one of the clinic slots (e.g. '9:00 AM')", start)
	}
	valid := false
	for _, c := range candidates {
		if c == end {
			valid = true
			break
		}
	}
	if !valid {
		return models.AppointmentInput{}, fmt.Errorf("invalid end time %q for start %q, choose one of: %s",
			end, start, strings.Join(candidates, ", "))
	}

	return models.AppointmentInput{
		PatientID:       patientID,
		AppointmentDate: date,
		StartTime:       schedule.To24Hour(start),
		EndTime:         schedule.To24Hour(end),
	}, nil
}
