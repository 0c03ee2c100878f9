package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lcabreja/psiq/internal/constants"
)

type PrescriptionListCmd struct {
	Patient int `arg:"" help:"Patient id."`
}

func (c *PrescriptionListCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	scripts, err := ctx.Client.Prescriptions(reqCtx, c.Patient)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tACTIVE\tNOTES")
	for _, s := range scripts {
		fmt.Fprintf(w, "%d\t%v\t%s\n", s.ID, s.Active, s.Notes)
	}
	return w.Flush()
}

type PrescriptionAddCmd struct {
	Patient int    `help:"Patient id." required:""`
	Notes   string `help:"Prescription notes." required:""`
}

func (c *PrescriptionAddCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}
	if ctx.Session.Role != constants.RolePsychiatrist {
		return fmt.Errorf("only psychiatrists can create prescriptions")
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.CreatePrescription(reqCtx, c.Patient, ctx.Session.ProfessionalID, c.Notes); err != nil {
		return err
	}
	fmt.Println("Prescription created.")
	return nil
}

type PrescriptionEditCmd struct {
	ID    int    `arg:"" help:"Prescription id."`
	Notes string `arg:"" help:"New notes."`
}

func (c *PrescriptionEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.UpdatePrescription(reqCtx, c.ID, c.Notes); err != nil {
		return err
	}
	fmt.Println("Prescription updated.")
	return nil
}

type PrescriptionActivateCmd struct {
	ID int `arg:"" help:"Prescription id."`
}

func (c *PrescriptionActivateCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.ActivatePrescription(reqCtx, c.ID); err != nil {
		return err
	}
	fmt.Println("Prescription activated.")
	return nil
}

type PrescriptionDisableCmd struct {
	ID int `arg:"" help:"Prescription id."`
}

func (c *PrescriptionDisableCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.DisablePrescription(reqCtx, c.ID); err != nil {
		return err
	}
	fmt.Println("Prescription disabled.")
	return nil
}
