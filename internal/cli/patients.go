package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

type PatientListCmd struct{}

func (c *PatientListCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	patients, err := ctx.Client.MyPatients(reqCtx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, p := range patients {
		fmt.Fprintf(w, "%d\t%s %s\n", p.ID, p.Name, p.Lastname)
	}
	return w.Flush()
}

type PatientShowCmd struct {
	ID int `arg:"" help:"Patient id."`
}

func (c *PatientShowCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	p, err := ctx.Client.Patient(reqCtx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", p.Name, p.Lastname)
	fmt.Printf("Birthdate: %s\n", p.Birthdate)
	fmt.Printf("Phone:     %s\n", p.Phone)
	fmt.Printf("Email:     %s\n", p.Email)
	fmt.Printf("Allergies: %s\n", orNone(p.Allergies))
	fmt.Printf("Condition: %s\n", orNone(p.Condition))
	return nil
}

type PatientLinkCmd struct {
	Email string `arg:"" help:"Email of the patient account to link."`
}

func (c *PatientLinkCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.LinkPatient(reqCtx, c.Email); err != nil {
		return err
	}
	fmt.Println("Patient linked.")
	return nil
}

type PatientAllergiesCmd struct {
	ID        int    `arg:"" help:"Patient id."`
	Allergies string `arg:"" help:"New allergies text."`
}

func (c *PatientAllergiesCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.UpdatePatientAllergies(reqCtx, c.ID, c.Allergies); err != nil {
		return err
	}
	fmt.Println("Allergies updated.")
	return nil
}

type PatientConditionCmd struct {
	ID        int    `arg:"" help:"Patient id."`
	Condition string `arg:"" help:"New condition text."`
}

func (c *PatientConditionCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.UpdatePatientCondition(reqCtx, c.ID, c.Condition); err != nil {
		return err
	}
	fmt.Println("Condition updated.")
	return nil
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none recorded"
	}
	return s
}
