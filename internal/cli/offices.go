package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lcabreja/psiq/internal/models"
)

type OfficeListCmd struct{}

func (c *OfficeListCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	offices, err := ctx.Client.Offices(reqCtx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tSECTOR\tADDRESS")
	for _, o := range offices {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", o.ID, o.Name, o.City, o.Sector, o.Address)
	}
	return w.Flush()
}

type OfficeAddCmd struct {
	Name    string `help:"Office name." required:""`
	City    string `help:"City." required:""`
	Sector  string `help:"Sector." required:""`
	Address string `help:"Street address." required:""`
}

func (c *OfficeAddCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	office := models.Office{Name: c.Name, City: c.City, Sector: c.Sector, Address: c.Address}
	if err := ctx.Client.CreateOffice(reqCtx, office); err != nil {
		return err
	}
	fmt.Println("Office created.")
	return nil
}

type OfficeEditCmd struct {
	ID      int    `arg:"" help:"Office id."`
	Name    string `help:"Office name." required:""`
	City    string `help:"City." required:""`
	Sector  string `help:"Sector." required:""`
	Address string `help:"Street address." required:""`
}

func (c *OfficeEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	office := models.Office{Name: c.Name, City: c.City, Sector: c.Sector, Address: c.Address}
	if err := ctx.Client.UpdateOffice(reqCtx, c.ID, office); err != nil {
		return err
	}
	fmt.Println("Office updated.")
	return nil
}
