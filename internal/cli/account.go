package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/lcabreja/psiq/internal/api"
)

type RegisterCmd struct {
	Email        string `help:"Account email." required:""`
	Role         int    `help:"Role id: 2 for psychologist, 3 for psychiatrist." required:""`
	Name         string `help:"First name." required:""`
	Lastname     string `help:"Last name." required:""`
	Birthdate    string `help:"Birthdate (YYYY-MM-DD)." required:""`
	Phone        string `help:"Phone number." required:""`
	DocumentType string `help:"Identity document type." required:""`
	Document     string `help:"Identity document number." required:""`
	Exequatur    string `help:"Professional license number." required:""`
	Sex          string `help:"Sex." required:""`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	password := ""
	prompt := huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password)
	if err := prompt.Run(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	err := ctx.Client.SignUp(reqCtx, api.SignUpInput{
		Email:        c.Email,
		Password:     password,
		RoleID:       c.Role,
		Name:         c.Name,
		Lastname:     c.Lastname,
		Birthdate:    c.Birthdate,
		Phone:        c.Phone,
		DocumentType: c.DocumentType,
		Document:     c.Document,
		Exequatur:    c.Exequatur,
		Sex:          c.Sex,
	})
	if err != nil {
		return err
	}
	fmt.Println("Account created. Check your email for verification, then run 'psiq login'.")
	return nil
}

type PasswdCmd struct{}

func (c *PasswdCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	var oldPassword, newPassword string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current password").
				EchoMode(huh.EchoModePassword).
				Value(&oldPassword),
			huh.NewInput().
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Value(&newPassword),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	if err := ctx.Client.ChangePassword(reqCtx, oldPassword, newPassword); err != nil {
		return err
	}
	fmt.Println("Password changed.")
	return nil
}
