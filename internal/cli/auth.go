package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/lcabreja/psiq/internal/session"
)

type LoginCmd struct {
	Username string `help:"Account email." short:"u"`
	Password string `help:"Account password. Prompted when omitted." short:"p"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Username == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&c.Username),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	sess, err := session.SignIn(reqCtx, ctx.Client, c.Username, c.Password)
	if err != nil {
		return err
	}
	*ctx.Session = *sess

	fmt.Printf("Signed in as %s (%s)\n", sess.Email, sess.Role)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := session.SignOut(ctx.Client, ctx.Session); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if !ctx.Session.SignedIn() {
		fmt.Println("Not signed in. Run 'psiq login' first.")
		return nil
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	prof, err := ctx.Client.Me(reqCtx)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", prof.Name, prof.Lastname)
	fmt.Printf("Email: %s\n", ctx.Session.Email)
	fmt.Printf("Role:  %s\n", ctx.Session.Role)
	if prof.Exequatur != "" {
		fmt.Printf("Exequatur: %s\n", prof.Exequatur)
	}
	return nil
}
