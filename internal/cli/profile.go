package cli

import (
	"fmt"
)

type ProfileEditCmd struct {
	Name         string `help:"First name."`
	Lastname     string `help:"Last name."`
	Birthdate    string `help:"Birthdate (YYYY-MM-DD)."`
	Phone        string `help:"Phone number."`
	DocumentType string `help:"Identity document type."`
	Document     string `help:"Identity document number."`
	Exequatur    string `help:"Professional license number."`
	Sex          string `help:"Sex."`
}

// Run updates the signed-in professional's profile. Flags left empty keep
// the current value.
func (c *ProfileEditCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	prof, err := ctx.Client.Me(reqCtx)
	if err != nil {
		return err
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&prof.Name, c.Name)
	set(&prof.Lastname, c.Lastname)
	set(&prof.Birthdate, c.Birthdate)
	set(&prof.Phone, c.Phone)
	set(&prof.DocumentType, c.DocumentType)
	set(&prof.Document, c.Document)
	set(&prof.Exequatur, c.Exequatur)
	set(&prof.Sex, c.Sex)

	if err := ctx.Client.UpdateMe(reqCtx, prof); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}
