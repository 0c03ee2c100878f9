package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/lcabreja/psiq/internal/constants"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("language: %s\n", settings.Language)
	fmt.Printf("api-url:  %s\n", settings.APIURL)
	fmt.Printf("debug:    %v\n", settings.Debug)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name: language, api-url, or debug."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "language":
		if c.Value != constants.LanguageEnglish && c.Value != constants.LanguageSpanish {
			return fmt.Errorf("unsupported language %q, use %q or %q",
				c.Value, constants.LanguageEnglish, constants.LanguageSpanish)
		}
		settings.Language = c.Value
	case "api-url":
		u, err := url.Parse(c.Value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid URL %q", c.Value)
		}
		settings.APIURL = c.Value
	case "debug":
		debug, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", c.Value)
		}
		settings.Debug = debug
	default:
		return fmt.Errorf("unknown setting %q, expected language, api-url, or debug", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", c.Key, c.Value)
	return nil
}
