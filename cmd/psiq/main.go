package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/cli"
	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/errors"
	"github.com/lcabreja/psiq/internal/logger"
	"github.com/lcabreja/psiq/internal/session"
	"github.com/lcabreja/psiq/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings database path." type:"string" default:"~/.config/psiq/psiq.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd        `cmd:"" help:"Initialize local settings storage."`
	Login    cli.LoginCmd       `cmd:"" help:"Sign in to the platform."`
	Logout   cli.LogoutCmd      `cmd:"" help:"Sign out and clear the stored session."`
	Whoami   cli.WhoamiCmd      `cmd:"" help:"Show the signed-in professional."`
	Register cli.RegisterCmd    `cmd:"" help:"Register a professional account."`
	Passwd   cli.PasswdCmd      `cmd:"" help:"Change the account password."`
	Profile  cli.ProfileEditCmd `cmd:"" help:"Update your professional profile."`
	Tui      cli.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor   cli.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`

	Appointment struct {
		List   cli.AppointmentListCmd   `cmd:"" help:"List your appointments."`
		Add    cli.AppointmentAddCmd    `cmd:"" help:"Book a new appointment."`
		Edit   cli.AppointmentEditCmd   `cmd:"" help:"Edit an appointment."`
		Delete cli.AppointmentDeleteCmd `cmd:"" help:"Delete an appointment."`
	} `cmd:"" help:"Manage appointments."`

	Patient struct {
		List      cli.PatientListCmd      `cmd:"" help:"List your patients."`
		Show      cli.PatientShowCmd      `cmd:"" help:"Show a patient's record."`
		Link      cli.PatientLinkCmd      `cmd:"" help:"Link a patient account by email."`
		Allergies cli.PatientAllergiesCmd `cmd:"" help:"Update a patient's allergies."`
		Condition cli.PatientConditionCmd `cmd:"" help:"Update a patient's condition."`
	} `cmd:"" help:"Manage patients."`

	Prescription struct {
		List     cli.PrescriptionListCmd     `cmd:"" help:"List a patient's prescriptions."`
		Add      cli.PrescriptionAddCmd      `cmd:"" help:"Create a prescription."`
		Edit     cli.PrescriptionEditCmd     `cmd:"" help:"Edit a prescription's notes."`
		Activate cli.PrescriptionActivateCmd `cmd:"" help:"Reactivate a prescription."`
		Disable  cli.PrescriptionDisableCmd  `cmd:"" help:"Disable a prescription."`
	} `cmd:"" help:"Manage prescriptions."`

	Office struct {
		List cli.OfficeListCmd `cmd:"" help:"List your active offices." default:"1"`
		Add  cli.OfficeAddCmd  `cmd:"" help:"Register a practice location."`
		Edit cli.OfficeEditCmd `cmd:"" help:"Edit a practice location."`
	} `cmd:"" help:"Manage practice locations."`

	Report struct {
		Tasks      cli.ReportTasksCmd      `cmd:"" help:"Task completion report for a patient."`
		Flashcards cli.ReportFlashcardsCmd `cmd:"" help:"Flashcard progression report for a patient."`
	} `cmd:"" help:"Patient reports."`

	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show local settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change a local setting."`
	} `cmd:"" help:"Manage local settings."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for the psiq practice-management platform"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)
	store := sqlite.NewStore(configPath)

	isInit := ctx.Selected() != nil && ctx.Selected().Name == "init"
	if !isInit {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	settings, _ := store.GetSettings()

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || settings.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	apiURL := constants.DefaultAPIURL
	if settings.APIURL != "" {
		apiURL = settings.APIURL
	}
	if env := os.Getenv("PSIQ_API_URL"); env != "" {
		apiURL = env
	}
	client := api.New(apiURL)

	sess := &session.Session{}
	if !isInit {
		restored, err := session.Restore(context.Background(), client)
		if err != nil {
			logger.Warn("could not restore session", "err", err)
		} else {
			sess = restored
		}
	}

	appCtx := &cli.Context{
		Client:  client,
		Store:   store,
		Session: sess,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
