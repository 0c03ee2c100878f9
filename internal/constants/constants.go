package constants

const (
	AppName            = "psiq"
	DefaultKeyringUser = "session-token"
	DefaultConfigPath  = "~/.config/psiq/psiq.db"
	Version            = "v0.3.1"

	// DefaultAPIURL is the platform backend used when no override is configured
	DefaultAPIURL = "https://api.psiq.health/"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard wire time format used throughout the application (HH:MM, 24h)
	TimeFormat = "15:04"

	// Clinic hours: appointments are offered on the half hour between these bounds
	ClinicOpenHour  = 9
	ClinicCloseHour = 17
	SlotStepMinutes = 30

	// MaxDurationSteps bounds the end-time candidate list (30 min steps, up to 2 hours)
	MaxDurationSteps = 4
)

// Roles reported by the backend
const (
	RoleAdministrator = "Administrator"
	RolePsychologist  = "Psychologist"
	RolePsychiatrist  = "Psychiatrist"
)

// Languages accepted for the persisted language preference
const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"

	DefaultLanguage = LanguageEnglish
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateCalendar SessionState = iota
	StatePatients
	StateReports
	StateSettings
	StateAppointmentForm
	StateSubmitting
	StateConfirmDelete
	StateEditSettings
)

// FormMode distinguishes the create and edit variants of the appointment form
type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)
