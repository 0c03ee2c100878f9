package models

// Appointment is one appointment row as the backend reports it for a
// professional's calendar. Times travel in 24-hour HH:MM, dates in
// YYYY-MM-DD.
type Appointment struct {
	ID              int    `json:"id"`
	PatientID       int    `json:"id_patient"`
	AppointmentDate string `json:"appointment_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	PatientName     string `json:"patient_name"`
	PatientLastname string `json:"patient_lastname"`
}

// AppointmentInput is the create/update request body. The backend owns ids
// and conflict detection; the client only ships the validated tuple.
type AppointmentInput struct {
	PatientID       int    `json:"id_patient"`
	AppointmentDate string `json:"appointment_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

// PatientRef is the minimal patient row used to populate selection lists.
type PatientRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// Patient is the full patient record returned by the patient service.
type Patient struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Birthdate string `json:"birthdate"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Allergies string `json:"allergies"`
	Condition string `json:"condition"`
}

// Professional is the clinician's own profile.
type Professional struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Birthdate    string `json:"birthdate"`
	Phone        string `json:"phone"`
	DocumentType string `json:"document_type"`
	Document     string `json:"document"`
	Exequatur    string `json:"exequatur"`
	Sex          string `json:"sex"`
	Image        string `json:"image"`
}

// User is the account record behind a login, including the role that gates
// access to the client.
type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	RoleID      int    `json:"id_rol"`
	CharacterID int    `json:"character_id"`
}

// Prescription is a psychiatrist-owned prescription for a patient.
type Prescription struct {
	ID             int    `json:"id"`
	PatientID      int    `json:"id_patient"`
	PsychiatristID int    `json:"id_psychiatrist"`
	Notes          string `json:"notes"`
	Active         bool   `json:"active"`
}

// Office is a professional's practice location.
type Office struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Sector  string `json:"sector"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

// TaskReport summarizes a patient's task completion over a date range.
type TaskReport struct {
	PatientID int `json:"id_patient"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// FlashcardReport summarizes a patient's flashcard progression.
type FlashcardReport struct {
	PatientID int `json:"id_patient"`
	Reviewed  int `json:"reviewed"`
	Remaining int `json:"remaining"`
}

// Settings represents locally persisted client preferences
type Settings struct {
	Language string `json:"language"` // UI language preference ("en" or "es")
	APIURL   string `json:"api_url"`  // backend base URL
	Debug    bool   `json:"debug"`    // verbose logging to stderr
}
