// Package validation checks the appointment form tuple before any request
// leaves the client. Every required field gets its own message so the form
// can render errors per field, the way the original schema validator did.
package validation

import "strings"

// Form field names
const (
	FieldPatient   = "patient"
	FieldDate      = "date"
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
)

// Required-field messages, rendered next to the offending control
const (
	MsgPatientRequired   = "Patient is required."
	MsgDateRequired      = "Date is required."
	MsgStartTimeRequired = "Start time is required."
	MsgEndTimeRequired   = "End time is required."
)

// FieldErrors maps form field names to their validation message.
type FieldErrors map[string]string

// Valid reports whether the form passed validation.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// AppointmentForm is the transient form tuple for creating or editing an
// appointment. Times are in 12-hour display format until submission.
type AppointmentForm struct {
	PatientID string
	Date      string
	StartTime string
	EndTime   string
}

// Validate checks that every field of the appointment tuple is present.
// Ordering of start vs end is not checked here; the end-time options are
// already restricted to times after the chosen start.
func Validate(form AppointmentForm) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(form.PatientID) == "" {
		errs[FieldPatient] = MsgPatientRequired
	}
	if strings.TrimSpace(form.Date) == "" {
		errs[FieldDate] = MsgDateRequired
	}
	if strings.TrimSpace(form.StartTime) == "" {
		errs[FieldStartTime] = MsgStartTimeRequired
	}
	if strings.TrimSpace(form.EndTime) == "" {
		errs[FieldEndTime] = MsgEndTimeRequired
	}

	return errs
}
