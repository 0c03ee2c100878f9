package validation

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		form       AppointmentForm
		wantFields []string
	}{
		{
			name: "complete form",
			form: AppointmentForm{
				PatientID: "4",
				Date:      "2026-09-15",
				StartTime: "9:00 AM",
				EndTime:   "9:30 AM",
			},
			wantFields: nil,
		},
		{
			name:       "all fields empty",
			form:       AppointmentForm{},
			wantFields: []string{FieldPatient, FieldDate, FieldStartTime, FieldEndTime},
		},
		{
			name: "missing patient",
			form: AppointmentForm{
				Date:      "2026-09-15",
				StartTime: "9:00 AM",
				EndTime:   "9:30 AM",
			},
			wantFields: []string{FieldPatient},
		},
		{
			name: "missing end time",
			form: AppointmentForm{
				PatientID: "4",
				Date:      "2026-09-15",
				StartTime: "9:00 AM",
			},
			wantFields: []string{FieldEndTime},
		},
		{
			name: "whitespace is empty",
			form: AppointmentForm{
				PatientID: "  ",
				Date:      "2026-09-15",
				StartTime: "9:00 AM",
				EndTime:   "9:30 AM",
			},
			wantFields: []string{FieldPatient},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.form)

			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("Validate() missing error for field %q", field)
				}
			}
			if errs.Valid() != (len(tt.wantFields) == 0) {
				t.Errorf("Valid() = %v, want %v", errs.Valid(), len(tt.wantFields) == 0)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	errs := Validate(AppointmentForm{})

	want := map[string]string{
		FieldPatient:   MsgPatientRequired,
		FieldDate:      MsgDateRequired,
		FieldStartTime: MsgStartTimeRequired,
		FieldEndTime:   MsgEndTimeRequired,
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("message for %q = %q, want %q", field, errs[field], msg)
		}
	}
}
