// Package schedule holds the appointment time-slot model shared by the
// appointment form and the CLI: the half-hour slot list the clinic offers,
// the end-time candidates for a chosen start, and the conversion between the
// 12-hour display format and the 24-hour wire format.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lcabreja/psiq/internal/constants"
)

// Slots returns every half-hour boundary between clinic open and close,
// inclusive, as 12-hour display strings: "9:00 AM" through "5:00 PM".
func Slots() []string {
	open := constants.ClinicOpenHour * 60
	close := constants.ClinicCloseHour * 60

	var slots []string
	for m := open; m <= close; m += constants.SlotStepMinutes {
		slots = append(slots, format12(m/60, m%60))
	}
	return slots
}

// EndTimeCandidates returns the next four half-hour boundaries after the
// given 12-hour start slot, i.e. the allowed appointment durations of 30
// minutes to 2 hours. An empty or malformed start returns an empty list;
// callers treat that as "no end time selectable yet".
//
// Candidates are not clamped to clinic close: a late start offers end times
// past 5:00 PM. Whether that is the intended business rule is an open
// stakeholder question; this preserves the behavior as shipped.
func EndTimeCandidates(start string) []string {
	startMinutes, ok := parse12(start)
	if !ok {
		return []string{}
	}

	candidates := make([]string, 0, constants.MaxDurationSteps)
	for i := 1; i <= constants.MaxDurationSteps; i++ {
		target := startMinutes + i*constants.SlotStepMinutes
		candidates = append(candidates, format12(target/60, target%60))
	}
	return candidates
}

// To24Hour converts a 12-hour display time ("h:mm AM|PM") to the 24-hour
// wire format ("HH:MM"). 12 AM maps to hour 00, 12 PM stays 12, other PM
// hours gain 12. Input outside the slot formats produced by Slots and
// EndTimeCandidates is not defended against.
func To24Hour(time12 string) string {
	hourMinute, amPm, _ := strings.Cut(time12, " ")
	hourStr, minuteStr, _ := strings.Cut(hourMinute, ":")
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)

	switch {
	case amPm == "AM" && hour == 12:
		hour = 0
	case amPm == "PM" && hour != 12:
		hour += 12
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// To12Hour converts a 24-hour wire time ("HH:MM") to the 12-hour display
// format ("h:mm AM|PM"). Hour 0 renders as 12 AM, hour 12 as 12 PM.
func To12Hour(time24 string) string {
	hourStr, minuteStr, _ := strings.Cut(time24, ":")
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)

	return format12(hour, minute)
}

// format12 renders an hour/minute pair in 12-hour display format.
func format12(hour, minute int) string {
	amPm := "PM"
	if hour < 12 || hour == 24 {
		amPm = "AM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, amPm)
}

// parse12 parses a 12-hour display time into minutes from midnight. The
// second return is false when the string is empty or not in "h:mm A" shape.
func parse12(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, ":") || !strings.Contains(s, " ") {
		return 0, false
	}

	hourMinute, amPm, _ := strings.Cut(s, " ")
	hourStr, minuteStr, _ := strings.Cut(hourMinute, ":")

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minuteStr))
	if err != nil {
		return 0, false
	}

	if amPm == "PM" {
		if hour != 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}

	return hour*60 + minute, true
}
