package utils

import (
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseAppointmentDateTime combines a "2006-01-02" date with a "3:04 PM" slot label in loc.
func ParseAppointmentDateTime(date, slot string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	layout := constvars.AppointmentDateLayout + " " + constvars.AppointmentTimeLayout
	value := strings.TrimSpace(date) + " " + strings.ToUpper(strings.TrimSpace(slot))
	parsed, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse appointment schedule %q: %w", value, err)
	}
	return parsed, nil
}

func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
