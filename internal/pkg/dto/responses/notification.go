package responses

import "time"

// SendEmail wraps the provider's raw response so callers can correlate delivery.
type SendEmail struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
}

type ScheduleReminder struct {
	Success      bool      `json:"success"`
	JobID        string    `json:"jobId"`
	ReminderTime time.Time `json:"reminderTime"`
}

type HealthCheck struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
