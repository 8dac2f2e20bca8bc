package requests

type SendConfirmationEmail struct {
	Email            string `json:"email" validate:"required,email"`
	PatientName      string `json:"patientName" validate:"required,max=120"`
	DoctorName       string `json:"doctorName" validate:"required,max=120"`
	Specialty        string `json:"specialty" validate:"required,max=120"`
	AppointmentDate  string `json:"appointmentDate" validate:"required"`
	AppointmentTime  string `json:"appointmentTime" validate:"required"`
	ConsultationType string `json:"consultationType" validate:"max=60"`
}

type SendReminderEmail struct {
	Email            string `json:"email" validate:"required,email"`
	PatientName      string `json:"patientName" validate:"required,max=120"`
	DoctorName       string `json:"doctorName" validate:"required,max=120"`
	Specialty        string `json:"specialty" validate:"required,max=120"`
	AppointmentDate  string `json:"appointmentDate"`
	AppointmentTime  string `json:"appointmentTime" validate:"required"`
	ConsultationLink string `json:"consultationLink" validate:"omitempty,url"`
}

// EmailMessage is a rendered message ready for an email provider.
type EmailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}
