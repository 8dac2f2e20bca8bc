package requests

// CreateOrder is the booking intent submitted from the last step of the booking wizard.
type CreateOrder struct {
	Amount          int64  `json:"amount" validate:"required,gt=0,lte=10000000"`
	Currency        string `json:"currency" validate:"omitempty,len=3"`
	DoctorName      string `json:"doctorName" validate:"required,max=120"`
	Specialty       string `json:"specialty" validate:"required,max=120"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" validate:"required,appointment_time"`
	PatientName     string `json:"patientName" validate:"required,max=120"`
	PatientPhone    string `json:"patientPhone" validate:"required,phone_number"`
	Symptoms        string `json:"symptoms" validate:"max=2000"`
}

// VerifyPayment carries the proof returned by the gateway checkout widget.
type VerifyPayment struct {
	OrderID   string `json:"orderId" validate:"required,gateway_reference"`
	PaymentID string `json:"paymentId" validate:"required,gateway_reference"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
}

type ConfirmBooking struct {
	OrderID          string `json:"orderId" validate:"required,gateway_reference"`
	PaymentID        string `json:"paymentId" validate:"required,gateway_reference"`
	Signature        string `json:"signature" validate:"required,hexadecimal"`
	ConsultationType string `json:"consultationType" validate:"max=60"`
}

// GatewayCreateOrder is the order payload sent upstream. Amount is in minor units.
type GatewayCreateOrder struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}
