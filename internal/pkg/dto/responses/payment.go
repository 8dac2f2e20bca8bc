package responses

import "github.com/goccy/go-json"

// CreateOrder holds what the checkout widget needs. Amount is in the gateway's minor units.
type CreateOrder struct {
	OrderID   string `json:"orderId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	PublicKey string `json:"publicKey"`
	Gateway   string `json:"gateway"`
	Receipt   string `json:"receipt"`
}

type VerifyPayment struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
}

type ConfirmBooking struct {
	AppointmentID     string `json:"appointmentId,omitempty"`
	PaymentID         string `json:"paymentId"`
	OrderID           string `json:"orderId"`
	Recorded          bool   `json:"recorded"`
	AlreadyRecorded   bool   `json:"alreadyRecorded"`
	ConfirmationSent  bool   `json:"confirmationSent"`
	ReminderScheduled bool   `json:"reminderScheduled"`
}

// GatewayOrder mirrors the order entity returned by the gateway.
type GatewayOrder struct {
	ID         string          `json:"id"`
	Entity     string          `json:"entity"`
	Amount     int64           `json:"amount"`
	AmountPaid int64           `json:"amount_paid"`
	AmountDue  int64           `json:"amount_due"`
	Currency   string          `json:"currency"`
	Receipt    string          `json:"receipt"`
	Status     string          `json:"status"`
	Attempts   int             `json:"attempts"`
	Notes      json.RawMessage `json:"notes"`
	CreatedAt  int64           `json:"created_at"`
}

// NotesMap decodes Notes. The gateway sends an empty array instead of an
// empty object when an order has no notes.
func (o *GatewayOrder) NotesMap() map[string]string {
	notes := map[string]string{}
	if len(o.Notes) == 0 || o.Notes[0] != '{' {
		return notes
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(o.Notes, &raw); err != nil {
		return notes
	}
	for key, value := range raw {
		if str, ok := value.(string); ok {
			notes[key] = str
		}
	}
	return notes
}
