package utils

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		want     int64
	}{
		{name: "rupees to paise", amount: 499, currency: "INR", want: 49900},
		{name: "lowercase currency", amount: 1, currency: "usd", want: 100},
		{name: "zero exponent currency", amount: 1500, currency: "JPY", want: 1500},
		{name: "three digit exponent currency", amount: 2, currency: "KWD", want: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(tt.amount, tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinorUnits_Overflow(t *testing.T) {
	got, err := ToMinorUnits(92233720368547759, "INR")
	assert.Zero(t, got)
	assert.Equal(t, constvars.ErrCodeValidation, exceptions.CodeOf(err))

	_, err = ToMinorUnits(math.MaxInt64/1000+1, "KWD")
	assert.Error(t, err)

	got, err = ToMinorUnits(math.MaxInt64, "JPY")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestBuildErrorResponse_GatewayDetailsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", constvars.AppEnvProduction)
	upstream := `{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`

	rr := httptest.NewRecorder()
	BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrGatewayOrderCreation("razorpay", 400, upstream))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 502, rr.Code)
	assert.Equal(t, constvars.ErrCodeGateway, body["code"])
	assert.Equal(t, upstream, body["details"])
	assert.NotContains(t, body, "dev_message")
	assert.NotContains(t, body, "locations")
}

func TestBuildErrorResponse_NoDetailsForOtherErrors(t *testing.T) {
	t.Setenv("APP_ENV", constvars.AppEnvProduction)

	rr := httptest.NewRecorder()
	BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrConfiguration([]string{"RAZORPAY_KEY_SECRET"}))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 500, rr.Code)
	assert.NotContains(t, body, "details")
	assert.NotContains(t, rr.Body.String(), "RAZORPAY_KEY_SECRET")
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "INR 499.00", FormatMinorUnits(49900, "INR"))
	assert.Equal(t, "JPY 1500", FormatMinorUnits(1500, "jpy"))
}

func TestParseAppointmentDateTime(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)

	t.Run("combines date and slot label in location", func(t *testing.T) {
		got, err := ParseAppointmentDateTime("2026-03-14", "4:30 PM", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 14, 16, 30, 0, 0, loc), got)
	})

	t.Run("accepts lowercase meridiem", func(t *testing.T) {
		got, err := ParseAppointmentDateTime("2026-03-14", " 9:00 am ", loc)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Hour())
	})

	t.Run("rejects 24 hour label", func(t *testing.T) {
		_, err := ParseAppointmentDateTime("2026-03-14", "16:30", loc)
		assert.Error(t, err)
	})

	t.Run("nil location falls back to UTC", func(t *testing.T) {
		got, err := ParseAppointmentDateTime("2026-03-14", "9:00 AM", nil)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "missing header", header: "", want: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "prefix only", header: "Bearer ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractBearerToken(req))
		})
	}
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	assert.True(t, strings.HasPrefix(id, "MDCN_SVC_"))
	assert.NotEqual(t, id, GenerateRequestID())
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}

func TestSanitizeCreateOrderRequest(t *testing.T) {
	input := &requests.CreateOrder{
		Amount:          499,
		DoctorName:      "  Dr. Sarah Williams ",
		Specialty:       " General Medicine",
		AppointmentDate: "2026-03-14 ",
		AppointmentTime: " 10:30 AM",
		PatientName:     " Asha ",
		PatientPhone:    "+91 98765-43210",
	}

	SanitizeCreateOrderRequest(input)

	assert.Equal(t, "INR", input.Currency)
	assert.Equal(t, "Dr. Sarah Williams", input.DoctorName)
	assert.Equal(t, "General Medicine", input.Specialty)
	assert.Equal(t, "2026-03-14", input.AppointmentDate)
	assert.Equal(t, "10:30 AM", input.AppointmentTime)
	assert.Equal(t, "919876543210", input.PatientPhone)
	require.NoError(t, ValidateStruct(input))
}

func TestValidateStruct(t *testing.T) {
	valid := requests.CreateOrder{
		Amount:          499,
		Currency:        "INR",
		DoctorName:      "Dr. Sarah Williams",
		Specialty:       "General Medicine",
		AppointmentDate: "2026-03-14",
		AppointmentTime: "10:30 AM",
		PatientName:     "Asha",
		PatientPhone:    "919876543210",
	}

	t.Run("valid order passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid))
	})

	t.Run("slot label must be 12 hour", func(t *testing.T) {
		input := valid
		input.AppointmentTime = "22:00"
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("phone must carry country code", func(t *testing.T) {
		input := valid
		input.PatientPhone = "09876543210"
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("amount must be positive", func(t *testing.T) {
		input := valid
		input.Amount = 0
		assert.Error(t, ValidateStruct(input))
	})

	t.Run("gateway references reject the payload separator", func(t *testing.T) {
		proof := requests.VerifyPayment{OrderID: "order_1|x", PaymentID: "pay_1", Signature: "ab12"}
		assert.Error(t, ValidateStruct(proof))
	})
}

func TestTruncateNoteValue(t *testing.T) {
	assert.Equal(t, "abc", TruncateNoteValue("abc", 5))
	assert.Equal(t, "ab", TruncateNoteValue("abcdef", 2))
	assert.Equal(t, "हि", TruncateNoteValue("हिंदी", 2))
}
