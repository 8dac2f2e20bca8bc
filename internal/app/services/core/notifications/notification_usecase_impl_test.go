package notifications

import (
	"context"
	"testing"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEmailProvider struct {
	mock.Mock
}

func (m *mockEmailProvider) Name() string { return "mock" }

func (m *mockEmailProvider) Send(ctx context.Context, message *requests.EmailMessage) (map[string]interface{}, error) {
	args := m.Called(ctx, message)
	data, _ := args.Get(0).(map[string]interface{})
	return data, args.Error(1)
}

func newTestUsecase(provider *mockEmailProvider) *notificationUsecase {
	return &notificationUsecase{
		EmailProvider:  provider,
		InternalConfig: &config.InternalConfig{
			App:          config.App{FrontendURL: "https://mediconnect.example/"},
			Notification: config.AppNotification{EmailSender: "MediConnect <onboarding@resend.dev>"},
			Reminder:     config.AppReminder{LeadTimeInMinutes: 10},
		},
		Log: zap.NewNop(),
	}
}

func TestNotificationUsecase_SendConfirmation(t *testing.T) {
	provider := new(mockEmailProvider)
	var sent *requests.EmailMessage
	provider.On("Send", mock.Anything, mock.AnythingOfType("*requests.EmailMessage")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*requests.EmailMessage) }).
		Return(map[string]interface{}{"id": "email_1"}, nil)

	uc := newTestUsecase(provider)
	resp, err := uc.SendConfirmation(context.Background(), &requests.SendConfirmationEmail{
		Email:           "asha@example.com",
		PatientName:     "Asha <Rao>",
		DoctorName:      "Dr. Sarah Williams",
		Specialty:       "General Medicine",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "10:30 AM",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "email_1", resp.Data["id"])

	require.NotNil(t, sent)
	assert.Equal(t, []string{"asha@example.com"}, sent.To)
	assert.Equal(t, "Appointment Confirmation - MediConnect", sent.Subject)
	assert.Equal(t, "MediConnect <onboarding@resend.dev>", sent.From)
	assert.Contains(t, sent.HTML, "Dr. Sarah Williams")
	assert.Contains(t, sent.HTML, "Video Consultation")
	assert.Contains(t, sent.HTML, "https://mediconnect.example/appointments")
	assert.Contains(t, sent.HTML, "Asha &lt;Rao&gt;")
	assert.NotContains(t, sent.HTML, "Asha <Rao>")
}

func TestNotificationUsecase_SendReminder(t *testing.T) {
	provider := new(mockEmailProvider)
	var sent *requests.EmailMessage
	provider.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*requests.EmailMessage) }).
		Return(map[string]interface{}{"id": "email_2"}, nil)

	uc := newTestUsecase(provider)
	_, err := uc.SendReminder(context.Background(), &requests.SendReminderEmail{
		Email:            "asha@example.com",
		PatientName:      "Asha Rao",
		DoctorName:       "Dr. Sarah Williams",
		Specialty:        "General Medicine",
		AppointmentTime:  "10:30 AM",
		ConsultationLink: "https://mediconnect.example/consultation/appt-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Your Consultation Starts in 10 Minutes - MediConnect", sent.Subject)
	assert.Contains(t, sent.HTML, "https://mediconnect.example/consultation/appt-1")
	assert.Contains(t, sent.HTML, "Join Consultation Now")
}

func TestNotificationUsecase_SendReminder_SubjectFollowsLeadTime(t *testing.T) {
	provider := new(mockEmailProvider)
	var sent *requests.EmailMessage
	provider.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*requests.EmailMessage) }).
		Return(map[string]interface{}{"id": "email_3"}, nil)

	uc := newTestUsecase(provider)
	uc.InternalConfig.Reminder.LeadTimeInMinutes = 30
	_, err := uc.SendReminder(context.Background(), &requests.SendReminderEmail{
		Email:       "asha@example.com",
		PatientName: "Asha Rao",
		DoctorName:  "Dr. Sarah Williams",
		Specialty:   "General Medicine",
	})
	require.NoError(t, err)
	assert.Equal(t, "Your Consultation Starts in 30 Minutes - MediConnect", sent.Subject)
}

func TestNotificationUsecase_ProviderFailure(t *testing.T) {
	provider := new(mockEmailProvider)
	provider.On("Send", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrNotificationFailed("mock", 422, `{"message":"invalid from"}`))

	uc := newTestUsecase(provider)
	resp, err := uc.SendReminder(context.Background(), &requests.SendReminderEmail{
		Email:           "asha@example.com",
		PatientName:     "Asha Rao",
		DoctorName:      "Dr. Sarah Williams",
		Specialty:       "General Medicine",
		AppointmentTime: "10:30 AM",
	})
	assert.Nil(t, resp)
	assert.Equal(t, "NOTIFICATION_ERROR", exceptions.CodeOf(err))
}
