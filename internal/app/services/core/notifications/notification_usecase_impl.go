package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	EmailProvider  contracts.EmailProvider
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	emailProvider contracts.EmailProvider,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		instance := &notificationUsecase{
			EmailProvider:  emailProvider,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		notificationUsecaseInstance = instance
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) SendConfirmation(ctx context.Context, request *requests.SendConfirmationEmail) (*responses.SendEmail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.SendConfirmation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailProviderKey, uc.EmailProvider.Name()),
	)

	consultationType := request.ConsultationType
	if consultationType == "" {
		consultationType = constvars.DefaultConsultationType
	}

	html, err := render(confirmationTemplate, constvars.EmailTemplateConfirmation, confirmationEmailData{
		Styles:           template.CSS(emailStyles),
		PatientName:      request.PatientName,
		DoctorName:       request.DoctorName,
		Specialty:        request.Specialty,
		AppointmentDate:  request.AppointmentDate,
		AppointmentTime:  request.AppointmentTime,
		ConsultationType: consultationType,
		AppointmentsLink: fmt.Sprintf(constvars.EmailAppointmentsPathFormat, uc.frontendURL()),
		SupportEmail:     constvars.EmailSupportAddress,
		Year:             time.Now().Year(),
	})
	if err != nil {
		uc.Log.Error("notificationUsecase.SendConfirmation error rendering template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.send(ctx, "notificationUsecase.SendConfirmation", request.Email, constvars.EmailConfirmationSubjectMessage, html)
}

// SendReminder falls back to the appointments page when no consultation link is given.
func (uc *notificationUsecase) SendReminder(ctx context.Context, request *requests.SendReminderEmail) (*responses.SendEmail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.SendReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailProviderKey, uc.EmailProvider.Name()),
	)

	link := request.ConsultationLink
	if link == "" {
		link = fmt.Sprintf(constvars.EmailAppointmentsPathFormat, uc.frontendURL())
	}

	html, err := render(reminderTemplate, constvars.EmailTemplateReminder, reminderEmailData{
		Styles:           template.CSS(emailStyles),
		PatientName:      request.PatientName,
		DoctorName:       request.DoctorName,
		Specialty:        request.Specialty,
		AppointmentDate:  request.AppointmentDate,
		AppointmentTime:  request.AppointmentTime,
		ConsultationLink: link,
		SupportEmail:     constvars.EmailSupportAddress,
		Year:             time.Now().Year(),
	})
	if err != nil {
		uc.Log.Error("notificationUsecase.SendReminder error rendering template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	subject := fmt.Sprintf(constvars.EmailReminderSubjectFormat, uc.InternalConfig.Reminder.LeadTimeInMinutes)
	return uc.send(ctx, "notificationUsecase.SendReminder", request.Email, subject, html)
}

func (uc *notificationUsecase) send(ctx context.Context, operation, to, subject, html string) (*responses.SendEmail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, err := uc.EmailProvider.Send(ctx, &requests.EmailMessage{
		From:    uc.InternalConfig.Notification.EmailSender,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		uc.Log.Error(operation+" error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailProviderKey, uc.EmailProvider.Name()),
			zap.String(constvars.LoggingEmailSubjectKey, subject),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "email_sent", requestID,
		zap.String(constvars.LoggingEmailProviderKey, uc.EmailProvider.Name()),
		zap.String(constvars.LoggingEmailSubjectKey, subject),
		zap.String("recipient", utils.MaskEmail(to)),
	)
	return &responses.SendEmail{Success: true, Data: data}, nil
}

func (uc *notificationUsecase) frontendURL() string {
	return strings.TrimRight(uc.InternalConfig.App.FrontendURL, "/")
}

func render(tmpl *template.Template, name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", exceptions.ErrNotificationTemplate(err, name)
	}
	return buf.String(), nil
}
