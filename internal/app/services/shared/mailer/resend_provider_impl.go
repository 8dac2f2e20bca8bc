package mailer

import (
	"bytes"
	"context"
	"io"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const resendEmailsPath = "/emails"

type resendProvider struct {
	BaseUrl string
	apiKey  string
	client  *http.Client
	Log     *zap.Logger
}

func NewResendProvider(cfg config.AppNotification, logger *zap.Logger) (contracts.EmailProvider, error) {
	if cfg.ResendAPIKey == "" {
		return nil, exceptions.ErrNotificationProviderNotConfigured()
	}

	timeout := time.Duration(cfg.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &resendProvider{
		BaseUrl: strings.TrimRight(cfg.ResendBaseUrl, "/"),
		apiKey:  cfg.ResendAPIKey,
		client:  &http.Client{Timeout: timeout},
		Log:     logger,
	}, nil
}

func (p *resendProvider) Name() string {
	return constvars.EmailProviderResend
}

func (p *resendProvider) Send(ctx context.Context, message *requests.EmailMessage) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	requestJSON, err := json.Marshal(message)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, p.BaseUrl+resendEmailsPath, bytes.NewReader(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+p.apiKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		p.Log.Error("resendProvider.Send error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrNotificationSend(err, p.Name())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		p.Log.Error("resendProvider.Send provider rejected message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorBodyKey, string(body)),
		)
		return nil, exceptions.ErrNotificationFailed(p.Name(), resp.StatusCode, string(body))
	}

	data := map[string]interface{}{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, exceptions.ErrNotificationSend(err, p.Name())
		}
	}
	return data, nil
}
