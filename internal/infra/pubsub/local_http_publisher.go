package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "carvalue/internal/delivery/context"
	"carvalue/internal/domain/service"
	"carvalue/internal/errors"

	"github.com/google/uuid"
)

const (
	localSubscription = "projects/local/subscriptions/report-events"
	localTimeout      = 10 * time.Second
)

// PushMessage is the body a Pub/Sub push subscription delivers. The local
// publisher posts the same shape so a consumer can be developed without GCP.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts every event to endpoint as a push message.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localTimeout},
		logger:   logger.With(slog.String("endpoint", endpoint)),
	}
}

func (p *localHTTPPublisher) PublishReportEvent(ctx context.Context, event *service.ReportEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	push.Message.Attributes = encoded.attributes
	push.Message.MessageID = uuid.NewString()
	push.Message.OrderingKey = encoded.orderingKey
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.Wrap(err, "marshal push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post push message")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.Debug("Report event pushed",
		slog.String("type", event.Type),
		slog.String("message_id", push.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
