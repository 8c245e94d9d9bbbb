package pubsub

import (
	"encoding/json"

	"carvalue/internal/domain/service"
	"carvalue/internal/errors"
)

// encodedEvent is a report event ready for either transport.
type encodedEvent struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serializes event and lifts its routing fields into attributes so
// subscribers can filter without decoding. Events for one report share an
// ordering key, which keeps "created" ahead of any approval change.
func encodeEvent(event *service.ReportEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("nil report event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal report event")
	}

	attributes := map[string]string{
		"type":      event.Type,
		"report_id": event.ReportID,
		"user_id":   event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: event.ReportID,
	}, nil
}
