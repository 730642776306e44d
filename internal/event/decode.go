package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
)

// ErrPayloadMismatch is returned when an event's payload cannot be read as the requested type
var ErrPayloadMismatch = errors.New("event payload mismatch")

// DecodePayload reads the payload of evt as T. Payloads published in-process
// are returned as-is, by value or by pointer. Anything else, such as a map
// from a serialized source, goes through a JSON round trip.
func DecodePayload[T any](evt Event) (T, error) {
	var result T
	switch v := evt.Payload.(type) {
	case nil:
		return result, fmt.Errorf("%w: %s has no payload", ErrPayloadMismatch, evt.Type)
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%w: %s has no payload", ErrPayloadMismatch, evt.Type)
		}
		return *v, nil
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrPayloadMismatch, evt.Type, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrPayloadMismatch, evt.Type, err)
	}
	return result, nil
}

// ToolPayload decodes the payload of a tool event
func ToolPayload(evt Event) (domain.ToolActionPayload, error) {
	return DecodePayload[domain.ToolActionPayload](evt)
}
