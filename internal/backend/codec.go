// Package backend speaks to the media backend over JSON lines.
//
// Outbound frames carry one request:
//
//	{"channel":"db","request":{"GetDataOrder":["Album",["ByName"]]}}
//
// Inbound frames carry one push event:
//
//	{"event":"data","payload":{"albums":[...]}}
package backend

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/muse/internal/domain"
)

type requestFrame struct {
	Channel domain.Channel `json:"channel"`
	Request any            `json:"request"`
}

type eventFrame struct {
	Event   domain.EventName `json:"event"`
	Payload json.RawMessage  `json:"payload"`
}

// EncodeRequest renders req as one outbound line, without the newline
func EncodeRequest(req domain.Request) ([]byte, error) {
	b, err := json.Marshal(requestFrame{Channel: req.Channel(), Request: req.Frame()})
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", req, err)
	}
	return b, nil
}

// DecodeEvent parses one inbound line
func DecodeEvent(line []byte) (domain.PushEvent, error) {
	var f eventFrame
	if err := json.Unmarshal(line, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if f.Event == "" {
		return nil, fmt.Errorf("frame without event name: %w", domain.ErrMalformedPayload)
	}
	return domain.DecodeEvent(f.Event, f.Payload)
}

// EncodeEvent renders ev as one inbound line, without the newline
func EncodeEvent(ev domain.PushEvent) ([]byte, error) {
	payload, err := domain.EncodeEvent(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(eventFrame{Event: ev.Name(), Payload: payload})
}
