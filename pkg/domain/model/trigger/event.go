package trigger

import (
	"encoding/json"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/flare/pkg/domain/model/alert"
	"github.com/secmon-lab/flare/pkg/domain/model/errs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// DocumentEvent is a Firestore document write delivered to the trigger
// endpoint. Value is nil when the document was deleted; OldValue is nil when
// it was created.
type DocumentEvent struct {
	Value    *firestorepb.Document
	OldValue *firestorepb.Document
}

// jsonEvent is the JSON form shared by Cloud Functions Firestore events and
// Eventarc DocumentEventData. Background function deliveries wrap it in a
// data envelope.
type jsonEvent struct {
	Value    json.RawMessage `json:"value"`
	OldValue json.RawMessage `json:"oldValue"`
	Data     json.RawMessage `json:"data"`
}

// ParseJSON decodes a document event encoded as JSON. Typed field values are
// decoded by protojson.
func ParseJSON(data []byte) (*DocumentEvent, error) {
	var raw jsonEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(err, "failed to decode document event", goerr.T(errs.TagInvalidRequest))
	}
	if isEmptyJSON(raw.Value) && isEmptyJSON(raw.OldValue) && !isEmptyJSON(raw.Data) {
		return ParseJSON(raw.Data)
	}

	value, err := decodeDocument(raw.Value)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode document value", goerr.T(errs.TagInvalidRequest))
	}
	oldValue, err := decodeDocument(raw.OldValue)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode old document value", goerr.T(errs.TagInvalidRequest))
	}

	return &DocumentEvent{Value: value, OldValue: oldValue}, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func decodeDocument(raw json.RawMessage) (*firestorepb.Document, error) {
	if isEmptyJSON(raw) {
		return nil, nil
	}

	var doc firestorepb.Document
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Field numbers of google.events.cloud.firestore.v1.DocumentEventData. Its
// Document and Value messages share the wire layout of firestore.v1.Document.
const (
	fieldValue    protowire.Number = 1
	fieldOldValue protowire.Number = 2
)

// ParseProto decodes a binary DocumentEventData message as delivered by
// Eventarc with content type application/protobuf.
func ParseProto(data []byte) (*DocumentEvent, error) {
	var ev DocumentEvent

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, goerr.Wrap(protowire.ParseError(n), "invalid document event tag", goerr.T(errs.TagInvalidRequest))
		}
		data = data[n:]

		if typ != protowire.BytesType || (num != fieldValue && num != fieldOldValue) {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, goerr.Wrap(protowire.ParseError(n), "invalid document event field", goerr.T(errs.TagInvalidRequest))
			}
			data = data[n:]
			continue
		}

		b, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, goerr.Wrap(protowire.ParseError(n), "invalid document event field", goerr.T(errs.TagInvalidRequest))
		}
		data = data[n:]

		var doc firestorepb.Document
		if err := proto.Unmarshal(b, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.T(errs.TagInvalidRequest))
		}
		if num == fieldValue {
			ev.Value = &doc
		} else {
			ev.OldValue = &doc
		}
	}

	return &ev, nil
}

// IsCreate reports whether the event describes a newly created document.
func (x *DocumentEvent) IsCreate() bool {
	return x.Value != nil && x.Value.GetName() != "" && (x.OldValue == nil || x.OldValue.GetName() == "")
}

// AlertPath returns the circle and alert IDs addressed by the event.
func (x *DocumentEvent) AlertPath() (*AlertPath, error) {
	name := x.Value.GetName()
	if name == "" {
		name = x.OldValue.GetName()
	}
	return ParseAlertPath(name)
}

// Alert returns the created alert record, or nil when the event carries no
// document.
func (x *DocumentEvent) Alert() *alert.Alert {
	if x.Value == nil || x.Value.GetName() == "" {
		return nil
	}
	return alert.FromFields(Fields(x.Value))
}
