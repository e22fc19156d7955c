package trigger

import (
	"cloud.google.com/go/firestore/apiv1/firestorepb"
)

// Fields converts the typed fields of a document into plain Go values, the
// same representation firestore.DocumentSnapshot.Data returns.
func Fields(doc *firestorepb.Document) map[string]any {
	if doc == nil {
		return nil
	}

	fields := make(map[string]any, len(doc.GetFields()))
	for k, v := range doc.GetFields() {
		fields[k] = Value(v)
	}
	return fields
}

// Value converts one typed Firestore value. Integers become int64, doubles
// float64, timestamps time.Time and maps map[string]any.
func Value(v *firestorepb.Value) any {
	if v == nil {
		return nil
	}

	switch x := v.GetValueType().(type) {
	case *firestorepb.Value_NullValue:
		return nil
	case *firestorepb.Value_BooleanValue:
		return x.BooleanValue
	case *firestorepb.Value_IntegerValue:
		return x.IntegerValue
	case *firestorepb.Value_DoubleValue:
		return x.DoubleValue
	case *firestorepb.Value_TimestampValue:
		return x.TimestampValue.AsTime()
	case *firestorepb.Value_StringValue:
		return x.StringValue
	case *firestorepb.Value_BytesValue:
		return x.BytesValue
	case *firestorepb.Value_ReferenceValue:
		return x.ReferenceValue
	case *firestorepb.Value_GeoPointValue:
		return x.GeoPointValue
	case *firestorepb.Value_ArrayValue:
		values := make([]any, 0, len(x.ArrayValue.GetValues()))
		for _, e := range x.ArrayValue.GetValues() {
			values = append(values, Value(e))
		}
		return values
	case *firestorepb.Value_MapValue:
		m := make(map[string]any, len(x.MapValue.GetFields()))
		for k, e := range x.MapValue.GetFields() {
			m[k] = Value(e)
		}
		return m
	default:
		return nil
	}
}
