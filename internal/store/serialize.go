package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToWire converts a stored record into its caller-facing form: the internal
// "_id" field is renamed to a public "id" and stringified, and every
// time-valued field is rendered as RFC 3339 text. All other fields pass
// through unchanged. The input record is not modified.
func ToWire(rec Record) Record {
	if rec == nil {
		return nil
	}
	out := make(Record, len(rec))
	for k, v := range rec {
		if k == "_id" {
			out["id"] = idString(v)
			continue
		}
		out[k] = wireValue(v)
	}
	return out
}

// ToWireList applies ToWire to every record, preserving order.
func ToWireList(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = ToWire(rec)
	}
	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}

func wireValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}
