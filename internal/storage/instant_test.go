package storage

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInstantStoresRFC3339String(t *testing.T) {
	at := At(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))

	typ, data, err := at.MarshalBSONValue()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if typ != bsontype.String {
		t.Fatalf("expected string bson type, got %s", typ)
	}

	var decoded Instant
	if err := decoded.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(at.Time) {
		t.Fatalf("expected %v, got %v", at.Time, decoded.Time)
	}
}

func TestInstantStoredStringsSortChronologically(t *testing.T) {
	// Sub-second fractions of different widths are the trap: an unpadded
	// ".1Z" suffix would sort after ".15Z" even though it is earlier.
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	instants := []Instant{
		At(base.Add(100 * time.Millisecond)),
		At(base.Add(150 * time.Millisecond)),
		At(base.Add(2 * time.Millisecond)),
		At(base.Add(time.Second)),
		At(base),
	}

	stored := make([]string, len(instants))
	for idx, in := range instants {
		typ, data, err := in.MarshalBSONValue()
		if err != nil {
			t.Fatalf("marshal %v: %v", in, err)
		}
		if err := bson.UnmarshalValue(typ, data, &stored[idx]); err != nil {
			t.Fatalf("read back %v: %v", in, err)
		}
	}

	for i := range instants {
		for j := range instants {
			timeOrder := instants[i].Before(instants[j].Time)
			stringOrder := stored[i] < stored[j]
			if timeOrder != stringOrder {
				t.Fatalf("string order diverges from time order: %q vs %q", stored[i], stored[j])
			}
		}
	}
}

func TestInstantReadsNativeDatetime(t *testing.T) {
	at := time.Date(2023, 11, 5, 8, 0, 0, 0, time.UTC)

	typ, data, err := bson.MarshalValue(primitive.NewDateTimeFromTime(at))
	if err != nil {
		t.Fatalf("marshal datetime: %v", err)
	}

	var decoded Instant
	if err := decoded.UnmarshalBSONValue(typ, data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(at) {
		t.Fatalf("expected %v, got %v", at, decoded.Time)
	}
}

func TestInstantRejectsOtherTypes(t *testing.T) {
	typ, data, err := bson.MarshalValue(int64(42))
	if err != nil {
		t.Fatalf("marshal int: %v", err)
	}

	var decoded Instant
	if err := decoded.UnmarshalBSONValue(typ, data); err == nil {
		t.Fatal("expected error decoding int64 as instant")
	}
}

func TestInstantJSONIsRFC3339(t *testing.T) {
	at := At(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))

	payload, err := json.Marshal(at)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `"2024-03-01T12:30:00Z"` {
		t.Fatalf("unexpected json: %s", payload)
	}

	var decoded Instant
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(at.Time) {
		t.Fatalf("expected %v, got %v", at.Time, decoded.Time)
	}
}
