// Package storage holds types shared by the MongoDB-backed repositories.
package storage

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// storedLayout is RFC 3339 with the fraction padded to nine digits. The
// padding keeps stored strings fixed-width so the store's lexicographic
// comparisons order them chronologically; the newest-first transaction
// listings sort on these strings.
const storedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Instant is the canonical point-in-time type at the store boundary. Documents
// are written with fixed-width RFC 3339 strings, but earlier revisions of the
// store hold native BSON datetimes, so reads accept either form. On the API it
// serializes as an RFC 3339 string via the embedded time.Time.
type Instant struct {
	time.Time
}

// Now returns the current instant in UTC.
func Now() Instant {
	return Instant{time.Now().UTC()}
}

// At wraps an existing time as an Instant.
func At(t time.Time) Instant {
	return Instant{t.UTC()}
}

// MarshalBSONValue writes the instant as a fixed-width RFC 3339 string.
func (i Instant) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(i.Time.UTC().Format(storedLayout))
}

// UnmarshalBSONValue reads an instant stored either as a string or as a BSON
// datetime.
func (i *Instant) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse stored instant %q: %w", s, err)
		}
		i.Time = parsed.UTC()
		return nil
	case bsontype.DateTime:
		var dt primitive.DateTime
		if err := bson.UnmarshalValue(t, data, &dt); err != nil {
			return err
		}
		i.Time = dt.Time().UTC()
		return nil
	case bsontype.Null:
		i.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot decode %s as instant", t)
	}
}
