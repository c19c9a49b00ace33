package jsonrpc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

type idKind uint8

const (
	idNull idKind = iota
	idString
	idNumber
)

/*
ID is a request identifier: a string, an integral number, or null. The null
ID marks notifications. IDs are plain comparable values, so they key the
client's pending-request tables directly and two IDs correlate exactly when
they are equal.
*/
type ID struct {
	kind idKind
	str  string
	num  int64
}

// NullID returns the null identifier carried by notifications.
func NullID() ID {
	return ID{}
}

// StringID returns the identifier for a string value.
func StringID(value string) ID {
	return ID{kind: idString, str: value}
}

// Int64ID returns the identifier for an integral value.
func Int64ID(value int64) ID {
	return ID{kind: idNumber, num: value}
}

// RandomID returns a fresh string identifier for correlating a new request.
func RandomID() ID {
	return StringID(uuid.New().String())
}

// IsNull reports whether id marks a notification.
func (id ID) IsNull() bool { return id.kind == idNull }

// IsString reports whether id carries a string value.
func (id ID) IsString() bool { return id.kind == idString }

// IsInt64 reports whether id carries an integral value.
func (id ID) IsInt64() bool { return id.kind == idNumber }

// String renders id for logs: strings verbatim, numbers in decimal, the
// null identifier as "null".
func (id ID) String() string {
	switch id.kind {
	case idString:
		return id.str
	case idNumber:
		return strconv.FormatInt(id.num, 10)
	}

	return "null"
}

// MarshalJSON writes the wire form of id.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idString:
		return json.Marshal(id.str)
	case idNumber:
		return strconv.AppendInt(nil, id.num, 10), nil
	}

	return []byte("null"), nil
}

// UnmarshalJSON accepts strings, integral numbers, and null. Whole floats
// such as 2.0 normalize to their integral value; fractional numbers cannot
// identify a request and are rejected, as are booleans, objects and arrays.
func (id *ID) UnmarshalJSON(data []byte) error {
	text := string(data)

	if text == "null" {
		*id = ID{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = StringID(value)
		return nil
	}

	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		*id = Int64ID(value)
		return nil
	}

	// math.MaxInt64 rounds up to 2^63 as a float64, so the bound is inclusive.
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || value != math.Trunc(value) || value < math.MinInt64 || value >= math.MaxInt64 {
		return fmt.Errorf("invalid id %s: want a string, an integral number or null", text)
	}

	*id = Int64ID(int64(value))
	return nil
}
