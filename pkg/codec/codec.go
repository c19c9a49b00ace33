// Package codec is the JSON layer the protocol engine is built on. The
// engine deals in text frames end to end, so everything here moves between
// strings and typed values: validate, decode, encode, and point lookups into
// payloads that cannot be decoded as a whole.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned by Validate for text that is not well-formed JSON.
var ErrMalformed = errors.New("malformed JSON text")

// ErrNullPayload is returned by Decode and DecodeInto for a bare null
// payload. encoding/json treats a null token as a decode no-op, which would
// leave the target untouched while reporting success.
var ErrNullPayload = errors.New("cannot decode a null payload")

/*
Validate checks that text is well-formed JSON. It scans the payload without
materializing any values, so it is safe to call on arbitrarily large frames
before committing to a full decode.
*/
func Validate(text string) error {
	if !gjson.Valid(text) {
		return ErrMalformed
	}
	return nil
}

/*
Decode parses text into a fresh value of type T. Object keys that T does not
declare are rejected; keys T declares but the payload omits keep their zero
value.
*/
func Decode[T any](text string) (T, error) {
	var v T
	err := DecodeInto(text, &v)
	return v, err
}

/*
DecodeInto parses text into v. Unlike Decode the caller provides the target,
which allows pre-filled defaults to survive when the payload omits the
corresponding key. A bare null payload is an error, never a silent no-op.
*/
func DecodeInto(text string, v any) error {
	if strings.TrimSpace(text) == "null" {
		return ErrNullPayload
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if dec.More() {
		return errors.New("trailing data after JSON value")
	}

	return nil
}

/*
Encode serializes v to its JSON text form.
*/
func Encode[T any](v T) (string, error) {
	buf, err := json.Marshal(v)

	if err != nil {
		return "", err
	}

	return string(buf), nil
}

/*
Extract decodes a single field out of text by path, leaving the rest of the
payload untouched. It is the recovery path for envelopes that fail to decode
as a whole but still carry usable fragments.
*/
func Extract[T any](text string, path string) (T, error) {
	var v T

	field := gjson.Get(text, path)
	if !field.Exists() {
		return v, fmt.Errorf("path %q not found", path)
	}

	if err := json.Unmarshal([]byte(field.Raw), &v); err != nil {
		return v, err
	}

	return v, nil
}
