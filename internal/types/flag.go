package types

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

// Flag is a boolean carried as 0/1 on the wire. Decoding also accepts
// true and false.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "1", "true":
		*f = true
	case "0", "false":
		*f = false
	default:
		return fmt.Errorf("flag must be 0 or 1, got %s", data)
	}
	return nil
}

func (f Flag) Value() (driver.Value, error) {
	return bool(f), nil
}

func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}
