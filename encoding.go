package decimaldate

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ParseISO parses a date on the form "yyyy-mm-dd".
func ParseISO(s string) (DecimalDate, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return DecimalDate{}, fmt.Errorf("%w: %q is not an ISO date", ErrInvalidValue, s)
	}
	return FromTime(t)
}

// parseText accepts either the yyyymmdd literal or an ISO date.
func parseText(s string) (DecimalDate, error) {
	if strings.Count(s, "-") == 2 {
		return ParseISO(s)
	}
	return FromString(s)
}

// MarshalText implements encoding.TextMarshaler.
func (d DecimalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DecimalDate) UnmarshalText(text []byte) error {
	n, err := parseText(string(text))
	if err != nil {
		return err
	}
	*d = n
	return nil
}

// MarshalJSON encodes the date as the JSON number yyyymmdd.
func (d DecimalDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(d.value)), nil
}

// UnmarshalJSON decodes a JSON number yyyymmdd or a string holding either
// yyyymmdd or yyyy-mm-dd. null leaves d unchanged.
func (d *DecimalDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decimaldate: cannot unmarshal %s: %w", data, err)
		}
		return d.UnmarshalText([]byte(s))
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: cannot unmarshal %s", ErrInvalidValue, data)
	}
	n, err := fromInt64(v)
	if err != nil {
		return err
	}
	*d = n
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the date as an integer.
func (d DecimalDate) MarshalYAML() (any, error) {
	return d.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for integer or string scalars.
func (d *DecimalDate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar date", ErrInvalidType, node.Line)
	}
	if node.Tag == "!!null" {
		return nil
	}
	n, err := parseText(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = n
	return nil
}

// Value implements driver.Valuer, storing the date as an integer.
func (d DecimalDate) Value() (driver.Value, error) {
	return int64(d.value), nil
}

// Scan implements sql.Scanner for integer, text and time columns.
func (d *DecimalDate) Scan(src any) error {
	var (
		n   DecimalDate
		err error
	)
	switch v := src.(type) {
	case int64:
		n, err = fromInt64(v)
	case []byte:
		n, err = parseText(string(v))
	case string:
		n, err = parseText(v)
	case time.Time:
		n, err = FromTime(v)
	case nil:
		*d = DecimalDate{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into DecimalDate", ErrInvalidType, src)
	}
	if err != nil {
		return err
	}
	*d = n
	return nil
}
