package monet

import (
	"database/sql/driver"
	"fmt"
)

// Code represents a three-letter currency code, such as the alphabetic codes
// defined by [ISO 4217].
// A valid code consists of exactly 3 ASCII letters and is always stored in
// upper case.
// Code is a comparable value type: equality is byte-exact and codes can be
// used as map keys.
//
// The zero value does not name a currency; it renders as "XXX" and is
// rejected by [WithCode].
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Code [3]byte

// ParseCode converts a string to a currency code.
// The input must be exactly 3 ASCII letters; lower-case input is normalized
// to upper case:
//
//	USD
//	usd
//
// ParseCode returns [ErrInvalidCode] if the string does not satisfy these
// rules.
func ParseCode(code string) (Code, error) {
	if len(code) != 3 {
		return Code{}, fmt.Errorf("parsing %q: %w", code, ErrInvalidCode)
	}
	var c Code
	for i := 0; i < 3; i++ {
		b := code[i]
		switch {
		case b >= 'A' && b <= 'Z':
		case b >= 'a' && b <= 'z':
			b -= 'a' - 'A'
		default:
			return Code{}, fmt.Errorf("parsing %q: %w", code, ErrInvalidCode)
		}
		c[i] = b
	}
	return c, nil
}

// MustParseCode is like [ParseCode] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currency codes.
func MustParseCode(code string) Code {
	c, err := ParseCode(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCode(%q) failed: %v", code, err))
	}
	return c
}

// isValid reports whether every byte is an upper-case ASCII letter.
func (c Code) isValid() bool {
	for _, b := range c {
		if b < 'A' || b > 'Z' {
			return false
		}
	}
	return true
}

// String implements the [fmt.Stringer] interface.
// The zero value renders as "XXX", indicating an unknown currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Code) String() string {
	if c == (Code{}) {
		return "XXX"
	}
	return string(c[:])
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Code) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Code{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary always appends a 3-letter code.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (c Code) AppendBinary(data []byte) ([]byte, error) {
	return append(data, c.String()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns a 3-letter code.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (c Code) MarshalBinary() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [ParseCode].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (c *Code) UnmarshalBinary(data []byte) error {
	var err error
	*c, err = ParseCode(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Code{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Code) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.String()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCode].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Code) UnmarshalJSON(text []byte) error {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Code{}, err)
	}
	return nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Code) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCode(value)
	case []byte:
		*c, err = ParseCode(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Code{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Code) Value() (driver.Value, error) {
	return c.String(), nil
}
