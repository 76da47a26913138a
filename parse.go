package unixmode

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parse parses the symbolic form produced by String, like "rwxr-xr-x",
// including the 's', 'S', 't', 'T' substitutions for extra bits.
// A 10 character string is accepted as the `ls -l` form whose leading
// file type character is ignored.
// Parse is the inverse of String: Parse(m.String()) returns m
// for every Mode.
func Parse(s string) (Mode, error) {
	switch len(s) {
	case 9:
	case 10:
		s = s[1:]
	default:
		return 0, errors.Wrapf(ErrInvalidLength, "invalid length %d", len(s))
	}
	const rwx = "rwxrwxrwx"
	var m Mode
	for i := 0; i < len(s); i++ {
		bit := Mode(1) << uint(8-i)
		c := s[i]
		switch {
		case c == '-':
		case c == rwx[i]:
			m |= bit
		case i == 2 && c == 's':
			m |= bit | Setuid
		case i == 2 && c == 'S':
			m |= Setuid
		case i == 5 && c == 's':
			m |= bit | Setgid
		case i == 5 && c == 'S':
			m |= Setgid
		case i == 8 && c == 't':
			m |= bit | Sticky
		case i == 8 && c == 'T':
			m |= Sticky
		default:
			return 0, errors.Errorf("invalid character %q at position %d", c, i)
		}
	}
	return m, nil
}

// ParseOctal parses a mode from octal text like "644", "0644", or "4755".
// It allows, but does not require, any number of leading zeros.
// Values with bits above ModeMask are rejected with ErrDisallowedBits:
// unlike FromBits, which masks raw integers, octal text is typically
// human or configuration input where unexpected bits indicate a mistake.
func ParseOctal(s string) (Mode, error) {
	value, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, errors.Wrap(err, "unable to parse octal mode")
	}
	if value > uint64(ModeMask) {
		return 0, ErrDisallowedBits
	}
	return Mode(value), nil
}

// MarshalText implements the encoding.TextMarshaler interface
// using the Octal form.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.Octal()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
// for octal text like "0644", as used when a Mode is embedded in
// JSON, YAML, or TOML configuration structs.
// The receiver is left unmodified when parsing fails.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseOctal(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
