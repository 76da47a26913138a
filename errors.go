package unixmode

type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	// ErrInvalidLength is returned by Parse when the passed string
	// is not 9 or 10 characters long
	ErrInvalidLength = ConstError("symbolic mode must be 9 or 10 characters long")

	// ErrDisallowedBits is returned by ParseOctal and UnmarshalText
	// when a value has bits set above ModeMask
	ErrDisallowedBits = ConstError("mode contains disallowed bits")
)
