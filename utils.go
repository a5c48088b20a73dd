package icao24

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// MaxAddress is the highest value of the 24-bit address space.
const MaxAddress = 0xFFFFFF

// ErrInvalidAddressFormat is returned by every lookup when the input is not
// a non-empty string of hexadecimal digits.
var ErrInvalidAddressFormat = errors.New("invalid ICAO 24-bit address format")

// Address is a parsed ICAO address. Values above MaxAddress are kept as is:
// they are lexically valid but belong to no range.
type Address uint64

// InRange reports whether a fits in the 24-bit address space.
func (a Address) InRange() bool {
	return a <= MaxAddress
}

func (a Address) String() string {
	return fmt.Sprintf("%06x", uint64(a))
}

// MarshalText renders the address in its canonical hex form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAddress checks that s consists of hex digits only and parses it.
func ParseAddress(s string) (Address, error) {
	if !isHex(s) {
		return 0, errors.Wrapf(ErrInvalidAddressFormat, "the value %q is not a valid ICAO 24-bit address", s)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		// only a range error is possible past the lexical check
		return Address(math.MaxUint64), nil
	}

	return Address(v), nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func isCountryCode(code string) bool {
	return len(code) == 2 &&
		code[0] >= 'A' && code[0] <= 'Z' &&
		code[1] >= 'A' && code[1] <= 'Z'
}
