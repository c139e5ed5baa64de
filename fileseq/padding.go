package fileseq

import (
	"fmt"
	"strconv"
	"strings"
)

// Padding describes the zero-padded width of a frame number field.
//
// Explicit padding comes from observing one or more leading zeros in a
// parsed number string and is authoritative: it is preserved across
// operations and two explicit paddings must agree in width to combine.
// Implicit padding is a provisional guess taken from the digit count of an
// unpadded number string; it yields to any explicit padding it is combined
// with.
type Padding struct {
	explicit bool
	digits   uint32
}

// invalidPadding is the sentinel failure value of Combine: digits == 0.
var invalidPadding = Padding{}

// ParsePadding derives a Padding from a signed integer literal string, such
// as one captured from a FrameRange's inTime or outTime. It fails if s is
// empty, "-", or contains a non-digit character.
func ParsePadding(s string) (Padding, error) {
	if s == "" || s == "-" {
		return invalidPadding, fmt.Errorf("%w: empty padding source %q", ErrParse, s)
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" {
		return invalidPadding, fmt.Errorf("%w: empty padding source %q", ErrParse, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return invalidPadding, fmt.Errorf("%w: %q is not numeric", ErrParse, s)
		}
	}
	// "0" and "-0" are the documented sentinels: always implicit.
	if digits == "0" {
		return Padding{explicit: false, digits: uint32(len(s))}, nil
	}
	if digits[0] == '0' {
		return Padding{explicit: true, digits: uint32(len(s))}, nil
	}
	return Padding{explicit: false, digits: uint32(len(s))}, nil
}

// CheckPadding reports whether s can be parsed by ParsePadding, without
// constructing a Padding.
func CheckPadding(s string) bool {
	_, err := ParsePadding(s)
	return err == nil
}

// CombinePadding combines two Paddings per the algebra in the package
// documentation: invalid absorbs, equal explicit widths agree, a lone
// explicit value wins over implicit, and two implicit values combine to the
// narrower of the two. The result is commutative and associative, and
// CombinePadding(p, p) == p for any valid p.
func CombinePadding(a, b Padding) Padding {
	if !a.IsValid() || !b.IsValid() {
		return invalidPadding
	}
	switch {
	case a.explicit && b.explicit:
		if a.digits == b.digits {
			return a
		}
		return invalidPadding
	case a.explicit:
		return a
	case b.explicit:
		return b
	default:
		if a.digits < b.digits {
			return a
		}
		return b
	}
}

// IsValid reports whether p is not the invalid sentinel.
func (p Padding) IsValid() bool {
	return p.digits != 0
}

// IsExplicit reports whether p was derived from an observed leading zero.
func (p Padding) IsExplicit() bool {
	return p.explicit
}

// AsExplicitWidth returns the width to pad a frame number to: p.digits if
// p is explicit, or 1 (no padding) otherwise.
func (p Padding) AsExplicitWidth() uint32 {
	if p.explicit {
		return p.digits
	}
	return 1
}

// Equal reports whether p and other have identical explicitness and width.
// Use CombinePadding to test compatibility instead of strict equality.
func (p Padding) Equal(other Padding) bool {
	return p.explicit == other.explicit && p.digits == other.digits
}

// FormatFrame zero-pads abs(frame) to p.AsExplicitWidth(), with a leading
// "-" for negative frames counting toward that width.
func (p Padding) FormatFrame(frame int32) string {
	width := int(p.AsExplicitWidth())
	sign := ""
	n := int64(frame)
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	padTo := width - len(sign)
	if padTo > len(digits) {
		digits = strings.Repeat("0", padTo-len(digits)) + digits
	}
	return sign + digits
}

func (p Padding) String() string {
	if !p.IsValid() {
		return "<invalid padding>"
	}
	if p.explicit {
		return fmt.Sprintf("explicit(%d)", p.digits)
	}
	return fmt.Sprintf("implicit(%d)", p.digits)
}
