package proto

import (
	"strconv"
	"strings"
)

// TagNumber decodes a field tag literal. Negative values clamp to zero
// and values past 32 bits keep their low 32 bits, so a tag never makes
// a field unrepresentable.
func TagNumber(token string) uint32 {
	v := decodeInteger(token)
	if v < 0 {
		return 0
	}
	return uint32(v)
}

// EnumNumber decodes an enum member literal. The sign is kept and
// values past 32 bits keep their low 32 bits.
func EnumNumber(token string) int32 {
	return int32(decodeInteger(token))
}

// decodeInteger reads an optionally signed decimal, hex (0x) or
// leading-zero octal literal. Anything that does not decode cleanly,
// including overflow, yields zero rather than an error.
func decodeInteger(token string) int64 {
	s := token
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var v int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseInt(s[2:], 16, 64)
	case len(s) > 1 && s[0] == '0':
		v, err = strconv.ParseInt(s[1:], 8, 64)
	default:
		v, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0
	}
	if neg {
		return -v
	}
	return v
}
