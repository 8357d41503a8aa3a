package shortlink

import (
	"strconv"
	"strings"
)

// Encode renders a recipe id as its short code.
func Encode(id int64) string {
	return strconv.FormatInt(id, 16)
}

// Decode parses a short code back into a recipe id.
func Decode(code string) (int64, error) {
	code = strings.ToLower(code)
	if code == "" || strings.TrimLeft(code, "0123456789abcdef") != "" {
		return 0, ErrInvalidCode
	}
	id, err := strconv.ParseInt(code, 16, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCode
	}
	return id, nil
}
