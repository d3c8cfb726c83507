package api

import (
	"strconv"
	"strings"
)

// decimal parses money fields the server renders either as JSON numbers
// or as decimal strings like "399.00".
type decimal float64

func (d *decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*d = decimal(v)
	return nil
}
