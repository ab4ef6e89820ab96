package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// LenientAmount is a money field that tolerates sloppy input. Walk-up
// transactions are sometimes saved with the amount box untouched, so a blank
// string, null, or missing field decodes to zero instead of failing the save.
type LenientAmount float64

// UnmarshalJSON accepts a JSON number, a numeric string, an empty string,
// or null. Anything non-numeric defaults to zero.
func (a *LenientAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*a = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = LenientAmount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*a = 0
		return nil
	}
	*a = LenientAmount(v)
	return nil
}
