package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a JSON numeric field that also accepts numeric strings,
// so clients may send either `"age": 14` or `"age": "14"`.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}

	*n = Number(f)
	return nil
}

// Float returns the value as a float64
func (n Number) Float() float64 {
	return float64(n)
}

// Int returns the value truncated to an int
func (n Number) Int() int {
	return int(n)
}

// IsInt reports whether the value has no fractional part
func (n Number) IsInt() bool {
	return n == Number(int(n))
}
