package conv

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// AsKey returns a comparable key for a JSON-RPC id. Numeric ids decoded as
// float64 and their integer forms share a key, so a cancellation naming
// requestId 5 finds the request sent with id 5.
func AsKey(id interface{}) string {
	switch actual := id.(type) {
	case nil:
		return ""
	case string:
		return actual
	case json.Number:
		return actual.String()
	case float64:
		if actual == math.Trunc(actual) && math.Abs(actual) < 1<<53 {
			return strconv.FormatInt(int64(actual), 10)
		}
		return strconv.FormatFloat(actual, 'g', -1, 64)
	case float32:
		return AsKey(float64(actual))
	}
	return fmt.Sprint(id)
}
