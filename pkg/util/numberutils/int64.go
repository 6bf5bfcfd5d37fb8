package numberutils

import (
	"strconv"
)

// ToInt64WithError converts the given string to an int64 and returns any error that occurred during conversion.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}

// IsInt64Positive checks if the given int64 is positive.
func IsInt64Positive(number int64) bool {
	return number > 0
}
