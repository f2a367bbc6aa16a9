package helpers

import "strconv"

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseID parses a path parameter into a record id. Negative values are
// rejected; zero is a legal id and must stay parseable.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
