package gocalc

import "strconv"

// FormatValue renders v for display. precision is the number of
// significant digits; -1 selects the shortest exact representation.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
