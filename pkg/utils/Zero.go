package utils

import "strconv"
import "strings"


// GetZero returns the zero value for T, used throughout the core in place of
// nil-checks against untyped literals.
func GetZero [T any]() T {
	var zero T
	return zero
}

// NormalizePort ensures an RPC port is always dialed/listened on in "host:port"
// suffix form regardless of whether the caller configured it with a leading colon.
func NormalizePort(port int) string {
	asStr := strconv.Itoa(port)
	if strings.HasPrefix(asStr, ":") { return asStr }

	return ":" + asStr
}
