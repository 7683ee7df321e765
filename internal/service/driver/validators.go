package driver

import "strings"

func normalizeCity(city string) string {
	return strings.TrimSpace(city)
}

func isValidCity(city string) bool {
	return normalizeCity(city) != ""
}

func isValidDriverID(id int64) bool {
	return id > 0
}
