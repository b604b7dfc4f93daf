package services

import "strings"

// NormalizeEmail is the single normalization point used when correlating
// records owned by different aggregates (users, clients, inquiries).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
