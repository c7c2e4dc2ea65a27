package render

import "strings"

// MaskEmail hides most of the local part: first two characters, a mask, the
// last character, then the full domain. "ab@example.com" → "ab***b@example.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	local, domain := email[:at], email[at:]

	head := local
	if len(head) > 2 {
		head = head[:2]
	}
	tail := local[len(local)-1:]
	return head + "***" + tail + domain
}

// MaskPhone strips whitespace and hides the middle digits: first four
// characters, a mask, the last three. "+234 800 000 0000" → "+234****000".
func MaskPhone(phone string) string {
	s := strings.Join(strings.Fields(phone), "")
	if len(s) < 8 {
		return s
	}
	return s[:4] + "****" + s[len(s)-3:]
}
