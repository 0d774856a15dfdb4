package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"
)

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify converts a title into a URL-safe slug with a short random suffix,
// e.g. "Best ceremonial grade?" -> "best-ceremonial-grade-x3k9f2".
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	if slug == "" {
		slug = "untitled"
	}
	return slug + "-" + randomSuffix(6)
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixCharset))))
		if err != nil {
			// Fallback to less secure random if crypto rand fails (highly unlikely)
			b[i] = 'x'
			continue
		}
		b[i] = suffixCharset[num.Int64()]
	}
	return string(b)
}
