package auth

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL returns the gravatar avatar URL for an email address. The
// address is trimmed and lowercased before hashing, per the gravatar spec.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x", md5.Sum([]byte(normalized)))
}
