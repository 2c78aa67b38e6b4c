package descriptor

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

// DefaultSysmemHash is the fingerprint of the sysmem.c shipped with the
// IDE since version 1.4.0. Archives are expected to carry that exact
// file unless the caller supplies a reference of their own.
const DefaultSysmemHash = "f757d275b06e3ed0cab2a4da40a6b131"

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	// Trailing line comment at end of content only; '$' is intentionally
	// not multiline to reproduce the reference fingerprints.
	tailCommentRe = regexp.MustCompile(`//[^\n]*$`)
)

// SysmemHash fingerprints sysmem.c content with comments and carriage
// returns normalized away, so the check survives license-header and
// line-ending churn.
func SysmemHash(content []byte) string {
	s := blockCommentRe.ReplaceAllString(string(content), "")
	s = tailCommentRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\r", "")
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
