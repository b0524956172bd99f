package pathalias

import "regexp"

// Comment patterns stripped before JSON parsing. tsconfig-style files allow
// // and /* */ comments that encoding/json rejects.
var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
)

// StripComments removes // and /* */ comments from tolerant-JSON content.
// This is a best-effort textual strip, not a tokenizer: comment-like
// sequences inside string literals (e.g. a baseUrl of "http://x") are
// mis-stripped. Known limitation; such configs degrade to no aliases via
// the subsequent JSON parse failure.
func StripComments(data []byte) []byte {
	out := blockCommentRe.ReplaceAll(data, nil)
	out = lineCommentRe.ReplaceAll(out, nil)
	return out
}
