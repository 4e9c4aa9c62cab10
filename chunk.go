package pagesift

import "unicode/utf8"

// DefaultMaxLength is the default segment length in characters.
const DefaultMaxLength = 6000

// Split partitions text into consecutive segments of exactly maxLength
// characters, except the last which holds the remainder.
// Lengths count Unicode code points, so a segment never ends inside a
// multi-byte sequence. Joining the segments in order reproduces text exactly.
//
// Split is purely positional: it does not look at words, sentences or lines.
// Returns nil for empty text and EINVALID if maxLength is not positive.
func Split(text string, maxLength int) ([]string, error) {
	if maxLength <= 0 {
		return nil, Errorf(EINVALID, "max length must be positive, got %d", maxLength)
	}
	if text == "" {
		return nil, nil
	}

	segments := make([]string, 0, utf8.RuneCountInString(text)/maxLength+1)
	start, n := 0, 0
	for i := range text {
		if n == maxLength {
			segments = append(segments, text[start:i])
			start, n = i, 0
		}
		n++
	}
	return append(segments, text[start:]), nil
}
