package domain

import (
	"errors"
	"regexp"
	"strconv"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ErrIDOutOfRange is returned by ParseID for digit strings beyond the range of
// the serial id columns (32-bit). No row can carry such an id, so callers
// treat it as absent.
var ErrIDOutOfRange = errors.New("id out of range")

// ParseID parses a path identifier. The check is purely syntactic: the raw
// value must consist of decimal digits only, so signs, spaces and decimal
// points are all rejected with invalid.
func ParseID(raw string, invalid *Failure) (int64, error) {
	if !digitsOnly.MatchString(raw) {
		return 0, invalid
	}

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, ErrIDOutOfRange
	}

	return id, nil
}

// ParseArticleID parses an article_id path parameter.
func ParseArticleID(raw string) (int64, error) {
	return ParseID(raw, ErrInvalidArticleID)
}

// ParseCommentID parses a comment_id path parameter.
func ParseCommentID(raw string) (int64, error) {
	return ParseID(raw, ErrInvalidCommentID)
}
