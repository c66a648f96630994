package client

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	videoIDPattern  = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	rawWatchPattern = regexp.MustCompile(`v=([0-9A-Za-z_-]{11})`)
)

// Path segments whose following segment carries the video id.
var idPathMarkers = map[string]bool{
	"embed":  true,
	"shorts": true,
	"v":      true,
	"live":   true,
}

// ParseVideoID accepts either a raw 11-character id or common URL shapes
// and returns the canonical id. Resolving an already-canonical id is the
// identity function.
func ParseVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if videoIDPattern.MatchString(s) {
		return s, nil
	}
	if id, ok := parseVideoURL(s); ok {
		return id, nil
	}
	// Last resort for strings that do not parse as URLs at all.
	if m := rawWatchPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidInput
}

func parseVideoURL(s string) (string, bool) {
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	if u.Host == "" {
		// Scheme-less inputs like "youtube.com/watch?v=..." parse as a bare
		// path; retry with an explicit scheme.
		u, err = url.Parse("https://" + s)
		if err != nil || u.Host == "" {
			return "", false
		}
	}

	segments := strings.FieldsFunc(u.EscapedPath(), func(r rune) bool { return r == '/' })

	if strings.EqualFold(u.Hostname(), "youtu.be") {
		if len(segments) > 0 && videoIDPattern.MatchString(segments[0]) {
			return segments[0], true
		}
		return "", false
	}

	if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
		return id, true
	}

	for i, seg := range segments[:max(len(segments)-1, 0)] {
		if idPathMarkers[strings.ToLower(seg)] && videoIDPattern.MatchString(segments[i+1]) {
			return segments[i+1], true
		}
	}
	return "", false
}
