package client

import "errors"

var (
	// ErrInvalidInput indicates malformed input (not a video ID/URL).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnavailable indicates every client was told the video is unplayable.
	ErrUnavailable = errors.New("video unavailable")
	// ErrLoginRequired indicates every client was refused pending sign-in.
	ErrLoginRequired = errors.New("login required")
	// ErrNoPlayableFormats indicates no usable formats were found.
	ErrNoPlayableFormats = errors.New("no playable formats")
	// ErrAllClientsFailed indicates fallback attempts all failed.
	ErrAllClientsFailed = errors.New("all clients failed")
)
