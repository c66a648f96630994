package client

import (
	"errors"
	"testing"
)

func TestParseVideoID_SupportedShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "  dQw4w9WgXcQ  ", want: "dQw4w9WgXcQ"},
		{in: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://youtu.be/dQw4w9WgXcQ?t=42", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://m.youtube.com/watch?v=dQw4w9WgXcQ&pp=ygU=", want: "dQw4w9WgXcQ"},
		{in: "youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/shorts/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/shorts/dQw4w9WgXcQ/extra", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/v/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/live/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		got, err := ParseVideoID(tt.in)
		if err != nil {
			t.Fatalf("ParseVideoID(%q) error=%v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseVideoID(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVideoID_IdentityOnCanonicalIDs(t *testing.T) {
	ids := []string{"dQw4w9WgXcQ", "jNQXAC9IVRw", "___________", "-----------", "a1B2c3D4e5F"}
	for _, id := range ids {
		got, err := ParseVideoID(id)
		if err != nil {
			t.Fatalf("ParseVideoID(%q) error=%v", id, err)
		}
		if got != id {
			t.Fatalf("ParseVideoID(%q)=%q, want identity", id, got)
		}
	}
}

func TestParseVideoID_RawPatternFallback(t *testing.T) {
	// Control characters make url.Parse fail outright; the raw v= search
	// still finds the id.
	got, err := ParseVideoID("watch\x01?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("ParseVideoID() error=%v", err)
	}
	if got != "dQw4w9WgXcQ" {
		t.Fatalf("ParseVideoID()=%q, want dQw4w9WgXcQ", got)
	}
}

func TestParseVideoID_Rejected(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"tooshort",
		"dQw4w9WgXcQdQw4w9WgXcQ",
		"dQw4w9WgXc!",
		"https://www.youtube.com/watch?v=shortid",
		"https://www.youtube.com/watch?list=PLabc123",
		"https://youtu.be/",
		"not a url at all",
	}
	for _, in := range tests {
		if _, err := ParseVideoID(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseVideoID(%q) err=%v, want ErrInvalidInput", in, err)
		}
	}
}
