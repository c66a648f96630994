package formats

import (
	"strings"

	"streamresolve/internal/innertube"
)

// Classification is the derived capability view of one raw format.
type Classification struct {
	Container string
	Codecs    []string
	IsMuxed   bool
	HasAudio  bool
	HasVideo  bool
}

// Classify inspects a raw format descriptor and derives its container,
// codec list and audio/video presence. Pure and deterministic: the result
// depends only on the descriptor itself, never on sibling formats.
func Classify(f innertube.Format) Classification {
	container, codecs := splitMimeType(f.MimeType)

	// Muxed when the codecs clause lists both tracks, or when codec strings
	// are absent/opaque and the format exposes an audio-quality marker next
	// to a video quality label.
	muxed := len(codecs) > 1
	if !muxed && f.AudioQuality != "" && f.QualityLabel != "" {
		muxed = true
	}

	return Classification{
		Container: container,
		Codecs:    codecs,
		IsMuxed:   muxed,
		HasAudio:  f.AudioQuality != "" || muxed,
		HasVideo:  f.QualityLabel != "" || strings.HasPrefix(container, "video/"),
	}
}

// splitMimeType breaks "video/mp4; codecs=\"avc1.42001E, mp4a.40.2\"" into
// the container and the individual codec names.
func splitMimeType(mimeType string) (string, []string) {
	parts := strings.SplitN(mimeType, ";", 2)
	container := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return container, nil
	}

	clause := strings.TrimSpace(parts[1])
	clause = strings.TrimPrefix(clause, "codecs=")
	clause = strings.Trim(clause, `"`)
	if clause == "" {
		return container, nil
	}

	var codecs []string
	for _, c := range strings.Split(clause, ",") {
		if c = strings.TrimSpace(c); c != "" {
			codecs = append(codecs, c)
		}
	}
	return container, codecs
}
