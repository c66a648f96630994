package client

// ExtractedStream is the normalized public stream model, derived once from
// a raw format and immutable thereafter.
type ExtractedStream struct {
	URL          string
	QualityLabel string
	MimeType     string
	Itag         int
	HasAudio     bool
	HasVideo     bool
	Bitrate      int
}

// ExtractionResult is the outcome of one successful extraction. Streams
// keep their source aggregation order; Best points at the highest-ranked
// stream for playback.
type ExtractionResult struct {
	VideoID     string
	Title       string
	Author      string
	DurationSec int64
	ViewCount   int64
	IsLive      bool
	Streams     []ExtractedStream
	Best        *ExtractedStream
}
