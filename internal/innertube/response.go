package innertube

// PlayerResponse is the top-level response from the player endpoint,
// trimmed to the fields the extraction pipeline consumes.
type PlayerResponse struct {
	PlayabilityStatus PlayabilityStatus `json:"playabilityStatus"`
	StreamingData     StreamingData     `json:"streamingData"`
	VideoDetails      VideoDetails      `json:"videoDetails"`
}

// Playability status values the pipeline reacts to. Anything else is
// treated as unknown and does not gate the response by itself.
const (
	StatusOK            = "OK"
	StatusUnplayable    = "UNPLAYABLE"
	StatusLoginRequired = "LOGIN_REQUIRED"
)

type PlayabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (p *PlayabilityStatus) IsOK() bool {
	return p.Status == StatusOK
}

// Blocked reports whether the platform refused playback for this response.
// Only the two explicit refusal statuses gate; unknown statuses fall
// through and are judged by whatever formats they carry.
func (p *PlayabilityStatus) Blocked() bool {
	return p.Status == StatusUnplayable || p.Status == StatusLoginRequired
}

type StreamingData struct {
	Formats         []Format `json:"formats"`
	AdaptiveFormats []Format `json:"adaptiveFormats"`
}

// Format is the platform's description of one encoded rendition. Formats
// carrying only a signatureCipher (no direct URL) are dropped downstream.
type Format struct {
	Itag            int    `json:"itag"`
	URL             string `json:"url"`
	SignatureCipher string `json:"signatureCipher"`
	MimeType        string `json:"mimeType"`
	Bitrate         int    `json:"bitrate"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Quality         string `json:"quality"`
	QualityLabel    string `json:"qualityLabel"`
	AudioQuality    string `json:"audioQuality"`
	AudioSampleRate string `json:"audioSampleRate"`
	AudioChannels   int    `json:"audioChannels"`
}

type VideoDetails struct {
	VideoID       string `json:"videoId"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	LengthSeconds string `json:"lengthSeconds"`
	ViewCount     string `json:"viewCount"`
	IsLiveContent bool   `json:"isLiveContent"`
}
