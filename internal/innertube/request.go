package innertube

// PlayerRequest is the JSON body posted to the player endpoint.
type PlayerRequest struct {
	VideoID        string  `json:"videoId"`
	Context        Context `json:"context"`
	ContentCheckOk bool    `json:"contentCheckOk"`
	RacyCheckOk    bool    `json:"racyCheckOk"`
}

type Context struct {
	Client     ClientInfo  `json:"client"`
	ThirdParty *ThirdParty `json:"thirdParty,omitempty"`
}

type ClientInfo struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	DeviceMake        string `json:"deviceMake,omitempty"`
	DeviceModel       string `json:"deviceModel,omitempty"`
	OsName            string `json:"osName,omitempty"`
	OsVersion         string `json:"osVersion,omitempty"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	AcceptLanguage    string `json:"hl"`
	TimeZone          string `json:"timeZone"`
	UtcOffsetMinutes  int    `json:"utcOffsetMinutes"`
}

type ThirdParty struct {
	EmbedURL string `json:"embedUrl"`
}

// NewPlayerRequest builds the body for one profile attempt. Both content
// checks are marked ok so restricted videos are not pre-filtered by the
// request itself.
func NewPlayerRequest(profile ClientProfile, videoID string) *PlayerRequest {
	req := &PlayerRequest{
		VideoID:        videoID,
		ContentCheckOk: true,
		RacyCheckOk:    true,
		Context: Context{
			Client: ClientInfo{
				ClientName:        profile.Name,
				ClientVersion:     profile.Version,
				DeviceMake:        profile.DeviceMake,
				DeviceModel:       profile.DeviceModel,
				OsName:            profile.OsName,
				OsVersion:         profile.OsVersion,
				AndroidSdkVersion: profile.AndroidSdkVersion,
				AcceptLanguage:    "en",
				TimeZone:          "UTC",
			},
		},
	}

	if profile.Screen == "EMBED" {
		req.Context.ThirdParty = &ThirdParty{
			EmbedURL: WatchPageURL(videoID),
		}
	}

	return req
}
