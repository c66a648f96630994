package innertube

// ClientProfile is one emulated client identity presented to the player
// endpoint. Profiles are immutable configuration records; fallback priority
// is the order of DefaultProfiles.
type ClientProfile struct {
	Name              string
	Version           string
	UserAgent         string
	ContextNameID     int
	DeviceMake        string
	DeviceModel       string
	OsName            string
	OsVersion         string
	AndroidSdkVersion int
	Screen            string // "EMBED" for embedded player profiles
}

var (
	// AndroidClient mimics the official Android app. Its player responses
	// carry direct stream URLs, so it goes first.
	AndroidClient = ClientProfile{
		Name:              "ANDROID",
		Version:           "21.02.35",
		ContextNameID:     3,
		UserAgent:         "com.google.android.youtube/21.02.35 (Linux; U; Android 11) gzip",
		OsName:            "Android",
		OsVersion:         "11",
		AndroidSdkVersion: 30,
	}

	// IOSClient mimics the official iOS app.
	IOSClient = ClientProfile{
		Name:          "IOS",
		Version:       "21.02.3",
		ContextNameID: 5,
		UserAgent:     "com.google.ios.youtube/21.02.3 (iPhone16,2; U; CPU iOS 18_3_2 like Mac OS X;)",
		DeviceMake:    "Apple",
		DeviceModel:   "iPhone16,2",
		OsName:        "iOS",
		OsVersion:     "18.3.2.22D82",
	}

	// MWebClient is the mobile web client, kept last as a permissive fallback.
	MWebClient = ClientProfile{
		Name:          "MWEB",
		Version:       "2.20260115.01.00",
		ContextNameID: 2,
		UserAgent:     "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
		OsName:        "Android",
		OsVersion:     "11",
	}
)

// DefaultProfiles is the fixed fallback order. Profiles whose responses
// require signature deciphering (plain WEB, TVHTML5) are intentionally
// absent: only direct-URL clients are tried.
var DefaultProfiles = []ClientProfile{AndroidClient, IOSClient, MWebClient}
