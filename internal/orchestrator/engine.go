package orchestrator

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"streamresolve/internal/formats"
	"streamresolve/internal/innertube"
)

// Engine drives the ordered fallback across client profiles. Attempts are
// strictly sequential: a later profile is only consulted when an earlier
// one yields nothing usable, which keeps request volume minimal and never
// mixes formats from responses of different trust levels.
type Engine struct {
	fetcher  *innertube.Fetcher
	profiles []innertube.ClientProfile
	logger   *zap.Logger
}

func NewEngine(fetcher *innertube.Fetcher, profiles []innertube.ClientProfile, logger *zap.Logger) *Engine {
	if len(profiles) == 0 {
		profiles = innertube.DefaultProfiles
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fetcher:  fetcher,
		profiles: profiles,
		logger:   logger.Named("orchestrator"),
	}
}

// Extraction is the winning profile's response together with its retained
// formats, in the order they appeared in the response.
type Extraction struct {
	Response *innertube.PlayerResponse
	Formats  []innertube.Format
	Client   string
}

// Extract tries each profile in priority order and stops at the first one
// whose response is playable and carries at least one usable format.
func (e *Engine) Extract(ctx context.Context, videoID string) (*Extraction, error) {
	var attempts []AttemptError

	for _, profile := range e.profiles {
		resp, err := e.fetcher.Fetch(ctx, videoID, profile)
		if err != nil {
			// Already logged by the fetcher with its failure class.
			attempts = append(attempts, AttemptError{Client: profile.Name, Err: err})
			continue
		}

		if resp.PlayabilityStatus.Blocked() {
			e.logger.Warn("client refused playback",
				zap.String("videoId", videoID),
				zap.String("client", profile.Name),
				zap.String("status", resp.PlayabilityStatus.Status),
				zap.String("reason", resp.PlayabilityStatus.Reason))
			attempts = append(attempts, AttemptError{
				Client: profile.Name,
				Err: &PlayabilityError{
					Client: profile.Name,
					Status: resp.PlayabilityStatus.Status,
					Reason: resp.PlayabilityStatus.Reason,
				},
			})
			continue
		}

		retained := retainUsable(resp.StreamingData)
		if len(retained) == 0 {
			e.logger.Warn("client returned no usable formats",
				zap.String("videoId", videoID),
				zap.String("client", profile.Name))
			attempts = append(attempts, AttemptError{Client: profile.Name, Err: ErrNoUsableFormats})
			continue
		}

		return &Extraction{Response: resp, Formats: retained, Client: profile.Name}, nil
	}

	e.logger.Warn("all clients failed", zap.String("videoId", videoID))
	return nil, &AllClientsFailedError{Attempts: attempts}
}

// retainUsable keeps every muxed-collection format with a direct URL, plus
// every adaptive format that has a direct URL and classifies as muxed.
// Cipher-only formats are dropped; deciphering is out of scope here.
func retainUsable(sd innertube.StreamingData) []innertube.Format {
	usable := lo.Filter(sd.Formats, func(f innertube.Format, _ int) bool {
		return f.URL != ""
	})
	adaptive := lo.Filter(sd.AdaptiveFormats, func(f innertube.Format, _ int) bool {
		return f.URL != "" && formats.Classify(f).IsMuxed
	})
	return append(usable, adaptive...)
}
