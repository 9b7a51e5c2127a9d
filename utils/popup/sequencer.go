package popup

import (
	"context"
)

// State is the popup state machine state for a visitor session
type State string

const (
	StateIdle          State = "idle"
	StateShowingBanner State = "showing_banner"
	StateShowingNotice State = "showing_notice"
)

// Sequencer decides which popup (if any) a visitor session should see next.
// A session sees at most one banner and at most one notice, with the banner
// taking precedence; once a popup is dismissed it is never shown again within
// that session.
type Sequencer struct {
	flags FlagStore
}

// NewSequencer creates a sequencer over the given flag store
func NewSequencer(flags FlagStore) *Sequencer {
	return &Sequencer{flags: flags}
}

// Next returns the state for a page load. hasBanner and hasNotice report
// whether an eligible banner (active, with image) and a latest notice exist.
func (s *Sequencer) Next(ctx context.Context, sessionID string, hasBanner, hasNotice bool) (State, error) {
	bannerSeen, err := s.flags.Get(ctx, sessionID, FlagBannerShown)
	if err != nil {
		return StateIdle, err
	}
	if hasBanner && !bannerSeen {
		return StateShowingBanner, nil
	}

	noticeSeen, err := s.flags.Get(ctx, sessionID, FlagNoticeShown)
	if err != nil {
		return StateIdle, err
	}
	if hasNotice && !noticeSeen {
		return StateShowingNotice, nil
	}

	return StateIdle, nil
}

// Dismiss marks the currently shown popup as seen and returns the follow-up
// state: closing the banner hands off to the notice when one is available and
// unseen; closing the notice always returns to idle.
func (s *Sequencer) Dismiss(ctx context.Context, sessionID string, current State, hasNotice bool) (State, error) {
	switch current {
	case StateShowingBanner:
		if err := s.flags.Set(ctx, sessionID, FlagBannerShown); err != nil {
			return StateIdle, err
		}
		noticeSeen, err := s.flags.Get(ctx, sessionID, FlagNoticeShown)
		if err != nil {
			return StateIdle, err
		}
		if hasNotice && !noticeSeen {
			return StateShowingNotice, nil
		}
		return StateIdle, nil

	case StateShowingNotice:
		if err := s.flags.Set(ctx, sessionID, FlagNoticeShown); err != nil {
			return StateIdle, err
		}
		return StateIdle, nil

	default:
		return StateIdle, nil
	}
}
