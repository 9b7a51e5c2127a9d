package popup

import (
	"context"
	"testing"
)

// TestSequencerBannerThenNotice walks the full popup sequence for a fresh
// session: banner first, notice after the banner is closed, nothing after
// both were seen.
func TestSequencerBannerThenNotice(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryFlagStore())
	session := "session-1"

	state, err := seq.Next(ctx, session, true, true)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateShowingBanner {
		t.Fatalf("Expected %s on first load, got %s", StateShowingBanner, state)
	}

	// Closing the banner hands off to the notice
	state, err = seq.Dismiss(ctx, session, StateShowingBanner, true)
	if err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if state != StateShowingNotice {
		t.Fatalf("Expected %s after closing banner, got %s", StateShowingNotice, state)
	}

	// Closing the notice ends the sequence
	state, err = seq.Dismiss(ctx, session, StateShowingNotice, true)
	if err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if state != StateIdle {
		t.Fatalf("Expected %s after closing notice, got %s", StateIdle, state)
	}

	// A reload shows nothing further within this session
	state, err = seq.Next(ctx, session, true, true)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateIdle {
		t.Fatalf("Expected %s on reload after both popups seen, got %s", StateIdle, state)
	}
}

// TestSequencerNoticeOnly covers a session where no banner is configured
func TestSequencerNoticeOnly(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryFlagStore())
	session := "session-2"

	state, err := seq.Next(ctx, session, false, true)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateShowingNotice {
		t.Fatalf("Expected %s when only a notice exists, got %s", StateShowingNotice, state)
	}

	state, err = seq.Dismiss(ctx, session, StateShowingNotice, true)
	if err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if state != StateIdle {
		t.Fatalf("Expected %s after closing notice, got %s", StateIdle, state)
	}
}

// TestSequencerNoContent covers an empty site with nothing to show
func TestSequencerNoContent(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryFlagStore())

	state, err := seq.Next(ctx, "session-3", false, false)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateIdle {
		t.Fatalf("Expected %s with no popup content, got %s", StateIdle, state)
	}
}

// TestSequencerBannerDismissWithoutNotice verifies the banner close does not
// surface a notice when none exists
func TestSequencerBannerDismissWithoutNotice(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryFlagStore())
	session := "session-4"

	state, err := seq.Next(ctx, session, true, false)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateShowingBanner {
		t.Fatalf("Expected %s, got %s", StateShowingBanner, state)
	}

	state, err = seq.Dismiss(ctx, session, StateShowingBanner, false)
	if err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if state != StateIdle {
		t.Fatalf("Expected %s after closing banner with no notice, got %s", StateIdle, state)
	}
}

// TestSequencerSessionsAreIndependent verifies flags never leak across sessions
func TestSequencerSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryFlagStore())

	if _, err := seq.Dismiss(ctx, "session-a", StateShowingBanner, true); err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}

	state, err := seq.Next(ctx, "session-b", true, true)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateShowingBanner {
		t.Fatalf("Fresh session should see the banner, got %s", state)
	}
}

// TestSequencerNoticeAppearsWhileBannerSeen covers a notice published after
// the visitor already closed the banner
func TestSequencerNoticeAppearsWhileBannerSeen(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryFlagStore())
	session := "session-5"

	// Banner seen while no notice existed
	if _, err := seq.Dismiss(ctx, session, StateShowingBanner, false); err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}

	// A notice now exists; the next load should surface it
	state, err := seq.Next(ctx, session, true, true)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if state != StateShowingNotice {
		t.Fatalf("Expected %s for a freshly published notice, got %s", StateShowingNotice, state)
	}
}
