package application

import "testing"

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("  Shortlisted ")
	if !ok || st != StatusShortlisted {
		t.Fatalf("expected shortlisted, got %q ok=%v", st, ok)
	}

	if _, ok := ParseStatus("pending"); ok {
		t.Fatalf("expected pending to be rejected")
	}
	if _, ok := ParseStatus(""); ok {
		t.Fatalf("expected empty status to be rejected")
	}
}

func TestCanTransition_ForwardPath(t *testing.T) {
	steps := []struct {
		from Status
		to   Status
	}{
		{StatusApplied, StatusShortlisted},
		{StatusShortlisted, StatusInterview},
		{StatusInterview, StatusHired},
	}
	for _, s := range steps {
		if !s.from.CanTransition(s.to) {
			t.Fatalf("expected %s -> %s to be allowed", s.from, s.to)
		}
	}
}

func TestCanTransition_RejectFromAnyActiveStage(t *testing.T) {
	for _, from := range []Status{StatusApplied, StatusShortlisted, StatusInterview} {
		if !from.CanTransition(StatusRejected) {
			t.Fatalf("expected %s -> rejected to be allowed", from)
		}
	}
}

func TestCanTransition_NoSkipping(t *testing.T) {
	if StatusApplied.CanTransition(StatusHired) {
		t.Fatalf("applied -> hired must not skip stages")
	}
	if StatusApplied.CanTransition(StatusInterview) {
		t.Fatalf("applied -> interview must not skip stages")
	}
	if StatusShortlisted.CanTransition(StatusHired) {
		t.Fatalf("shortlisted -> hired must not skip stages")
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, from := range []Status{StatusRejected, StatusHired} {
		if !from.Terminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range []Status{StatusApplied, StatusShortlisted, StatusInterview, StatusRejected, StatusHired} {
			if from.CanTransition(to) {
				t.Fatalf("expected no transition out of %s, got %s", from, to)
			}
		}
	}
}
