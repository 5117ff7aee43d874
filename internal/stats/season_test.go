package stats

import (
	"errors"
	"testing"
)

func TestSeasonSummary2016(t *testing.T) {
	e := fixtureEngine()
	s, err := e.SeasonSummary(2016)
	if err != nil {
		t.Fatalf("SeasonSummary: %v", err)
	}
	if s.Matches != 3 {
		t.Errorf("matches = %d, want 3", s.Matches)
	}
	if s.Champion != mi || s.RunnerUp != rcb {
		t.Errorf("champion = %q (runner-up %q), want %q and %q", s.Champion, s.RunnerUp, mi, rcb)
	}
	if s.TopVenue != wankhede {
		t.Errorf("top venue = %q, want %q", s.TopVenue, wankhede)
	}
	if s.OrangeCap.Name != kohli || s.OrangeCap.Value != 185 {
		t.Errorf("orange cap = %+v, want %s with 185", s.OrangeCap, kohli)
	}
	if s.PurpleCap.Name != bumrah || s.PurpleCap.Value != 4 {
		t.Errorf("purple cap = %+v, want %s with 4", s.PurpleCap, bumrah)
	}
}

// The 2017 final was washed out, so the title goes to the winner of the
// chronologically last decided match, not the last match played.
func TestSeasonSummaryChampionFromLastDecidedMatch(t *testing.T) {
	e := fixtureEngine()
	s, err := e.SeasonSummary(2017)
	if err != nil {
		t.Fatalf("SeasonSummary: %v", err)
	}
	if s.Champion != csk || s.RunnerUp != mi {
		t.Errorf("champion = %q (runner-up %q), want %q and %q", s.Champion, s.RunnerUp, csk, mi)
	}
	// Nobody took a wicket in 2017; the cap stays unawarded rather than
	// being handed to an arbitrary bowler.
	if s.PurpleCap.Name != "" {
		t.Errorf("purple cap = %+v, want none", s.PurpleCap)
	}
}

func TestSeasonSummaryOutOfRange(t *testing.T) {
	e := fixtureEngine()
	var invalid *InvalidParameterError
	if _, err := e.SeasonSummary(1999); !errors.As(err, &invalid) {
		t.Errorf("want InvalidParameterError, got %v", err)
	}
}

func TestAllSeasonSummaries(t *testing.T) {
	e := fixtureEngine()
	out, err := e.AllSeasonSummaries()
	if err != nil {
		t.Fatalf("AllSeasonSummaries: %v", err)
	}
	if len(out) != 2 || out[0].Season != 2016 || out[1].Season != 2017 {
		t.Errorf("unexpected summaries: %v", out)
	}
}
