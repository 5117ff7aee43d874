package model

import (
	"testing"
	"time"
)

// TestPhaseForOverPartition: every over of a T20 innings belongs to exactly
// one phase, with no gaps at the 6/7 and 15/16 boundaries.
func TestPhaseForOverPartition(t *testing.T) {
	want := map[int]Phase{
		1: PhasePowerplay, 6: PhasePowerplay,
		7: PhaseMiddle, 15: PhaseMiddle,
		16: PhaseDeath, 20: PhaseDeath,
	}
	for over, phase := range want {
		if got := PhaseForOver(over); got != phase {
			t.Errorf("PhaseForOver(%d) = %v, want %v", over, got, phase)
		}
	}
	for over := 1; over <= 20; over++ {
		if PhaseForOver(over) == PhaseUnknown {
			t.Errorf("over %d not assigned to any phase", over)
		}
	}
	if PhaseForOver(0) != PhaseUnknown || PhaseForOver(21) != PhaseUnknown {
		t.Error("overs outside 1-20 should be PhaseUnknown")
	}
}

func TestParsePhase(t *testing.T) {
	cases := map[string]Phase{
		"powerplay":    PhasePowerplay,
		"Power Play":   PhasePowerplay,
		"middle overs": PhaseMiddle,
		"  death  ":    PhaseDeath,
		"death overs":  PhaseDeath,
		"lunch":        PhaseUnknown,
	}
	for in, want := range cases {
		if got := ParsePhase(in); got != want {
			t.Errorf("ParsePhase(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStrikeRateZeroBalls(t *testing.T) {
	var b BattingStats
	if sr := b.StrikeRate(); sr != 0 {
		t.Errorf("strike rate with no balls = %v, want 0", sr)
	}
}

func TestAverageUndismissed(t *testing.T) {
	b := BattingStats{Runs: 80, Balls: 50}
	if _, ok := b.Average(); ok {
		t.Error("average should be undefined for an undismissed batter")
	}
	b.Dismissals = 2
	avg, ok := b.Average()
	if !ok || avg != 40 {
		t.Errorf("average = %v, %v, want 40, true", avg, ok)
	}
}

func TestEconomyZeroBalls(t *testing.T) {
	var b BowlingStats
	if e := b.Economy(); e != 0 {
		t.Errorf("economy with no balls = %v, want 0", e)
	}
	b = BowlingStats{Balls: 24, RunsConceded: 32}
	if e := b.Economy(); e != 8 {
		t.Errorf("economy = %v, want 8", e)
	}
}

func TestNewTableCatalogs(t *testing.T) {
	deliveries := []Delivery{
		{MatchID: "m1", Season: 2016, BattingTeam: "B Team", BowlingTeam: "A Team",
			Batter: "Striker", NonStriker: "Runner", Bowler: "Quick"},
		{MatchID: "m2", Season: 2017, BattingTeam: "A Team", BowlingTeam: "B Team",
			Batter: "Runner", NonStriker: "Striker", Bowler: "Spinner"},
	}
	matches := []MatchInfo{
		{MatchID: "m1", Season: 2016, Date: time.Date(2016, 4, 1, 0, 0, 0, 0, time.UTC), Venue: "Ground One"},
		{MatchID: "m2", Season: 2017, Date: time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC), Venue: "Ground Two"},
	}
	table := NewTable(deliveries, matches)

	wantPlayers := []string{"Quick", "Runner", "Spinner", "Striker"}
	got := table.Players()
	if len(got) != len(wantPlayers) {
		t.Fatalf("players = %v, want %v", got, wantPlayers)
	}
	for i, p := range wantPlayers {
		if got[i] != p {
			t.Errorf("players[%d] = %q, want %q", i, got[i], p)
		}
	}

	if !table.HasPlayer("Quick") || table.HasPlayer("Nobody") {
		t.Error("HasPlayer misclassified a catalog entry")
	}
	if !table.HasTeam("A Team") || table.HasTeam("C Team") {
		t.Error("HasTeam misclassified a catalog entry")
	}

	min, max, ok := table.SeasonRange()
	if !ok || min != 2016 || max != 2017 {
		t.Errorf("SeasonRange = %d, %d, %v, want 2016, 2017, true", min, max, ok)
	}
}

func TestSeasonRangeEmptyTable(t *testing.T) {
	table := NewTable(nil, nil)
	if _, _, ok := table.SeasonRange(); ok {
		t.Error("empty table should report no season range")
	}
}

func TestSortRankedDescTiebreak(t *testing.T) {
	entries := []RankedEntry{
		{Name: "Zed", Value: 10},
		{Name: "Abe", Value: 10},
		{Name: "Mid", Value: 20},
	}
	SortRankedDesc(entries)
	if entries[0].Name != "Mid" || entries[1].Name != "Abe" || entries[2].Name != "Zed" {
		t.Errorf("unexpected order: %v", entries)
	}
}
