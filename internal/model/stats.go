package model

import "sort"

// ---- Aggregated results ----
//
// Each record below is the structured output of one aggregation. Rendering
// to strings or tables lives in internal/report; nothing here formats.

// BattingStats is a batting line over some filtered delivery set.
type BattingStats struct {
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	Dismissals int
}

// StrikeRate is runs per 100 balls, 0 when no balls were faced.
func (b BattingStats) StrikeRate() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Runs) / float64(b.Balls) * 100
}

// Average is runs per dismissal. ok is false for an undismissed batter;
// a zero average would misstate their record.
func (b BattingStats) Average() (avg float64, ok bool) {
	if b.Dismissals == 0 {
		return 0, false
	}
	return float64(b.Runs) / float64(b.Dismissals), true
}

// BowlingStats is a bowling line over some filtered delivery set.
type BowlingStats struct {
	Balls        int
	RunsConceded int
	Wickets      int
}

// Economy is runs conceded per over, 0 when no balls were bowled.
func (b BowlingStats) Economy() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.RunsConceded) / (float64(b.Balls) / 6)
}

// SeasonRuns is one point of a player's season-by-season run tally.
type SeasonRuns struct {
	Season int
	Runs   int
}

// PlayerSummary is a player's full career line.
type PlayerSummary struct {
	Player  string
	Batting BattingStats

	HighestScore int
	Fifties      int // single-innings scores of 50-99
	Hundreds     int // single-innings scores of 100+; not double-counted as fifties

	Bowling     BowlingStats
	BestBowling int // most wickets in one match

	Teams        []string
	Seasons      []int
	RunsBySeason []SeasonRuns
}

// RankedEntry is one row of a leaderboard or top-N list.
type RankedEntry struct {
	Name  string
	Value float64
}

// HeadToHead is the two-team comparison record. Wins are labeled from the
// caller's perspective: Team1Wins counts wins by Team1 as passed in.
type HeadToHead struct {
	Team1, Team2 string
	Matches      int
	Team1Wins    int
	Team2Wins    int
	NoResults    int

	TopBatters       []RankedEntry // top 5 by runs across these matches
	TopBowlers       []RankedEntry // top 5 by wickets
	HighestTeamTotal int           // best single-innings team total
	BestBatter       string
	BestScore        int // best individual single-match score
}

// VenueSummary aggregates all matches at one ground.
type VenueSummary struct {
	Venue   string
	Matches int

	AvgFirstInnings  float64
	AvgSecondInnings float64
	TotalRuns        int
	Fours            int
	Sixes            int

	BatFirstWins int
	ChaseWins    int
	Incomplete   int // matches without two recorded innings; never misattributed

	TopTeams   []RankedEntry // by wins at this venue
	TopBatters []RankedEntry
	TopBowlers []RankedEntry
}

// PhasePerformance restricts a player's record to one phase of the innings.
// A player with no deliveries in the phase yields valid zeros, not an error.
type PhasePerformance struct {
	Player  string
	Phase   Phase
	Season  int // 0 = all seasons
	Batting BattingStats
	Bowling BowlingStats
}

// PlayerVsTeam is a player's record against one opponent.
type PlayerVsTeam struct {
	Player  string
	Team    string
	Season  int // 0 = all seasons
	Batting BattingStats
	Bowling BowlingStats
}

// PlayoffPerformance covers playoff-stage matches only. Exactly one of the
// team/player branches is populated.
type PlayoffPerformance struct {
	Name   string
	IsTeam bool

	// Team branch.
	Matches int
	Wins    int
	Losses  int

	// Player branch.
	Batting BattingStats
	Bowling BowlingStats
}

// PairStats is a partnership record: both players simultaneously at the
// crease, in either role.
type PairStats struct {
	Player1, Player2 string
	Season           int // 0 = all seasons
	Runs             int
	Balls            int
	Matches          int
}

// RunsPerBall is the partnership scoring rate, 0 when no balls were faced.
func (p PairStats) RunsPerBall() float64 {
	if p.Balls == 0 {
		return 0
	}
	return float64(p.Runs) / float64(p.Balls)
}

// SeasonSummary is the tournament overview for one season.
type SeasonSummary struct {
	Season    int
	Champion  string
	RunnerUp  string
	Matches   int
	TopVenue  string
	OrangeCap RankedEntry // leading run scorer
	PurpleCap RankedEntry // leading wicket taker
}

// RecordEntry is one instance found by the record finder.
type RecordEntry struct {
	Player  string
	MatchID string
	Season  int
	Value   int // runs, wickets, or balls-to-fifty depending on record type
}

// SortRankedDesc sorts entries by value descending, ties broken by name so
// repeated calls stay stable.
func SortRankedDesc(entries []RankedEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})
}
