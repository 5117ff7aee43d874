package model

import (
	"sort"
	"strings"
	"time"
)

// Phase is a segment of a T20 innings, determined by over number.
type Phase int

const (
	PhaseUnknown   Phase = 0
	PhasePowerplay Phase = 1 // overs 1-6
	PhaseMiddle    Phase = 2 // overs 7-15
	PhaseDeath     Phase = 3 // overs 16-20
)

func (p Phase) String() string {
	switch p {
	case PhasePowerplay:
		return "Powerplay"
	case PhaseMiddle:
		return "Middle"
	case PhaseDeath:
		return "Death"
	default:
		return "?"
	}
}

// PhaseForOver maps a 1-based over number to its phase. Overs outside 1-20
// return PhaseUnknown.
func PhaseForOver(over int) Phase {
	switch {
	case over >= 1 && over <= 6:
		return PhasePowerplay
	case over >= 7 && over <= 15:
		return PhaseMiddle
	case over >= 16 && over <= 20:
		return PhaseDeath
	default:
		return PhaseUnknown
	}
}

// ParsePhase maps a user-facing phase word to a Phase. Returns PhaseUnknown
// for anything it does not recognize.
func ParsePhase(s string) Phase {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "powerplay", "power play", "powerplay overs":
		return PhasePowerplay
	case "middle", "middle overs":
		return PhaseMiddle
	case "death", "death overs":
		return PhaseDeath
	default:
		return PhaseUnknown
	}
}

// ---- Row-level dataset ----

// Delivery is one bowled ball: the atomic row of the dataset.
type Delivery struct {
	MatchID string
	Season  int
	Innings int
	Over    int // 1-based over number
	Ball    int // ball within the over

	BattingTeam string
	BowlingTeam string
	Batter      string // striker
	NonStriker  string
	Bowler      string

	BatterRuns int // runs off the bat
	TotalRuns  int // bat runs + extras

	IsWicket  bool
	PlayerOut string // empty for non-striker run-outs even when IsWicket
}

// MatchInfo is the match-level record shared by every delivery of a match.
type MatchInfo struct {
	MatchID     string
	Season      int
	Date        time.Time
	Venue       string
	Team1       string
	Team2       string
	MatchNumber string // stage label: "12", "Qualifier 1", "Final", ...
	WinningTeam string // empty for no-result matches
}

// Table is the immutable merged dataset plus derived name catalogs. Built
// once at startup; all methods are read-only and safe for concurrent use.
type Table struct {
	deliveries []Delivery
	matches    map[string]MatchInfo

	players []string
	teams   []string
	venues  []string
	seasons []int
}

// NewTable builds a Table and derives its catalogs. The input slices are
// retained; callers must not mutate them afterwards.
func NewTable(deliveries []Delivery, matches []MatchInfo) *Table {
	t := &Table{
		deliveries: deliveries,
		matches:    make(map[string]MatchInfo, len(matches)),
	}
	for _, m := range matches {
		t.matches[m.MatchID] = m
	}

	playerSet := make(map[string]struct{})
	teamSet := make(map[string]struct{})
	venueSet := make(map[string]struct{})
	seasonSet := make(map[int]struct{})
	for _, d := range deliveries {
		playerSet[d.Batter] = struct{}{}
		playerSet[d.NonStriker] = struct{}{}
		playerSet[d.Bowler] = struct{}{}
		teamSet[d.BattingTeam] = struct{}{}
		teamSet[d.BowlingTeam] = struct{}{}
		seasonSet[d.Season] = struct{}{}
	}
	for _, m := range t.matches {
		venueSet[m.Venue] = struct{}{}
	}

	t.players = sortedKeys(playerSet)
	t.teams = sortedKeys(teamSet)
	t.venues = sortedKeys(venueSet)
	for s := range seasonSet {
		t.seasons = append(t.seasons, s)
	}
	sort.Ints(t.seasons)
	return t
}

// Deliveries returns the full delivery slice. Callers must treat it as
// read-only.
func (t *Table) Deliveries() []Delivery { return t.deliveries }

// Match returns the match-level record for an ID.
func (t *Table) Match(id string) (MatchInfo, bool) {
	m, ok := t.matches[id]
	return m, ok
}

// Matches returns all match records in unspecified order.
func (t *Table) Matches() []MatchInfo {
	out := make([]MatchInfo, 0, len(t.matches))
	for _, m := range t.matches {
		out = append(out, m)
	}
	return out
}

func (t *Table) Players() []string { return t.players }
func (t *Table) Teams() []string   { return t.teams }
func (t *Table) Venues() []string  { return t.venues }
func (t *Table) Seasons() []int    { return t.seasons }

// SeasonRange returns the inclusive span of seasons present in the dataset.
// ok is false for an empty table.
func (t *Table) SeasonRange() (min, max int, ok bool) {
	if len(t.seasons) == 0 {
		return 0, 0, false
	}
	return t.seasons[0], t.seasons[len(t.seasons)-1], true
}

// HasPlayer reports whether name appears in the player catalog (exact match).
func (t *Table) HasPlayer(name string) bool {
	i := sort.SearchStrings(t.players, name)
	return i < len(t.players) && t.players[i] == name
}

// HasTeam reports whether name appears in the team catalog (exact match).
func (t *Table) HasTeam(name string) bool {
	i := sort.SearchStrings(t.teams, name)
	return i < len(t.teams) && t.teams[i] == name
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
