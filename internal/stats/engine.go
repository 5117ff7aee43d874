// Package stats computes cricket statistics from row-level delivery data.
// Every aggregation is a pure, deterministic function of the immutable
// table; the engine holds no mutable state and is safe for concurrent use.
package stats

import (
	"fmt"
	"strings"

	"github.com/pitchview/iplmetrics/internal/model"
)

// playoffKeywords identify playoff-stage matches by substring match on the
// MatchNumber label. Label formatting varies by season, so matching is
// case-insensitive substring, not equality.
var playoffKeywords = []string{
	"qualifier 1", "qualifier 2", "eliminator", "final",
	"semi final", "3rd place play-off",
}

// Floors are the minimum sample sizes for rate-based leaderboards. A 1-ball
// strike rate would otherwise dominate the rankings.
type Floors struct {
	MinBallsForStrikeRate int
	MinMatchesForWinPct   int
}

// DefaultFloors mirror the shipped configuration defaults.
var DefaultFloors = Floors{MinBallsForStrikeRate: 60, MinMatchesForWinPct: 10}

// Engine runs aggregations over one immutable dataset table.
type Engine struct {
	table  *model.Table
	floors Floors
}

// NewEngine wraps a table. Zero-valued floors fall back to DefaultFloors.
func NewEngine(table *model.Table, floors Floors) *Engine {
	if floors.MinBallsForStrikeRate <= 0 {
		floors.MinBallsForStrikeRate = DefaultFloors.MinBallsForStrikeRate
	}
	if floors.MinMatchesForWinPct <= 0 {
		floors.MinMatchesForWinPct = DefaultFloors.MinMatchesForWinPct
	}
	return &Engine{table: table, floors: floors}
}

// Table exposes the underlying dataset for catalog lookups.
func (e *Engine) Table() *model.Table { return e.table }

// ValidateSeason checks a season filter against the catalog range. Season 0
// means "no filter" and is always valid.
func (e *Engine) ValidateSeason(season int) error {
	if season == 0 {
		return nil
	}
	min, max, ok := e.table.SeasonRange()
	if !ok {
		return &InvalidParameterError{Param: "season", Value: fmt.Sprint(season), Reason: "dataset is empty"}
	}
	if season < min || season > max {
		return &InvalidParameterError{
			Param:  "season",
			Value:  fmt.Sprint(season),
			Reason: fmt.Sprintf("outside dataset range %d-%d", min, max),
		}
	}
	return nil
}

// filter returns deliveries where keep is true. The result shares no state
// with later calls; the table itself is never mutated.
func (e *Engine) filter(keep func(model.Delivery) bool) []model.Delivery {
	var out []model.Delivery
	for _, d := range e.table.Deliveries() {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func seasonMatches(d model.Delivery, season int) bool {
	return season == 0 || d.Season == season
}

func phaseMatches(d model.Delivery, phase model.Phase) bool {
	return phase == model.PhaseUnknown || model.PhaseForOver(d.Over) == phase
}

// isPlayoff reports whether a match-number label marks a playoff-stage
// match.
func isPlayoff(matchNumber string) bool {
	label := strings.ToLower(matchNumber)
	for _, kw := range playoffKeywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// bowlerWicket reports whether a delivery credits the bowler with a wicket.
// Non-striker run-outs carry the wicket flag but no dismissed player, and
// earn no credit.
func bowlerWicket(d model.Delivery) bool {
	return d.IsWicket && d.PlayerOut != ""
}

// battingStats folds a delivery set into a batting line for one player.
func battingStats(rows []model.Delivery, player string) model.BattingStats {
	var b model.BattingStats
	for _, d := range rows {
		if d.Batter == player {
			b.Runs += d.BatterRuns
			b.Balls++
			switch d.BatterRuns {
			case 4:
				b.Fours++
			case 6:
				b.Sixes++
			}
		}
		if d.PlayerOut == player {
			b.Dismissals++
		}
	}
	return b
}

// bowlingStats folds a delivery set into a bowling line for one player.
func bowlingStats(rows []model.Delivery, player string) model.BowlingStats {
	var b model.BowlingStats
	for _, d := range rows {
		if d.Bowler != player {
			continue
		}
		b.Balls++
		b.RunsConceded += d.TotalRuns
		if bowlerWicket(d) {
			b.Wickets++
		}
	}
	return b
}

// topN converts a name->value map into the N highest entries, sorted
// descending with name tiebreak.
func topN(totals map[string]int, n int) []model.RankedEntry {
	entries := make([]model.RankedEntry, 0, len(totals))
	for name, v := range totals {
		entries = append(entries, model.RankedEntry{Name: name, Value: float64(v)})
	}
	model.SortRankedDesc(entries)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
