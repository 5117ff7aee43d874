package stats

import (
	"strings"

	"github.com/pitchview/iplmetrics/internal/model"
)

// LeaderboardCategory selects the ranking metric for the simple
// leaderboard.
type LeaderboardCategory int

const (
	CategoryBatting LeaderboardCategory = iota // total runs
	CategoryBowling                            // total wickets
)

func (c LeaderboardCategory) String() string {
	if c == CategoryBowling {
		return "bowling"
	}
	return "batting"
}

// Leaderboard ranks the top 10 batters by runs or bowlers by wickets,
// optionally within a season. Ordering is descending with a name tiebreak,
// so repeated calls return identical lists.
func (e *Engine) Leaderboard(category LeaderboardCategory, season int) ([]model.RankedEntry, error) {
	if err := e.ValidateSeason(season); err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, d := range e.table.Deliveries() {
		if !seasonMatches(d, season) {
			continue
		}
		switch category {
		case CategoryBatting:
			totals[d.Batter] += d.BatterRuns
		case CategoryBowling:
			if bowlerWicket(d) {
				totals[d.Bowler]++
			}
		}
	}
	if len(totals) == 0 {
		return nil, noData("category=" + category.String())
	}
	return topN(totals, 10), nil
}

// FilteredQuery parameterizes the advanced leaderboard.
type FilteredQuery struct {
	Stat       string // "strike rate" or "win %"
	TopN       int
	Season     int         // 0 = all
	Phase      model.Phase // PhaseUnknown = all
	Venue      string      // "" = all
	EntityType string      // "player" (default) or "team"
}

// FilteredLeaderboard ranks players or teams by a computed rate stat under
// the given filters. Rate stats carry a minimum-sample floor: entities with
// too few balls (strike rate) or matches (win %) never appear, so a 1-ball
// cameo cannot top the list. Win % compares the group key against the
// recorded match winner, so it is only meaningful with EntityType "team";
// player keys never equal a winning team name and all score 0.
func (e *Engine) FilteredLeaderboard(q FilteredQuery) ([]model.RankedEntry, error) {
	if err := e.ValidateSeason(q.Season); err != nil {
		return nil, err
	}
	entity := q.EntityType
	if entity == "" {
		entity = "player"
	}
	if entity != "player" && entity != "team" {
		return nil, &InvalidParameterError{Param: "entity_type", Value: entity, Reason: "must be player or team"}
	}
	if q.TopN <= 0 {
		q.TopN = 5
	}

	rows := e.filter(func(d model.Delivery) bool {
		if !seasonMatches(d, q.Season) || !phaseMatches(d, q.Phase) {
			return false
		}
		if q.Venue != "" {
			m, ok := e.table.Match(d.MatchID)
			if !ok || m.Venue != q.Venue {
				return false
			}
		}
		return true
	})

	groupKey := func(d model.Delivery) string {
		if entity == "team" {
			return d.BattingTeam
		}
		return d.Batter
	}

	var entries []model.RankedEntry
	switch strings.ToLower(strings.TrimSpace(q.Stat)) {
	case "strike rate", "sr":
		runs := make(map[string]int)
		balls := make(map[string]int)
		for _, d := range rows {
			k := groupKey(d)
			runs[k] += d.BatterRuns
			balls[k]++
		}
		for k, b := range balls {
			if b < e.floors.MinBallsForStrikeRate {
				continue
			}
			entries = append(entries, model.RankedEntry{
				Name:  k,
				Value: float64(runs[k]) / float64(b) * 100,
			})
		}

	case "win %", "win%", "win percentage":
		matchSets := make(map[string]map[string]struct{})
		winSets := make(map[string]map[string]struct{})
		for _, d := range rows {
			k := groupKey(d)
			if matchSets[k] == nil {
				matchSets[k] = make(map[string]struct{})
				winSets[k] = make(map[string]struct{})
			}
			matchSets[k][d.MatchID] = struct{}{}
			if m, ok := e.table.Match(d.MatchID); ok && m.WinningTeam == k {
				winSets[k][d.MatchID] = struct{}{}
			}
		}
		for k, matches := range matchSets {
			if len(matches) < e.floors.MinMatchesForWinPct {
				continue
			}
			entries = append(entries, model.RankedEntry{
				Name:  k,
				Value: float64(len(winSets[k])) / float64(len(matches)) * 100,
			})
		}

	default:
		return nil, &InvalidParameterError{Param: "stat", Value: q.Stat, Reason: "supported: strike rate, win %"}
	}

	if len(entries) == 0 {
		return nil, noData("stat=" + q.Stat)
	}
	model.SortRankedDesc(entries)
	if len(entries) > q.TopN {
		entries = entries[:q.TopN]
	}
	return entries, nil
}
