package stats

import (
	"github.com/pitchview/iplmetrics/internal/model"
)

// VenueSummary aggregates all matches at one ground. Bat-first wins compare
// the recorded winner against the team batting in innings 1; matches
// without two recorded innings are tallied as Incomplete rather than being
// silently classified either way.
func (e *Engine) VenueSummary(venue string) (*model.VenueSummary, error) {
	ids := make(map[string]struct{})
	for _, m := range e.table.Matches() {
		if m.Venue == venue {
			ids[m.MatchID] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return nil, noData("venue=" + venue)
	}

	rows := e.filter(func(d model.Delivery) bool {
		_, ok := ids[d.MatchID]
		return ok
	})

	v := &model.VenueSummary{Venue: venue, Matches: len(ids)}

	type inningsKey struct {
		matchID string
		innings int
	}
	inningsTotals := make(map[inningsKey]int)
	firstBatting := make(map[string]string) // match -> team batting innings 1
	inningsSeen := make(map[string]map[int]struct{})
	runsByBatter := make(map[string]int)
	wicketsByBowler := make(map[string]int)

	for _, d := range rows {
		// Total runs include extras; fours and sixes count bat runs only.
		v.TotalRuns += d.TotalRuns
		switch d.BatterRuns {
		case 4:
			v.Fours++
		case 6:
			v.Sixes++
		}
		inningsTotals[inningsKey{d.MatchID, d.Innings}] += d.TotalRuns
		if d.Innings == 1 {
			firstBatting[d.MatchID] = d.BattingTeam
		}
		if inningsSeen[d.MatchID] == nil {
			inningsSeen[d.MatchID] = make(map[int]struct{})
		}
		inningsSeen[d.MatchID][d.Innings] = struct{}{}
		runsByBatter[d.Batter] += d.BatterRuns
		if bowlerWicket(d) {
			wicketsByBowler[d.Bowler]++
		}
	}

	var firstSum, firstN, secondSum, secondN int
	for key, total := range inningsTotals {
		switch key.innings {
		case 1:
			firstSum += total
			firstN++
		case 2:
			secondSum += total
			secondN++
		}
	}
	if firstN > 0 {
		v.AvgFirstInnings = float64(firstSum) / float64(firstN)
	}
	if secondN > 0 {
		v.AvgSecondInnings = float64(secondSum) / float64(secondN)
	}

	winsByTeam := make(map[string]int)
	for id := range ids {
		m, _ := e.table.Match(id)
		if m.WinningTeam != "" {
			winsByTeam[m.WinningTeam]++
		}
		if len(inningsSeen[id]) < 2 || m.WinningTeam == "" {
			v.Incomplete++
			continue
		}
		if m.WinningTeam == firstBatting[id] {
			v.BatFirstWins++
		} else {
			v.ChaseWins++
		}
	}

	v.TopTeams = topN(winsByTeam, 3)
	v.TopBatters = topN(runsByBatter, 5)
	v.TopBowlers = topN(wicketsByBowler, 5)
	return v, nil
}
