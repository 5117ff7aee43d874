package stats

import (
	"github.com/pitchview/iplmetrics/internal/model"
)

// TeamVsTeam computes the head-to-head record between two teams. Match
// counts dedupe on match ID; a delivery-row count would overstate them by
// two hundred-odd per game. Wins are labeled from the caller's perspective,
// so TeamVsTeam(A, B).Team1Wins == TeamVsTeam(B, A).Team2Wins.
func (e *Engine) TeamVsTeam(team1, team2 string) (*model.HeadToHead, error) {
	ids := make(map[string]struct{})
	for _, m := range e.table.Matches() {
		if (m.Team1 == team1 && m.Team2 == team2) || (m.Team1 == team2 && m.Team2 == team1) {
			ids[m.MatchID] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return nil, noData("teams=" + team1 + " vs " + team2)
	}

	h := &model.HeadToHead{Team1: team1, Team2: team2, Matches: len(ids)}
	for id := range ids {
		m, _ := e.table.Match(id)
		switch m.WinningTeam {
		case team1:
			h.Team1Wins++
		case team2:
			h.Team2Wins++
		case "":
			h.NoResults++
		}
	}

	rows := e.filter(func(d model.Delivery) bool {
		_, ok := ids[d.MatchID]
		return ok
	})

	runsByBatter := make(map[string]int)
	wicketsByBowler := make(map[string]int)
	inningsTotals := make(map[[2]string]int)     // match+innings team total
	individualScores := make(map[[2]string]int)  // match+batter score
	for _, d := range rows {
		runsByBatter[d.Batter] += d.BatterRuns
		if bowlerWicket(d) {
			wicketsByBowler[d.Bowler]++
		}
		inningsTotals[[2]string{d.MatchID, d.BattingTeam}] += d.TotalRuns
		individualScores[[2]string{d.MatchID, d.Batter}] += d.BatterRuns
	}

	h.TopBatters = topN(runsByBatter, 5)
	h.TopBowlers = topN(wicketsByBowler, 5)
	for _, total := range inningsTotals {
		if total > h.HighestTeamTotal {
			h.HighestTeamTotal = total
		}
	}
	for key, score := range individualScores {
		if score > h.BestScore || (score == h.BestScore && key[1] < h.BestBatter) {
			h.BestScore = score
			h.BestBatter = key[1]
		}
	}
	return h, nil
}
