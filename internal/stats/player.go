package stats

import (
	"fmt"
	"sort"

	"github.com/pitchview/iplmetrics/internal/model"
)

// PlayerSummary computes a player's full career line. The player name must
// already be resolved against the catalog; an unknown name yields NoData.
func (e *Engine) PlayerSummary(player string) (*model.PlayerSummary, error) {
	rows := e.filter(func(d model.Delivery) bool {
		return d.Batter == player || d.Bowler == player || d.PlayerOut == player
	})
	if len(rows) == 0 {
		return nil, noData("player=" + player)
	}

	s := &model.PlayerSummary{Player: player}
	s.Batting = battingStats(rows, player)
	s.Bowling = bowlingStats(rows, player)

	// Per-match batting totals drive highest score and the 50/100 bands.
	// The bands are exclusive: a hundred is not also a fifty.
	matchRuns := make(map[string]int)
	wicketsByMatch := make(map[string]int)
	teamSet := make(map[string]struct{})
	seasonSet := make(map[int]struct{})
	runsBySeason := make(map[int]int)
	for _, d := range rows {
		if d.Batter == player {
			matchRuns[d.MatchID] += d.BatterRuns
			teamSet[d.BattingTeam] = struct{}{}
			seasonSet[d.Season] = struct{}{}
			runsBySeason[d.Season] += d.BatterRuns
		}
		if d.Bowler == player {
			teamSet[d.BowlingTeam] = struct{}{}
			seasonSet[d.Season] = struct{}{}
			if bowlerWicket(d) {
				wicketsByMatch[d.MatchID]++
			}
		}
	}
	for _, runs := range matchRuns {
		if runs > s.HighestScore {
			s.HighestScore = runs
		}
		switch {
		case runs >= 100:
			s.Hundreds++
		case runs >= 50:
			s.Fifties++
		}
	}
	for _, w := range wicketsByMatch {
		if w > s.BestBowling {
			s.BestBowling = w
		}
	}

	for team := range teamSet {
		s.Teams = append(s.Teams, team)
	}
	sort.Strings(s.Teams)
	for season := range seasonSet {
		s.Seasons = append(s.Seasons, season)
	}
	sort.Ints(s.Seasons)
	for _, season := range s.Seasons {
		if runs, ok := runsBySeason[season]; ok {
			s.RunsBySeason = append(s.RunsBySeason, model.SeasonRuns{Season: season, Runs: runs})
		}
	}
	return s, nil
}

// ComparePlayers returns one career summary per player, in input order.
// Requires at least two players.
func (e *Engine) ComparePlayers(players ...string) ([]*model.PlayerSummary, error) {
	if len(players) < 2 {
		return nil, &InvalidParameterError{
			Param: "players", Value: fmt.Sprint(players),
			Reason: "comparison needs at least two players",
		}
	}
	out := make([]*model.PlayerSummary, 0, len(players))
	for _, p := range players {
		s, err := e.PlayerSummary(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// PhasePerformance restricts a player's batting and bowling to one phase of
// the innings, optionally within a season. A player known to the catalog
// who simply has no deliveries in the phase gets valid zeros, not NoData.
func (e *Engine) PhasePerformance(player string, phase model.Phase, season int) (*model.PhasePerformance, error) {
	if phase == model.PhaseUnknown {
		return nil, &InvalidParameterError{Param: "phase", Value: "?", Reason: "choose Powerplay, Middle, or Death"}
	}
	if err := e.ValidateSeason(season); err != nil {
		return nil, err
	}
	if !e.table.HasPlayer(player) {
		return nil, noData("player=" + player)
	}

	rows := e.filter(func(d model.Delivery) bool {
		return phaseMatches(d, phase) && seasonMatches(d, season)
	})
	return &model.PhasePerformance{
		Player:  player,
		Phase:   phase,
		Season:  season,
		Batting: battingStats(rows, player),
		Bowling: bowlingStats(rows, player),
	}, nil
}

// PlayerVsTeam computes a player's record against one opponent: batting
// against their bowling attack, bowling against their batting lineup.
func (e *Engine) PlayerVsTeam(player, team string, season int) (*model.PlayerVsTeam, error) {
	if err := e.ValidateSeason(season); err != nil {
		return nil, err
	}

	batRows := e.filter(func(d model.Delivery) bool {
		return seasonMatches(d, season) && d.BowlingTeam == team &&
			(d.Batter == player || d.PlayerOut == player)
	})
	bowlRows := e.filter(func(d model.Delivery) bool {
		return seasonMatches(d, season) && d.BattingTeam == team && d.Bowler == player
	})
	if len(batRows) == 0 && len(bowlRows) == 0 {
		filters := []string{"player=" + player, "team=" + team}
		if season != 0 {
			filters = append(filters, fmt.Sprintf("season=%d", season))
		}
		return nil, &NoDataError{Filters: filters}
	}

	return &model.PlayerVsTeam{
		Player:  player,
		Team:    team,
		Season:  season,
		Batting: battingStats(batRows, player),
		Bowling: bowlingStats(bowlRows, player),
	}, nil
}

// PlayoffPerformance reports playoff-stage results for a team, or
// playoff-stage batting and bowling for a player. The team branch is chosen
// when the name is in the team catalog.
func (e *Engine) PlayoffPerformance(name string) (*model.PlayoffPerformance, error) {
	playoffIDs := make(map[string]struct{})
	for _, m := range e.table.Matches() {
		if isPlayoff(m.MatchNumber) {
			playoffIDs[m.MatchID] = struct{}{}
		}
	}

	if e.table.HasTeam(name) {
		p := &model.PlayoffPerformance{Name: name, IsTeam: true}
		for id := range playoffIDs {
			m, _ := e.table.Match(id)
			if m.Team1 != name && m.Team2 != name {
				continue
			}
			p.Matches++
			if m.WinningTeam == name {
				p.Wins++
			} else if m.WinningTeam != "" {
				p.Losses++
			}
		}
		if p.Matches == 0 {
			return nil, noData("team="+name, "stage=playoffs")
		}
		return p, nil
	}

	rows := e.filter(func(d model.Delivery) bool {
		_, ok := playoffIDs[d.MatchID]
		return ok
	})
	p := &model.PlayoffPerformance{
		Name:    name,
		Batting: battingStats(rows, name),
		Bowling: bowlingStats(rows, name),
	}
	if p.Batting.Balls == 0 && p.Bowling.Balls == 0 && p.Batting.Dismissals == 0 {
		return nil, noData("player="+name, "stage=playoffs")
	}
	return p, nil
}

// PairStats computes partnership numbers for two players batting together:
// deliveries where the striker and non-striker are exactly this pair, in
// either order. A pair that never batted together yields NoData.
func (e *Engine) PairStats(p1, p2 string, season int) (*model.PairStats, error) {
	if p1 == p2 {
		return nil, &InvalidParameterError{Param: "players", Value: p1, Reason: "both names resolve to the same player"}
	}
	if err := e.ValidateSeason(season); err != nil {
		return nil, err
	}

	rows := e.filter(func(d model.Delivery) bool {
		if !seasonMatches(d, season) {
			return false
		}
		return (d.Batter == p1 && d.NonStriker == p2) || (d.Batter == p2 && d.NonStriker == p1)
	})
	if len(rows) == 0 {
		filters := []string{"pair=" + p1 + " & " + p2}
		if season != 0 {
			filters = append(filters, fmt.Sprintf("season=%d", season))
		}
		return nil, &NoDataError{Filters: filters}
	}

	s := &model.PairStats{Player1: p1, Player2: p2, Season: season}
	matchSet := make(map[string]struct{})
	for _, d := range rows {
		s.Runs += d.BatterRuns
		s.Balls++
		matchSet[d.MatchID] = struct{}{}
	}
	s.Matches = len(matchSet)
	return s, nil
}
