package stats

import (
	"fmt"

	"github.com/pitchview/iplmetrics/internal/model"
)

// SeasonSummary computes the tournament overview for one season. The
// champion comes from the chronologically last decided match of the season;
// match IDs are not guaranteed chronological across data sources, so the
// date field is authoritative. The runner-up is that match's other team.
func (e *Engine) SeasonSummary(season int) (*model.SeasonSummary, error) {
	if err := e.ValidateSeason(season); err != nil {
		return nil, err
	}

	var final *model.MatchInfo
	matches := 0
	venueCounts := make(map[string]int)
	for _, m := range e.table.Matches() {
		if m.Season != season {
			continue
		}
		matches++
		venueCounts[m.Venue]++
		if m.WinningTeam == "" {
			continue
		}
		if final == nil || m.Date.After(final.Date) {
			mm := m
			final = &mm
		}
	}
	if matches == 0 {
		return nil, noData(fmt.Sprintf("season=%d", season))
	}

	s := &model.SeasonSummary{Season: season, Matches: matches}
	if final != nil {
		s.Champion = final.WinningTeam
		if final.Team1 == s.Champion {
			s.RunnerUp = final.Team2
		} else {
			s.RunnerUp = final.Team1
		}
	}

	best, bestCount := "", 0
	for venue, n := range venueCounts {
		if n > bestCount || (n == bestCount && venue < best) {
			best, bestCount = venue, n
		}
	}
	s.TopVenue = best

	runsByBatter := make(map[string]int)
	wicketsByBowler := make(map[string]int)
	for _, d := range e.table.Deliveries() {
		if d.Season != season {
			continue
		}
		runsByBatter[d.Batter] += d.BatterRuns
		if bowlerWicket(d) {
			wicketsByBowler[d.Bowler]++
		}
	}
	if top := topN(runsByBatter, 1); len(top) > 0 {
		s.OrangeCap = top[0]
	}
	if top := topN(wicketsByBowler, 1); len(top) > 0 {
		s.PurpleCap = top[0]
	}
	return s, nil
}

// AllSeasonSummaries returns one summary per season in chronological order.
func (e *Engine) AllSeasonSummaries() ([]*model.SeasonSummary, error) {
	seasons := e.table.Seasons()
	if len(seasons) == 0 {
		return nil, noData("seasons=all")
	}
	out := make([]*model.SeasonSummary, 0, len(seasons))
	for _, season := range seasons {
		s, err := e.SeasonSummary(season)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
