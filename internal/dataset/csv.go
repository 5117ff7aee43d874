// Package dataset loads the ball-by-ball dataset: raw CSV ingestion, the
// SQLite cache, and construction of the immutable in-memory table.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pitchview/iplmetrics/internal/model"
)

// LoadCSV reads the match-level and ball-level CSV files, joins them on
// match ID, and derives the bowling team as the complement of the batting
// team within the match. Over numbers are recorded 0-based in the raw data
// and are normalized to 1-based here, so the phase mapping sees overs 1-20.
func LoadCSV(matchPath, ballPath string) (*model.Table, error) {
	matches, err := readMatches(matchPath)
	if err != nil {
		return nil, fmt.Errorf("read matches %s: %w", matchPath, err)
	}
	byID := make(map[string]model.MatchInfo, len(matches))
	for _, m := range matches {
		byID[m.MatchID] = m
	}

	deliveries, err := readDeliveries(ballPath, byID)
	if err != nil {
		return nil, fmt.Errorf("read deliveries %s: %w", ballPath, err)
	}
	return model.NewTable(deliveries, matches), nil
}

// header maps column names to indices, case-insensitively.
type header map[string]int

func newHeader(cols []string) header {
	h := make(header, len(cols))
	for i, c := range cols {
		h[strings.ToLower(strings.TrimSpace(c))] = i
	}
	return h
}

// col returns the index of the first present column name. Missing required
// columns are a schema error, fatal by design.
func (h header) col(names ...string) (int, error) {
	for _, n := range names {
		if i, ok := h[strings.ToLower(n)]; ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("missing required column %q", names[0])
}

func readMatches(path string) ([]model.MatchInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	cols, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := newHeader(cols)

	idIdx, err := h.col("id")
	if err != nil {
		return nil, err
	}
	seasonIdx, err := h.col("season")
	if err != nil {
		return nil, err
	}
	dateIdx, err := h.col("date")
	if err != nil {
		return nil, err
	}
	venueIdx, err := h.col("venue")
	if err != nil {
		return nil, err
	}
	team1Idx, err := h.col("team1")
	if err != nil {
		return nil, err
	}
	team2Idx, err := h.col("team2")
	if err != nil {
		return nil, err
	}
	numberIdx, err := h.col("matchnumber", "match_number")
	if err != nil {
		return nil, err
	}
	winnerIdx, err := h.col("winningteam", "winning_team", "winner")
	if err != nil {
		return nil, err
	}

	var out []model.MatchInfo
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		season, err := parseSeason(rec[seasonIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(rec[dateIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date: %w", line, err)
		}
		out = append(out, model.MatchInfo{
			MatchID:     strings.TrimSpace(rec[idIdx]),
			Season:      season,
			Date:        date,
			Venue:       strings.TrimSpace(rec[venueIdx]),
			Team1:       strings.TrimSpace(rec[team1Idx]),
			Team2:       strings.TrimSpace(rec[team2Idx]),
			MatchNumber: strings.TrimSpace(rec[numberIdx]),
			WinningTeam: cleanNA(rec[winnerIdx]),
		})
	}
	return out, nil
}

func readDeliveries(path string, matches map[string]model.MatchInfo) ([]model.Delivery, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	cols, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := newHeader(cols)

	idIdx, err := h.col("id")
	if err != nil {
		return nil, err
	}
	inningsIdx, err := h.col("innings")
	if err != nil {
		return nil, err
	}
	overIdx, err := h.col("overs", "over")
	if err != nil {
		return nil, err
	}
	ballIdx, err := h.col("ballnumber", "ball")
	if err != nil {
		return nil, err
	}
	batterIdx, err := h.col("batter", "batsman")
	if err != nil {
		return nil, err
	}
	nonStrikerIdx, err := h.col("non-striker", "non_striker")
	if err != nil {
		return nil, err
	}
	bowlerIdx, err := h.col("bowler")
	if err != nil {
		return nil, err
	}
	batterRunsIdx, err := h.col("batsman_run", "batter_runs")
	if err != nil {
		return nil, err
	}
	totalRunsIdx, err := h.col("total_run", "total_runs")
	if err != nil {
		return nil, err
	}
	wicketIdx, err := h.col("iswicketdelivery", "is_wicket")
	if err != nil {
		return nil, err
	}
	playerOutIdx, err := h.col("player_out")
	if err != nil {
		return nil, err
	}
	battingTeamIdx, err := h.col("battingteam", "batting_team")
	if err != nil {
		return nil, err
	}

	var out []model.Delivery
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		matchID := strings.TrimSpace(rec[idIdx])
		m, ok := matches[matchID]
		if !ok {
			return nil, fmt.Errorf("line %d: delivery references unknown match %q", line, matchID)
		}

		innings, err := atoi(rec[inningsIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: innings: %w", line, err)
		}
		over, err := atoi(rec[overIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: over: %w", line, err)
		}
		ball, err := atoi(rec[ballIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: ball: %w", line, err)
		}
		batterRuns, err := atoi(rec[batterRunsIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: batsman_run: %w", line, err)
		}
		totalRuns, err := atoi(rec[totalRunsIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: total_run: %w", line, err)
		}
		wicket, err := atoi(rec[wicketIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: isWicketDelivery: %w", line, err)
		}

		battingTeam := strings.TrimSpace(rec[battingTeamIdx])
		bowlingTeam := m.Team2
		if battingTeam == m.Team2 {
			bowlingTeam = m.Team1
		}

		out = append(out, model.Delivery{
			MatchID:     matchID,
			Season:      m.Season,
			Innings:     innings,
			Over:        over + 1, // raw data is 0-based
			Ball:        ball,
			BattingTeam: battingTeam,
			BowlingTeam: bowlingTeam,
			Batter:      strings.TrimSpace(rec[batterIdx]),
			NonStriker:  strings.TrimSpace(rec[nonStrikerIdx]),
			Bowler:      strings.TrimSpace(rec[bowlerIdx]),
			BatterRuns:  batterRuns,
			TotalRuns:   totalRuns,
			IsWicket:    wicket != 0,
			PlayerOut:   cleanNA(rec[playerOutIdx]),
		})
	}
	return out, nil
}

// parseSeason handles both plain years and split-season labels like
// "2007/08": the leading 4-digit year wins.
func parseSeason(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "/-"); i >= 4 {
		s = s[:i]
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse season %q: %w", s, err)
	}
	return year, nil
}

func atoi(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// Some numeric columns arrive as floats ("6.0").
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strconv.Atoi(s)
}

// cleanNA treats pandas-style NA markers as absent.
func cleanNA(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "NA", "NaN", "nan", "":
		return ""
	}
	return s
}
