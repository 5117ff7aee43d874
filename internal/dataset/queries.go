package dataset

import (
	"fmt"
	"time"

	"github.com/pitchview/iplmetrics/internal/model"
)

// ImportTable replaces the stored dataset with the given table's contents.
// Both tables are rewritten in one transaction so a failed import never
// leaves a half-populated database behind.
func (s *Store) ImportTable(t *model.Table) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM deliveries"); err != nil {
		return fmt.Errorf("clear deliveries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}

	matchStmt, err := tx.Prepare(`
		INSERT INTO matches(match_id, season, match_date, venue, team1, team2, match_number, winning_team)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer matchStmt.Close()

	for _, m := range t.Matches() {
		_, err = matchStmt.Exec(
			m.MatchID, m.Season, m.Date.Format("2006-01-02"), m.Venue,
			m.Team1, m.Team2, m.MatchNumber, m.WinningTeam,
		)
		if err != nil {
			return fmt.Errorf("insert match %s: %w", m.MatchID, err)
		}
	}

	delStmt, err := tx.Prepare(`
		INSERT INTO deliveries(
			match_id, innings, over, ball,
			batting_team, bowling_team, batter, non_striker, bowler,
			batter_runs, total_runs, is_wicket, player_out
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer delStmt.Close()

	for _, d := range t.Deliveries() {
		_, err = delStmt.Exec(
			d.MatchID, d.Innings, d.Over, d.Ball,
			d.BattingTeam, d.BowlingTeam, d.Batter, d.NonStriker, d.Bowler,
			d.BatterRuns, d.TotalRuns, boolInt(d.IsWicket), d.PlayerOut,
		)
		if err != nil {
			return fmt.Errorf("insert delivery %s/%d/%d.%d: %w", d.MatchID, d.Innings, d.Over, d.Ball, err)
		}
	}
	return tx.Commit()
}

// LoadTable reads the full stored dataset back into an in-memory table.
func (s *Store) LoadTable() (*model.Table, error) {
	matches, err := s.loadMatches()
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}

	seasonByMatch := make(map[string]int, len(matches))
	for _, m := range matches {
		seasonByMatch[m.MatchID] = m.Season
	}

	rows, err := s.conn.Query(`
		SELECT match_id, innings, over, ball,
		       batting_team, bowling_team, batter, non_striker, bowler,
		       batter_runs, total_runs, is_wicket, player_out
		FROM deliveries
		ORDER BY match_id, innings, over, ball`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []model.Delivery
	for rows.Next() {
		var d model.Delivery
		var wicket int
		if err := rows.Scan(
			&d.MatchID, &d.Innings, &d.Over, &d.Ball,
			&d.BattingTeam, &d.BowlingTeam, &d.Batter, &d.NonStriker, &d.Bowler,
			&d.BatterRuns, &d.TotalRuns, &wicket, &d.PlayerOut,
		); err != nil {
			return nil, err
		}
		d.IsWicket = wicket != 0
		d.Season = seasonByMatch[d.MatchID]
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return model.NewTable(deliveries, matches), nil
}

// MatchCount returns the number of stored matches.
func (s *Store) MatchCount() (int, error) {
	var n int
	err := s.conn.QueryRow("SELECT COUNT(1) FROM matches").Scan(&n)
	return n, err
}

func (s *Store) loadMatches() ([]model.MatchInfo, error) {
	rows, err := s.conn.Query(`
		SELECT match_id, season, match_date, venue, team1, team2, match_number, winning_team
		FROM matches ORDER BY match_date, match_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchInfo
	for rows.Next() {
		var m model.MatchInfo
		var date string
		if err := rows.Scan(
			&m.MatchID, &m.Season, &date, &m.Venue,
			&m.Team1, &m.Team2, &m.MatchNumber, &m.WinningTeam,
		); err != nil {
			return nil, err
		}
		m.Date, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("match %s: parse date %q: %w", m.MatchID, date, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
