package stats

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/pitchview/iplmetrics/internal/model"
)

// Fixture entities shared by the aggregation tests.
const (
	kohli   = "V Kohli"
	abd     = "AB de Villiers"
	maxwell = "GJ Maxwell"
	chahal  = "YS Chahal"
	rohit   = "RG Sharma"
	bumrah  = "JJ Bumrah"
	dhoni   = "MS Dhoni"
	jadeja  = "RA Jadeja"

	rcb = "Royal Challengers Bangalore"
	mi  = "Mumbai Indians"
	csk = "Chennai Super Kings"

	wankhede    = "Wankhede Stadium"
	chinnaswamy = "M Chinnaswamy Stadium"
)

type ballSpec struct {
	batter, nonStriker, bowler string
	runs                       int
	wicket                     bool
	playerOut                  string
}

// innings expands ball specs into deliveries, assigning over and ball
// numbers sequentially six to the over.
func innings(matchID string, season, inn int, batTeam, bowlTeam string, specs []ballSpec) []model.Delivery {
	out := make([]model.Delivery, 0, len(specs))
	for i, s := range specs {
		out = append(out, model.Delivery{
			MatchID:     matchID,
			Season:      season,
			Innings:     inn,
			Over:        i/6 + 1,
			Ball:        i%6 + 1,
			BattingTeam: batTeam,
			BowlingTeam: bowlTeam,
			Batter:      s.batter,
			NonStriker:  s.nonStriker,
			Bowler:      s.bowler,
			BatterRuns:  s.runs,
			TotalRuns:   s.runs,
			IsWicket:    s.wicket,
			PlayerOut:   s.playerOut,
		})
	}
	return out
}

// score builds n scoring balls for one batter against one bowler, cycling
// through the runs pattern.
func score(batter, nonStriker, bowler string, runs ...int) []ballSpec {
	out := make([]ballSpec, 0, len(runs))
	for _, r := range runs {
		out = append(out, ballSpec{batter: batter, nonStriker: nonStriker, bowler: bowler, runs: r})
	}
	return out
}

func repeat(n, runs int, batter, nonStriker, bowler string) []ballSpec {
	out := make([]ballSpec, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ballSpec{batter: batter, nonStriker: nonStriker, bowler: bowler, runs: runs})
	}
	return out
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// fixtureTable builds a small two-season league:
//
//	m1 2016 league match at the Wankhede, RCB vs MI, MI win chasing.
//	    Kohli 100 off 60 (fifty up in 10 balls), out to Bumrah last ball.
//	m2 2016 league match at the Chinnaswamy, RCB vs CSK, RCB win batting
//	    first. Kohli 60 off 40 with a non-striker run-out mid-innings.
//	    Dhoni and Jadeja bat together in the reply.
//	m3 2016 Final at the Wankhede, RCB vs MI, MI win. Kohli 25 off 20;
//	    Bumrah takes 3.
//	m4 2017 Qualifier 1 at the Wankhede, CSK vs MI, CSK win.
//	m5 2017 Final at the Wankhede, CSK vs MI, washed out after one innings.
func fixtureTable() *model.Table {
	var rows []model.Delivery

	// m1 innings 1: alternating sixes and fours for 20 balls (100 runs),
	// then dots; the last ball has Kohli dismissed.
	var m1i1 []ballSpec
	for i := 0; i < 10; i++ {
		m1i1 = append(m1i1, score(kohli, abd, bumrah, 6, 4)...)
	}
	m1i1 = append(m1i1, repeat(39, 0, kohli, abd, bumrah)...)
	m1i1 = append(m1i1, ballSpec{batter: kohli, nonStriker: abd, bowler: bumrah, wicket: true, playerOut: kohli})
	rows = append(rows, innings("m1", 2016, 1, rcb, mi, m1i1)...)

	m1i2 := append(repeat(6, 4, rohit, bumrah, chahal), repeat(6, 1, rohit, bumrah, chahal)...)
	rows = append(rows, innings("m1", 2016, 2, mi, rcb, m1i2)...)

	// m2 innings 1: 10 fours, 20 singles, 9 dots, then a run-out where the
	// non-striker is out and no batter is recorded dismissed.
	m2i1 := append(repeat(10, 4, kohli, abd, jadeja), repeat(20, 1, kohli, abd, jadeja)...)
	m2i1 = append(m2i1, repeat(9, 0, kohli, abd, jadeja)...)
	m2i1 = append(m2i1, ballSpec{batter: kohli, nonStriker: abd, bowler: jadeja, wicket: true})
	rows = append(rows, innings("m2", 2016, 1, rcb, csk, m2i1)...)

	m2i2 := append(repeat(2, 6, dhoni, jadeja, chahal), repeat(10, 1, dhoni, jadeja, chahal)...)
	m2i2 = append(m2i2, repeat(6, 1, jadeja, dhoni, chahal)...)
	rows = append(rows, innings("m2", 2016, 2, csk, rcb, m2i2)...)

	// m3 innings 1: Kohli 25 off 20, then Bumrah runs through the middle
	// order.
	m3i1 := append(repeat(5, 4, kohli, abd, bumrah), repeat(5, 1, kohli, abd, bumrah)...)
	m3i1 = append(m3i1, repeat(10, 0, kohli, abd, bumrah)...)
	for _, victim := range []string{abd, maxwell, chahal} {
		m3i1 = append(m3i1, ballSpec{batter: victim, nonStriker: kohli, bowler: bumrah, wicket: true, playerOut: victim})
	}
	rows = append(rows, innings("m3", 2016, 1, rcb, mi, m3i1)...)

	m3i2 := append(repeat(5, 4, rohit, bumrah, chahal), repeat(5, 0, rohit, bumrah, chahal)...)
	rows = append(rows, innings("m3", 2016, 2, mi, rcb, m3i2)...)

	m4i1 := append(repeat(10, 4, dhoni, jadeja, bumrah), repeat(10, 0, dhoni, jadeja, bumrah)...)
	rows = append(rows, innings("m4", 2017, 1, csk, mi, m4i1)...)
	m4i2 := append(repeat(5, 4, rohit, bumrah, jadeja), repeat(15, 1, rohit, bumrah, jadeja)...)
	m4i2 = append(m4i2, repeat(5, 0, rohit, bumrah, jadeja)...)
	rows = append(rows, innings("m4", 2017, 2, mi, csk, m4i2)...)

	m5i1 := repeat(10, 1, dhoni, jadeja, bumrah)
	rows = append(rows, innings("m5", 2017, 1, csk, mi, m5i1)...)

	matches := []model.MatchInfo{
		{MatchID: "m1", Season: 2016, Date: date(2016, 4, 10), Venue: wankhede, Team1: rcb, Team2: mi, MatchNumber: "12", WinningTeam: mi},
		{MatchID: "m2", Season: 2016, Date: date(2016, 4, 20), Venue: chinnaswamy, Team1: rcb, Team2: csk, MatchNumber: "20", WinningTeam: rcb},
		{MatchID: "m3", Season: 2016, Date: date(2016, 5, 29), Venue: wankhede, Team1: rcb, Team2: mi, MatchNumber: "Final", WinningTeam: mi},
		{MatchID: "m4", Season: 2017, Date: date(2017, 5, 10), Venue: wankhede, Team1: csk, Team2: mi, MatchNumber: "Qualifier 1", WinningTeam: csk},
		{MatchID: "m5", Season: 2017, Date: date(2017, 5, 21), Venue: wankhede, Team1: csk, Team2: mi, MatchNumber: "Final", WinningTeam: ""},
	}
	return model.NewTable(rows, matches)
}

func fixtureEngine() *Engine {
	return NewEngine(fixtureTable(), Floors{MinBallsForStrikeRate: 60, MinMatchesForWinPct: 2})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestPlayerSummaryCareerLine(t *testing.T) {
	e := fixtureEngine()
	s, err := e.PlayerSummary(kohli)
	if err != nil {
		t.Fatalf("PlayerSummary: %v", err)
	}

	if s.Batting.Runs != 185 {
		t.Errorf("runs = %d, want 185", s.Batting.Runs)
	}
	// The dismissal ball and the run-out ball both count as balls faced.
	if s.Batting.Balls != 120 {
		t.Errorf("balls = %d, want 120", s.Batting.Balls)
	}
	if s.Batting.Fours != 25 || s.Batting.Sixes != 10 {
		t.Errorf("boundaries = %dx4 %dx6, want 25x4 10x6", s.Batting.Fours, s.Batting.Sixes)
	}
	// Out once to Bumrah; the run-out with no recorded dismissed batter
	// does not count against him.
	if s.Batting.Dismissals != 1 {
		t.Errorf("dismissals = %d, want 1", s.Batting.Dismissals)
	}
	if s.HighestScore != 100 {
		t.Errorf("highest score = %d, want 100", s.HighestScore)
	}
	// 100 and 60: the hundred is not double-counted as a fifty.
	if s.Hundreds != 1 || s.Fifties != 1 {
		t.Errorf("bands = %d fifties %d hundreds, want 1 and 1", s.Fifties, s.Hundreds)
	}
	if !almostEqual(s.Batting.StrikeRate(), 154.17) {
		t.Errorf("strike rate = %.2f, want 154.17", s.Batting.StrikeRate())
	}
	avg, ok := s.Batting.Average()
	if !ok || !almostEqual(avg, 185) {
		t.Errorf("average = %.2f, %v, want 185", avg, ok)
	}

	if len(s.Teams) != 1 || s.Teams[0] != rcb {
		t.Errorf("teams = %v, want [%s]", s.Teams, rcb)
	}
	if len(s.Seasons) != 1 || s.Seasons[0] != 2016 {
		t.Errorf("seasons = %v, want [2016]", s.Seasons)
	}
	if len(s.RunsBySeason) != 1 || s.RunsBySeason[0].Runs != 185 {
		t.Errorf("runs by season = %v", s.RunsBySeason)
	}
}

func TestPlayerSummaryBowler(t *testing.T) {
	e := fixtureEngine()
	s, err := e.PlayerSummary(bumrah)
	if err != nil {
		t.Fatalf("PlayerSummary: %v", err)
	}
	if s.Bowling.Wickets != 4 {
		t.Errorf("wickets = %d, want 4", s.Bowling.Wickets)
	}
	if s.BestBowling != 3 {
		t.Errorf("best bowling = %d, want 3", s.BestBowling)
	}
}

func TestPlayerSummaryUnknownPlayer(t *testing.T) {
	e := fixtureEngine()
	_, err := e.PlayerSummary("Nobody")
	var noData *NoDataError
	if !errors.As(err, &noData) {
		t.Fatalf("want NoDataError, got %v", err)
	}
}

// The run-out without a recorded dismissed batter carries the wicket flag
// but never credits the bowler.
func TestNonStrikerRunOutNoBowlerCredit(t *testing.T) {
	e := fixtureEngine()
	s, err := e.PlayerSummary(jadeja)
	if err != nil {
		t.Fatalf("PlayerSummary: %v", err)
	}
	if s.Bowling.Wickets != 0 {
		t.Errorf("jadeja wickets = %d, want 0 (run-out earns no credit)", s.Bowling.Wickets)
	}
}

func TestValidateSeason(t *testing.T) {
	e := fixtureEngine()
	if err := e.ValidateSeason(0); err != nil {
		t.Errorf("season 0 (no filter) should be valid: %v", err)
	}
	if err := e.ValidateSeason(2016); err != nil {
		t.Errorf("in-range season rejected: %v", err)
	}
	var invalid *InvalidParameterError
	if err := e.ValidateSeason(1999); !errors.As(err, &invalid) {
		t.Errorf("out-of-range season: want InvalidParameterError, got %v", err)
	}
}

func TestComparePlayersNeedsTwo(t *testing.T) {
	e := fixtureEngine()
	var invalid *InvalidParameterError
	if _, err := e.ComparePlayers(kohli); !errors.As(err, &invalid) {
		t.Errorf("want InvalidParameterError, got %v", err)
	}

	out, err := e.ComparePlayers(kohli, rohit)
	if err != nil {
		t.Fatalf("ComparePlayers: %v", err)
	}
	if len(out) != 2 || out[0].Player != kohli || out[1].Player != rohit {
		t.Errorf("unexpected comparison order: %v", out)
	}
}
