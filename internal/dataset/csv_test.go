package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const matchesCSV = `ID,Season,Date,Venue,Team1,Team2,MatchNumber,WinningTeam
1001,2007/08,2008-04-18,M Chinnaswamy Stadium,Royal Challengers Bangalore,Kolkata Knight Riders,1,Kolkata Knight Riders
1002,2016,2016-05-29,Wankhede Stadium,Royal Challengers Bangalore,Mumbai Indians,Final,NA
`

const deliveriesCSV = `ID,innings,overs,ballnumber,batter,bowler,non-striker,batsman_run,total_run,isWicketDelivery,player_out,BattingTeam
1001,1,0,1,BB McCullum,P Kumar,SC Ganguly,4,4,0,NA,Kolkata Knight Riders
1001,1,19,6,BB McCullum,Z Khan,SC Ganguly,6,6,0,NA,Kolkata Knight Riders
1002,1,5,3,V Kohli,JJ Bumrah,AB de Villiers,0,0,1,V Kohli,Royal Challengers Bangalore
`

func TestLoadCSV(t *testing.T) {
	matchPath := writeTemp(t, "matches.csv", matchesCSV)
	ballPath := writeTemp(t, "deliveries.csv", deliveriesCSV)

	table, err := LoadCSV(matchPath, ballPath)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	matches := table.Matches()
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	m1, ok := table.Match("1001")
	if !ok {
		t.Fatal("match 1001 missing")
	}
	// Split-season labels keep their leading year.
	if m1.Season != 2007 {
		t.Errorf("season = %d, want 2007", m1.Season)
	}
	m2, _ := table.Match("1002")
	if m2.WinningTeam != "" {
		t.Errorf("NA winner should be empty, got %q", m2.WinningTeam)
	}

	deliveries := table.Deliveries()
	if len(deliveries) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(deliveries))
	}
	// Raw overs are 0-based; the table is 1-based.
	if deliveries[0].Over != 1 {
		t.Errorf("first over = %d, want 1", deliveries[0].Over)
	}
	if deliveries[1].Over != 20 {
		t.Errorf("last over = %d, want 20", deliveries[1].Over)
	}
	// Bowling team is the complement of the batting team within the match.
	if deliveries[0].BowlingTeam != "Royal Challengers Bangalore" {
		t.Errorf("bowling team = %q", deliveries[0].BowlingTeam)
	}
	wicket := deliveries[2]
	if !wicket.IsWicket || wicket.PlayerOut != "V Kohli" {
		t.Errorf("wicket delivery parsed wrong: %+v", wicket)
	}
	if wicket.Season != 2016 {
		t.Errorf("delivery season = %d, want 2016", wicket.Season)
	}
}

func TestLoadCSVUnknownMatchID(t *testing.T) {
	matchPath := writeTemp(t, "matches.csv", matchesCSV)
	ballPath := writeTemp(t, "deliveries.csv",
		`ID,innings,overs,ballnumber,batter,bowler,non-striker,batsman_run,total_run,isWicketDelivery,player_out,BattingTeam
9999,1,0,1,A,B,C,0,0,0,NA,Some Team
`)

	_, err := LoadCSV(matchPath, ballPath)
	if err == nil {
		t.Fatal("expected error for delivery referencing unknown match")
	}
	if !strings.Contains(err.Error(), "9999") {
		t.Errorf("error does not name the unknown match: %v", err)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	matchPath := writeTemp(t, "matches.csv", "ID,Season,Date\n")
	ballPath := writeTemp(t, "deliveries.csv", deliveriesCSV)

	_, err := LoadCSV(matchPath, ballPath)
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestParseSeason(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2016", 2016},
		{"2007/08", 2007},
		{"2020/21", 2020},
		{" 2019 ", 2019},
	}
	for _, c := range cases {
		got, err := parseSeason(c.in)
		if err != nil {
			t.Errorf("parseSeason(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseSeason(%q) = %d, want %d", c.in, got, c.want)
		}
	}
	if _, err := parseSeason("not a year"); err == nil {
		t.Error("expected error for non-numeric season")
	}
}

func TestAtoiFloatSuffix(t *testing.T) {
	got, err := atoi("6.0")
	if err != nil {
		t.Fatalf("atoi(6.0): %v", err)
	}
	if got != 6 {
		t.Errorf("atoi(6.0) = %d, want 6", got)
	}
}
