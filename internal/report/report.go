// Package report formats aggregation results. Render* functions produce
// plain strings for the chat surface; Print* functions draw terminal tables.
// Computation lives in internal/stats; nothing here aggregates.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pitchview/iplmetrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// avgString shows "—" for a batter who was never dismissed.
func avgString(b model.BattingStats) string {
	avg, ok := b.Average()
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.2f", avg)
}

func seasonSuffix(season int) string {
	if season == 0 {
		return ""
	}
	return fmt.Sprintf(" in %d", season)
}

// RenderPlayerSummary formats a career line.
func RenderPlayerSummary(s *model.PlayerSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Player)
	fmt.Fprintf(&b, "Batting: %d runs off %d balls (SR %.2f, avg %s), HS %d, %d fifties, %d hundreds, %dx4 %dx6\n",
		s.Batting.Runs, s.Batting.Balls, s.Batting.StrikeRate(), avgString(s.Batting),
		s.HighestScore, s.Fifties, s.Hundreds, s.Batting.Fours, s.Batting.Sixes)
	if s.Bowling.Balls > 0 {
		fmt.Fprintf(&b, "Bowling: %d wickets, economy %.2f, best %d in a match\n",
			s.Bowling.Wickets, s.Bowling.Economy(), s.BestBowling)
	}
	if len(s.Teams) > 0 {
		fmt.Fprintf(&b, "Teams: %s\n", strings.Join(s.Teams, ", "))
	}
	if len(s.Seasons) > 0 {
		fmt.Fprintf(&b, "Seasons: %d (%d-%d)\n", len(s.Seasons), s.Seasons[0], s.Seasons[len(s.Seasons)-1])
	}
	return b.String()
}

// PrintPlayerSummary writes a player's career as tables: one header line,
// then the season-by-season run tally.
func PrintPlayerSummary(w io.Writer, s *model.PlayerSummary) {
	fmt.Fprintf(w, "\n%s", RenderPlayerSummary(s))
	if len(s.RunsBySeason) == 0 {
		return
	}
	table := newTable(w)
	table.Header("SEASON", "RUNS")
	for _, sr := range s.RunsBySeason {
		table.Append(strconv.Itoa(sr.Season), strconv.Itoa(sr.Runs))
	}
	table.Render()
}

// PrintComparison writes several players' career lines side by side,
// one row per player, ordered by runs descending.
func PrintComparison(w io.Writer, summaries []*model.PlayerSummary) {
	ordered := make([]*model.PlayerSummary, len(summaries))
	copy(ordered, summaries)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Batting.Runs != ordered[j].Batting.Runs {
			return ordered[i].Batting.Runs > ordered[j].Batting.Runs
		}
		return ordered[i].Player < ordered[j].Player
	})

	table := newTable(w)
	table.Header("PLAYER", "RUNS", "BALLS", "SR", "AVG", "HS", "50s", "100s", "WKTS", "ECON")
	for _, s := range ordered {
		econ := "—"
		if s.Bowling.Balls > 0 {
			econ = fmt.Sprintf("%.2f", s.Bowling.Economy())
		}
		table.Append(
			s.Player,
			strconv.Itoa(s.Batting.Runs),
			strconv.Itoa(s.Batting.Balls),
			fmt.Sprintf("%.2f", s.Batting.StrikeRate()),
			avgString(s.Batting),
			strconv.Itoa(s.HighestScore),
			strconv.Itoa(s.Fifties),
			strconv.Itoa(s.Hundreds),
			strconv.Itoa(s.Bowling.Wickets),
			econ,
		)
	}
	table.Render()
}

// RenderComparison formats a multi-player comparison as text lines.
func RenderComparison(summaries []*model.PlayerSummary) string {
	var b strings.Builder
	for i, s := range summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderPlayerSummary(s))
	}
	return b.String()
}

// RenderHeadToHead formats the two-team record.
func RenderHeadToHead(h *model.HeadToHead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s: %d matches, %s %d - %d %s",
		h.Team1, h.Team2, h.Matches, h.Team1, h.Team1Wins, h.Team2Wins, h.Team2)
	if h.NoResults > 0 {
		fmt.Fprintf(&b, " (%d no result)", h.NoResults)
	}
	b.WriteString("\n")
	if h.HighestTeamTotal > 0 {
		fmt.Fprintf(&b, "Highest team total: %d\n", h.HighestTeamTotal)
	}
	if h.BestBatter != "" {
		fmt.Fprintf(&b, "Best individual score: %d by %s\n", h.BestScore, h.BestBatter)
	}
	if len(h.TopBatters) > 0 {
		fmt.Fprintf(&b, "Top run scorers: %s\n", rankedLine(h.TopBatters, "%.0f"))
	}
	if len(h.TopBowlers) > 0 {
		fmt.Fprintf(&b, "Top wicket takers: %s\n", rankedLine(h.TopBowlers, "%.0f"))
	}
	return b.String()
}

// PrintHeadToHead writes the head-to-head record with top-performer tables.
func PrintHeadToHead(w io.Writer, h *model.HeadToHead) {
	fmt.Fprintf(w, "\n%s vs %s  |  Matches: %d  |  %s %d – %d %s  |  No result: %d\n\n",
		h.Team1, h.Team2, h.Matches, h.Team1, h.Team1Wins, h.Team2Wins, h.Team2, h.NoResults)
	printRankedPair(w, "RUNS", h.TopBatters, "WKTS", h.TopBowlers)
	if h.BestBatter != "" {
		fmt.Fprintf(w, "Best score: %d (%s)  |  Highest total: %d\n", h.BestScore, h.BestBatter, h.HighestTeamTotal)
	}
}

// RenderVenueSummary formats a ground's record.
func RenderVenueSummary(v *model.VenueSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d matches\n", v.Venue, v.Matches)
	fmt.Fprintf(&b, "Average 1st innings %.1f, 2nd innings %.1f; %d runs, %d fours, %d sixes\n",
		v.AvgFirstInnings, v.AvgSecondInnings, v.TotalRuns, v.Fours, v.Sixes)
	fmt.Fprintf(&b, "Batting first won %d, chasing won %d", v.BatFirstWins, v.ChaseWins)
	if v.Incomplete > 0 {
		fmt.Fprintf(&b, " (%d without a result)", v.Incomplete)
	}
	b.WriteString("\n")
	if len(v.TopTeams) > 0 {
		fmt.Fprintf(&b, "Most wins here: %s\n", rankedLine(v.TopTeams, "%.0f"))
	}
	if len(v.TopBatters) > 0 {
		fmt.Fprintf(&b, "Top run scorers: %s\n", rankedLine(v.TopBatters, "%.0f"))
	}
	if len(v.TopBowlers) > 0 {
		fmt.Fprintf(&b, "Top wicket takers: %s\n", rankedLine(v.TopBowlers, "%.0f"))
	}
	return b.String()
}

// PrintVenueSummary writes the venue record to the terminal.
func PrintVenueSummary(w io.Writer, v *model.VenueSummary) {
	fmt.Fprintf(w, "\n%s", RenderVenueSummary(v))
}

// RenderPhasePerformance formats a player's record in one phase.
func RenderPhasePerformance(p *model.PhasePerformance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s in the %s%s\n", p.Player, p.Phase, seasonSuffix(p.Season))
	fmt.Fprintf(&b, "Batting: %d runs off %d balls (SR %.2f), dismissed %d times\n",
		p.Batting.Runs, p.Batting.Balls, p.Batting.StrikeRate(), p.Batting.Dismissals)
	if p.Bowling.Balls > 0 {
		fmt.Fprintf(&b, "Bowling: %d wickets, economy %.2f\n", p.Bowling.Wickets, p.Bowling.Economy())
	}
	return b.String()
}

// RenderPlayerVsTeam formats a player's record against one opponent.
func RenderPlayerVsTeam(p *model.PlayerVsTeam) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s%s\n", p.Player, p.Team, seasonSuffix(p.Season))
	fmt.Fprintf(&b, "Batting: %d runs off %d balls (SR %.2f, avg %s)\n",
		p.Batting.Runs, p.Batting.Balls, p.Batting.StrikeRate(), avgString(p.Batting))
	if p.Bowling.Balls > 0 {
		fmt.Fprintf(&b, "Bowling: %d wickets, economy %.2f\n", p.Bowling.Wickets, p.Bowling.Economy())
	}
	return b.String()
}

// RenderPlayoffPerformance formats a team's or player's playoff record.
func RenderPlayoffPerformance(p *model.PlayoffPerformance) string {
	var b strings.Builder
	if p.IsTeam {
		fmt.Fprintf(&b, "%s in playoffs: %d matches, %d wins, %d losses\n",
			p.Name, p.Matches, p.Wins, p.Losses)
		return b.String()
	}
	fmt.Fprintf(&b, "%s in playoffs\n", p.Name)
	fmt.Fprintf(&b, "Batting: %d runs off %d balls (SR %.2f)\n",
		p.Batting.Runs, p.Batting.Balls, p.Batting.StrikeRate())
	if p.Bowling.Balls > 0 {
		fmt.Fprintf(&b, "Bowling: %d wickets, economy %.2f\n", p.Bowling.Wickets, p.Bowling.Economy())
	}
	return b.String()
}

// RenderPairStats formats a partnership record.
func RenderPairStats(p *model.PairStats) string {
	return fmt.Sprintf("%s and %s%s: %d runs off %d balls together (%.2f per ball) across %d matches\n",
		p.Player1, p.Player2, seasonSuffix(p.Season),
		p.Runs, p.Balls, p.RunsPerBall(), p.Matches)
}

// RenderLeaderboard formats a ranked list as numbered lines.
func RenderLeaderboard(title string, entries []model.RankedEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. %s — %s\n", i+1, e.Name, formatValue(e.Value))
	}
	return b.String()
}

// PrintLeaderboard writes a ranked list as a table.
func PrintLeaderboard(w io.Writer, title, valueHeader string, entries []model.RankedEntry) {
	fmt.Fprintf(w, "\n%s\n", title)
	table := newTable(w)
	table.Header("#", "NAME", valueHeader)
	for i, e := range entries {
		table.Append(strconv.Itoa(i+1), e.Name, formatValue(e.Value))
	}
	table.Render()
}

// RenderSeasonSummary formats one season's overview.
func RenderSeasonSummary(s *model.SeasonSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Season %d: %d matches\n", s.Season, s.Matches)
	if s.Champion != "" {
		fmt.Fprintf(&b, "Champion: %s", s.Champion)
		if s.RunnerUp != "" {
			fmt.Fprintf(&b, " (runner-up %s)", s.RunnerUp)
		}
		b.WriteString("\n")
	}
	if s.TopVenue != "" {
		fmt.Fprintf(&b, "Most matches at: %s\n", s.TopVenue)
	}
	if s.OrangeCap.Name != "" {
		fmt.Fprintf(&b, "Orange Cap: %s (%.0f runs)\n", s.OrangeCap.Name, s.OrangeCap.Value)
	}
	if s.PurpleCap.Name != "" {
		fmt.Fprintf(&b, "Purple Cap: %s (%.0f wickets)\n", s.PurpleCap.Name, s.PurpleCap.Value)
	}
	return b.String()
}

// PrintSeasonSummaries writes one row per season.
func PrintSeasonSummaries(w io.Writer, summaries []*model.SeasonSummary) {
	table := newTable(w)
	table.Header("SEASON", "MATCHES", "CHAMPION", "ORANGE CAP", "PURPLE CAP")
	for _, s := range summaries {
		orange, purple := "—", "—"
		if s.OrangeCap.Name != "" {
			orange = fmt.Sprintf("%s (%.0f)", s.OrangeCap.Name, s.OrangeCap.Value)
		}
		if s.PurpleCap.Name != "" {
			purple = fmt.Sprintf("%s (%.0f)", s.PurpleCap.Name, s.PurpleCap.Value)
		}
		table.Append(strconv.Itoa(s.Season), strconv.Itoa(s.Matches), s.Champion, orange, purple)
	}
	table.Render()
}

// RenderRecords formats record-finder output.
func RenderRecords(title string, entries []model.RecordEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. %s — %d (season %d, match %s)\n", i+1, e.Player, e.Value, e.Season, e.MatchID)
	}
	return b.String()
}

// PrintRecords writes record-finder output as a table.
func PrintRecords(w io.Writer, title, valueHeader string, entries []model.RecordEntry) {
	fmt.Fprintf(w, "\n%s\n", title)
	table := newTable(w)
	table.Header("#", "PLAYER", valueHeader, "SEASON", "MATCH")
	for i, e := range entries {
		table.Append(strconv.Itoa(i+1), e.Player, strconv.Itoa(e.Value), strconv.Itoa(e.Season), e.MatchID)
	}
	table.Render()
}

// rankedLine joins ranked entries as "A (12), B (9), ...".
func rankedLine(entries []model.RankedEntry, valueFmt string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s ("+valueFmt+")", e.Name, e.Value)
	}
	return strings.Join(parts, ", ")
}

// printRankedPair writes two ranked lists side by side in one table. Lists
// may differ in length; short sides pad with blanks.
func printRankedPair(w io.Writer, leftHeader string, left []model.RankedEntry, rightHeader string, right []model.RankedEntry) {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	if n == 0 {
		return
	}
	table := newTable(w)
	table.Header("BATTER", leftHeader, "BOWLER", rightHeader)
	for i := 0; i < n; i++ {
		var lName, lVal, rName, rVal string
		if i < len(left) {
			lName, lVal = left[i].Name, formatValue(left[i].Value)
		}
		if i < len(right) {
			rName, rVal = right[i].Name, formatValue(right[i].Value)
		}
		table.Append(lName, lVal, rName, rVal)
	}
	table.Render()
}

// formatValue drops the decimals on counting stats but keeps them on rates.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.2f", v)
}
