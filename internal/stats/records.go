package stats

import (
	"sort"
	"strings"

	"github.com/pitchview/iplmetrics/internal/model"
)

// RecordQuery parameterizes the record finder.
type RecordQuery struct {
	Type      string // "fastest fifty", "highest score", "best bowling"
	Season    int
	MatchType string // "", "final", "playoffs"
	Phase     model.Phase
	Venue     string
}

// FindRecords returns the top 5 instances of a record under the given
// filters. Fastest fifty is the one aggregation that needs an ordered
// ball-by-ball scan: a batter's cumulative runs within an innings, not a
// grouped total.
func (e *Engine) FindRecords(q RecordQuery) ([]model.RecordEntry, error) {
	if err := e.ValidateSeason(q.Season); err != nil {
		return nil, err
	}

	mt := strings.ToLower(q.MatchType)
	if mt != "" && mt != "final" && mt != "playoffs" {
		return nil, &InvalidParameterError{Param: "match_type", Value: q.MatchType, Reason: "supported: final, playoffs"}
	}

	rows := e.filter(func(d model.Delivery) bool {
		if !seasonMatches(d, q.Season) || !phaseMatches(d, q.Phase) {
			return false
		}
		m, ok := e.table.Match(d.MatchID)
		if !ok {
			return false
		}
		if q.Venue != "" && m.Venue != q.Venue {
			return false
		}
		switch mt {
		case "final":
			if !strings.Contains(strings.ToLower(m.MatchNumber), "final") {
				return false
			}
		case "playoffs":
			if !isPlayoff(m.MatchNumber) {
				return false
			}
		}
		return true
	})

	var entries []model.RecordEntry
	switch strings.ToLower(strings.TrimSpace(q.Type)) {
	case "fastest fifty", "fastest 50":
		entries = fastestFifties(rows)
		// Fewest balls first.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Value != entries[j].Value {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Player < entries[j].Player
		})

	case "highest score":
		totals := make(map[[2]string]int)
		seasons := make(map[string]int)
		for _, d := range rows {
			totals[[2]string{d.MatchID, d.Batter}] += d.BatterRuns
			seasons[d.MatchID] = d.Season
		}
		for key, runs := range totals {
			entries = append(entries, model.RecordEntry{
				Player: key[1], MatchID: key[0], Season: seasons[key[0]], Value: runs,
			})
		}
		sortRecordsDesc(entries)

	case "best bowling":
		totals := make(map[[2]string]int)
		seasons := make(map[string]int)
		for _, d := range rows {
			seasons[d.MatchID] = d.Season
			if bowlerWicket(d) {
				totals[[2]string{d.MatchID, d.Bowler}]++
			}
		}
		for key, wickets := range totals {
			entries = append(entries, model.RecordEntry{
				Player: key[1], MatchID: key[0], Season: seasons[key[0]], Value: wickets,
			})
		}
		sortRecordsDesc(entries)

	default:
		return nil, &InvalidParameterError{Param: "record_type", Value: q.Type, Reason: "supported: fastest fifty, highest score, best bowling"}
	}

	if len(entries) == 0 {
		return nil, noData("record=" + q.Type)
	}
	if len(entries) > 5 {
		entries = entries[:5]
	}
	return entries, nil
}

// fastestFifties scans each batter's innings in ball order and records the
// ball count at which their cumulative runs first reach 50.
func fastestFifties(rows []model.Delivery) []model.RecordEntry {
	ordered := make([]model.Delivery, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.Innings != b.Innings {
			return a.Innings < b.Innings
		}
		if a.Over != b.Over {
			return a.Over < b.Over
		}
		return a.Ball < b.Ball
	})

	type inningsKey struct {
		matchID string
		innings int
		batter  string
	}
	runs := make(map[inningsKey]int)
	balls := make(map[inningsKey]int)
	var entries []model.RecordEntry
	for _, d := range ordered {
		k := inningsKey{d.MatchID, d.Innings, d.Batter}
		if runs[k] >= 50 {
			continue // fifty already reached earlier in this innings
		}
		runs[k] += d.BatterRuns
		balls[k]++
		if runs[k] >= 50 {
			entries = append(entries, model.RecordEntry{
				Player: d.Batter, MatchID: d.MatchID, Season: d.Season, Value: balls[k],
			})
		}
	}
	return entries
}

func sortRecordsDesc(entries []model.RecordEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Player < entries[j].Player
	})
}
