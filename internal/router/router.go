// Package router parses free-text questions into aggregation calls. Each
// Route call is stateless: pattern-match, extract raw parameters, resolve
// entities, validate, dispatch. Queries no pattern claims go to the
// retrieval fallback.
package router

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pitchview/iplmetrics/internal/answer"
	"github.com/pitchview/iplmetrics/internal/model"
	"github.com/pitchview/iplmetrics/internal/report"
	"github.com/pitchview/iplmetrics/internal/resolve"
	"github.com/pitchview/iplmetrics/internal/stats"
)

// ParseError reports which part of a query defeated the pattern matcher.
type ParseError struct {
	Query string
	Part  string // the parameter or pattern element that failed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not understand %q: no match for %s", e.Query, e.Part)
}

// EntityNotFoundError names the input that the resolver rejected.
type EntityNotFoundError struct {
	Kind  string // "player", "team"
	Input string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q in the dataset", e.Kind, e.Input)
}

// Router dispatches parsed queries to the aggregation engine. Stateless per
// call; safe for concurrent use.
type Router struct {
	engine   *stats.Engine
	resolver *resolve.Resolver
	fallback answer.Answerer
	log      *zap.Logger
}

// New wires a Router. A nil fallback disables retrieval answering; a nil
// logger silences routing diagnostics.
func New(engine *stats.Engine, resolver *resolve.Resolver, fallback answer.Answerer, log *zap.Logger) *Router {
	if fallback == nil {
		fallback = answer.Unavailable{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{engine: engine, resolver: resolver, fallback: fallback, log: log}
}

var (
	seasonSuffixRe = regexp.MustCompile(`\s+in\s+(\d{4})\s*$`)
	yearRe         = regexp.MustCompile(`^\d{4}$`)

	seasonSummaryRe = regexp.MustCompile(`^(\d{4})\s+(?:season\s+)?summary$|^summary\s+of\s+(\d{4})$`)
	recordRe        = regexp.MustCompile(`^(fastest\s+(?:fifty|50)|highest\s+score|best\s+bowling)(?:\s+in\s+(?:the\s+)?(final|playoffs))?$`)
	playoffRe       = regexp.MustCompile(`^(.+?)\s+in\s+(?:the\s+)?playoffs$`)
	leaderboardRe   = regexp.MustCompile(`^top\s+(batsmen|batters|run\s+scorers|bowlers|wicket\s+takers)$`)
	venueRe         = regexp.MustCompile(`^(?:venue\s+)?stats\s+at\s+(.+)$|^matches\s+at\s+(.+)$`)
	vsRe            = regexp.MustCompile(`^(.+?)\s+(?:vs\.?|versus|against)\s+(.+)$`)
	phaseRe         = regexp.MustCompile(`^(.+?)\s+in\s+(?:the\s+)?(powerplay|power\s+play|middle\s+overs?|death\s+overs?|death)$`)
	pairRe          = regexp.MustCompile(`^(.+?)\s+and\s+(.+)$`)
)

// Route answers a free-text query. Typed engine errors (no data, invalid
// parameter) pass through untouched so callers can present them; only a
// failure to match any pattern reaches the retrieval fallback.
func (r *Router) Route(ctx context.Context, query string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimSuffix(q, "?")
	if q == "" {
		return "", &ParseError{Query: query, Part: "empty query"}
	}

	text, err := r.dispatch(query, q)
	var parseErr *ParseError
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			parseErr = pe
		} else {
			return "", err
		}
	}
	if parseErr == nil {
		return text, nil
	}

	r.log.Debug("pattern match failed, trying fallback",
		zap.String("query", query), zap.String("part", parseErr.Part))
	fallbackText, fbErr := r.fallback.Answer(ctx, query)
	if fbErr != nil {
		return "", parseErr
	}
	return fallbackText, nil
}

// dispatch tries each pattern in priority order against the lowercased
// query. Specific shapes go first so "top bowlers" is never read as a
// player named "top".
func (r *Router) dispatch(original, q string) (string, error) {
	if q == "all seasons" || q == "season summaries" {
		summaries, err := r.engine.AllSeasonSummaries()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for i, s := range summaries {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(report.RenderSeasonSummary(s))
		}
		return b.String(), nil
	}

	if m := seasonSummaryRe.FindStringSubmatch(q); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		season, err := r.parseSeason(raw)
		if err != nil {
			return "", err
		}
		s, err := r.engine.SeasonSummary(season)
		if err != nil {
			return "", err
		}
		return report.RenderSeasonSummary(s), nil
	}

	// Records carry an optional trailing season: "fastest fifty in 2016".
	recordQ, season, err := r.stripSeason(q)
	if err != nil {
		return "", err
	}
	if m := recordRe.FindStringSubmatch(recordQ); m != nil {
		recordType := strings.Join(strings.Fields(m[1]), " ")
		if recordType == "fastest 50" {
			recordType = "fastest fifty"
		}
		entries, err := r.engine.FindRecords(stats.RecordQuery{
			Type:      recordType,
			Season:    season,
			MatchType: m[2],
		})
		if err != nil {
			return "", err
		}
		return report.RenderRecords(recordType, entries), nil
	}

	if m := playoffRe.FindStringSubmatch(q); m != nil {
		name, err := r.resolveTeamOrPlayer(m[1])
		if err != nil {
			return "", err
		}
		p, err := r.engine.PlayoffPerformance(name)
		if err != nil {
			return "", err
		}
		return report.RenderPlayoffPerformance(p), nil
	}

	if m := leaderboardRe.FindStringSubmatch(recordQ); m != nil {
		category := stats.CategoryBatting
		title := "Top run scorers"
		if strings.HasPrefix(m[1], "bowl") || strings.HasPrefix(m[1], "wicket") {
			category = stats.CategoryBowling
			title = "Top wicket takers"
		}
		entries, err := r.engine.Leaderboard(category, season)
		if err != nil {
			return "", err
		}
		return report.RenderLeaderboard(title, entries), nil
	}

	if m := venueRe.FindStringSubmatch(q); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		v, err := r.engine.VenueSummary(resolve.Venue(raw))
		if err != nil {
			return "", err
		}
		return report.RenderVenueSummary(v), nil
	}

	if m := vsRe.FindStringSubmatch(recordQ); m != nil {
		return r.routeVersus(m[1], m[2], season)
	}

	if m := phaseRe.FindStringSubmatch(recordQ); m != nil {
		player, ok := r.resolver.Player(m[1])
		if !ok {
			return "", &EntityNotFoundError{Kind: "player", Input: m[1]}
		}
		phase := model.ParsePhase(m[2])
		p, err := r.engine.PhasePerformance(player, phase, season)
		if err != nil {
			return "", err
		}
		return report.RenderPhasePerformance(p), nil
	}

	if m := pairRe.FindStringSubmatch(recordQ); m != nil {
		p1, ok := r.resolver.Player(m[1])
		if !ok {
			return "", &EntityNotFoundError{Kind: "player", Input: m[1]}
		}
		p2, ok := r.resolver.Player(m[2])
		if !ok {
			return "", &EntityNotFoundError{Kind: "player", Input: m[2]}
		}
		p, err := r.engine.PairStats(p1, p2, season)
		if err != nil {
			return "", err
		}
		return report.RenderPairStats(p), nil
	}

	// Last resort: a bare name is a career summary request. Only a
	// confident resolver hit counts; anything else is a parse failure,
	// not a wrong-player answer.
	if season == 0 {
		if player, ok := r.resolver.Player(q); ok {
			s, err := r.engine.PlayerSummary(player)
			if err != nil {
				return "", err
			}
			return report.RenderPlayerSummary(s), nil
		}
	}
	return "", &ParseError{Query: original, Part: "query pattern"}
}

// routeVersus handles both "X vs Y" team pairs and "player vs team".
// Both-sides-known-team wins over the player reading.
func (r *Router) routeVersus(left, right string, season int) (string, error) {
	if resolve.IsKnownTeam(left) && resolve.IsKnownTeam(right) {
		h, err := r.engine.TeamVsTeam(resolve.Team(left), resolve.Team(right))
		if err != nil {
			return "", err
		}
		return report.RenderHeadToHead(h), nil
	}
	if !resolve.IsKnownTeam(right) {
		return "", &EntityNotFoundError{Kind: "team", Input: right}
	}
	player, ok := r.resolver.Player(left)
	if !ok {
		return "", &EntityNotFoundError{Kind: "player", Input: left}
	}
	p, err := r.engine.PlayerVsTeam(player, resolve.Team(right), season)
	if err != nil {
		return "", err
	}
	return report.RenderPlayerVsTeam(p), nil
}

// stripSeason removes a trailing "in YYYY" clause, returning the remaining
// query and the validated season (0 when absent).
func (r *Router) stripSeason(q string) (string, int, error) {
	m := seasonSuffixRe.FindStringSubmatch(q)
	if m == nil {
		return q, 0, nil
	}
	season, err := r.parseSeason(m[1])
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(q[:len(q)-len(m[0])]), season, nil
}

// parseSeason requires a 4-digit year inside the catalog range. Out-of-range
// years are a distinguishable failure, never silently ignored.
func (r *Router) parseSeason(raw string) (int, error) {
	if !yearRe.MatchString(raw) {
		return 0, &ParseError{Query: raw, Part: "season (want a 4-digit year)"}
	}
	season, _ := strconv.Atoi(raw)
	if err := r.engine.ValidateSeason(season); err != nil {
		return 0, err
	}
	return season, nil
}

// resolveTeamOrPlayer tries the team alias table first, then the player
// catalog.
func (r *Router) resolveTeamOrPlayer(input string) (string, error) {
	if resolve.IsKnownTeam(input) {
		return resolve.Team(input), nil
	}
	if player, ok := r.resolver.Player(input); ok {
		return player, nil
	}
	return "", &EntityNotFoundError{Kind: "player or team", Input: input}
}
