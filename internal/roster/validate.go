// File: internal/roster/validate.go
package roster

import (
	"fmt"
	"strings"
)

// MatchupError is the one user-surfaced failure in the system: the entered
// teams cannot form a valid session.
type MatchupError struct {
	Team    string
	Message string
}

func (e *MatchupError) Error() string { return e.Message }

// FindTeam resolves name against the game's reference list,
// case-insensitively, returning the canonical spelling.
func FindTeam(g Game, name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Teams(g) {
		if strings.ToLower(t) == needle {
			return t, true
		}
	}
	return "", false
}

// SearchTeams returns every reference team containing the query substring,
// case-insensitively. Used for suggestion lists.
func SearchTeams(g Game, query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, t := range Teams(g) {
		if strings.Contains(strings.ToLower(t), needle) {
			out = append(out, t)
		}
	}
	return out
}

// ValidateMatchup checks both entered names against the reference list and
// rejects a team playing itself. On success it returns the canonical
// spellings so downstream requests use consistent identifiers.
func ValidateMatchup(g Game, team, opponent string) (string, string, error) {
	canonTeam, ok := FindTeam(g, team)
	if !ok {
		return "", "", &MatchupError{
			Team:    team,
			Message: fmt.Sprintf("%q is not found in the %s team database", team, g),
		}
	}
	canonOpp, ok := FindTeam(g, opponent)
	if !ok {
		return "", "", &MatchupError{
			Team:    opponent,
			Message: fmt.Sprintf("%q is not found in the %s team database", opponent, g),
		}
	}
	if strings.EqualFold(canonTeam, canonOpp) {
		return "", "", &MatchupError{
			Team:    team,
			Message: "your team and opponent team cannot be the same",
		}
	}
	return canonTeam, canonOpp, nil
}
