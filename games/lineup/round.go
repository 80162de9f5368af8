/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

// RoundContext holds everything needed to score a single round. It is never
// modified after NewRound returns.
type RoundContext struct {
	Year   int
	Team   string
	Roster Roster
}

// NewRound picks a team and season and builds its roster.
func NewRound(d *Dataset, rng Rand) (*RoundContext, error) {
	year, team, err := PickRound(d, rng)
	if err != nil {
		return nil, err
	}

	return &RoundContext{
		Year:   year,
		Team:   team,
		Roster: BuildRoster(d, year, team),
	}, nil
}

// HasDesignatedHitter reports whether the round's roster includes a DH.
func (rc *RoundContext) HasDesignatedHitter() bool {
	return HasDesignatedHitter(rc.Roster)
}

// Score evaluates guesses against the round's roster.
func (rc *RoundContext) Score(guesses GuessSet) ScoreSummary {
	return Score(guesses, rc.Roster)
}
