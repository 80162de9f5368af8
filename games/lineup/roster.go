/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

const (
	// FirstSeason and LastSeason bound the seasons a round is drawn from.
	FirstSeason = 2000
	LastSeason  = 2024

	lineupSize = 9
)

// Rand is the source of randomness used to pick rounds.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Roster maps each position to the player who held it.
type Roster map[Position]string

// PickRound chooses a season and team that have at least one record.
// A season is drawn from FirstSeason..LastSeason; if no team played in it,
// the season is redrawn from those present in the dataset.
func PickRound(d *Dataset, rng Rand) (int, string, error) {
	if d.Len() == 0 {
		return 0, "", &DataError{Op: "pick round", Err: ErrEmptyDataset}
	}

	year := FirstSeason + rng.IntN(LastSeason-FirstSeason+1)

	teams := d.Teams(year)
	if len(teams) == 0 {
		years := d.Years()
		year = years[rng.IntN(len(years))]
		teams = d.Teams(year)
	}

	return year, teams[rng.IntN(len(teams))], nil
}

// BuildRoster derives the starting lineup for a team and season from the
// first nine records in source order. The ninth record is only kept when it
// is a designated hitter; with fewer than nine records all are kept.
// Unrecognized positions are dropped.
func BuildRoster(d *Dataset, year int, team string) Roster {
	records := d.Appearances(year, team)

	if len(records) >= lineupSize {
		records = records[:lineupSize]
		if records[lineupSize-1].Position != DesignatedHitter {
			records = records[:lineupSize-1]
		}
	}

	roster := make(Roster, len(records))
	for _, r := range records {
		if r.Position.Valid() {
			roster[r.Position] = r.PlayerName
		}
	}

	return roster
}

// HasDesignatedHitter reports whether the roster includes a DH slot.
func HasDesignatedHitter(r Roster) bool {
	_, ok := r[DesignatedHitter]
	return ok
}

// Positions returns the roster's positions in canonical order.
func (r Roster) Positions() []Position {
	out := make([]Position, 0, len(r))
	for _, p := range Positions {
		if _, ok := r[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
