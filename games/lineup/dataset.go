/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

import (
	"slices"
)

// AppearanceRecord is a single player-season-team-position appearance.
// Records are expected in descending order of usage within a team and season.
type AppearanceRecord struct {
	Year        int      `json:"year" validate:"gt=0"`
	Team        string   `json:"team" validate:"required"`
	Position    Position `json:"position" validate:"required"`
	PlayerName  string   `json:"player_name" validate:"required"`
	GamesPlayed int      `json:"games_played" validate:"gte=0"`
}

type teamSeason struct {
	year int
	team string
}

// Dataset is an immutable, indexed collection of appearance records.
// It is safe for concurrent use once constructed.
type Dataset struct {
	records []AppearanceRecord
	years   []int
	teams   map[int][]string
	lineups map[teamSeason][]int
}

// NewDataset indexes records by season and team, preserving source order.
// The records slice is copied.
func NewDataset(records []AppearanceRecord) *Dataset {
	d := &Dataset{
		records: slices.Clone(records),
		teams:   make(map[int][]string),
		lineups: make(map[teamSeason][]int),
	}

	for i, r := range d.records {
		key := teamSeason{year: r.Year, team: r.Team}

		if _, ok := d.lineups[key]; !ok {
			if _, seen := d.teams[r.Year]; !seen {
				d.years = append(d.years, r.Year)
			}
			d.teams[r.Year] = append(d.teams[r.Year], r.Team)
		}

		d.lineups[key] = append(d.lineups[key], i)
	}

	slices.Sort(d.years)
	for year := range d.teams {
		slices.Sort(d.teams[year])
	}

	return d
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Years returns every season with at least one record, ascending.
func (d *Dataset) Years() []int {
	if d == nil {
		return nil
	}
	return slices.Clone(d.years)
}

// Teams returns the distinct teams with at least one record in year, sorted.
func (d *Dataset) Teams(year int) []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.teams[year])
}

// Appearances returns the records for a team and season in source order.
func (d *Dataset) Appearances(year int, team string) []AppearanceRecord {
	if d == nil {
		return nil
	}

	idx := d.lineups[teamSeason{year: year, team: team}]
	out := make([]AppearanceRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.records[i])
	}
	return out
}
