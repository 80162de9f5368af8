/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"github.com/Seednode/dugout/games/lineup"
)

// Sample returns a small built-in dataset: one lineup with a designated
// hitter and one without.
func Sample() []lineup.AppearanceRecord {
	const (
		dodgers = "Los Angeles Dodgers"
		braves  = "Atlanta Braves"
	)

	return []lineup.AppearanceRecord{
		{Year: 2020, Team: dodgers, Position: lineup.Catcher, PlayerName: "Austin Barnes", GamesPlayed: 30},
		{Year: 2020, Team: dodgers, Position: lineup.FirstBase, PlayerName: "Max Muncy", GamesPlayed: 58},
		{Year: 2020, Team: dodgers, Position: lineup.SecondBase, PlayerName: "Gavin Lux", GamesPlayed: 23},
		{Year: 2020, Team: dodgers, Position: lineup.ThirdBase, PlayerName: "Justin Turner", GamesPlayed: 42},
		{Year: 2020, Team: dodgers, Position: lineup.Shortstop, PlayerName: "Corey Seager", GamesPlayed: 52},
		{Year: 2020, Team: dodgers, Position: lineup.LeftField, PlayerName: "AJ Pollock", GamesPlayed: 55},
		{Year: 2020, Team: dodgers, Position: lineup.CenterField, PlayerName: "Cody Bellinger", GamesPlayed: 56},
		{Year: 2020, Team: dodgers, Position: lineup.RightField, PlayerName: "Mookie Betts", GamesPlayed: 55},
		{Year: 2020, Team: dodgers, Position: lineup.DesignatedHitter, PlayerName: "Edwin Rios", GamesPlayed: 15},

		{Year: 2021, Team: braves, Position: lineup.Catcher, PlayerName: "Travis d'Arnaud", GamesPlayed: 82},
		{Year: 2021, Team: braves, Position: lineup.FirstBase, PlayerName: "Freddie Freeman", GamesPlayed: 159},
		{Year: 2021, Team: braves, Position: lineup.SecondBase, PlayerName: "Ozzie Albies", GamesPlayed: 156},
		{Year: 2021, Team: braves, Position: lineup.ThirdBase, PlayerName: "Austin Riley", GamesPlayed: 160},
		{Year: 2021, Team: braves, Position: lineup.Shortstop, PlayerName: "Dansby Swanson", GamesPlayed: 160},
		{Year: 2021, Team: braves, Position: lineup.LeftField, PlayerName: "Eddie Rosario", GamesPlayed: 109},
		{Year: 2021, Team: braves, Position: lineup.CenterField, PlayerName: "Ronald Acuna Jr", GamesPlayed: 82},
		{Year: 2021, Team: braves, Position: lineup.RightField, PlayerName: "Jorge Soler", GamesPlayed: 137},
	}
}
