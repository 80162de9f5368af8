/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package lineup picks a historical team and season, derives its starting
// lineup, and scores a player's guesses against it.
//
// How to play
// - A random season between 2000 and 2024 is chosen, then a random team
//   that has appearance data for that season
// - The player is shown the year and team, and one text field per position
// - The designated hitter field is only shown if the team used one as its
//   ninth lineup entry
// - Guesses are sanitized and compared case-insensitively, with minor typos
//   accepted (similarity of 0.8 or higher)
// - The final percentage is correct answers out of lineup positions, not out
//   of guesses made, so blank fields count against the player
package lineup
