/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Seednode/dugout/games/lineup"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldNames = map[string]string{
	"Year":        "year",
	"Team":        "team",
	"Position":    "position",
	"PlayerName":  "player_name",
	"GamesPlayed": "games_played",
}

// validateRecord checks a parsed record, reporting the first failing column.
func validateRecord(line int, r *lineup.AppearanceRecord) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := fieldNames[verrs[0].StructField()]
		return &ParseError{
			Line:  line,
			Field: field,
			Err:   errors.New("failed " + strings.ReplaceAll(verrs[0].Tag(), "_", " ") + " check"),
		}
	}

	return &ParseError{Line: line, Err: err}
}
