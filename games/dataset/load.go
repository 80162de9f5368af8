/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package dataset loads appearance records from CSV files or PostgreSQL.
package dataset

import (
	"context"

	"github.com/Seednode/dugout/games/lineup"
)

// Source describes where appearance records are read from.
type Source struct {
	Path        string
	DatabaseURL string
}

// Result is a loaded, indexed dataset and where it came from.
type Result struct {
	Dataset *lineup.Dataset
	Origin  string
	Sampled bool
}

// Load reads every record from src. A database URL takes precedence over
// a CSV path.
func Load(ctx context.Context, src Source) (*Result, error) {
	if src.DatabaseURL != "" {
		records, err := LoadPostgres(ctx, src.DatabaseURL)
		if err != nil {
			return nil, err
		}

		return &Result{
			Dataset: lineup.NewDataset(records),
			Origin:  "postgres",
		}, nil
	}

	records, sampled, err := LoadCSV(src.Path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Dataset: lineup.NewDataset(records),
		Origin:  src.Path,
		Sampled: sampled,
	}, nil
}
