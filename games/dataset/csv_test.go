/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/dugout/games/lineup"
)

func TestReadCSV(t *testing.T) {
	input := "player_name,year,team,position,games_played,extra\n" +
		" Austin Barnes ,2020, Los Angeles Dodgers ,C,30,x\n" +
		"Max Muncy,2020,Los Angeles Dodgers,1B,58,y\n" +
		"Clayton Kershaw,2020,Los Angeles Dodgers,P,10,z\n"

	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, lineup.AppearanceRecord{
		Year:        2020,
		Team:        "Los Angeles Dodgers",
		Position:    lineup.Catcher,
		PlayerName:  "Austin Barnes",
		GamesPlayed: 30,
	}, records[0])
	assert.Equal(t, lineup.Position("P"), records[2].Position)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		field string
	}{
		{
			name:  "empty input",
			input: "",
			line:  1,
		},
		{
			name:  "missing column",
			input: "year,team,position,player_name\n2020,Dodgers,C,Austin Barnes\n",
			line:  1,
			field: "games_played",
		},
		{
			name:  "bad year",
			input: "year,team,position,player_name,games_played\ntwenty,Dodgers,C,Austin Barnes,30\n",
			line:  2,
			field: "year",
		},
		{
			name:  "bad games played",
			input: "year,team,position,player_name,games_played\n2020,Dodgers,C,Austin Barnes,30\n2020,Dodgers,1B,Max Muncy,lots\n",
			line:  3,
			field: "games_played",
		},
		{
			name:  "short row",
			input: "year,team,position,player_name,games_played\n2020,Dodgers,C\n",
			line:  2,
			field: "player_name",
		},
		{
			name:  "blank player",
			input: "year,team,position,player_name,games_played\n2020,Dodgers,C,  ,30\n",
			line:  2,
			field: "player_name",
		},
		{
			name:  "negative games played",
			input: "year,team,position,player_name,games_played\n2020,Dodgers,C,Austin Barnes,-1\n",
			line:  2,
			field: "games_played",
		},
		{
			name:  "zero year",
			input: "year,team,position,player_name,games_played\n0,Dodgers,C,Austin Barnes,1\n",
			line:  2,
			field: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %T: %v", err, err)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Sample()))

	assert.True(t, strings.HasPrefix(buf.String(), "year,team,position,player_name,games_played\n"))

	records, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, Sample(), records)
}

func TestLoadCSV_WritesSampleWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseball_data.csv")

	records, sampled, err := LoadCSV(path)
	require.NoError(t, err)
	assert.True(t, sampled)
	assert.Equal(t, Sample(), records)

	_, err = os.Stat(path)
	require.NoError(t, err)

	records, sampled, err = LoadCSV(path)
	require.NoError(t, err)
	assert.False(t, sampled)
	assert.Equal(t, Sample(), records)
}

func TestLoadCSV_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("year,team\n2020,Dodgers\n"), 0o644))

	_, _, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseball_data.csv")

	res, err := Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.True(t, res.Sampled)
	assert.Equal(t, path, res.Origin)
	assert.Equal(t, len(Sample()), res.Dataset.Len())
	assert.Equal(t, []int{2020, 2021}, res.Dataset.Years())
}

func TestSample(t *testing.T) {
	d := lineup.NewDataset(Sample())

	dodgers := lineup.BuildRoster(d, 2020, "Los Angeles Dodgers")
	assert.Len(t, dodgers, 9)
	assert.True(t, lineup.HasDesignatedHitter(dodgers))

	braves := lineup.BuildRoster(d, 2021, "Atlanta Braves")
	assert.Len(t, braves, 8)
	assert.False(t, lineup.HasDesignatedHitter(braves))
}
