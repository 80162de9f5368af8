/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Seednode/dugout/games/lineup"
)

// Columns is the header written to and expected from appearance CSV files.
var Columns = []string{"year", "team", "position", "player_name", "games_played"}

// ReadCSV parses appearance records from r. Columns are located by header
// name, so their order does not matter; extra columns are ignored.
func ReadCSV(r io.Reader) ([]lineup.AppearanceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Line: 1, Err: errors.New("missing header")}
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &ParseError{Line: 1, Field: col, Err: errors.New("missing column")}
		}
	}

	var records []lineup.AppearanceRecord

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		record, err := parseRow(line, row, index)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRow(line int, row []string, index map[string]int) (lineup.AppearanceRecord, error) {
	field := func(name string) (string, error) {
		i := index[name]
		if i >= len(row) {
			return "", &ParseError{Line: line, Field: name, Err: errors.New("missing value")}
		}
		return strings.TrimSpace(row[i]), nil
	}

	integer := func(name string) (int, error) {
		s, err := field(name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, &ParseError{Line: line, Field: name, Err: err}
		}
		return n, nil
	}

	var r lineup.AppearanceRecord
	var err error

	if r.Year, err = integer("year"); err != nil {
		return r, err
	}
	if r.Team, err = field("team"); err != nil {
		return r, err
	}

	position, err := field("position")
	if err != nil {
		return r, err
	}
	r.Position = lineup.Position(position)

	if r.PlayerName, err = field("player_name"); err != nil {
		return r, err
	}
	if r.GamesPlayed, err = integer("games_played"); err != nil {
		return r, err
	}

	return r, validateRecord(line, &r)
}

// WriteCSV writes records, with a header row, to w.
func WriteCSV(w io.Writer, records []lineup.AppearanceRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return err
	}

	for _, r := range records {
		err := writer.Write([]string{
			strconv.Itoa(r.Year),
			r.Team,
			string(r.Position),
			r.PlayerName,
			strconv.Itoa(r.GamesPlayed),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

// LoadCSV reads records from the file at path. If the file does not exist,
// the sample records are written to path and returned instead.
func LoadCSV(path string) ([]lineup.AppearanceRecord, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		records := Sample()

		if err := saveCSV(path, records); err != nil {
			return nil, false, err
		}

		return records, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}

	return records, false, nil
}

func saveCSV(path string, records []lineup.AppearanceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
