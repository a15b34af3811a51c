// Package load reads the items of a chart from CSV or JSON documents.
package load

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/midbel/pareto"
)

var (
	ErrFormat = errors.New("unsupported format")
	ErrColumn = errors.New("column out of range")
)

type Options struct {
	Comma       rune
	NameColumn  int
	ValueColumn int
}

func DefaultOptions() Options {
	return Options{
		Comma:       ',',
		NameColumn:  0,
		ValueColumn: 1,
	}
}

// File loads the items of file, the format is chosen by its extension.
func File(file string, opts Options) ([]pareto.Item, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv", ".tsv", ".txt":
		if ext == ".tsv" && opts.Comma == ',' {
			opts.Comma = '\t'
		}
		items, err := CSV(r, opts)
		return items, errors.Wrapf(err, "%s", file)
	case ".json":
		items, err := JSON(r)
		return items, errors.Wrapf(err, "%s", file)
	default:
		return nil, errors.Wrapf(ErrFormat, "%s", file)
	}
}

// CSV reads items from r. The first row is a header and is skipped.
func CSV(r io.Reader, opts Options) ([]pareto.Item, error) {
	rs := csv.NewReader(r)
	if opts.Comma != 0 {
		rs.Comma = opts.Comma
	}
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading header")
	}
	var items []pareto.Item
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line, _ := rs.FieldPos(0)
		if opts.NameColumn >= len(row) || opts.ValueColumn >= len(row) || opts.NameColumn < 0 || opts.ValueColumn < 0 {
			return nil, errors.Wrapf(ErrColumn, "line %d", line)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[opts.ValueColumn]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		items = append(items, pareto.NewItem(row[opts.NameColumn], value))
	}
	return items, nil
}

// JSON reads an array of {"name": ..., "value": ...} objects from r. Any share
// given in the input is ignored.
func JSON(r io.Reader) ([]pareto.Item, error) {
	var list []struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, errors.Wrap(err, "decoding items")
	}
	items := make([]pareto.Item, 0, len(list))
	for _, i := range list {
		items = append(items, pareto.NewItem(i.Name, i.Value))
	}
	return items, nil
}

// Ident gives the name of file without its directory and extensions.
func Ident(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
