// Package importer loads teams and composers from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"records-api/internal/domain"
)

// Kind names the shape of a CSV file.
type Kind string

const (
	KindTeams     Kind = "teams"
	KindComposers Kind = "composers"
)

type TeamWriter interface {
	Create(ctx context.Context, t domain.Team) (*domain.Team, error)
}

type ComposerWriter interface {
	Create(ctx context.Context, c domain.Composer) (*domain.Composer, error)
}

// CSVImporter reads roster or composer CSV files and creates documents.
//
// Roster files use the header team,mascot,firstName,lastName,salary. A row
// with a team name starts a new team; rows with an empty team column add
// players to the team above them.
type CSVImporter struct {
	reader    *csv.Reader
	teams     TeamWriter
	composers ComposerWriter
}

func NewCSVImporter(r io.Reader, teams TeamWriter, composers ComposerWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:    csvr,
		teams:     teams,
		composers: composers,
	}
}

// DetectKind inspects the header row of r.
func DetectKind(r io.Reader) (Kind, error) {
	headers, err := csv.NewReader(r).Read()
	if err != nil {
		return "", fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["team"]; ok {
		return KindTeams, nil
	}
	_, first := index["firstName"]
	_, last := index["lastName"]
	if first && last {
		return KindComposers, nil
	}
	return "", fmt.Errorf("unrecognized CSV header %q", strings.Join(headers, ","))
}

// Run parses the file and returns how many teams or composers were created.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["team"]; ok {
		return i.runTeams(ctx, index)
	}
	return i.runComposers(ctx, index)
}

func (i *CSVImporter) runTeams(ctx context.Context, index map[string]int) (int, error) {
	if i.teams == nil {
		return 0, errors.New("roster file given but no team writer configured")
	}

	var (
		current  *domain.Team
		imported int
		line     = 1
	)
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		name := pick(record, index, "team")
		if name != "" {
			if current != nil {
				if err := i.saveTeam(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = &domain.Team{Name: name, Mascot: pick(record, index, "mascot"), Players: []domain.Player{}}
		}

		player, ok, err := parsePlayer(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		if current == nil {
			return imported, fmt.Errorf("line %d: player row before any team", line)
		}
		current.Players = append(current.Players, player)
	}

	if current != nil {
		if err := i.saveTeam(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) saveTeam(ctx context.Context, t *domain.Team) error {
	if _, err := i.teams.Create(ctx, *t); err != nil {
		return fmt.Errorf("create team %q: %w", t.Name, err)
	}
	return nil
}

func (i *CSVImporter) runComposers(ctx context.Context, index map[string]int) (int, error) {
	if i.composers == nil {
		return 0, errors.New("composer file given but no composer writer configured")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		c := domain.Composer{
			FirstName: pick(record, index, "firstName"),
			LastName:  pick(record, index, "lastName"),
		}
		if c.FirstName == "" && c.LastName == "" {
			continue
		}
		if _, err := i.composers.Create(ctx, c); err != nil {
			return imported, fmt.Errorf("create composer %s %s: %w", c.FirstName, c.LastName, err)
		}
		imported++
	}
	return imported, nil
}

// parsePlayer reports ok=false for rows that carry no player.
func parsePlayer(record []string, index map[string]int) (domain.Player, bool, error) {
	first := pick(record, index, "firstName")
	last := pick(record, index, "lastName")
	salaryStr := pick(record, index, "salary")
	if first == "" && last == "" && salaryStr == "" {
		return domain.Player{}, false, nil
	}

	var salary float64
	if salaryStr != "" {
		var err error
		salary, err = strconv.ParseFloat(salaryStr, 64)
		if err != nil {
			return domain.Player{}, false, fmt.Errorf("invalid salary %q", salaryStr)
		}
	}
	return domain.Player{FirstName: first, LastName: last, Salary: salary}, true, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
