// Command validate performs end-to-end integrity checks on a canonical
// results CSV: schema and header shape, wave/bib consistency, loader
// invariants (imputation, DNF handling, bib uniqueness), and normalization
// idempotence via a write/re-read round trip.
//
// Usage:
//
//	go run ./cmd/validate -results results.csv
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/ingest"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	results := flag.String("results", "", "path to the canonical results CSV (empty uses the bundled sample)")
	flag.Parse()

	if code := run(*results); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Race Results Integrity Validation ===")
	fmt.Println()

	records, err := readRecords(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read results: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateWaves(records),
		validateLoader(path, records),
		validateRoundTrip(records),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       - %s\n", e)
		}
	}
	if !allPassed {
		return 1
	}
	fmt.Printf("\nall phases passed (%d records)\n", len(records))
	return 0
}

func readRecords(path string) ([]domain.RawRecord, error) {
	data := dataset.SampleResults()
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return ingest.ReadRows(bytes.NewReader(data))
}

// validateWaves checks that every record's wave matches the wave implied by
// its bib, and that the bib falls inside (or past) the published ranges.
func validateWaves(records []domain.RawRecord) *phase {
	p := &phase{name: "wave/bib consistency"}
	for i, rec := range records {
		bib, err := rec.Bib()
		if err != nil {
			p.errorf("record %d: %v", i+1, err)
			continue
		}
		want := domain.WaveFromBib(bib).Name
		if got := rec.Get(domain.FieldWave); got != want {
			p.errorf("record %d: bib %d carries wave %q, expected %q", i+1, bib, got, want)
		}
	}
	return p
}

// validateLoader loads the CSV both ways and checks the dataset invariants.
func validateLoader(path string, records []domain.RawRecord) *phase {
	p := &phase{name: "loader invariants"}

	full, err := dataset.Load(dataset.Options{Path: path, RetainDNF: true})
	if err != nil {
		p.errorf("load with DNF: %v", err)
		return p
	}
	finishers, err := dataset.Load(dataset.Options{Path: path})
	if err != nil {
		p.errorf("load without DNF: %v", err)
		return p
	}

	if full.Len() != len(records) {
		p.errorf("retained load has %d records, CSV has %d", full.Len(), len(records))
	}

	var dnf int
	for _, r := range full.Runners() {
		if r.Level == domain.LevelDNF {
			dnf++
		}
	}
	if finishers.Len()+dnf != full.Len() {
		p.errorf("finishers (%d) + DNF (%d) != total (%d)", finishers.Len(), dnf, full.Len())
	}

	// After loading, no finisher may have a missing age or position.
	for _, r := range finishers.Runners() {
		if r.Age <= 0 {
			p.errorf("bib %d: age not imputed", r.Bib)
		}
		if r.OverallPosition <= 0 || r.GenderPosition <= 0 || r.DivisionPosition <= 0 {
			p.errorf("bib %d: missing position after imputation", r.Bib)
		}
		if r.Time <= 0 {
			p.errorf("bib %d: finisher without elapsed time", r.Bib)
		}
	}
	return p
}

// validateRoundTrip writes the records back out and re-reads them, checking
// that normalization is a fixed point.
func validateRoundTrip(records []domain.RawRecord) *phase {
	p := &phase{name: "write/read round trip"}

	var buf bytes.Buffer
	if err := ingest.WriteCanonical(&buf, records); err != nil {
		p.errorf("write: %v", err)
		return p
	}
	reread, err := ingest.ReadRows(&buf)
	if err != nil {
		p.errorf("re-read: %v", err)
		return p
	}
	if len(reread) != len(records) {
		p.errorf("round trip changed record count: %d -> %d", len(records), len(reread))
		return p
	}
	for i := range records {
		for _, f := range domain.Fields() {
			if records[i].Get(f.Name) != reread[i].Get(f.Name) {
				p.errorf("record %d field %q changed: %q -> %q", i+1, f.Name, records[i].Get(f.Name), reread[i].Get(f.Name))
			}
		}
	}
	return p
}
