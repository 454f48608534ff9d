// Command genfixture generates a deterministic synthetic canonical CSV for
// test and demo use. It builds records through the actual domain and ingest
// packages so the fixture matches real pipeline output, then prints the
// distribution stats a test would assert against.
//
// Usage:
//
//	go run ./cmd/genfixture -rows 30 -seed 11 -out internal/dataset/data/sample_results.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/couchcryptid/race-results-etl/internal/domain"
	"github.com/couchcryptid/race-results-etl/internal/ingest"
)

var firstNames = []string{
	"Wai Ching", "Andrea", "Fabio", "Yuko", "Piotr", "Lenka", "Marco", "Sophie",
	"Tomas", "Ingrid", "Carlos", "Maeve", "Hiro", "Elena", "Ryan", "Paula",
}

var lastNames = []string{
	"Soh", "Mayr", "Ruga", "Tanaka", "Lobodzinski", "Svobodova", "Ferrari",
	"Dubois", "Novak", "Larsen", "Mendez", "Byrne", "Sato", "Petrova", "Walsh", "Costa",
}

var countries = []string{"USA", "ITA", "JPN", "AUS", "DEU", "GBR", "FRA", "ESP", "POL", "CZE", "MYS", "AUT", "BRA", "CAN", "MEX"}

var usStates = []string{"NY", "NJ", "CT", "CA", "TX", "IL"}

var cities = []string{"New york", "Bologna", "Tokyo", "Sydney", "Berlin", "London", "Paris", "Madrid", "Warsaw", "Prague"}

type entry struct {
	bib     int
	name    string
	gender  string
	country string
	state   string
	city    string
	age     int
	elapsed time.Duration
	dnf     bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rows := flag.Int("rows", 30, "number of records to generate")
	seed := flag.Int64("seed", 11, "PRNG seed; same seed, same fixture")
	dnf := flag.Int("dnf", 2, "number of DNF records to include")
	out := flag.String("out", "-", "output path, or - for stdout")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	entries := generate(rng, *rows, *dnf)
	records := toRecords(entries)

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := ingest.WriteCanonical(w, records); err != nil {
		return err
	}

	printStats(entries)
	return nil
}

// generate builds rows synthetic finishers plus dnf non-finishers, each with
// a unique bib drawn from across the wave ranges.
func generate(rng *rand.Rand, rows, dnf int) []entry {
	used := make(map[int]bool)
	waves := domain.Waves()

	entries := make([]entry, 0, rows)
	for i := 0; i < rows; i++ {
		// Cycle through waves so every wave is represented.
		w := waves[i%len(waves)]
		var bib int
		for {
			bib = w.FirstBib + rng.Intn(w.LastBib-w.FirstBib+1)
			if !used[bib] {
				used[bib] = true
				break
			}
		}

		gender := "M"
		if rng.Intn(2) == 1 {
			gender = "F"
		}
		country := countries[rng.Intn(len(countries))]
		state := ""
		if country == "USA" {
			state = usStates[rng.Intn(len(usStates))]
		}

		// Elite waves are faster; each later wave drifts slower.
		base := 11*time.Minute + time.Duration(i%len(waves))*90*time.Second
		jitter := time.Duration(rng.Intn(300)) * time.Second

		entries = append(entries, entry{
			bib:     bib,
			name:    firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
			gender:  gender,
			country: country,
			state:   state,
			city:    cities[rng.Intn(len(cities))],
			age:     18 + rng.Intn(55),
			elapsed: base + jitter,
			dnf:     i >= rows-dnf,
		})
	}
	return entries
}

// toRecords converts the synthetic entries into canonical records with
// self-consistent positions: overall by elapsed time, gender position within
// each gender, division position within each ten-year age group and gender.
func toRecords(entries []entry) []domain.RawRecord {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return entries[order[a]].elapsed < entries[order[b]].elapsed })

	genderRank := map[string]int{}
	divisionRank := map[string]int{}

	records := make([]domain.RawRecord, len(entries))
	for pos, idx := range order {
		e := entries[idx]
		rec := domain.NewRawRecord()

		rec.Set(domain.FieldRunnerName, e.name)
		rec.Set(domain.FieldGender, e.gender)
		rec.Set(domain.FieldBib, fmt.Sprintf("%d", e.bib))
		rec.Set(domain.FieldState, e.state)
		rec.Set(domain.FieldCountry, e.country)
		rec.Set(domain.FieldWave, domain.WaveFromBib(e.bib).Name)
		rec.Set(domain.FieldCity, e.city)
		rec.Set(domain.FieldAge, fmt.Sprintf("%d", e.age))
		rec.Set(domain.FieldURL, fmt.Sprintf("https://results.example.com/racer/%d", e.bib))

		genderRank[e.gender]++
		division := fmt.Sprintf("%s-%d", e.gender, e.age/10)
		divisionRank[division]++

		twentieth := e.elapsed / 5

		rec.Set(domain.FieldTwentiethPosition, fmt.Sprintf("%d", pos+1))
		rec.Set(domain.FieldTwentiethGenderPosition, fmt.Sprintf("%d", genderRank[e.gender]))
		rec.Set(domain.FieldTwentiethDivisionPosition, fmt.Sprintf("%d", divisionRank[division]))
		rec.Set(domain.FieldTwentiethPace, domain.FormatClock(twentieth))
		rec.Set(domain.FieldTwentiethTime, domain.FormatClock(twentieth))

		if e.dnf {
			rec.Set(domain.FieldLevel, string(domain.LevelDNF))
			records[idx] = rec
			continue
		}

		rec.Set(domain.FieldLevel, string(domain.LevelFullCourse))
		rec.Set(domain.FieldOverallPosition, fmt.Sprintf("%d", pos+1))
		rec.Set(domain.FieldGenderPosition, fmt.Sprintf("%d", genderRank[e.gender]))
		rec.Set(domain.FieldDivisionPosition, fmt.Sprintf("%d", divisionRank[division]))
		rec.Set(domain.FieldPace, domain.FormatClock(e.elapsed/5))
		rec.Set(domain.FieldTime, domain.FormatClock(e.elapsed))

		sixtyFifth := e.elapsed * 13 / 20
		rec.Set(domain.FieldSixtyFifthPosition, fmt.Sprintf("%d", pos+1))
		rec.Set(domain.FieldSixtyFifthGenderPosition, fmt.Sprintf("%d", genderRank[e.gender]))
		rec.Set(domain.FieldSixtyFifthDivisionPosition, fmt.Sprintf("%d", divisionRank[division]))
		rec.Set(domain.FieldSixtyFifthPace, domain.FormatClock(sixtyFifth))
		rec.Set(domain.FieldSixtyFifthTime, domain.FormatClock(sixtyFifth))

		records[idx] = rec
	}
	return records
}

func printStats(entries []entry) {
	byGender := map[string]int{}
	byWave := map[string]int{}
	byCountry := map[string]int{}
	var finishers int
	for _, e := range entries {
		byGender[e.gender]++
		byWave[domain.WaveFromBib(e.bib).Name]++
		byCountry[e.country]++
		if !e.dnf {
			finishers++
		}
	}
	log.Printf("total: %d records, %d finishers", len(entries), finishers)
	log.Printf("gender: %v", byGender)
	log.Printf("wave: %v", byWave)
	log.Printf("country: %v", byCountry)
}
