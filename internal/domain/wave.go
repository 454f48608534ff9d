package domain

import "time"

// BaseRaceStart is the race-wide start instant. All runners are assumed to
// start relative to it; wave offsets are added on top.
var BaseRaceStart = time.Date(2023, time.September, 4, 20, 0, 0, 0, time.UTC)

// Wave is a named start group identified by a contiguous bib range.
type Wave struct {
	// Name is the uppercase key stored in the canonical CSV ("ELITEMEN").
	Name string
	// Label is the human-readable wave description ("Elite Men").
	Label string
	// FirstBib and LastBib delimit the inclusive bib range.
	FirstBib int
	LastBib  int
	// StartOffset is the delay from BaseRaceStart to this wave's start.
	StartOffset time.Duration
}

// StartTime returns the wall-clock instant this wave started.
func (w Wave) StartTime() time.Time {
	return BaseRaceStart.Add(w.StartOffset)
}

// waves lists every start group in start order. Ranges are disjoint; the
// gaps (50-99, 700+) are no-shows and spare capacity, resolved by the
// fallback in WaveFromBib.
var waves = []Wave{
	{Name: "ELITEMEN", Label: "Elite Men", FirstBib: 1, LastBib: 25, StartOffset: 0},
	{Name: "ELITEWOMEN", Label: "Elite Women", FirstBib: 26, LastBib: 49, StartOffset: 2 * time.Minute},
	{Name: "PURPLE", Label: "Specialty", FirstBib: 100, LastBib: 199, StartOffset: 10 * time.Minute},
	{Name: "GREEN", Label: "Sponsors", FirstBib: 200, LastBib: 299, StartOffset: 20 * time.Minute},
	{Name: "ORANGE", Label: "Tenants", FirstBib: 300, LastBib: 399, StartOffset: 30 * time.Minute},
	{Name: "GREY", Label: "General 1", FirstBib: 400, LastBib: 499, StartOffset: 40 * time.Minute},
	{Name: "GOLD", Label: "General 2", FirstBib: 500, LastBib: 599, StartOffset: 50 * time.Minute},
	{Name: "BLACK", Label: "General 3", FirstBib: 600, LastBib: 699, StartOffset: 60 * time.Minute},
}

// fallbackWave receives every bib not covered by a declared range.
var fallbackWave = waves[len(waves)-1]

// Waves returns all start groups in start order.
func Waves() []Wave {
	out := make([]Wave, len(waves))
	copy(out, waves)
	return out
}

// WaveFromBib resolves a bib number to its wave. Bibs outside every declared
// range resolve to the last (general) wave, so the function is total.
func WaveFromBib(bib int) Wave {
	for _, w := range waves {
		if bib >= w.FirstBib && bib <= w.LastBib {
			return w
		}
	}
	return fallbackWave
}

// WaveByName resolves an uppercase wave key as stored in the canonical CSV.
func WaveByName(name string) (Wave, bool) {
	for _, w := range waves {
		if w.Name == name {
			return w, true
		}
	}
	return Wave{}, false
}
