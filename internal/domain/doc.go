// Package domain models Empire State Run-Up race results.
//
// # Data Source
//
// Results originate from the race timing website. Two capture paths feed the
// same canonical CSV: a manual copy-paste of the results pages (8-line token
// cycles, no checkpoint splits) and a scraper that emits one CSV row per
// runner with full checkpoint data. Both are normalized by internal/ingest.
//
// # Race Data Conventions
//
// Waves:
//
//	Runners start in waves assigned by bib-number range. Each wave has a
//	label and a start offset from the race base start (2023-09-04 20:00 UTC):
//
//	  ELITEMEN   Elite Men    bibs   1-25    +0m
//	  ELITEWOMEN Elite Women  bibs  26-49    +2m
//	  PURPLE     Specialty    bibs 100-199  +10m
//	  GREEN      Sponsors     bibs 200-299  +20m
//	  ORANGE     Tenants      bibs 300-399  +30m
//	  GREY       General 1    bibs 400-499  +40m
//	  GOLD       General 2    bibs 500-599  +50m
//	  BLACK      General 3    bibs 600-699  +60m
//
//	Ranges have holes (no-shows, spare capacity). A bib outside every
//	declared range falls back to BLACK. See [WaveFromBib].
//
// Durations:
//
//	Pace and elapsed-time values appear on the website with one or two
//	colon-separated components ("53:00", "9:33"). They are normalized to
//	HH:MM:SS by zero-padding single-digit components and prepending "00:"
//	when the hour is missing. See [NormalizeClock].
//
// Checkpoints:
//
//	The 20th and 65th floor are intermediate timing mats before the
//	86th-floor finish. Copy-paste captures carry no checkpoint data, so
//	those fields are empty in canonical CSVs produced from that path.
//
// Missing values:
//
//	"-" and "--" are the website's sentinels for absent values and collapse
//	to the empty string. Empty position and age fields are resolved by
//	median imputation at dataset load time, never at ingestion.
//
// Completion level:
//
//	A runner either finished the full 86-floor course ("Full Course") or
//	did not finish ("DNF"). The website still renders a full-course line
//	for some DNF runners, so ingestion accepts a forced-DNF bib list.
//
// Country codes:
//
//	Runner countries are ISO 3166-1 alpha-3 codes ("MYS", "USA"). The
//	auxiliary country table joins them to name, region, and sub-region.
package domain
