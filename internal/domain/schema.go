package domain

// FieldName identifies one canonical CSV column.
type FieldName string

// Canonical field names, in schema order.
const (
	FieldLevel                      FieldName = "level"
	FieldRunnerName                 FieldName = "name"
	FieldGender                     FieldName = "gender"
	FieldBib                        FieldName = "bib"
	FieldState                      FieldName = "state"
	FieldCountry                    FieldName = "country"
	FieldWave                       FieldName = "wave"
	FieldOverallPosition            FieldName = "overall position"
	FieldGenderPosition             FieldName = "gender position"
	FieldDivisionPosition           FieldName = "division position"
	FieldPace                       FieldName = "pace"
	FieldTime                       FieldName = "time"
	FieldCity                       FieldName = "city"
	FieldAge                        FieldName = "age"
	FieldTwentiethPosition          FieldName = "20th floor position"
	FieldTwentiethGenderPosition    FieldName = "20th floor gender position"
	FieldTwentiethDivisionPosition  FieldName = "20th floor division position"
	FieldTwentiethPace              FieldName = "20th floor pace"
	FieldTwentiethTime              FieldName = "20th floor time"
	FieldSixtyFifthPosition         FieldName = "65th floor position"
	FieldSixtyFifthGenderPosition   FieldName = "65th floor gender position"
	FieldSixtyFifthDivisionPosition FieldName = "65th floor division position"
	FieldSixtyFifthPace             FieldName = "65th floor pace"
	FieldSixtyFifthTime             FieldName = "65th floor time"
	FieldURL                        FieldName = "url"
)

// Class describes how a field is normalized and coerced. Adding a field only
// requires a new schema table entry; ingestion and loading key off the class.
type Class int

const (
	// ClassText fields are kept verbatim (name, level).
	ClassText Class = iota
	// ClassKey is the bib number: required integer, primary key.
	ClassKey
	// ClassInteger fields are soft integers (positions, age): unparseable
	// values become the empty missing sentinel and are median-imputed at
	// load time.
	ClassInteger
	// ClassDuration fields are normalized to HH:MM:SS and parsed into
	// time.Duration values by the loader.
	ClassDuration
	// ClassUppercase fields are categorical values stored uppercased
	// (gender, country).
	ClassUppercase
	// ClassCapitalized fields are categorical values stored capitalized
	// (city, state), defaulting to empty when absent.
	ClassCapitalized
	// ClassWave is derived from the bib at ingestion, never read from input.
	ClassWave
	// ClassReference fields exist only during ingestion and are dropped by
	// the loader (source URL).
	ClassReference
)

// Field pairs a canonical column name with its normalization class.
type Field struct {
	Name  FieldName
	Class Class
}

// fields is the schema table. Order matters for CSV headers and positional
// row access, not for semantics.
var fields = []Field{
	{FieldLevel, ClassText},
	{FieldRunnerName, ClassText},
	{FieldGender, ClassUppercase},
	{FieldBib, ClassKey},
	{FieldState, ClassCapitalized},
	{FieldCountry, ClassUppercase},
	{FieldWave, ClassWave},
	{FieldOverallPosition, ClassInteger},
	{FieldGenderPosition, ClassInteger},
	{FieldDivisionPosition, ClassInteger},
	{FieldPace, ClassDuration},
	{FieldTime, ClassDuration},
	{FieldCity, ClassCapitalized},
	{FieldAge, ClassInteger},
	{FieldTwentiethPosition, ClassInteger},
	{FieldTwentiethGenderPosition, ClassInteger},
	{FieldTwentiethDivisionPosition, ClassInteger},
	{FieldTwentiethPace, ClassDuration},
	{FieldTwentiethTime, ClassDuration},
	{FieldSixtyFifthPosition, ClassInteger},
	{FieldSixtyFifthGenderPosition, ClassInteger},
	{FieldSixtyFifthDivisionPosition, ClassInteger},
	{FieldSixtyFifthPace, ClassDuration},
	{FieldSixtyFifthTime, ClassDuration},
	{FieldURL, ClassReference},
}

var fieldIndex = func() map[FieldName]int {
	idx := make(map[FieldName]int, len(fields))
	for i, f := range fields {
		idx[f.Name] = i
	}
	return idx
}()

// Fields returns the schema table in canonical order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldNames returns the canonical CSV header.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f.Name)
	}
	return names
}

// FieldCount returns the number of canonical columns.
func FieldCount() int { return len(fields) }

// FieldIndex returns the positional index of a field in the canonical row.
func FieldIndex(name FieldName) (int, bool) {
	i, ok := fieldIndex[name]
	return i, ok
}

// FieldsOfClass returns the names of all fields with the given class, in
// schema order.
func FieldsOfClass(c Class) []FieldName {
	var out []FieldName
	for _, f := range fields {
		if f.Class == c {
			out = append(out, f.Name)
		}
	}
	return out
}

// IntegerFields returns the median-imputed integer fields: the nine position
// columns plus age.
func IntegerFields() []FieldName { return FieldsOfClass(ClassInteger) }

// DurationFields returns the six pace/time columns.
func DurationFields() []FieldName { return FieldsOfClass(ClassDuration) }
