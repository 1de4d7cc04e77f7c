package records

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator delimits the fields of a row. Values are never escaped.
const Separator = ";"

// FieldCount is the number of persisted fields in a well-formed row.
const FieldCount = 6

// Fields holds the six user-editable values of a contact.
type Fields struct {
	LastName      string `json:"last_name" yaml:"last_name"`
	FirstName     string `json:"first_name" yaml:"first_name"`
	Patronymic    string `json:"patronymic" yaml:"patronymic"`
	Organization  string `json:"organization" yaml:"organization"`
	WorkPhone     string `json:"work_phone" yaml:"work_phone"`
	PersonalPhone string `json:"personal_phone" yaml:"personal_phone"`
}

// Record is a contact together with its positional identifier.
type Record struct {
	Position int `json:"position" yaml:"position"`
	Fields   `yaml:",inline"`
}

// newRecord builds a Record with both phone fields stripped to digits.
func newRecord(position int, f Fields) Record {
	f.WorkPhone = StripDigits(f.WorkPhone)
	f.PersonalPhone = StripDigits(f.PersonalPhone)
	return Record{Position: position, Fields: f}
}

// Values returns the persisted fields in file order.
func (f Fields) Values() []string {
	return []string{f.LastName, f.FirstName, f.Patronymic, f.Organization, f.WorkPhone, f.PersonalPhone}
}

// FieldsFromValues is the inverse of Values. ok is false unless exactly
// FieldCount values are given.
func FieldsFromValues(values []string) (f Fields, ok bool) {
	if len(values) != FieldCount {
		return Fields{}, false
	}
	return Fields{
		LastName:      values[0],
		FirstName:     values[1],
		Patronymic:    values[2],
		Organization:  values[3],
		WorkPhone:     values[4],
		PersonalPhone: values[5],
	}, true
}

// Row joins the persisted fields with Separator.
func (f Fields) Row() string {
	return strings.Join(f.Values(), Separator)
}

// Normalized trims and title-cases every field.
func (f Fields) Normalized() Fields {
	return Fields{
		LastName:      Normalize(f.LastName),
		FirstName:     Normalize(f.FirstName),
		Patronymic:    Normalize(f.Patronymic),
		Organization:  Normalize(f.Organization),
		WorkPhone:     Normalize(f.WorkPhone),
		PersonalPhone: Normalize(f.PersonalPhone),
	}
}

// StripDigits drops every rune that is not a decimal digit (Unicode Nd).
func StripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// Normalize trims surrounding whitespace and title-cases s, so "  ivanov " and
// "IVANOV" both become "Ivanov". Every run of letters is a word of its own:
// "o'brien" becomes "O'Brien" and "abc123def" becomes "Abc123Def".
func Normalize(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if s == "" {
		return s
	}

	// cases.Caser is stateful, so it is not shared.
	title := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for rest := s; rest != ""; {
		end := strings.IndexFunc(rest, func(r rune) bool { return !inWord(r) })
		if end != 0 {
			if end < 0 {
				end = len(rest)
			}
			b.WriteString(title.String(rest[:end]))
			rest = rest[end:]
			continue
		}
		next := strings.IndexFunc(rest, inWord)
		if next < 0 {
			next = len(rest)
		}
		b.WriteString(rest[:next])
		rest = rest[next:]
	}
	return b.String()
}

// inWord reports whether r continues a word. Combining marks stay with the
// letter they modify.
func inWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}
