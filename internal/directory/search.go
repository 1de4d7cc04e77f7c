package directory

import (
	"fmt"

	"github.com/jeanpaul/phonebook/internal/records"
)

// SearchKind selects the field a Query matches on.
type SearchKind int

const (
	ByName SearchKind = iota + 1
	ByOrganization
	ByWorkPhone
	ByPersonalPhone
)

func (k SearchKind) String() string {
	switch k {
	case ByName:
		return "name"
	case ByOrganization:
		return "organization"
	case ByWorkPhone:
		return "work phone"
	case ByPersonalPhone:
		return "personal phone"
	default:
		return fmt.Sprintf("SearchKind(%d)", int(k))
	}
}

// Query is a search request. Only the fields relevant to Kind are read.
type Query struct {
	Kind         SearchKind
	LastName     string
	FirstName    string
	Patronymic   string
	Organization string
	Phone        string
}

func (q Query) matcher() func(records.Record) bool {
	switch q.Kind {
	case ByName:
		last, first, patr := records.Normalize(q.LastName), records.Normalize(q.FirstName), records.Normalize(q.Patronymic)
		return func(r records.Record) bool {
			return r.LastName == last && r.FirstName == first && r.Patronymic == patr
		}
	case ByOrganization:
		org := records.Normalize(q.Organization)
		return func(r records.Record) bool { return r.Organization == org }
	case ByWorkPhone:
		phone := records.StripDigits(q.Phone)
		return func(r records.Record) bool { return r.WorkPhone == phone }
	case ByPersonalPhone:
		phone := records.StripDigits(q.Phone)
		return func(r records.Record) bool { return r.PersonalPhone == phone }
	default:
		return func(records.Record) bool { return false }
	}
}

// Search scans the records in order and returns the first one matching q.
// Later matches are not reported.
func (d *Directory) Search(q Query) (records.Record, bool) {
	return d.store.Find(q.matcher())
}
