package database

import "strings"

// Repository carries every query operation over the loaded store. All
// operations are pure reads; the store is immutable after LoadAll, so a
// single Repository is safe to share without locking.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// listMatchesAny reports whether any of the wanted values is a substring of
// any element of a semicolon-delimited list field. Both sides are lowercased
// and elements are trimmed. This is OR-of-substrings, not set containment:
// the list fields are free text with no canonical vocabulary.
func listMatchesAny(field string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	elems := strings.Split(field, ";")
	for i := range elems {
		elems[i] = strings.ToLower(strings.TrimSpace(elems[i]))
	}
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		for _, e := range elems {
			if strings.Contains(e, w) {
				return true
			}
		}
	}
	return false
}

// listMatches is listMatchesAny for a single optional value; empty means no
// filter.
func listMatches(field, value string) bool {
	if value == "" {
		return true
	}
	return listMatchesAny(field, []string{value})
}

// like wraps a filter value for SQL LIKE substring matching. SQLite LIKE is
// case-insensitive for ASCII, which matches the documented filter semantics.
func like(value string) string {
	return "%" + value + "%"
}
