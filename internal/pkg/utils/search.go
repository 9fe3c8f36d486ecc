package utils

import (
	"strings"
)

type SearchKind int

const (
	SearchKindEmpty SearchKind = iota
	SearchKindEmail
	SearchKindUserID
	SearchKindObjectID
	SearchKindShareCode
	SearchKindText
)

// ClassifySearchTerm decides how a lookup box value should be resolved.
func ClassifySearchTerm(term string) SearchKind {
	term = strings.TrimSpace(term)
	switch {
	case term == "":
		return SearchKindEmpty
	case IsEmail(term):
		return SearchKindEmail
	case IsObjectID(term):
		return SearchKindObjectID
	case IsTidepoolUserID(term):
		return SearchKindUserID
	case IsClinicShareCode(term):
		return SearchKindShareCode
	default:
		return SearchKindText
	}
}

// SingleMatch returns the only element of items. Search pages redirect
// straight to the record when it reports true.
func SingleMatch[T any](items []T) (T, bool) {
	var zero T
	if len(items) != 1 {
		return zero, false
	}
	return items[0], true
}
