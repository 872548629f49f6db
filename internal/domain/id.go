package domain

import (
	"fmt"
	"strings"
	"time"
)

// Id prefixes for the main collections. Catalog prefixes live in enums.go.
const (
	PrefixProfessor   = "PROF"
	PrefixGroup       = "GRP"
	PrefixActa        = "ACTA"
	PrefixDocumento   = "DOC"
	PrefixSite        = "SITE"
	PrefixWorkPlan    = "PLAN"
	PrefixImprovement = "IMP"
	PrefixFactor      = "FACT"
	PrefixActivity    = "ACTV"
	PrefixFaculty     = "FAC"
	PrefixProgram     = "PROG"
	PrefixSubject     = "SUBJ"
)

// NewID generates a collection id of the form <PREFIX>-<timestamp>.
// The timestamp is the nanosecond clock, so ids generated by one process
// are unique within a collection.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// HasPrefix reports whether an id carries the given collection prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"-")
}
