package badger

import (
	"fmt"

	"github.com/sievelabs/assessrec/core"
)

// Key prefixes for different data types
const (
	assessmentPrefix = "assrec"
)

// makeAssessmentKey generates a key for an assessment by ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assessmentPrefix, id))
}
