package ingestion

import (
	"fmt"
	"strings"

	"github.com/sievelabs/assessrec/core"
)

// BuildEmbeddingDocument renders the canonical text describing one
// assessment for embedding. The format is fixed: changing it invalidates
// every stored vector, so a change requires a full reindex.
func BuildEmbeddingDocument(a *core.Assessment) string {
	return fmt.Sprintf(
		"Assessment Name: %s\nCategory: %s\nDescription: %s\nFeatures: Remote Support: %s, Adaptive: %s",
		a.Name,
		strings.Join(a.TestTypes, ", "),
		a.Description,
		yesNo(a.RemoteSupport),
		yesNo(a.AdaptiveSupport),
	)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
