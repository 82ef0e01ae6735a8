package bundle

import (
	"github.com/adfkit/adf/internal/formatter"
	"github.com/adfkit/adf/pkg/adf"
)

// EstimateTokens approximates the token cost of a document at roughly
// four characters per token, measured over canonical text so the
// per-entry punctuation of list, map and metric bodies is included.
func EstimateTokens(doc adf.Document) int {
	chars := len(formatter.Format(doc))
	return (chars + adf.CharsPerToken - 1) / adf.CharsPerToken
}
