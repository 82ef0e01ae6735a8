package adf

// FormatVersion is the only document version the parser accepts.
const FormatVersion = "0.1"

// VersionPrefix introduces the optional leading version line of a file.
const VersionPrefix = "FORMAT:"

// ManifestFileName is the distinguished document describing
// default-load vs on-demand modules.
const ManifestFileName = "manifest.adf"

// CanonicalKeyOrder is the fixed priority table the formatter sorts
// sections by. Keys absent from the table are appended after all table
// entries, preserving their original relative order.
var CanonicalKeyOrder = []string{
	"TASK",
	"ROLE",
	"CONTEXT",
	"OUTPUT",
	"CONSTRAINTS",
	"RULES",
	"DEFAULT_LOAD",
	"ON_DEMAND",
	"BUDGET",
	"SYNC",
	"CADENCE",
	"FILES",
	"TOOLS",
	"RISKS",
	"STATE",
}

// StandardDecorations maps well-known section keys to their default
// header glyph. A section's explicit decoration always wins; keys
// absent here render undecorated.
var StandardDecorations = map[string]string{
	"TASK":        "◆",
	"ROLE":        "◇",
	"CONTEXT":     "▸",
	"OUTPUT":      "◂",
	"CONSTRAINTS": "■",
	"RULES":       "□",
	"BUDGET":      "¤",
	"RISKS":       "△",
	"STATE":       "●",
}

// CanonicalRank returns the position of key in the canonical order
// table, or len(CanonicalKeyOrder) for unrecognized keys.
func CanonicalRank(key string) int {
	for i, k := range CanonicalKeyOrder {
		if k == key {
			return i
		}
	}
	return len(CanonicalKeyOrder)
}

// CharsPerToken is the approximate number of characters per token used
// by the bundler's estimates. Estimates run over canonical text, which
// already carries the per-entry punctuation overhead of list, map and
// metric bodies.
const CharsPerToken = 4

// Exit codes for semantic error classification, following Unix/GNU
// conventions: 0 success, 1 general error, 2 CLI usage error, 3+
// application-specific.
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitApprovalDenied   = 12 // User denied overwrite approval
	ExitParseError       = 20 // Unsupported format version
	ExitPatchError       = 21 // Patch batch aborted
	ExitBundleError      = 22 // Missing manifest or module file
	ExitValidationFailed = 23 // A constraint is failing
	ExitDriftDetected    = 24 // Lock file checksum mismatch
)
