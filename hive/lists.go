package hive

import "github.com/regforensics/gohive/internal/format"

// SubkeyListKind identifies which of the four subkey-list cell flavors a
// payload decodes as.
type SubkeyListKind int

const (
	ListUnknown SubkeyListKind = iota
	ListLI
	ListLF
	ListLH
	ListRI
)

// DetectListKind inspects the two-byte signature of a subkey-list payload.
func DetectListKind(payload []byte) SubkeyListKind {
	switch {
	case hasPrefix(payload, format.LISignature):
		return ListLI
	case hasPrefix(payload, format.LFSignature):
		return ListLF
	case hasPrefix(payload, format.LHSignature):
		return ListLH
	case hasPrefix(payload, format.RISignature):
		return ListRI
	default:
		return ListUnknown
	}
}
