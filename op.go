package lzcomplex

import "github.com/hadi41/hadi-LZ-package/direct"

// Op selects which base complexity measure SymmetricVariant and
// Conditional operate over (spec §4.4, §6).
type Op int

const (
	// OpLZ76 selects the LZ76 phrase-count measure.
	OpLZ76 Op = iota
	// OpLZ78 selects the LZ78 phrase-count measure.
	OpLZ78
)

func (op Op) String() string {
	switch op {
	case OpLZ76:
		return "LZ76"
	case OpLZ78:
		return "LZ78"
	default:
		return "Unknown"
	}
}

func (op Op) complexityFunc() direct.ComplexityFunc {
	if op == OpLZ78 {
		return direct.LZ78
	}
	return direct.LZ76
}
