package focus

// Kind identifies the recognized construct kinds that are eligible for
// the scope hierarchy. Grammars map their node kinds onto this set; an
// explicit Unrecognized variant keeps classification total.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindType
	KindFunction
	KindMethod
	KindVariable
	KindConstant
	KindClosure
	KindCall
	KindBranch
	KindBranchArm
	KindInit
	KindDeinit
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindVariable:
		return "variable"
	case KindConstant:
		return "constant"
	case KindClosure:
		return "closure"
	case KindCall:
		return "function call"
	case KindBranch:
		return "switch"
	case KindBranchArm:
		return "case"
	case KindInit:
		return "init"
	case KindDeinit:
		return "deinit"
	default:
		return "unrecognized"
	}
}

// Indexable reports whether nodes of this kind belong in the scope
// hierarchy.
func (k Kind) Indexable() bool {
	return k != KindUnrecognized
}

// safeCodeRange reports whether a node of this kind can stand alone as a
// replacement code block. Variable and constant bindings and bare call
// expressions cannot: their span is an incomplete statement.
func (k Kind) safeCodeRange() bool {
	switch k {
	case KindVariable, KindConstant, KindCall:
		return false
	default:
		return true
	}
}
