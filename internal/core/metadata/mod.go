package metadata

import (
	"errors"
	"fmt"
)

// Op is a metadata mutation operation.
type Op int

const (
	// OpAdd attaches an attribute/value/units triple to an entry.
	OpAdd Op = iota
	// OpRemove detaches a triple from an entry.
	OpRemove
)

// ErrUnknownOp is returned when a mutation operation is not part of the
// recognized vocabulary. The mapping boundary rejects it outright rather
// than passing an absent operation name to the backend.
var ErrUnknownOp = errors.New("unrecognized metadata operation")

// Name returns the operation name the backend expects in argument slot 0.
func (o Op) Name() (string, error) {
	switch o {
	case OpAdd:
		return "add", nil
	case OpRemove:
		return "rm", nil
	default:
		return "", fmt.Errorf("operation %d: %w", int(o), ErrUnknownOp)
	}
}

// Target-type flags for argument slot 1.
const (
	leafTypeFlag      = "-d"
	containerTypeFlag = "-C"
)

// ModArgs is the fixed 10-slot positional argument list required by the
// catalog's metadata mutation call. Slots 6-9 are reserved and always
// empty strings, never absent. A ModArgs is constructed fresh per call.
type ModArgs struct {
	Arg0 string // operation name
	Arg1 string // target-type flag
	Arg2 string // resolved target path
	Arg3 string // attribute name
	Arg4 string // attribute value
	Arg5 string // attribute units
	Arg6 string
	Arg7 string
	Arg8 string
	Arg9 string
}

// MapModArgs maps a named mutation request onto the backend's positional
// argument list. The target must be classified as a leaf or container;
// anything else is refused with ErrUnclassifiedTarget before any call is
// made.
func MapModArgs(op Op, t Target, attrName, attrValue, attrUnits string) (ModArgs, error) {
	name, err := op.Name()
	if err != nil {
		return ModArgs{}, err
	}

	var typeFlag string
	switch t.Kind {
	case KindLeaf:
		typeFlag = leafTypeFlag
	case KindContainer:
		typeFlag = containerTypeFlag
	default:
		return ModArgs{}, fmt.Errorf("failed to set metadata on '%s': %w", t.Path, ErrUnclassifiedTarget)
	}

	return ModArgs{
		Arg0: name,
		Arg1: typeFlag,
		Arg2: t.Path,
		Arg3: attrName,
		Arg4: attrValue,
		Arg5: attrUnits,
		Arg6: "",
		Arg7: "",
		Arg8: "",
		Arg9: "",
	}, nil
}
