package types

import (
	"fmt"
	"strings"
)

// BCFLAG selects how ghost cells and domain-edge faces are treated.
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Out
	BC_Wall
	BC_Periodic
)

var (
	BCNameMap = map[string]BCFLAG{
		"out":          BC_Out,
		"outflow":      BC_Out,
		"transmissive": BC_Out,
		"wall":         BC_Wall,
		"reflective":   BC_Wall,
		"periodic":     BC_Periodic,
	}
	BCPrintNames = []string{"None", "Outflow", "Wall", "Periodic"}
)

func (bc BCFLAG) String() string {
	if int(bc) >= len(BCPrintNames) {
		return fmt.Sprintf("BCFLAG(%d)", bc)
	}
	return BCPrintNames[bc]
}

// NewBCFLAG parses a boundary name, an empty label means transmissive outflow.
func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return BC_Out, nil
	}
	if bc, ok = BCNameMap[label]; !ok {
		err = NewConfigurationError("boundary condition", "unknown boundary condition named %q", label)
	}
	return
}
