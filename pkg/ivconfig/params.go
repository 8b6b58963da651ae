// Package ivconfig implements spec §6's Parameters surface: a
// string-keyed configuration decoded into a typed Resolved struct.
// Grounded in realpaver's Param class (original_source/src/realpaver/
// Param.hpp), which likewise holds int/real/string-valued settings
// looked up by name with documented defaults, and in the operator-
// lifecycle-manager's pkg/lib/codec pattern of decoding a loosely-typed
// map into a strongly-typed struct via github.com/mitchellh/mapstructure
// with named decode hooks for the domain-specific enum/tolerance types
// a plain string can't represent directly.
package ivconfig

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/ivsolve/ivsolve/pkg/ivproblem"
)

// Params is spec §6's string-keyed parameter map: every key is one row
// of the §6 table, every value its string encoding ("1e-8", "DFS",
// "YES", …). Unknown keys are ignored by Decode, matching realpaver's
// Param::setStrParam, which silently accepts unrecognized names so newer
// solver builds don't break older parameter files.
type Params map[string]string

// NodeSelection names BP_NODE_SELECTION's enumerators (spec §4.7).
type NodeSelection int

const (
	DFS NodeSelection = iota
	BFS
	DMDFS
	IDFS
	PDFS
	GPDFS
)

// SplitSlicing names SPLIT_SLICING's enumerators (spec §4.6).
type SplitSlicing int

const (
	SliceBisection SplitSlicing = iota
	SlicePeeling
	SlicePartition
)

// SplitSelection names SPLIT_SELECTION's enumerators (spec §4.6).
type SplitSelection int

const (
	RoundRobin SplitSelection = iota
	LargestFirst
	SmallestFirst
	SmallestDiscreteOrLargestReal
	SmearSumRelative
	SmearSumRelativeLargestFirst
	Alternated
)

// PropagationBase names PROPAGATION_BASE's enumerators (spec §4.5, §9).
type PropagationBase int

const (
	BaseHC4 PropagationBase = iota
	BaseBC4
	BaseAffine
)

// Resolved is the typed decoding of a Params map, with realpaver's
// documented defaults (DefaultParams below) for any key left unset.
type Resolved struct {
	PropagationRelTol  float64 `mapstructure:"PROPAGATION_REL_TOL"`
	PropagationIterLim int     `mapstructure:"PROPAGATION_ITER_LIMIT"`

	BPNodeSelection NodeSelection `mapstructure:"BP_NODE_SELECTION"`

	SplitSlicingMode    SplitSlicing    `mapstructure:"SPLIT_SLICING"`
	SplitSelectionMode  SplitSelection  `mapstructure:"SPLIT_SELECTION"`
	SplitInnerBox       bool            `mapstructure:"SPLIT_INNER_BOX"`
	PropagationBaseMode PropagationBase `mapstructure:"PROPAGATION_BASE"`
	WithAcid            bool            `mapstructure:"PROPAGATION_WITH_ACID"`
	WithPolytopeHull    bool            `mapstructure:"PROPAGATION_WITH_POLYTOPE_HULL"`
	WithNewton          bool            `mapstructure:"PROPAGATION_WITH_NEWTON"`
	Certification       bool            `mapstructure:"CERTIFICATION"`

	SolutionClusterGap float64 `mapstructure:"SOLUTION_CLUSTER_GAP"`
	ObjTol             float64 `mapstructure:"OBJ_TOL"`

	TimeLimitSeconds float64 `mapstructure:"TIME_LIMIT"`
	NodeLimit        int     `mapstructure:"NODE_LIMIT"`
	SolutionLimit    int     `mapstructure:"SOLUTION_LIMIT"`
	DepthLimit       int     `mapstructure:"DEPTH_LIMIT"`

	InflationDelta float64 `mapstructure:"INFLATION_DELTA"`
	InflationChi   float64 `mapstructure:"INFLATION_CHI"`
}

// DefaultParams returns realpaver's documented defaults, translated to
// Go constants: 1e-8 relative propagation tolerance, a 200-step
// propagation bound, DFS node selection, bisection slicing, round-robin
// split selection, HC4 as the propagation base, ACID/polytope/Newton
// hybridization disabled, certification disabled, clustering disabled
// (negative gap), a loose objective tolerance, generous resource limits,
// and realpaver's default inflation factors (1.125, 1e-10).
func DefaultParams() *Resolved {
	return &Resolved{
		PropagationRelTol:   1e-8,
		PropagationIterLim:  200,
		BPNodeSelection:     DFS,
		SplitSlicingMode:    SliceBisection,
		SplitSelectionMode:  RoundRobin,
		SplitInnerBox:       false,
		PropagationBaseMode: BaseHC4,
		WithAcid:            false,
		WithPolytopeHull:    false,
		WithNewton:          false,
		Certification:       false,
		SolutionClusterGap:  -1,
		ObjTol:              1e-8,
		TimeLimitSeconds:    0, // 0 means unlimited
		NodeLimit:           0,
		SolutionLimit:       0,
		DepthLimit:          1000,
		InflationDelta:      1.125,
		InflationChi:        1e-10,
	}
}

// Decode type-converts and validates p against DefaultParams, returning
// a Resolved with every key in p overriding the default and every key
// absent from p left at its default value. Unrecognized keys are
// ignored (ErrorUnused is left false) to match realpaver's tolerant
// Param::setStrParam.
func (p Params) Decode() (*Resolved, error) {
	r := DefaultParams()
	if len(p) == 0 {
		return r, nil
	}

	raw := make(map[string]string, len(p))
	for k, v := range p {
		raw[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           r,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			nodeSelectionHook,
			splitSlicingHook,
			splitSelectionHook,
			propagationBaseHook,
			yesNoHook,
		),
	})
	if err != nil {
		return nil, ivproblem.WrapFault(ivproblem.FaultBadParameter, err, "building parameter decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, ivproblem.WrapFault(ivproblem.FaultBadParameter, err, "decoding parameters")
	}
	if r.PropagationRelTol < 0 {
		return nil, ivproblem.NewFaultError(ivproblem.FaultBadParameter, "PROPAGATION_REL_TOL %v < 0", r.PropagationRelTol)
	}
	if r.InflationDelta <= 1 {
		return nil, ivproblem.NewFaultError(ivproblem.FaultBadInflation, "INFLATION_DELTA %v <= 1", r.InflationDelta)
	}
	if r.InflationChi < 0 {
		return nil, ivproblem.NewFaultError(ivproblem.FaultBadInflation, "INFLATION_CHI %v < 0", r.InflationChi)
	}
	return r, nil
}

var (
	boolType            = reflect.TypeOf(false)
	nodeSelectionType   = reflect.TypeOf(DFS)
	splitSlicingType    = reflect.TypeOf(SliceBisection)
	splitSelectionType  = reflect.TypeOf(RoundRobin)
	propagationBaseType = reflect.TypeOf(BaseHC4)
)

// yesNoHook converts the §6 table's "YES"/"NO" string encoding into Go
// bool whenever the target field is a bool, matching realpaver's
// parameter files, which spell booleans as YES/NO rather than
// true/false.
func yesNoHook(from, to reflect.Type, data any) (any, error) {
	if to != boolType {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES", "TRUE", "1":
		return true, nil
	case "NO", "FALSE", "0":
		return false, nil
	default:
		return data, nil
	}
}

func nodeSelectionHook(from, to reflect.Type, data any) (any, error) {
	return enumHook(to, nodeSelectionType, data, map[string]int{
		"DFS": int(DFS), "BFS": int(BFS), "DMDFS": int(DMDFS),
		"IDFS": int(IDFS), "PDFS": int(PDFS), "GPDFS": int(GPDFS),
	})
}

func splitSlicingHook(from, to reflect.Type, data any) (any, error) {
	return enumHook(to, splitSlicingType, data, map[string]int{
		"BI": int(SliceBisection), "PEELING": int(SlicePeeling), "PARTITION": int(SlicePartition),
	})
}

func splitSelectionHook(from, to reflect.Type, data any) (any, error) {
	return enumHook(to, splitSelectionType, data, map[string]int{
		"RR": int(RoundRobin), "LF": int(LargestFirst), "SF": int(SmallestFirst),
		"SLF": int(SmallestDiscreteOrLargestReal), "SSR": int(SmearSumRelative),
		"SSR_LF": int(SmearSumRelativeLargestFirst), "ASR": int(Alternated),
	})
}

func propagationBaseHook(from, to reflect.Type, data any) (any, error) {
	return enumHook(to, propagationBaseType, data, map[string]int{
		"HC4": int(BaseHC4), "BC4": int(BaseBC4), "AFFINE": int(BaseAffine),
	})
}

func enumHook(to, want reflect.Type, data any, names map[string]int) (any, error) {
	if to != want {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	if n, ok := names[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return n, nil
	}
	// Allow a bare integer encoding too, for round-tripping Resolved
	// values back through a Params map.
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	return data, ivproblem.NewFaultError(ivproblem.FaultBadParameter, "unrecognized enum value %q", s)
}
