package ivconfig

import "testing"

func TestDecodeDefaults(t *testing.T) {
	r, err := Params{}.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if r.BPNodeSelection != DFS {
		t.Errorf("default BPNodeSelection = %v, want DFS", r.BPNodeSelection)
	}
	if r.PropagationRelTol != 1e-8 {
		t.Errorf("default PropagationRelTol = %v, want 1e-8", r.PropagationRelTol)
	}
	if r.SolutionClusterGap >= 0 {
		t.Errorf("default SolutionClusterGap = %v, want negative (disabled)", r.SolutionClusterGap)
	}
}

func TestDecodeOverrides(t *testing.T) {
	p := Params{
		"PROPAGATION_REL_TOL":  "1e-6",
		"BP_NODE_SELECTION":    "BFS",
		"SPLIT_SLICING":        "peeling",
		"SPLIT_SELECTION":      "LF",
		"PROPAGATION_BASE":     "BC4",
		"SPLIT_INNER_BOX":      "YES",
		"CERTIFICATION":        "NO",
		"NODE_LIMIT":           "500",
		"TIME_LIMIT":           "30.5",
	}
	r, err := p.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if r.PropagationRelTol != 1e-6 {
		t.Errorf("PropagationRelTol = %v, want 1e-6", r.PropagationRelTol)
	}
	if r.BPNodeSelection != BFS {
		t.Errorf("BPNodeSelection = %v, want BFS", r.BPNodeSelection)
	}
	if r.SplitSlicingMode != SlicePeeling {
		t.Errorf("SplitSlicingMode = %v, want SlicePeeling", r.SplitSlicingMode)
	}
	if r.SplitSelectionMode != LargestFirst {
		t.Errorf("SplitSelectionMode = %v, want LargestFirst", r.SplitSelectionMode)
	}
	if r.PropagationBaseMode != BaseBC4 {
		t.Errorf("PropagationBaseMode = %v, want BaseBC4", r.PropagationBaseMode)
	}
	if !r.SplitInnerBox {
		t.Error("SplitInnerBox = false, want true")
	}
	if r.Certification {
		t.Error("Certification = true, want false")
	}
	if r.NodeLimit != 500 {
		t.Errorf("NodeLimit = %v, want 500", r.NodeLimit)
	}
	if r.TimeLimitSeconds != 30.5 {
		t.Errorf("TimeLimitSeconds = %v, want 30.5", r.TimeLimitSeconds)
	}
}

func TestDecodeRejectsBadTolerance(t *testing.T) {
	p := Params{"PROPAGATION_REL_TOL": "-1"}
	if _, err := p.Decode(); err == nil {
		t.Error("Decode() with negative tolerance should fail")
	}
}

func TestDecodeRejectsBadInflation(t *testing.T) {
	for _, p := range []Params{
		{"INFLATION_DELTA": "1"},
		{"INFLATION_CHI": "-0.1"},
	} {
		if _, err := p.Decode(); err == nil {
			t.Errorf("Decode(%v) should fail", p)
		}
	}
}
