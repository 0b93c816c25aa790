package types

import (
	"encoding/json"
	"testing"
)

// TestFlagCoercion covers the boolean shapes providers actually send.
func TestFlagCoercion(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"true"`, true},
		{`"yes"`, true},
		{`"no"`, false},
		{`"Refundable"`, true},
		{`null`, false},
		{`"maybe"`, false},
		{`2`, false},
	}

	for _, tt := range tests {
		var f Flag
		if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
			t.Errorf("Flag(%s): unexpected error %v", tt.in, err)
			continue
		}
		if f.Bool() != tt.want {
			t.Errorf("Flag(%s) = %v, want %v", tt.in, f.Bool(), tt.want)
		}
	}
}

// TestTriBoolKeepsAbsence distinguishes an absent flag from an explicit
// false so bound-level flags can override segment-level ones.
func TestTriBoolKeepsAbsence(t *testing.T) {
	tests := []struct {
		in        string
		wantKnown bool
		wantValue bool
	}{
		{`"NonRefundable"`, true, false},
		{`"Refundable"`, true, true},
		{`null`, false, false},
		{`""`, false, false},
		{`"unheard-of"`, false, false},
	}

	for _, tt := range tests {
		var tri TriBool
		if err := json.Unmarshal([]byte(tt.in), &tri); err != nil {
			t.Errorf("TriBool(%s): unexpected error %v", tt.in, err)
			continue
		}
		if tri.Known != tt.wantKnown || tri.Value != tt.wantValue {
			t.Errorf("TriBool(%s) = %+v, want known=%v value=%v", tt.in, tri, tt.wantKnown, tt.wantValue)
		}
	}

	if got := (TriBool{}).Or(true); got != true {
		t.Errorf("absent flag must yield the fallback, got %v", got)
	}
	if got := (TriBool{Known: true, Value: false}).Or(true); got != false {
		t.Errorf("explicit false must beat the fallback, got %v", got)
	}
}
