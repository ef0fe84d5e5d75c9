package gui

import "testing"

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
		str  string
	}{
		{"int", Int(-3), KindInt, "-3"},
		{"float", Float(0.5), KindFloat, "0.5"},
		{"string", String("a b"), KindString, `"a b"`},
		{"bool", Bool(true), KindBool, "true"},
		{"zero", Value{}, KindInvalid, "<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
			if got := tt.v.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if tt.v.IsValid() != (tt.kind != KindInvalid) {
				t.Errorf("IsValid() = %v", tt.v.IsValid())
			}
		})
	}
}

func TestValueConversions(t *testing.T) {
	if i, ok := Float(2.9).Int(); !ok || i != 2 {
		t.Errorf("Float(2.9).Int() = %d, %v", i, ok)
	}
	if f, ok := Int(4).Float(); !ok || f != 4 {
		t.Errorf("Int(4).Float() = %v, %v", f, ok)
	}
	if b, ok := Int(0).Bool(); !ok || b {
		t.Errorf("Int(0).Bool() = %v, %v", b, ok)
	}
	if _, ok := String("1").Int(); ok {
		t.Error("String.Int() succeeded")
	}
	if _, ok := Int(1).Str(); ok {
		t.Error("Int.Str() succeeded")
	}
	if _, ok := (Value{}).Float(); ok {
		t.Error("invalid Float() succeeded")
	}
	if Bool(false) == Bool(true) {
		t.Error("Bool(false) == Bool(true)")
	}
}
