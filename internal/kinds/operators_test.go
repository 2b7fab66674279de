package kinds

import "testing"

func TestLiteralKindCoversEveryTokenCategory(t *testing.T) {
	cases := map[string]Kind{
		"INT_LITERAL":     IntLiteral,
		"LONG_LITERAL":    LongLiteral,
		"FLOAT_LITERAL":   FloatLiteral,
		"DOUBLE_LITERAL":  DoubleLiteral,
		"BOOLEAN_LITERAL": BooleanLiteral,
		"CHAR_LITERAL":    CharLiteral,
		"STRING_LITERAL":  StringLiteral,
	}
	for tag, want := range cases {
		got, err := LiteralKind(tag)
		if err != nil {
			t.Fatalf("LiteralKind(%q): unexpected error %v", tag, err)
		}
		if got != want {
			t.Errorf("LiteralKind(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestLiteralKindFailsClosed(t *testing.T) {
	_, err := LiteralKind("NULL_LITERAL")
	if err == nil {
		t.Fatal("expected an UnknownOperator error for an unrecognised literal tag")
	}
	var unknown *UnknownOperator
	if !asUnknownOperator(err, &unknown) {
		t.Fatalf("expected *UnknownOperator, got %T", err)
	}
	if unknown.Category != "literal" || unknown.Tag != "NULL_LITERAL" {
		t.Errorf("unexpected UnknownOperator fields: %+v", unknown)
	}
}

func asUnknownOperator(err error, out **UnknownOperator) bool {
	u, ok := err.(*UnknownOperator)
	if !ok {
		return false
	}
	*out = u
	return true
}

func TestOperatorKindsAreDistinctPerCategory(t *testing.T) {
	categories := []struct {
		name   string
		table  map[string]Kind
		lookup func(string) (Kind, error)
	}{
		{"binary", binaryKinds, BinaryKind},
		{"prefix", prefixKinds, PrefixKind},
		{"postfix", postfixKinds, PostfixKind},
		{"assignment", assignmentKinds, AssignmentKind},
	}
	for _, c := range categories {
		seen := map[Kind]string{}
		for tag := range c.table {
			k, err := c.lookup(tag)
			if err != nil {
				t.Fatalf("%s lookup of %q: %v", c.name, tag, err)
			}
			if other, dup := seen[k]; dup {
				t.Errorf("%s kind %v shared by tags %q and %q", c.name, k, other, tag)
			}
			seen[k] = tag
		}
	}
}

func TestBinaryKindUnknownTag(t *testing.T) {
	if _, err := BinaryKind("~="); err == nil {
		t.Fatal("expected an error for an operator outside the binary domain")
	}
}

func TestPrefixAndPostfixKindDomains(t *testing.T) {
	if _, err := PostfixKind("!"); err == nil {
		t.Fatal("'!' is a prefix-only operator and must fail in the postfix domain")
	}
	if _, err := PrefixKind("++"); err != nil {
		t.Fatalf("'++' is valid in both prefix and postfix domains: %v", err)
	}
}

func TestAssignmentKindCompoundForms(t *testing.T) {
	for tag, want := range assignmentKinds {
		got, err := AssignmentKind(tag)
		if err != nil {
			t.Fatalf("AssignmentKind(%q): %v", tag, err)
		}
		if got != want {
			t.Errorf("AssignmentKind(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestIsLValueKind(t *testing.T) {
	for _, k := range []Kind{Identifier, MemberSelect, ArrayAccessExpression} {
		if !IsLValueKind(k) {
			t.Errorf("IsLValueKind(%v) = false, want true", k)
		}
	}
	for _, k := range []Kind{IntLiteral, MethodInvocation, Block} {
		if IsLValueKind(k) {
			t.Errorf("IsLValueKind(%v) = true, want false", k)
		}
	}
}
