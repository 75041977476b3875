package assembler

import (
	"reflect"
	"testing"
)

func TestParseRegister(t *testing.T) {
	ctx := newAssemblerContext(AssemblerConfig{})
	cases := map[string]uint32{
		"zero": 0, "ra": 1, "sp": 2, "gp": 3, "tp": 4,
		"t0": 5, "t2": 7, "s0": 8, "fp": 8, "s1": 9,
		"a0": 10, "a7": 17, "s2": 18, "s11": 27, "t3": 28, "t6": 31,
		"x0": 0, "x31": 31, "X5": 5, "SP": 2, "x40": 40,
	}
	for token, expected := range cases {
		reg, err := ctx.parseRegister(token)
		if err != nil || reg != expected {
			t.Errorf("parseRegister(%q) = %d, %v; expected %d", token, reg, err, expected)
		}
	}

	for _, token := range []string{"q1", "x", "x-1", "xa", "r1", "5"} {
		if _, err := ctx.parseRegister(token); !Errors.IsRegisterError(err) {
			t.Errorf("parseRegister(%q) should fail with InvalidRegister, got %v", token, err)
		}
	}

	if _, err := ctx.parseRegister(""); err == nil || err.(*AssemblyError).Kind != MissingRegister {
		t.Errorf("Expected MissingRegister for an empty token, got %v", err)
	}
}

func TestParseImmediate(t *testing.T) {
	cases := map[string]int64{
		"0": 0, "5": 5, "-5": -5, "+7": 7, "2047": 2047,
		"0x10": 16, "0XfF": 255, "-0x10": -16, "0xFFFFFFFF": 0xFFFFFFFF,
		"-9223372036854775808": -9223372036854775808,
	}
	for token, expected := range cases {
		value, err := parseImmediate(token)
		if err != nil || value != expected {
			t.Errorf("parseImmediate(%q) = %d, %v; expected %d", token, value, err, expected)
		}
	}

	for _, token := range []string{"abc", "12abc", "0x", "-", "--1", "1_000", "0xG1", "9223372036854775808", "4(x1)"} {
		if _, err := parseImmediate(token); !Errors.IsImmediateError(err) {
			t.Errorf("parseImmediate(%q) should fail, got %v", token, err)
		}
	}

	if kind, _ := KindOf(func() error { _, err := parseImmediate(""); return err }()); kind != MissingImmediate {
		t.Errorf("Expected MissingImmediate for an empty token, got %s", kind)
	}
}

func TestParseMemoryOperand(t *testing.T) {
	ctx := newAssemblerContext(AssemblerConfig{})

	imm, base, err := ctx.parseMemoryOperand("-12(sp)")
	if err != nil || imm != -12 || base != 2 {
		t.Errorf("Expected -12(sp) to be (-12, 2), got (%d, %d, %v)", imm, base, err)
	}

	imm, base, err = ctx.parseMemoryOperand("0x20(x7)")
	if err != nil || imm != 32 || base != 7 {
		t.Errorf("Expected 0x20(x7) to be (32, 7), got (%d, %d, %v)", imm, base, err)
	}

	for _, token := range []string{"x2", "(x2)", "4(x2", "4 (x2)", "four(x2)", ""} {
		if _, _, err := ctx.parseMemoryOperand(token); err == nil || err.(*AssemblyError).Kind != InvalidOperandSyntax {
			t.Errorf("parseMemoryOperand(%q) should fail with InvalidOperandSyntax, got %v", token, err)
		}
	}
}

func TestPreprocess(t *testing.T) {
	lines := preprocess([]string{
		"  # comment",
		"",
		"main:",
		"  addi x1,x0 , 5   // set",
		"loop :",
		"\tbeq\tx1, x0, main#back",
	})

	expected := []sourceLine{
		{lineNumber: 3, label: "main", isLabel: true},
		{lineNumber: 4, tokens: []string{"addi", "x1", "x0", "5"}},
		{lineNumber: 5, label: "loop ", isLabel: true},
		{lineNumber: 6, tokens: []string{"beq", "x1", "x0", "main"}},
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %+v, got %+v", expected, lines)
	}
}

func TestRegisterTablesAreNotShared(t *testing.T) {
	first := newAssemblerContext(AssemblerConfig{})
	first.registers["bogus"] = 3

	second := newAssemblerContext(AssemblerConfig{})
	if _, err := second.parseRegister("bogus"); err == nil {
		t.Errorf("Expected a fresh context to have its own register table")
	}
}
