package assembler_test

import (
	"reflect"
	"testing"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
)

var noDebug = assembler.AssemblerConfig{}
var debug = assembler.AssemblerConfig{DebugPadding: true}

func TestProgramRType(t *testing.T) {
	source := `
		add x1, x2, x3
		sub x5, x6, x7
		sra a0, a1, a2
		AND x1, x2, x3
		or x1,x2,x3
		xor	x1,	x2,	x3
	`
	expected := []uint32{
		0x003100B3,
		0x407302B3,
		0x40C5D533,
		0x003170B3,
		0x003160B3,
		0x003140B3,
	}

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, expected, nil)
}

func TestProgramNop(t *testing.T) {
	program := assembler.Assemble("nop", noDebug)
	validateResult(t, program, []uint32{0x00000013}, nil)

	if got := program.HexWords(); !reflect.DeepEqual(got, []string{"00000013"}) {
		t.Errorf("Expected hex words [00000013], got %v", got)
	}
}

func TestProgramIType(t *testing.T) {
	source := `
		addi x1, x0, 5
		addi sp, sp, -16
		addi x1, x0, 0xFFF
		xori x1, x2, -1
		slli x1, x2, 3
		srli x1, x2, 31
		srai x1, x2, 3
		jalr x0, x1, 0
		jalr ra, 4(t1)
	`
	expected := []uint32{
		0x00500093,
		0xFF010113,
		0xFFF00093,
		0xFFF14093,
		0x00311093,
		0x01F15093,
		0x40315093,
		0x00008067,
		0x004300E7,
	}

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, expected, nil)
}

func TestProgramLoadsAndStores(t *testing.T) {
	source := `
		lw x5, 8(x6)
		lw x5, -4(sp)
		lbu t0, 0x10(a0)
		lb x1, 4(x2)
		sw x5, 8(x6)
		sb t1, -1(s0)
		sh x1, 4(x2)
	`
	expected := []uint32{
		0x00832283,
		0xFFC12283,
		0x01054283,
		0x00410083,
		0x00532423,
		0xFE640FA3,
		0x00111223,
	}

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, expected, nil)
}

func TestProgramBranchesAndLabels(t *testing.T) {
	source := `
	start:
		addi x1, x0, 5
		beq x1, x0, start # -4
	`
	expected := []uint32{
		0x00500093,
		0xFE008EE3,
	}

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, expected, nil)

	if program.Labels["start"] != 0 {
		t.Errorf("Expected label start at 0, got %d", program.Labels["start"])
	}
}

func TestProgramForwardReferences(t *testing.T) {
	source := `
		jal x1, target
		bne x1, x2, target
		target:
		bge x5, x6, 12
	`
	expected := []uint32{
		0x008000EF, // +8
		0x00209263, // +4
		0x0062D663,
	}

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, expected, nil)
}

func TestProgramJumps(t *testing.T) {
	source := `
	back:
		nop
		jal back
		jal x0, 16
	`
	expected := []uint32{
		0x00000013,
		0xFFDFF0EF, // jal x1, -4
		0x0100006F,
	}

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, expected, nil)
}

func TestDebugPadding(t *testing.T) {
	program := assembler.Assemble("add x1, x2, x3", debug)
	validateResult(t, program, []uint32{0x003100B3, 0x00000013, 0x00000013, 0x00000013}, nil)
}

func TestDebugPaddingOffsets(t *testing.T) {
	source := `
	start:
		addi x1, x0, 5
		beq x1, x0, start
		jal x1, end
		nop
	end:
	`
	expected := []uint32{
		0x00500093, 0x13, 0x13, 0x13,
		0xFE0088E3, 0x13, 0x13, 0x13, // -16
		0x020000EF, 0x13, 0x13, 0x13, // +32
		0x13, 0x13, 0x13, 0x13,
	}

	program := assembler.Assemble(source, debug)
	validateResult(t, program, expected, nil)

	if program.Labels["end"] != 64 {
		t.Errorf("Expected label end at 64, got %d", program.Labels["end"])
	}
}

func TestInstructionAddresses(t *testing.T) {
	source := `
	a:
		nop
	b:
	c:
		nop
		# comment only
		nop
	d:
	`
	for _, tc := range []struct {
		config assembler.AssemblerConfig
		stride uint32
	}{
		{noDebug, 4},
		{debug, 16},
	} {
		program := assembler.Assemble(source, tc.config)
		expectedLabels := map[string]uint32{"a": 0, "b": tc.stride, "c": tc.stride, "d": 3 * tc.stride}
		if !reflect.DeepEqual(program.Labels, expectedLabels) {
			t.Errorf("Expected labels %v, got %v", expectedLabels, program.Labels)
		}
		for i, entry := range program.Listing {
			if entry.Address != uint32(i)*tc.stride {
				t.Errorf("Expected instruction %d at 0x%X, got 0x%X", i, uint32(i)*tc.stride, entry.Address)
			}
		}
	}
}

func TestDuplicateLabel(t *testing.T) {
	source := `
	loop:
		add x1, x2, x3
	loop:
		bogus x1
	`

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, []uint32{}, []assembler.Diagnostic{
		{Line: 4, Message: "Duplicate label 'loop'", Kind: assembler.DuplicateLabel},
	})
	if !program.Fatal {
		t.Errorf("Expected the run to be marked fatal")
	}
}

func TestUndefinedLabel(t *testing.T) {
	source := `
		jal x1, nowhere
		add x1, x2, x3
	`

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, []uint32{0x003100B3}, []assembler.Diagnostic{
		{Line: 2, Message: "Undefined label: nowhere", Kind: assembler.UndefinedLabel},
	})
}

func TestErrorsDoNotStopAssembly(t *testing.T) {
	source := `add x1, x2, x3
frob x1, x2
addi x1, q7, 1
addi x1, x2, 12abc
sw x1, x2
add x1, x2
add x1, x2, x3, x4
beq x1, x2
lw x1, 4(q2)
, ,
nop`

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, []uint32{0x003100B3, 0x00000013}, []assembler.Diagnostic{
		{Line: 2, Kind: assembler.UnknownInstruction, Message: "Unknown instruction: frob"},
		{Line: 3, Kind: assembler.InvalidRegister, Message: "Invalid register: q7"},
		{Line: 4, Kind: assembler.InvalidImmediate, Message: "Invalid immediate: \"12abc\""},
		{Line: 5, Kind: assembler.InvalidOperandSyntax, Message: "Invalid operand syntax: \"x2\", expected <imm>(<reg>)"},
		{Line: 6, Kind: assembler.MissingRegister, Message: "Missing register"},
		{Line: 7, Kind: assembler.OperandCountMismatch},
		{Line: 8, Kind: assembler.OperandCountMismatch},
		{Line: 9, Kind: assembler.InvalidRegister, Message: "Invalid register: q2"},
		{Line: 10, Kind: assembler.UnknownInstruction, Message: "Unknown instruction: "},
	})
}

func TestCommaOnlyLineKeepsAddress(t *testing.T) {
	source := `target:
		nop
		,
		beq x0, x0, target`

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, []uint32{0x00000013, 0xFE000CE3}, []assembler.Diagnostic{
		{Line: 3, Kind: assembler.UnknownInstruction, Message: "Unknown instruction: "},
	})
	if program.Listing[1].Address != 8 {
		t.Errorf("Expected the branch at address 8, got %d", program.Listing[1].Address)
	}
}

func TestFailedInstructionKeepsAddressSpace(t *testing.T) {
	// the failing line still owns address 4, so the branch offset counts it
	source := `
		nop
		bogus
	target:
		nop
		beq x0, x0, target
	`

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, []uint32{0x13, 0x13, 0xFE000EE3}, []assembler.Diagnostic{
		{Line: 3, Kind: assembler.UnknownInstruction, Message: "Unknown instruction: bogus"},
	})
}

func TestCommentsAndBlankLines(t *testing.T) {
	source := "# header\n\n   // also a comment\nadd x1, x2, x3 // trailing\r\nnop # trailing\n"

	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, []uint32{0x003100B3, 0x00000013}, nil)
	if program.Listing[0].Line != 4 || program.Listing[1].Line != 5 {
		t.Errorf("Expected instructions on lines 4 and 5, got %d and %d", program.Listing[0].Line, program.Listing[1].Line)
	}
}

func TestRegisterIndexNotRangeChecked(t *testing.T) {
	program := assembler.Assemble("add x32, x0, x0", noDebug)
	validateResult(t, program, []uint32{0x00001033}, nil)
}

func TestAssembleIsIdempotent(t *testing.T) {
	source := `
	top:
		addi t0, zero, 10
		bogus
		beq t0, zero, done
		addi t0, t0, -1
		jal x0, top
	done:
		jalr x0, ra, 0
	`
	for _, config := range []assembler.AssemblerConfig{noDebug, debug} {
		first := assembler.Assemble(source, config)
		second := assembler.Assemble(source, config)
		if !reflect.DeepEqual(first.Words, second.Words) {
			t.Errorf("Words differ between runs: %v vs %v", first.Words, second.Words)
		}
		if !reflect.DeepEqual(first.Diagnostics, second.Diagnostics) {
			t.Errorf("Diagnostics differ between runs: %v vs %v", first.Diagnostics, second.Diagnostics)
		}
	}
}

func TestDisassembledProgramReassembles(t *testing.T) {
	source := `
	loop:
		add x1, x2, x3
		sub s1, s2, s3
		sltu t0, t1, t2
		addi a0, a0, -2048
		andi a1, a2, 2047
		srai t3, t4, 31
		slli t3, t4, 1
		lh s4, -2(sp)
		lhu s4, 2(sp)
		jalr ra, t0, -8
		sb a7, 100(gp)
		sw zero, -100(tp)
		blt a0, a1, loop
		bgeu a0, a1, 2000
		jal ra, loop
		jal x5, 0x7FFFE
		nop
	`
	program := assembler.Assemble(source, noDebug)
	validateResult(t, program, program.Words, nil)

	for _, word := range program.Words {
		text, ok := assembler.Disassemble(word)
		if !ok {
			t.Errorf("Could not disassemble 0x%08X", word)
			continue
		}
		again := assembler.Assemble(text, noDebug)
		if len(again.Words) != 1 || again.Words[0] != word {
			t.Errorf("%q assembled to %v, expected 0x%08X", text, again.Words, word)
		}
	}
}

func validateResult(t *testing.T, program *assembler.AssembledResult, expectedWords []uint32, expectedDiagnostics []assembler.Diagnostic) {
	t.Helper()
	if len(program.Diagnostics) != len(expectedDiagnostics) {
		t.Fatalf("Expected %d diagnostics, got %d (%v)", len(expectedDiagnostics), len(program.Diagnostics), program.Diagnostics)
	}

	for i, diagnostic := range program.Diagnostics {
		if diagnostic.Line != expectedDiagnostics[i].Line {
			t.Errorf("Expected diagnostic %d to be on line %d, got %d", i, expectedDiagnostics[i].Line, diagnostic.Line)
		}

		if diagnostic.Kind != expectedDiagnostics[i].Kind {
			t.Errorf("Expected diagnostic %d to be %s, got %s", i, expectedDiagnostics[i].Kind, diagnostic.Kind)
		}

		if expectedDiagnostics[i].Message != "" && diagnostic.Message != expectedDiagnostics[i].Message {
			t.Errorf("Expected diagnostic %d to be \"%s\", got \"%s\"", i, expectedDiagnostics[i].Message, diagnostic.Message)
		}
	}

	if len(program.Words) != len(expectedWords) {
		t.Fatalf("Expected %d words, got %d (%v)", len(expectedWords), len(program.Words), program.HexWords())
	}

	for i, word := range program.Words {
		if word != expectedWords[i] {
			t.Errorf("Expected word %d to be 0x%08X, got 0x%08X", i, expectedWords[i], word)
		}
	}
}
