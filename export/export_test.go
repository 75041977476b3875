package export_test

import (
	"encoding/json"
	"testing"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
	"github.gatech.edu/ECEInnovation/RV32I-Assembler/export"
)

func TestRenderHex(t *testing.T) {
	out, err := export.Render(export.FormatHex, []string{"003100B3", "00000013"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "003100B3\n00000013" {
		t.Errorf("Unexpected hex listing %q", out)
	}

	out, _ = export.Render(export.FormatHex, nil, nil)
	if out != "" {
		t.Errorf("Expected an empty listing, got %q", out)
	}
}

func TestRenderMIF(t *testing.T) {
	words := make([]string, 0, 18)
	for i := 0; i < 17; i++ {
		words = append(words, "00000013")
	}
	words = append(words, "003100B3")

	out, err := export.Render(export.FormatMIF, words, nil)
	if err != nil {
		t.Fatal(err)
	}

	expected := "DEPTH = 256;\nWIDTH = 32;\nADDRESS_RADIX = HEX;\nDATA_RADIX = HEX;\nCONTENT\nBEGIN\n"
	for i := 0; i < 10; i++ {
		expected += string(rune('0'+i)) + " : 00000013;\n"
	}
	for _, addr := range []string{"A", "B", "C", "D", "E", "F", "10"} {
		expected += addr + " : 00000013;\n"
	}
	expected += "11 : 003100B3;\nEND;\n"

	if out != expected {
		t.Errorf("Unexpected MIF:\n%s\nexpected:\n%s", out, expected)
	}
}

func TestRenderMIFSkipsBlankWords(t *testing.T) {
	out, _ := export.Render(export.FormatMIF, []string{"00000013", "", "003100B3"}, nil)
	expected := "DEPTH = 256;\nWIDTH = 32;\nADDRESS_RADIX = HEX;\nDATA_RADIX = HEX;\nCONTENT\nBEGIN\n" +
		"0 : 00000013;\n2 : 003100B3;\nEND;\n"
	if out != expected {
		t.Errorf("Unexpected MIF:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	program := assembler.Assemble("add x1, x2, x3\nfrob", assembler.AssemblerConfig{})
	out, err := export.Render(export.FormatJSON, program.HexWords(), program.Diagnostics)
	if err != nil {
		t.Fatal(err)
	}

	report := export.Report{}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Report is not valid json: %v", err)
	}
	if len(report.Words) != 1 || report.Words[0] != "003100B3" {
		t.Errorf("Unexpected words %v", report.Words)
	}
	if len(report.Diagnostics) != 1 || report.Diagnostics[0].Line != 2 || report.Diagnostics[0].Kind != assembler.UnknownInstruction {
		t.Errorf("Unexpected diagnostics %+v", report.Diagnostics)
	}
}

func TestParseFormat(t *testing.T) {
	for name, expected := range map[string]export.Format{"hex": export.FormatHex, "MIF": export.FormatMIF, " json ": export.FormatJSON} {
		format, err := export.ParseFormat(name)
		if err != nil || format != expected {
			t.Errorf("ParseFormat(%q) = %q, %v", name, format, err)
		}
	}
	if _, err := export.ParseFormat("elf"); err == nil {
		t.Errorf("Expected elf to be rejected")
	}
	if export.FileName(export.FormatMIF) != "program.mif" {
		t.Errorf("Unexpected file name %s", export.FileName(export.FormatMIF))
	}
}
