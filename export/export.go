// Package export renders assembled words into the files handed to downstream tools.
// None of the renderers validate the words they are given.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.gatech.edu/ECEInnovation/RV32I-Assembler/assembler"
)

type Format string

const (
	FormatHex  Format = "hex"
	FormatMIF  Format = "mif"
	FormatJSON Format = "json"
)

const mifHeader = "DEPTH = 256;\nWIDTH = 32;\nADDRESS_RADIX = HEX;\nDATA_RADIX = HEX;\nCONTENT\nBEGIN\n"

func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatHex:
		return FormatHex, nil
	case FormatMIF:
		return FormatMIF, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q (expected hex, mif or json)", name)
}

func FileName(format Format) string {
	return "program." + string(format)
}

// WriteHex writes one word per line with no trailing newline
func WriteHex(w io.Writer, words []string) error {
	_, err := io.WriteString(w, strings.Join(words, "\n"))
	return err
}

// WriteMIF writes a memory initialization file. Addresses are word indices, and
// blank entries are skipped without giving up their index.
func WriteMIF(w io.Writer, words []string) error {
	builder := strings.Builder{}
	builder.WriteString(mifHeader)
	for i, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		builder.WriteString(strings.ToUpper(strconv.FormatInt(int64(i), 16)))
		builder.WriteString(" : ")
		builder.WriteString(word)
		builder.WriteString(";\n")
	}
	builder.WriteString("END;\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

type Report struct {
	Words       []string               `json:"words"`
	Diagnostics []assembler.Diagnostic `json:"diagnostics"`
}

func WriteJSON(w io.Writer, words []string, diagnostics []assembler.Diagnostic) error {
	if words == nil {
		words = []string{}
	}
	if diagnostics == nil {
		diagnostics = []assembler.Diagnostic{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Report{Words: words, Diagnostics: diagnostics})
}

func Write(w io.Writer, format Format, words []string, diagnostics []assembler.Diagnostic) error {
	switch format {
	case FormatHex:
		return WriteHex(w, words)
	case FormatMIF:
		return WriteMIF(w, words)
	case FormatJSON:
		return WriteJSON(w, words, diagnostics)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func Render(format Format, words []string, diagnostics []assembler.Diagnostic) (string, error) {
	builder := strings.Builder{}
	if err := Write(&builder, format, words, diagnostics); err != nil {
		return "", err
	}
	return builder.String(), nil
}
