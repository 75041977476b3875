package assembler

import (
	"fmt"
	"strings"
)

type tokenSpan struct {
	text  string
	start int
	end   int
}

// splitTokenSpans splits a line the way the tokenizer does, keeping character offsets.
// Parentheses also delimit so the base register of imm(reg) gets its own span.
func splitTokenSpans(line string) []tokenSpan {
	spans := []tokenSpan{}
	start := -1
	for i := 0; i <= len(line); i++ {
		delim := i == len(line) || strings.ContainsRune(" \t\r,()", rune(line[i]))
		if delim && start != -1 {
			spans = append(spans, tokenSpan{text: line[start:i], start: start, end: i})
			start = -1
		} else if !delim && start == -1 {
			start = i
		}
	}
	return spans
}

// EvaluateHover returns markdown describing whatever sits at the given position.
// line is 1-based like Diagnostic.Line, char is 0-based.
func (a *AssembledResult) EvaluateHover(line, char int) (string, bool) {
	if line < 1 || line > len(a.fileContents) {
		return "", false
	}

	text := stripComment(a.fileContents[line-1])
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", false
	}

	if strings.HasSuffix(cleaned, ":") {
		label := strings.TrimSuffix(cleaned, ":")
		if definedOn, ok := a.labelLines[label]; ok && definedOn == line {
			return fmt.Sprintf(labelDefinitionHover, label, a.Labels[label]), true
		}
		return "", false
	}

	var entry *ListingEntry
	for i := range a.Listing {
		if a.Listing[i].Line == line {
			entry = &a.Listing[i]
			break
		}
	}

	spans := splitTokenSpans(text)
	for i, span := range spans {
		if char < span.start || char >= span.end {
			continue
		}

		if i == 0 {
			info, ok := instructionHover[strings.ToLower(span.text)]
			if !ok {
				return "", false
			}
			if entry != nil {
				disassembly, _ := Disassemble(entry.Word)
				info += fmt.Sprintf(encodingHover, entry.Address, FormatWord(entry.Word), disassembly)
			}
			return info, true
		}

		return a.hoverOperand(span.text, entry)
	}

	return "", false
}

func (a *AssembledResult) hoverOperand(operand string, entry *ListingEntry) (string, bool) {
	if labelAddr, ok := a.Labels[operand]; ok {
		offset := int64(0)
		if entry != nil {
			offset = int64(labelAddr) - int64(entry.Address)
		}
		return fmt.Sprintf(labelReferenceHover, operand, labelAddr, offset), true
	}

	ctx := assemblerContext{registers: newRegisterTable()}
	if reg, err := ctx.parseRegister(operand); err == nil {
		if info, ok := specialRegisterHover[reg]; ok {
			return info, true
		}
		name := strings.ToLower(operand)
		if !strings.HasPrefix(name, "x") {
			return fmt.Sprintf(namedGenericRegisterHover, name, reg), true
		}
		return fmt.Sprintf(genericRegisterHover, reg), true
	}

	if value, err := parseImmediate(operand); err == nil {
		return fmt.Sprintf(integerLiteralHover, value, uint32(value)), true
	}

	return "", false
}
