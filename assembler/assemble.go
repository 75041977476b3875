package assembler

import "strings"

const (
	instructionSize  = 4
	debugPaddingNops = 3
)

// assemblerContext holds everything one run of the assembler mutates. Nothing in
// here outlives the call to Assemble.
type assemblerContext struct {
	config         AssemblerConfig
	registers      map[string]uint32
	symbols        map[string]uint32
	pending        []pendingInstruction
	currentAddress uint32
}

func newAssemblerContext(config AssemblerConfig) *assemblerContext {
	return &assemblerContext{
		config:    config,
		registers: newRegisterTable(),
		symbols:   make(map[string]uint32),
	}
}

func (c *assemblerContext) instructionStride() uint32 {
	if c.config.DebugPadding {
		return instructionSize * (1 + debugPaddingNops)
	}
	return instructionSize
}

// buildSymbolTable is pass 1. It assigns every instruction its address and records
// labels, stopping at the first duplicate label.
func (c *assemblerContext) buildSymbolTable(lines []sourceLine) (labelLines map[string]int, fatal *Diagnostic) {
	labelLines = make(map[string]int)
	for _, line := range lines {
		if line.isLabel {
			if _, exists := c.symbols[line.label]; exists {
				d := newDiagnostic(line.lineNumber, Errors.DuplicateLabel(line.label))
				return labelLines, &d
			}
			c.symbols[line.label] = c.currentAddress
			labelLines[line.label] = line.lineNumber
			continue
		}

		c.pending = append(c.pending, pendingInstruction{
			address:    c.currentAddress,
			tokens:     line.tokens,
			lineNumber: line.lineNumber,
		})
		c.currentAddress += c.instructionStride()
	}
	return labelLines, nil
}

func (c *assemblerContext) encodeInstruction(instr pendingInstruction) (uint32, error) {
	// a line of only commas tokenizes to nothing but still owns its address
	if len(instr.tokens) == 0 {
		return 0, Errors.UnknownInstruction("")
	}

	mnemonic := strings.ToLower(instr.tokens[0])
	info, ok := instructionTable[mnemonic]
	if !ok {
		return 0, Errors.UnknownInstruction(mnemonic)
	}

	switch info.format {
	case formatR:
		return c.encodeRType(instr.tokens, info)
	case formatI:
		return c.encodeIType(instr.tokens, info)
	case formatS:
		return c.encodeSType(instr.tokens, info)
	case formatB:
		return c.encodeBType(instr.tokens, info, instr.address)
	case formatJ:
		return c.encodeJType(instr.tokens, info, instr.address)
	default:
		return nopInstruction, nil
	}
}

// generateCode is pass 2. A failing instruction only costs its own words.
func (c *assemblerContext) generateCode(res *AssembledResult) {
	for _, instr := range c.pending {
		word, err := c.encodeInstruction(instr)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, newDiagnostic(instr.lineNumber, err))
			continue
		}

		res.Words = append(res.Words, word)
		if c.config.DebugPadding {
			for i := 0; i < debugPaddingNops; i++ {
				res.Words = append(res.Words, nopInstruction)
			}
		}

		res.AddressToLine[instr.address] = instr.lineNumber
		res.Listing = append(res.Listing, ListingEntry{
			Address: instr.address,
			Line:    instr.lineNumber,
			Word:    word,
			Source:  strings.Join(instr.tokens, " "),
		})
	}
}

func Assemble(input string, config AssemblerConfig) (res *AssembledResult) {
	res = new(AssembledResult)
	res.Words = make([]uint32, 0)
	res.Diagnostics = make([]Diagnostic, 0)
	res.AddressToLine = make(map[uint32]int)
	res.fileContents = strings.Split(input, "\n")

	ctx := newAssemblerContext(config)
	labelLines, fatal := ctx.buildSymbolTable(preprocess(res.fileContents))
	res.Labels = ctx.symbols
	res.labelLines = labelLines
	if fatal != nil {
		res.Fatal = true
		res.Diagnostics = append(res.Diagnostics, *fatal)
		return
	}

	ctx.generateCode(res)
	return
}

// HexWords renders Words as 8 digit uppercase hex strings
func (a *AssembledResult) HexWords() []string {
	hex := make([]string, len(a.Words))
	for i, word := range a.Words {
		hex[i] = FormatWord(word)
	}
	return hex
}
