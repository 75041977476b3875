package assembler

type AssemblerConfig struct {
	// DebugPadding follows every encoded instruction with three nop words
	DebugPadding bool `json:"debugPadding"`
}

type AssembledResult struct {
	Words         []uint32          // program order, padding included
	Diagnostics   []Diagnostic      // ordered by source line
	Labels        map[string]uint32 // label name to byte address
	AddressToLine map[uint32]int    // address of an encoded instruction to its line number
	Listing       []ListingEntry
	Fatal         bool // pass 1 aborted, nothing was encoded
	labelLines    map[string]int
	fileContents  []string // each line of the file
}

type ListingEntry struct {
	Address uint32 `json:"address"`
	Line    int    `json:"line"`
	Word    uint32 `json:"word"`
	Source  string `json:"source"`
}

type Diagnostic struct {
	Line    int       `json:"line"` // 1-based
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}

// sourceLine is a cleaned line: either a label definition or a tokenized instruction
type sourceLine struct {
	lineNumber int
	label      string
	isLabel    bool
	tokens     []string
}

type pendingInstruction struct {
	address    uint32
	tokens     []string
	lineNumber int
}

type instructionFormat int

const (
	formatR instructionFormat = iota
	formatI
	formatS
	formatB
	formatJ
	formatNop
)

type instructionInfo struct {
	format instructionFormat
	opcode uint32
	func3  uint32
	func7  uint32 // R-type funct7, or the special funct7 of srai
}
