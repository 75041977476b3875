package assembler

import (
	"errors"
	"strconv"
)

type ErrorKind int

const (
	DuplicateLabel ErrorKind = iota + 1
	UnknownInstruction
	InvalidRegister
	MissingRegister
	InvalidImmediate
	MissingImmediate
	InvalidOperandSyntax
	UndefinedLabel
	OperandCountMismatch
)

var errorKindNames = map[ErrorKind]string{
	DuplicateLabel:       "DuplicateLabel",
	UnknownInstruction:   "UnknownInstruction",
	InvalidRegister:      "InvalidRegister",
	MissingRegister:      "MissingRegister",
	InvalidImmediate:     "InvalidImmediate",
	MissingImmediate:     "MissingImmediate",
	InvalidOperandSyntax: "InvalidOperandSyntax",
	UndefinedLabel:       "UndefinedLabel",
	OperandCountMismatch: "OperandCountMismatch",
}

func (k ErrorKind) String() string {
	name, ok := errorKindNames[k]
	if !ok {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return name
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ErrorKind) UnmarshalText(text []byte) error {
	for kind, name := range errorKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return errors.New("unknown error kind: " + string(text))
}

// AssemblyError is what a format encoder returns instead of a word
type AssemblyError struct {
	Kind    ErrorKind
	message string
}

func (e *AssemblyError) Error() string {
	return e.message
}

// Errors
type assemblyError struct{}

var Errors assemblyError

func newError(kind ErrorKind, message string) *AssemblyError {
	return &AssemblyError{Kind: kind, message: message}
}

func (assemblyError) DuplicateLabel(label string) *AssemblyError {
	return newError(DuplicateLabel, "Duplicate label '"+label+"'")
}

func (assemblyError) UnknownInstruction(mnemonic string) *AssemblyError {
	return newError(UnknownInstruction, "Unknown instruction: "+mnemonic)
}

func (assemblyError) InvalidRegister(register string) *AssemblyError {
	return newError(InvalidRegister, "Invalid register: "+register)
}

func (assemblyError) MissingRegister() *AssemblyError {
	return newError(MissingRegister, "Missing register")
}

func (assemblyError) InvalidImmediate(immediate string) *AssemblyError {
	return newError(InvalidImmediate, "Invalid immediate: \""+immediate+"\"")
}

func (assemblyError) MissingImmediate() *AssemblyError {
	return newError(MissingImmediate, "Missing immediate")
}

func (assemblyError) InvalidOperandSyntax(operand, format string) *AssemblyError {
	return newError(InvalidOperandSyntax, "Invalid operand syntax: \""+operand+"\", expected "+format)
}

func (assemblyError) UndefinedLabel(label string) *AssemblyError {
	return newError(UndefinedLabel, "Undefined label: "+label)
}

func (assemblyError) OperandCountMismatch(mnemonic, format string, got int) *AssemblyError {
	return newError(OperandCountMismatch, "Invalid operand count for "+mnemonic+" (got "+strconv.Itoa(got)+")\nFormat: "+format)
}

func KindOf(err error) (ErrorKind, bool) {
	var asmErr *AssemblyError
	if errors.As(err, &asmErr) {
		return asmErr.Kind, true
	}
	return 0, false
}

func (assemblyError) IsRegisterError(err error) bool {
	kind, ok := KindOf(err)
	return ok && (kind == InvalidRegister || kind == MissingRegister)
}

func (assemblyError) IsImmediateError(err error) bool {
	kind, ok := KindOf(err)
	return ok && (kind == InvalidImmediate || kind == MissingImmediate)
}

func newDiagnostic(lineNum int, err error) Diagnostic {
	kind, _ := KindOf(err)
	return Diagnostic{
		Line:    lineNum,
		Message: err.Error(),
		Kind:    kind,
	}
}
