package assembler

const (
	labelDefinitionHover = "Definition of label `%s`.\n\nAddress 0x%X"
	labelReferenceHover  = "Reference to label `%s` at address 0x%X\n\nOffset from this instruction: `%d`"
	integerLiteralHover  = "Integer Literal `%d` (`0x%X`)"
	encodingHover        = "\n\n---\n\nAddress `0x%X`, encoded as `%s` (`%s`)"

	genericRegisterHover      = "Register `x%d`. 32-Bit General Purpose Register"
	namedGenericRegisterHover = "Register `%s` (`x%d`). 32-Bit General Purpose Register"
)

var specialRegisterHover = map[uint32]string{
	0: "Zero Register `zero` (`x0`)\n\nReads as `0`, writes are discarded",
	1: "Return Address Register `ra` (`x1`)\n\nLink register used by `jal` when no destination is given",
	2: "Stack Pointer Register `sp` (`x2`)",
	3: "Global Pointer Register `gp` (`x3`)",
	4: "Thread Pointer Register `tp` (`x4`)",
}

var instructionHover = map[string]string{
	"nop": "No Operation.\n\nFormat: `nop`\n\nEncoded as `addi x0, x0, 0`",

	"add":  "Addition.\n\nFormat: `add <dst reg>, <src reg>, <src reg>`\n\nExample: `add x10, x11, x12` computes `x10 = x11 + x12`",
	"sub":  "Subtraction.\n\nFormat: `sub <dst reg>, <src reg>, <src reg>`\n\nExample: `sub x10, x11, x12` computes `x10 = x11 - x12`",
	"xor":  "Bitwise XOR.\n\nFormat: `xor <dst reg>, <src reg>, <src reg>`\n\nExample: `xor x10, x11, x12` computes `x10 = x11 ^ x12`",
	"or":   "Bitwise OR.\n\nFormat: `or <dst reg>, <src reg>, <src reg>`\n\nExample: `or x10, x11, x12` computes `x10 = x11 | x12`",
	"and":  "Bitwise AND.\n\nFormat: `and <dst reg>, <src reg>, <src reg>`\n\nExample: `and x10, x11, x12` computes `x10 = x11 & x12`",
	"sll":  "Shift Left Logical.\n\nFormat: `sll <dst reg>, <src reg>, <amt reg>`\n\nExample: `sll x10, x11, x12` computes `x10 = x11 << x12`",
	"srl":  "Shift Right Logical.\n\nFormat: `srl <dst reg>, <src reg>, <amt reg>`\n\nExample: `srl x10, x11, x12` computes `x10 = x11 >> x12`, filling with zeros",
	"sra":  "Shift Right Arithmetic.\n\nFormat: `sra <dst reg>, <src reg>, <amt reg>`\n\nExample: `sra x10, x11, x12` computes `x10 = x11 >> x12`, copying the sign bit",
	"slt":  "Set Less Than.\n\nFormat: `slt <dst reg>, <src reg>, <src reg>`\n\n`x10` becomes `1` when `x11 < x12` (signed), otherwise `0`",
	"sltu": "Set Less Than Unsigned.\n\nFormat: `sltu <dst reg>, <src reg>, <src reg>`\n\n`x10` becomes `1` when `x11 < x12` (unsigned), otherwise `0`",

	"addi": "Addition Immediate.\n\nFormat: `addi <dst reg>, <src reg>, <imm>`\n\nThe immediate keeps its low 12 bits",
	"xori": "XOR Immediate.\n\nFormat: `xori <dst reg>, <src reg>, <imm>`\n\nThe immediate keeps its low 12 bits",
	"ori":  "OR Immediate.\n\nFormat: `ori <dst reg>, <src reg>, <imm>`\n\nThe immediate keeps its low 12 bits",
	"andi": "AND Immediate.\n\nFormat: `andi <dst reg>, <src reg>, <imm>`\n\nThe immediate keeps its low 12 bits",
	"slli": "Shift Left Logical Immediate.\n\nFormat: `slli <dst reg>, <src reg>, <amt>`",
	"srli": "Shift Right Logical Immediate.\n\nFormat: `srli <dst reg>, <src reg>, <amt>`",
	"srai": "Shift Right Arithmetic Immediate.\n\nFormat: `srai <dst reg>, <src reg>, <amt>`\n\nOnly the low 5 bits of `<amt>` are kept",
	"lb":   "Load Byte (sign extended).\n\nFormat: `lb <dst reg>, <imm>(<base reg>)`",
	"lh":   "Load Halfword (sign extended).\n\nFormat: `lh <dst reg>, <imm>(<base reg>)`",
	"lw":   "Load Word.\n\nFormat: `lw <dst reg>, <imm>(<base reg>)`",
	"lbu":  "Load Byte Unsigned.\n\nFormat: `lbu <dst reg>, <imm>(<base reg>)`",
	"lhu":  "Load Halfword Unsigned.\n\nFormat: `lhu <dst reg>, <imm>(<base reg>)`",
	"jalr": "Jump and Link Register.\n\nFormat: `jalr <dst reg>, <base reg>, <imm>` or `jalr <dst reg>, <imm>(<base reg>)`",

	"sb": "Store Byte.\n\nFormat: `sb <src reg>, <imm>(<base reg>)`",
	"sh": "Store Halfword.\n\nFormat: `sh <src reg>, <imm>(<base reg>)`",
	"sw": "Store Word.\n\nFormat: `sw <src reg>, <imm>(<base reg>)`",

	"beq":  "Branch if Equal.\n\nFormat: `beq <src reg 1>, <src reg 2>, <label|offset>`",
	"bne":  "Branch if Not Equal.\n\nFormat: `bne <src reg 1>, <src reg 2>, <label|offset>`",
	"blt":  "Branch if Less Than.\n\nFormat: `blt <src reg 1>, <src reg 2>, <label|offset>`",
	"bge":  "Branch if Greater Than or Equal.\n\nFormat: `bge <src reg 1>, <src reg 2>, <label|offset>`",
	"bltu": "Branch if Less Than Unsigned.\n\nFormat: `bltu <src reg 1>, <src reg 2>, <label|offset>`",
	"bgeu": "Branch if Greater Than or Equal Unsigned.\n\nFormat: `bgeu <src reg 1>, <src reg 2>, <label|offset>`",

	"jal": "Jump and Link.\n\nFormat: `jal <dst reg>, <label|offset>` or `jal <label|offset>` (links through `ra`)",
}
