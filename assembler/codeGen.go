package assembler

import "fmt"

const nopInstruction = 0x00000013 // addi x0, x0, 0

// opcode conversions
const (
	OPCODE_RTYPE    = 0b0110011
	OPCODE_ITYPE    = 0b0010011
	OPCODE_STYPE    = 0b0100011
	OPCODE_BTYPE    = 0b1100011
	OPCODE_JAL      = 0b1101111
	OPCODE_JALR     = 0b1100111
	OPCODE_MEMITYPE = 0b0000011
)

var instructionTable = map[string]instructionInfo{
	"nop": {format: formatNop},

	"add":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b000, func7: 0b0000000},
	"sub":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b000, func7: 0b0100000},
	"xor":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b100, func7: 0b0000000},
	"or":   {format: formatR, opcode: OPCODE_RTYPE, func3: 0b110, func7: 0b0000000},
	"and":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b111, func7: 0b0000000},
	"sll":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b001, func7: 0b0000000},
	"srl":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b101, func7: 0b0000000},
	"sra":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b101, func7: 0b0100000},
	"slt":  {format: formatR, opcode: OPCODE_RTYPE, func3: 0b010, func7: 0b0000000},
	"sltu": {format: formatR, opcode: OPCODE_RTYPE, func3: 0b011, func7: 0b0000000},

	"addi": {format: formatI, opcode: OPCODE_ITYPE, func3: 0b000},
	"xori": {format: formatI, opcode: OPCODE_ITYPE, func3: 0b100},
	"ori":  {format: formatI, opcode: OPCODE_ITYPE, func3: 0b110},
	"andi": {format: formatI, opcode: OPCODE_ITYPE, func3: 0b111},
	"slli": {format: formatI, opcode: OPCODE_ITYPE, func3: 0b001},
	"srli": {format: formatI, opcode: OPCODE_ITYPE, func3: 0b101},
	"srai": {format: formatI, opcode: OPCODE_ITYPE, func3: 0b101, func7: 0b0100000},
	"lb":   {format: formatI, opcode: OPCODE_MEMITYPE, func3: 0b000},
	"lh":   {format: formatI, opcode: OPCODE_MEMITYPE, func3: 0b001},
	"lw":   {format: formatI, opcode: OPCODE_MEMITYPE, func3: 0b010},
	"lbu":  {format: formatI, opcode: OPCODE_MEMITYPE, func3: 0b100},
	"lhu":  {format: formatI, opcode: OPCODE_MEMITYPE, func3: 0b101},
	"jalr": {format: formatI, opcode: OPCODE_JALR, func3: 0b000},

	"sb": {format: formatS, opcode: OPCODE_STYPE, func3: 0b000},
	"sh": {format: formatS, opcode: OPCODE_STYPE, func3: 0b001},
	"sw": {format: formatS, opcode: OPCODE_STYPE, func3: 0b010},

	"beq":  {format: formatB, opcode: OPCODE_BTYPE, func3: 0b000},
	"bne":  {format: formatB, opcode: OPCODE_BTYPE, func3: 0b001},
	"blt":  {format: formatB, opcode: OPCODE_BTYPE, func3: 0b100},
	"bge":  {format: formatB, opcode: OPCODE_BTYPE, func3: 0b101},
	"bltu": {format: formatB, opcode: OPCODE_BTYPE, func3: 0b110},
	"bgeu": {format: formatB, opcode: OPCODE_BTYPE, func3: 0b111},

	"jal": {format: formatJ, opcode: OPCODE_JAL},
}

func makeRTypeInstruction(opcode, rd, rs1, rs2, func7, func3 uint32) uint32 {
	return (func7 << 25) | (rs2 << 20) | (rs1 << 15) | (func3 << 12) | (rd << 7) | opcode
}

func makeITypeInstruction(opcode, rd, rs1, imm, func3 uint32) uint32 {
	imm = imm & 0xFFF
	return (imm << 20) | (rs1 << 15) | (func3 << 12) | (rd << 7) | opcode
}

func makeSTypeInstruction(opcode, rs1, rs2, imm, func3 uint32) uint32 {
	imm = imm & 0xFFF
	return ((imm >> 5) << 25) | (rs2 << 20) | (rs1 << 15) | (func3 << 12) | ((imm & 0x1F) << 7) | opcode
}

func makeBTypeInstruction(opcode, rs1, rs2, imm, func3 uint32) uint32 {
	imm = imm & 0x1FFF
	// expects immediate to be in the amount of bytes to jump, *not* adjusted by 2

	instr := (rs2 << 20) | (rs1 << 15) | (func3 << 12) | opcode
	// immediate is stored in a very convoluted way
	instr |= ((imm >> 12) & 0x1) << 31
	instr |= ((imm >> 11) & 0x1) << 7
	instr |= ((imm >> 5) & 0x3F) << 25
	instr |= ((imm >> 1) & 0xF) << 8

	return instr
}

func makeJTypeInstruction(opcode, rd, imm uint32) uint32 {
	imm = imm & 0x1FFFFF
	// expects immediate to be in the amount of bytes to jump, *not* adjusted by 2

	instr := (rd << 7) | opcode
	instr |= ((imm >> 20) & 0x1) << 31
	instr |= ((imm >> 1) & 0x3FF) << 21
	instr |= ((imm >> 11) & 0x1) << 20
	instr |= ((imm >> 12) & 0xFF) << 12

	return instr
}

func DecodeRTypeInstruction(instruction uint32) (opcode, rd, rs1, rs2, func7, func3 uint32) {
	opcode = instruction & 0x7F
	rd = (instruction >> 7) & 0x1F
	func3 = (instruction >> 12) & 0x7
	rs1 = (instruction >> 15) & 0x1F
	rs2 = (instruction >> 20) & 0x1F
	func7 = (instruction >> 25) & 0x7F
	return
}

func DecodeITypeInstruction(instruction uint32) (opcode, rd, rs1, imm, func3 uint32) {
	opcode = instruction & 0x7F
	rd = (instruction >> 7) & 0x1F
	func3 = (instruction >> 12) & 0x7
	rs1 = (instruction >> 15) & 0x1F
	imm = (instruction >> 20) & 0xFFF
	return
}

func DecodeSTypeInstruction(instruction uint32) (opcode, rs1, rs2, imm, func3 uint32) {
	opcode = instruction & 0x7F
	func3 = (instruction >> 12) & 0x7
	rs1 = (instruction >> 15) & 0x1F
	rs2 = (instruction >> 20) & 0x1F
	imm = (((instruction >> 25) & 0x7F) << 5) | ((instruction >> 7) & 0x1F)
	return
}

func DecodeBTypeInstruction(instruction uint32) (opcode, rs1, rs2, imm, func3 uint32) {
	opcode = instruction & 0x7F
	func3 = (instruction >> 12) & 0x7
	rs1 = (instruction >> 15) & 0x1F
	rs2 = (instruction >> 20) & 0x1F
	imm = ((instruction >> 31) & 0x1) << 12
	imm |= ((instruction >> 7) & 0x1) << 11
	imm |= ((instruction >> 25) & 0x3F) << 5
	imm |= ((instruction >> 8) & 0xF) << 1
	return
}

func DecodeJTypeInstruction(instruction uint32) (opcode, rd, imm uint32) {
	opcode = instruction & 0x7F
	rd = (instruction >> 7) & 0x1F
	imm = ((instruction >> 31) & 0x1) << 20
	imm |= ((instruction >> 21) & 0x3FF) << 1
	imm |= ((instruction >> 20) & 0x1) << 11
	imm |= ((instruction >> 12) & 0xFF) << 12
	return
}

func GetOpCode(instruction uint32) uint32 {
	return instruction & 0x7F
}

// signExtend treats the low bits of value as a two's complement number
func signExtend(value uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(value<<shift) >> shift
}

// FormatWord renders a machine word the way every consumer expects it: 8 uppercase hex digits
func FormatWord(word uint32) string {
	return fmt.Sprintf("%08X", word)
}
