package assembler

import "fmt"

type decodeKey struct {
	opcode uint32
	func3  uint32
	func7  uint32
}

// mnemonicsByEncoding is the inverse of instructionTable. func7 is only part of the
// key for R-type instructions and srai.
var mnemonicsByEncoding = func() map[decodeKey]string {
	m := make(map[decodeKey]string, len(instructionTable))
	for mnemonic, info := range instructionTable {
		if info.format == formatNop {
			continue
		}
		m[decodeKey{info.opcode, info.func3, info.func7}] = mnemonic
	}
	return m
}()

// Disassemble renders a word produced by the assembler back into source form. Registers
// are always written as x<n> and branch/jump targets as relative offsets, so the text
// assembles back to the same word.
func Disassemble(instruction uint32) (string, bool) {
	if instruction == nopInstruction {
		return "nop", true
	}

	switch GetOpCode(instruction) {
	case OPCODE_RTYPE:
		opcode, rd, rs1, rs2, func7, func3 := DecodeRTypeInstruction(instruction)
		mnemonic, ok := mnemonicsByEncoding[decodeKey{opcode, func3, func7}]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s x%d, x%d, x%d", mnemonic, rd, rs1, rs2), true

	case OPCODE_ITYPE:
		opcode, rd, rs1, imm, func3 := DecodeITypeInstruction(instruction)
		if func3 == 0b001 || func3 == 0b101 {
			// shifts keep funct7 in the upper bits of the immediate
			mnemonic, ok := mnemonicsByEncoding[decodeKey{opcode, func3, imm >> 5}]
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%s x%d, x%d, %d", mnemonic, rd, rs1, imm&0x1F), true
		}
		mnemonic, ok := mnemonicsByEncoding[decodeKey{opcode, func3, 0}]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s x%d, x%d, %d", mnemonic, rd, rs1, signExtend(imm, 12)), true

	case OPCODE_MEMITYPE:
		opcode, rd, rs1, imm, func3 := DecodeITypeInstruction(instruction)
		mnemonic, ok := mnemonicsByEncoding[decodeKey{opcode, func3, 0}]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s x%d, %d(x%d)", mnemonic, rd, signExtend(imm, 12), rs1), true

	case OPCODE_JALR:
		_, rd, rs1, imm, func3 := DecodeITypeInstruction(instruction)
		if func3 != 0 {
			return "", false
		}
		return fmt.Sprintf("jalr x%d, x%d, %d", rd, rs1, signExtend(imm, 12)), true

	case OPCODE_STYPE:
		opcode, rs1, rs2, imm, func3 := DecodeSTypeInstruction(instruction)
		mnemonic, ok := mnemonicsByEncoding[decodeKey{opcode, func3, 0}]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s x%d, %d(x%d)", mnemonic, rs2, signExtend(imm, 12), rs1), true

	case OPCODE_BTYPE:
		opcode, rs1, rs2, imm, func3 := DecodeBTypeInstruction(instruction)
		mnemonic, ok := mnemonicsByEncoding[decodeKey{opcode, func3, 0}]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s x%d, x%d, %d", mnemonic, rs1, rs2, signExtend(imm, 13)), true

	case OPCODE_JAL:
		_, rd, imm := DecodeJTypeInstruction(instruction)
		return fmt.Sprintf("jal x%d, %d", rd, signExtend(imm, 21)), true
	}

	return "", false
}
