package assembler

const (
	rTypeFormat = "<opcode> <reg>, <reg>, <reg>"
	iTypeFormat = "<opcode> <reg>, <reg>, <imm> | <opcode> <reg>, <imm>(<reg>)"
	sTypeFormat = "<opcode> <reg>, <imm>(<reg>)"
	bTypeFormat = "<opcode> <reg>, <reg>, <label|imm>"
	jTypeFormat = "<opcode> [<reg>,] <label|imm>"
)

// operand returns "" for operands that are not present so the parsers can report them as missing
func operand(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}

func (c *assemblerContext) encodeRType(tokens []string, info instructionInfo) (uint32, error) {
	if len(tokens) > 4 {
		return 0, Errors.OperandCountMismatch(tokens[0], rTypeFormat, len(tokens)-1)
	}

	rd, err := c.parseRegister(operand(tokens, 1))
	if err != nil {
		return 0, err
	}
	rs1, err := c.parseRegister(operand(tokens, 2))
	if err != nil {
		return 0, err
	}
	rs2, err := c.parseRegister(operand(tokens, 3))
	if err != nil {
		return 0, err
	}

	return makeRTypeInstruction(info.opcode, rd, rs1, rs2, info.func7, info.func3), nil
}

func (c *assemblerContext) encodeIType(tokens []string, info instructionInfo) (uint32, error) {
	if len(tokens) > 4 {
		return 0, Errors.OperandCountMismatch(tokens[0], iTypeFormat, len(tokens)-1)
	}

	rd, err := c.parseRegister(operand(tokens, 1))
	if err != nil {
		return 0, err
	}

	var rs1 uint32
	var imm int64
	if third := operand(tokens, 2); memoryOperandPattern.MatchString(third) {
		// rd, imm(rs1)
		if len(tokens) > 3 {
			return 0, Errors.OperandCountMismatch(tokens[0], iTypeFormat, len(tokens)-1)
		}
		imm, rs1, err = c.parseMemoryOperand(third)
		if err != nil {
			return 0, err
		}
	} else {
		// rd, rs1, imm
		rs1, err = c.parseRegister(third)
		if err != nil {
			return 0, err
		}
		imm, err = parseImmediate(operand(tokens, 3))
		if err != nil {
			return 0, err
		}
	}

	if info.func7 != 0 {
		// shift amount only keeps 5 bits, funct7 takes the rest of the immediate field
		imm = (imm & 0x1F) | int64(info.func7<<5)
	}

	return makeITypeInstruction(info.opcode, rd, rs1, uint32(imm), info.func3), nil
}

func (c *assemblerContext) encodeSType(tokens []string, info instructionInfo) (uint32, error) {
	if len(tokens) > 3 {
		return 0, Errors.OperandCountMismatch(tokens[0], sTypeFormat, len(tokens)-1)
	}

	// the value register comes first, unlike loads
	rs2, err := c.parseRegister(operand(tokens, 1))
	if err != nil {
		return 0, err
	}
	imm, rs1, err := c.parseMemoryOperand(operand(tokens, 2))
	if err != nil {
		return 0, err
	}

	return makeSTypeInstruction(info.opcode, rs1, rs2, uint32(imm), info.func3), nil
}

func (c *assemblerContext) encodeBType(tokens []string, info instructionInfo, address uint32) (uint32, error) {
	if len(tokens) > 4 {
		return 0, Errors.OperandCountMismatch(tokens[0], bTypeFormat, len(tokens)-1)
	}

	rs1, err := c.parseRegister(operand(tokens, 1))
	if err != nil {
		return 0, err
	}
	rs2, err := c.parseRegister(operand(tokens, 2))
	if err != nil {
		return 0, err
	}
	if len(tokens) < 4 {
		return 0, Errors.OperandCountMismatch(tokens[0], bTypeFormat, len(tokens)-1)
	}

	offset, err := c.resolveTarget(tokens[3], address)
	if err != nil {
		return 0, err
	}

	return makeBTypeInstruction(info.opcode, rs1, rs2, uint32(offset), info.func3), nil
}

func (c *assemblerContext) encodeJType(tokens []string, info instructionInfo, address uint32) (uint32, error) {
	var rd uint32 = 1 // bare "jal target" links through ra
	var target string
	switch len(tokens) {
	case 2:
		target = tokens[1]
	case 3:
		var err error
		rd, err = c.parseRegister(tokens[1])
		if err != nil {
			return 0, err
		}
		target = tokens[2]
	default:
		return 0, Errors.OperandCountMismatch(tokens[0], jTypeFormat, len(tokens)-1)
	}

	offset, err := c.resolveTarget(target, address)
	if err != nil {
		return 0, err
	}

	return makeJTypeInstruction(info.opcode, rd, uint32(offset)), nil
}

// resolveTarget returns the byte offset from address to target. A target that is
// not a label is read as an offset relative to the current instruction.
func (c *assemblerContext) resolveTarget(target string, address uint32) (int64, error) {
	if labelAddr, ok := c.symbols[target]; ok {
		return int64(labelAddr) - int64(address), nil
	}

	offset, err := parseImmediate(target)
	if err != nil {
		return 0, Errors.UndefinedLabel(target)
	}
	return offset, nil
}
