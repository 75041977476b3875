package assembler

import (
	"regexp"
	"strconv"
	"strings"
)

var abiRegisterNames = []string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// <immediate>(<register>), as used by loads and stores
var memoryOperandPattern = regexp.MustCompile(`^([+-]?(?:0[xX][0-9a-fA-F]+|[0-9]+))\(([a-zA-Z0-9]+)\)$`)

const memoryOperandFormat = "<imm>(<reg>)"

func newRegisterTable() map[string]uint32 {
	table := make(map[string]uint32, len(abiRegisterNames)+1)
	for i, name := range abiRegisterNames {
		table[name] = uint32(i)
	}
	table["fp"] = 8
	return table
}

// parseRegister does not range check x<n> indices, an index above 31 bleeds into
// the neighbouring fields of the encoded word.
func (c *assemblerContext) parseRegister(token string) (uint32, error) {
	if token == "" {
		return 0, Errors.MissingRegister()
	}

	name := strings.ToLower(token)
	if reg, ok := c.registers[name]; ok {
		return reg, nil
	}

	if strings.HasPrefix(name, "x") {
		index, err := strconv.ParseUint(name[1:], 10, 32)
		if err == nil {
			return uint32(index), nil
		}
	}

	return 0, Errors.InvalidRegister(token)
}

func parseImmediate(token string) (int64, error) {
	if token == "" {
		return 0, Errors.MissingImmediate()
	}

	digits := token
	negative := false
	if digits[0] == '-' || digits[0] == '+' {
		negative = digits[0] == '-'
		digits = digits[1:]
	}

	base := 10
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		base = 16
		digits = digits[2:]
	}

	if digits == "" {
		return 0, Errors.InvalidImmediate(token)
	}

	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil || value > 1<<63 || (value == 1<<63 && !negative) {
		return 0, Errors.InvalidImmediate(token)
	}

	if negative {
		return -int64(value), nil
	}
	return int64(value), nil
}

func (c *assemblerContext) parseMemoryOperand(token string) (imm int64, base uint32, err error) {
	match := memoryOperandPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, 0, Errors.InvalidOperandSyntax(token, memoryOperandFormat)
	}

	imm, err = parseImmediate(match[1])
	if err != nil {
		return 0, 0, err
	}

	base, err = c.parseRegister(match[2])
	if err != nil {
		return 0, 0, err
	}
	return imm, base, nil
}
