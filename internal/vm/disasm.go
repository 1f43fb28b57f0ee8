package vm

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable representation of the bytecode.
func Disassemble(chunk *Chunk, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("== %s ==\n", name))

	offset := 0
	for offset < len(chunk.Code) {
		offset = disassembleInstruction(&sb, chunk, offset)
	}

	return sb.String()
}

func disassembleInstruction(sb *strings.Builder, chunk *Chunk, offset int) int {
	sb.WriteString(fmt.Sprintf("%04d ", offset))

	op := Opcode(chunk.Code[offset])

	switch op {
	case OP_CONST:
		if offset+3 > len(chunk.Code) {
			sb.WriteString("CONST <truncated>\n")
			return len(chunk.Code)
		}
		idx := chunk.ReadConstantIndex(offset + 1)
		if idx < len(chunk.Constants) {
			sb.WriteString(fmt.Sprintf("%-8s %4d  ; %g\n", "CONST", idx, chunk.Constants[idx]))
		} else {
			sb.WriteString(fmt.Sprintf("%-8s %4d  ; <bad index>\n", "CONST", idx))
		}
		return offset + 3

	case OP_PARAM:
		if offset+2 > len(chunk.Code) {
			sb.WriteString("PARAM <truncated>\n")
			return len(chunk.Code)
		}
		sb.WriteString(fmt.Sprintf("%-8s %4d\n", "PARAM", chunk.Code[offset+1]))
		return offset + 2

	default:
		sb.WriteString(op.String())
		sb.WriteByte('\n')
		return offset + 1
	}
}
