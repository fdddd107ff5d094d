// Package machine models the one-accumulator, two-register target of the
// code generator: it formats instructions, assembles listings and runs them.
//
// Listing format, one instruction per line, ';' starts a comment:
//
//	mov eax, 2        ; immediate into register
//	mov ebx, [rbp-4]  ; memory into register
//	mov ebx, eax      ; register into register
//	mov [rbp-8], eax  ; store accumulator
//	add eax, ebx      ; also sub, mul, div
//	out eax           ; emit accumulator
package machine

import (
	"fmt"
	"strings"
)

// Registers.
const (
	Accumulator = "eax" // Left operand and result.
	Operand     = "ebx" // Right operand.
)

// Mnemonics.
const (
	Mov = "mov"
	Add = "add"
	Sub = "sub"
	Mul = "mul"
	Div = "div"
	Out = "out"
)

const indent = "    "

// Op is a decoded instruction kind.
type Op int

// Instruction kinds.
const (
	OpLoad  Op = iota // mov reg, imm|mem|reg
	OpStore           // mov mem, reg
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpOut
)

var opStrings = map[Op]string{
	OpLoad:  "load",
	OpStore: "store",
	OpAdd:   Add,
	OpSub:   Sub,
	OpMul:   Mul,
	OpDiv:   Div,
	OpOut:   Out,
}

func (op Op) String() string { return opStrings[op] }

var arithmeticOps = map[string]Op{
	Add: OpAdd,
	Sub: OpSub,
	Mul: OpMul,
	Div: OpDiv,
}

// MoveInstr formats "mov dst, src".
func MoveInstr(dst, src string) string {
	return fmt.Sprintf("%s%s %s, %s", indent, Mov, dst, src)
}

// StoreInstr formats the store of the accumulator at addr.
func StoreInstr(addr string) string {
	return MoveInstr(addr, Accumulator)
}

// CombineInstr formats "<mnemonic> eax, ebx".
func CombineInstr(mnemonic string) string {
	return fmt.Sprintf("%s%s %s, %s", indent, mnemonic, Accumulator, Operand)
}

// OutInstr formats the emit of the accumulator.
func OutInstr() string {
	return fmt.Sprintf("%s%s %s", indent, Out, Accumulator)
}

// Comment formats a comment line. Embedded newlines are flattened.
func Comment(text string) string {
	return "; " + strings.ReplaceAll(text, "\n", " ")
}

// IsComment reports whether line holds only a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ";")
}
