package machine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Assembly errors. An *AsmError unwraps to one of these.
var (
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	ErrBadOperand      = errors.New("bad operand")
)

// AsmError reports a listing line that cannot be assembled.
type AsmError struct {
	Line int
	Text string
	Err  error
}

func (e *AsmError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Text)
}

func (e *AsmError) Unwrap() error { return e.Err }

// OperandKind tells how an operand is addressed.
type OperandKind int

// Operand kinds.
const (
	Register OperandKind = iota
	Immediate
	Memory
)

// Arg is a decoded instruction operand.
type Arg struct {
	Kind  OperandKind
	Name  string  // Register name or memory address (without brackets).
	Value float64 // Immediate value.
}

func (a Arg) String() string {
	switch a.Kind {
	case Immediate:
		return strconv.FormatFloat(a.Value, 'g', -1, 64)
	case Memory:
		return "[" + a.Name + "]"
	}
	return a.Name
}

// Instruction is one decoded listing line.
type Instruction struct {
	Op   Op
	Dst  Arg
	Src  Arg
	Line int // 1-based line in the listing.
}

func (in Instruction) String() string {
	switch in.Op {
	case OpOut:
		return fmt.Sprintf("%s %s", Out, in.Dst)
	case OpLoad, OpStore:
		return fmt.Sprintf("%s %s, %s", Mov, in.Dst, in.Src)
	}
	return fmt.Sprintf("%s %s, %s", in.Op, in.Dst, in.Src)
}

// Assemble decodes a listing. Blank lines and comments are skipped.
func Assemble(listing string) ([]Instruction, error) {
	var prog []Instruction
	for i, raw := range strings.Split(listing, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}
		in, err := parseLine(line)
		if err != nil {
			return nil, &AsmError{Line: i + 1, Text: line, Err: err}
		}
		in.Line = i + 1
		prog = append(prog, in)
	}
	return prog, nil
}

func stripComment(line string) string {
	if cut := strings.IndexByte(line, ';'); cut >= 0 {
		return line[:cut]
	}
	return line
}

func parseLine(line string) (Instruction, error) {
	mnemonic, rest, _ := strings.Cut(line, " ")
	mnemonic = strings.ToLower(mnemonic)

	var args []Arg
	if rest = strings.TrimSpace(rest); rest != "" {
		for _, field := range strings.Split(rest, ",") {
			arg, err := parseArg(strings.TrimSpace(field))
			if err != nil {
				return Instruction{}, err
			}
			args = append(args, arg)
		}
	}

	switch {
	case mnemonic == Mov:
		if len(args) != 2 {
			return Instruction{}, fmt.Errorf("%w: %s takes 2 operands", ErrBadOperand, Mov)
		}
		switch {
		case args[0].Kind == Register:
			return Instruction{Op: OpLoad, Dst: args[0], Src: args[1]}, nil
		case args[0].Kind == Memory && args[1].Kind == Register:
			return Instruction{Op: OpStore, Dst: args[0], Src: args[1]}, nil
		}
		return Instruction{}, fmt.Errorf("%w: cannot move %s into %s", ErrBadOperand, args[1], args[0])
	case mnemonic == Out:
		if len(args) != 1 || args[0].Kind != Register {
			return Instruction{}, fmt.Errorf("%w: %s takes a register", ErrBadOperand, Out)
		}
		return Instruction{Op: OpOut, Dst: args[0]}, nil
	}

	op, ok := arithmeticOps[mnemonic]
	if !ok {
		return Instruction{}, fmt.Errorf("%w %q", ErrUnknownMnemonic, mnemonic)
	}
	if len(args) != 2 || args[0].Kind != Register || args[1].Kind != Register {
		return Instruction{}, fmt.Errorf("%w: %s takes 2 registers", ErrBadOperand, mnemonic)
	}
	return Instruction{Op: op, Dst: args[0], Src: args[1]}, nil
}

func parseArg(token string) (Arg, error) {
	switch {
	case token == Accumulator, token == Operand:
		return Arg{Kind: Register, Name: token}, nil
	case strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]"):
		addr := strings.TrimSpace(token[1 : len(token)-1])
		if addr == "" {
			return Arg{}, fmt.Errorf("%w: empty address", ErrBadOperand)
		}
		return Arg{Kind: Memory, Name: addr}, nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Arg{}, fmt.Errorf("%w %q", ErrBadOperand, token)
	}
	return Arg{Kind: Immediate, Value: v}, nil
}
