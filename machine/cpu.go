package machine

import (
	"errors"
	"fmt"
)

// Run time errors. A *RuntimeError unwraps to one of these.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrUninitialized  = errors.New("read of uninitialized memory")
)

// RuntimeError reports the instruction that faulted.
type RuntimeError struct {
	Instr Instruction
	Err   error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Instr.Line, e.Instr, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// CPU holds the machine state. The zero value is not usable, use New.
type CPU struct {
	Registers map[string]float64
	Memory    map[string]float64 // Keyed by address text, e.g. "rbp-4".
	Outputs   []float64          // Values emitted by out, in order.
}

// New creates a CPU with zeroed registers and empty memory.
func New() *CPU {
	return &CPU{
		Registers: map[string]float64{Accumulator: 0, Operand: 0},
		Memory:    map[string]float64{},
	}
}

// Exec assembles and runs a listing on a fresh CPU.
func Exec(listing string) (*CPU, error) {
	prog, err := Assemble(listing)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	cpu := New()
	if err := cpu.Run(prog); err != nil {
		return cpu, err
	}
	return cpu, nil
}

// Run executes the program from the first instruction, stopping at the first fault.
func (c *CPU) Run(prog []Instruction) error {
	for _, in := range prog {
		if err := c.Step(in); err != nil {
			return &RuntimeError{Instr: in, Err: err}
		}
	}
	return nil
}

// Step executes a single instruction.
func (c *CPU) Step(in Instruction) error {
	switch in.Op {
	case OpLoad:
		v, err := c.read(in.Src)
		if err != nil {
			return err
		}
		c.Registers[in.Dst.Name] = v
	case OpStore:
		c.Memory[in.Dst.Name] = c.Registers[in.Src.Name]
	case OpAdd:
		c.Registers[in.Dst.Name] += c.Registers[in.Src.Name]
	case OpSub:
		c.Registers[in.Dst.Name] -= c.Registers[in.Src.Name]
	case OpMul:
		c.Registers[in.Dst.Name] *= c.Registers[in.Src.Name]
	case OpDiv:
		divisor := c.Registers[in.Src.Name]
		if divisor == 0 {
			return ErrDivisionByZero
		}
		c.Registers[in.Dst.Name] /= divisor
	case OpOut:
		c.Outputs = append(c.Outputs, c.Registers[in.Dst.Name])
	default:
		return fmt.Errorf("unsupported op %d", in.Op)
	}
	return nil
}

func (c *CPU) read(a Arg) (float64, error) {
	switch a.Kind {
	case Immediate:
		return a.Value, nil
	case Memory:
		v, ok := c.Memory[a.Name]
		if !ok {
			return 0, fmt.Errorf("%w at [%s]", ErrUninitialized, a.Name)
		}
		return v, nil
	}
	return c.Registers[a.Name], nil
}
