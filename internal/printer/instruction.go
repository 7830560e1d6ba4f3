package printer

// Align selects the paper alignment for subsequent text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Op discriminates the instruction variants understood by the driver.
type Op int

const (
	// OpAlign changes the active alignment.
	OpAlign Op = iota
	// OpText prints literal text, optionally scaled.
	OpText
	// OpCutPaper asks the printer to cut. Not every model supports it,
	// so drivers treat a failing cut as success.
	OpCutPaper
)

// Instruction is one formatting directive for the thermal printer.
// The formatter emits these; transmission belongs to the Driver.
type Instruction struct {
	Op          Op
	Align       Align
	Text        string
	WidthTimes  int
	HeightTimes int
}

func alignTo(a Align) Instruction {
	return Instruction{Op: OpAlign, Align: a}
}

func text(s string) Instruction {
	return Instruction{Op: OpText, Text: s}
}

func textScaled(s string, width, height int) Instruction {
	return Instruction{Op: OpText, Text: s, WidthTimes: width, HeightTimes: height}
}

func cutPaper() Instruction {
	return Instruction{Op: OpCutPaper}
}
