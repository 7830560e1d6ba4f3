package printer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ConsoleDriver renders instruction sequences as plain text on a
// writer. It stands in for the Bluetooth driver during development and
// in cmd/printtest, and doubles as a readable preview of a receipt.
type ConsoleDriver struct {
	mu        sync.Mutex
	w         io.Writer
	devices   []Device
	connected string
}

func NewConsoleDriver(w io.Writer, devices []Device) *ConsoleDriver {
	return &ConsoleDriver{w: w, devices: devices}
}

func (d *ConsoleDriver) ListPaired(_ context.Context) ([]Device, error) {
	out := make([]Device, len(d.devices))
	copy(out, d.devices)
	return out, nil
}

func (d *ConsoleDriver) Connect(_ context.Context, address string) Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, dev := range d.devices {
		if dev.Address == address {
			d.connected = address
			return ok()
		}
	}
	return fail(fmt.Sprintf("no paired device with address %s", address))
}

func (d *ConsoleDriver) IsConnected(_ context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected != ""
}

func (d *ConsoleDriver) SendFormatted(_ context.Context, ins []Instruction) Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected == "" {
		return fail("printer not connected")
	}

	align := AlignLeft
	for _, in := range ins {
		switch in.Op {
		case OpAlign:
			align = in.Align
		case OpText:
			if _, err := io.WriteString(d.w, applyAlign(in.Text, align)); err != nil {
				return fail(err.Error())
			}
		case OpCutPaper:
			// best effort on real hardware, nothing to do here
		}
	}
	return ok()
}

// applyAlign pads each line of s so the console preview mirrors the
// paper layout.
func applyAlign(s string, align Align) string {
	if align == AlignLeft {
		return s
	}

	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		if line == "" {
			continue
		}
		pad := paperWidth - len([]rune(line))
		if pad <= 0 {
			b.WriteString(line)
			continue
		}
		if align == AlignCenter {
			b.WriteString(strings.Repeat(" ", pad/2))
		} else {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
	}
	return b.String()
}
