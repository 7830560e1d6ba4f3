package printer

import "context"

// Device is one paired Bluetooth device.
type Device struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Result reports a best-effort hardware operation: success, or failure
// with a human-readable reason. Hardware trouble is not an application
// error; callers branch on OK instead of unwrapping errors.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func ok() Result {
	return Result{OK: true}
}

func fail(reason string) Result {
	return Result{OK: false, Reason: reason}
}

// Driver is the external printer collaborator. Pairing UX and radio
// management live behind it; this package only hands it instruction
// sequences. A started SendFormatted runs to completion or failure,
// there is no hard cancel of an in-flight write.
type Driver interface {
	ListPaired(ctx context.Context) ([]Device, error)
	Connect(ctx context.Context, address string) Result
	IsConnected(ctx context.Context) bool
	SendFormatted(ctx context.Context, ins []Instruction) Result
}
