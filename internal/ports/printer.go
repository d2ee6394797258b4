package ports

// Printer triggers the host's print facility. Print must not block the
// caller and reports nothing back; failures are the printer's own concern.
type Printer interface {
	Print()
}

// PrinterFunc adapts a function to Printer.
type PrinterFunc func()

// Print calls f.
func (f PrinterFunc) Print() {
	if f != nil {
		f()
	}
}

// NopPrinter ignores print requests.
type NopPrinter struct{}

// Print does nothing.
func (NopPrinter) Print() {}

var (
	_ Printer = PrinterFunc(nil)
	_ Printer = NopPrinter{}
)
