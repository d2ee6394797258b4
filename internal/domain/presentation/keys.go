package presentation

// Key is a named key as delivered by a host.
type Key string

// Keys the controller reacts to.
const (
	KeyArrowRight Key = "ArrowRight"
	KeyArrowLeft  Key = "ArrowLeft"
	KeySpace      Key = "Space"
	KeyPrint      Key = "p"
	KeyPrintUpper Key = "P"
)

// Prints reports whether k asks for the deck to be printed.
func (k Key) Prints() bool {
	return k == KeyPrint || k == KeyPrintUpper
}

// ParseKey maps host key names onto Key. Browsers report the space bar as
// " " (or "Spacebar" in older engines); terminals report "space", "right"
// and "left". Anything else is passed through unchanged.
func ParseKey(name string) Key {
	switch name {
	case " ", "Spacebar", "space":
		return KeySpace
	case "right", "Right":
		return KeyArrowRight
	case "left", "Left":
		return KeyArrowLeft
	default:
		return Key(name)
	}
}
