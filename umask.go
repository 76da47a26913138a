package unixmode

// Umask is a file mode creation mask.
// Bits set in the mask are withheld from modes passed to Mask.
type Umask Mode

// Mask applies the mask on the mode.
func (u Umask) Mask(m Mode) Mode {
	return m &^ Mode(u)
}
