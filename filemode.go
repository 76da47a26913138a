package unixmode

import "os"

// FromFileMode converts an os.FileMode to a Mode.
// os.FileMode keeps setuid, setgid, and sticky in high flag positions,
// so a plain integer conversion would lose them; this translation moves
// them into the traditional extra bits. File type flags like os.ModeDir
// are discarded.
func FromFileMode(fm os.FileMode) Mode {
	m := Mode(fm.Perm())
	if fm&os.ModeSetuid != 0 {
		m |= Setuid
	}
	if fm&os.ModeSetgid != 0 {
		m |= Setgid
	}
	if fm&os.ModeSticky != 0 {
		m |= Sticky
	}
	return m
}

// FileMode converts m to an os.FileMode with the extra bits translated
// to os.ModeSetuid, os.ModeSetgid, and os.ModeSticky.
// It is the inverse of FromFileMode for every Mode.
func (m Mode) FileMode() os.FileMode {
	fm := os.FileMode(m & PermMask)
	if m&Setuid != 0 {
		fm |= os.ModeSetuid
	}
	if m&Setgid != 0 {
		fm |= os.ModeSetgid
	}
	if m&Sticky != 0 {
		fm |= os.ModeSticky
	}
	return fm
}
