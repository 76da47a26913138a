package unixmode

import "fmt"

// String returns the symbolic 9 character form of m, like "rwxr-xr-x".
// Permission bits render as 'r', 'w', 'x' in user, group, others order,
// cleared bits as '-'. Set extra bits replace the execute character of
// their class: setuid and setgid render as 's' where the class is also
// executable and as 'S' where it is not, sticky renders as 't' or 'T'
// at the others execute position. A mode without extra bits renders as
// a plain permission string without any of these substitutions.
//
// The string depends only on the bit pattern of m, never on how m was
// constructed. String implements the fmt.Stringer interface.
func (m Mode) String() string {
	const rwx = "rwxrwxrwx"
	var buf [9]byte
	for i := range buf {
		if m&(1<<uint(8-i)) != 0 {
			buf[i] = rwx[i]
		} else {
			buf[i] = '-'
		}
	}
	if m&Setuid != 0 {
		if buf[2] == 'x' {
			buf[2] = 's'
		} else {
			buf[2] = 'S'
		}
	}
	if m&Setgid != 0 {
		if buf[5] == 'x' {
			buf[5] = 's'
		} else {
			buf[5] = 'S'
		}
	}
	if m&Sticky != 0 {
		if buf[8] == 'x' {
			buf[8] = 't'
		} else {
			buf[8] = 'T'
		}
	}
	return string(buf[:])
}

// Octal returns the four digit octal form of m, like "0644" or "4755".
func (m Mode) Octal() string {
	return fmt.Sprintf("%04o", uint32(m))
}
