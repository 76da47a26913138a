// Package unixmode provides a strongly typed representation of unix
// permission modes: the nine read/write/execute bits for the user, group,
// and others classes plus the setuid, setgid, and sticky bits.
// A Mode is bit for bit compatible with the traditional numeric encoding,
// so FromBits(0644) is the familiar rw-r--r-- and the extra bits form the
// conventional fourth octal digit.
package unixmode

// Mode is a complete unix permission mode stored in the traditional
// 12 bit numeric encoding.
// The low nine bits are the user/group/others permission bits,
// bits 9 to 11 are sticky, setgid, and setuid.
// Mode is an unsigned integer type, so modes combine with the standard
// bitwise operators: m | other is the union, m & other the intersection,
// m &^ other the difference, and m |= other adds bits in place.
type Mode uint16

// Class selects which of the user, group, others permission classes
// WithClassPerm and WithoutClassPerm apply to.
// It is an alias for Mode, so class constants are plain Mode values
// that can be combined like any other Mode.
type Class = Mode

// Permission selects which of the read, write, execute permissions
// WithClassPerm and WithoutClassPerm apply to.
// It is an alias for Mode just like Class.
type Permission = Mode

// Extra selects one of the setuid, setgid, sticky bits
// in WithExtra and WithoutExtra calls.
// It is an alias for Mode just like Class.
type Extra = Mode

const (
	User   Class = 0700
	Group  Class = 0070
	Others Class = 0007

	Read    Permission = 0444
	Write   Permission = 0222
	Execute Permission = 0111

	// All addresses all three classes or all three permissions,
	// depending on the argument position it is passed in.
	// It is the union User | Group | Others and
	// equally the union Read | Write | Execute.
	All Mode = 0777
)

const (
	Setuid Extra = 04000
	Setgid Extra = 02000
	Sticky Extra = 01000
)

// Named permission flags.
// Each one is the intersection of a class and a permission,
// so UserRead is the single 0400 bit, AllRead the three read bits, etc.
const (
	UserRead      Mode = User & Read
	UserWrite     Mode = User & Write
	UserExecute   Mode = User & Execute
	UserReadWrite Mode = UserRead | UserWrite

	GroupRead      Mode = Group & Read
	GroupWrite     Mode = Group & Write
	GroupExecute   Mode = Group & Execute
	GroupReadWrite Mode = GroupRead | GroupWrite

	OthersRead      Mode = Others & Read
	OthersWrite     Mode = Others & Write
	OthersExecute   Mode = Others & Execute
	OthersReadWrite Mode = OthersRead | OthersWrite

	AllRead      Mode = All & Read
	AllWrite     Mode = All & Write
	AllExecute   Mode = All & Execute
	AllReadWrite Mode = AllRead | AllWrite
)

const (
	// None is the empty Mode, the zero value of the type.
	None Mode = 0

	// PermMask covers the nine user/group/others permission bits.
	PermMask Mode = 0777

	// ExtraMask covers the setuid, setgid, and sticky bits.
	ExtraMask Mode = 07000

	// ModeMask covers all twelve bits that are meaningful in a Mode.
	ModeMask Mode = PermMask | ExtraMask
)

// FromBits returns the Mode for raw numeric mode bits,
// masked to the twelve bits of ModeMask.
// Higher bits are silently discarded, never rejected, so raw stat modes
// can be passed directly and lose just their file type bits.
func FromBits(bits uint32) Mode {
	return Mode(bits) & ModeMask
}

// With returns a mode with all bits of other added.
// It is the method form of m | other.
func (m Mode) With(other Mode) Mode {
	return m | other
}

// Without returns a mode with all bits of other removed,
// no matter if they are permission or extra bits.
// Bits of other that are not set in m stay unset, so combining the
// result with other again does not restore the original mode.
func (m Mode) Without(other Mode) Mode {
	return m &^ other
}

// WithClassPerm returns a mode with the permission added for the class.
// Both arguments can address multiple classes or permissions at once,
// like WithClassPerm(All, Read) or WithClassPerm(User, All).
func (m Mode) WithClassPerm(class Class, perm Permission) Mode {
	return m | class&perm
}

// WithoutClassPerm returns a mode with the permission removed for the class.
func (m Mode) WithoutClassPerm(class Class, perm Permission) Mode {
	return m &^ (class & perm)
}

// WithExtra returns a mode with the passed extra bit added.
func (m Mode) WithExtra(extra Extra) Mode {
	return m | extra
}

// WithoutExtra returns a mode with the passed extra bit removed.
func (m Mode) WithoutExtra(extra Extra) Mode {
	return m &^ extra
}

// WithoutAnyExtra returns a mode with the setuid, setgid, and sticky bits
// cleared and the nine permission bits unchanged.
func (m Mode) WithoutAnyExtra() Mode {
	return m &^ ExtraMask
}

// Perm returns the nine permission bits of m without the extra bits.
func (m Mode) Perm() Mode {
	return m & PermMask
}

// Has indicates whether every bit set in flags is also set in m.
// It reports subset containment, so it works for single flags like
// UserRead as well as for composite flags and whole modes,
// and m.Has(None) is always true.
func (m Mode) Has(flags Mode) bool {
	return m&flags == flags
}

func (m Mode) Readable() (user, group, others bool) {
	return m&UserRead != 0, m&GroupRead != 0, m&OthersRead != 0
}

func (m Mode) Writable() (user, group, others bool) {
	return m&UserWrite != 0, m&GroupWrite != 0, m&OthersWrite != 0
}

func (m Mode) Executable() (user, group, others bool) {
	return m&UserExecute != 0, m&GroupExecute != 0, m&OthersExecute != 0
}

func (m Mode) CanUserExecute() bool   { return m.Has(UserExecute) }
func (m Mode) CanUserWrite() bool     { return m.Has(UserWrite) }
func (m Mode) CanUserRead() bool      { return m.Has(UserRead) }
func (m Mode) CanUserReadWrite() bool { return m.Has(UserReadWrite) }

func (m Mode) CanGroupExecute() bool   { return m.Has(GroupExecute) }
func (m Mode) CanGroupWrite() bool     { return m.Has(GroupWrite) }
func (m Mode) CanGroupRead() bool      { return m.Has(GroupRead) }
func (m Mode) CanGroupReadWrite() bool { return m.Has(GroupReadWrite) }

func (m Mode) CanOthersExecute() bool   { return m.Has(OthersExecute) }
func (m Mode) CanOthersWrite() bool     { return m.Has(OthersWrite) }
func (m Mode) CanOthersRead() bool      { return m.Has(OthersRead) }
func (m Mode) CanOthersReadWrite() bool { return m.Has(OthersReadWrite) }

func (m Mode) CanAllRead() bool      { return m.Has(AllRead) }
func (m Mode) CanAllWrite() bool     { return m.Has(AllWrite) }
func (m Mode) CanAllExecute() bool   { return m.Has(AllExecute) }
func (m Mode) CanAllReadWrite() bool { return m.Has(AllReadWrite) }

// CombineModes returns the union of the passed modes,
// or defaultMode if modes is empty.
func CombineModes(modes []Mode, defaultMode Mode) (result Mode) {
	if len(modes) == 0 {
		return defaultMode
	}
	for _, m := range modes {
		result |= m
	}
	return result
}
