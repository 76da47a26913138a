package unixmode

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFileMode(t *testing.T) {
	tests := []struct {
		name string
		fm   os.FileMode
		want Mode
	}{
		{name: "zero", fm: 0, want: None},
		{name: "permissions only", fm: 0644, want: 0644},
		{name: "directory type dropped", fm: os.ModeDir | 0755, want: 0755},
		{name: "symlink type dropped", fm: os.ModeSymlink | 0777, want: 0777},
		{name: "setuid", fm: os.ModeSetuid | 0755, want: 04755},
		{name: "setgid", fm: os.ModeSetgid | 0755, want: 02755},
		{name: "sticky", fm: os.ModeSticky | 0777, want: 01777},
		{name: "sticky directory", fm: os.ModeDir | os.ModeSticky | 0777, want: 01777},
		{name: "all extras", fm: os.ModeSetuid | os.ModeSetgid | os.ModeSticky | 0777, want: 07777},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFileMode(tt.fm); got != tt.want {
				t.Errorf("FromFileMode(%v) = %04o, want %04o", tt.fm, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestMode_FileMode(t *testing.T) {
	tests := []struct {
		name string
		m    Mode
		want os.FileMode
	}{
		{name: "zero", m: None, want: 0},
		{name: "permissions only", m: 0644, want: 0644},
		{name: "setuid", m: 04755, want: os.ModeSetuid | 0755},
		{name: "setgid", m: 02755, want: os.ModeSetgid | 0755},
		{name: "sticky", m: 01777, want: os.ModeSticky | 0777},
		{name: "all extras", m: 07777, want: os.ModeSetuid | os.ModeSetgid | os.ModeSticky | 0777},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.FileMode(); got != tt.want {
				t.Errorf("Mode(%04o).FileMode() = %v, want %v", uint32(tt.m), got, tt.want)
			}
		})
	}

	// A plain conversion like os.FileMode(m) would leave the extra bits
	// at the wrong positions, FileMode translates them.
	assert.NotEqual(t, os.FileMode(01777), Mode(01777).FileMode())
	assert.Equal(t, os.FileMode(0777), Mode(01777).FileMode().Perm())
}

func TestFileModeRoundTrip(t *testing.T) {
	for m := None; m <= ModeMask; m++ {
		require.Equal(t, m, FromFileMode(m.FileMode()), "Mode(%04o)", uint32(m))
	}
}
