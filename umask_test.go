package unixmode

import "testing"

func TestUmask_Mask(t *testing.T) {
	tests := []struct {
		name  string
		umask Umask
		m     Mode
		want  Mode
	}{
		{name: "default umask on a file mode", umask: 0022, m: 0666, want: 0644},
		{name: "default umask on a dir mode", umask: 0022, m: 0777, want: 0755},
		{name: "private umask", umask: 0077, m: 0666, want: 0600},
		{name: "group umask", umask: 0027, m: 0777, want: 0750},
		{name: "zero umask", umask: 0, m: 0666, want: 0666},
		{name: "extras pass through", umask: 0022, m: 04777, want: 04755},
		{name: "umask covering extras", umask: Umask(ExtraMask), m: 07777, want: 0777},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.umask.Mask(tt.m); got != tt.want {
				t.Errorf("Umask(%04o).Mask(%04o) = %04o, want %04o", uint32(tt.umask), uint32(tt.m), uint32(got), uint32(tt.want))
			}
		})
	}
}
