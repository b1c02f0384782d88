package hotkey

import (
	"reflect"
	"testing"
)

func TestParseHotkey(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Ctrl+Alt+P", []string{"ctrl", "alt", "p"}},
		{"ctrl + shift + s", []string{"ctrl", "shift", "s"}},
		{"Win+M", []string{"cmd", "m"}},
		{"Super+F1", []string{"cmd", "f1"}},
		{"", nil},
	}
	for _, c := range cases {
		if got := parseHotkey(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseHotkey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestListenWithNoBindings(t *testing.T) {
	// Must be a no-op: registering nothing should not start the hook
	Listen(nil)
	Listen(map[string]func(){})
}
