package export

import (
	"testing"

	"github.com/Faultbox/scenesync/internal/scene"
)

func TestCleanCollectionName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Barrel.dff", "Barrel"},
		{"Barrel.DFF", "Barrel"},
		{"Barrel.Dff", "Barrel"},
		{"Barrel", "Barrel"},
		{"Barrel.dff.dff", "Barrel.dff"},
		{"dff", "dff"},
		{"Barreldff", "Barreldff"},
		{"Barrel.dff.001", "Barrel.dff.001"},
		{"MiXeD_Case.DfF", "MiXeD_Case"},
		{".dff", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanCollectionName(tt.in); got != tt.want {
				t.Errorf("CleanCollectionName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanObjectName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Barrel.001", "Barrel"},
		{"Barrel.1", "Barrel"},
		{"Barrel.001.002", "Barrel.001"},
		{"Barrel", "Barrel"},
		{"Barrel.abc", "Barrel.abc"},
		{"Barrel.", "Barrel."},
		{"Barrel001", "Barrel001"},
		{"Barrel.12a", "Barrel.12a"},
		{"CamelCase.07", "CamelCase"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanObjectName(tt.in); got != tt.want {
				t.Errorf("CleanObjectName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name string
		obj  scene.Object
		want string
	}{
		{"collection wins", scene.Object{Name: "Barrel.001", Collection: "Crate.dff"}, "Crate"},
		{"collection keeps digits", scene.Object{Name: "x", Collection: "Crate.001"}, "Crate.001"},
		{"object fallback", scene.Object{Name: "Barrel.002"}, "Barrel"},
		{"both empty", scene.Object{}, Placeholder},
		{"collection cleans to empty", scene.Object{Name: "Barrel", Collection: ".DFF"}, Placeholder},
		{"object cleans to empty", scene.Object{Name: ".001"}, Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(&tt.obj); got != tt.want {
				t.Errorf("ResolveName() = %q, want %q", got, tt.want)
			}
		})
	}
}
