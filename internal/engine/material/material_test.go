package material

import (
	"testing"

	"github.com/Faultbox/deskscene/pkg/math"
)

func TestDefaultsFindable(t *testing.T) {
	lib := NewLibrary(Defaults()...)

	want := []string{"plastic", "metal", "cement", "wood", "glass", "clay", "Mousepad"}
	if lib.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", lib.Len(), len(want))
	}
	for i, tag := range lib.Tags() {
		if tag != want[i] {
			t.Errorf("tag %d = %q, want %q", i, tag, want[i])
		}
	}

	glass, ok := lib.Find("glass")
	if !ok {
		t.Fatal("glass not found")
	}
	if glass.Shininess != 35 || glass.AmbientColor != math.V3(0.2, 0.3, 0.4) {
		t.Errorf("glass = %+v", glass)
	}
}

func TestFindMissingReportsFalse(t *testing.T) {
	lib := NewLibrary(Defaults()...)

	if _, ok := lib.Find("rubber"); ok {
		t.Error("Find(rubber) reported found")
	}
	// Lookup is case sensitive: the mousepad material is "Mousepad"
	if _, ok := lib.Find("mousepad"); ok {
		t.Error("Find(mousepad) matched Mousepad")
	}
}

func TestFindOnEmptyLibrary(t *testing.T) {
	var lib Library
	if _, ok := lib.Find("wood"); ok {
		t.Error("empty library reported a match")
	}
}

func TestDefineReplacesSameTag(t *testing.T) {
	lib := NewLibrary(Defaults()...)
	lib.Define(Material{Tag: "wood", Shininess: 99})

	if lib.Len() != len(Defaults()) {
		t.Errorf("Len() = %d after redefine", lib.Len())
	}
	wood, _ := lib.Find("wood")
	if wood.Shininess != 99 {
		t.Errorf("wood shininess = %v, want 99", wood.Shininess)
	}
}
