package models

import "testing"

func TestAtlasSetLastWriteWins(t *testing.T) {
	a := NewAtlas("atlas.png")
	a.Set(Region{Name: "a", X: 1, Y: 1, Width: 1, Height: 1})
	a.Set(Region{Name: "b", X: 2, Y: 2, Width: 2, Height: 2})
	a.Set(Region{Name: "a", X: 9, Y: 8, Width: 7, Height: 6})

	if a.Len() != 2 {
		t.Fatalf("Expected 2 regions, got %d", a.Len())
	}
	if a.Regions[0].Name != "a" || a.Regions[1].Name != "b" {
		t.Errorf("Expected order [a b], got [%s %s]", a.Regions[0].Name, a.Regions[1].Name)
	}

	r, ok := a.Region("a")
	if !ok {
		t.Fatal("Region(\"a\") not found")
	}
	want := Region{Name: "a", X: 9, Y: 8, Width: 7, Height: 6}
	if r != want {
		t.Errorf("Region(\"a\") = %+v, expected %+v", r, want)
	}
}

func TestAtlasLiteralIsIndexedLazily(t *testing.T) {
	a := &Atlas{
		ImagePath: "sheet.png",
		Regions:   []Region{{Name: "x", Width: 4}},
	}

	if _, ok := a.Region("x"); !ok {
		t.Error("Expected region x to be found")
	}
	a.Set(Region{Name: "x", Width: 5})
	if a.Len() != 1 || a.Regions[0].Width != 5 {
		t.Errorf("Expected single region with width 5, got %+v", a.Regions)
	}
	if _, ok := a.Region("missing"); ok {
		t.Error("Expected missing region to be absent")
	}
}
