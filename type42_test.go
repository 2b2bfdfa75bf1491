// seehuhn.de/go/type42 - convert TrueType fonts to PostScript Type 42
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package type42

import (
	"bytes"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/maps"
	"golang.org/x/image/font/gofont/gomono"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/type42/stdenc"
)

func loadGomono(t *testing.T) *sfnt.Font {
	t.Helper()
	info, err := sfnt.Read(bytes.NewReader(gomono.TTF))
	if err != nil {
		t.Fatal(err)
	}
	return info
}

func TestNew(t *testing.T) {
	font, err := New("Test", loadGomono(t))
	if err != nil {
		t.Fatal(err)
	}

	if font.FontName != "Test" {
		t.Errorf("wrong font name %q", font.FontName)
	}
	if len(font.CharStrings) == 0 {
		t.Fatal("no CharStrings entries")
	}
	if len(font.SFNTData) == 0 {
		t.Fatal("no embedded font data")
	}

	// The embedded data must be a valid sfnt font, and all glyph
	// indices must be valid for it.
	subsetFont, err := sfnt.Read(bytes.NewReader(font.SFNTData))
	if err != nil {
		t.Fatal(err)
	}
	numGlyphs := subsetFont.NumGlyphs()
	count := make(map[string]int)
	for _, cs := range font.CharStrings {
		count[cs.Name]++
		if cs.GID == 0 || int(cs.GID) >= numGlyphs {
			t.Errorf("glyph index %d for %q out of range [1, %d)",
				cs.GID, cs.Name, numGlyphs)
		}
		if _, ok := stdenc.Lookup(cs.Name); !ok {
			t.Errorf("glyph name %q not in StandardEncoding", cs.Name)
		}
	}

	names := maps.Keys(count)
	sort.Strings(names)
	for _, name := range names {
		if count[name] != 1 {
			t.Errorf("glyph name %q emitted %d times", name, count[name])
		}
	}
	if count[".notdef"] != 0 {
		t.Error(".notdef must not appear in the CharStrings list")
	}

	// Go Mono covers ASCII, so at least these names must be present.
	for _, name := range []string{"space", "A", "z", "nine", "at"} {
		if count[name] != 1 {
			t.Errorf("glyph name %q missing", name)
		}
	}

	if font.FontBBox[0] > font.FontBBox[2] || font.FontBBox[1] > font.FontBBox[3] {
		t.Errorf("invalid FontBBox %v", font.FontBBox)
	}
	if font.FontBBox == ([4]int16{}) {
		t.Error("empty FontBBox")
	}
}

// TestSharedGlyphs checks that glyph names mapped to the same code
// point resolve to the same glyph index.
func TestSharedGlyphs(t *testing.T) {
	font, err := New("Test", loadGomono(t))
	if err != nil {
		t.Fatal(err)
	}

	gid := make(map[string]CharString)
	for _, cs := range font.CharStrings {
		gid[cs.Name] = cs
	}
	pairs := [][2]string{
		{"quoteright", "quotesingle"}, // both U+0027
		{"quoteleft", "grave"},        // both U+0060
	}
	for _, pair := range pairs {
		a, aok := gid[pair[0]]
		b, bok := gid[pair[1]]
		if !aok || !bok {
			t.Errorf("%q or %q missing from CharStrings", pair[0], pair[1])
			continue
		}
		if a.GID != b.GID {
			t.Errorf("%q and %q have different glyph indices %d and %d",
				pair[0], pair[1], a.GID, b.GID)
		}
	}
}

// TestUnmappedOmitted checks that encoding entries without a cmap entry
// are left out of the CharStrings list instead of being mapped to a
// placeholder glyph.
func TestUnmappedOmitted(t *testing.T) {
	info := loadGomono(t)

	cmapTable, err := info.CMapTable.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	gidA := cmapTable.Lookup('A')
	if gidA == 0 {
		t.Fatal("test font has no glyph for 'A'")
	}

	// Replace the cmap with one that only covers the letter A.
	info.CMapTable = sfntcmap.Table{
		{PlatformID: 3, EncodingID: 1}: sfntcmap.Format4{'A': gidA}.Encode(0),
	}

	font, err := New("Test", info)
	if err != nil {
		t.Fatal(err)
	}

	want := []CharString{{Name: "A", GID: 1}}
	if d := cmp.Diff(want, font.CharStrings); d != "" {
		t.Errorf("CharStrings mismatch (-want +got):\n%s", d)
	}
}

func TestNewNoCmap(t *testing.T) {
	numGlyphs := 4
	info := &sfnt.Font{
		FamilyName: "Test",
		UnitsPerEm: 1000,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, numGlyphs),
			Widths: make([]funit.Int16, numGlyphs),
		},
	}
	_, err := New("Test", info)
	if err == nil {
		t.Error("expected error for font without cmap")
	}
}

func TestHeadBBox(t *testing.T) {
	font, err := New("Test", loadGomono(t))
	if err != nil {
		t.Fatal(err)
	}

	// The bounding box must be the one stored in the head table of the
	// embedded font data.
	bbox, err := headBBox(font.SFNTData)
	if err != nil {
		t.Fatal(err)
	}
	if bbox != font.FontBBox {
		t.Errorf("FontBBox %v does not match head table %v",
			font.FontBBox, bbox)
	}
}

func TestHeadBBoxInvalid(t *testing.T) {
	_, err := headBBox([]byte("not an sfnt font"))
	if err == nil {
		t.Error("expected error for invalid font data")
	}
}
