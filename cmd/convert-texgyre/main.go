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

// Convert-texgyre converts the TeX Gyre TrueType fonts in the ttfs/
// directory into PostScript Type 42 font resources in the output/
// directory.  Missing or unreadable font files are reported and
// skipped.
//
// The TeX Gyre fonts are distributed as OpenType files; the expected
// input files are batch-converted to TrueType with otf2ttf.py from
// fonttools:
// https://github.com/fonttools/fonttools/blob/d584daa8fdc71030f92ee665472d6c7cddd49283/Snippets/otf2ttf.py
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/type42"
)

const (
	fontsDir  = "ttfs"
	outputDir = "output"
)

// fonts maps PostScript font names to the TrueType files they are
// generated from, in conversion order.
var fonts = []struct {
	fontName string
	fileName string
}{
	{"TG-Heros", "texgyreheros-regular.ttf"},
	{"TG-Heros-Bold", "texgyreheros-bold.ttf"},
	{"TG-Heros-Oblique", "texgyreheros-italic.ttf"},
	{"TG-Heros-BoldOblique", "texgyreheros-bolditalic.ttf"},

	{"TG-Heros-Narrow", "texgyreheroscn-regular.ttf"},
	{"TG-Heros-Narrow-Bold", "texgyreheroscn-bold.ttf"},
	{"TG-Heros-Narrow-Oblique", "texgyreheroscn-italic.ttf"},
	{"TG-Heros-Narrow-BoldOblique", "texgyreheroscn-bolditalic.ttf"},

	{"TG-Termes", "texgyretermes-regular.ttf"},
	{"TG-Termes-Bold", "texgyretermes-bold.ttf"},
	{"TG-Termes-Italic", "texgyretermes-italic.ttf"},
	{"TG-Termes-BoldItalic", "texgyretermes-bolditalic.ttf"},

	{"TG-Cursor", "texgyrecursor-regular.ttf"},
	{"TG-Cursor-Bold", "texgyrecursor-bold.ttf"},
	{"TG-Cursor-Oblique", "texgyrecursor-italic.ttf"},
	{"TG-Cursor-BoldOblique", "texgyrecursor-bolditalic.ttf"},

	{"TG-Adventor", "texgyreadventor-regular.ttf"},
	{"TG-Adventor-Bold", "texgyreadventor-bold.ttf"},
	{"TG-Adventor-Oblique", "texgyreadventor-italic.ttf"},
	{"TG-Adventor-BoldOblique", "texgyreadventor-bolditalic.ttf"},

	{"TG-Bonum", "texgyrebonum-regular.ttf"},
	{"TG-Bonum-Bold", "texgyrebonum-bold.ttf"},
	{"TG-Bonum-Oblique", "texgyrebonum-italic.ttf"},
	{"TG-Bonum-BoldOblique", "texgyrebonum-bolditalic.ttf"},

	{"TG-Schola", "texgyreschola-regular.ttf"},
	{"TG-Schola-Bold", "texgyreschola-bold.ttf"},
	{"TG-Schola-Oblique", "texgyreschola-italic.ttf"},
	{"TG-Schola-BoldOblique", "texgyreschola-bolditalic.ttf"},

	{"TG-Pagella", "texgyrepagella-regular.ttf"},
	{"TG-Pagella-Bold", "texgyrepagella-bold.ttf"},
	{"TG-Pagella-Oblique", "texgyrepagella-italic.ttf"},
	{"TG-Pagella-BoldOblique", "texgyrepagella-bolditalic.ttf"},

	{"TG-Chorus", "texgyrechorus-mediumitalic.ttf"},
}

func main() {
	err := os.MkdirAll(outputDir, 0o755)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("starting conversion for %d fonts\n", len(fonts))
	for _, f := range fonts {
		convert(f.fontName, f.fileName)
	}
	fmt.Println("batch processing complete")
}

func convert(fontName, fileName string) {
	ttfPath := filepath.Join(fontsDir, fileName)
	outPath := filepath.Join(outputDir, fontName+".ps")
	fmt.Printf("generating %s from %s ...\n", fontName, ttfPath)

	err := type42.ConvertFile(fontName, ttfPath, outPath, gustComments(fileName))

	var invalidErr *type42.InvalidFontError
	switch {
	case err == nil:
		fmt.Printf("  -> %s written\n", outPath)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Printf("  skipped: file not found: %s\n", ttfPath)
	case errors.As(err, &invalidErr):
		fmt.Printf("  error: cannot load font: %v\n", invalidErr.Err)
	default:
		log.Fatal(err)
	}
}

// gustComments returns the license comment lines for a font derived
// from one of the TeX Gyre font files.
func gustComments(fileName string) []string {
	base := strings.TrimSuffix(fileName, ".ttf")
	return []string{
		"Derived from " + base + " which is licensed under the GUST Font License (GFL)",
		"The original TeXGyre fonts can be downloaded from https://www.gust.org.pl/projects/e-foundry/tex-gyre",
		"The license can be accessed at https://www.gust.org.pl/projects/e-foundry/licenses/GUST-FONT-LICENSE.txt/view",
	}
}
