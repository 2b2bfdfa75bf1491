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

// Package stdenc maps the glyph names of the Adobe StandardEncoding
// vector to Unicode code points.
//
// The table is used to decide which glyphs of a font are kept when the
// font is subsetted for embedding: a glyph is kept if the font's cmap
// maps the code point of one of the names below to it.
package stdenc

// Entry pairs a StandardEncoding glyph name with the Unicode code point
// used to locate the corresponding glyph in a font's cmap.
type Entry struct {
	Name string
	Code rune
}

// Table lists the glyph names of StandardEncoding together with their
// Unicode code points.  The order of the entries is the order in which
// CharStrings definitions are emitted.
//
// Every printable ASCII character is covered.  Note that quoteright and
// quotesingle share U+0027, and quoteleft and grave share U+0060, so
// these pairs resolve to the same glyph.
var Table = []Entry{
	{"space", 0x0020},
	{"exclam", 0x0021},
	{"quotedbl", 0x0022},
	{"numbersign", 0x0023},
	{"dollar", 0x0024},
	{"percent", 0x0025},
	{"ampersand", 0x0026},
	{"quoteright", 0x0027},
	{"parenleft", 0x0028},
	{"parenright", 0x0029},
	{"asterisk", 0x002A},
	{"plus", 0x002B},
	{"comma", 0x002C},
	{"hyphen", 0x002D},
	{"period", 0x002E},
	{"slash", 0x002F},
	{"colon", 0x003A},
	{"semicolon", 0x003B},
	{"less", 0x003C},
	{"equal", 0x003D},
	{"greater", 0x003E},
	{"question", 0x003F},
	{"at", 0x0040},
	{"bracketleft", 0x005B},
	{"backslash", 0x005C},
	{"bracketright", 0x005D},
	{"asciicircum", 0x005E},
	{"underscore", 0x005F},
	{"quoteleft", 0x0060},
	{"braceleft", 0x007B},
	{"bar", 0x007C},
	{"braceright", 0x007D},
	{"asciitilde", 0x007E},

	{"exclamdown", 0x00A1},
	{"cent", 0x00A2},
	{"sterling", 0x00A3},
	{"fraction", 0x2044},
	{"yen", 0x00A5},
	{"florin", 0x0192},
	{"section", 0x00A7},
	{"currency", 0x00A4},
	{"quotesingle", 0x0027},
	{"quotedblleft", 0x201C},
	{"guillemotleft", 0x00AB},
	{"guilsinglleft", 0x2039},
	{"guilsinglright", 0x203A},
	{"fi", 0xFB01},
	{"fl", 0xFB02},
	{"endash", 0x2013},
	{"dagger", 0x2020},
	{"daggerdbl", 0x2021},
	{"periodcentered", 0x00B7},
	{"paragraph", 0x00B6},
	{"bullet", 0x2022},
	{"quotesinglbase", 0x201A},
	{"quotedblbase", 0x201E},
	{"quotedblright", 0x201D},
	{"guillemotright", 0x00BB},
	{"ellipsis", 0x2026},
	{"perthousand", 0x2030},
	{"questiondown", 0x00BF},
	{"grave", 0x0060},
	{"acute", 0x00B4},
	{"circumflex", 0x02C6},
	{"tilde", 0x02DC},
	{"macron", 0x00AF},
	{"breve", 0x02D8},
	{"dotaccent", 0x02D9},
	{"dieresis", 0x00A8},
	{"ring", 0x02DA},
	{"cedilla", 0x00B8},
	{"hungarumlaut", 0x02DD},
	{"ogonek", 0x02DB},
	{"caron", 0x02C7},
	{"emdash", 0x2014},
	{"AE", 0x00C6},
	{"ordfeminine", 0x00AA},
	{"Lslash", 0x0141},
	{"Oslash", 0x00D8},
	{"OE", 0x0152},
	{"ordmasculine", 0x00BA},
	{"ae", 0x00E6},
	{"dotlessi", 0x0131},
	{"lslash", 0x0142},
	{"oslash", 0x00F8},
	{"oe", 0x0153},
	{"germandbls", 0x00DF},
	{"minus", 0x2212},

	{"zero", 0x0030},
	{"one", 0x0031},
	{"two", 0x0032},
	{"three", 0x0033},
	{"four", 0x0034},
	{"five", 0x0035},
	{"six", 0x0036},
	{"seven", 0x0037},
	{"eight", 0x0038},
	{"nine", 0x0039},

	{"A", 0x0041},
	{"B", 0x0042},
	{"C", 0x0043},
	{"D", 0x0044},
	{"E", 0x0045},
	{"F", 0x0046},
	{"G", 0x0047},
	{"H", 0x0048},
	{"I", 0x0049},
	{"J", 0x004A},
	{"K", 0x004B},
	{"L", 0x004C},
	{"M", 0x004D},
	{"N", 0x004E},
	{"O", 0x004F},
	{"P", 0x0050},
	{"Q", 0x0051},
	{"R", 0x0052},
	{"S", 0x0053},
	{"T", 0x0054},
	{"U", 0x0055},
	{"V", 0x0056},
	{"W", 0x0057},
	{"X", 0x0058},
	{"Y", 0x0059},
	{"Z", 0x005A},

	{"a", 0x0061},
	{"b", 0x0062},
	{"c", 0x0063},
	{"d", 0x0064},
	{"e", 0x0065},
	{"f", 0x0066},
	{"g", 0x0067},
	{"h", 0x0068},
	{"i", 0x0069},
	{"j", 0x006A},
	{"k", 0x006B},
	{"l", 0x006C},
	{"m", 0x006D},
	{"n", 0x006E},
	{"o", 0x006F},
	{"p", 0x0070},
	{"q", 0x0071},
	{"r", 0x0072},
	{"s", 0x0073},
	{"t", 0x0074},
	{"u", 0x0075},
	{"v", 0x0076},
	{"w", 0x0077},
	{"x", 0x0078},
	{"y", 0x0079},
	{"z", 0x007A},
}

// Lookup returns the Unicode code point for a StandardEncoding glyph
// name.  The second return value indicates whether the name is part of
// the encoding.
func Lookup(name string) (rune, bool) {
	c, ok := code[name]
	return c, ok
}

var code map[string]rune

func init() {
	code = make(map[string]rune, len(Table))
	for _, e := range Table {
		code[e.Name] = e.Code
	}
}
