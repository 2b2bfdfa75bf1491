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
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	// sfntsChunkSize is the number of binary font bytes per string in
	// the sfnts array.  PostScript strings are limited to 64k bytes.
	sfntsChunkSize = 32768

	// hexLineWidth is the number of hex digits per output line within
	// an sfnts string.
	hexLineWidth = 70

	// charStringsPerLine is the number of CharStrings definitions per
	// output line.
	charStringsPerLine = 4
)

// Write writes the font as a textual PostScript Type 42 resource.
func (f *Font) Write(w io.Writer) error {
	b := bufio.NewWriter(w)

	for _, line := range f.Comments {
		fmt.Fprintf(b, "%% %s\n", line)
	}
	if len(f.Comments) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString("11 dict begin\n")
	fmt.Fprintf(b, "  /FontName /%s def\n", f.FontName)
	b.WriteString("  /FontType 42 def\n")
	b.WriteString("  /FontMatrix [1 0 0 1 0 0] def\n")
	b.WriteString("  /PaintType 0 def\n")
	b.WriteString("  /Encoding StandardEncoding def\n")
	fmt.Fprintf(b, "  /FontBBox [%d %d %d %d] def\n",
		f.FontBBox[0], f.FontBBox[1], f.FontBBox[2], f.FontBBox[3])

	fmt.Fprintf(b, "  /CharStrings %d dict dup begin\n", len(f.CharStrings)+5)
	b.WriteString("    /.notdef 0 def\n")
	for i, cs := range f.CharStrings {
		if i%charStringsPerLine == 0 {
			b.WriteString("    ")
		} else {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "/%s %d def", cs.Name, cs.GID)
		if i%charStringsPerLine == charStringsPerLine-1 || i == len(f.CharStrings)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("  end def\n")

	b.WriteString("  /sfnts [\n")
	for offset := 0; offset < len(f.SFNTData); offset += sfntsChunkSize {
		chunk := f.SFNTData[offset:min(offset+sfntsChunkSize, len(f.SFNTData))]
		hexData := strings.ToUpper(hex.EncodeToString(chunk))
		b.WriteString("    <")
		for pos := 0; pos < len(hexData); pos += hexLineWidth {
			if pos > 0 {
				b.WriteString("      ")
			}
			b.WriteString(hexData[pos:min(pos+hexLineWidth, len(hexData))])
			b.WriteByte('\n')
		}
		b.WriteString("    >\n")
	}
	b.WriteString("  ] def\n")

	fmt.Fprintf(b, "/%s currentdict end definefont pop\n", f.FontName)

	return b.Flush()
}
