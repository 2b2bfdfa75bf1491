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
	"encoding/binary"
	"errors"
	"fmt"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/type42/stdenc"
)

// CharString assigns a glyph index in the embedded font to a
// StandardEncoding glyph name.
type CharString struct {
	Name string
	GID  glyph.ID
}

// Font represents a PostScript Type 42 font resource.
type Font struct {
	// FontName is the PostScript name under which the font is defined.
	FontName string

	// FontBBox holds xMin, yMin, xMax and yMax from the head table of
	// the embedded font, in font design units.
	FontBBox [4]int16

	// CharStrings lists the glyph name to glyph index assignments, in
	// the order they are written to the CharStrings dictionary.  The
	// ".notdef" entry is implied and not included here.
	CharStrings []CharString

	// SFNTData is the binary font embedded in the sfnts array.
	SFNTData []byte

	// Comments are written as "%" comment lines at the top of the
	// resource, before the font dictionary.
	Comments []string
}

// New subsets info to the glyphs reachable from the StandardEncoding
// code points and converts the result into a Type 42 font resource with
// the given PostScript font name.
//
// Glyph lookups use the font's best Unicode cmap; code points not
// covered by the cmap are left out of the CharStrings list.  The
// function takes ownership of info and modifies it in place.
func New(fontName string, info *sfnt.Font) (*Font, error) {
	cmapTable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("%s: no usable cmap: %w", fontName, err)
	}

	// Gather the glyphs to keep.  Glyph ID 0 (.notdef) comes first;
	// names sharing a code point share a glyph.
	subsetGlyphs := []glyph.ID{0}
	newGID := map[glyph.ID]glyph.ID{0: 0}
	var charStrings []CharString
	newCmap := cmap.Format4{}
	for _, e := range stdenc.Table {
		origGID := cmapTable.Lookup(e.Code)
		if origGID == 0 {
			continue
		}
		gid, ok := newGID[origGID]
		if !ok {
			gid = glyph.ID(len(subsetGlyphs))
			newGID[origGID] = gid
			subsetGlyphs = append(subsetGlyphs, origGID)
		}
		charStrings = append(charStrings, CharString{Name: e.Name, GID: gid})
		newCmap[uint16(e.Code)] = gid
	}

	// Drop the tables the PostScript interpreter does not need.  The
	// layout tables go first, so that Subset does not try to keep them
	// consistent with the new glyph numbering.
	info.Gdef = nil
	info.Gsub = nil
	info.Gpos = nil
	info.CMapTable = nil

	subsetFont := info.Subset(subsetGlyphs)
	if outlines, ok := subsetFont.Outlines.(*glyf.Outlines); ok {
		outlines.Tables = nil // hinting: cvt, fpgm, prep, gasp
		outlines.Names = nil
	}
	subsetFont.CMapTable = cmap.Table{
		{PlatformID: 3, EncodingID: 1}: newCmap.Encode(0),
	}

	buf := &bytes.Buffer{}
	_, err = subsetFont.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot serialize subset: %w", fontName, err)
	}
	data := buf.Bytes()

	bbox, err := headBBox(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontName, err)
	}

	return &Font{
		FontName:    fontName,
		FontBBox:    bbox,
		CharStrings: charStrings,
		SFNTData:    data,
	}, nil
}

// headBBox extracts xMin, yMin, xMax and yMax from the head table of a
// binary sfnt font.
func headBBox(data []byte) ([4]int16, error) {
	var bbox [4]int16

	r := bytes.NewReader(data)
	h, err := header.Read(r)
	if err != nil {
		return bbox, fmt.Errorf("cannot read sfnt header: %w", err)
	}
	head, err := h.ReadTableBytes(r, "head")
	if err != nil {
		return bbox, fmt.Errorf("cannot read head table: %w", err)
	}
	if len(head) < 44 {
		return bbox, errors.New("head table too short")
	}

	// xMin starts at offset 36, directly after the two date fields.
	for i := range bbox {
		bbox[i] = int16(binary.BigEndian.Uint16(head[36+2*i:]))
	}
	return bbox, nil
}
