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

// Package type42 converts TrueType fonts into PostScript Type 42 font
// resources.
//
// A Type 42 font wraps the binary sfnt data of a TrueType font in a
// textual PostScript font dictionary, so that a PostScript interpreter
// can render the glyphs using its built-in TrueType rasterizer.  The
// fonts produced here are subsetted to the glyphs reachable from the
// Adobe StandardEncoding vector (see package
// [seehuhn.de/go/type42/stdenc]) and use StandardEncoding as their
// built-in encoding.
package type42
