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
	"os"

	"seehuhn.de/go/sfnt"
)

// InvalidFontError indicates that a source file could not be parsed as
// a TrueType font.
type InvalidFontError struct {
	FileName string
	Err      error
}

func (err *InvalidFontError) Error() string {
	return err.FileName + ": not a valid font file: " + err.Err.Error()
}

func (err *InvalidFontError) Unwrap() error {
	return err.Err
}

// ConvertFile converts the TrueType font at ttfPath into a Type 42 font
// resource named fontName and writes it to outPath, replacing any
// existing file.  The comment lines are placed at the top of the
// output.
//
// If the source file is missing, the returned error wraps
// [io/fs.ErrNotExist]; if it cannot be parsed, the returned error is an
// [*InvalidFontError].  The output file is only created after the font
// has been read successfully, so a failed conversion does not clobber
// earlier output.
func ConvertFile(fontName, ttfPath, outPath string, comments []string) error {
	fd, err := os.Open(ttfPath)
	if err != nil {
		return err
	}
	info, err := sfnt.Read(fd)
	fd.Close()
	if err != nil {
		return &InvalidFontError{FileName: ttfPath, Err: err}
	}

	font, err := New(fontName, info)
	if err != nil {
		return err
	}
	font.Comments = comments

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	err = font.Write(out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}
