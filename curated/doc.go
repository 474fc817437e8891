// This file is part of srb2input.
//
// srb2input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// srb2input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with srb2input.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are the errors we expect to happen. Uncurated errors are
// everything else.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf(). The pattern is
// retained and is used to identify the error later:
//
//	const UnknownControl = "control '%s' unknown"
//
//	err := curated.Errorf(UnknownControl, "flyaway")
//
//	if curated.Is(err, UnknownControl) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain. Curated errors that wrap other errors with the %w verb also
// work with errors.Unwrap() from the standard library.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// a function can wrap an error with a prefix without worrying about whether
// the callee already used the same prefix:
//
//	setcontrol: setcontrol: wrong number of arguments
//
// is printed as:
//
//	setcontrol: wrong number of arguments
//
// Patterns should be stored as exported const strings in the package that
// raises the error.
package curated
