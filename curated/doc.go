// This file is part of Freqgen.
//
// Freqgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Freqgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Freqgen.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder
// values, just like the Errorf() function from the fmt package.
//
// The difference is that the pattern string survives in the error value and
// can be tested for with the Is() function:
//
//	e := curated.Errorf("wavwriter: %v", err)
//
//	if curated.Is(e, "wavwriter: %v") {
//		...
//	}
//
// Has() performs the same test but against every pattern in the error chain
// rather than only the outermost one. IsAny() tests whether an error is a
// curated error at all.
//
// Error messages in freqgen are built up with a leading context tag
// ("wavwriter: ...", "terminal: ...") and curated.Error() removes adjacent
// duplicate tags when chains are formatted.
package curated
