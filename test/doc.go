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

// Package test contains helper functions to remove common boilerplate from
// test functions elsewhere in the project.
//
// Equate() compares a value against an expected value. ExpectSuccess() and
// ExpectFailure() test a bool or error for the obvious condition. Tolerance()
// compares floats to within a fraction of the expected value, which the
// frequency tests need constantly.
//
// The CompareWriter type is an io.Writer that records what is written to it
// for later comparison.
package test
