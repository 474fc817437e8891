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

// Package statsview runs a local HTTP server showing the runtime statistics
// of the program. It is useful for watching the allocation behaviour of the
// event loop in the TRY mode.
//
// The graphs sample at a whole number of game tics and keep a configurable
// window of history. See Config.
//
// The server is only included if the statsview build tag is present. Without
// it, Available() returns false and Launch() does nothing.
//
// After launch, the statistics are viewable at:
//
//	localhost:12528/debug/statsview
//
// Standard Go pprof information is available at:
//
//	localhost:12528/debug/pprof/
package statsview
