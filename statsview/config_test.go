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

package statsview_test

import (
	"testing"
	"time"

	"github.com/srb2star/srb2input/statsview"
	"github.com/srb2star/srb2input/test"
)

func TestSamples(t *testing.T) {
	// one second rounds down to a whole number of tics
	test.ExpectEquality(t, statsview.DefaultConfig.Samples(), 60)

	// interval shorter than a tic
	cfg := statsview.Config{Interval: time.Millisecond, Window: statsview.Tic * 10}
	test.ExpectEquality(t, cfg.Samples(), 10)

	// window shorter than the interval keeps one sample
	cfg = statsview.Config{Interval: time.Second, Window: time.Millisecond}
	test.ExpectEquality(t, cfg.Samples(), 1)

	// interval rounded down to three tics
	cfg = statsview.Config{Interval: statsview.Tic*3 + time.Millisecond, Window: statsview.Tic * 30}
	test.ExpectEquality(t, cfg.Samples(), 10)
}
