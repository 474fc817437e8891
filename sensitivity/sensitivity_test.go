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

package sensitivity_test

import (
	"testing"

	"github.com/srb2star/srb2input/sensitivity"
	"github.com/srb2star/srb2input/test"
)

func TestScale(t *testing.T) {
	// 100 * ((20*20)/110 + 0.1) = 373.63...
	test.ExpectEquality(t, sensitivity.Scale(100, 20, 20), 373)

	// truncation is toward zero
	test.ExpectEquality(t, sensitivity.Scale(-100, 20, 20), -373)

	test.ExpectEquality(t, sensitivity.Scale(0, 20, 20), 0)

	// minimum sensitivity
	test.ExpectEquality(t, sensitivity.Scale(100, 1, 1), 10)

	// maximum sensitivity: 10 * (10000/110 + 0.1) = 910.09...
	test.ExpectEquality(t, sensitivity.Scale(10, sensitivity.Max, sensitivity.Max), 910)

	// look axis combines the two settings
	test.ExpectEquality(t, sensitivity.Scale(100, 40, 20), sensitivity.Scale(100, 20, 40))
}
