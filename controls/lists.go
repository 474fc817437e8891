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

package controls

// Named subsets of controls. Used when a binding table needs to be compared
// against a scheme for only some of its controls.
var (
	TutorialCheck = []Control{
		Forward, Backward, StrafeLeft, StrafeRight,
		TurnLeft, TurnRight,
	}

	TutorialUsed = []Control{
		Forward, Backward, StrafeLeft, StrafeRight,
		TurnLeft, TurnRight,
		Jump, Use,
	}

	TutorialFull = []Control{
		Forward, Backward, StrafeLeft, StrafeRight,
		LookUp, LookDown, TurnLeft, TurnRight, CenterView,
		Jump, Use,
		Fire, FireNormal,
	}

	Movement = []Control{
		Forward, Backward, StrafeLeft, StrafeRight,
	}

	Camera = []Control{
		TurnLeft, TurnRight,
	}

	MovementCamera = []Control{
		Forward, Backward, StrafeLeft, StrafeRight,
		TurnLeft, TurnRight,
	}

	JumpOnly = []Control{Jump}

	UseOnly = []Control{Use}

	JumpUse = []Control{Jump, Use}
)

// Movement style controls that are drawn as the touch d-pad.
var DPad = []Control{Forward, Backward, StrafeLeft, StrafeRight}
