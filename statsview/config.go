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

package statsview

import (
	"time"

	"github.com/srb2star/srb2input/touch"
)

// Address of the statistics server.
const Address = "localhost:12528"

// Config is the sampling behaviour of the statistics server.
type Config struct {
	// time between samples. rounded down to a whole number of game tics
	Interval time.Duration

	// how much history the graphs show
	Window time.Duration
}

// Tic is the duration of one game tic.
const Tic = time.Second / touch.TicRate

// DefaultConfig samples once a second and keeps a minute of history.
var DefaultConfig = Config{
	Interval: time.Second,
	Window:   time.Minute,
}

func (cfg Config) normalise() Config {
	if cfg.Interval < Tic {
		cfg.Interval = Tic
	}
	cfg.Interval -= cfg.Interval % Tic
	if cfg.Window < cfg.Interval {
		cfg.Window = cfg.Interval
	}
	return cfg
}

// Samples returns the number of samples kept for the window.
func (cfg Config) Samples() int {
	cfg = cfg.normalise()
	return int(cfg.Window / cfg.Interval)
}
