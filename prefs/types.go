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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// stored is the value of a preference and the hooks that are called whenever
// the value is set. The hooks are called even if the value does not change.
type stored[T any] struct {
	value    atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (s *stored[T]) load(def T) T {
	if v := s.value.Load(); v != nil {
		return v.(T)
	}
	return def
}

func (s *stored[T]) store(v T) error {
	if s.hookPre != nil {
		if err := s.hookPre(v); err != nil {
			return err
		}
	}

	s.value.Store(v)

	if s.hookPost != nil {
		return s.hookPost(v)
	}
	return nil
}

// SetHookPre sets the function to be called just before the value is set. If
// the function returns an error the value is not set.
func (s *stored[T]) SetHookPre(f func(value Value) error) {
	s.hookPre = f
}

// SetHookPost sets the function to be called just after the value is set.
func (s *stored[T]) SetHookPost(f func(value Value) error) {
	s.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	stored[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load(false))
}

// Set new value to Bool type. The value can be a bool or a string. The
// strings "true" and "on" are true, without regard to case. Every other
// string is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on":
			return p.store(true)
		}
		return p.store(false)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load(false)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	stored[string]
	maxLen int
}

func (p *String) String() string {
	return p.load("")
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// means there is no limit. The existing string is cropped immediately, without
// calling the hooks.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(""); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Any value is accepted and is formatted with
// the %v verb.
func (p *String) Set(v Value) error {
	s := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(s) > p.maxLen {
		s = s[:p.maxLen]
	}
	return p.store(s)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system. An Int can optionally
// be limited to a range of values with SetRange().
type Int struct {
	stored[int]

	ranged bool
	min    int
	max    int
}

func (p *Int) String() string {
	return strconv.Itoa(p.clamp(p.load(0)))
}

// SetRange limits the values the Int can take. Values outside the range are
// clamped to the nearest limit. The current value is clamped immediately
// without calling the hooks.
func (p *Int) SetRange(min int, max int) {
	if min > max {
		min, max = max, min
	}
	p.ranged = true
	p.min = min
	p.max = max

	if v := p.value.Load(); v != nil {
		p.value.Store(p.clamp(v.(int)))
	}
}

func (p *Int) clamp(v int) int {
	if !p.ranged {
		return v
	}
	return min(max(v, p.min), p.max)
}

// Set new value to Int type. The value can be an int or a string. If a range
// has been set with SetRange() the strings "MIN" and "MAX" (case insensitive)
// can also be used.
func (p *Int) Set(v Value) error {
	var n int

	switch v := v.(type) {
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case string:
		s := strings.TrimSpace(v)
		switch {
		case p.ranged && strings.EqualFold(s, "min"):
			n = p.min
		case p.ranged && strings.EqualFold(s, "max"):
			n = p.max
		default:
			var err error
			n, err = strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
			}
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}

	return p.store(p.clamp(n))
}

// Get returns the raw pref value. An Int that has never been set has the
// value zero, clamped to the range.
func (p *Int) Get() Value {
	return p.clamp(p.load(0))
}

// Reset sets the int value to zero, or to the nearest limit of the range.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Generic is a preference whose value lives somewhere other than the
// preference itself. The value is read and written through the functions given
// to NewGeneric(), always as a string.
//
// Access to the value is serialised with a mutex.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set the value. The value is formatted with the %v verb before it is passed
// to the set function.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get the value from the get function.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
