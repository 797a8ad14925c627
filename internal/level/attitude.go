// Package level computes where to put leveling ramps under a four-wheeled
// vehicle so that it comes to rest as close to level as the ramps allow.
//
// Pitch is positive nose up, bank is positive right side low. Both are in
// degrees.
package level

import (
	"fmt"
	"math"
)

// Wheel indexes a wheel position in a Ramps vector.
type Wheel int

const (
	FrontLeft Wheel = iota
	FrontRight
	RearLeft
	RearRight
)

// NumWheels is the number of wheel positions a vehicle has.
const NumWheels = 4

func (w Wheel) String() string {
	switch w {
	case FrontLeft:
		return "FL"
	case FrontRight:
		return "FR"
	case RearLeft:
		return "RL"
	case RearRight:
		return "RR"
	default:
		return fmt.Sprintf("Wheel(%d)", int(w))
	}
}

// Ramps holds the fraction (0..1) of a full ramp placed under each wheel.
type Ramps [NumWheels]float64

// Used counts wheels with a nonzero ramp fraction.
func (r Ramps) Used() int {
	n := 0
	for _, v := range r {
		if v != 0 {
			n++
		}
	}
	return n
}

// InRange reports whether every fraction lies in [0, 1].
func (r Ramps) InRange() bool {
	for _, v := range r {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// pitchFactor: front wheels lift the nose, rear wheels drop it.
func (r Ramps) pitchFactor() float64 {
	return r[FrontLeft] + r[FrontRight] - r[RearLeft] - r[RearRight]
}

// bankFactor: left wheels lower the right side, right wheels raise it.
func (r Ramps) bankFactor() float64 {
	return r[FrontLeft] - r[FrontRight] + r[RearLeft] - r[RearRight]
}

// cancelDiagonal removes ramp height shared by two diagonally opposite
// wheels. Equal lift on a diagonal pair leaves pitch and bank unchanged.
func (r *Ramps) cancelDiagonal(a, b Wheel) {
	if r[a] == 0 || r[b] == 0 {
		return
	}
	m := math.Min(r[a], r[b])
	r[a] = stabilize(r[a] - m)
	r[b] = stabilize(r[b] - m)
}

// Attitude is one candidate resting state of the vehicle. Build it with
// NewAttitude so that Total stays consistent with Pitch and Bank.
type Attitude struct {
	Ramps Ramps   `json:"ramps"`
	Pitch float64 `json:"pitch"`
	Bank  float64 `json:"bank"`
	Total float64 `json:"total"`
}

// NewAttitude returns the attitude for the given ramps and resulting angles.
// Ramp fractions are not validated here.
func NewAttitude(ramps Ramps, pitch, bank float64) Attitude {
	return Attitude{
		Ramps: ramps,
		Pitch: pitch,
		Bank:  bank,
		Total: math.Hypot(pitch, bank),
	}
}

// NoRamps is the no-ramp attitude for the given pitch and bank.
func NoRamps(pitch, bank float64) Attitude {
	return NewAttitude(Ramps{}, pitch, bank)
}

// Equal compares ramps, pitch and bank. Total is derived and not compared.
func (a Attitude) Equal(b Attitude) bool {
	return a.Ramps == b.Ramps && a.Pitch == b.Pitch && a.Bank == b.Bank
}

// Less orders attitudes by combined tilt only.
func (a Attitude) Less(b Attitude) bool {
	return a.Total < b.Total
}
