// Package seat identifies the four positions at a Hearts table.
package seat

import "fmt"

// Count 座位数
const Count = 4

// Seat 座位号，0-3 顺时针
type Seat int

// All 按顺序列出全部座位
var All = [Count]Seat{0, 1, 2, 3}

// New validates n and returns it as a Seat.
func New(n int) (Seat, error) {
	if n < 0 || n >= Count {
		return 0, fmt.Errorf("seat %d out of range 0-%d", n, Count-1)
	}
	return Seat(n), nil
}

// Wrap maps any integer onto a seat (mod 4, always non-negative).
func Wrap(n int) Seat {
	return Seat(((n % Count) + Count) % Count)
}

// Valid reports whether s is within 0-3.
func (s Seat) Valid() bool {
	return s >= 0 && s < Count
}

// Next returns the seat to the left (clockwise).
func (s Seat) Next() Seat {
	return s.Offset(1)
}

// Offset returns the seat n positions clockwise from s.
func (s Seat) Offset(n int) Seat {
	return Wrap(int(s) + n)
}

func (s Seat) String() string {
	return fmt.Sprintf("P%d", int(s))
}
