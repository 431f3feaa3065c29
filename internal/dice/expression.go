package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed dice string such as "2d6+3". A flat number parses
// with Count 0.
type Expression struct {
	Count int
	Sides int
	Bonus int
}

// Parse reads "NdS", "dS", "NdS+B", "NdS-B" or a flat integer. Spaces are
// ignored.
func Parse(s string) (Expression, error) {
	expr := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if expr == "" {
		return Expression{}, fmt.Errorf("empty dice expression")
	}

	var e Expression
	dice := expr
	if i := strings.LastIndexAny(expr, "+-"); i > 0 {
		n, err := strconv.Atoi(expr[i:])
		if err != nil {
			return Expression{}, fmt.Errorf("invalid dice bonus in %q", s)
		}
		e.Bonus = n
		dice = expr[:i]
	}

	parts := strings.Split(dice, "d")
	if len(parts) != 2 {
		flat, err := strconv.Atoi(dice)
		if err != nil {
			return Expression{}, fmt.Errorf("invalid dice expression %q", s)
		}
		e.Bonus += flat
		return e, nil
	}

	e.Count = 1
	if parts[0] != "" {
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return Expression{}, fmt.Errorf("invalid dice count in %q", s)
		}
		e.Count = n
	}

	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides <= 0 {
		return Expression{}, fmt.Errorf("invalid dice size in %q", s)
	}
	e.Sides = sides

	return e, nil
}

// Average is the floored mean of the expression, never below 0
func (e Expression) Average() int {
	return max(0, e.Count*(e.Sides+1)/2+e.Bonus)
}

// Roll rolls the expression with r
func (e Expression) Roll(r Roller) (*RollResult, error) {
	if e.Count == 0 {
		return &RollResult{Total: e.Bonus, Rolls: []int{}, Bonus: e.Bonus}, nil
	}
	return r.Roll(e.Count, e.Sides, e.Bonus)
}

func (e Expression) String() string {
	switch {
	case e.Count == 0:
		return strconv.Itoa(e.Bonus)
	case e.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Bonus)
	case e.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", e.Count, e.Sides, e.Bonus)
	}
	return fmt.Sprintf("%dd%d", e.Count, e.Sides)
}
