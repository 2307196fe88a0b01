package core

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
)

var diceRegex = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

const maxDice = 100

// rollDice evaluates a simple NdM(+/-K) formula and returns the individual
// rolls and the total including the modifier.
func rollDice(formula string) ([]int, int, error) {
	parts := diceRegex.FindStringSubmatch(formula)
	if parts == nil {
		return nil, 0, fmt.Errorf("invalid dice formula %q", formula)
	}

	count := 1
	if parts[1] != "" {
		var err error
		count, err = strconv.Atoi(parts[1])
		if err != nil || count < 1 || count > maxDice {
			return nil, 0, fmt.Errorf("invalid dice count %q", parts[1])
		}
	}

	sides, err := strconv.Atoi(parts[2])
	if err != nil || sides < 2 {
		return nil, 0, fmt.Errorf("invalid die size %q", parts[2])
	}

	modifier := 0
	if parts[3] != "" {
		modifier, err = strconv.Atoi(parts[3])
		if err != nil {
			return nil, 0, fmt.Errorf("invalid modifier %q", parts[3])
		}
	}

	rolls := make([]int, count)
	total := modifier
	for i := range rolls {
		rolls[i] = rand.Intn(sides) + 1
		total += rolls[i]
	}
	return rolls, total, nil
}
