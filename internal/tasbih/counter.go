// Package tasbih keeps a per-user dhikr counter that cycles through the
// standard phrases.
package tasbih

import (
	"errors"
	"fmt"
)

// Phrases are cycled in this order when a round completes.
var Phrases = []string{"SubhanAllah", "Alhamdulillah", "Allahu Akbar", "La ilaha illallah"}

const DefaultTarget = 33

var ErrInvalidTarget = errors.New("target must be positive")

type Counter struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
	Target int    `json:"target"`
}

func NewCounter() Counter {
	return Counter{Phrase: Phrases[0], Target: DefaultTarget}
}

// Increment adds one recitation. Once the target is reached the next tap
// starts a new round at 1 on the next phrase.
func (c *Counter) Increment() {
	if c.Target <= 0 {
		c.Target = DefaultTarget
	}
	if c.Count < c.Target {
		c.Count++
		return
	}
	c.Count = 1
	c.Phrase = nextPhrase(c.Phrase)
}

func (c *Counter) Reset() {
	c.Count = 0
}

func (c *Counter) SetTarget(target int) error {
	if target <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	c.Target = target
	c.Count = 0
	return nil
}

func nextPhrase(current string) string {
	for i, p := range Phrases {
		if p == current {
			return Phrases[(i+1)%len(Phrases)]
		}
	}
	return Phrases[0]
}
