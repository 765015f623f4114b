// Package quote holds the rotating quotes shown under the greeting.
package quote

import "strings"

// Defaults is the builtin quote list.
var Defaults = []string{
	`"Simplicity is the ultimate sophistication." - Leonardo da Vinci`,
	`"Know yourself and you will know the universe and the gods." - Socrates`,
	`"There are no facts, only interpretations." - Friedrich Nietzsche`,
	`"You have power over your mind, not outside events. Realize this, and you will find strength." - Marcus Aurelius`,
	`"We suffer more often in imagination than in reality." - Seneca`,
	`"I am a cage, in search of a bird." - Franz Kafka`,
	`"He who has a why to live for can bear almost any how." - Friedrich Nietzsche`,
	`"In the midst of chaos, there is also opportunity." - Sun Tzu`,
	`"It's not what happens to you, but how you react to it that matters." - Epictetus`,
	`"The impediment to action advances action. What stands in the way becomes the way." - Marcus Aurelius`,
}

// Parse splits text into one quote per non-blank line.
func Parse(text string) []string {
	var quotes []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			quotes = append(quotes, line)
		}
	}
	return quotes
}

// Rotation cycles through a quote list. The zero value shows nothing.
type Rotation struct {
	quotes []string
	index  int
}

// NewRotation starts at start, taken modulo the list length. An empty list
// falls back to Defaults.
func NewRotation(quotes []string, start int) Rotation {
	if len(quotes) == 0 {
		quotes = Defaults
	}
	kept := make([]string, len(quotes))
	copy(kept, quotes)
	if start < 0 {
		start = -start
	}
	return Rotation{quotes: kept, index: start % len(kept)}
}

// Current returns the quote on display, or "" for the zero Rotation.
func (r Rotation) Current() string {
	if len(r.quotes) == 0 {
		return ""
	}
	return r.quotes[r.index]
}

// Next advances to the following quote, wrapping at the end.
func (r Rotation) Next() Rotation {
	if len(r.quotes) == 0 {
		return r
	}
	r.index = (r.index + 1) % len(r.quotes)
	return r
}

// Len returns how many quotes rotate.
func (r Rotation) Len() int { return len(r.quotes) }
