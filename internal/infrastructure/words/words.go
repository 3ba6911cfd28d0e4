// Package words supplies the six-letter words handed out as qualification authwords.
package words

import (
	"math/rand"
)

var sixLetter = []string{
	"anchor", "banana", "beacon", "bishop", "bottle", "bridge", "bucket", "butter",
	"candle", "canyon", "carpet", "castle", "cellar", "cherry", "circle", "cobalt",
	"copper", "cotton", "dragon", "empire", "engine", "falcon", "fennel", "forest",
	"garden", "ginger", "glider", "goblet", "hammer", "harbor", "helmet", "hollow",
	"island", "jacket", "jungle", "kettle", "ladder", "lagoon", "lentil", "lizard",
	"magnet", "marble", "meadow", "mirror", "monkey", "muffin", "napkin", "nickel",
	"orange", "oyster", "paddle", "parrot", "pebble", "pepper", "pillow", "planet",
	"pocket", "puzzle", "rabbit", "ribbon", "rocket", "saddle", "salmon", "silver",
	"spider", "sponge", "tablet", "teapot", "tunnel", "turtle", "velvet", "violet",
	"walnut", "window", "winter", "wizard", "yogurt", "zipper",
}

type Source struct {
	words []string
	intn  func(n int) int
}

// NewSource picks from list, or from the built-in list when list is empty.
func NewSource(list []string) *Source {
	if len(list) == 0 {
		list = sixLetter
	}
	return &Source{words: append([]string(nil), list...), intn: rand.Intn}
}

func (s *Source) Word() string {
	return s.words[s.intn(len(s.words))]
}
