package macro

import "strconv"

// nextGensym mints the fresh id `s#gN` for introduced symbol s (spec
// §4.3.1, §4.3.6), advancing the monotone counter.
func (e *Expander) nextGensym(s string) string {
	id := s + "#g" + strconv.Itoa(e.gensymCounter)
	e.gensymCounter++
	return id
}
