package application

// reveal is the cooperative typing effect for dialogue text. Each reveal has a
// generation; ticks carrying an older generation are ignored, so at most one
// reveal is ever live.
type reveal struct {
	runes      []rune
	pos        int
	generation uint64
	active     bool
}

func (r *reveal) full() string {
	return string(r.runes)
}

func (r *reveal) prefix() string {
	return string(r.runes[:r.pos])
}

// step advances one character and reports whether more remain.
func (r *reveal) step() bool {
	r.pos++
	if r.pos >= len(r.runes) {
		r.pos = len(r.runes)
		r.active = false
		return false
	}
	return true
}

func (r *reveal) finish() {
	r.pos = len(r.runes)
	r.active = false
}
