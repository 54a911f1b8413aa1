package employees

// DeletesAlwaysConfirm is fixed: the stored confirmBeforeDelete preference is
// reported but never turns the prompt off.
const DeletesAlwaysConfirm = true

// DeleteGuard is the confirmation step in front of a delete. It asks every
// time: the "don't ask again" answer is accepted and then forgotten.
type DeleteGuard struct {
	pending int
	open    bool
}

// Request opens the prompt for id, replacing any earlier request.
func (g *DeleteGuard) Request(id int) {
	g.pending = id
	g.open = true
}

func (g *DeleteGuard) Pending() (int, bool) {
	return g.pending, g.open
}

// Confirm closes the prompt and returns the id to delete.
func (g *DeleteGuard) Confirm(dontAskAgain bool) (int, bool) {
	_ = dontAskAgain
	if !g.open {
		return 0, false
	}
	id := g.pending
	g.Cancel()
	return id, true
}

func (g *DeleteGuard) Cancel() {
	g.pending = 0
	g.open = false
}
