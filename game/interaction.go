package game

// State of the pointer interaction
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Input is one frame of pointer input from the presentation layer
type Input struct {
	Pointer  Point
	Pressed  bool // primary button went down this frame
	Released bool // primary button went up this frame
}

func (g *Game) State() State {
	if g.selected != NoCard {
		return Dragging
	}
	return Idle
}

// Selected is the card being dragged, or NoCard
func (g *Game) Selected() CardID {
	return g.selected
}

// DropTarget is the tail that will receive the dragged run on release, or NoCard
func (g *Game) DropTarget() CardID {
	return g.dropTarget
}

// Update processes one frame: press, then movement, then release
func (g *Game) Update(in Input) error {
	if in.Pressed {
		g.Press(in.Pointer)
	}
	g.Move(in.Pointer)
	if in.Released {
		return g.Release(in.Pointer)
	}
	return nil
}

// hitTest finds the topmost card under pos. Later cards in a chain are drawn
// over earlier ones, so from the first hit we keep following Next while the
// pointer is still inside.
func (g *Game) hitTest(pos Point) CardID {
	cards := g.pool.cards
	for i := range cards {
		if !cards[i].Rect.Contains(pos) {
			continue
		}
		id := CardID(i)
		for next := cards[id].Next; next != NoCard && cards[next].Rect.Contains(pos); next = cards[next].Next {
			id = next
		}
		return id
	}
	return NoCard
}

// Press starts a drag on the card under pos. Face-down cards and heads
// can't be picked up, so pressing them leaves the game idle.
func (g *Game) Press(pos Point) {
	g.pointer = pos
	if g.selected != NoCard {
		return
	}
	g.pressedStock = g.overStock(pos)

	hit := g.hitTest(pos)
	if hit == NoCard || !g.pool.cards[hit].Playable() {
		return
	}
	g.selected = hit
}

// Move follows the pointer. While dragging, the selected card and everything
// linked after it move together, and the stack tails under the pointer are
// highlighted according to whether the run may be dropped there.
func (g *Game) Move(pos Point) {
	delta := pos.Sub(g.pointer)
	g.pointer = pos
	if g.selected == NoCard {
		return
	}

	for id := g.selected; id != NoCard; id = g.pool.cards[id].Next {
		g.pool.cards[id].Rect = g.pool.cards[id].Rect.Translate(delta)
	}

	g.hover(g.tableau[:], Tableau)
	g.hover(g.foundations[:], Foundation)
}

func (g *Game) hover(heads []CardID, group Group) {
	dragged := g.pool.cards[g.selected]
	for _, head := range heads {
		tail := g.pool.FindTail(head)
		if g.pool.Trailing(g.selected, tail) {
			continue
		}

		t := &g.pool.cards[tail]
		if !t.Rect.Contains(g.pointer) {
			t.Highlight = NoHighlight
			if g.dropTarget == tail {
				g.dropTarget = NoCard
			}
			continue
		}

		if g.rules.CanDrop(group, *t, dragged) {
			t.Highlight = DropOk
			g.dropTarget = tail
		} else {
			t.Highlight = DropInvalid
		}
	}
}

// Release ends a drag, committing it if a drop target is pending and
// snapping the run back otherwise. With nothing selected, releasing over
// the stock draws a card.
func (g *Game) Release(pos Point) error {
	g.pointer = pos
	if g.selected == NoCard {
		return g.releaseIdle(pos)
	}
	defer g.endDrag()

	selected := g.selected
	parent := g.pool.cards[selected].Prev
	source, err := g.pool.FindHead(selected)
	if err != nil {
		return err
	}

	if g.dropTarget != NoCard {
		if err := g.pool.AppendToEnd(g.dropTarget, selected); err != nil {
			return err
		}
		if parent != NoCard && g.pool.cards[parent].Kind == Normal {
			g.pool.cards[parent].Visibility = FaceUp
		}
		g.moves++
	}

	if err := g.layout.ResetPositions(g.pool, selected); err != nil {
		return err
	}
	return g.layout.ResetPositions(g.pool, source)
}

func (g *Game) endDrag() {
	g.selected = NoCard
	g.dropTarget = NoCard
	for i := range g.pool.cards {
		g.pool.cards[i].Highlight = NoHighlight
	}
}

func (g *Game) overStock(pos Point) bool {
	tail := g.pool.FindTail(g.stock)
	return g.pool.cards[tail].Rect.Contains(pos)
}

// releaseIdle draws only when both the press and the release hit the stock
func (g *Game) releaseIdle(pos Point) error {
	pressed := g.pressedStock
	g.pressedStock = false
	if !pressed || !g.overStock(pos) {
		return nil
	}
	return g.Draw()
}

// Draw turns the stock's top card onto the waste. Whatever sat on the waste
// goes back under the stock face down first. With the stock empty, the
// waste is returned to it instead.
func (g *Game) Draw() error {
	tail := g.pool.FindTail(g.stock)
	if tail == g.stock {
		return g.recycleWaste()
	}

	if front := g.pool.cards[g.waste].Next; front != NoCard {
		g.turnRun(front, FaceDown)
		if err := g.pool.InsertBehind(g.stock, front); err != nil {
			return err
		}
	}

	if err := g.pool.AppendToEnd(g.waste, tail); err != nil {
		return err
	}
	g.pool.cards[tail].Visibility = FaceUp
	g.moves++

	return g.resetPiles()
}

func (g *Game) recycleWaste() error {
	front := g.pool.cards[g.waste].Next
	if front == NoCard {
		return nil
	}
	g.turnRun(front, FaceDown)
	if err := g.pool.InsertBehind(g.stock, front); err != nil {
		return err
	}
	return g.resetPiles()
}

func (g *Game) turnRun(from CardID, v Visibility) {
	for id := from; id != NoCard; id = g.pool.cards[id].Next {
		g.pool.cards[id].Visibility = v
	}
}

func (g *Game) resetPiles() error {
	if err := g.layout.ResetPositions(g.pool, g.stock); err != nil {
		return err
	}
	return g.layout.ResetPositions(g.pool, g.waste)
}
