package core

// available reports whether a tool still has uses left.
func (r *Run) available(t Tool) bool {
	return r.usage[t] < r.params.Tools.Limit(t)
}

// Undo returns the most recent pick still waiting in the tray to the board.
// It is the only move accepted after a loss.
func (r *Run) Undo() error {
	if r.status != StatusPlaying && r.status != StatusLost {
		return ErrNotPlaying
	}
	if !r.available(ToolUndo) {
		return ErrToolExhausted
	}
	if len(r.tray) == 0 {
		return ErrNothingToUndo
	}

	// Picks consumed by a match can't be reverted; walk back to the latest
	// one whose tile is still in the tray.
	h := -1
	for k := len(r.history) - 1; k >= 0; k-- {
		t := r.tiles[r.index[r.history[k].TileID]]
		if t.InTray() {
			h = k
			break
		}
	}
	if h < 0 {
		return ErrNothingToUndo
	}

	move := r.history[h]
	i := r.index[move.TileID]

	kept := make([]int, 0, len(r.tray))
	for _, id := range r.tray {
		if id != move.TileID {
			kept = append(kept, id)
		}
	}
	r.tray = kept
	r.reindexTray()

	r.tiles[i].Removed = false
	r.tiles[i].SlotIndex = NoSlot
	r.tiles[i].Pos = move.From
	r.history = append(r.history[:h], r.history[h+1:]...)

	r.usage[ToolUndo]++
	r.refresh()
	r.settle()
	return nil
}

// Shuffle permutes the types of the on-board tiles, keeping positions.
// Occlusion is unaffected since geometry never moves.
func (r *Run) Shuffle() error {
	if r.status != StatusPlaying {
		return ErrNotPlaying
	}
	if !r.available(ToolShuffle) {
		return ErrToolExhausted
	}

	idx := make([]int, 0, len(r.tiles))
	for i, t := range r.tiles {
		if t.OnBoard() {
			idx = append(idx, i)
		}
	}
	if len(idx) < 2 {
		return ErrNothingToShuffle
	}

	types := make([]TileType, len(idx))
	for k, i := range idx {
		types[k] = r.tiles[i].Type
	}
	r.rng.shuffle(len(types), func(a, b int) {
		types[a], types[b] = types[b], types[a]
	})
	for k, i := range idx {
		r.tiles[i].Type = types[k]
	}

	r.usage[ToolShuffle]++
	r.refresh()
	return nil
}

// Hint suggests a clickable tile without changing the board. It prefers a
// type the tray already holds twice, then once, then the first clickable
// tile in board order.
func (r *Run) Hint() (int, error) {
	if r.status != StatusPlaying {
		return 0, ErrNotPlaying
	}
	if !r.available(ToolHint) {
		return 0, ErrToolExhausted
	}

	id, ok := r.suggest()
	if !ok {
		return 0, ErrNoHint
	}
	r.usage[ToolHint]++
	return id, nil
}

func (r *Run) suggest() (int, bool) {
	counts := make(map[TileType]int)
	order := make([]TileType, 0, len(r.tray))
	for _, id := range r.tray {
		t := r.tiles[r.index[id]].Type
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	for _, want := range []int{2, 1} {
		for _, t := range order {
			if counts[t] != want {
				continue
			}
			if id, ok := r.firstClickable(t); ok {
				return id, true
			}
		}
	}

	ids := r.ClickableIDs()
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func (r *Run) firstClickable(t TileType) (int, bool) {
	for _, tile := range r.tiles {
		if tile.Clickable && tile.Type == t {
			return tile.ID, true
		}
	}
	return 0, false
}

// Restart discards the run and generates a fresh one for the same level
// with all tool counters reset. An empty seed draws a new one.
func (r *Run) Restart(seed string) (*Run, error) {
	if !r.available(ToolRestart) {
		return nil, ErrToolExhausted
	}
	r.usage[ToolRestart]++
	return NewRun(r.level, seed, r.params)
}
