package main

// messageChange records a manual message edit on one panel.
type messageChange struct {
	OldPinned  bool
	OldMessage string
	NewPinned  bool
	NewMessage string
}

func (m *model) recordMessage(p *panel, pinned bool, message string) {
	change := messageChange{
		OldPinned:  p.pinned,
		OldMessage: p.message,
		NewPinned:  pinned,
		NewMessage: message,
	}
	p.undoStack = append(p.undoStack, change)
	p.redoStack = p.redoStack[:0]
	p.pinned = pinned
	p.message = message
}

func (m *model) undo() bool {
	p := m.selectedPanel()
	if p == nil || len(p.undoStack) == 0 {
		return false
	}

	lastIndex := len(p.undoStack) - 1
	change := p.undoStack[lastIndex]
	p.undoStack = p.undoStack[:lastIndex]

	p.pinned = change.OldPinned
	p.message = change.OldMessage

	p.redoStack = append(p.redoStack, change)
	return true
}

func (m *model) redo() bool {
	p := m.selectedPanel()
	if p == nil || len(p.redoStack) == 0 {
		return false
	}

	lastIndex := len(p.redoStack) - 1
	change := p.redoStack[lastIndex]
	p.redoStack = p.redoStack[:lastIndex]

	p.pinned = change.NewPinned
	p.message = change.NewMessage

	p.undoStack = append(p.undoStack, change)
	return true
}
