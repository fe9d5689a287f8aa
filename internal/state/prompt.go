package state

// PromptPurpose says what a submitted prompt is used for.
type PromptPurpose int

const (
	PromptSearch PromptPurpose = iota
	PromptRename
)

// Prompt is a single-line text editor shown on the status line.
type Prompt struct {
	Purpose PromptPurpose
	Label   string
	Target  string // entry being renamed
	Buffer  []rune
	Cursor  int
}

func newPrompt(purpose PromptPurpose, label, initial string) *Prompt {
	buf := []rune(initial)
	return &Prompt{
		Purpose: purpose,
		Label:   label,
		Buffer:  buf,
		Cursor:  len(buf),
	}
}

// Text returns the current input.
func (p *Prompt) Text() string {
	return string(p.Buffer)
}

func (p *Prompt) insert(r rune) {
	p.Buffer = append(p.Buffer, 0)
	copy(p.Buffer[p.Cursor+1:], p.Buffer[p.Cursor:])
	p.Buffer[p.Cursor] = r
	p.Cursor++
}

func (p *Prompt) backspace() {
	if p.Cursor == 0 {
		return
	}
	p.Buffer = append(p.Buffer[:p.Cursor-1], p.Buffer[p.Cursor:]...)
	p.Cursor--
}

func (p *Prompt) deleteForward() {
	if p.Cursor >= len(p.Buffer) {
		return
	}
	p.Buffer = append(p.Buffer[:p.Cursor], p.Buffer[p.Cursor+1:]...)
}

func (p *Prompt) move(direction string) {
	switch direction {
	case "left":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "right":
		if p.Cursor < len(p.Buffer) {
			p.Cursor++
		}
	case "home":
		p.Cursor = 0
	case "end":
		p.Cursor = len(p.Buffer)
	}
}

func (p *Prompt) clear() {
	p.Buffer = p.Buffer[:0]
	p.Cursor = 0
}
