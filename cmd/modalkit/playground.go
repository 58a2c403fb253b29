package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/modalkit/modalkit/internal/buffer"
	"github.com/modalkit/modalkit/internal/config"
	"github.com/modalkit/modalkit/internal/engine"
	"github.com/modalkit/modalkit/internal/input/key"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/notify"
)

// errQuit signals a normal exit from the event loop.
var errQuit = errors.New("quit")

const sampleText = `The quick brown fox jumps over the lazy dog.
Try w, b, e to move by word and f, t to jump to a character.
Operators compose: dw, ci", yap, 2d3w all work here.
(Brackets {and "quotes"} make good text-object targets.)

Press i to insert, jk to leave insert, Ctrl+Q to quit.`

// playground owns the screen, the buffer, and the engine, and runs the
// blocking event loop.
type playground struct {
	screen tcell.Screen
	eng    *engine.Engine
	buf    *buffer.MemoryBuffer
	modes  *notify.Notifier
	store  *config.Store
}

func newPlayground(opts options) (*playground, error) {
	text := sampleText
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", opts.File, err)
		}
		text = string(data)
	}

	buf := buffer.NewMemoryBuffer(text)

	eopts := []engine.Option{engine.WithClipboard(systemClipboard{})}

	var store *config.Store
	if opts.ConfigPath != "" {
		var err error
		store, err = config.NewStore(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg := store.Current()
		eopts = append(eopts, engine.WithEscapeSequence(cfg.Escape.Sequence, cfg.Escape.Timeout))
	}

	eng, err := engine.New(buf, eopts...)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	pg := &playground{
		screen: screen,
		eng:    eng,
		buf:    buf,
		modes:  notify.New(),
		store:  store,
	}

	// Mode changes arrive on the notifier goroutine; bounce them onto
	// the tcell event queue so the loop redraws the status line.
	pg.modes.Attach(notify.SinkFunc(func(m mode.Mode) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(m))
	}))
	eng.Modes().OnChange(pg.modes.Callback())

	// Config reloads likewise: the observer runs on the watcher
	// goroutine, the engine only on the loop.
	if store != nil {
		store.Subscribe(func(cfg config.Config) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(cfg))
		})
		if err := store.Watch(); err != nil {
			pg.shutdown()
			return nil, err
		}
	}

	return pg, nil
}

func (p *playground) shutdown() {
	p.screen.Fini()
	p.modes.Close()
	if p.store != nil {
		p.store.Close()
	}
}

// loop polls the screen for events until quit.
func (p *playground) loop() error {
	for {
		p.render()

		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return errQuit
			}
			p.handleKey(ev)
		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(config.Config); ok {
				p.eng.ApplyConfig(cfg)
			}
		case *tcell.EventResize:
			p.screen.Sync()
		case nil:
			return nil
		}
	}
}

// handleKey feeds the event through the engine and, when the engine does
// not consume it, applies default insert-mode editing to the buffer.
func (p *playground) handleKey(ev *tcell.EventKey) {
	kev, ok := translateKey(ev)
	if !ok {
		return
	}
	if p.eng.HandleKey(kev) {
		return
	}
	if p.eng.Mode() != mode.Insert {
		return
	}

	switch kev.Key {
	case key.KeyRune:
		_ = p.buf.InsertText(string(kev.Rune))
	case key.KeyEnter:
		_ = p.buf.InsertText("\n")
	case key.KeyTab:
		_ = p.buf.InsertText("\t")
	case key.KeyBackspace:
		_ = p.buf.DeleteBackward()
	}
}

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Reverse(true).Bold(true)
)

func (p *playground) render() {
	p.screen.Clear()

	text, err := p.buf.Text()
	if err != nil {
		p.drawStatus("buffer unavailable")
		p.screen.Show()
		return
	}
	cursor, _ := p.buf.CursorOffset()
	sel, _ := p.buf.SelectedRange()

	width, height := p.screen.Size()
	row, col := 0, 0
	cursorRow, cursorCol := 0, 0

	for i, r := range text {
		if i == cursor {
			cursorRow, cursorCol = row, col
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		if row >= height-1 || col >= width {
			continue
		}
		style := styleText
		if sel.Len > 0 && i >= sel.Start && i < sel.End() {
			style = styleSelection
		}
		p.screen.SetContent(col, row, r, nil, style)
		col++
	}
	if cursor >= len(text) {
		cursorRow, cursorCol = row, col
	}

	p.drawStatus(p.statusLine())
	if p.eng.Mode() == mode.Insert {
		p.screen.ShowCursor(cursorCol, cursorRow)
	} else {
		p.screen.HideCursor()
		if cursorRow < height-1 && cursorCol < width {
			r := ' '
			if cursor < len(text) && text[cursor] != '\n' {
				r, _ = utf8.DecodeRuneInString(text[cursor:])
			}
			p.screen.SetContent(cursorCol, cursorRow, r, nil, styleSelection)
		}
	}
	p.screen.Show()
}

func (p *playground) statusLine() string {
	return fmt.Sprintf(" %s  (Ctrl+Q to quit)", p.eng.Mode().DisplayName())
}

func (p *playground) drawStatus(line string) {
	width, height := p.screen.Size()
	y := height - 1
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		p.screen.SetContent(x, y, r, nil, styleStatus)
	}
}
