package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererPool keeps idle glamour renderers per Options value. A
// TermRenderer cannot serve two Render calls at once, so each caller takes
// one out and hands it back.
type rendererPool struct {
	mu   sync.Mutex
	idle map[Options][]*glamour.TermRenderer
}

var globalPool = newRendererPool()

func newRendererPool() *rendererPool {
	return &rendererPool{idle: make(map[Options][]*glamour.TermRenderer)}
}

// get returns an idle renderer for opts, building one when none is left.
func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	p.mu.Lock()
	if free := p.idle[opts]; len(free) > 0 {
		r := free[len(free)-1]
		p.idle[opts] = free[:len(free)-1]
		p.mu.Unlock()
		return r, nil
	}
	p.mu.Unlock()

	return createRenderer(opts)
}

func (p *rendererPool) put(opts Options, r *glamour.TermRenderer) {
	if r == nil {
		return
	}
	p.mu.Lock()
	p.idle[opts] = append(p.idle[opts], r)
	p.mu.Unlock()
}

// configs returns how many distinct option sets have idle renderers.
func (p *rendererPool) configs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, free := range p.idle {
		if len(free) > 0 {
			n++
		}
	}
	return n
}

// idleFor returns how many renderers for opts are waiting to be reused.
func (p *rendererPool) idleFor(opts Options) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle[opts])
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	ro := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}
	if opts.EnableEmoji {
		ro = append(ro, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		ro = append(ro, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(ro...)
}
