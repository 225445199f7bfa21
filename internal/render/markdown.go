package render

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererPool reuses glamour renderers per option set. TermRenderer is not
// safe for concurrent Render calls, so each caller checks one out.
type rendererPool struct {
	mu    sync.RWMutex
	pools map[string]*sync.Pool
}

var globalPool = &rendererPool{
	pools: make(map[string]*sync.Pool),
}

func cacheKey(opts Options) string {
	return fmt.Sprintf("%s:%d:%t:%t",
		opts.Style,
		opts.Width,
		opts.EnableEmoji,
		opts.PreserveNewLines,
	)
}

func (p *rendererPool) getPool(opts Options) *sync.Pool {
	key := cacheKey(opts)

	p.mu.RLock()
	if pool, ok := p.pools[key]; ok {
		p.mu.RUnlock()
		return pool
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok := p.pools[key]; ok {
		return pool
	}

	pool := &sync.Pool{
		New: func() interface{} {
			renderer, err := createRenderer(opts)
			if err != nil {
				return nil
			}
			return renderer
		},
	}
	p.pools[key] = pool
	return pool
}

func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	renderer := p.getPool(opts).Get()
	if renderer == nil {
		return createRenderer(opts)
	}
	return renderer.(*glamour.TermRenderer), nil
}

func (p *rendererPool) put(opts Options, renderer *glamour.TermRenderer) {
	if renderer == nil {
		return
	}
	p.getPool(opts).Put(renderer)
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// MarkdownWithWidth renders with default options at the given width.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

// ClearCache drops all pooled renderers (useful for testing).
func ClearCache() {
	globalPool.mu.Lock()
	globalPool.pools = make(map[string]*sync.Pool)
	globalPool.mu.Unlock()
}
