package astiavstream

import (
	"context"
	"sync"

	"github.com/asticode/go-astiav"
)

var classers = newClasserPool()

// Logs emitted by a classer are written with the context it has been registered with
type classerPool struct {
	m sync.Mutex
	p map[astiav.Classer]context.Context
}

func newClasserPool() *classerPool {
	return &classerPool{p: make(map[astiav.Classer]context.Context)}
}

func (p *classerPool) set(c astiav.Classer, ctx context.Context) {
	p.m.Lock()
	defer p.m.Unlock()
	p.p[c] = ctx
}

func (p *classerPool) del(c astiav.Classer) {
	p.m.Lock()
	defer p.m.Unlock()
	delete(p.p, c)
}

func (p *classerPool) get(c astiav.Classer) (context.Context, bool) {
	p.m.Lock()
	defer p.m.Unlock()
	ctx, ok := p.p[c]
	return ctx, ok
}
