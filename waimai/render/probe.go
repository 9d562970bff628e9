// waimai/render/probe.go
package render

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Prober resolves image slot states by checking whether each URL is
// actually fetchable, the terminal counterpart of an <img> onError handler.
type Prober struct {
	http *resty.Client
}

func NewProber(timeout time.Duration) *Prober {
	return &Prober{http: resty.New().SetTimeout(timeout)}
}

// Resolve probes every loading slot in the given cards concurrently and
// marks it ok or failed in place. Slots already resolved are left alone.
func (p *Prober) Resolve(ctx context.Context, cards []Card) {
	var wg sync.WaitGroup
	for i := range cards {
		for j := range cards[i].Images {
			slot := &cards[i].Images[j]
			if slot.State != ImageLoading {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				slot.State = p.probe(ctx, slot.URL)
			}()
		}
	}
	wg.Wait()
}

func (p *Prober) probe(ctx context.Context, url string) ImageState {
	resp, err := p.http.R().SetContext(ctx).Head(url)
	if err != nil || resp.IsError() {
		return ImageFailed
	}
	return ImageOK
}
