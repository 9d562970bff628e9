package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProberResolvesSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok.jpg" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cards := []Card{{
		Name: "A", SignatureDish: "麻婆豆腐",
		Images: []ImageSlot{
			{URL: srv.URL + "/ok.jpg", State: ImageLoading},
			{URL: srv.URL + "/missing.jpg", State: ImageLoading},
		},
	}}

	NewProber(2 * time.Second).Resolve(context.Background(), cards)

	if got := cards[0].Images[0].State; got != ImageOK {
		t.Errorf("reachable image state = %v, want ok", got)
	}
	if got := cards[0].Images[1].State; got != ImageFailed {
		t.Errorf("missing image state = %v, want failed", got)
	}
}

func TestProberMarksUnreachableFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/x.jpg"
	srv.Close()

	cards := []Card{{Images: []ImageSlot{{URL: url, State: ImageLoading}}}}
	NewProber(time.Second).Resolve(context.Background(), cards)

	if got := cards[0].Images[0].State; got != ImageFailed {
		t.Errorf("unreachable image state = %v, want failed", got)
	}
}

func TestProberSkipsResolvedSlots(t *testing.T) {
	cards := []Card{{Images: []ImageSlot{{URL: "https://img/1.jpg", State: ImageOK}}}}
	NewProber(time.Second).Resolve(context.Background(), cards)
	if got := cards[0].Images[0].State; got != ImageOK {
		t.Errorf("already-resolved slot must not change, got %v", got)
	}
}
