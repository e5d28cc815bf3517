package pricefeed_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evandrarf/cryptolearn-be/internal/pkg/pricefeed"
	"github.com/sirupsen/logrus"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type upstream struct {
	*httptest.Server
	hits   atomic.Int32
	status atomic.Int32
	body   atomic.Value
	delay  time.Duration
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	t.Helper()
	u := &upstream{}
	u.status.Store(int32(status))
	u.body.Store(body)
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if u.delay > 0 {
			time.Sleep(u.delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(u.status.Load()))
		io.WriteString(w, u.body.Load().(string))
	}))
	t.Cleanup(u.Close)
	return u
}

func newClient(u *upstream, clock *fakeClock) *pricefeed.Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return pricefeed.NewClient(pricefeed.Config{
		BaseURL:         u.URL,
		Timeout:         2 * time.Second,
		TTL:             5 * time.Minute,
		FailureCooldown: 30 * time.Second,
		Now:             clock.Now,
	}, log)
}

const pricesBody = `{
	"bitcoin": {"usd": 64000.5, "usd_24h_change": -1.25, "usd_market_cap": 1.2e12, "usd_24h_vol": 3.4e10},
	"dogecoin": {"usd": 0.12, "usd_24h_change": 4.5}
}`

func TestGetPrices_ParsesQuotes(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	c := newClient(u, &fakeClock{now: time.Unix(1000, 0)})

	snap, err := c.GetPrices(context.Background(), []string{"Bitcoin", "dogecoin", "bitcoin"})
	if err != nil {
		t.Fatalf("GetPrices: %v", err)
	}
	btc, ok := snap.Quotes["bitcoin"]
	if !ok {
		t.Fatal("expected bitcoin quote")
	}
	if btc.USD != 64000.5 || btc.Change24h != -1.25 || btc.MarketCap != 1.2e12 {
		t.Errorf("unexpected bitcoin quote %+v", btc)
	}
	if snap.Quotes["dogecoin"].Change24h != 4.5 {
		t.Errorf("unexpected dogecoin quote %+v", snap.Quotes["dogecoin"])
	}
	if len(snap.Missing) != 0 {
		t.Errorf("expected no missing coins, got %v", snap.Missing)
	}
}

func TestGetPrices_CachesForTTL(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newClient(u, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.GetPrices(ctx, []string{"bitcoin", "dogecoin"}); err != nil {
			t.Fatalf("GetPrices: %v", err)
		}
		clock.Advance(time.Minute)
	}
	if n := u.hits.Load(); n != 1 {
		t.Fatalf("expected 1 upstream call within TTL, got %d", n)
	}

	// same set in a different order shares the entry
	if _, err := c.GetPrices(ctx, []string{"dogecoin", "bitcoin"}); err != nil {
		t.Fatalf("GetPrices: %v", err)
	}
	if n := u.hits.Load(); n != 1 {
		t.Fatalf("expected reordered ids to hit the cache, got %d calls", n)
	}

	clock.Advance(3 * time.Minute)
	if _, err := c.GetPrices(ctx, []string{"bitcoin", "dogecoin"}); err != nil {
		t.Fatalf("GetPrices: %v", err)
	}
	if n := u.hits.Load(); n != 2 {
		t.Fatalf("expected a refetch after TTL, got %d calls", n)
	}
}

func TestGetPrices_ServerErrorIsUnavailableAndCoolsDown(t *testing.T) {
	u := newUpstream(t, http.StatusInternalServerError, `{"error":"boom"}`)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newClient(u, clock)
	ctx := context.Background()

	if _, err := c.GetPrices(ctx, nil); !errors.Is(err, pricefeed.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	clock.Advance(10 * time.Second)
	if _, err := c.GetPrices(ctx, nil); !errors.Is(err, pricefeed.ErrUnavailable) {
		t.Fatalf("expected cached ErrUnavailable, got %v", err)
	}
	if n := u.hits.Load(); n != 1 {
		t.Fatalf("expected no new call during cooldown, got %d calls", n)
	}

	u.status.Store(http.StatusOK)
	u.body.Store(`{"bitcoin": {"usd": 1}}`)
	clock.Advance(30 * time.Second)
	snap, err := c.GetPrices(ctx, nil)
	if err != nil {
		t.Fatalf("expected recovery after cooldown, got %v", err)
	}
	if n := u.hits.Load(); n != 2 {
		t.Fatalf("expected a retry after cooldown, got %d calls", n)
	}
	if len(snap.Missing) != len(c.DefaultCoins())-1 {
		t.Errorf("expected every default coin but bitcoin missing, got %v", snap.Missing)
	}
}

func TestGetPrices_BadBodiesAreUnavailable(t *testing.T) {
	bodies := map[string]string{
		"malformed":  `{"bitcoin": {"usd": `,
		"empty":      ``,
		"array":      `[1, 2, 3]`,
		"no coins":   `{}`,
		"usd string": `{"bitcoin": {"usd": "lots"}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			u := newUpstream(t, http.StatusOK, body)
			c := newClient(u, &fakeClock{now: time.Unix(1000, 0)})

			if _, err := c.GetPrices(context.Background(), []string{"bitcoin"}); !errors.Is(err, pricefeed.ErrUnavailable) {
				t.Errorf("expected ErrUnavailable, got %v", err)
			}
		})
	}
}

func TestGetPrices_MissingCoinsAreListed(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	c := newClient(u, &fakeClock{now: time.Unix(1000, 0)})

	snap, err := c.GetPrices(context.Background(), []string{"bitcoin", "pepe"})
	if err != nil {
		t.Fatalf("GetPrices: %v", err)
	}
	if len(snap.Missing) != 1 || snap.Missing[0] != "pepe" {
		t.Errorf("expected pepe missing, got %v", snap.Missing)
	}
}

func TestGetPrices_NoValidIDIsUnavailable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	c := newClient(u, &fakeClock{now: time.Unix(1000, 0)})

	snap, err := c.GetPrices(context.Background(), []string{"BTC$", "eth.usd"})
	if !errors.Is(err, pricefeed.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got snapshot %+v and err %v", snap, err)
	}
	if n := u.hits.Load(); n != 0 {
		t.Errorf("expected no upstream call for invalid ids, got %d", n)
	}
}

func TestGetPrices_ContextDeadlineBoundsTheCall(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	u.delay = time.Second

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := pricefeed.NewClient(pricefeed.Config{BaseURL: u.URL, Timeout: 5 * time.Second}, log)

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		start := time.Now()
		_, err := c.GetPrices(ctx, []string{"bitcoin"})
		elapsed := time.Since(start)
		cancel()

		if !errors.Is(err, pricefeed.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
		if elapsed > 800*time.Millisecond {
			t.Fatalf("expected the ctx deadline to cut the call short, took %s", elapsed)
		}
	}
	// a caller's own deadline is not remembered as an upstream failure
	if n := u.hits.Load(); n != 2 {
		t.Errorf("expected 2 upstream calls, got %d", n)
	}
}

func TestSweep_DropsExpiredEntries(t *testing.T) {
	u := newUpstream(t, http.StatusInternalServerError, `{}`)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newClient(u, clock)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, _ = c.GetPrices(ctx, []string{fmt.Sprintf("coin-%d", i)})
	}
	_, _ = c.Trending(ctx)

	if n := c.Sweep(); n != 0 {
		t.Fatalf("expected nothing swept inside the cooldown, got %d", n)
	}

	clock.Advance(24 * time.Hour)
	if n := c.Sweep(); n != 11 {
		t.Fatalf("expected 11 entries swept, got %d", n)
	}
	if n := c.Sweep(); n != 0 {
		t.Errorf("expected an empty cache after the sweep, got %d more", n)
	}
}

func TestGetPrices_TimeoutIsUnavailable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	u.delay = 500 * time.Millisecond

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := pricefeed.NewClient(pricefeed.Config{BaseURL: u.URL, Timeout: 50 * time.Millisecond}, log)

	if _, err := c.GetPrices(context.Background(), []string{"bitcoin"}); !errors.Is(err, pricefeed.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on timeout, got %v", err)
	}
}

func TestGetPrices_TransportErrorIsUnavailable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	url := u.URL
	u.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := pricefeed.NewClient(pricefeed.Config{BaseURL: url, Timeout: time.Second}, log)

	if _, err := c.GetPrices(context.Background(), []string{"bitcoin"}); !errors.Is(err, pricefeed.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for a closed upstream, got %v", err)
	}
}

func TestGetPrices_ReturnsCopies(t *testing.T) {
	u := newUpstream(t, http.StatusOK, pricesBody)
	c := newClient(u, &fakeClock{now: time.Unix(1000, 0)})
	ctx := context.Background()

	first, err := c.GetPrices(ctx, []string{"bitcoin"})
	if err != nil {
		t.Fatalf("GetPrices: %v", err)
	}
	delete(first.Quotes, "bitcoin")

	second, err := c.GetPrices(ctx, []string{"bitcoin"})
	if err != nil {
		t.Fatalf("GetPrices: %v", err)
	}
	if _, ok := second.Quotes["bitcoin"]; !ok {
		t.Error("cached snapshot was mutated by a caller")
	}
}

func TestTrending(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"coins":[
		{"item":{"id":"pepe","name":"Pepe","symbol":"PEPE","market_cap_rank":30,"score":0}},
		{"item":{"name":"no id"}},
		{"item":{"id":"bonk","name":"Bonk","symbol":"BONK","market_cap_rank":60,"score":1}}
	]}`)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := newClient(u, clock)

	coins, err := c.Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if len(coins) != 2 || coins[0].ID != "pepe" || coins[1].MarketCapRank != 60 {
		t.Errorf("unexpected trending coins %+v", coins)
	}

	clock.Advance(9 * time.Minute)
	if _, err := c.Trending(context.Background()); err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if n := u.hits.Load(); n != 1 {
		t.Errorf("expected trending cached for 10 minutes, got %d calls", n)
	}
}

func TestTrending_EmptyListIsUnavailable(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"coins":[]}`)
	c := newClient(u, &fakeClock{now: time.Unix(1000, 0)})

	if _, err := c.Trending(context.Background()); !errors.Is(err, pricefeed.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
