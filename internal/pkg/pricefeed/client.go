package pricefeed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
)

// ErrUnavailable is returned for every failed fetch. Callers show a
// "data unavailable" state instead of failing.
var ErrUnavailable = errors.New("price data unavailable")

const trendingKey = "trending"

type Config struct {
	BaseURL         string
	Timeout         time.Duration
	TTL             time.Duration
	TrendingTTL     time.Duration
	FailureCooldown time.Duration
	DefaultCoins    []string
	Now             func() time.Time
}

func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://api.coingecko.com/api/v3",
		Timeout:         10 * time.Second,
		TTL:             5 * time.Minute,
		TrendingTTL:     10 * time.Minute,
		FailureCooldown: 30 * time.Second,
		DefaultCoins: []string{
			"bitcoin", "ethereum", "dogecoin", "shiba-inu", "pepe",
			"floki", "bonk", "chainlink", "cardano", "solana",
		},
	}
}

type Quote struct {
	USD       float64 `json:"usd"`
	Change24h float64 `json:"usd_24h_change"`
	MarketCap float64 `json:"usd_market_cap,omitempty"`
	Volume24h float64 `json:"usd_24h_vol,omitempty"`
}

type Snapshot struct {
	Quotes    map[string]Quote `json:"quotes"`
	Missing   []string         `json:"missing,omitempty"`
	FetchedAt time.Time        `json:"fetched_at"`
}

func (s *Snapshot) clone() *Snapshot {
	out := &Snapshot{
		Quotes:    make(map[string]Quote, len(s.Quotes)),
		Missing:   append([]string(nil), s.Missing...),
		FetchedAt: s.FetchedAt,
	}
	for k, v := range s.Quotes {
		out.Quotes[k] = v
	}
	return out
}

type TrendingCoin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Score         int    `json:"score"`
}

// Client reads a CoinGecko-compatible API. Results, failures included, are
// memoized process-wide; it is safe for concurrent use.
type Client struct {
	cfg      Config
	log      *logrus.Logger
	prices   *cache[*Snapshot]
	trending *cache[[]TrendingCoin]
	group    singleflight.Group
}

func NewClient(cfg Config, log *logrus.Logger) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.TrendingTTL <= 0 {
		cfg.TrendingTTL = def.TrendingTTL
	}
	if cfg.FailureCooldown <= 0 {
		cfg.FailureCooldown = def.FailureCooldown
	}
	if len(cfg.DefaultCoins) == 0 {
		cfg.DefaultCoins = def.DefaultCoins
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = logrus.New()
	}

	return &Client{
		cfg:      cfg,
		log:      log,
		prices:   newCache[*Snapshot](cfg.TTL, cfg.FailureCooldown, cfg.Now),
		trending: newCache[[]TrendingCoin](cfg.TrendingTTL, cfg.FailureCooldown, cfg.Now),
	}
}

func (c *Client) DefaultCoins() []string {
	return append([]string(nil), c.cfg.DefaultCoins...)
}

func validCoinID(id string) bool {
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return id != ""
}

// normalizeCoins lowercases, dedupes and sorts ids so equal requests share a
// cache entry. Ids outside [a-z0-9-] are dropped.
func normalizeCoins(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if !validCoinID(id) || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// GetPrices returns USD quotes for coinIDs, or the configured default coins
// when coinIDs is empty. Any failure matches ErrUnavailable, including a
// non-empty list with no valid id in it.
func (c *Client) GetPrices(ctx context.Context, coinIDs []string) (*Snapshot, error) {
	if len(coinIDs) == 0 {
		coinIDs = c.cfg.DefaultCoins
	}
	ids := normalizeCoins(coinIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no valid coin id in %q", ErrUnavailable, coinIDs)
	}
	key := strings.Join(ids, ",")

	if e, ok := c.prices.get(key); ok {
		if e.err != nil {
			return nil, e.err
		}
		return e.value.clone(), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	v, _, _ := c.group.Do("prices:"+key, func() (interface{}, error) {
		snap, err := c.fetchPrices(ids, c.timeout(ctx))
		if err != nil {
			c.log.WithFields(logrus.Fields{"coins": key}).Warnf("price fetch failed: %v", err)
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		// a caller that ran out of time says nothing about the upstream
		if err == nil || !callerDone(ctx) {
			c.prices.put(key, snap, err)
		}
		return cacheEntry[*Snapshot]{value: snap, err: err}, nil
	})

	res := v.(cacheEntry[*Snapshot])
	if res.err != nil {
		return nil, res.err
	}
	return res.value.clone(), nil
}

// Sweep drops expired cache entries and reports how many were removed.
func (c *Client) Sweep() int {
	return c.prices.sweep() + c.trending.sweep()
}

// timeout is the configured timeout, cut short by the ctx deadline if sooner.
func (c *Client) timeout(ctx context.Context) time.Duration {
	timeout := c.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}

func callerDone(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	deadline, ok := ctx.Deadline()
	return ok && !time.Now().Before(deadline)
}

func (c *Client) get(path string, query url.Values, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	a := fiber.Get(c.cfg.BaseURL + path)
	if len(query) > 0 {
		a.QueryString(query.Encode())
	}
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	a.Timeout(timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code < 200 || code > 299 {
		return nil, fmt.Errorf("upstream status %d", code)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("upstream returned malformed json (%d bytes)", len(body))
	}
	return body, nil
}

func (c *Client) fetchPrices(ids []string, timeout time.Duration) (*Snapshot, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", "usd")
	query.Set("include_24hr_change", "true")
	query.Set("include_market_cap", "true")
	query.Set("include_24hr_vol", "true")

	body, err := c.get("/simple/price", query, timeout)
	if err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, errors.New("upstream body is not an object")
	}

	snap := &Snapshot{
		Quotes:    make(map[string]Quote, len(ids)),
		FetchedAt: c.cfg.Now(),
	}
	for _, id := range ids {
		entry := doc.Get(id)
		usd := entry.Get("usd")
		if !entry.IsObject() || usd.Type != gjson.Number {
			snap.Missing = append(snap.Missing, id)
			continue
		}
		snap.Quotes[id] = Quote{
			USD:       usd.Float(),
			Change24h: entry.Get("usd_24h_change").Float(),
			MarketCap: entry.Get("usd_market_cap").Float(),
			Volume24h: entry.Get("usd_24h_vol").Float(),
		}
	}
	if len(snap.Quotes) == 0 {
		return nil, errors.New("no requested coin in upstream body")
	}
	return snap, nil
}

// Trending returns the upstream trending list. Any failure matches
// ErrUnavailable.
func (c *Client) Trending(ctx context.Context) ([]TrendingCoin, error) {
	if e, ok := c.trending.get(trendingKey); ok {
		if e.err != nil {
			return nil, e.err
		}
		return append([]TrendingCoin(nil), e.value...), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	v, _, _ := c.group.Do(trendingKey, func() (interface{}, error) {
		coins, err := c.fetchTrending(c.timeout(ctx))
		if err != nil {
			c.log.Warnf("trending fetch failed: %v", err)
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if err == nil || !callerDone(ctx) {
			c.trending.put(trendingKey, coins, err)
		}
		return cacheEntry[[]TrendingCoin]{value: coins, err: err}, nil
	})

	res := v.(cacheEntry[[]TrendingCoin])
	if res.err != nil {
		return nil, res.err
	}
	return append([]TrendingCoin(nil), res.value...), nil
}

func (c *Client) fetchTrending(timeout time.Duration) ([]TrendingCoin, error) {
	body, err := c.get("/search/trending", nil, timeout)
	if err != nil {
		return nil, err
	}

	items := gjson.GetBytes(body, "coins")
	if !items.IsArray() {
		return nil, errors.New("upstream body has no coins list")
	}

	var coins []TrendingCoin
	items.ForEach(func(_, v gjson.Result) bool {
		item := v.Get("item")
		id := item.Get("id").String()
		if id == "" {
			return true
		}
		coins = append(coins, TrendingCoin{
			ID:            id,
			Name:          item.Get("name").String(),
			Symbol:        item.Get("symbol").String(),
			MarketCapRank: int(item.Get("market_cap_rank").Int()),
			Score:         int(item.Get("score").Int()),
		})
		return true
	})
	if len(coins) == 0 {
		return nil, errors.New("upstream trending list is empty")
	}
	return coins, nil
}
