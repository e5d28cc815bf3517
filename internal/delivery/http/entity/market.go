package entity

import (
	"time"

	"github.com/evandrarf/cryptolearn-be/internal/pkg/pricefeed"
)

// PricesQuery - GET /market/prices?ids=bitcoin,ethereum
type PricesQuery struct {
	IDs string `query:"ids" validate:"max=500"`
}

// Unavailable upstream data is not an error for the client: Available is
// false and Notice says why.
type PricesResponse struct {
	Available bool                       `json:"available"`
	Notice    string                     `json:"notice,omitempty"`
	Quotes    map[string]pricefeed.Quote `json:"quotes,omitempty"`
	Missing   []string                   `json:"missing,omitempty"`
	FetchedAt *time.Time                 `json:"fetched_at,omitempty"`
}

type TrendingResponse struct {
	Available bool                     `json:"available"`
	Notice    string                   `json:"notice,omitempty"`
	Coins     []pricefeed.TrendingCoin `json:"coins,omitempty"`
}
