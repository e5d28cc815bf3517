package usecase

import (
	"context"
	"errors"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/entity"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/pricefeed"
	"github.com/sirupsen/logrus"
)

// PriceSource is satisfied by *pricefeed.Client.
type PriceSource interface {
	GetPrices(ctx context.Context, ids []string) (*pricefeed.Snapshot, error)
	Trending(ctx context.Context) ([]pricefeed.TrendingCoin, error)
}

type MarketUsecase interface {
	Prices(ctx context.Context, ids []string) (*entity.PricesResponse, error)
	Trending(ctx context.Context) (*entity.TrendingResponse, error)
}

type MarketConfig struct {
	Prices PriceSource
	Notice string
	Log    *logrus.Logger
}

type marketUsecase struct {
	cfg MarketConfig
}

func NewMarketUsecase(cfg MarketConfig) MarketUsecase {
	return &marketUsecase{cfg: cfg}
}

// Prices reports an unavailable feed in the response, not as an error.
func (u *marketUsecase) Prices(ctx context.Context, ids []string) (*entity.PricesResponse, error) {
	snap, err := u.cfg.Prices.GetPrices(ctx, ids)
	if errors.Is(err, pricefeed.ErrUnavailable) {
		u.cfg.Log.WithError(err).Warn("price feed unavailable")
		return &entity.PricesResponse{Available: false, Notice: u.cfg.Notice}, nil
	}
	if err != nil {
		return nil, err
	}

	fetchedAt := snap.FetchedAt
	return &entity.PricesResponse{
		Available: true,
		Quotes:    snap.Quotes,
		Missing:   snap.Missing,
		FetchedAt: &fetchedAt,
	}, nil
}

func (u *marketUsecase) Trending(ctx context.Context) (*entity.TrendingResponse, error) {
	coins, err := u.cfg.Prices.Trending(ctx)
	if errors.Is(err, pricefeed.ErrUnavailable) {
		u.cfg.Log.WithError(err).Warn("trending feed unavailable")
		return &entity.TrendingResponse{Available: false, Notice: u.cfg.Notice}, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity.TrendingResponse{Available: true, Coins: coins}, nil
}
