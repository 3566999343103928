package repository

import (
	"context"

	"github.com/alexanderramin/chartwise/internal/domain"
)

// ChartRepo persists catalog rows. Positions define catalog order.
type ChartRepo interface {
	InsertChart(ctx context.Context, position int, c domain.Chart) error
	InsertRule(ctx context.Context, position int, r domain.RecommendationRule) error
	ListCharts(ctx context.Context) ([]domain.Chart, error)
	ListRules(ctx context.Context) ([]domain.RecommendationRule, error)
	CountCharts(ctx context.Context) (int, error)
	CountRules(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// MetaRepo stores key/value facts about the stored catalog.
type MetaRepo interface {
	SetMeta(ctx context.Context, key, value string) error
	GetMeta(ctx context.Context, key string) (string, bool, error)
}
