package repository

import (
	"context"

	"github.com/RMahshie/swrscope/pkg/models"
)

// BandCatalog provides the bands and band plans used for aggregation
type BandCatalog interface {
	Bands(ctx context.Context) ([]models.Band, error)
	BandPlans(ctx context.Context) (map[string][]models.BandPlanSegment, error)
}
