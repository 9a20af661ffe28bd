package filestore

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RMahshie/swrscope/internal/repository"
	"github.com/RMahshie/swrscope/internal/swr"
	"github.com/RMahshie/swrscope/pkg/models"
)

// catalogFile is the on-disk layout of a band catalog
type catalogFile struct {
	Bands     []models.Band                       `yaml:"bands"`
	BandPlans map[string][]models.BandPlanSegment `yaml:"band_plans"`
}

// Catalog implements BandCatalog from a YAML file or the built-in defaults
type Catalog struct {
	bands []models.Band
	plans map[string][]models.BandPlanSegment
}

// NewDefaultCatalog returns the built-in amateur band catalog with RSGB band plans
func NewDefaultCatalog() *Catalog {
	return &Catalog{
		bands: swr.AmateurBands(),
		plans: swr.RSGBBandPlans(),
	}
}

// NewCatalog loads a catalog from path. An empty path gives the defaults.
func NewCatalog(path string) (repository.BandCatalog, error) {
	if path == "" {
		return NewDefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read band catalog: %w", err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid band catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML band catalog. Band plans default to the RSGB plans
// when the document has none.
func Decode(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(f.Bands) == 0 {
		return nil, fmt.Errorf("no bands defined")
	}
	seen := make(map[string]bool, len(f.Bands))
	for i, b := range f.Bands {
		if b.Name == "" {
			return nil, fmt.Errorf("band %d has no name", i)
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("band %s defined twice", b.Name)
		}
		if b.EndFreq < b.StartFreq {
			return nil, fmt.Errorf("band %s ends before it starts", b.Name)
		}
		seen[b.Name] = true
	}

	plans := f.BandPlans
	if plans == nil {
		plans = swr.RSGBBandPlans()
	}
	return &Catalog{bands: f.Bands, plans: plans}, nil
}

// Bands returns a copy of the catalog bands
func (c *Catalog) Bands(ctx context.Context) ([]models.Band, error) {
	out := make([]models.Band, len(c.bands))
	copy(out, c.bands)
	return out, nil
}

// BandPlans returns a copy of the band plans keyed by band name
func (c *Catalog) BandPlans(ctx context.Context) (map[string][]models.BandPlanSegment, error) {
	out := make(map[string][]models.BandPlanSegment, len(c.plans))
	for name, segs := range c.plans {
		out[name] = append([]models.BandPlanSegment(nil), segs...)
	}
	return out, nil
}
