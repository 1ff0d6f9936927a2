package product_map

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinerozz/product-map-backend/internal/entity"
	"github.com/dinerozz/product-map-backend/internal/service/journey"
	"github.com/dinerozz/product-map-backend/pkg/metrics"
)

var ErrPageNotFound = errors.New("page not found")

// Cache хранилище собранных карт, реализуется redis.Service.
type Cache interface {
	CacheProductMap(ctx context.Context, fingerprint string, data interface{}, ttl time.Duration) error
	GetProductMap(ctx context.Context, fingerprint string, dest interface{}) error
	InvalidateProductMaps(ctx context.Context) error
}

type ProductMapService interface {
	Build(ctx context.Context) (*entity.ProductMap, *entity.ProductMapMeta, error)
	Refresh(ctx context.Context) (*entity.ProductMap, *entity.ProductMapMeta, error)
	Analyze(ctx context.Context, raw string, funnels []journey.FunnelDef) (*entity.ProductMap, error)
	GetPages(ctx context.Context, limit int) ([]entity.PageNode, error)
	GetPage(ctx context.Context, id string) (*entity.PageNode, error)
	GetEdges(ctx context.Context, minSessions int) ([]entity.Edge, error)
	GetJourneys(ctx context.Context) ([]entity.Journey, error)
}

type productMapService struct {
	source   Source
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewProductMapService cache может быть nil, тогда карта пересчитывается на каждый запрос.
func NewProductMapService(source Source, cache Cache, cacheTTL time.Duration, logger *slog.Logger) ProductMapService {
	if logger == nil {
		logger = slog.Default()
	}

	return &productMapService{
		source:   source,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With(slog.String("service", "product_map")),
	}
}

func (s *productMapService) Build(ctx context.Context) (*entity.ProductMap, *entity.ProductMapMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// при недоступном логе отдаём пустую карту, а не ошибку
	raw, err := s.source.ReadMetadata(ctx)
	if err != nil {
		s.logger.Warn("metadata unavailable, serving empty product map", slog.String("error", err.Error()))
		raw = ""
	}

	funnels, err := s.source.ReadFunnels(ctx)
	if err != nil {
		s.logger.Warn("funnels unavailable, building map without journeys", slog.String("error", err.Error()))
		funnels = nil
	}

	meta := &entity.ProductMapMeta{
		Source:      s.source.Name(),
		GeneratedAt: time.Now().UTC(),
	}

	fingerprint, err := Fingerprint(raw, funnels)
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		var cached entity.ProductMap
		if err := s.cache.GetProductMap(ctx, fingerprint, &cached); err == nil {
			metrics.BuildsTotal.WithLabelValues("cache").Inc()
			meta.Cached = true
			return &cached, meta, nil
		}
	}

	productMap := s.compute(raw, funnels)

	if s.cache != nil {
		if err := s.cache.CacheProductMap(ctx, fingerprint, productMap, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache product map", slog.String("error", err.Error()))
		}
	}

	return productMap, meta, nil
}

func (s *productMapService) Refresh(ctx context.Context) (*entity.ProductMap, *entity.ProductMapMeta, error) {
	if s.cache != nil {
		if err := s.cache.InvalidateProductMaps(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to invalidate cache: %w", err)
		}
	}

	return s.Build(ctx)
}

func (s *productMapService) Analyze(ctx context.Context, raw string, funnels []journey.FunnelDef) (*entity.ProductMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := journey.ValidateAll(funnels); err != nil {
		return nil, fmt.Errorf("invalid funnels: %w", err)
	}

	return s.compute(raw, funnels), nil
}

func (s *productMapService) GetPages(ctx context.Context, limit int) ([]entity.PageNode, error) {
	productMap, _, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	pages := productMap.Pages
	if limit > 0 && limit < len(pages) {
		pages = pages[:limit]
	}

	return pages, nil
}

func (s *productMapService) GetPage(ctx context.Context, id string) (*entity.PageNode, error) {
	productMap, _, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	for i := range productMap.Pages {
		if productMap.Pages[i].ID == id {
			return &productMap.Pages[i], nil
		}
	}

	return nil, fmt.Errorf("%s: %w", id, ErrPageNotFound)
}

func (s *productMapService) GetEdges(ctx context.Context, minSessions int) ([]entity.Edge, error) {
	productMap, _, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	edges := make([]entity.Edge, 0, len(productMap.Edges))
	for _, edge := range productMap.Edges {
		if edge.Sessions >= minSessions {
			edges = append(edges, edge)
		}
	}

	return edges, nil
}

func (s *productMapService) GetJourneys(ctx context.Context) ([]entity.Journey, error) {
	productMap, _, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	return productMap.Journeys, nil
}

func (s *productMapService) compute(raw string, funnels []journey.FunnelDef) *entity.ProductMap {
	start := time.Now()
	productMap := Compute(raw, funnels)
	elapsed := time.Since(start)

	recordBuild(productMap, elapsed)

	s.logger.Info("product map built",
		slog.Int("events", productMap.Stats.Events),
		slog.Int("malformed", productMap.Stats.Malformed),
		slog.Int("bad_timestamps", productMap.Stats.BadTimestamps),
		slog.Int("pages", len(productMap.Pages)),
		slog.Int("edges", len(productMap.Edges)),
		slog.Int("journeys", len(productMap.Journeys)),
		slog.Duration("elapsed", elapsed),
	)

	return productMap
}

func recordBuild(productMap *entity.ProductMap, elapsed time.Duration) {
	stats := productMap.Stats

	metrics.BuildsTotal.WithLabelValues("computed").Inc()
	metrics.BuildDuration.Observe(elapsed.Seconds())

	metrics.MetadataLinesTotal.WithLabelValues("parsed").Add(float64(stats.Events))
	metrics.MetadataLinesTotal.WithLabelValues("skipped").Add(float64(stats.Skipped))
	metrics.MetadataLinesTotal.WithLabelValues("malformed").Add(float64(stats.Malformed))
	metrics.MetadataLinesTotal.WithLabelValues("non_image").Add(float64(stats.NonImage))
	metrics.MetadataLinesTotal.WithLabelValues("bad_timestamp").Add(float64(stats.BadTimestamps))

	metrics.GraphSize.WithLabelValues("pages").Set(float64(len(productMap.Pages)))
	metrics.GraphSize.WithLabelValues("edges").Set(float64(len(productMap.Edges)))
	metrics.GraphSize.WithLabelValues("journeys").Set(float64(len(productMap.Journeys)))
}

// Fingerprint ключ кеша по содержимому лога и воронок.
func Fingerprint(raw string, funnels []journey.FunnelDef) (string, error) {
	funnelsJSON, err := json.Marshal(funnels)
	if err != nil {
		return "", fmt.Errorf("failed to marshal funnels: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(raw))
	h.Write([]byte{0})
	h.Write(funnelsJSON)

	return hex.EncodeToString(h.Sum(nil)), nil
}
