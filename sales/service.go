package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/H4estu/OpenSeer/metrics"
	"github.com/H4estu/OpenSeer/models"
)

// EventSource supplies the raw recent-sales payload for a pipeline run.
type EventSource interface {
	RecentSales(ctx context.Context, numSales int) (json.RawMessage, error)
}

// Service runs the fetch, parse, and aggregate stages as one unit.
type Service struct {
	source EventSource
	logger *zap.Logger
}

func NewService(source EventSource, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// Report executes one full pipeline run. Runs are independent and
// stateless; nothing is cached between them. On failure the returned
// error is a *FetchError or *ParseError, no report is produced, and the
// caller decides whether to render the failure, retry, or exit.
func (s *Service) Report(ctx context.Context, numSales int) (*models.SalesReport, error) {
	raw, err := s.source.RecentSales(ctx, numSales)
	if err != nil {
		metrics.PipelineRunsTotal.WithLabelValues(metrics.StatusFetchError).Inc()
		s.logger.Error("sales fetch failed", zap.Int("num_sales", numSales), zap.Error(err))
		return nil, &FetchError{Err: err}
	}

	records, err := Parse(raw)
	if err != nil {
		metrics.PipelineRunsTotal.WithLabelValues(metrics.StatusParseError).Inc()
		s.logger.Error("sales parse failed", zap.Int("num_sales", numSales), zap.Error(err))
		return nil, err
	}

	ranked := Aggregate(records)
	top := TopK(ranked, numSales)

	metrics.PipelineRunsTotal.WithLabelValues(metrics.StatusOK).Inc()
	metrics.SalesEventsParsed.Observe(float64(len(records)))
	s.logger.Info("sales report built",
		zap.Int("num_sales", numSales),
		zap.Int("events", len(records)),
		zap.Int("collections", len(ranked)))

	return &models.SalesReport{
		NumSales:    numSales,
		EventCount:  len(records),
		Ranked:      ranked,
		Top:         top,
		ChartTitle:  fmt.Sprintf("Last %d Sales by Collection", numSales),
		TopHeading:  fmt.Sprintf("Top %d Collections", min(topCollections, numSales)),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
