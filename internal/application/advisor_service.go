package application

import (
	"context"
	"time"

	"github.com/futurefulfillmentdev/future-shipping/internal/domain"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/logging"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/metrics"
)

// crmSyncTimeout bounds the background CRM call so a slow provider can't
// leak goroutines indefinitely.
const crmSyncTimeout = 15 * time.Second

// AdvisorService handles recommendation use cases
type AdvisorService struct {
	engine  *domain.Engine
	crm     ContactSyncer
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewAdvisorService creates a new AdvisorService. crm may be nil when CRM
// sync is disabled by configuration.
func NewAdvisorService(
	engine *domain.Engine,
	crm ContactSyncer,
	logger *logging.Logger,
	m *metrics.Metrics,
) *AdvisorService {
	return &AdvisorService{
		engine:  engine,
		crm:     crm,
		logger:  logger,
		metrics: m,
	}
}

// GenerateRecommendation runs the engine for a survey submission and kicks
// off CRM sync in the background. The recommendation never waits on, or
// fails because of, the CRM.
func (s *AdvisorService) GenerateRecommendation(ctx context.Context, cmd GenerateRecommendationCommand) (*RecommendationDTO, error) {
	start := time.Now()

	rec := s.engine.Recommend(cmd.toSurvey())

	s.logger.Recommendation(ctx, string(rec.Strategy), rec.Insights.ShippingHealthScore,
		string(rec.Insights.ConfidenceLevel), rec.Savings.TotalMonthly)
	s.metrics.RecordRecommendation(string(rec.Strategy), string(rec.Insights.ConfidenceLevel),
		rec.Insights.ShippingHealthScore, rec.Savings.TotalMonthly, time.Since(start))

	if s.crm != nil {
		go s.syncContact(ctx, cmd.toContact())
	}

	return ToRecommendationDTO(rec), nil
}

// syncContact runs off the request path. It carries the request's log
// correlation attributes on a fresh context so the sync outlives the
// HTTP request that triggered it.
func (s *AdvisorService) syncContact(reqCtx context.Context, contact Contact) {
	ctx := context.Background()
	if requestID := logging.RequestIDFromContext(reqCtx); requestID != "" {
		ctx = logging.ContextWithRequestID(ctx, requestID)
	}
	if correlationID := logging.CorrelationIDFromContext(reqCtx); correlationID != "" {
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)
	}

	ctx, cancel := context.WithTimeout(ctx, crmSyncTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Panic(ctx, r)
		}
	}()

	start := time.Now()
	result, err := s.crm.SyncContact(ctx, contact)
	duration := time.Since(start)

	if err != nil {
		s.logger.WithError(err).CRMSync(ctx, contact.Email, false, "sync", duration)
		s.metrics.RecordCRMSync("sync", false, duration)
		return
	}

	s.logger.CRMSync(ctx, contact.Email, true, result.Action, duration)
	s.metrics.RecordCRMSync(result.Action, true, duration)
}
