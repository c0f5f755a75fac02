package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futurefulfillmentdev/future-shipping/internal/domain"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/logging"
	"github.com/futurefulfillmentdev/future-shipping/internal/pkg/metrics"
)

type fakeSyncer struct {
	result *SyncResult
	err    error
	calls  chan Contact
}

func newFakeSyncer(result *SyncResult, err error) *fakeSyncer {
	return &fakeSyncer{result: result, err: err, calls: make(chan Contact, 1)}
}

func (f *fakeSyncer) SyncContact(_ context.Context, contact Contact) (*SyncResult, error) {
	f.calls <- contact
	return f.result, f.err
}

func testLogger() *logging.Logger {
	cfg := logging.DefaultConfig("advisor-service-test")
	cfg.Output = io.Discard
	return logging.New(cfg)
}

func testMetrics() *metrics.Metrics {
	return metrics.New(metrics.DefaultConfig("advisor-service-test"))
}

func validCommand() GenerateRecommendationCommand {
	return GenerateRecommendationCommand{
		FullName:         "Sophie Tan",
		Email:            "sophie@example.com",
		MonthlyOrders:    "500 – 1 000",
		SKURange:         "26-100",
		PackageWeight:    "1 kg – 2 kg",
		PackageSize:      "Medium (shoebox)",
		CustomerLocation: "Australia only",
		CurrentShipping:  "3PL in Australia",
	}
}

func TestGenerateRecommendation(t *testing.T) {
	svc := NewAdvisorService(domain.NewEngine(), nil, testLogger(), testMetrics())

	dto, err := svc.GenerateRecommendation(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Equal(t, "AUS_3PL", dto.Strategy)
	assert.Equal(t, "AUS1_PAGE", dto.PageID)
	assert.Equal(t, 2400.0, dto.Savings.TotalMonthly)
	assert.Equal(t, "Sophie", dto.Content.Firstname)
	assert.NotEmpty(t, dto.RenderedPage)
}

func TestGenerateRecommendationSyncsContactInBackground(t *testing.T) {
	syncer := newFakeSyncer(&SyncResult{Action: "created", ContactID: "abc123"}, nil)
	svc := NewAdvisorService(domain.NewEngine(), syncer, testLogger(), testMetrics())

	_, err := svc.GenerateRecommendation(context.Background(), validCommand())
	require.NoError(t, err)

	select {
	case contact := <-syncer.calls:
		assert.Equal(t, "sophie@example.com", contact.Email)
		assert.Equal(t, "Sophie Tan", contact.FullName)
		assert.Equal(t, "500 – 1 000", contact.MonthlyOrders)
	case <-time.After(2 * time.Second):
		t.Fatal("CRM sync was never invoked")
	}
}

func TestGenerateRecommendationSurvivesCRMFailure(t *testing.T) {
	syncer := newFakeSyncer(nil, errors.New("gateway timeout"))
	svc := NewAdvisorService(domain.NewEngine(), syncer, testLogger(), testMetrics())

	dto, err := svc.GenerateRecommendation(context.Background(), validCommand())
	require.NoError(t, err)
	assert.Equal(t, "AUS_3PL", dto.Strategy)

	select {
	case <-syncer.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("CRM sync was never invoked")
	}
}

func TestGenerateRecommendationWithoutCRM(t *testing.T) {
	svc := NewAdvisorService(domain.NewEngine(), nil, testLogger(), testMetrics())

	dto, err := svc.GenerateRecommendation(context.Background(), validCommand())
	require.NoError(t, err)
	assert.NotNil(t, dto)
}

func TestToRecommendationDTOPackagingCost(t *testing.T) {
	rec := domain.NewEngine().Recommend(domain.SurveyResponse{
		MonthlyOrdersChoice: "100 – 300",
		PackageSizeChoice:   "Medium (shoebox)",
	})
	require.True(t, rec.HasPackagingCost)

	dto := ToRecommendationDTO(rec)
	require.NotNil(t, dto.PackagingCost)
	assert.Equal(t, rec.PackagingCost, *dto.PackagingCost)

	rec = domain.NewEngine().Recommend(domain.SurveyResponse{
		MonthlyOrdersChoice: "2 000+",
		SKURangeChoice:      "1-25",
	})
	require.False(t, rec.HasPackagingCost)
	assert.Nil(t, ToRecommendationDTO(rec).PackagingCost)
}
