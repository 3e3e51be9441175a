package services

import (
	"context"
	"errors"
	"testing"

	"granazap/internal/models"
	"granazap/internal/repositories/repository_mocks"
	"granazap/internal/webhooks"
	"granazap/internal/webhooks/webhook_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LimitsServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockLimitRepo  *repository_mocks.MockLimitRepositoryInterface
	mockAutomation *webhook_mocks.MockAutomationClientInterface
	mockMetrics    *webhook_mocks.MockMetricsRecorder
	service        LimitsServiceInterface
	userID         uuid.UUID
}

func (s *LimitsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLimitRepo = repository_mocks.NewMockLimitRepositoryInterface(s.ctrl)
	s.mockAutomation = webhook_mocks.NewMockAutomationClientInterface(s.ctrl)
	s.mockMetrics = webhook_mocks.NewMockMetricsRecorder(s.ctrl)
	s.service = NewLimitsService(s.mockLimitRepo, s.mockAutomation, s.mockMetrics)
	s.userID = uuid.New()
}

func (s *LimitsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLimitsServiceSuite(t *testing.T) {
	suite.Run(t, new(LimitsServiceTestSuite))
}

func storedLimit(userID uuid.UUID, category, amount string) models.CategoryLimit {
	value, _ := decimal.NewFromString(amount)
	return models.CategoryLimit{
		ID:       uuid.New(),
		UserID:   userID,
		Category: category,
		Amount:   value,
	}
}

// GetLimits

func (s *LimitsServiceTestSuite) TestGetLimits_FromLocalTable() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return([]models.CategoryLimit{
		storedLimit(s.userID, models.CategoryFood, "500"),
		storedLimit(s.userID, models.CategoryLeisure, "200"),
	}, nil)

	response, err := s.service.GetLimits(context.Background(), s.userID)

	s.NoError(err)
	s.Len(response.Limits, 2)
	s.Equal(models.CategoryFood, response.Limits[0].Category)
	s.True(response.Limits[0].Amount.Equal(decimal.NewFromInt(500)))
	s.Empty(response.Message)
}

func (s *LimitsServiceTestSuite) TestGetLimits_WebhookFallback() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return([]models.CategoryLimit{}, nil)
	s.mockAutomation.EXPECT().FetchLimits(gomock.Any(), s.userID).Return([]webhooks.LimitEntry{
		{Category: models.CategoryHousing, Limit: models.FlexFromFloat(1500)},
		{Category: "Categoria Antiga", Limit: models.FlexFromFloat(99)},
	}, nil)

	response, err := s.service.GetLimits(context.Background(), s.userID)

	s.NoError(err)
	s.Len(response.Limits, 1, "entries outside the closed category set are dropped")
	s.Equal(models.CategoryHousing, response.Limits[0].Category)
}

func (s *LimitsServiceTestSuite) TestGetLimits_NoneAnywhere() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return(nil, nil)
	s.mockAutomation.EXPECT().FetchLimits(gomock.Any(), s.userID).Return(nil, nil)

	response, err := s.service.GetLimits(context.Background(), s.userID)

	s.NoError(err)
	s.Empty(response.Limits)
	s.Equal("Nenhum limite salvo ainda.", response.Message)
}

func (s *LimitsServiceTestSuite) TestGetLimits_RepositoryFailure() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return(nil, errors.New("db down"))

	_, err := s.service.GetLimits(context.Background(), s.userID)
	s.Error(err)
}

// SaveLimits

func (s *LimitsServiceTestSuite) TestSaveLimits_ParsesAndPersists() {
	drafts := map[string]string{
		models.CategoryFood:    "500.50",
		models.CategoryLeisure: "0",
		models.CategoryTaxes:   "",
	}

	s.mockAutomation.EXPECT().
		SaveLimits(gomock.Any(), s.userID, []webhooks.LimitValue{
			{Category: models.CategoryFood, Value: 500.50},
		}).
		Return(nil)
	s.mockLimitRepo.EXPECT().
		ReplaceForUser(s.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, limits []models.CategoryLimit) error {
			s.Len(limits, 1, "zero and empty drafts are dropped")
			s.Equal(models.CategoryFood, limits[0].Category)
			s.True(limits[0].Amount.Equal(decimal.NewFromFloat(500.50)))
			return nil
		})
	s.mockMetrics.EXPECT().IncrementCounter("limits_saved", nil)

	response, err := s.service.SaveLimits(context.Background(), s.userID, drafts)

	s.NoError(err)
	s.Equal(1, response.Saved)
	s.Equal("Limites salvos com sucesso.", response.Message)
}

func (s *LimitsServiceTestSuite) TestSaveLimits_StableCategoryOrder() {
	drafts := map[string]string{
		models.CategoryOther:   "100",
		models.CategoryFood:    "200",
		models.CategoryHousing: "300",
	}

	s.mockAutomation.EXPECT().
		SaveLimits(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, values []webhooks.LimitValue) error {
			s.Equal([]string{models.CategoryFood, models.CategoryHousing, models.CategoryOther},
				[]string{values[0].Category, values[1].Category, values[2].Category},
				"payload follows the canonical category order, not map order")
			return nil
		})
	s.mockLimitRepo.EXPECT().ReplaceForUser(s.userID, gomock.Any()).Return(nil)
	s.mockMetrics.EXPECT().IncrementCounter("limits_saved", nil)

	_, err := s.service.SaveLimits(context.Background(), s.userID, drafts)
	s.NoError(err)
}

func (s *LimitsServiceTestSuite) TestSaveLimits_RejectsNonNumericDraft() {
	testCases := []string{"abc", "10,50", "-5", "1e3", "10."}

	for _, draft := range testCases {
		_, err := s.service.SaveLimits(context.Background(), s.userID, map[string]string{
			models.CategoryFood: draft,
		})
		s.ErrorIs(err, ErrInvalidLimitDraft, "draft %q must be rejected", draft)
	}
}

func (s *LimitsServiceTestSuite) TestSaveLimits_RejectsUnknownCategory() {
	_, err := s.service.SaveLimits(context.Background(), s.userID, map[string]string{
		models.CategoryFood: "100",
		"Viagens":           "50",
	})
	s.ErrorIs(err, ErrInvalidCategory)
}

func (s *LimitsServiceTestSuite) TestSaveLimits_NothingPositiveIsABenignNotice() {
	// No EXPECT on the automation mock: an all-blank form never goes upstream
	response, err := s.service.SaveLimits(context.Background(), s.userID, map[string]string{
		models.CategoryFood:    "0",
		models.CategoryLeisure: "",
	})

	s.NoError(err)
	s.Equal(0, response.Saved)
	s.Equal("Nenhum limite foi definido. Nada para salvar.", response.Message)
}

func (s *LimitsServiceTestSuite) TestSaveLimits_WebhookFailureSkipsPersist() {
	s.mockAutomation.EXPECT().SaveLimits(gomock.Any(), s.userID, gomock.Any()).Return(errors.New("webhook down"))

	_, err := s.service.SaveLimits(context.Background(), s.userID, map[string]string{
		models.CategoryFood: "100",
	})
	s.Error(err, "local table is only written after the webhook commits")
}

// GetUtilization

func (s *LimitsServiceTestSuite) TestGetUtilization_PairsLimitsWithSpend() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return([]models.CategoryLimit{
		storedLimit(s.userID, models.CategoryFood, "400"),
		storedLimit(s.userID, models.CategoryLeisure, "200"),
	}, nil)
	s.mockAutomation.EXPECT().FetchSpendByCategory(gomock.Any(), s.userID).Return([]models.CategorySpend{
		{Category: models.CategoryFood, Spent: decimal.NewFromInt(100)},
		{Category: models.CategoryLeisure, Spent: decimal.NewFromInt(300)},
	}, nil)

	utilization, err := s.service.GetUtilization(context.Background(), s.userID)

	s.NoError(err)
	s.Len(utilization, 2)

	s.Equal(25, utilization[0].Percent)
	s.Equal(25, utilization[0].BarWidth)
	s.False(utilization[0].OverLimit)

	s.Equal(150, utilization[1].Percent, "blown limits keep the raw ratio")
	s.Equal(100, utilization[1].BarWidth, "bar width clamps at 100")
	s.True(utilization[1].OverLimit)
}

func (s *LimitsServiceTestSuite) TestGetUtilization_ExactlyAtLimit() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return([]models.CategoryLimit{
		storedLimit(s.userID, models.CategoryFood, "200"),
	}, nil)
	s.mockAutomation.EXPECT().FetchSpendByCategory(gomock.Any(), s.userID).Return([]models.CategorySpend{
		{Category: models.CategoryFood, Spent: decimal.NewFromInt(200)},
	}, nil)

	utilization, err := s.service.GetUtilization(context.Background(), s.userID)

	s.NoError(err)
	s.Equal(100, utilization[0].Percent)
	s.True(utilization[0].OverLimit, "hitting the limit exactly already flags")
}

func (s *LimitsServiceTestSuite) TestGetUtilization_UnknownSpendCategoryBucketsAsOther() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return([]models.CategoryLimit{
		storedLimit(s.userID, models.CategoryOther, "100"),
	}, nil)
	s.mockAutomation.EXPECT().FetchSpendByCategory(gomock.Any(), s.userID).Return([]models.CategorySpend{
		{Category: "Assinaturas", Spent: decimal.NewFromInt(50)},
	}, nil)

	utilization, err := s.service.GetUtilization(context.Background(), s.userID)

	s.NoError(err)
	s.Equal(50, utilization[0].Percent)
}

func (s *LimitsServiceTestSuite) TestGetUtilization_ZeroLimitNeverFlags() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return([]models.CategoryLimit{
		storedLimit(s.userID, models.CategoryFood, "0"),
	}, nil)
	s.mockAutomation.EXPECT().FetchSpendByCategory(gomock.Any(), s.userID).Return([]models.CategorySpend{
		{Category: models.CategoryFood, Spent: decimal.NewFromInt(999)},
	}, nil)

	utilization, err := s.service.GetUtilization(context.Background(), s.userID)

	s.NoError(err)
	s.Equal(0, utilization[0].Percent)
	s.Equal(0, utilization[0].BarWidth)
	s.False(utilization[0].OverLimit)
}

func (s *LimitsServiceTestSuite) TestGetUtilization_NoLimitsSkipsSpendLookup() {
	s.mockLimitRepo.EXPECT().GetByUserID(s.userID).Return(nil, nil)

	utilization, err := s.service.GetUtilization(context.Background(), s.userID)

	s.NoError(err)
	s.Empty(utilization)
}
