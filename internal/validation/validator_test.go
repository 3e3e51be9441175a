package validation

import (
	"testing"

	"granazap/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	validate *validator.Validate
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validate = NewValidator().GetValidate()
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
}

func (s *ValidatorTestSuite) TestSpendingCategory() {
	type payload struct {
		Category string `validate:"spending_category"`
	}

	for _, category := range models.AllCategories() {
		s.NoError(s.validate.Struct(payload{Category: category}), "category %s", category)
	}

	s.Error(s.validate.Struct(payload{Category: "Pets"}))
	s.Error(s.validate.Struct(payload{Category: ""}))
}

func (s *ValidatorTestSuite) TestLimitAmount() {
	type payload struct {
		Amount string `validate:"limit_amount"`
	}

	valid := []string{"", "0", "350", "350.50", "1234567.89"}
	for _, amount := range valid {
		s.NoError(s.validate.Struct(payload{Amount: amount}), "amount %q", amount)
	}

	invalid := []string{"abc", "350,50", "-10", "10.", ".5", "1e3", "10.5.5"}
	for _, amount := range invalid {
		s.Error(s.validate.Struct(payload{Amount: amount}), "amount %q", amount)
	}
}

func (s *ValidatorTestSuite) TestBRPhone() {
	type payload struct {
		Phone string `validate:"br_phone"`
	}

	valid := []string{"6294537736", "62994537736", "5562994537736", "(62) 99453-7736", "+55 62 99453-7736"}
	for _, phone := range valid {
		s.NoError(s.validate.Struct(payload{Phone: phone}), "phone %q", phone)
	}

	invalid := []string{"", "123", "123456789", "55629945377361234", "telefone"}
	for _, phone := range invalid {
		s.Error(s.validate.Struct(payload{Phone: phone}), "phone %q", phone)
	}
}

func (s *ValidatorTestSuite) TestDateOnly() {
	type payload struct {
		Date string `validate:"date_only"`
	}

	s.NoError(s.validate.Struct(payload{Date: "2026-03-02"}))

	invalid := []string{"", "02/03/2026", "2026-3-2", "2026-03-02T00:00:00Z", "hoje"}
	for _, date := range invalid {
		s.Error(s.validate.Struct(payload{Date: date}), "date %q", date)
	}
}

func (s *ValidatorTestSuite) TestTagNameFunc_UsesJSONNames() {
	type payload struct {
		StartDate string `json:"startDate" validate:"required"`
	}

	err := s.validate.Struct(payload{})
	s.Error(err)

	fieldErrors, ok := err.(validator.ValidationErrors)
	s.True(ok)
	s.Equal("startDate", fieldErrors[0].Field(), "error reporting uses the json name")
}
