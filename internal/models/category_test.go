package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CategoryTestSuite struct {
	suite.Suite
}

func TestCategorySuite(t *testing.T) {
	suite.Run(t, new(CategoryTestSuite))
}

func (s *CategoryTestSuite) TestIsValidCategory() {
	for _, category := range AllCategories() {
		s.True(IsValidCategory(category), "category %s belongs to the closed set", category)
	}

	s.False(IsValidCategory(""))
	s.False(IsValidCategory("Pets"))
	s.False(IsValidCategory("alimentação"), "matching is case sensitive")
}

func (s *CategoryTestSuite) TestBucketCategory() {
	s.Equal(CategoryFood, BucketCategory(CategoryFood))
	s.Equal(CategoryOther, BucketCategory(""))
	s.Equal(CategoryOther, BucketCategory("Viagens"))
}

func (s *CategoryTestSuite) TestPaletteColor_CyclesPastPalette() {
	size := PaletteSize()
	s.Greater(size, 0)

	s.Equal(PaletteColor(0), PaletteColor(size), "ranks past the palette wrap around")
	s.Equal(PaletteColor(2), PaletteColor(size+2))
	s.Equal(PaletteColor(0), PaletteColor(-1), "negative ranks clamp to the first color")
}
