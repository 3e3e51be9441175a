package models

// Spending categories shared by the ingestion pipeline, the limits table and
// the spend aggregation. The set is closed: anything outside it is bucketed
// under CategoryOther.
const (
	CategoryFood      = "Alimentação"
	CategoryLeisure   = "Lazer"
	CategoryTaxes     = "Impostos"
	CategoryHealth    = "Saúde"
	CategoryTransport = "Transporte"
	CategoryHousing   = "Moradia"
	CategoryEducation = "Educação"
	CategoryOther     = "Outros"
)

// AllCategories returns the closed category set in its canonical order
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryLeisure,
		CategoryTaxes,
		CategoryHealth,
		CategoryTransport,
		CategoryHousing,
		CategoryEducation,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string belongs to the closed set
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}

// BucketCategory maps an arbitrary category name onto the closed set.
// Empty names and names outside the set both land in CategoryOther.
func BucketCategory(category string) string {
	if IsValidCategory(category) {
		return category
	}
	return CategoryOther
}

// chartPalette is the fixed slice color palette, assigned by rank index
var chartPalette = []string{
	"#818cf8", "#34d399", "#fbbf24", "#fb7185",
	"#a78bfa", "#2dd4bf", "#38bdf8", "#22d3ee",
}

// PaletteColor returns the palette color for a rank index, cycling past the
// palette length
func PaletteColor(rank int) string {
	if rank < 0 {
		rank = 0
	}
	return chartPalette[rank%len(chartPalette)]
}

// PaletteSize returns the number of distinct palette colors
func PaletteSize() int {
	return len(chartPalette)
}
