package ledger

import "fmt"

// Category groups transaction types for reporting.
type Category string

const (
	// CategoryStaffCosts covers signing fees and salaries
	CategoryStaffCosts Category = "STAFF_COSTS"

	// CategoryStaffDevelopment covers training courses
	CategoryStaffDevelopment Category = "STAFF_DEVELOPMENT"

	// CategoryStudioInvestments covers equipment purchases
	CategoryStudioInvestments Category = "STUDIO_INVESTMENTS"

	// CategoryProjectRevenue covers client payouts
	CategoryProjectRevenue Category = "PROJECT_REVENUE"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryStaffCosts,
		CategoryStaffDevelopment,
		CategoryStudioInvestments,
		CategoryProjectRevenue,
	}
}

// TypeToCategoryMap maps transaction types to their categories
var TypeToCategoryMap = map[TransactionType]Category{
	TransactionTypeSigningFee:    CategoryStaffCosts,
	TransactionTypeSalaries:      CategoryStaffCosts,
	TransactionTypeTraining:      CategoryStaffDevelopment,
	TransactionTypeEquipment:     CategoryStudioInvestments,
	TransactionTypeProjectPayout: CategoryProjectRevenue,
}

func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryStaffCosts, CategoryStaffDevelopment, CategoryStudioInvestments, CategoryProjectRevenue:
		return true
	default:
		return false
	}
}

// IsIncome returns true if the category represents income
func (c Category) IsIncome() bool {
	return c == CategoryProjectRevenue
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
