package ledger

import "fmt"

// TransactionType is the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionTypeSigningFee    TransactionType = "SIGNING_FEE"
	TransactionTypeTraining      TransactionType = "TRAINING"
	TransactionTypeEquipment     TransactionType = "EQUIPMENT"
	TransactionTypeSalaries      TransactionType = "SALARIES"
	TransactionTypeProjectPayout TransactionType = "PROJECT_PAYOUT"
)

// AllTransactionTypes returns all valid transaction types
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeSigningFee,
		TransactionTypeTraining,
		TransactionTypeEquipment,
		TransactionTypeSalaries,
		TransactionTypeProjectPayout,
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	_, ok := TypeToCategoryMap[t]
	return ok
}

// ToCategory maps the transaction type to its reporting category
func (t TransactionType) ToCategory() (Category, error) {
	category, exists := TypeToCategoryMap[t]
	if !exists {
		return "", fmt.Errorf("unknown transaction type: %s", t)
	}
	return category, nil
}

// ParseTransactionType parses a string into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}
