package constants

const (
	// Transaction Types
	TypeIncome  = "income"
	TypeExpense = "expense"

	// Payment Methods
	MethodCash = "Cash"
	MethodBank = "Bank"

	// Date Layout
	DateFormat = "2006-01-02"
)
