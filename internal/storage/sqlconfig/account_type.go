package sqlconfig

type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	return t >= AccountTypeCash && t <= AccountTypeAssets
}
