package store

type Repository interface {
	// Account registry
	AccountsByLogin(blz, user string) (map[string]int64, error)
	CreateAccount(blz, user, number string, iban, bic *string) (int64, error)
	ListAccounts() ([]*Account, error)

	// Statement persistence
	InsertStatement(row *StatementRow) (int64, error)
	StatementExists(row *StatementRow) (bool, error)
	RecentStatements(limit int) ([]*StatementRow, error)

	Close() error
}
