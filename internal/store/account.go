package store

import (
	"database/sql"
	"fmt"
)

// AccountsByLogin maps account numbers to their persisted ids for one
// bank login.
func (s *Store) AccountsByLogin(blz, user string) (map[string]int64, error) {
	rows, err := s.db.Query("SELECT number, id FROM accounts WHERE blz = ? AND user = ?", blz, user)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for bank %s login %s: %w", blz, user, err)
	}
	defer rows.Close()

	accounts := make(map[string]int64)
	for rows.Next() {
		var number string
		var id int64
		if err := rows.Scan(&number, &id); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts[number] = id
	}

	return accounts, rows.Err()
}

func (s *Store) CreateAccount(blz, user, number string, iban, bic *string) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (blz, user, number, iban, bic)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	var newID int64
	if err := stmt.QueryRow(blz, user, number, iban, bic).Scan(&newID); err != nil {
		return 0, fmt.Errorf("failed to create account %s for bank %s login %s: %w", number, blz, user, err)
	}

	return newID, nil
}

func (s *Store) ListAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
		SELECT id, blz, user, number, iban, bic
		FROM accounts
		ORDER BY blz, user, number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		var iban, bic sql.NullString

		if err := rows.Scan(&acc.ID, &acc.BLZ, &acc.User, &acc.Number, &iban, &bic); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		if iban.Valid {
			acc.IBAN = &iban.String
		}
		if bic.Valid {
			acc.BIC = &bic.String
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
