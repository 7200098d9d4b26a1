package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

var statementColumns = `account_id, day, amount,
	applicant_name, applicant_iban, posting_text, purpose,
	additional_purpose, additional_position_reference,
	applicant_creditor_id, end_to_end_reference, prima_nota,
	return_debit_notes, transaction_code, intraday_num, balance_after`

// InsertStatement persists one transaction. The statements_dedup index
// makes the insert the idempotence gate: a row whose content key
// already exists comes back as ErrDuplicate, any other failure
// propagates unchanged.
func (s *Store) InsertStatement(row *StatementRow) (int64, error) {
	stmt, err := s.db.Prepare(fmt.Sprintf(`
		INSERT INTO statements (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`, statementColumns))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement SQL: %w", err)
	}
	defer stmt.Close()

	// String() is canonical per value (trailing zeros trimmed), so the
	// same amount always produces the same dedup key, without rounding
	// sub-cent precision away.
	var newID int64
	err = stmt.QueryRow(
		row.AccountID, row.Day, row.Amount.String(),
		row.ApplicantName, row.ApplicantIBAN, row.PostingText, row.Purpose,
		row.AdditionalPurpose, row.AdditionalPositionReference,
		row.ApplicantCreditorID, row.EndToEndReference, row.PrimaNota,
		row.ReturnDebitNotes, row.TransactionCode, row.IntradayNum,
		row.BalanceAfter.String(),
	).Scan(&newID)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code == sqlite.ErrConstraint || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
				return 0, ErrDuplicate
			}
		}
		return 0, fmt.Errorf("failed to insert statement: %w", err)
	}

	return newID, nil
}

// StatementExists checks the same content key the dedup index
// enforces, without writing. Used by dry-run to classify lines.
func (s *Store) StatementExists(row *StatementRow) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM statements
			WHERE account_id = ? AND day = ? AND amount = ?
			AND ifnull(applicant_name, char(0)) = ifnull(?, char(0))
			AND ifnull(applicant_iban, char(0)) = ifnull(?, char(0))
			AND ifnull(posting_text, char(0)) = ifnull(?, char(0))
			AND ifnull(purpose, char(0)) = ifnull(?, char(0))
			AND ifnull(additional_purpose, char(0)) = ifnull(?, char(0))
			AND ifnull(additional_position_reference, char(0)) = ifnull(?, char(0))
			AND ifnull(applicant_creditor_id, char(0)) = ifnull(?, char(0))
			AND ifnull(end_to_end_reference, char(0)) = ifnull(?, char(0))
			AND ifnull(prima_nota, char(0)) = ifnull(?, char(0))
			AND ifnull(return_debit_notes, char(0)) = ifnull(?, char(0))
			AND ifnull(transaction_code, char(0)) = ifnull(?, char(0))
			AND intraday_num = ?
		)
	`,
		row.AccountID, row.Day, row.Amount.String(),
		row.ApplicantName, row.ApplicantIBAN, row.PostingText, row.Purpose,
		row.AdditionalPurpose, row.AdditionalPositionReference,
		row.ApplicantCreditorID, row.EndToEndReference, row.PrimaNota,
		row.ReturnDebitNotes, row.TransactionCode, row.IntradayNum,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check statement existence: %w", err)
	}
	return exists, nil
}

// RecentStatements returns the most recently persisted transactions,
// newest first.
func (s *Store) RecentStatements(limit int) ([]*StatementRow, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT id, %s
		FROM statements
		ORDER BY day DESC, intraday_num DESC, id DESC
		LIMIT ?
	`, statementColumns), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	defer rows.Close()

	var statements []*StatementRow
	for rows.Next() {
		row, err := scanStatement(rows)
		if err != nil {
			return nil, err
		}
		statements = append(statements, row)
	}

	return statements, rows.Err()
}

func scanStatement(rows *sql.Rows) (*StatementRow, error) {
	row := &StatementRow{}
	var amount, balance string
	nullable := make([]sql.NullString, 11)

	err := rows.Scan(
		&row.ID, &row.AccountID, &row.Day, &amount,
		&nullable[0], &nullable[1], &nullable[2], &nullable[3],
		&nullable[4], &nullable[5], &nullable[6], &nullable[7],
		&nullable[8], &nullable[9], &nullable[10],
		&row.IntradayNum, &balance,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan statement: %w", err)
	}

	targets := []**string{
		&row.ApplicantName, &row.ApplicantIBAN, &row.PostingText,
		&row.Purpose, &row.AdditionalPurpose, &row.AdditionalPositionReference,
		&row.ApplicantCreditorID, &row.EndToEndReference, &row.PrimaNota,
		&row.ReturnDebitNotes, &row.TransactionCode,
	}
	for i, t := range targets {
		if nullable[i].Valid {
			s := nullable[i].String
			*t = &s
		}
	}

	if row.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
	}
	if row.BalanceAfter, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("failed to parse stored balance %q: %w", balance, err)
	}

	return row, nil
}
