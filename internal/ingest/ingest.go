// Package ingest drives one synchronous run over all configured bank
// logins: fetch statements, reconcile balances, persist new lines,
// notify. Everything runs strictly sequentially; the reconciler and
// sequencer both depend on source order.
package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/kontigo/kontigo/internal/banking"
	"github.com/kontigo/kontigo/internal/config"
	"github.com/kontigo/kontigo/internal/notify"
	"github.com/kontigo/kontigo/internal/statement"
	"github.com/kontigo/kontigo/internal/store"
)

type Runner struct {
	cfg        *config.Config
	repo       store.Repository
	dial       banking.Dialer
	dispatcher *notify.Dispatcher
}

// Result is the run summary across all logins.
type Result struct {
	Accounts        int
	Added           int
	Duplicates      int
	SkippedLogins   int
	SkippedAccounts int
}

func NewRunner(cfg *config.Config, repo store.Repository, dial banking.Dialer, dispatcher *notify.Dispatcher) *Runner {
	return &Runner{cfg: cfg, repo: repo, dial: dial, dispatcher: dispatcher}
}

// Run processes every configured login. days is the lookback window;
// 0 disables fetching (account discovery still runs), negative values
// are rejected. Recoverable per-login and per-account failures are
// reported and skipped; only storage failures other than the known
// duplicate conflict abort an account's ingestion.
func (r *Runner) Run(days int) (*Result, error) {
	if days < 0 {
		return nil, fmt.Errorf("lookback window must be >= 0 days, got %d", days)
	}

	res := &Result{}
	for i := range r.cfg.Logins {
		if err := r.cfg.ValidateLogin(i); err != nil {
			pterm.Warning.Printfln("skipping login: %v", err)
			res.SkippedLogins++
			continue
		}
		login := &r.cfg.Logins[i]
		pterm.Debug.Printfln("* bank %s user %s", login.BLZ, login.User)

		if err := r.runLogin(login, days, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Runner) runLogin(login *config.LoginConfig, days int, res *Result) error {
	client, err := r.dial(login.BLZ, login.User, login.PIN, r.cfg.Access[login.BLZ].URL)
	if err != nil {
		pterm.Warning.Printfln("bank %s login %s: cannot open client: %v", login.BLZ, login.User, err)
		res.SkippedLogins++
		return nil
	}

	accounts, err := client.Accounts()
	if err != nil {
		pterm.Warning.Printfln("bank %s login %s: account discovery failed: %v", login.BLZ, login.User, err)
		res.SkippedLogins++
		return nil
	}

	known, err := r.repo.AccountsByLogin(login.BLZ, login.User)
	if err != nil {
		return err
	}

	for _, acc := range accounts {
		if acc.IBAN == "" {
			continue
		}
		if !login.WantsAccount(acc.Number) {
			continue
		}

		accountID, ok := known[acc.Number]
		if !ok {
			accountID, err = r.registerAccount(login, acc)
			if err != nil {
				return err
			}
			known[acc.Number] = accountID
		}
		res.Accounts++

		pterm.Debug.Printfln("** [%d] account %s (IBAN %s BIC %s)", accountID, acc.Number, acc.IBAN, acc.BIC)

		if days == 0 {
			continue
		}

		if err := r.ingestAccount(client, login, acc, accountID, days, res); err != nil {
			pterm.Error.Printfln("bank %s login %s account %s: ingestion aborted: %v", login.BLZ, login.User, acc.Number, err)
			res.SkippedAccounts++
		}
	}
	return nil
}

func (r *Runner) registerAccount(login *config.LoginConfig, acc banking.SEPAAccount) (int64, error) {
	if r.cfg.DryRun {
		return 0, nil
	}
	pterm.Info.Printfln("bank %s login %s: new account %s", login.BLZ, login.User, acc.Number)

	iban, bic := acc.IBAN, acc.BIC
	return r.repo.CreateAccount(login.BLZ, login.User, acc.Number, &iban, &bic)
}

func (r *Runner) ingestAccount(client banking.Client, login *config.LoginConfig, acc banking.SEPAAccount, accountID int64, days int, res *Result) error {
	to := time.Now()
	from := to.AddDate(0, 0, -days)

	batch, err := client.Statement(acc, from, to)
	if err != nil {
		var pe *banking.ProtocolError
		if errors.As(err, &pe) {
			pterm.Warning.Printfln("bank %s login %s account %s: statement fetch failed: %v", login.BLZ, login.User, acc.Number, err)
			res.SkippedAccounts++
			return nil
		}
		return err
	}
	if batch.Empty() {
		return nil
	}

	entries, err := statement.Reconcile(batch)
	if err != nil {
		pterm.Warning.Printfln("bank %s login %s account %s: rejecting batch: %v", login.BLZ, login.User, acc.Number, err)
		res.SkippedAccounts++
		return nil
	}
	statement.AssignSequence(entries)

	pterm.Debug.Printfln("  balance: opening %s, closing %s",
		statement.Opening(batch).StringFixed(2), batch.ClosingBalance.Amount.StringFixed(2))

	added, duplicates := 0, 0
	for i := range entries {
		e := &entries[i]
		pterm.Debug.Printfln(" * %s  %s  %q (%s)  new balance: %s",
			e.Line.Display(statement.FieldDate), e.Line.Display(statement.FieldAmount),
			e.Line.Display(statement.FieldApplicantName), e.Line.Display(statement.FieldApplicantIBAN),
			e.BalanceAfter.StringFixed(2))

		isNew, err := r.gate(accountID, e)
		if err != nil {
			return err
		}
		if isNew {
			added++
			r.dispatcher.Dispatch(r.notification(login, acc, e))
		} else {
			pterm.Debug.Printfln("   - transaction already in database")
			duplicates++
		}
	}

	res.Added += added
	res.Duplicates += duplicates
	pterm.Debug.Printfln(" + %d statements, %d new, %d known", len(entries), added, duplicates)
	return nil
}

// gate decides exactly once whether the entry is new. In a normal run
// the decision is the insert itself; in dry-run the same content key
// is checked read-only so classification stays correct without a
// durable write.
func (r *Runner) gate(accountID int64, e *statement.Entry) (bool, error) {
	row := buildRow(accountID, e)

	if r.cfg.DryRun {
		exists, err := r.repo.StatementExists(row)
		if err != nil {
			return false, err
		}
		return !exists, nil
	}

	_, err := r.repo.InsertStatement(row)
	if errors.Is(err, store.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func buildRow(accountID int64, e *statement.Entry) *store.StatementRow {
	l := e.Line
	return &store.StatementRow{
		AccountID:                   accountID,
		Day:                         l.Date().Format(statement.DateLayout),
		Amount:                      l.Amount(),
		ApplicantName:               l.Storage(statement.FieldApplicantName).TextPtr(),
		ApplicantIBAN:               l.Storage(statement.FieldApplicantIBAN).TextPtr(),
		PostingText:                 l.Storage(statement.FieldPostingText).TextPtr(),
		Purpose:                     l.Storage(statement.FieldPurpose).TextPtr(),
		AdditionalPurpose:           l.Storage(statement.FieldAdditionalPurpose).TextPtr(),
		AdditionalPositionReference: l.Storage(statement.FieldAdditionalPositionReference).TextPtr(),
		ApplicantCreditorID:         l.Storage(statement.FieldApplicantCreditorID).TextPtr(),
		EndToEndReference:           l.Storage(statement.FieldEndToEndReference).TextPtr(),
		PrimaNota:                   l.Storage(statement.FieldPrimaNota).TextPtr(),
		ReturnDebitNotes:            l.Storage(statement.FieldReturnDebitNotes).TextPtr(),
		TransactionCode:             l.Storage(statement.FieldTransactionCode).TextPtr(),
		IntradayNum:                 e.Sequence,
		BalanceAfter:                e.BalanceAfter,
	}
}

func (r *Runner) notification(login *config.LoginConfig, acc banking.SEPAAccount, e *statement.Entry) *notify.Notification {
	l := e.Line
	return &notify.Notification{
		Date:           l.Display(statement.FieldDate),
		BLZ:            login.BLZ,
		AccountNumber:  acc.Number,
		Amount:         l.Display(statement.FieldAmount),
		ApplicantName:  l.Display(statement.FieldApplicantName),
		PostingText:    l.Display(statement.FieldPostingText),
		HasPostingText: l.Has(statement.FieldPostingText),
		PurposeLines:   l.PurposeSegments(),
		Balance:        e.BalanceAfter.StringFixed(2),
	}
}
