package banking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// BridgeClient talks JSON over HTTP to a local FinTS gateway sidecar.
// The gateway owns the PIN/TAN dialog; this client only ferries
// requests and translates the gateway's records into RawLines.
type BridgeClient struct {
	baseURL string
	blz     string
	user    string
	pin     string
	http    *http.Client
}

// Dial opens a BridgeClient against the gateway URL configured for the
// login's bank. It is the default Dialer.
func Dial(blz, user, pin, url string) (Client, error) {
	if url == "" {
		return nil, fmt.Errorf("no gateway url for bank %s", blz)
	}
	return &BridgeClient{
		baseURL: url,
		blz:     blz,
		user:    user,
		pin:     pin,
		http:    &http.Client{},
	}, nil
}

type bridgeAccount struct {
	Number string `json:"number"`
	IBAN   string `json:"iban"`
	BIC    string `json:"bic"`
}

type bridgeBalance struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Date     string          `json:"date"`
}

type bridgeLine struct {
	Date                        string          `json:"date"`
	Amount                      decimal.Decimal `json:"amount"`
	Currency                    string          `json:"currency"`
	ApplicantName               *string         `json:"applicant_name"`
	ApplicantIBAN               *string         `json:"applicant_iban"`
	PostingText                 *string         `json:"posting_text"`
	Purpose                     *string         `json:"purpose"`
	AdditionalPurpose           *string         `json:"additional_purpose"`
	AdditionalPositionReference *string         `json:"additional_position_reference"`
	ApplicantCreditorID         *string         `json:"applicant_creditor_id"`
	EndToEndReference           *string         `json:"end_to_end_reference"`
	PrimaNota                   *string         `json:"prima_nota"`
	ReturnDebitNotes            *string         `json:"return_debit_notes"`
	TransactionCode             *string         `json:"transaction_code"`
}

type bridgeStatement struct {
	Lines          []bridgeLine   `json:"transactions"`
	ClosingBalance *bridgeBalance `json:"closing_balance"`
}

func (c *BridgeClient) Accounts() ([]SEPAAccount, error) {
	var res struct {
		Accounts []bridgeAccount `json:"accounts"`
	}
	if err := c.post("/accounts", map[string]string{
		"blz":  c.blz,
		"user": c.user,
		"pin":  c.pin,
	}, &res); err != nil {
		return nil, err
	}

	accounts := make([]SEPAAccount, 0, len(res.Accounts))
	for _, a := range res.Accounts {
		accounts = append(accounts, SEPAAccount{Number: a.Number, IBAN: a.IBAN, BIC: a.BIC})
	}
	return accounts, nil
}

func (c *BridgeClient) Statement(acc SEPAAccount, from, to time.Time) (*Batch, error) {
	var res bridgeStatement
	if err := c.post("/statement", map[string]string{
		"blz":     c.blz,
		"user":    c.user,
		"pin":     c.pin,
		"account": acc.Number,
		"from":    from.Format(dateLayout),
		"to":      to.Format(dateLayout),
	}, &res); err != nil {
		return nil, err
	}

	batch := &Batch{}
	if res.ClosingBalance != nil {
		date, err := time.Parse(dateLayout, res.ClosingBalance.Date)
		if err != nil {
			return nil, c.protocolErr("statement", fmt.Errorf("bad closing balance date %q: %w", res.ClosingBalance.Date, err))
		}
		batch.ClosingBalance = &Balance{
			Amount:   res.ClosingBalance.Amount,
			Currency: res.ClosingBalance.Currency,
			Date:     date,
		}
	}
	for _, l := range res.Lines {
		date, err := time.Parse(dateLayout, l.Date)
		if err != nil {
			return nil, c.protocolErr("statement", fmt.Errorf("bad transaction date %q: %w", l.Date, err))
		}
		batch.Lines = append(batch.Lines, RawLine{
			Date:                        date,
			Amount:                      l.Amount,
			Currency:                    l.Currency,
			ApplicantName:               l.ApplicantName,
			ApplicantIBAN:               l.ApplicantIBAN,
			PostingText:                 l.PostingText,
			Purpose:                     l.Purpose,
			AdditionalPurpose:           l.AdditionalPurpose,
			AdditionalPositionReference: l.AdditionalPositionReference,
			ApplicantCreditorID:         l.ApplicantCreditorID,
			EndToEndReference:           l.EndToEndReference,
			PrimaNota:                   l.PrimaNota,
			ReturnDebitNotes:            l.ReturnDebitNotes,
			TransactionCode:             l.TransactionCode,
		})
	}
	return batch, nil
}

func (c *BridgeClient) post(path string, req any, res any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode gateway request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return c.protocolErr(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var gwErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&gwErr)
		if gwErr.Error == "" {
			gwErr.Error = resp.Status
		}
		return c.protocolErr(path, fmt.Errorf("gateway: %s", gwErr.Error))
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return c.protocolErr(path, fmt.Errorf("bad gateway response: %w", err))
	}
	return nil
}

func (c *BridgeClient) protocolErr(op string, err error) error {
	return &ProtocolError{BLZ: c.blz, User: c.user, Op: op, Err: err}
}
