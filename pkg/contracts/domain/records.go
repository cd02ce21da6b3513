// Package domain defines the record types produced by the statement-review
// extraction engine. These are the wire contracts rendered by the HTTP layer;
// field names follow the snake_case layout the table frontend consumes.
package domain

import "github.com/shopspring/decimal"

// MPRecord is the Merchant Pulse view of one bank-statement case: bank
// identification plus a monthly deposit/withdrawal summary. One source row
// yields exactly one MPRecord.
type MPRecord struct {
	CaseID                  string          `json:"case_id"`
	DocID                   string          `json:"doc_id"`
	DocLink                 string          `json:"doc_link,omitempty"`
	Validator               string          `json:"validator"`
	TrueBankName            string          `json:"true_bank_name"`
	StatementMonth          string          `json:"statement_month"`
	StatementYear           string          `json:"statement_year"`
	AccountHolder           string          `json:"account_holder"`
	PredictedBankName       string          `json:"predicted_bank_name"`
	StatementPeriod         string          `json:"statement_period"`
	AccountNumber           string          `json:"account_number"`
	TotalMonthlyDeposit     decimal.Decimal `json:"total_monthly_deposit"`
	TotalMonthlyWithdrawals decimal.Decimal `json:"total_monthly_withdrawals"`
	NumberOfDeposits        int             `json:"number_of_deposits"`
	NumberOfWithdrawals     int             `json:"number_of_withdrawals"`
}

// KYMRecord is the monetary-category view of the same case, correlated with
// the MPRecord through CaseID and DocID.
type KYMRecord struct {
	CaseID                       string          `json:"case_id"`
	DocID                        string          `json:"doc_id"`
	DocLink                      string          `json:"doc_link,omitempty"`
	Validator                    string          `json:"validator"`
	ActLast4Digit                string          `json:"act_last_4_digit"`
	MonthlyDeposit               decimal.Decimal `json:"monthly_deposit"`
	FundingTransferDeposits      decimal.Decimal `json:"funding_transfer_deposits"`
	AvgDailyBalance              Balance         `json:"avg_daily_balance"`
	ReturnItems                  int             `json:"return_items"`
	ReturnItemDays               int             `json:"return_item_days"`
	OverdraftDays                int             `json:"overdraft_days"`
	MonthlyNumberOfDeposits      int             `json:"monthly_number_of_deposits"`
	FundingTransferDepositAmount decimal.Decimal `json:"funding_transfer_deposit_amount"`
	MCADetails                   MCADetails      `json:"mca_details"`
}

// MCADetails breaks a statement month down into merchant-cash-advance related
// transaction categories. Every amount defaults to zero when the source cell
// is absent or unparseable.
type MCADetails struct {
	MCADeposit                 decimal.Decimal `json:"mca_deposit"`
	MCAWithdrawals             decimal.Decimal `json:"mca_withdrawals"`
	ReturnedItem               decimal.Decimal `json:"returned_item"`
	Overdrafts                 decimal.Decimal `json:"overdrafts"`
	ServiceCharges             decimal.Decimal `json:"service_charges"`
	ATMCashWithdrawal          decimal.Decimal `json:"atm_cash_withdrawal"`
	InternalTransferDeposit    decimal.Decimal `json:"internal_transfer_deposit"`
	InternalTransferWithdrawal decimal.Decimal `json:"internal_transfer_withdrawal"`
	OtherTransferDeposit       decimal.Decimal `json:"other_transfer_deposit"`
	OtherTransferWithdrawal    decimal.Decimal `json:"other_transfer_withdrawal"`
	StandardDeposit            decimal.Decimal `json:"standard_deposit"`
	StandardWithdrawal         decimal.Decimal `json:"standard_withdrawal"`
}
