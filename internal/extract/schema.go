package extract

import "fmt"

// Field names one logical column of an output record. Schemas bind fields to
// zero-based worksheet column indices, so the mapper never hard-codes a
// layout: the same deployment has been observed running against several
// incompatible column arrangements, and the schema is the configuration
// artifact that makes that drift explicit.
type Field string

// MP record fields.
const (
	FieldCaseID                  Field = "case_id"
	FieldDocID                   Field = "doc_id"
	FieldValidator               Field = "validator"
	FieldTrueBankName            Field = "true_bank_name"
	FieldStatementMonth          Field = "statement_month"
	FieldStatementYear           Field = "statement_year"
	FieldAccountHolder           Field = "account_holder"
	FieldPredictedBankName       Field = "predicted_bank_name"
	FieldStatementPeriod         Field = "statement_period"
	FieldAccountNumber           Field = "account_number"
	FieldTotalMonthlyDeposit     Field = "total_monthly_deposit"
	FieldTotalMonthlyWithdrawals Field = "total_monthly_withdrawals"
	FieldNumberOfDeposits        Field = "number_of_deposits"
	FieldNumberOfWithdrawals     Field = "number_of_withdrawals"
)

// KYM record fields.
const (
	FieldActLast4Digit                Field = "act_last_4_digit"
	FieldMonthlyDeposit               Field = "monthly_deposit"
	FieldFundingTransferDeposits      Field = "funding_transfer_deposits"
	FieldAvgDailyBalance              Field = "avg_daily_balance"
	FieldReturnItems                  Field = "return_items"
	FieldReturnItemDays               Field = "return_item_days"
	FieldOverdraftDays                Field = "overdraft_days"
	FieldMonthlyNumberOfDeposits      Field = "monthly_number_of_deposits"
	FieldFundingTransferDepositAmount Field = "funding_transfer_deposit_amount"
)

// MCA breakdown fields.
const (
	FieldMCADeposit                 Field = "mca_deposit"
	FieldMCAWithdrawals             Field = "mca_withdrawals"
	FieldReturnedItem               Field = "returned_item"
	FieldOverdrafts                 Field = "overdrafts"
	FieldServiceCharges             Field = "service_charges"
	FieldATMCashWithdrawal          Field = "atm_cash_withdrawal"
	FieldInternalTransferDeposit    Field = "internal_transfer_deposit"
	FieldInternalTransferWithdrawal Field = "internal_transfer_withdrawal"
	FieldOtherTransferDeposit       Field = "other_transfer_deposit"
	FieldOtherTransferWithdrawal    Field = "other_transfer_withdrawal"
	FieldStandardDeposit            Field = "standard_deposit"
	FieldStandardWithdrawal         Field = "standard_withdrawal"
)

// Schema maps logical fields to zero-based column indices for one output
// record type. MP and KYM schemas read the same worksheet, so their indices
// may overlap freely.
type Schema map[Field]int

// Validate checks that every required field is bound to a non-negative index.
func (s Schema) Validate(required []Field) error {
	for _, f := range required {
		idx, ok := s[f]
		if !ok {
			return fmt.Errorf("schema is missing field %q", f)
		}
		if idx < 0 {
			return fmt.Errorf("schema field %q has negative column index %d", f, idx)
		}
	}
	return nil
}

// MPFields lists every field an MP schema must bind.
var MPFields = []Field{
	FieldCaseID, FieldDocID, FieldValidator, FieldTrueBankName,
	FieldStatementMonth, FieldStatementYear, FieldAccountHolder,
	FieldPredictedBankName, FieldStatementPeriod, FieldAccountNumber,
	FieldTotalMonthlyDeposit, FieldTotalMonthlyWithdrawals,
	FieldNumberOfDeposits, FieldNumberOfWithdrawals,
}

// KYMFields lists every field a KYM schema must bind.
var KYMFields = []Field{
	FieldCaseID, FieldDocID, FieldValidator, FieldActLast4Digit,
	FieldMonthlyDeposit, FieldFundingTransferDeposits, FieldAvgDailyBalance,
	FieldReturnItems, FieldReturnItemDays, FieldOverdraftDays,
	FieldMonthlyNumberOfDeposits, FieldFundingTransferDepositAmount,
	FieldMCADeposit, FieldMCAWithdrawals, FieldReturnedItem, FieldOverdrafts,
	FieldServiceCharges, FieldATMCashWithdrawal, FieldInternalTransferDeposit,
	FieldInternalTransferWithdrawal, FieldOtherTransferDeposit,
	FieldOtherTransferWithdrawal, FieldStandardDeposit, FieldStandardWithdrawal,
}

// DefaultMPSchema returns the MP column layout of the current source files.
func DefaultMPSchema() Schema {
	return Schema{
		FieldCaseID:                  0,
		FieldDocID:                   1,
		FieldValidator:               2,
		FieldTrueBankName:            11,
		FieldStatementMonth:          12,
		FieldStatementYear:           13,
		FieldAccountHolder:           14,
		FieldPredictedBankName:       15,
		FieldStatementPeriod:         16,
		FieldAccountNumber:           17,
		FieldTotalMonthlyDeposit:     18,
		FieldTotalMonthlyWithdrawals: 19,
		FieldNumberOfDeposits:        20,
		FieldNumberOfWithdrawals:     21,
	}
}

// DefaultKYMSchema returns the KYM column layout of the current source files.
// The MCA breakdown occupies the twelve columns starting at 22.
func DefaultKYMSchema() Schema {
	return Schema{
		FieldCaseID:                       0,
		FieldDocID:                        1,
		FieldValidator:                    2,
		FieldActLast4Digit:                3,
		FieldMonthlyDeposit:               4,
		FieldFundingTransferDeposits:      5,
		FieldAvgDailyBalance:              6,
		FieldReturnItems:                  7,
		FieldReturnItemDays:               8,
		FieldOverdraftDays:                9,
		FieldMonthlyNumberOfDeposits:      10,
		FieldFundingTransferDepositAmount: 21,
		FieldMCADeposit:                   22,
		FieldMCAWithdrawals:               23,
		FieldReturnedItem:                 24,
		FieldOverdrafts:                   25,
		FieldServiceCharges:               26,
		FieldATMCashWithdrawal:            27,
		FieldInternalTransferDeposit:      28,
		FieldInternalTransferWithdrawal:   29,
		FieldOtherTransferDeposit:         30,
		FieldOtherTransferWithdrawal:      31,
		FieldStandardDeposit:              32,
		FieldStandardWithdrawal:           33,
	}
}
