package extract

import (
	"strings"

	"mpreview/internal/worksheet"
	"mpreview/pkg/contracts/domain"
)

// Sentinel marks a field the upstream source intentionally withheld. A cell
// holding exactly this text is treated as absent, never parsed.
const Sentinel = "Not Provided by Merchant Pulse"

// LinkResolver derives a retrievable document URL from a document identifier.
// Construction of the URL is a collaborator concern; the mapper only decides
// when a link applies. A nil resolver disables links.
type LinkResolver func(docID string) string

// cellAt reads one schema-addressed cell, treating out-of-range columns,
// unbound fields and sentinel-marked cells as empty.
func cellAt(row worksheet.Row, s Schema, f Field) worksheet.Cell {
	idx, ok := s[f]
	if !ok || idx < 0 || idx >= len(row) {
		return worksheet.Cell{}
	}
	c := row[idx]
	if c.Kind == worksheet.Text && strings.TrimSpace(c.Raw) == Sentinel {
		return worksheet.Cell{}
	}
	return c
}

// MapMP assembles one MPRecord from a worksheet row.
//
// Two fallback rules apply. The resolved bank name prefers the true name and
// falls back to the predicted one, and the output predicted name falls back
// to that resolved value, so neither is blank when either source cell had
// content. The statement month and year come from their direct cells first;
// period inference fills only the fields the direct cells left empty.
func MapMP(row worksheet.Row, s Schema, link LinkResolver) domain.MPRecord {
	period := Text(cellAt(row, s, FieldStatementPeriod))
	trueName := Text(cellAt(row, s, FieldTrueBankName))
	predicted := Text(cellAt(row, s, FieldPredictedBankName))

	month := MonthName(cellAt(row, s, FieldStatementMonth))
	year := Year(cellAt(row, s, FieldStatementYear))
	if month == "" || year == "" {
		inferredMonth, inferredYear := InferPeriod(period)
		if month == "" {
			month = inferredMonth
		}
		if year == "" {
			year = inferredYear
		}
	}

	resolved := trueName
	if resolved == "" {
		resolved = predicted
	}
	if predicted == "" {
		predicted = resolved
	}

	docID := Text(cellAt(row, s, FieldDocID))

	return domain.MPRecord{
		CaseID:                  Text(cellAt(row, s, FieldCaseID)),
		DocID:                   docID,
		DocLink:                 resolveLink(link, docID),
		Validator:               Text(cellAt(row, s, FieldValidator)),
		TrueBankName:            resolved,
		StatementMonth:          month,
		StatementYear:           year,
		AccountHolder:           Text(cellAt(row, s, FieldAccountHolder)),
		PredictedBankName:       predicted,
		StatementPeriod:         period,
		AccountNumber:           Text(cellAt(row, s, FieldAccountNumber)),
		TotalMonthlyDeposit:     Currency(cellAt(row, s, FieldTotalMonthlyDeposit)),
		TotalMonthlyWithdrawals: Currency(cellAt(row, s, FieldTotalMonthlyWithdrawals)),
		NumberOfDeposits:        Count(cellAt(row, s, FieldNumberOfDeposits)),
		NumberOfWithdrawals:     Count(cellAt(row, s, FieldNumberOfWithdrawals)),
	}
}

// MapKYM assembles one KYMRecord from a worksheet row. Sentinel suppression
// matters most here: several monetary columns carry the withheld-field marker
// and must coerce to zero instead of being parsed as text.
func MapKYM(row worksheet.Row, s Schema, link LinkResolver) domain.KYMRecord {
	docID := Text(cellAt(row, s, FieldDocID))

	return domain.KYMRecord{
		CaseID:                       Text(cellAt(row, s, FieldCaseID)),
		DocID:                        docID,
		DocLink:                      resolveLink(link, docID),
		Validator:                    Text(cellAt(row, s, FieldValidator)),
		ActLast4Digit:                Text(cellAt(row, s, FieldActLast4Digit)),
		MonthlyDeposit:               Currency(cellAt(row, s, FieldMonthlyDeposit)),
		FundingTransferDeposits:      Currency(cellAt(row, s, FieldFundingTransferDeposits)),
		AvgDailyBalance:              BalanceOf(cellAt(row, s, FieldAvgDailyBalance)),
		ReturnItems:                  Count(cellAt(row, s, FieldReturnItems)),
		ReturnItemDays:               Count(cellAt(row, s, FieldReturnItemDays)),
		OverdraftDays:                Count(cellAt(row, s, FieldOverdraftDays)),
		MonthlyNumberOfDeposits:      Count(cellAt(row, s, FieldMonthlyNumberOfDeposits)),
		FundingTransferDepositAmount: Currency(cellAt(row, s, FieldFundingTransferDepositAmount)),
		MCADetails: domain.MCADetails{
			MCADeposit:                 Currency(cellAt(row, s, FieldMCADeposit)),
			MCAWithdrawals:             Currency(cellAt(row, s, FieldMCAWithdrawals)),
			ReturnedItem:               Currency(cellAt(row, s, FieldReturnedItem)),
			Overdrafts:                 Currency(cellAt(row, s, FieldOverdrafts)),
			ServiceCharges:             Currency(cellAt(row, s, FieldServiceCharges)),
			ATMCashWithdrawal:          Currency(cellAt(row, s, FieldATMCashWithdrawal)),
			InternalTransferDeposit:    Currency(cellAt(row, s, FieldInternalTransferDeposit)),
			InternalTransferWithdrawal: Currency(cellAt(row, s, FieldInternalTransferWithdrawal)),
			OtherTransferDeposit:       Currency(cellAt(row, s, FieldOtherTransferDeposit)),
			OtherTransferWithdrawal:    Currency(cellAt(row, s, FieldOtherTransferWithdrawal)),
			StandardDeposit:            Currency(cellAt(row, s, FieldStandardDeposit)),
			StandardWithdrawal:         Currency(cellAt(row, s, FieldStandardWithdrawal)),
		},
	}
}

func resolveLink(link LinkResolver, docID string) string {
	if link == nil || docID == "" {
		return ""
	}
	return link(docID)
}
