package schema

// Transaction record layouts. Every record carries the parent form type and
// image ID ahead of the fields read from the filing.

// ScheduleAFieldSpecs lists itemized receipts columns.
var ScheduleAFieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "CommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "BackRefTransID", Type: FieldText},
	{Name: "BackRefSchedName", Type: FieldText},
	{Name: "EntityType", Type: FieldText},
	{Name: "ContOrgName", Type: FieldText},
	{Name: "ContLastName", Type: FieldText},
	{Name: "ContFirstName", Type: FieldText},
	{Name: "ContMidName", Type: FieldText},
	{Name: "ContPrefix", Type: FieldText},
	{Name: "ContSuffix", Type: FieldText},
	{Name: "ContAddress1", Type: FieldText},
	{Name: "ContAddress2", Type: FieldText},
	{Name: "ContCity", Type: FieldText},
	{Name: "ContState", Type: FieldText},
	{Name: "ContZip", Type: FieldText},
	{Name: "ElecCode", Type: FieldText},
	{Name: "ElecOtherDesc", Type: FieldText},
	{Name: "strContDate", Type: FieldDate},
	{Name: "ContAmount", Type: FieldNumeric},
	{Name: "ContAggregate", Type: FieldNumeric},
	{Name: "ContPurposeCode", Type: FieldText},
	{Name: "ContPurposeDesc", Type: FieldText},
	{Name: "ContEmployer", Type: FieldText},
	{Name: "ContOccupation", Type: FieldText},
	{Name: "DonorCommFECID", Type: FieldText},
	{Name: "DonorCommName", Type: FieldText},
	{Name: "DonorCandFECID", Type: FieldText},
	{Name: "DonorCandLastName", Type: FieldText},
	{Name: "DonorCandFirstName", Type: FieldText},
	{Name: "DonorCandMidName", Type: FieldText},
	{Name: "DonorCandPrefix", Type: FieldText},
	{Name: "DonorCandSuffix", Type: FieldText},
	{Name: "DonorCandOffice", Type: FieldText},
	{Name: "DonorCandState", Type: FieldText},
	{Name: "DonorCandDist", Type: FieldText},
	{Name: "ConduitName", Type: FieldText},
	{Name: "ConduitAddress1", Type: FieldText},
	{Name: "ConduitAddress2", Type: FieldText},
	{Name: "ConduitCity", Type: FieldText},
	{Name: "ConduitState", Type: FieldText},
	{Name: "ConduitZip", Type: FieldText},
	{Name: "MemoCode", Type: FieldText},
	{Name: "MemoText", Type: FieldText},
}

// ScheduleBFieldSpecs lists itemized disbursement columns.
var ScheduleBFieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "FilerCommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "BackRefTransID", Type: FieldText},
	{Name: "BackRefSchedName", Type: FieldText},
	{Name: "EntityType", Type: FieldText},
	{Name: "PayeeOrgName", Type: FieldText},
	{Name: "PayeeLastName", Type: FieldText},
	{Name: "PayeeFirstName", Type: FieldText},
	{Name: "PayeeMidName", Type: FieldText},
	{Name: "PayeePrefix", Type: FieldText},
	{Name: "PayeeSuffix", Type: FieldText},
	{Name: "PayeeAddress1", Type: FieldText},
	{Name: "PayeeAddress2", Type: FieldText},
	{Name: "PayeeCity", Type: FieldText},
	{Name: "PayeeState", Type: FieldText},
	{Name: "PayeeZip", Type: FieldText},
	{Name: "ElecCode", Type: FieldText},
	{Name: "ElecOtherDesc", Type: FieldText},
	{Name: "strExpDate", Type: FieldDate},
	{Name: "ExpAmount", Type: FieldNumeric},
	{Name: "SemiAnnRefundedBundledAmt", Type: FieldNumeric},
	{Name: "ExpPurpCode", Type: FieldText},
	{Name: "ExpPurpDesc", Type: FieldText},
	{Name: "CatCode", Type: FieldText},
	{Name: "BenCommFECID", Type: FieldText},
	{Name: "BenCommName", Type: FieldText},
	{Name: "BenCandFECID", Type: FieldText},
	{Name: "BenCandLastName", Type: FieldText},
	{Name: "BenCandFirstName", Type: FieldText},
	{Name: "BenCandMidName", Type: FieldText},
	{Name: "BenCandPrefix", Type: FieldText},
	{Name: "BenCandSuffix", Type: FieldText},
	{Name: "BenCandOffice", Type: FieldText},
	{Name: "BenCandState", Type: FieldText},
	{Name: "BenCandDist", Type: FieldText},
	{Name: "ConduitName", Type: FieldText},
	{Name: "ConduitAddress1", Type: FieldText},
	{Name: "ConduitAddress2", Type: FieldText},
	{Name: "ConduitCity", Type: FieldText},
	{Name: "ConduitState", Type: FieldText},
	{Name: "ConduitZip", Type: FieldText},
	{Name: "MemoCode", Type: FieldText},
	{Name: "MemoText", Type: FieldText},
}

// ScheduleCFieldSpecs lists loan columns.
var ScheduleCFieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "FilerCommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "RectLineNbr", Type: FieldText},
	{Name: "EntityType", Type: FieldText},
	{Name: "LenderOrgName", Type: FieldText},
	{Name: "LenderLastName", Type: FieldText},
	{Name: "LenderFirstName", Type: FieldText},
	{Name: "LenderMidName", Type: FieldText},
	{Name: "LenderPrefix", Type: FieldText},
	{Name: "LenderSuffix", Type: FieldText},
	{Name: "LenderAddress1", Type: FieldText},
	{Name: "LenderAddress2", Type: FieldText},
	{Name: "LenderCity", Type: FieldText},
	{Name: "LenterState", Type: FieldText},
	{Name: "LenderZip", Type: FieldText},
	{Name: "ElecCod", Type: FieldText},
	{Name: "ElecOtherDesc", Type: FieldText},
	{Name: "LoanAmt", Type: FieldNumeric},
	{Name: "LoanPymtToDate", Type: FieldNumeric},
	{Name: "LoanBal", Type: FieldNumeric},
	{Name: "strLoanIncurredDate", Type: FieldDate},
	{Name: "strLoanDueDate", Type: FieldDate},
	{Name: "LoanIntRate", Type: FieldText},
	{Name: "LoanSecuredFlag", Type: FieldText},
	{Name: "LoanPersFundsFlag", Type: FieldText},
	{Name: "LenderCommID", Type: FieldText},
	{Name: "LenderCandID", Type: FieldText},
	{Name: "LenderCandLastName", Type: FieldText},
	{Name: "LenderCandFirstName", Type: FieldText},
	{Name: "LenderCandMidName", Type: FieldText},
	{Name: "LenderCandPrefix", Type: FieldText},
	{Name: "LenderCandSuffix", Type: FieldText},
	{Name: "LenderCandOffice", Type: FieldText},
	{Name: "LenderCandState", Type: FieldText},
	{Name: "LenderCandDist", Type: FieldText},
	{Name: "MemoCode", Type: FieldText},
	{Name: "MemoText", Type: FieldText},
}

// ScheduleC1FieldSpecs lists loan and line-of-credit columns from lending institutions.
var ScheduleC1FieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "FilerCommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "BackRefTransID", Type: FieldText},
	{Name: "LenderOrgName", Type: FieldText},
	{Name: "LenderAddress1", Type: FieldText},
	{Name: "LenderAddress2", Type: FieldText},
	{Name: "LenderCity", Type: FieldText},
	{Name: "LenderState", Type: FieldText},
	{Name: "LenderZip", Type: FieldText},
	{Name: "LoanAmt", Type: FieldNumeric},
	{Name: "LoanIntRate", Type: FieldText},
	{Name: "strLoanIncurredDate", Type: FieldDate},
	{Name: "strLoanDueDate", Type: FieldDate},
	{Name: "A1_LoanRestructuredFlag", Type: FieldText},
	{Name: "A2_strOrigLoanIncurredDate", Type: FieldDate},
	{Name: "B1_CreditAmtThisDraw", Type: FieldNumeric},
	{Name: "B2_TotBalance", Type: FieldNumeric},
	{Name: "C_OthersLiableFlag", Type: FieldText},
	{Name: "D_CollateralFlag", Type: FieldText},
	{Name: "D1_CollateralDescription", Type: FieldText},
	{Name: "D2_CollateralValue", Type: FieldText},
	{Name: "D3_PerfectedInterestFlag", Type: FieldText},
	{Name: "E1_FutureIncomeFlag", Type: FieldText},
	{Name: "E2_FutureIncomeDesc", Type: FieldText},
	{Name: "E3_EstimatedValue", Type: FieldText},
	{Name: "E4_strDepositoryAcctEstablishedDate", Type: FieldDate},
	{Name: "E5_AcctLocName", Type: FieldText},
	{Name: "E6_AcctAddress1", Type: FieldText},
	{Name: "E7_AcctAddress1", Type: FieldText},
	{Name: "E8_AcctCity", Type: FieldText},
	{Name: "E9_State", Type: FieldText},
	{Name: "E10_Zip", Type: FieldText},
	{Name: "E11_strDepositAcctAuthDate", Type: FieldDate},
	{Name: "F_LoanBasisDesc", Type: FieldText},
	{Name: "G_TreasLastName", Type: FieldText},
	{Name: "G_TreasFirstName", Type: FieldText},
	{Name: "G_TreasMidName", Type: FieldText},
	{Name: "G_TreasPrefix", Type: FieldText},
	{Name: "G_TreasSuffix", Type: FieldText},
	{Name: "G_strDateSigned", Type: FieldDate},
	{Name: "H_AuthorizedLastName", Type: FieldText},
	{Name: "H_AuthorizedfirstName", Type: FieldText},
	{Name: "H_AuthorizedMidName", Type: FieldText},
	{Name: "H_AuthorizedPrefix", Type: FieldText},
	{Name: "H_AuthorizedSuffix", Type: FieldText},
	{Name: "H_AuthorizedTitle", Type: FieldText},
	{Name: "H_strDateSigned", Type: FieldDate},
}

// ScheduleC2FieldSpecs lists loan guarantor columns.
var ScheduleC2FieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "FilerCommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "BackRefTransID", Type: FieldText},
	{Name: "GuarLastName", Type: FieldText},
	{Name: "GuarFirstName", Type: FieldText},
	{Name: "GuarMidName", Type: FieldText},
	{Name: "GuarPrefix", Type: FieldText},
	{Name: "GuarSuffix", Type: FieldText},
	{Name: "GuarAddress1", Type: FieldText},
	{Name: "GuarAddress2", Type: FieldText},
	{Name: "GuarCity", Type: FieldText},
	{Name: "GuarState", Type: FieldText},
	{Name: "GuarZip", Type: FieldText},
	{Name: "GuarEmployer", Type: FieldText},
	{Name: "GuarOccupation", Type: FieldText},
	{Name: "GuarAmt", Type: FieldNumeric},
}

// ScheduleDFieldSpecs lists debts and obligations columns.
var ScheduleDFieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "CommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "EntityType", Type: FieldText},
	{Name: "CredOrgName", Type: FieldText},
	{Name: "CredLastName", Type: FieldText},
	{Name: "CredFirstName", Type: FieldText},
	{Name: "CredMidName", Type: FieldText},
	{Name: "CredPrefix", Type: FieldText},
	{Name: "CredSuffix", Type: FieldText},
	{Name: "CredAddress1", Type: FieldText},
	{Name: "CredAddress2", Type: FieldText},
	{Name: "CredCity", Type: FieldText},
	{Name: "CredState", Type: FieldText},
	{Name: "CredZip", Type: FieldText},
	{Name: "DebtPurpose", Type: FieldText},
	{Name: "BegBal_Prd", Type: FieldNumeric},
	{Name: "IncurredAmt_Prd", Type: FieldNumeric},
	{Name: "PaymtAmt_Prd", Type: FieldNumeric},
	{Name: "BalanceAtClose_Prd", Type: FieldNumeric},
}

// ScheduleEFieldSpecs lists independent expenditure columns.
var ScheduleEFieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "FilerCommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "BackRefTransID", Type: FieldText},
	{Name: "BackRefSchedName", Type: FieldText},
	{Name: "EntityType", Type: FieldText},
	{Name: "PayeeOrgName", Type: FieldText},
	{Name: "PayeeLastName", Type: FieldText},
	{Name: "PayeeFirstName", Type: FieldText},
	{Name: "PayeeMidName", Type: FieldText},
	{Name: "PayeePrefix", Type: FieldText},
	{Name: "PayeeSuffix", Type: FieldText},
	{Name: "PayeeAddress1", Type: FieldText},
	{Name: "PayeeAddress2", Type: FieldText},
	{Name: "PayeeCity", Type: FieldText},
	{Name: "PayeeState", Type: FieldText},
	{Name: "PayeeZip", Type: FieldText},
	{Name: "ElecCode", Type: FieldText},
	{Name: "ElecOtherDesc", Type: FieldText},
	{Name: "strExpDate", Type: FieldDate},
	{Name: "ExpAmount", Type: FieldNumeric},
	{Name: "CalYTD", Type: FieldNumeric},
	{Name: "ExpPurpCode", Type: FieldText},
	{Name: "ExpPurpDesc", Type: FieldText},
	{Name: "CatCode", Type: FieldText},
	{Name: "PayeeCommFECID", Type: FieldText},
	{Name: "SuppOppCode", Type: FieldText},
	{Name: "SuppOppCandID", Type: FieldText},
	{Name: "SuppOppCandLastName", Type: FieldText},
	{Name: "SuppOppCandFirstName", Type: FieldText},
	{Name: "SuppOppCandMidName", Type: FieldText},
	{Name: "SuppOppCandPrefix", Type: FieldText},
	{Name: "SuppOppCandSuffix", Type: FieldText},
	{Name: "SuppOppCandOffice", Type: FieldText},
	{Name: "SuppOppCandState", Type: FieldText},
	{Name: "SuppOppCandDist", Type: FieldText},
	{Name: "CompLastName", Type: FieldText},
	{Name: "CompFirstName", Type: FieldText},
	{Name: "CompMidName", Type: FieldText},
	{Name: "CompPrefix", Type: FieldText},
	{Name: "CompSuffix", Type: FieldText},
	{Name: "strDateSigned", Type: FieldDate},
	{Name: "MemoCode", Type: FieldText},
	{Name: "MemoText", Type: FieldText},
}

// TextFieldSpecs lists free-text memo columns.
var TextFieldSpecs = []FieldSpec{
	{Name: "ParentType", Type: FieldText},
	{Name: "ImageId", Type: FieldText},
	{Name: "RecType", Type: FieldText},
	{Name: "CommID", Type: FieldText},
	{Name: "TransID", Type: FieldText},
	{Name: "BackRefTransID", Type: FieldText},
	{Name: "BackRefFormName", Type: FieldText},
	{Name: "FullText", Type: FieldText},
}
