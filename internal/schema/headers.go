package schema

// Report header layouts. The first column of every header row is the filing's image ID;
// the remaining columns follow the second line of the filing.

// F3HeaderFieldSpecs lists the Form 3 summary columns (F3A, F3N).
var F3HeaderFieldSpecs = []FieldSpec{
	{Name: "ImageID", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "CommID", Type: FieldText},
	{Name: "CommName", Type: FieldText},
	{Name: "AddressChange", Type: FieldText},
	{Name: "CommAddress1", Type: FieldText},
	{Name: "CommAddress2", Type: FieldText},
	{Name: "CommCity", Type: FieldText},
	{Name: "CommState", Type: FieldText},
	{Name: "CommZip", Type: FieldText},
	{Name: "ElecState", Type: FieldText},
	{Name: "ElecDist", Type: FieldText},
	{Name: "ReptCode", Type: FieldText},
	{Name: "ElecCode", Type: FieldText},
	{Name: "strElecDate", Type: FieldDate},
	{Name: "StateOfElec", Type: FieldText},
	{Name: "strCovgFromDate", Type: FieldDate},
	{Name: "strCovgToDate", Type: FieldDate},
	{Name: "TreasLastName", Type: FieldText},
	{Name: "TreasFirstName", Type: FieldText},
	{Name: "TreasMidName", Type: FieldText},
	{Name: "TreasPrefix", Type: FieldText},
	{Name: "TreasSuffix", Type: FieldText},
	{Name: "strDateSigned", Type: FieldDate},
	{Name: "Line6a_TotalContribs_Prd", Type: FieldNumeric},
	{Name: "Line6b_TotalContribRefunds_Prd", Type: FieldNumeric},
	{Name: "Line6c_NetContribs_Prd", Type: FieldNumeric},
	{Name: "Line7a_TotOpExps_Prd", Type: FieldNumeric},
	{Name: "Line7b_TotOffsetToOpExps_Prd", Type: FieldNumeric},
	{Name: "Line7c_NetOpExps_Prd", Type: FieldNumeric},
	{Name: "Line8_CashOnHandAtClose_Prd", Type: FieldNumeric},
	{Name: "Line9_DebtsTo_Prd", Type: FieldNumeric},
	{Name: "Line10_DebtsBy_Prd", Type: FieldNumeric},
	{Name: "Line11a1_IndivsItemized_Prd", Type: FieldNumeric},
	{Name: "Line11a2_IndivsUnitemized_Prd", Type: FieldNumeric},
	{Name: "Line11a3_IndivsContribTotal_Prd", Type: FieldNumeric},
	{Name: "Line11b_PolPtyComms_Prd", Type: FieldNumeric},
	{Name: "Line11c_OtherPACs_Prd", Type: FieldNumeric},
	{Name: "Line11d_Candidate_Prd", Type: FieldNumeric},
	{Name: "Line11e_TotalContribs_Prd", Type: FieldNumeric},
	{Name: "Line12_TransfersFrom_Prd", Type: FieldNumeric},
	{Name: "Line13a_LoansByCand_Prd", Type: FieldNumeric},
	{Name: "Line13b_OtherLoans_Prd", Type: FieldNumeric},
	{Name: "Line13c_TotLoans_Prd", Type: FieldNumeric},
	{Name: "Line14_OffsetsToOpExps_Prd", Type: FieldNumeric},
	{Name: "Line15_OtherReceipts_Prd", Type: FieldNumeric},
	{Name: "Line16_TotReceipts_Prd", Type: FieldNumeric},
	{Name: "Line17_OpExps_Prd", Type: FieldNumeric},
	{Name: "Line18_TransToOtherComms_Prd", Type: FieldNumeric},
	{Name: "Line19a_LoanRepaymts_Cand_Prd", Type: FieldNumeric},
	{Name: "Line19b_LoanRepaymts_Other_Prd", Type: FieldNumeric},
	{Name: "Line19c_TotLoanRepaymts_Prd", Type: FieldNumeric},
	{Name: "Loan20a_IndivRefunds_Prd", Type: FieldNumeric},
	{Name: "Line20b_PolPartyCommRefunds_Prd", Type: FieldNumeric},
	{Name: "Line20c_OtherPolCommRefunds_Prd", Type: FieldNumeric},
	{Name: "Line20d_TotContRefunds_Prd", Type: FieldNumeric},
	{Name: "Line21_OtherDisb_Prd", Type: FieldNumeric},
	{Name: "Line22_TotDisb_Prd", Type: FieldNumeric},
	{Name: "Line23_CashBegin_Prd", Type: FieldNumeric},
	{Name: "Line24_TotReceipts_Prd", Type: FieldNumeric},
	{Name: "Line25_Subtotal", Type: FieldNumeric},
	{Name: "Line26_TotDisbThisPrd_Prd", Type: FieldNumeric},
	{Name: "Line27_CashAtClose_Prd", Type: FieldNumeric},
	{Name: "Line6a_TotalContribs_Tot", Type: FieldNumeric},
	{Name: "Line6b_TotalContribRefunds_Tot", Type: FieldNumeric},
	{Name: "Line6c_NetContribs_Tot", Type: FieldNumeric},
	{Name: "Line7a_TotOpExps_Tot", Type: FieldNumeric},
	{Name: "Line7b_TotOffsetToOpExps_Tot", Type: FieldNumeric},
	{Name: "Line7c_NetOpExps_Tot", Type: FieldNumeric},
	{Name: "Line11a1_IndivsItemized_Tot", Type: FieldNumeric},
	{Name: "Line11a2_IndivsUnitemized_Tot", Type: FieldNumeric},
	{Name: "Line11a3_IndivsContribTotal_Tot", Type: FieldNumeric},
	{Name: "Line11b_PolPtyComms_Tot", Type: FieldNumeric},
	{Name: "Line11c_OtherPACs_Tot", Type: FieldNumeric},
	{Name: "Line11d_Candidate_Tot", Type: FieldNumeric},
	{Name: "Line11e_TotalContribs_Tot", Type: FieldNumeric},
	{Name: "Line12_TransfersFrom_Tot", Type: FieldNumeric},
	{Name: "Line13a_LoansByCand_Tot", Type: FieldNumeric},
	{Name: "Line13b_OtherLoans_Tot", Type: FieldNumeric},
	{Name: "Line13c_TotLoans_Tot", Type: FieldNumeric},
	{Name: "Line14_OffsetsToOpExps_Tot", Type: FieldNumeric},
	{Name: "Line15_OtherReceipts_Tot", Type: FieldNumeric},
	{Name: "Line16_TotReceipts_Tot", Type: FieldNumeric},
	{Name: "Line17_OpExps_Tot", Type: FieldNumeric},
	{Name: "Line18_TransToOtherComms_Tot", Type: FieldNumeric},
	{Name: "Line19a_LoanRepaymts_Cand_Tot", Type: FieldNumeric},
	{Name: "Line19b_LoanRepaymts_Other_Tot", Type: FieldNumeric},
	{Name: "Line19c_TotLoanRepaymts_Tot", Type: FieldNumeric},
	{Name: "Loan20a_IndivRefunds_Tot", Type: FieldNumeric},
	{Name: "Line20b_PolPartyCommRefunds_Tot", Type: FieldNumeric},
	{Name: "Line20c_OtherPolCommRefunds_Tot", Type: FieldNumeric},
	{Name: "Line20d_TotContRefunds_Tot", Type: FieldNumeric},
	{Name: "Line21_OtherDisb_Tot", Type: FieldNumeric},
	{Name: "Line22_TotDisb_Tot", Type: FieldNumeric},
}

// F3PHeaderFieldSpecs lists the Form 3P summary columns (F3PA, F3PN).
var F3PHeaderFieldSpecs = []FieldSpec{
	{Name: "ImageID", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "CommID", Type: FieldText},
	{Name: "CommName", Type: FieldText},
	{Name: "AddressChange", Type: FieldText},
	{Name: "CommAddress1", Type: FieldText},
	{Name: "CommAddress2", Type: FieldText},
	{Name: "CommCity", Type: FieldText},
	{Name: "CommState", Type: FieldText},
	{Name: "CommZip", Type: FieldText},
	{Name: "ActivityPrim", Type: FieldText},
	{Name: "ActivityGen", Type: FieldText},
	{Name: "ReptCode", Type: FieldText},
	{Name: "ElecCode", Type: FieldText},
	{Name: "strElecDate", Type: FieldDate},
	{Name: "ElecState", Type: FieldText},
	{Name: "strFromDate", Type: FieldDate},
	{Name: "strToDate", Type: FieldDate},
	{Name: "TreasLastName", Type: FieldText},
	{Name: "TreasFirstName", Type: FieldText},
	{Name: "TreasMidName", Type: FieldText},
	{Name: "TreasPrefix", Type: FieldText},
	{Name: "TreasSuffix", Type: FieldText},
	{Name: "strDateSigned", Type: FieldDate},
	{Name: "Line6_CashBegin", Type: FieldNumeric},
	{Name: "Line7_TotReceipts", Type: FieldNumeric},
	{Name: "Line8_Subtotal", Type: FieldNumeric},
	{Name: "Line9_TotalDisb", Type: FieldNumeric},
	{Name: "Line10_CashClose", Type: FieldNumeric},
	{Name: "Line11_DebtsTo", Type: FieldNumeric},
	{Name: "Line12_DebtsBy", Type: FieldNumeric},
	{Name: "Line13_ExpendsSubToLimits", Type: FieldNumeric},
	{Name: "Line14_NetContribs", Type: FieldNumeric},
	{Name: "Line15_NetOpExps", Type: FieldNumeric},
	{Name: "Line16_FedFunds_Prd", Type: FieldNumeric},
	{Name: "Line17a1_IndivsItemzd_Prd", Type: FieldNumeric},
	{Name: "Line17a2_IndivsUnItemzd_Prd", Type: FieldNumeric},
	{Name: "Line17a3_IndContTot_Prd", Type: FieldNumeric},
	{Name: "Line17b_PolPartyComms_Prd", Type: FieldNumeric},
	{Name: "Line17c_OtherPACs_Prd", Type: FieldNumeric},
	{Name: "Line17d_Candidate_Prd", Type: FieldNumeric},
	{Name: "Line17e_TotContribs_Prd", Type: FieldNumeric},
	{Name: "Line18_TransfersFrom_Prd", Type: FieldNumeric},
	{Name: "Line19a_CandLoans_Prd", Type: FieldNumeric},
	{Name: "Line19b_OtherLoans_Prd", Type: FieldNumeric},
	{Name: "Line19c_TotLoans_Prd", Type: FieldNumeric},
	{Name: "Line20a_Operating_Prd", Type: FieldNumeric},
	{Name: "Line20b_Fundraising_Prd", Type: FieldNumeric},
	{Name: "Line20c_LegalAcctg_Prd", Type: FieldNumeric},
	{Name: "Line20d_TotExpOffsets_Prd", Type: FieldNumeric},
	{Name: "Line21_OtherReceipts_Prd", Type: FieldNumeric},
	{Name: "Line22_TotReceipts_Prd", Type: FieldNumeric},
	{Name: "Line23_OpExpends_Prd", Type: FieldNumeric},
	{Name: "Line24_TransToOtherComms_Prd", Type: FieldNumeric},
	{Name: "Line25_FundraisingDisbursed_Prd", Type: FieldNumeric},
	{Name: "Line26_ExemptLegalAcctgDisb_Prd", Type: FieldNumeric},
	{Name: "Line27a_CandRepymts_Prd", Type: FieldNumeric},
	{Name: "Line27b_OtherRepymts_Prd", Type: FieldNumeric},
	{Name: "Line27c_TotLoanRepymts_Prd", Type: FieldNumeric},
	{Name: "Line28a_IndivRefunds_Prd", Type: FieldNumeric},
	{Name: "Line28b_PolPartyCommRefunds_Prd", Type: FieldNumeric},
	{Name: "Line28c_OtherPolCommRefunds_Prd", Type: FieldNumeric},
	{Name: "Line28d_TotalContRefunds_Prd", Type: FieldNumeric},
	{Name: "Line29_OtherDisb_Prd", Type: FieldNumeric},
	{Name: "Line30_TotDisb_Prd", Type: FieldNumeric},
	{Name: "Line31_ItemsToLiq_Prd", Type: FieldNumeric},
	{Name: "AllocAlabama_Prd", Type: FieldNumeric},
	{Name: "AllocAlaska_Prd", Type: FieldNumeric},
	{Name: "AllocArizona_Prd", Type: FieldNumeric},
	{Name: "AllocArkansas_Prd", Type: FieldNumeric},
	{Name: "AllocCalifornia_Prd", Type: FieldNumeric},
	{Name: "AllocColorado_Prd", Type: FieldNumeric},
	{Name: "AllocConnecticut_Prd", Type: FieldNumeric},
	{Name: "AllocDelaware_Prd", Type: FieldNumeric},
	{Name: "AllocDistCol_Prd", Type: FieldNumeric},
	{Name: "AllocFlorida_Prd", Type: FieldNumeric},
	{Name: "AllocGeorgia_Prd", Type: FieldNumeric},
	{Name: "AllocHawaii_Prd", Type: FieldNumeric},
	{Name: "AllocIdaho_Prd", Type: FieldNumeric},
	{Name: "AllocIllinois_Prd", Type: FieldNumeric},
	{Name: "AllocIndiana_Prd", Type: FieldNumeric},
	{Name: "AllocIowa_Prd", Type: FieldNumeric},
	{Name: "AllocKansas_Prd", Type: FieldNumeric},
	{Name: "AllocKentucky_Prd", Type: FieldNumeric},
	{Name: "AllocLouisiana_Prd", Type: FieldNumeric},
	{Name: "AllocMaine_Prd", Type: FieldNumeric},
	{Name: "AllocMaryland_Prd", Type: FieldNumeric},
	{Name: "AllocMassachusetts_Prd", Type: FieldNumeric},
	{Name: "AllocMichigan_Prd", Type: FieldNumeric},
	{Name: "AllocMinnesota_Prd", Type: FieldNumeric},
	{Name: "AllocMississippi_Prd", Type: FieldNumeric},
	{Name: "AllocMissouri_Prd", Type: FieldNumeric},
	{Name: "AllocMontana_Prd", Type: FieldNumeric},
	{Name: "AllocNebraska_Prd", Type: FieldNumeric},
	{Name: "AllocNevada_Prd", Type: FieldNumeric},
	{Name: "AllocNewHampshire_Prd", Type: FieldNumeric},
	{Name: "AllocNewJersey_Prd", Type: FieldNumeric},
	{Name: "AllocNewMexico_Prd", Type: FieldNumeric},
	{Name: "AllocNewYork_Prd", Type: FieldNumeric},
	{Name: "AllocNorthCarolina_Prd", Type: FieldNumeric},
	{Name: "AllocNorthDakota_Prd", Type: FieldNumeric},
	{Name: "AllocOhio_Prd", Type: FieldNumeric},
	{Name: "AllocOklahoma_Prd", Type: FieldNumeric},
	{Name: "AllocOregon_Prd", Type: FieldNumeric},
	{Name: "AllocPennsylvania_Prd", Type: FieldNumeric},
	{Name: "AllocRhodeIsland_Prd", Type: FieldNumeric},
	{Name: "AllocSouthCarolina_Prd", Type: FieldNumeric},
	{Name: "AllocSouthDakota_Prd", Type: FieldNumeric},
	{Name: "AllocTennessee_Prd", Type: FieldNumeric},
	{Name: "AllocTexas_Prd", Type: FieldNumeric},
	{Name: "AllocUtah_Prd", Type: FieldNumeric},
	{Name: "AllocVermont_Prd", Type: FieldNumeric},
	{Name: "AllocVirginia_Prd", Type: FieldNumeric},
	{Name: "AllocWashington_Prd", Type: FieldNumeric},
	{Name: "AllocWestVirginia_Prd", Type: FieldNumeric},
	{Name: "AllocWisconsin_Prd", Type: FieldNumeric},
	{Name: "AllocWyoming_Prd", Type: FieldNumeric},
	{Name: "AllocPuertoRico_Prd", Type: FieldNumeric},
	{Name: "AllocGuam_Prd", Type: FieldNumeric},
	{Name: "AllocVirginIslands_Prd", Type: FieldNumeric},
	{Name: "AllocStatesTotal_Prd", Type: FieldNumeric},
	{Name: "Line16_FedFunds_Tot", Type: FieldNumeric},
	{Name: "Line17a1_IndivsItemzd_Tot", Type: FieldNumeric},
	{Name: "Line17a2_IndivsUnItemzd_Tot", Type: FieldNumeric},
	{Name: "Line17a3_IndContTot_Tot", Type: FieldNumeric},
	{Name: "Line17b_PolPartyComms_Tot", Type: FieldNumeric},
	{Name: "Line17c_OtherPACs_Tot", Type: FieldNumeric},
	{Name: "Line17d_Candidate_Tot", Type: FieldNumeric},
	{Name: "Line17e_TotContribs_Tot", Type: FieldNumeric},
	{Name: "Line18_TransfersFrom_Tot", Type: FieldNumeric},
	{Name: "Line19a_CandLoans_Tot", Type: FieldNumeric},
	{Name: "Line19b_OtherLoans_Tot", Type: FieldNumeric},
	{Name: "Line19c_TotLoans_Tot", Type: FieldNumeric},
	{Name: "Line20a_Operating_Tot", Type: FieldNumeric},
	{Name: "Line20b_Fundraising_Tot", Type: FieldNumeric},
	{Name: "Line20c_LegalAcctg_Tot", Type: FieldNumeric},
	{Name: "Line20d_TotExpOffsets_Tot", Type: FieldNumeric},
	{Name: "Line21_OtherReceipts_Tot", Type: FieldNumeric},
	{Name: "Line22_TotReceipts_Tot", Type: FieldNumeric},
	{Name: "Line23_OpExpends_Tot", Type: FieldNumeric},
	{Name: "Line24_TransToOtherComms_Tot", Type: FieldNumeric},
	{Name: "Line25_FundraisingDisbursed_Tot", Type: FieldNumeric},
	{Name: "Line26_ExemptLegalAcctgDisb_Tot", Type: FieldNumeric},
	{Name: "Line27a_CandRepymts_Tot", Type: FieldNumeric},
	{Name: "Line27b_OtherRepymts_Tot", Type: FieldNumeric},
	{Name: "Line27c_TotLoanRepymts_Tot", Type: FieldNumeric},
	{Name: "Line28a_IndivRefunds_Tot", Type: FieldNumeric},
	{Name: "Line28b_PolPartyCommRefunds_Tot", Type: FieldNumeric},
	{Name: "Line28c_OtherPolCommRefunds_Tot", Type: FieldNumeric},
	{Name: "Line28d_TotalContRefunds_Tot", Type: FieldNumeric},
	{Name: "Line29_OtherDisb_Tot", Type: FieldNumeric},
	{Name: "Line30_TotDisb_Tot", Type: FieldNumeric},
	{Name: "AllocAlabama_Tot", Type: FieldNumeric},
	{Name: "AllocAlaska_Tot", Type: FieldNumeric},
	{Name: "AllocArizona_Tot", Type: FieldNumeric},
	{Name: "AllocArkansas_Tot", Type: FieldNumeric},
	{Name: "AllocCalifornia_Tot", Type: FieldNumeric},
	{Name: "AllocColorado_Tot", Type: FieldNumeric},
	{Name: "AllocConnecticut_Tot", Type: FieldNumeric},
	{Name: "AllocDelaware_Tot", Type: FieldNumeric},
	{Name: "AllocDistCol_Tot", Type: FieldNumeric},
	{Name: "AllocFlorida_Tot", Type: FieldNumeric},
	{Name: "AllocGeorgia_Tot", Type: FieldNumeric},
	{Name: "AllocHawaii_Tot", Type: FieldNumeric},
	{Name: "AllocIdaho_Tot", Type: FieldNumeric},
	{Name: "AllocIllinois_Tot", Type: FieldNumeric},
	{Name: "AllocIndiana_Tot", Type: FieldNumeric},
	{Name: "AllocIowa_Tot", Type: FieldNumeric},
	{Name: "AllocKansas_Tot", Type: FieldNumeric},
	{Name: "AllocKentucky_Tot", Type: FieldNumeric},
	{Name: "AllocLouisiana_Tot", Type: FieldNumeric},
	{Name: "AllocMaine_Tot", Type: FieldNumeric},
	{Name: "AllocMaryland_Tot", Type: FieldNumeric},
	{Name: "AllocMassachusetts_Tot", Type: FieldNumeric},
	{Name: "AllocMichigan_Tot", Type: FieldNumeric},
	{Name: "AllocMinnesota_Tot", Type: FieldNumeric},
	{Name: "AllocMississippi_Tot", Type: FieldNumeric},
	{Name: "AllocMissouri_Tot", Type: FieldNumeric},
	{Name: "AllocMontana_Tot", Type: FieldNumeric},
	{Name: "AllocNebraska_Tot", Type: FieldNumeric},
	{Name: "AllocNevada_Tot", Type: FieldNumeric},
	{Name: "AllocNewHampshire_Tot", Type: FieldNumeric},
	{Name: "AllocNewJersey_Tot", Type: FieldNumeric},
	{Name: "AllocNewMexico_Tot", Type: FieldNumeric},
	{Name: "AllocNewYork_Tot", Type: FieldNumeric},
	{Name: "AllocNorthCarolina_Tot", Type: FieldNumeric},
	{Name: "AllocNorthDakota_Tot", Type: FieldNumeric},
	{Name: "AllocOhio_Tot", Type: FieldNumeric},
	{Name: "AllocOklahoma_Tot", Type: FieldNumeric},
	{Name: "AllocOregon_Tot", Type: FieldNumeric},
	{Name: "AllocPennsylvania_Tot", Type: FieldNumeric},
	{Name: "AllocRhodeIsland_Tot", Type: FieldNumeric},
	{Name: "AllocSouthCarolina_Tot", Type: FieldNumeric},
	{Name: "AllocSouthDakota_Tot", Type: FieldNumeric},
	{Name: "AllocTennessee_Tot", Type: FieldNumeric},
	{Name: "AllocTexas_Tot", Type: FieldNumeric},
	{Name: "AllocUtah_Tot", Type: FieldNumeric},
	{Name: "AllocVermont_Tot", Type: FieldNumeric},
	{Name: "AllocVirginia_Tot", Type: FieldNumeric},
	{Name: "AllocWashington_Tot", Type: FieldNumeric},
	{Name: "AllocWestVirginia_Tot", Type: FieldNumeric},
	{Name: "AllocWisconsin_Tot", Type: FieldNumeric},
	{Name: "AllocWyoming_Tot", Type: FieldNumeric},
	{Name: "AllocPuertoRico_Tot", Type: FieldNumeric},
	{Name: "AllocGuam_Tot", Type: FieldNumeric},
	{Name: "AllocVirginIslands_Tot", Type: FieldNumeric},
	{Name: "AllocStatesTotal_Tot", Type: FieldNumeric},
}

// F3XHeaderFieldSpecs lists the Form 3X summary columns (F3XA, F3XN).
var F3XHeaderFieldSpecs = []FieldSpec{
	{Name: "ImageID", Type: FieldText},
	{Name: "FormType", Type: FieldText},
	{Name: "CommID", Type: FieldText},
	{Name: "CommName", Type: FieldText},
	{Name: "AddressChange", Type: FieldText},
	{Name: "CommAddress1", Type: FieldText},
	{Name: "CommAddress2", Type: FieldText},
	{Name: "CommCity", Type: FieldText},
	{Name: "CommState", Type: FieldText},
	{Name: "CommZip", Type: FieldText},
	{Name: "ReptCode", Type: FieldText},
	{Name: "ElecCode", Type: FieldText},
	{Name: "strElecDate", Type: FieldDate},
	{Name: "ElecState", Type: FieldText},
	{Name: "strFromDate", Type: FieldDate},
	{Name: "strToDate", Type: FieldDate},
	{Name: "flgQualifiedComm", Type: FieldText},
	{Name: "TreasLastName", Type: FieldText},
	{Name: "TreasFirstName", Type: FieldText},
	{Name: "TreasMidName", Type: FieldText},
	{Name: "TreasPrefix", Type: FieldText},
	{Name: "TreasSuffix", Type: FieldText},
	{Name: "strDateSigned", Type: FieldDate},
	{Name: "Line6b_CashBegin_Prd", Type: FieldNumeric},
	{Name: "Line6c_TotalRects_Prd", Type: FieldNumeric},
	{Name: "Line6d_CashBeginSubtotal_Prd", Type: FieldNumeric},
	{Name: "Line7_TotDisbmts_Prd", Type: FieldNumeric},
	{Name: "Line8_CashOnHandAtClose_Prd", Type: FieldNumeric},
	{Name: "Line9_DebtsTo_Prd", Type: FieldNumeric},
	{Name: "Line10_DebtsBy_Prd", Type: FieldNumeric},
	{Name: "Line11a1_Itemized_Prd", Type: FieldNumeric},
	{Name: "Line11a2_Unitemized_Prd", Type: FieldNumeric},
	{Name: "Line11a3_Total_Prd", Type: FieldNumeric},
	{Name: "Line11b_PolPtyComms_Prd", Type: FieldNumeric},
	{Name: "Line11c_OtherPACs_Prd", Type: FieldNumeric},
	{Name: "Line11d_TotalContribs_Prd", Type: FieldNumeric},
	{Name: "Line12_TransfersFrom_Prd", Type: FieldNumeric},
	{Name: "Line13_AllLoansRcvd_Prd", Type: FieldNumeric},
	{Name: "Line14_LoanRepymtsRecv_Prd", Type: FieldNumeric},
	{Name: "Line15_OffsetsToOpExps_Refunds_Prd", Type: FieldNumeric},
	{Name: "Line16_RefundsOfFedContribs_Prd", Type: FieldNumeric},
	{Name: "Line17_OtherFedRects_Divds_Prd", Type: FieldNumeric},
	{Name: "Line18a_TransfersFromNonFedAcct_H3_Prd", Type: FieldNumeric},
	{Name: "Line18b_TransfersFromNonFed_LevinH5_Prd", Type: FieldNumeric},
	{Name: "Line18c_TotalNonFedTransfers_Prd", Type: FieldNumeric},
	{Name: "Line19_TotalReceipts_Prd", Type: FieldNumeric},
	{Name: "Line20_TotalFedReceipts_Prd", Type: FieldNumeric},
	{Name: "Line21a1_FedShare_Prd", Type: FieldNumeric},
	{Name: "Line21a2_NonFedShare_Prd", Type: FieldNumeric},
	{Name: "Line21b_OtherFedOpExps_Prd", Type: FieldNumeric},
	{Name: "Line21c_TotOpExps_Prd", Type: FieldNumeric},
	{Name: "Line22_TransToOtherComms_Prd", Type: FieldNumeric},
	{Name: "Line23_ContribsToFedCandsOrComms_Prd", Type: FieldNumeric},
	{Name: "Line24_IndptExps_Prd", Type: FieldNumeric},
	{Name: "Line25_CoordtdExpByPrtyComms_Prd", Type: FieldNumeric},
	{Name: "Line26_LoanRepayments_Prd", Type: FieldNumeric},
	{Name: "Line27_LoansMade_Prd", Type: FieldNumeric},
	{Name: "Line28a_IndivRefunds_Prd", Type: FieldNumeric},
	{Name: "Line28b_PolPartyCommRefunds_Prd", Type: FieldNumeric},
	{Name: "Line28c_OtherPolCommRefunds_Prd", Type: FieldNumeric},
	{Name: "Line28d_TotalContRefunds_Prd", Type: FieldNumeric},
	{Name: "Line29_OtherDisb_Prd", Type: FieldNumeric},
	{Name: "Line30a1_SharedFedActH6FedShare_Prd", Type: FieldNumeric},
	{Name: "Line30a2_SharedFedActH6NonFed_Prd", Type: FieldNumeric},
	{Name: "Line30b_NonAlloc100PctFedElecActivity_Prd", Type: FieldNumeric},
	{Name: "Line30c_TotFedElecActivity_Prd", Type: FieldNumeric},
	{Name: "Line31_TotDisbmts_Prd", Type: FieldNumeric},
	{Name: "Line32_TotFedDisbmts_Prd", Type: FieldNumeric},
	{Name: "Line33_TotContribs_Prd", Type: FieldNumeric},
	{Name: "Line34_TotContribRefunds_Prd", Type: FieldNumeric},
	{Name: "Line35_NetContribs_Prd", Type: FieldNumeric},
	{Name: "Line36_TotFedOpExps_Prd", Type: FieldNumeric},
	{Name: "Line37_OffsetsToOpExps_Prd", Type: FieldNumeric},
	{Name: "Line38_NetOpExps_Prd", Type: FieldNumeric},
	{Name: "Line6b_CashBegin_Tot", Type: FieldNumeric},
	{Name: "Line6b_Year", Type: FieldNumeric},
	{Name: "Line6c_TotalRects_Tot", Type: FieldNumeric},
	{Name: "Line6d_CashBeginSubtotal_Tot", Type: FieldNumeric},
	{Name: "Line7_TotDisbmts_Tot", Type: FieldNumeric},
	{Name: "Line8_CashOnHandAtClose_Tot", Type: FieldNumeric},
	{Name: "Line11a1_Itemized_Tot", Type: FieldNumeric},
	{Name: "Line11a2_Unitemized_Tot", Type: FieldNumeric},
	{Name: "Line11a3_Total_Tot", Type: FieldNumeric},
	{Name: "Line11b_PolPtyComms_Tot", Type: FieldNumeric},
	{Name: "Line11c_OtherPACs_Tot", Type: FieldNumeric},
	{Name: "Line11d_TotalContribs_Tot", Type: FieldNumeric},
	{Name: "Line12_TransfersFrom_Tot", Type: FieldNumeric},
	{Name: "Line13_AllLoansRcvd_Tot", Type: FieldNumeric},
	{Name: "Line14_LoanRepymtsRecv_Tot", Type: FieldNumeric},
	{Name: "Line15_OffsetsToOpExps_Refunds_Tot", Type: FieldNumeric},
	{Name: "Line16_RefundsOfFedContribs_Tot", Type: FieldNumeric},
	{Name: "Line17_OtherFedRects_Divds_Tot", Type: FieldNumeric},
	{Name: "Line18a_TransfersFromNonFedAcct_H3_Tot", Type: FieldNumeric},
	{Name: "Line18b_TransfersFromNonFed_LevinH5_Tot", Type: FieldNumeric},
	{Name: "Line18c_TotalNonFedTransfers_Tot", Type: FieldNumeric},
	{Name: "Line19_TotalReceipts_Tot", Type: FieldNumeric},
	{Name: "Line20_TotalFedReceipts_Tot", Type: FieldNumeric},
	{Name: "Line21a1_FedShare_Tot", Type: FieldNumeric},
	{Name: "Line21a2_NonFedShare_Tot", Type: FieldNumeric},
	{Name: "Line21b_OtherFedOpExps_Tot", Type: FieldNumeric},
	{Name: "Line21c_TotOpExps_Tot", Type: FieldNumeric},
	{Name: "Line22_TransToOtherComms_Tot", Type: FieldNumeric},
	{Name: "Line23_ContribsToFedCandsOrComms_Tot", Type: FieldNumeric},
	{Name: "Line24_IndptExps_Tot", Type: FieldNumeric},
	{Name: "Line25_CoordtdExpByPrtyComms_Tot", Type: FieldNumeric},
	{Name: "Line26_LoanRepayments_Tot", Type: FieldNumeric},
	{Name: "Line27_LoansMade_Tot", Type: FieldNumeric},
	{Name: "Line28a_IndivRefunds_Tot", Type: FieldNumeric},
	{Name: "Line28b_PolPartyCommRefunds_Tot", Type: FieldNumeric},
	{Name: "Line28c_OtherPolCommRefunds_Tot", Type: FieldNumeric},
	{Name: "Line28d_TotalContRefunds_Tot", Type: FieldNumeric},
	{Name: "Line29_OtherDisb_Tot", Type: FieldNumeric},
	{Name: "Line30a1_SharedFedActH6FedShare_Tot", Type: FieldNumeric},
	{Name: "Line30a2_SharedFedActH6NonFed_Tot", Type: FieldNumeric},
	{Name: "Line30b_NonAlloc100PctFedElecActivity_Tot", Type: FieldNumeric},
	{Name: "Line30c_TotFedElecActivity_Tot", Type: FieldNumeric},
	{Name: "Line31_TotDisbmts_Tot", Type: FieldNumeric},
	{Name: "Line32_TotFedDisbmts_Tot", Type: FieldNumeric},
	{Name: "Line33_TotContribs_Tot", Type: FieldNumeric},
	{Name: "Line34_TotContribRefunds_Tot", Type: FieldNumeric},
	{Name: "Line35_NetContribs_Tot", Type: FieldNumeric},
	{Name: "Line36_TotFedOpExps_Tot", Type: FieldNumeric},
	{Name: "Line37_OffsetsToOpExps_Tot", Type: FieldNumeric},
	{Name: "Line38_NetOpExps_Tot", Type: FieldNumeric},
}
