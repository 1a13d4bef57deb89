package types

import "github.com/cosmos/cosmos-sdk/types/query"

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryVestingAccountRequest struct {
	CompanyName string `json:"company_name"`
}

type QueryVestingAccountResponse struct {
	Address        string         `json:"address"`
	VestingAccount VestingAccount `json:"vesting_account"`
}

type QueryEmployeeAccountRequest struct {
	Beneficiary string `json:"beneficiary"`
	CompanyName string `json:"company_name"`
}

type QueryEmployeeAccountResponse struct {
	Address         string          `json:"address"`
	EmployeeAccount EmployeeAccount `json:"employee_account"`
}

type QueryEmployeeAccountsRequest struct {
	CompanyName string             `json:"company_name"`
	Pagination  *query.PageRequest `json:"pagination,omitempty"`
}

type QueryEmployeeAccountsResponse struct {
	EmployeeAccounts []EmployeeAccount  `json:"employee_accounts"`
	Pagination       *query.PageResponse `json:"pagination,omitempty"`
}

type QueryClaimableRequest struct {
	Beneficiary string `json:"beneficiary"`
	CompanyName string `json:"company_name"`
}

// QueryClaimableResponse reports a schedule as of the current block time.
// ClaimableDisplay is Claimable scaled by the mint decimals.
type QueryClaimableResponse struct {
	Time             int64  `json:"time"`
	State            string `json:"state"`
	Vested           uint64 `json:"vested"`
	Withdrawn        uint64 `json:"withdrawn"`
	Claimable        uint64 `json:"claimable"`
	Decimals         uint32 `json:"decimals"`
	ClaimableDisplay string `json:"claimable_display"`
}
