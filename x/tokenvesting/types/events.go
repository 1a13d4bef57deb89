package types

// Event types
const (
	EventTypeCreateVestingAccount  = "create_vesting_account"
	EventTypeCreateEmployeeAccount = "create_employee_account"
	EventTypeDepositTreasury       = "deposit_treasury"
	EventTypeClaimToken            = "claim_token"

	AttributeKeyCompanyName     = "company_name"
	AttributeKeyOwner           = "owner"
	AttributeKeyMint            = "mint"
	AttributeKeyVestingAccount  = "vesting_account"
	AttributeKeyTreasury        = "treasury_token_account"
	AttributeKeyEmployeeAccount = "employee_account"
	AttributeKeyBeneficiary     = "beneficiary"
	AttributeKeyDepositor       = "depositor"
	AttributeKeyAmount          = "amount"
	AttributeKeyTotalWithdrawn  = "total_withdrawn"
	AttributeKeyStartTime       = "start_time"
	AttributeKeyEndTime         = "end_time"
	AttributeKeyCliffTime       = "cliff_time"
)
