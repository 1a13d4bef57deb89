package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgCreateVestingAccount opens a company's vesting record and custody account.
type MsgCreateVestingAccount struct {
	Signer      string `json:"signer"`
	CompanyName string `json:"company_name"`
	Mint        string `json:"mint"`
}

type MsgCreateVestingAccountResponse struct {
	VestingAccount       string `json:"vesting_account"`
	TreasuryTokenAccount string `json:"treasury_token_account"`
}

func NewMsgCreateVestingAccount(signer string, companyName string, mint string) *MsgCreateVestingAccount {
	return &MsgCreateVestingAccount{Signer: signer, CompanyName: companyName, Mint: mint}
}

func (msg *MsgCreateVestingAccount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	if err := ValidateCompanyName(msg.CompanyName); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Mint); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid mint (%s)", err)
	}
	return nil
}

func (msg *MsgCreateVestingAccount) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}
