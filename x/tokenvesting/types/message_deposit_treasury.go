package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgDepositTreasury funds a company's custody account in its mint.
type MsgDepositTreasury struct {
	Depositor   string `json:"depositor"`
	CompanyName string `json:"company_name"`
	Amount      uint64 `json:"amount"`
}

type MsgDepositTreasuryResponse struct {
	TreasuryTokenAccount string `json:"treasury_token_account"`
}

func NewMsgDepositTreasury(depositor string, companyName string, amount uint64) *MsgDepositTreasury {
	return &MsgDepositTreasury{Depositor: depositor, CompanyName: companyName, Amount: amount}
}

func (msg *MsgDepositTreasury) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid depositor address (%s)", err)
	}
	if err := ValidateCompanyName(msg.CompanyName); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be > 0")
	}
	return nil
}

func (msg *MsgDepositTreasury) GetSigners() []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}
