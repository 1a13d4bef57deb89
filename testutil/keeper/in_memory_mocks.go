package keeper

// Simple ledgers for keeper tests, held in memory instead of the bank and auth stores
import (
	"context"
	"sync"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// InMemoryBankKeeper is an in-memory implementation of types.BankKeeper.
type InMemoryBankKeeper struct {
	balances map[string]sdk.Coins
	metadata map[string]banktypes.Metadata
	mu       sync.RWMutex
}

// NewInMemoryBankKeeper creates a new instance of InMemoryBankKeeper.
func NewInMemoryBankKeeper() *InMemoryBankKeeper {
	return &InMemoryBankKeeper{
		balances: make(map[string]sdk.Coins),
		metadata: make(map[string]banktypes.Metadata),
	}
}

// SetDenomMetaData registers a mint.
func (keeper *InMemoryBankKeeper) SetDenomMetaData(md banktypes.Metadata) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.metadata[md.Base] = md
}

// Fund credits addr with coins out of thin air.
func (keeper *InMemoryBankKeeper) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.balances[addr.String()] = keeper.balances[addr.String()].Add(coins...)
}

// Balance returns the amount of denom held by addr.
func (keeper *InMemoryBankKeeper) Balance(addr sdk.AccAddress, denom string) sdk.Coin {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	return sdk.NewCoin(denom, keeper.balances[addr.String()].AmountOf(denom))
}

func (keeper *InMemoryBankKeeper) SpendableCoin(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return keeper.Balance(addr, denom)
}

func (keeper *InMemoryBankKeeper) GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool) {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	md, found := keeper.metadata[denom]
	return md, found
}

func (keeper *InMemoryBankKeeper) SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	from := keeper.balances[fromAddr.String()]
	remaining, negative := from.SafeSub(amt...)
	if negative {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "spendable balance %s is smaller than %s", from, amt)
	}
	keeper.balances[fromAddr.String()] = remaining
	keeper.balances[toAddr.String()] = keeper.balances[toAddr.String()].Add(amt...)
	return nil
}

// InMemoryAccountKeeper is an in-memory implementation of types.AccountKeeper.
type InMemoryAccountKeeper struct {
	accounts map[string]sdk.AccountI
	mu       sync.RWMutex
}

// NewInMemoryAccountKeeper creates a new instance of InMemoryAccountKeeper.
func NewInMemoryAccountKeeper() *InMemoryAccountKeeper {
	return &InMemoryAccountKeeper{accounts: make(map[string]sdk.AccountI)}
}

func (keeper *InMemoryAccountKeeper) HasAccount(ctx context.Context, addr sdk.AccAddress) bool {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	_, found := keeper.accounts[addr.String()]
	return found
}

func (keeper *InMemoryAccountKeeper) NewAccountWithAddress(ctx context.Context, addr sdk.AccAddress) sdk.AccountI {
	return authtypes.NewBaseAccountWithAddress(addr)
}

func (keeper *InMemoryAccountKeeper) SetAccount(ctx context.Context, acc sdk.AccountI) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.accounts[acc.GetAddress().String()] = acc
}
