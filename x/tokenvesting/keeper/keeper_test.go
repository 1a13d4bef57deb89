package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/productscience/tokenvesting/testutil/keeper"
	"github.com/productscience/tokenvesting/testutil/sample"
	"github.com/productscience/tokenvesting/x/tokenvesting/keeper"
	"github.com/productscience/tokenvesting/x/tokenvesting/types"
)

const (
	testCompany = "acme"
	testMint    = "uvest"
)

type KeeperTestSuite struct {
	suite.Suite
	ctx       sdk.Context
	keeper    keeper.Keeper
	ledger    keepertest.TokenVestingLedger
	msgServer types.MsgServer

	owner       sdk.AccAddress
	beneficiary sdk.AccAddress
	vestingAddr sdk.AccAddress
	treasury    sdk.AccAddress
}

func (suite *KeeperTestSuite) SetupTest() {
	k, ctx, ledger := keepertest.TokenVestingKeeper(suite.T())
	suite.ctx = ctx
	suite.keeper = k
	suite.ledger = ledger
	suite.msgServer = keeper.NewMsgServerImpl(k)

	suite.ledger.Bank.SetDenomMetaData(sample.MintMetadata(testMint, "vest", 6))
	suite.owner = sample.Address()
	suite.beneficiary = sample.Address()
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) at(now int64) sdk.Context {
	return suite.ctx.WithBlockTime(time.Unix(now, 0))
}

// createVestingAccount creates the test company's vesting record and funds its treasury.
func (suite *KeeperTestSuite) createVestingAccount(funding uint64) {
	resp, err := suite.msgServer.CreateVestingAccount(suite.ctx,
		types.NewMsgCreateVestingAccount(suite.owner.String(), testCompany, testMint))
	suite.Require().NoError(err)

	suite.vestingAddr = sdk.MustAccAddressFromBech32(resp.VestingAccount)
	suite.treasury = sdk.MustAccAddressFromBech32(resp.TreasuryTokenAccount)

	if funding > 0 {
		suite.ledger.Bank.Fund(suite.owner, sdk.NewInt64Coin(testMint, int64(funding)))
		_, err = suite.msgServer.DepositTreasury(suite.ctx,
			types.NewMsgDepositTreasury(suite.owner.String(), testCompany, funding))
		suite.Require().NoError(err)
	}
}

func (suite *KeeperTestSuite) createEmployeeAccount(beneficiary sdk.AccAddress, start, end, cliff int64, total uint64) sdk.AccAddress {
	resp, err := suite.msgServer.CreateEmployeeAccount(suite.ctx, types.NewMsgCreateEmployeeAccount(
		suite.owner.String(), beneficiary.String(), suite.vestingAddr.String(), start, end, cliff, total))
	suite.Require().NoError(err)
	return sdk.MustAccAddressFromBech32(resp.EmployeeAccount)
}

func (suite *KeeperTestSuite) claim(now int64) (*types.MsgClaimTokenResponse, error) {
	return suite.msgServer.ClaimToken(suite.at(now), types.NewMsgClaimToken(suite.beneficiary.String(), testCompany))
}

func (suite *KeeperTestSuite) withdrawn() uint64 {
	_, ea, err := suite.keeper.EmployeeAccountOf(suite.ctx, suite.beneficiary, suite.vestingAddr)
	suite.Require().NoError(err)
	return ea.TotalWithdrawn
}

func (suite *KeeperTestSuite) balance(addr sdk.AccAddress) int64 {
	return suite.ledger.Bank.Balance(addr, testMint).Amount.Int64()
}

func (suite *KeeperTestSuite) TestCreateVestingAccount() {
	suite.createVestingAccount(1000)

	addr, va, err := suite.keeper.VestingAccountByCompany(suite.ctx, testCompany)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.vestingAddr, addr)
	suite.Require().Equal(testCompany, va.CompanyName)
	suite.Require().Equal(suite.owner, va.Owner)
	suite.Require().Equal(testMint, va.Mint)
	suite.Require().Equal(suite.treasury, va.TreasuryTokenAccount)

	treasury, treasuryBump, err := types.FindProgramAddress(types.TreasurySeeds(testCompany))
	suite.Require().NoError(err)
	suite.Require().Equal(treasury, va.TreasuryTokenAccount)
	suite.Require().Equal(treasuryBump, va.TreasuryBump)

	suite.Require().True(suite.ledger.Accounts.HasAccount(suite.ctx, suite.treasury))
	suite.Require().Equal(int64(1000), suite.balance(suite.treasury))
	suite.Require().Equal(int64(0), suite.balance(suite.owner))
}

func (suite *KeeperTestSuite) TestCreateVestingAccount_Duplicate() {
	suite.createVestingAccount(0)

	_, err := suite.msgServer.CreateVestingAccount(suite.ctx,
		types.NewMsgCreateVestingAccount(sample.AccAddress(), testCompany, testMint))
	suite.Require().ErrorIs(err, types.ErrAccountAlreadyExists)

	_, va, err := suite.keeper.VestingAccountByCompany(suite.ctx, testCompany)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.owner, va.Owner)
}

func (suite *KeeperTestSuite) TestCreateVestingAccount_UnknownMint() {
	_, err := suite.msgServer.CreateVestingAccount(suite.ctx,
		types.NewMsgCreateVestingAccount(suite.owner.String(), testCompany, "unknown"))
	suite.Require().ErrorIs(err, types.ErrMintNotFound)
}

func (suite *KeeperTestSuite) TestCreateEmployeeAccount() {
	suite.createVestingAccount(0)
	employeeAddr := suite.createEmployeeAccount(suite.beneficiary, 0, 1000, 100, 1000)

	addr, ea, err := suite.keeper.EmployeeAccountOf(suite.ctx, suite.beneficiary, suite.vestingAddr)
	suite.Require().NoError(err)
	suite.Require().Equal(employeeAddr, addr)
	suite.Require().Equal(suite.beneficiary, ea.Beneficiary)
	suite.Require().Equal(suite.vestingAddr, ea.VestingAccount)
	suite.Require().Equal(int64(0), ea.StartTime)
	suite.Require().Equal(int64(100), ea.CliffTime)
	suite.Require().Equal(int64(1000), ea.EndTime)
	suite.Require().Equal(uint64(1000), ea.TotalAmount)
	suite.Require().Equal(uint64(0), ea.TotalWithdrawn)

	addrs, err := suite.keeper.EmployeeAccountAddresses(suite.ctx, suite.vestingAddr)
	suite.Require().NoError(err)
	suite.Require().Equal([]sdk.AccAddress{employeeAddr}, addrs)
}

func (suite *KeeperTestSuite) TestCreateEmployeeAccount_Duplicate() {
	suite.createVestingAccount(0)
	suite.createEmployeeAccount(suite.beneficiary, 0, 1000, 100, 1000)

	_, err := suite.msgServer.CreateEmployeeAccount(suite.ctx, types.NewMsgCreateEmployeeAccount(
		suite.owner.String(), suite.beneficiary.String(), suite.vestingAddr.String(), 0, 2000, 0, 5))
	suite.Require().ErrorIs(err, types.ErrAccountAlreadyExists)
}

func (suite *KeeperTestSuite) TestCreateEmployeeAccount_NotOwner() {
	suite.createVestingAccount(0)

	_, err := suite.msgServer.CreateEmployeeAccount(suite.ctx, types.NewMsgCreateEmployeeAccount(
		sample.AccAddress(), suite.beneficiary.String(), suite.vestingAddr.String(), 0, 1000, 100, 1000))
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestCreateEmployeeAccount_UnknownVestingAccount() {
	_, err := suite.msgServer.CreateEmployeeAccount(suite.ctx, types.NewMsgCreateEmployeeAccount(
		suite.owner.String(), suite.beneficiary.String(), sample.AccAddress(), 0, 1000, 100, 1000))
	suite.Require().ErrorIs(err, types.ErrVestingAccountNotFound)
}

func (suite *KeeperTestSuite) TestCreateEmployeeAccount_ScheduleOrder() {
	suite.createVestingAccount(0)

	// stored as given by default
	suite.createEmployeeAccount(suite.beneficiary, 500, 500, 100, 1000)

	_, err := suite.msgServer.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: suite.keeper.GetAuthority(),
		Params:    types.NewParams(true),
	})
	suite.Require().NoError(err)
	suite.Require().True(suite.keeper.GetParams(suite.ctx).EnforceScheduleOrder)

	_, err = suite.msgServer.CreateEmployeeAccount(suite.ctx, types.NewMsgCreateEmployeeAccount(
		suite.owner.String(), sample.AccAddress(), suite.vestingAddr.String(), 500, 500, 100, 1000))
	suite.Require().ErrorIs(err, types.ErrInvalidSchedule)

	suite.createEmployeeAccount(sample.Address(), 0, 1000, 100, 1000)
}

func (suite *KeeperTestSuite) TestUpdateParams_WrongAuthority() {
	_, err := suite.msgServer.UpdateParams(suite.ctx, &types.MsgUpdateParams{
		Authority: sample.AccAddress(),
		Params:    types.NewParams(true),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidSigner)
	suite.Require().False(suite.keeper.GetParams(suite.ctx).EnforceScheduleOrder)
}

func (suite *KeeperTestSuite) TestDepositTreasury_UnknownCompany() {
	suite.ledger.Bank.Fund(suite.owner, sdk.NewInt64Coin(testMint, 10))
	_, err := suite.msgServer.DepositTreasury(suite.ctx, types.NewMsgDepositTreasury(suite.owner.String(), "nobody", 10))
	suite.Require().ErrorIs(err, types.ErrVestingAccountNotFound)
	suite.Require().Equal(int64(10), suite.balance(suite.owner))
}
