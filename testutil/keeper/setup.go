package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/AhegaoBurger/DataForge/app"
)

// SetupTestApp initializes a full test application with all modules wired.
func SetupTestApp(t *testing.T) (*app.DataForgeApp, sdk.Context) {
	db := dbm.NewMemDB()
	testApp := app.NewDataForgeApp(
		log.NewNopLogger(),
		db,
		nil,
		true,
		simtestutil.EmptyAppOptions{},
		baseapp.SetChainID("dataforge-test-1"),
	)

	ctx := testApp.NewContextLegacy(true, cmtproto.Header{
		ChainID: "dataforge-test-1",
		Height:  1,
		Time:    time.Now().UTC(),
	})

	return testApp, ctx
}
