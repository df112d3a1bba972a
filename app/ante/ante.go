package ante

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	txsigning "cosmossdk.io/x/tx/signing"

	databountykeeper "github.com/AhegaoBurger/DataForge/x/databounty/keeper"
)

// MaxMemoBytes bounds the tx memo size before any further processing.
const MaxMemoBytes = 512

// HandlerOptions are the options required for constructing a default SDK AnteHandler.
type HandlerOptions struct {
	AccountKeeper    ante.AccountKeeper
	BankKeeper       authtypes.BankKeeper
	FeegrantKeeper   ante.FeegrantKeeper
	SignModeHandler  *txsigning.HandlerMap
	SigGasConsumer   ante.SignatureVerificationGasConsumer
	DataBountyKeeper *databountykeeper.Keeper
}

// NewAnteHandler returns an AnteHandler that checks and increments sequence
// numbers, checks signatures & account numbers, and deducts fees from the first
// signer. It also includes custom decorators for the databounty module.
func NewAnteHandler(options HandlerOptions) (sdk.AnteHandler, error) {
	if options.AccountKeeper == nil {
		return nil, fmt.Errorf("account keeper is required for ante builder")
	}

	if options.BankKeeper == nil {
		return nil, fmt.Errorf("bank keeper is required for ante builder")
	}

	if options.SignModeHandler == nil {
		return nil, fmt.Errorf("sign mode handler is required for ante builder")
	}

	anteDecorators := []sdk.AnteDecorator{
		ante.NewSetUpContextDecorator(), // outermost AnteDecorator. SetUpContext must be called first
		ante.NewExtensionOptionsDecorator(nil),
		NewMemoLimitDecorator(MaxMemoBytes),
		NewTimeValidatorDecorator(),
		NewGasLimitDecorator(),
		ante.NewValidateBasicDecorator(),
		ante.NewTxTimeoutHeightDecorator(),
		ante.NewValidateMemoDecorator(options.AccountKeeper),
		ante.NewConsumeGasForTxSizeDecorator(options.AccountKeeper),
		ante.NewDeductFeeDecorator(options.AccountKeeper, options.BankKeeper, options.FeegrantKeeper, nil),
		ante.NewSetPubKeyDecorator(options.AccountKeeper), // SetPubKeyDecorator must be called before all signature verification decorators
		ante.NewValidateSigCountDecorator(options.AccountKeeper),
		ante.NewSigGasConsumeDecorator(options.AccountKeeper, options.SigGasConsumer),
		ante.NewSigVerificationDecorator(options.AccountKeeper, options.SignModeHandler),
		ante.NewIncrementSequenceDecorator(options.AccountKeeper),
	}

	if options.DataBountyKeeper != nil {
		anteDecorators = append(anteDecorators, NewDataBountyDecorator(*options.DataBountyKeeper))
	}

	return sdk.ChainAnteDecorators(anteDecorators...), nil
}
