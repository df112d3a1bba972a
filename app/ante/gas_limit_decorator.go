package ante

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	databountytypes "github.com/AhegaoBurger/DataForge/x/databounty/types"
)

// Gas limits for different operation types to prevent exhaustion attacks
const (
	// Bounty lifecycle operations
	MaxGasPerBountyCreate     uint64 = 300_000
	MaxGasPerBountyTransition uint64 = 100_000
	MaxGasPerBountyCancel     uint64 = 150_000

	// Submission and review operations
	MaxGasPerSubmission uint64 = 200_000
	MaxGasPerResolution uint64 = 250_000

	// Profile and marketplace operations
	MaxGasPerProfileOp uint64 = 100_000
	MaxGasPerDatasetOp uint64 = 150_000

	// General limits
	MaxGasPerTx      uint64 = 10_000_000 // Maximum gas per transaction
	MaxGasPerMessage uint64 = 500_000    // Maximum gas per message in tx
	MaxMessagesPerTx int    = 10         // Maximum messages per transaction
)

// GasLimitDecorator enforces per-operation gas limits to prevent exhaustion attacks
type GasLimitDecorator struct{}

// NewGasLimitDecorator creates a new GasLimitDecorator
func NewGasLimitDecorator() GasLimitDecorator {
	return GasLimitDecorator{}
}

// AnteHandle enforces gas limits on transactions and individual messages
func (gld GasLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	msgs := tx.GetMsgs()

	// Enforce maximum messages per transaction
	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d",
			len(msgs), MaxMessagesPerTx,
		)
	}

	for i, msg := range msgs {
		requiredGas := requiredGasForMessage(msg)

		if requiredGas > MaxGasPerMessage {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d requires too much gas: %d > %d",
				i, requiredGas, MaxGasPerMessage,
			)
		}

		// Pre-check the message under a bounded meter; actual consumption
		// happens during execution.
		msgGasMeter := storetypes.NewGasMeter(requiredGas)
		msgCtx := ctx.WithGasMeter(msgGasMeter)
		if err := validateMessageGasUsage(msgCtx, msg); err != nil {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d failed gas validation: %v", i, err,
			)
		}
	}

	// Check total transaction gas limit
	totalGasRequired := ctx.GasMeter().Limit()
	if totalGasRequired > MaxGasPerTx && !simulate {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction gas limit too high: %d > %d",
			totalGasRequired, MaxGasPerTx,
		)
	}

	gasBefore := ctx.GasMeter().GasConsumed()

	newCtx, err := next(ctx, tx, simulate)
	if err != nil {
		return newCtx, err
	}

	gasAfter := newCtx.GasMeter().GasConsumed()
	gasUsed := gasAfter - gasBefore

	// Log excessive gas usage for monitoring
	if gasUsed > MaxGasPerTx/2 {
		ctx.Logger().Info("High gas consumption detected",
			"gas_used", gasUsed,
			"num_messages", len(msgs),
			"tx_hash", fmt.Sprintf("%X", ctx.TxBytes()),
		)
	}

	return newCtx, nil
}

// requiredGasForMessage returns the gas budget for a specific message type
func requiredGasForMessage(msg sdk.Msg) uint64 {
	switch msg.(type) {
	case *databountytypes.MsgCreateBounty:
		return MaxGasPerBountyCreate
	case *databountytypes.MsgPauseBounty,
		*databountytypes.MsgResumeBounty,
		*databountytypes.MsgCompleteBounty:
		return MaxGasPerBountyTransition
	case *databountytypes.MsgCancelBounty:
		return MaxGasPerBountyCancel

	case *databountytypes.MsgSubmitVideo:
		return MaxGasPerSubmission
	case *databountytypes.MsgStartReview,
		*databountytypes.MsgApproveSubmission,
		*databountytypes.MsgRejectSubmission:
		return MaxGasPerResolution

	case *databountytypes.MsgCreateProfile,
		*databountytypes.MsgAwardBadge:
		return MaxGasPerProfileOp

	case *databountytypes.MsgCreateDataset,
		*databountytypes.MsgPurchaseDataset:
		return MaxGasPerDatasetOp

	default:
		// For unknown message types, use a conservative default
		return MaxGasPerMessage
	}
}

// validateMessageGasUsage performs pre-validation of message gas requirements
func validateMessageGasUsage(ctx sdk.Context, msg sdk.Msg) error {
	type validateBasicMsg interface {
		ValidateBasic() error
	}

	if vb, ok := msg.(validateBasicMsg); ok {
		if err := vb.ValidateBasic(); err != nil {
			return fmt.Errorf("message validation failed: %w", err)
		}
	}

	return nil
}
