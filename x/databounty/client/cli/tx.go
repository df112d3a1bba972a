package cli

import (
	"fmt"
	"strconv"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/AhegaoBurger/DataForge/x/databounty/types"
)

const (
	flagMinDuration = "min-duration"
	flagMinRes      = "min-resolution"
	flagMinFps      = "min-fps"
	flagArweaveTx   = "arweave-tx"
	flagMetadataURI = "metadata-uri"
	flagRoyalty     = "royalty"
)

// GetTxCmd returns the transaction commands for the databounty module
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Data bounty transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		CmdCreateBounty(),
		CmdPauseBounty(),
		CmdResumeBounty(),
		CmdCompleteBounty(),
		CmdCancelBounty(),
		CmdSubmitVideo(),
		CmdStartReview(),
		CmdApproveSubmission(),
		CmdRejectSubmission(),
		CmdCreateProfile(),
		CmdAwardBadge(),
		CmdCreateDataset(),
		CmdPurchaseDataset(),
	)

	return txCmd
}

// CmdCreateBounty returns a CLI command handler for creating a bounty pool
func CmdCreateBounty() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-bounty [bounty-id] [description] [reward-per-video] [total-pool] [videos-target] [expires-at]",
		Short: "Create and fund a new video bounty pool",
		Long: `Create a new bounty pool. The total pool is moved into module escrow and
paid out per approved video. The expiry is an RFC3339 timestamp.

Example:
  $ dataforged tx databounty create-bounty dashcam-night-01 "night driving clips" \
    1000000 50000000 50 2027-01-01T00:00:00Z \
    --min-duration 30 --min-resolution 1080p --min-fps 30 --from mykey`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			reward, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid reward-per-video: %s (must be integer)", args[2])
			}

			totalPool, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid total-pool: %s (must be integer)", args[3])
			}

			videosTarget, err := strconv.ParseUint(args[4], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid videos-target: %w", err)
			}

			expiresAt, err := time.Parse(time.RFC3339, args[5])
			if err != nil {
				return fmt.Errorf("invalid expires-at (want RFC3339): %w", err)
			}

			minDuration, err := cmd.Flags().GetUint32(flagMinDuration)
			if err != nil {
				return err
			}
			minRes, err := cmd.Flags().GetString(flagMinRes)
			if err != nil {
				return err
			}
			minFps, err := cmd.Flags().GetUint32(flagMinFps)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateBounty(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
				types.VideoRequirements{
					MinDurationSecs: minDuration,
					MinResolution:   minRes,
					MinFps:          minFps,
				},
				reward,
				totalPool,
				videosTarget,
				expiresAt.Unix(),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint32(flagMinDuration, 0, "Minimum video duration in seconds")
	cmd.Flags().String(flagMinRes, "", "Minimum video resolution (e.g. 1080p)")
	cmd.Flags().Uint32(flagMinFps, 0, "Minimum video frame rate")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPauseBounty returns a CLI command handler for pausing a bounty
func CmdPauseBounty() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause-bounty [bounty-id]",
		Short: "Pause an active bounty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgPauseBounty(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResumeBounty returns a CLI command handler for resuming a paused bounty
func CmdResumeBounty() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume-bounty [bounty-id]",
		Short: "Resume a paused bounty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgResumeBounty(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCompleteBounty returns a CLI command handler for completing a bounty
func CmdCompleteBounty() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete-bounty [bounty-id]",
		Short: "Mark a bounty as completed, closing it to new submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCompleteBounty(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelBounty returns a CLI command handler for cancelling a bounty
func CmdCancelBounty() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-bounty [bounty-id]",
		Short: "Cancel a bounty and refund the uncommitted pool",
		Long: `Cancel a bounty. The remaining (uncommitted) pool is refunded to the
bounty authority. Escrow held for pending submissions stays in module custody
until each submission is approved or rejected.

Example:
  $ dataforged tx databounty cancel-bounty dashcam-night-01 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCancelBounty(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitVideo returns a CLI command handler for submitting a video
func CmdSubmitVideo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-video [submission-id] [bounty-id] [ipfs-hash]",
		Short: "Submit a video against an active bounty",
		Long: `Submit a video for review. One reward is escrowed from the bounty's
remaining pool at submission time.

Example:
  $ dataforged tx databounty submit-video sub-001 dashcam-night-01 QmYwAPJz... \
    --metadata-uri ipfs://QmMeta... --from contributor`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			arweaveTx, err := cmd.Flags().GetString(flagArweaveTx)
			if err != nil {
				return err
			}
			metadataURI, err := cmd.Flags().GetString(flagMetadataURI)
			if err != nil {
				return err
			}

			msg := types.NewMsgSubmitVideo(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
				args[2],
				arweaveTx,
				metadataURI,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagArweaveTx, "", "Optional Arweave transaction ID for permanent storage")
	cmd.Flags().String(flagMetadataURI, "", "Optional metadata URI")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStartReview returns a CLI command handler for starting a review
func CmdStartReview() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-review [submission-id]",
		Short: "Mark a pending submission as under review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgStartReview(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdApproveSubmission returns a CLI command handler for approving a submission
func CmdApproveSubmission() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-submission [submission-id] [quality-score]",
		Short: "Approve a submission and release its escrowed reward",
		Long: `Approve a submission. The escrowed reward is paid to the contributor and
the contributor's reputation is recalculated with the given quality score (0-100).

Example:
  $ dataforged tx databounty approve-submission sub-001 85 --from authority`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			score, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid quality-score: %w", err)
			}

			msg := types.NewMsgApproveSubmission(clientCtx.GetFromAddress().String(), args[0], uint32(score))
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRejectSubmission returns a CLI command handler for rejecting a submission
func CmdRejectSubmission() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject-submission [submission-id] [reason]",
		Short: "Reject a submission and return its escrow to the pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRejectSubmission(clientCtx.GetFromAddress().String(), args[0], args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateProfile returns a CLI command handler for creating a contributor profile
func CmdCreateProfile() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-profile",
		Short: "Create a contributor profile for the sending account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateProfile(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAwardBadge returns a CLI command handler for awarding a badge
func CmdAwardBadge() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "award-badge [wallet] [badge-type]",
		Short: "Award a badge to a contributor (module authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgAwardBadge(clientCtx.GetFromAddress().String(), args[0], args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateDataset returns a CLI command handler for listing a dataset
func CmdCreateDataset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-dataset [dataset-id] [license-type] [price]",
		Short: "List a dataset for sale",
		Long: `List a dataset under the given license terms. License type is one of:
single_use, unlimited, exclusive, commercial_resale.

Example:
  $ dataforged tx databounty create-dataset night-driving-v1 unlimited 25000000 \
    --royalty 10 --from creator`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			licenseType, err := parseLicenseType(args[1])
			if err != nil {
				return err
			}

			price, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid price: %s (must be integer)", args[2])
			}

			royalty, err := cmd.Flags().GetUint32(flagRoyalty)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateDataset(
				clientCtx.GetFromAddress().String(),
				args[0],
				licenseType,
				price,
				royalty,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint32(flagRoyalty, 0, "Royalty percentage for resales (0-100)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPurchaseDataset returns a CLI command handler for purchasing a dataset
func CmdPurchaseDataset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase-dataset [dataset-id]",
		Short: "Purchase a dataset license at its listed price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgPurchaseDataset(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseLicenseType(raw string) (types.LicenseType, error) {
	switch raw {
	case "single_use":
		return types.LicenseTypeSingleUse, nil
	case "unlimited":
		return types.LicenseTypeUnlimited, nil
	case "exclusive":
		return types.LicenseTypeExclusive, nil
	case "commercial_resale":
		return types.LicenseTypeCommercialResale, nil
	default:
		return 0, fmt.Errorf("unknown license type %q (want single_use, unlimited, exclusive or commercial_resale)", raw)
	}
}
