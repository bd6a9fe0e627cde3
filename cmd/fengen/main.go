package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/iftikharramnandan/chess960-fen-generator/pkg/fengen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose   bool
	colorFlag string
	clean     bool
	drawBoard bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "fengen",
	Short:         "Builds FEN start positions from an 8-piece back rank",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <pieces>",
	Short: "Check that a back rank holds k, q and two each of r, n, b",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var generateCmd = &cobra.Command{
	Use:   "generate <pieces>",
	Short: "Print the FEN for a back rank",
	Example: `  fengen generate rnbqkbnr
  fengen generate bbqnnrkr --color black --board`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print the FEN for a random Chess960 back rank",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

var indexCmd = &cobra.Command{
	Use:   "index <n>",
	Short: "Print the FEN for Chess960 position number n (0-959)",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndex,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	for _, cmd := range []*cobra.Command{generateCmd, randomCmd, indexCmd} {
		cmd.Flags().StringVarP(&colorFlag, "color", "c", "white", "side the back rank belongs to (white or black)")
		cmd.Flags().BoolVarP(&drawBoard, "board", "b", false, "also draw the position")
	}
	generateCmd.Flags().BoolVar(&clean, "clean", false, "drop everything but letters before validating")
	validateCmd.Flags().BoolVar(&clean, "clean", false, "drop everything but letters before validating")

	rootCmd.AddCommand(validateCmd, generateCmd, randomCmd, indexCmd)
}

func piecesArg(arg string) string {
	if clean {
		return fengen.Clean(arg)
	}
	return arg
}

func runValidate(cmd *cobra.Command, args []string) error {
	pieces := piecesArg(args[0])
	if err := fengen.Validate(pieces); err != nil {
		logger.Debug("validation failed", zap.String("pieces", pieces), zap.Error(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	color, err := fengen.ParseColor(colorFlag)
	if err != nil {
		return err
	}
	pieces := piecesArg(args[0])
	if err := fengen.Validate(pieces); err != nil {
		logger.Debug("validation failed", zap.String("pieces", pieces), zap.Error(err))
		return err
	}
	return printPosition(cmd.OutOrStdout(), pieces, color)
}

func runRandom(cmd *cobra.Command, args []string) error {
	color, err := fengen.ParseColor(colorFlag)
	if err != nil {
		return err
	}
	pieces := fengen.Random(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	return printPosition(cmd.OutOrStdout(), pieces, color)
}

func runIndex(cmd *cobra.Command, args []string) error {
	color, err := fengen.ParseColor(colorFlag)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("index should be an integer: %w", err)
	}
	pieces, err := fengen.FromIndex(n)
	if err != nil {
		return err
	}
	return printPosition(cmd.OutOrStdout(), pieces, color)
}

func printPosition(w io.Writer, pieces string, color fengen.Color) error {
	pos := fengen.NewPosition(pieces, color)
	logger.Debug("generated position",
		zap.String("pieces", pieces),
		zap.Stringer("color", color),
		zap.String("base_row", fengen.BaseRow(pieces, color)),
		zap.String("castling", pos.Castling),
	)
	fmt.Fprintln(w, pos.String())
	if !drawBoard {
		return nil
	}
	diagram, err := fengen.Draw(pieces, color)
	if err != nil {
		return err
	}
	fmt.Fprint(w, diagram)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var verr *fengen.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, verr.Message())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
