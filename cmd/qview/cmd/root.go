/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/qview"
	"github.com/blacktop/qview/pkg/config"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitNotTerminal = 3
	ExitDecode      = 4
)

var verbose bool
var configPath string

// viewerTTY is the raw-mode terminal the sessions draw into
type viewerTTY interface {
	qview.Terminal
	io.Closer
}

// swapped out in tests
var (
	isTerminal   = qview.IsTerminal
	openTerminal = func() (viewerTTY, error) { return qview.OpenTTY() }
)

func init() {
	log.SetHandler(clihander.Default)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qview <file> [file...]",
	Short: "View and pan images in your terminal.",
	Long: `View images in a true-color terminal, two pixels per character cell.

Keys:
  a/d  pan left/right (A/D: 10 pixels)
  s/w  pan up/down    (S/W: 10 pixels)
  q    next file (also Ctrl-D, Ctrl-C)`,
	Args:          requireFiles,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return run(args)
	},
}

func requireFiles(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return qview.ErrNoFiles
	}
	return nil
}

// run shows every file in order. The terminal is restored before run
// returns, whatever the outcome.
func run(files []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	checker, err := cfg.Checkerboard()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"config":      cfg.Path,
		"fine_step":   cfg.FineStep,
		"coarse_step": cfg.CoarseStep,
	}).Debug("Loaded settings")

	if !isTerminal(os.Stdin) {
		return qview.ErrNotTerminal
	}

	log.WithField("files", len(files)).Debug("Entering raw mode")
	tty, err := openTerminal()
	if err != nil {
		return err
	}
	defer tty.Close()

	for _, path := range files {
		canvas, err := qview.Open(path)
		if err != nil {
			return err
		}

		err = qview.NewSession(canvas, tty).
			SetBindings(cfg.Bindings()).
			SetCheckerboard(checker).
			Run()
		if err != nil {
			return err
		}
	}

	return nil
}

// exitCode maps an error returned by run to the process exit status
func exitCode(err error) int {
	var decodeErr *qview.DecodeError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, qview.ErrNoFiles):
		return ExitUsage
	case errors.Is(err, qview.ErrNotTerminal):
		return ExitNotTerminal
	case errors.As(err, &decodeErr):
		return ExitDecode
	default:
		return ExitFailure
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(exitCode(err))
	}
}
