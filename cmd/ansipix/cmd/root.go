/*
Copyright © 2026 blacktop

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
	"fmt"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-ansipix"
	"github.com/spf13/cobra"
)

var verbose bool

func init() {
	log.SetHandler(clihander.Default)
}

// NewRootCmd builds the ansipix command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ansipix <file_path>",
		Short:         "Paint an image or the first page of a PDF in your terminal",
		Version:       versionString(),
		Args:          exactlyOnePath,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			img, err := ansipix.Open(args[0])
			if err != nil {
				return err
			}

			return img.Fprint(cmd.OutOrStdout())
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	return cmd
}

// exactlyOnePath rejects any argument count other than one before anything is decoded
func exactlyOnePath(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", ansipix.ErrUsage, err)
	}
	return nil
}

// diagnostic picks the one-line message printed for a failed run
func diagnostic(err error) string {
	switch {
	case errors.Is(err, ansipix.ErrUsage):
		return "Usage: ansipix <file_path>"
	case errors.Is(err, ansipix.ErrPDFLoad):
		return "Failed to load PDF document."
	case errors.Is(err, ansipix.ErrPDFPage):
		return "Failed to load the first page."
	case errors.Is(err, ansipix.ErrImageDecode), errors.Is(err, ansipix.ErrEmptyImage):
		return "Error: Unable to load image!"
	default:
		return err.Error()
	}
}

// Execute runs the root command and exits 1 on any failure.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Debug(err.Error())
		log.Error(diagnostic(err))
		os.Exit(1)
	}
}
