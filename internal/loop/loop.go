// Package loop wires a single local player to the sketch.
package loop

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hearts/internal/draw"
	"github.com/tomz197/hearts/internal/loop/client"
	"github.com/tomz197/hearts/internal/loop/server"
	"github.com/tomz197/hearts/internal/session"
)

// Options tunes a local run. The zero value plays a randomly seeded sketch
// on the process terminal without logging.
type Options struct {
	Seed         uint64            // Non-zero makes target placement and decay repeatable
	Logger       *log.Logger       // Must not write to the terminal being drawn on
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
}

// Run plays one sketch on the given terminal streams until the player
// quits or the input ends. The terminal must already be in raw mode.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	clientOpts := client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     "local",
		Logger:       opts.Logger,
	}
	if clientOpts.TermSizeFunc == nil {
		clientOpts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Seed != 0 {
		clientOpts.Sampler = session.NewRandSampler(opts.Seed)
	}

	c := client.NewClient(server.NewHub(opts.Logger), r, w, clientOpts)
	if err := c.Run(); err != nil {
		return fmt.Errorf("run sketch: %w", err)
	}
	return nil
}
