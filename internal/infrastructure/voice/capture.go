// Package voice implements speech recognition as two steps: an external
// command records one utterance, then an HTTP endpoint transcribes it.
package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/qualzed/qb/internal/logging"
)

// ErrNoAudio is returned when the capture command produced no data.
var ErrNoAudio = errors.New("no audio captured")

// AudioCapturer records a single utterance.
type AudioCapturer interface {
	Capture(ctx context.Context) ([]byte, error)
}

// CommandCapturer runs a recorder such as arecord and reads WAV from its stdout.
type CommandCapturer struct {
	argv []string
}

// NewCommandCapturer creates a capturer for argv (program plus arguments).
func NewCommandCapturer(argv []string) *CommandCapturer {
	return &CommandCapturer{argv: append([]string(nil), argv...)}
}

// Capture runs the command to completion. Cancelling ctx kills it.
func (c *CommandCapturer) Capture(ctx context.Context) ([]byte, error) {
	if len(c.argv) == 0 {
		return nil, fmt.Errorf("capture command is empty")
	}
	log := logging.FromContext(ctx)

	path, err := exec.LookPath(c.argv[0])
	if err != nil {
		return nil, fmt.Errorf("capture command %q not found: %w", c.argv[0], err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, c.argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	killProcessGroupOnCancel(cmd)

	log.Debug().Strs("argv", c.argv).Msg("capturing audio")
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("audio capture interrupted: %w", ctxErr)
		}
		return nil, fmt.Errorf("audio capture failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	if stdout.Len() == 0 {
		return nil, ErrNoAudio
	}
	log.Debug().Int("bytes", stdout.Len()).Msg("audio captured")
	return stdout.Bytes(), nil
}
