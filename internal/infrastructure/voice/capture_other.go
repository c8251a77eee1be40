//go:build !linux && !darwin

package voice

import "os/exec"

func killProcessGroupOnCancel(*exec.Cmd) {}
