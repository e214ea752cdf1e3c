//go:build !windows

package cli

import (
	"errors"

	"github.com/dsrt-go/dsrt/internal/kernel"
)

func newGPUBackend() (kernel.Backend, func(), error) {
	return nil, nil, errors.New("webgpu backend is only built on windows")
}
