//go:build windows

package cli

import (
	"github.com/dsrt-go/dsrt/internal/backend/webgpu"
	"github.com/dsrt-go/dsrt/internal/kernel"
)

func newGPUBackend() (kernel.Backend, func(), error) {
	b, err := webgpu.New()
	if err != nil {
		return nil, nil, err
	}
	return b, b.Release, nil
}
