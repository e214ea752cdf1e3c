// Package host runs the DSRT kernel from the host side of the binary
// boundary.
//
// Load resolves dsrt.wasm, instantiates it with wazero and returns a Kernel
// backed by the module's exports. When the module cannot be loaded, Load
// logs a warning and returns the in-process native kernel instead, so callers
// always get a working Kernel unless Options.RequireWASM is set.
//
//	k, err := host.Load(ctx, host.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer k.Close(ctx)
//
//	n, err := k.Normalize(ctx, kernel.Vec3{3, 4, 0})
package host
