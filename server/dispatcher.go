package server

import (
	"context"

	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/dispatch"
	"github.com/jeremiah-corrado/arkouda/scalar"
)

// Dispatcher is the command-layer front door spec.md §6 describes: it
// decodes a request envelope's recognized keys, calls into
// dispatch.Dispatcher for the actual promotion/kernel work, and folds the
// result (or error) back into a response envelope. The routing logic
// itself lives in dispatch.Dispatcher so the kernel packages can be
// exercised without a symbol table or command envelope at all; Dispatcher
// only adds the wire-level concerns (logging, config, the six registered
// commands).
type Dispatcher struct {
	core    *dispatch.Dispatcher
	config  Config
	symbols SymbolTable
}

// SymbolTable is the subset of dispatch.SymbolTable the command layer
// needs directly, re-exported here so callers constructing a Dispatcher
// don't need to import the dispatch package themselves.
type SymbolTable = dispatch.SymbolTable

// NewDispatcher builds a Dispatcher over symbols, applying opts to its
// Config. Config.ChunkSize is applied to the package-wide data-parallel
// loop granularity (array.SetChunkSize); Config.DefaultMaxBits is applied
// to the core dispatcher's fallback maxBits for mixed BigInt/fixed-width
// operations.
func NewDispatcher(symbols SymbolTable, opts ...Option) *Dispatcher {
	cfg := NewConfig(opts...)
	array.SetChunkSize(cfg.ChunkSize)
	core := dispatch.New(symbols)
	core.DefaultMaxBits = cfg.DefaultMaxBits
	return &Dispatcher{
		core:    core,
		config:  cfg,
		symbols: symbols,
	}
}

// BinOpVV handles the registered "binopvv" command.
func (d *Dispatcher) BinOpVV(ctx context.Context, args BinOpVVArgs) Reply {
	d.config.Logger.Debug(ctx, "binopvv", "op", args.Op, "a", args.A, "b", args.B)
	name, err := d.core.BinOpVV(args.Op, args.A, args.B)
	if err != nil {
		d.config.Logger.Error(ctx, "binopvv failed", "err", err)
		return failure(err)
	}
	return normal(name)
}

// BinOpVS handles the registered "binopvs" command.
func (d *Dispatcher) BinOpVS(ctx context.Context, args BinOpVSArgs) Reply {
	s, err := ParseScalar(args.Value, args.DType)
	if err != nil {
		return failure(err)
	}
	name, err := d.core.BinOpVS(args.Op, args.A, s)
	if err != nil {
		d.config.Logger.Error(ctx, "binopvs failed", "err", err)
		return failure(err)
	}
	return normal(name)
}

// BinOpSV handles the registered "binopsv" command. Here args.A names the
// scalar's side (Value/DType) and args.B carries the array name, matching
// spec.md §6's "identical keys" note for the mirrored command.
func (d *Dispatcher) BinOpSV(ctx context.Context, op, value, dtypeName, bName string) Reply {
	s, err := ParseScalar(value, dtypeName)
	if err != nil {
		return failure(err)
	}
	name, err := d.core.BinOpSV(op, s, bName)
	if err != nil {
		d.config.Logger.Error(ctx, "binopsv failed", "err", err)
		return failure(err)
	}
	return normal(name)
}

// OpEqVV handles the registered "opeqvv" command. No result array is
// created; the response is a short success marker (spec.md §6).
func (d *Dispatcher) OpEqVV(ctx context.Context, args BinOpVVArgs) Reply {
	if err := d.core.OpEqVV(args.Op, args.A, args.B); err != nil {
		d.config.Logger.Error(ctx, "opeqvv failed", "err", err)
		return failure(err)
	}
	return normal(args.A)
}

// OpEqVS handles the registered "opeqvs" command.
func (d *Dispatcher) OpEqVS(ctx context.Context, args BinOpVSArgs) Reply {
	s, err := ParseScalar(args.Value, args.DType)
	if err != nil {
		return failure(err)
	}
	if err := d.core.OpEqVS(args.Op, args.A, s); err != nil {
		d.config.Logger.Error(ctx, "opeqvs failed", "err", err)
		return failure(err)
	}
	return normal(args.A)
}

// Clip handles the registered "clip" command.
func (d *Dispatcher) Clip(ctx context.Context, args ClipArgs) Reply {
	var minScalar, maxScalar scalar.Scalar
	var err error
	if !args.MinIsArray {
		minScalar, err = ParseScalar(args.Min, args.MinDType)
		if err != nil {
			return failure(err)
		}
	}
	if !args.MaxIsArray {
		maxScalar, err = ParseScalar(args.Max, args.MaxDType)
		if err != nil {
			return failure(err)
		}
	}
	name, err := d.core.Clip(args.Name, args.Min, args.Max, minScalar, maxScalar, args.MinIsArray, args.MaxIsArray)
	if err != nil {
		d.config.Logger.Error(ctx, "clip failed", "err", err)
		return failure(err)
	}
	return normal(name)
}
