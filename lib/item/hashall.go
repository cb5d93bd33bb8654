// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// HashOptions configures HashAll.
type HashOptions struct {
	// Force skips the canonical check: every input that parses is
	// hashed.
	Force bool

	// Workers bounds the number of inputs processed at once. Zero
	// means runtime.GOMAXPROCS(0).
	Workers int
}

// HashResult is the outcome for one input of HashAll. Hash is set
// whenever the input parsed, including when Err is ErrNotCanonical.
type HashResult struct {
	Item *Item
	Hash string
	Err  error
}

// HashAll parses and hashes every input concurrently. Results are in
// input order. Without options.Force, each input must already be
// canonical. Inputs not started before ctx is done get ctx.Err().
func HashAll(ctx context.Context, inputs [][]byte, options HashOptions) []HashResult {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]HashResult, len(inputs))
	var group errgroup.Group
	group.SetLimit(workers)
	for index, raw := range inputs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[index] = HashResult{Err: err}
				return nil
			}
			results[index] = hashOne(raw, options.Force)
			return nil
		})
	}
	// Every goroutine returns nil; errors travel in results.
	_ = group.Wait()
	return results
}

func hashOne(raw []byte, force bool) HashResult {
	if force {
		it, err := FromJSON(raw)
		if err != nil {
			return HashResult{Err: err}
		}
		return HashResult{Item: it, Hash: it.Hash()}
	}
	it, hash, err := CheckCanonical(raw)
	return HashResult{Item: it, Hash: hash, Err: err}
}
