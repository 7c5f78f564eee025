// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpoly

import "golang.org/x/sync/errgroup"

// ThreadPool is the optional external thread pool contract, in Go a
// single Go method in the shape golang.org/x/sync/errgroup already
// exposes. Operations run single-threaded by default. Installing any
// ThreadPool via SetThreadPool makes the dense array multiplier
// stripe its outer loop across four goroutines of its own; mpoly does
// not call the installed pool's Go method, and division and GCD run
// single-threaded either way.
type ThreadPool interface {
	// Go requests up to limit workers and runs tasks across them,
	// returning once every task has completed or one has failed
	// A barrier precedes any read of a worker's output.
	Go(limit int, tasks []func() error) error
}

// errgroupPool is the default in-process ThreadPool, backed by
// golang.org/x/sync/errgroup, mirroring how mat/pool.go keeps one
// package-level piece of shared state for scratch reuse — here, the
// optional global pool itself.
type errgroupPool struct{}

func (errgroupPool) Go(limit int, tasks []func() error) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, task := range tasks {
		task := task
		g.Go(task)
	}
	return g.Wait()
}

// pool is the process-wide optional thread pool, nil by default
// (single-threaded cooperative mode).
var pool ThreadPool

// SetThreadPool installs the process-wide thread pool; while one is
// installed, dense array multiplication runs striped (see
// arrayWorkers). Passing nil restores the default single-threaded
// behaviour. This is the one process-wide global
// mpoly permits.
func SetThreadPool(p ThreadPool) { pool = p }

// DefaultThreadPool returns the errgroup-backed pool used whenever a
// caller wants explicit parallelism without implementing ThreadPool
// themselves.
func DefaultThreadPool() ThreadPool { return errgroupPool{} }

// arrayWorkers reports how many workers the array engine should use
// for the current call: 1 (no parallelism) unless a pool is installed.
func arrayWorkers() int {
	if pool == nil {
		return 1
	}
	return 4
}
