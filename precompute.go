// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
)

// The upstream this package descends from ships a zlib+base64-compressed,
// offline-generated byte-point table for the base point G (see
// genprecomps.go/loadprecomputed.go in the original project) that is
// deserialized once at S256() init time. That offline generation step cannot
// be reproduced without running the Go toolchain, so this file instead builds
// the equivalent window table for G at runtime the first time it is needed,
// and caches per-point tables for arbitrary points behind a small bounded
// cache, exactly as described for the precompute cache: compute once, then
// atomically install if nothing beat us to it.

// gWindow is the wNAF window width used for the base point.  A wider window
// means a larger table but fewer point additions per scalar multiplication;
// G is multiplied far more often than any other point (every signing
// operation and the first term of every verification), so it gets the widest
// window this package uses.
const gWindow = 8

// pointWindow is the wNAF window width used for arbitrary (non-base) points.
const pointWindow = 4

type oddMultipleTable struct {
	pos []JacobianPoint
	neg []JacobianPoint
}

func buildOddMultipleTable(p *JacobianPoint, w uint) *oddMultipleTable {
	count := 1 << (w - 2)
	pos := oddMultiples(p, count)
	neg := make([]JacobianPoint, count)
	for i := range pos {
		neg[i] = negatePoint(&pos[i])
	}
	return &oddMultipleTable{pos: pos, neg: neg}
}

var gTableCache atomic.Pointer[oddMultipleTable]

// gPrecomp returns the lazily-computed odd-multiple table for the base
// point G, computing and installing it on first use.  Concurrent callers
// that race to compute it each finish their own copy, but only one is
// installed; this mirrors the "compute, then atomically swap in if absent"
// pattern rather than blocking callers behind a lock for the (one-time,
// cheap relative to a signature) computation.
func gPrecomp() *oddMultipleTable {
	if t := gTableCache.Load(); t != nil {
		return t
	}
	var g JacobianPoint
	bigAffineToJacobian(curveParams.Gx, curveParams.Gy, &g)
	t := buildOddMultipleTable(&g, gWindow)
	gTableCache.CompareAndSwap(nil, t)
	return gTableCache.Load()
}

func init() {
	// Pre-warm the base point table at package initialization, matching the
	// upstream behavior of having it ready before the first signature or
	// verification rather than paying for it on the hot path.
	gPrecomp()
}

// scalarMultFixedBase multiplies k*G using the cached base-point window
// table and stores the result in result.
func scalarMultFixedBase(k *big.Int, result *JacobianPoint) {
	if k.Sign() == 0 {
		result.X.SetInt(0)
		result.Y.SetInt(0)
		result.Z.SetInt(0)
		return
	}

	table := gPrecomp()
	digits := wnaf(new(big.Int).Set(k), gWindow)

	var acc JacobianPoint
	acc.X.SetInt(0)
	acc.Y.SetInt(0)
	acc.Z.SetInt(0)
	for i := len(digits) - 1; i >= 0; i-- {
		var doubled JacobianPoint
		DoubleNonConst(&acc, &doubled)
		acc = doubled

		d := digits[i]
		if d == 0 {
			continue
		}
		idx := (absInt32(d) - 1) / 2
		var sum JacobianPoint
		if d > 0 {
			AddNonConst(&acc, &table.pos[idx], &sum)
		} else {
			AddNonConst(&acc, &table.neg[idx], &sum)
		}
		acc = sum
	}
	*result = acc
}

// pointTableCacheLimit bounds the number of non-base-point tables retained
// before the cache is cleared outright.  Arbitrary public keys are not
// reused anywhere near as often as G, so this favors simplicity (drop
// everything and start over) over a proper LRU.
const pointTableCacheLimit = 256

var (
	pointTableCacheMu sync.RWMutex
	pointTableCache   = make(map[string]*oddMultipleTable)
)

// pointCacheKey derives a cache key from a point's affine coordinates.
func pointCacheKey(p *JacobianPoint) string {
	affine := *p
	affine.ToAffine()
	xb := affine.X.Bytes()
	yb := affine.Y.Bytes()
	var key [64]byte
	copy(key[:32], xb[:])
	copy(key[32:], yb[:])
	return string(key[:])
}

// cachedPointTable returns the odd-multiple table for an arbitrary point,
// computing and caching it if this is the first time the point has been
// seen.
func cachedPointTable(p *JacobianPoint) *oddMultipleTable {
	key := pointCacheKey(p)

	pointTableCacheMu.RLock()
	t, ok := pointTableCache[key]
	pointTableCacheMu.RUnlock()
	if ok {
		return t
	}

	t = buildOddMultipleTable(p, pointWindow)

	pointTableCacheMu.Lock()
	defer pointTableCacheMu.Unlock()
	if existing, ok := pointTableCache[key]; ok {
		return existing
	}
	if len(pointTableCache) >= pointTableCacheLimit {
		maps.Clear(pointTableCache)
	}
	pointTableCache[key] = t
	return t
}
