package engine

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// =============================================================================
// Dispatcher
// =============================================================================
//
// Selects a CPUTier once per process, in decreasing lane width, and
// caches it under a sync.Once so every subsequent counting call is a
// single atomic-load-guarded read. sync.Once makes the race-free,
// once-only publication explicit rather than leaning on init() ordering,
// since callers may start counting concurrently on first use from more
// than one goroutine.

var (
	tierOnce     sync.Once
	selectedTier CPUTier
)

// SelectedTier returns the process-wide CPUTier, probing CPU capability
// on first call and caching the result for the remainder of the process
// lifetime.
func SelectedTier() CPUTier {
	tierOnce.Do(func() {
		selectedTier = probeTier()
	})
	return selectedTier
}

// probeTier inspects CPU capability in decreasing lane width. When no
// wide feature is detected it resolves to Wide16, the portable SWAR
// baseline that needs no CPU feature, so probing never selects
// TierScalar (tier selection, not an error).
func probeTier() CPUTier {
	if wide64Available {
		return TierWide64
	}
	if wide32Eligible() {
		return TierWide32
	}
	return TierWide16
}

// wide32Eligible reports whether the host looks capable of benefiting
// from 32-byte-lane SWAR processing over the 16-byte baseline: modern
// x86_64 (AVX2-class hardware, even though Wide32's own implementation
// is portable SWAR rather than an AVX2 instruction) or arm64 with
// Advanced SIMD. Hosts matching neither still get Wide16, which is
// correct everywhere, just potentially leaving some throughput on the
// table on exotic targets.
func wide32Eligible() bool {
	if cpu.X86.HasAVX2 {
		return true
	}
	if cpu.ARM64.HasASIMD {
		return true
	}
	return false
}

// resetTierForTest clears the cached tier so tests can exercise probeTier
// under different forced conditions. Only ever called from tests in this
// package.
func resetTierForTest() {
	tierOnce = sync.Once{}
}
