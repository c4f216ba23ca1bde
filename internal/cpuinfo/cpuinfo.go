// Package cpuinfo exposes the CPU feature flags this module's byte-class
// scanning uses to pick a faster code path.
//
// This module carries no architecture-specific assembly: the supported
// pattern subset is small enough that a word-at-a-time pure Go loop already
// saturates memory bandwidth for the class-membership scan used by the
// URL-shape specialization (see nfa.ClassRunLen). x/sys/cpu is still
// the right tool for the feature check itself — the alternative is
// hand-rolled cpuid parsing, which is exactly what this package exists to
// avoid.
package cpuinfo

import "golang.org/x/sys/cpu"

// HasWideWordSupport reports whether the current CPU benefits from the
// 8-bytes-at-a-time class-membership scan in nfa.ClassRunLen. It is true
// when x/sys/cpu reports SSE4.2 on x86 or ASIMD on ARM64, and also when
// x/sys/cpu has no feature detection for the platform at all.
var HasWideWordSupport = detectWideWord()

func detectWideWord() bool {
	// Where x/sys/cpu.Initialized is false, the unrolled scan is chosen: it
	// is plain Go, so it is correct on every platform.
	return cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD || !cpu.Initialized
}
