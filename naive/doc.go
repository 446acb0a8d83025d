// Package naive computes min-plus (tropical) convolutions with the direct
// double loop.
//
// 🚀 What is a min-plus convolution?
//
//	For sequences A (length n) and B (length m) the min-plus convolution is
//	C[k] = min over i+j=k of A[i]+B[j], for k in [0, n+m-1). It is the
//	(min,+) analogue of ordinary convolution and shows up in:
//	  • resource allocation (splitting a budget across two activities)
//	  • sequence alignment and DP speed-ups (SMAWK-free cases)
//	  • network calculus (min-plus algebra of arrival/service curves)
//
// ✨ Key features:
//   - exact for every Scalar (integers and floats)
//   - truncated output: only the first resultSize slots are computed
//   - optional witness index: I[k] is the A-index of a minimizing pair
//   - ties resolve to the smallest A-index
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tropical/naive"
//
//	c, err := naive.Convolve(a, b, len(a)+len(b)-1)
//	c, idx, err := naive.ConvolveIndex(a, b, 3)
//	err := naive.ConvolveInto(dst, nil, a, b) // no index requested
//
// Performance:
//
//   - Time:   O(n·m), or O(n·resultSize) when resultSize < m
//   - Memory: O(resultSize) for the filled bitmap
//
// This package is the ground truth for the frontier package and the fast
// path of the minconv dispatcher on small outputs.
package naive
