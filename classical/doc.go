// Package classical implements one-tier uncertain numbers (n ± u) and the
// reference arithmetic used to judge the two-tier algebra in package un.
//
// What
//
//   - Number{N, U}: a nominal value and a nonnegative symmetric radius.
//   - Add / Mul: classical propagation over symmetric intervals.
//   - IntervalWidthMul: exact width of the interval product, from its four corners.
//   - HullRadiusMul: smallest radius centred on nx·ny that still encloses
//     the interval product.
//
// Why
//
//	The oracle is deliberately independent of the tiered algebra: it knows
//	nothing about actual/measured tiers and is never called by package un.
//	Property checks compare projected results against it.
//
// Exactness
//
//	For symmetric bounded intervals Mul's radius |nx|·uy + |ny|·ux + ux·uy is
//	exactly the hull radius around the product of the nominals, so Mul and
//	HullRadiusMul agree up to rounding. The interval width may be smaller
//	than 2·Mul(x,y).U because the product interval is not centred on nx·ny.
//
// Complexity: every function is O(1) time and allocation-free.
package classical
