// Package lvlroots is a compact toolbox for scalar root-finding:
// point it at any f(x) and it hunts down the x where f(x) = 0.
//
// 🚀 What is lvlroots?
//
//	A small, dependency-light numeric library that brings together:
//		• Bisection: interval halving — slow, but unconditionally robust
//		• Regula Falsi: false position — bracketed, faster on smooth f
//		• Newton–Raphson: quadratic convergence with a caller-supplied derivative
//		• Secant: Newton-like speed, no derivative required
//
// ✨ Why choose lvlroots?
//
//   - Beginner-friendly – four free functions, one shared options type
//   - Rock-solid guarantees – explicit sentinel errors for every failure mode
//   - Pure Go – no cgo, stateless, safe for concurrent callers
//   - Tunable – tolerance & iteration cap are options, not magic numbers
//
// Everything lives in a single subpackage:
//
//	roots/ — Bisection, RegulaFalsi, NewtonRaphson, Secant + Options
//
// Quick sketch:
//
//	    f(x)
//	     │      ╱
//	   ──┼────●╱────── x        the solvers close in on ● where f crosses zero
//	     │   ╱
//	     │  ╱
//
// Dive into roots/doc.go for the method-by-method guide, error taxonomy
// and complexity notes.
//
//	go get github.com/katalvlaran/lvlroots/roots
package lvlroots
