// Package homecalc provides the calculators behind the `hc` command-line tool:
// long term projections of periodic ETF investments, and mortgage amortization.
//
// The core functionalities include:
//   - Fund Catalog: a read-only set of fund profiles (average return, dividend
//     yield, reference price) keyed by fund code.
//   - Valuation: the market value of holdings and their share of a portfolio.
//   - Projection: a month by month compounding simulation of a contribution
//     stream organized in stages, summarized per year.
//   - Portfolio Projection: one projection per holding, driven by per stage
//     allocation percentages, summed into a blended trajectory.
//   - Amortization: payoff period count, payment schedule, totals and plan
//     comparison for a fixed monthly payment.
//
// Every function in this package is a pure computation over its inputs. It is
// safe to call them concurrently.
package homecalc
