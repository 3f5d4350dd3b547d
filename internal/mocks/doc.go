// Package mocks provides hand-rolled test doubles for the store and service
// interfaces. Each mock carries optional function fields to override
// behavior per test, with an in-memory default implementation behind them.
package mocks
