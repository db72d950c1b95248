// Package papertrade implements a simulated crypto trading session: a
// portfolio ledger with cost-basis accounting, a price feed (random walk or
// live quotes), a tiered fee model, bounded history logs, and a key-value
// persistence gateway that ties a session together across runs.
//
// All amounts are USD and exact: the package never does float arithmetic on
// fiscal state, it uses decimal-backed Money and Quantity values.
package papertrade
