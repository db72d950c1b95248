package papertrade

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Wire shapes of the persisted logs. Scalars (cash, initial deposit,
// initialized flag) are persisted as plain strings, the rest as JSON.

type equityPointDTO struct {
	T int64 `json:"t"` // unix milliseconds
	V Money `json:"v"`
}

type transactionDTO struct {
	T      int64    `json:"t"` // unix milliseconds
	Type   Side     `json:"type"`
	Asset  Asset    `json:"asset"`
	Amount Quantity `json:"amount"`
	Price  Money    `json:"price"`
	USD    Money    `json:"usd"`
}

// Gateway loads and saves session state through a Store. Loads never fail:
// a missing or malformed value falls back to the key's default. Saves are
// best-effort: a failed write is logged and in-memory state carries on,
// durability degraded.
type Gateway struct {
	store Store
}

// NewGateway wraps a store.
func NewGateway(store Store) *Gateway { return &Gateway{store: store} }

// Reset drops all persisted session state.
func (g *Gateway) Reset() error { return g.store.Reset() }

// loadJSON reads and unmarshals one key. It reports false when the key is
// absent or its value does not parse; the caller then uses the default.
func (g *Gateway) loadJSON(key string, v any) bool {
	content, err := g.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("load %q failed (using default): %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(content, v); err != nil {
		log.Printf("malformed value for %q (using default): %v", key, err)
		return false
	}
	return true
}

// saveJSON marshals and writes one key, swallowing errors.
func (g *Gateway) saveJSON(key string, v any) {
	content, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode %q failed (state not persisted): %v", key, err)
		return
	}
	g.put(key, content)
}

func (g *Gateway) put(key string, content []byte) {
	if err := g.store.Put(key, content); err != nil {
		log.Printf("save %q failed (state not persisted): %v", key, err)
	}
}

func (g *Gateway) loadAmount(key string, fallback Money) Money {
	content, err := g.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("load %q failed (using default): %v", key, err)
		}
		return fallback
	}
	d, err := decimal.NewFromString(string(content))
	if err != nil {
		log.Printf("malformed value for %q (using default): %v", key, err)
		return fallback
	}
	return USD(d)
}

func (g *Gateway) saveAmount(key string, m Money) {
	g.put(key, []byte(m.value.String()))
}

// LoadCash returns the persisted cash balance, zero by default.
func (g *Gateway) LoadCash() Money { return g.loadAmount(keyCash, USD(0)) }

// SaveCash persists the cash balance as a decimal string.
func (g *Gateway) SaveCash(m Money) { g.saveAmount(keyCash, m) }

// LoadInitial returns the persisted initial deposit, zero by default.
func (g *Gateway) LoadInitial() Money { return g.loadAmount(keyInitial, USD(0)) }

// SaveInitial persists the initial deposit amount.
func (g *Gateway) SaveInitial(m Money) { g.saveAmount(keyInitial, m) }

// LoadInitialized reports whether a session was started, false by default.
func (g *Gateway) LoadInitialized() bool {
	content, err := g.store.Get(keyInitialized)
	if err != nil {
		return false
	}
	v, err := strconv.ParseBool(string(content))
	if err != nil {
		log.Printf("malformed value for %q (using default): %v", keyInitialized, err)
		return false
	}
	return v
}

// SaveInitialized persists the session-started flag as a boolean string.
func (g *Gateway) SaveInitialized(v bool) {
	g.put(keyInitialized, []byte(strconv.FormatBool(v)))
}

// LoadHoldings returns the persisted holdings merged over a zero-filled
// default: every tracked asset has an entry, unknown assets are dropped.
func (g *Gateway) LoadHoldings() map[Asset]Quantity {
	persisted := make(map[Asset]Quantity)
	g.loadJSON(keyHoldings, &persisted)
	out := make(map[Asset]Quantity, len(AllAssets()))
	for _, a := range AllAssets() {
		out[a] = persisted[a]
	}
	return out
}

// SaveHoldings persists the holdings map.
func (g *Gateway) SaveHoldings(holdings map[Asset]Quantity) {
	g.saveJSON(keyHoldings, holdings)
}

// LoadCostBasis returns the persisted cost basis merged over a zero-filled
// default.
func (g *Gateway) LoadCostBasis() map[Asset]CostBasis {
	persisted := make(map[Asset]CostBasis)
	g.loadJSON(keyCostBasis, &persisted)
	out := make(map[Asset]CostBasis, len(AllAssets()))
	for _, a := range AllAssets() {
		out[a] = persisted[a]
	}
	return out
}

// SaveCostBasis persists the cost-basis map.
func (g *Gateway) SaveCostBasis(basis map[Asset]CostBasis) {
	g.saveJSON(keyCostBasis, basis)
}

// LoadPrices returns the persisted price map merged over the seed values.
func (g *Gateway) LoadPrices() PriceMap {
	persisted := make(map[Asset]Money)
	g.loadJSON(keyPrices, &persisted)
	out := NewSeedPrices()
	for _, a := range AllAssets() {
		if p, ok := persisted[a]; ok && p.IsPositive() {
			out[a] = p
		}
	}
	return out
}

// SavePrices persists the price map.
func (g *Gateway) SavePrices(prices PriceMap) {
	g.saveJSON(keyPrices, map[Asset]Money(prices))
}

// LoadEquity returns the persisted equity log, empty by default.
func (g *Gateway) LoadEquity() []EquityPoint {
	var dtos []equityPointDTO
	g.loadJSON(keyEquity, &dtos)
	out := make([]EquityPoint, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, EquityPoint{Time: time.UnixMilli(d.T), Value: d.V})
	}
	return out
}

// SaveEquity persists the equity log.
func (g *Gateway) SaveEquity(points []EquityPoint) {
	dtos := make([]equityPointDTO, 0, len(points))
	for _, p := range points {
		dtos = append(dtos, equityPointDTO{T: p.Time.UnixMilli(), V: p.Value})
	}
	g.saveJSON(keyEquity, dtos)
}

// LoadTransactions returns the persisted transaction log, empty by default.
func (g *Gateway) LoadTransactions() []Transaction {
	var dtos []transactionDTO
	g.loadJSON(keyTransactions, &dtos)
	out := make([]Transaction, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, Transaction{
			Time:     time.UnixMilli(d.T),
			Side:     d.Type,
			Asset:    d.Asset,
			Quantity: d.Amount,
			Price:    d.Price,
			USD:      d.USD,
		})
	}
	return out
}

// SaveTransactions persists the transaction log.
func (g *Gateway) SaveTransactions(txs []Transaction) {
	dtos := make([]transactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, transactionDTO{
			T:      tx.Time.UnixMilli(),
			Type:   tx.Side,
			Asset:  tx.Asset,
			Amount: tx.Quantity,
			Price:  tx.Price,
			USD:    tx.USD,
		})
	}
	g.saveJSON(keyTransactions, dtos)
}
