// Package wallet simulates the browser wallet/account boundary. There is no
// real chain integration; the provider hands out configured demo accounts and
// a configured chain id, and notifies subscribers when the chain "changes".
package wallet

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
)

// Known network names by chain id; anything else is unsupported.
var networks = map[string]string{
	"0x1":      "Ethereum Mainnet",
	"0xaa36a7": "Sepolia Testnet",
}

// NetworkName maps a chain id to its display name.
func NetworkName(chainID string) string {
	if name, ok := networks[strings.ToLower(chainID)]; ok {
		return name
	}
	return "Unsupported Network"
}

// Provider is the wallet-facing boundary: account discovery, network
// identification and network-change subscription.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (string, error)
	OnChainChanged(fn func(chainID string))
}

var ErrNoAccounts = errors.New("wallet has no accounts")

// Simulated is an in-process Provider used for the demo.
type Simulated struct {
	mu       sync.Mutex
	accounts []string
	chainID  string
	subs     []func(string)
}

// NewSimulated builds a provider from WALLET_ACCOUNTS (comma-separated) and
// WALLET_CHAIN_ID, defaulting to the Sepolia test chain with no accounts.
func NewSimulated() *Simulated {
	var accounts []string
	if v := os.Getenv("WALLET_ACCOUNTS"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				accounts = append(accounts, a)
			}
		}
	}
	chainID := os.Getenv("WALLET_CHAIN_ID")
	if chainID == "" {
		chainID = "0xaa36a7"
	}
	return &Simulated{accounts: accounts, chainID: chainID}
}

// NewSimulatedWith builds a provider with explicit accounts and chain id.
func NewSimulatedWith(accounts []string, chainID string) *Simulated {
	return &Simulated{accounts: append([]string(nil), accounts...), chainID: chainID}
}

func (s *Simulated) RequestAccounts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return append([]string(nil), s.accounts...), nil
}

func (s *Simulated) ChainID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chainID, nil
}

// OnChainChanged registers a callback invoked on every chain switch.
func (s *Simulated) OnChainChanged(fn func(chainID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SwitchChain simulates the user changing networks in the wallet.
func (s *Simulated) SwitchChain(chainID string) {
	s.mu.Lock()
	s.chainID = chainID
	subs := append(([]func(string))(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(chainID)
	}
}
