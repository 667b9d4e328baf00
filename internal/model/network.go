// Package model defines shared domain values for the bdsmcoin node tooling.
package model

import (
	"fmt"
	"strings"
)

// Network identifies which chain a component operates on.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// ParseNetwork maps a user supplied name onto a known network.
func ParseNetwork(value string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "mainnet", "main":
		return Mainnet, nil
	case "testnet", "test":
		return Testnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", value)
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (n *Network) UnmarshalFlag(value string) error {
	parsed, err := ParseNetwork(value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Network) String() string {
	return string(n)
}
