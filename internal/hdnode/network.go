package hdnode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

var knownParams = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
}

// ParamsForNetwork resolves chain params by network name.
func ParamsForNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin", "prod":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// ParamsForAddressType resolves the first known network using the P2PKH version byte.
func ParamsForAddressType(addressType byte) (*chaincfg.Params, error) {
	for _, params := range knownParams {
		if params.PubKeyHashAddrID == addressType {
			return params, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAddressType, addressType)
}

// AddressOf renders the P2PKH address of node for the given version byte.
func AddressOf(node *Node, addressType byte) (string, error) {
	if _, err := ParamsForAddressType(addressType); err != nil {
		return "", err
	}
	if len(node.PublicKey) == 0 {
		return "", fmt.Errorf("node %s has no public key", FormatPath(node.Path))
	}
	return base58.CheckEncode(btcutil.Hash160(node.PublicKey), addressType), nil
}

// PubKeyHash returns Hash160 of the node public key.
func (n *Node) PubKeyHash() []byte {
	return btcutil.Hash160(n.PublicKey)
}

// PayToAddrScript builds the P2PKH output script paying node.
func PayToAddrScript(node *Node, addressType byte) ([]byte, error) {
	params, err := ParamsForAddressType(addressType)
	if err != nil {
		return nil, err
	}
	addr, err := btcutil.NewAddressPubKeyHash(node.PubKeyHash(), params)
	if err != nil {
		return nil, fmt.Errorf("build address: %w", err)
	}
	return txscript.PayToAddrScript(addr)
}

func privateVersion(publicVersion uint32) (uint32, error) {
	for _, params := range knownParams {
		if binary.BigEndian.Uint32(params.HDPublicKeyID[:]) == publicVersion {
			return binary.BigEndian.Uint32(params.HDPrivateKeyID[:]), nil
		}
	}
	return 0, fmt.Errorf("no private version registered for %08x", publicVersion)
}
