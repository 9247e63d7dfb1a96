// Package hdnode derives BIP32 nodes and renders their addresses.
package hdnode

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrInvalidIndex is returned when a child cannot be derived at the requested index.
	ErrInvalidIndex = errors.New("invalid child index")
	// ErrUnknownAddressType is returned for address version bytes outside the known networks.
	ErrUnknownAddressType = errors.New("unknown address type")
)

const serializedKeyLen = 78

// Node is an immutable BIP32 derivation point. Path holds the child indices from the master node.
type Node struct {
	Version     uint32
	Depth       uint8
	Fingerprint uint32
	ChildNum    uint32
	ChainCode   []byte
	PublicKey   []byte
	PrivateKey  []byte
	Path        []uint32
}

type nodeJSON struct {
	Version     uint32   `json:"version"`
	Depth       uint8    `json:"depth"`
	Fingerprint uint32   `json:"fingerprint"`
	ChildNum    uint32   `json:"child_num"`
	ChainCode   string   `json:"chain_code"`
	PublicKey   string   `json:"public_key"`
	PrivateKey  string   `json:"private_key,omitempty"`
	Path        []uint32 `json:"path"`
}

// MarshalJSON encodes the node in the persisted device layout.
func (n Node) MarshalJSON() ([]byte, error) {
	path := n.Path
	if path == nil {
		path = []uint32{}
	}
	return json.Marshal(nodeJSON{
		Version:     n.Version,
		Depth:       n.Depth,
		Fingerprint: n.Fingerprint,
		ChildNum:    n.ChildNum,
		ChainCode:   hex.EncodeToString(n.ChainCode),
		PublicKey:   hex.EncodeToString(n.PublicKey),
		PrivateKey:  hex.EncodeToString(n.PrivateKey),
		Path:        path,
	})
}

// UnmarshalJSON decodes the persisted device layout.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	chainCode, err := hex.DecodeString(raw.ChainCode)
	if err != nil {
		return fmt.Errorf("decode chain code: %w", err)
	}
	pub, err := hex.DecodeString(raw.PublicKey)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	var priv []byte
	if raw.PrivateKey != "" {
		if priv, err = hex.DecodeString(raw.PrivateKey); err != nil {
			return fmt.Errorf("decode private key: %w", err)
		}
	}
	*n = Node{
		Version:     raw.Version,
		Depth:       raw.Depth,
		Fingerprint: raw.Fingerprint,
		ChildNum:    raw.ChildNum,
		ChainCode:   chainCode,
		PublicKey:   pub,
		PrivateKey:  priv,
		Path:        append([]uint32{}, raw.Path...),
	}
	return nil
}

// IsPrivate reports whether the node carries private key material.
func (n *Node) IsPrivate() bool {
	return len(n.PrivateKey) > 0
}

// Equal compares nodes by path and key material.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.XPub() == o.XPub() && FormatPath(n.Path) == FormatPath(o.Path)
}

// Neuter returns a copy of the node without private key material.
func (n *Node) Neuter() *Node {
	c := n.clone()
	c.PrivateKey = nil
	return c
}

// WithPath returns a copy of the node rooted at the given path.
func (n *Node) WithPath(path []uint32) *Node {
	c := n.clone()
	c.Path = append([]uint32{}, path...)
	return c
}

func (n *Node) clone() *Node {
	return &Node{
		Version:     n.Version,
		Depth:       n.Depth,
		Fingerprint: n.Fingerprint,
		ChildNum:    n.ChildNum,
		ChainCode:   append([]byte(nil), n.ChainCode...),
		PublicKey:   append([]byte(nil), n.PublicKey...),
		PrivateKey:  append([]byte(nil), n.PrivateKey...),
		Path:        append([]uint32{}, n.Path...),
	}
}

// Derive deterministically derives the child of parent at index.
func Derive(parent *Node, index uint32) (*Node, error) {
	if parent == nil {
		return nil, errors.New("parent node is required")
	}
	key, err := parent.extendedKey()
	if err != nil {
		return nil, err
	}
	child, err := key.Derive(index)
	if err != nil {
		if errors.Is(err, hdkeychain.ErrDeriveHardFromPublic) ||
			errors.Is(err, hdkeychain.ErrInvalidChild) ||
			errors.Is(err, hdkeychain.ErrDeriveBeyondMaxDepth) {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidIndex, index, err)
		}
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	node, err := fromExtendedKey(child)
	if err != nil {
		return nil, err
	}
	node.Path = make([]uint32, 0, len(parent.Path)+1)
	node.Path = append(node.Path, parent.Path...)
	node.Path = append(node.Path, index)
	return node, nil
}

// DerivePath derives along a sequence of indices.
func DerivePath(parent *Node, indices ...uint32) (*Node, error) {
	current := parent
	for _, idx := range indices {
		child, err := Derive(current, idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// NewMaster creates a private master node from a BIP39 seed.
func NewMaster(seed []byte, params *chaincfg.Params) (*Node, error) {
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	node, err := fromExtendedKey(master)
	if err != nil {
		return nil, err
	}
	node.Path = []uint32{}
	return node, nil
}

// XPub renders the public BIP32 serialization used to address the node at the ledger.
func (n *Node) XPub() string {
	buf := make([]byte, 0, serializedKeyLen+4)
	buf = n.appendHeader(buf, n.Version)
	buf = append(buf, n.PublicKey...)
	return encodeChecked(buf)
}

// ParseXPub decodes a public BIP32 serialization.
func ParseXPub(xpub string) (*Node, error) {
	key, err := hdkeychain.NewKeyFromString(xpub)
	if err != nil {
		return nil, fmt.Errorf("parse xpub: %w", err)
	}
	if key.IsPrivate() {
		return nil, errors.New("parse xpub: contains private key")
	}
	node, err := fromExtendedKey(key)
	if err != nil {
		return nil, err
	}
	node.Path = []uint32{}
	return node, nil
}

// ParseXPrv decodes a private BIP32 serialization. The checksum is verified.
func ParseXPrv(xprv string) (*Node, error) {
	key, err := hdkeychain.NewKeyFromString(xprv)
	if err != nil {
		return nil, fmt.Errorf("parse xprv: %w", err)
	}
	if !key.IsPrivate() {
		return nil, errors.New("parse xprv: contains invalid private key")
	}
	node, err := fromExtendedKey(key)
	if err != nil {
		return nil, err
	}
	node.Path = []uint32{}
	return node, nil
}

func (n *Node) appendHeader(buf []byte, version uint32) []byte {
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], version)
	buf = append(buf, u32[:]...)
	buf = append(buf, n.Depth)
	binary.BigEndian.PutUint32(u32[:], n.Fingerprint)
	buf = append(buf, u32[:]...)
	binary.BigEndian.PutUint32(u32[:], n.ChildNum)
	buf = append(buf, u32[:]...)
	return append(buf, n.ChainCode...)
}

func (n *Node) extendedKey() (*hdkeychain.ExtendedKey, error) {
	if len(n.ChainCode) != 32 {
		return nil, fmt.Errorf("node chain code has %d bytes, want 32", len(n.ChainCode))
	}
	buf := make([]byte, 0, serializedKeyLen+4)
	if n.IsPrivate() {
		version, err := privateVersion(n.Version)
		if err != nil {
			return nil, err
		}
		buf = n.appendHeader(buf, version)
		buf = append(buf, 0x00)
		buf = append(buf, n.PrivateKey...)
	} else {
		buf = n.appendHeader(buf, n.Version)
		buf = append(buf, n.PublicKey...)
	}
	key, err := hdkeychain.NewKeyFromString(encodeChecked(buf))
	if err != nil {
		return nil, fmt.Errorf("load extended key: %w", err)
	}
	return key, nil
}

func fromExtendedKey(key *hdkeychain.ExtendedKey) (*Node, error) {
	raw := base58.Decode(key.String())
	if len(raw) != serializedKeyLen+4 {
		return nil, fmt.Errorf("extended key has %d bytes, want %d", len(raw), serializedKeyLen+4)
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("extended key public key: %w", err)
	}
	node := &Node{
		Version:     binary.BigEndian.Uint32(raw[0:4]),
		Depth:       raw[4],
		Fingerprint: binary.BigEndian.Uint32(raw[5:9]),
		ChildNum:    binary.BigEndian.Uint32(raw[9:13]),
		ChainCode:   append([]byte(nil), raw[13:45]...),
		PublicKey:   pub.SerializeCompressed(),
	}
	if key.IsPrivate() {
		node.PrivateKey = append([]byte(nil), raw[46:78]...)
		pubID, err := chaincfg.HDPrivateKeyToPublicKeyID(raw[0:4])
		if err != nil {
			return nil, fmt.Errorf("extended key version: %w", err)
		}
		node.Version = binary.BigEndian.Uint32(pubID)
	}
	return node, nil
}

func encodeChecked(payload []byte) string {
	sum := chainhash.DoubleHashB(payload)
	return base58.Encode(append(payload, sum[:4]...))
}

// FormatPath renders a path in m/0'/1 notation.
func FormatPath(path []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, idx := range path {
		sb.WriteByte('/')
		if idx >= hdkeychain.HardenedKeyStart {
			sb.WriteString(strconv.FormatUint(uint64(idx-hdkeychain.HardenedKeyStart), 10))
			sb.WriteByte('\'')
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
	return sb.String()
}
