// Package ss58 implements the SS58 address format used by substrate-based
// networks: the same 32-byte public key encodes to a different address for
// every network prefix.
package ss58

import (
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	pubKeyLen     = 32
	checksumLen   = 2
	maxPrefix     = 16383
	twoBytePrefix = 64
)

var (
	// ErrInvalidPubKeyLength ...
	ErrInvalidPubKeyLength = errors.New("public key must be 32 bytes")
	// ErrInvalidNetworkPrefix ...
	ErrInvalidNetworkPrefix = errors.New("network prefix out of range")
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address is not valid base58")
	// ErrInvalidChecksum ...
	ErrInvalidChecksum = errors.New("address checksum mismatch")
)

var ss58Pre = []byte("SS58PRE")

// Encode returns the SS58 address of pubKey for the given network prefix.
func Encode(pubKey []byte, prefix uint16) (string, error) {
	if len(pubKey) != pubKeyLen {
		return "", ErrInvalidPubKeyLength
	}
	if prefix > maxPrefix {
		return "", ErrInvalidNetworkPrefix
	}

	var payload []byte
	if prefix < twoBytePrefix {
		payload = append(payload, byte(prefix))
	} else {
		// Two-byte identifier layout per the SS58 registry.
		first := byte(((prefix & 0x00fc) >> 2) | 0x40)
		second := byte((prefix >> 8) | ((prefix & 0x0003) << 6))
		payload = append(payload, first, second)
	}
	payload = append(payload, pubKey...)

	sum := checksum(payload)
	payload = append(payload, sum[:checksumLen]...)

	return base58.Encode(payload), nil
}

// Decode recovers the raw public key and network prefix from an SS58
// address, verifying its checksum.
func Decode(address string) ([]byte, uint16, error) {
	raw := base58.Decode(address)
	if len(raw) < 1+pubKeyLen+checksumLen {
		return nil, 0, ErrInvalidAddress
	}

	var prefix uint16
	prefixLen := 1
	switch {
	case raw[0] < twoBytePrefix:
		prefix = uint16(raw[0])
	case raw[0] < 128:
		prefixLen = 2
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0x3f
		prefix = uint16(lower) | uint16(upper)<<8
	default:
		return nil, 0, ErrInvalidAddress
	}

	if len(raw) != prefixLen+pubKeyLen+checksumLen {
		return nil, 0, ErrInvalidAddress
	}

	body := raw[:len(raw)-checksumLen]
	sum := checksum(body)
	if !bytes.Equal(sum[:checksumLen], raw[len(raw)-checksumLen:]) {
		return nil, 0, ErrInvalidChecksum
	}

	pubKey := make([]byte, pubKeyLen)
	copy(pubKey, raw[prefixLen:prefixLen+pubKeyLen])
	return pubKey, prefix, nil
}

func checksum(payload []byte) [64]byte {
	return blake2b.Sum512(append(append([]byte{}, ss58Pre...), payload...))
}
