package derivation

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Path is the internal representation of a BIP44 account derivation path.
// All five components are hardened; the stored values are the component
// indexes without the hardened offset.
type Path struct {
	Purpose      uint32
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

const numComponents = 5

var componentNames = [numComponents]string{
	"purpose", "coinType", "account", "change", "addressIndex",
}

// UpdateOpts selects which components of an existing path are replaced by
// Update. A nil field leaves the component untouched.
type UpdateOpts struct {
	Account      *uint32
	AddressIndex *uint32
}

// Parse converts a derivation path string to the internal representation.
// The path must have exactly 6 slash-separated segments: the root marker
// followed by five hardened non-negative integers.
func Parse(strPath string) (Path, error) {
	if strPath == "" {
		return Path{}, ErrNullDerivationPath
	}

	elems := strings.Split(strPath, "/")
	if len(elems) != numComponents+1 {
		return Path{}, ErrMalformedDerivationPath
	}
	if strings.TrimSpace(elems[0]) != "m" {
		return Path{}, ErrMissingRootMarker
	}

	var values [numComponents]uint32
	for i, elem := range elems[1:] {
		elem = strings.TrimSpace(elem)
		if !strings.HasSuffix(elem, "'") {
			return Path{}, &PathError{Component: componentNames[i], Err: ErrComponentNotHardened}
		}
		elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))

		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return Path{}, &PathError{Component: componentNames[i], Err: ErrInvalidComponent}
		}

		max := int64(hdkeychain.HardenedKeyStart - 1)
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(max)) > 0 {
			return Path{}, &PathError{Component: componentNames[i], Err: ErrComponentOutOfRange}
		}
		values[i] = uint32(bigval.Uint64())
	}

	return Path{
		Purpose:      values[0],
		CoinType:     values[1],
		Account:      values[2],
		Change:       values[3],
		AddressIndex: values[4],
	}, nil
}

// String converts a path to its canonical representation. The round-trip
// law Parse(p).String() == p holds for every valid canonical path.
func (p Path) String() string {
	return fmt.Sprintf(
		"m/%d'/%d'/%d'/%d'/%d'",
		p.Purpose, p.CoinType, p.Account, p.Change, p.AddressIndex,
	)
}

// Validate checks that every component fits in the hardened index range.
func (p Path) Validate() error {
	for i, v := range p.components() {
		if v >= hdkeychain.HardenedKeyStart {
			return &PathError{Component: componentNames[i], Err: ErrComponentOutOfRange}
		}
	}
	return nil
}

// Build validates the path and returns its canonical string form.
func Build(p Path) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p.String(), nil
}

// Update parses the given path, replaces only the requested components and
// rebuilds the canonical string. The input string is left untouched.
func Update(strPath string, opts UpdateOpts) (string, error) {
	path, err := Parse(strPath)
	if err != nil {
		return "", err
	}

	if opts.Account != nil {
		path.Account = *opts.Account
	}
	if opts.AddressIndex != nil {
		path.AddressIndex = *opts.AddressIndex
	}

	return Build(path)
}

func (p Path) components() [numComponents]uint32 {
	return [numComponents]uint32{p.Purpose, p.CoinType, p.Account, p.Change, p.AddressIndex}
}
