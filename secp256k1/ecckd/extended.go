package ecckd

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"github.com/ModChain/ecmath/base58"
	"github.com/ModChain/ecmath/digest"
	"github.com/ModChain/ecmath/secp256k1"
	"github.com/cockroachdb/errors"
)

const (
	// HardenedBit is set on the index of hardened children.
	HardenedBit = 0x80000000

	// serializedKeyLen is the length of a serialized extended key without
	// its checksum.
	serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

	minSeedLen = 16
	maxSeedLen = 64
)

type ExtendedKey struct {
	Version     KeyVersion
	Depth       uint8
	Fingerprint [4]byte
	ChildNumber uint32 // ser32(i) for i in xi = xpar/i, with xi the key being serialized. (0x00000000 if master key)
	KeyData     []byte // 32 bytes ser256(k) for private keys, 33 bytes serP(K) for public keys
	ChainCode   []byte // 32 bytes, the chain code
}

// FromBitcoinSeed returns a master node for a bitcoin wallet
func FromBitcoinSeed(seed []byte) (*ExtendedKey, error) {
	return FromSeed(seed, []byte("Bitcoin seed"))
}

// FromSeed returns a mainnet master node for seed, keyed by masterSecret.
func FromSeed(seed, masterSecret []byte) (*ExtendedKey, error) {
	if len(seed) < minSeedLen || len(seed) > maxSeedLen {
		return nil, errors.Wrapf(ErrInvalidSeed, "seed length %d not in [%d, %d]",
			len(seed), minSeedLen, maxSeedLen)
	}
	key, chainCode, err := hmacCKD(seed, masterSecret)
	if err != nil {
		return nil, err
	}

	res := &ExtendedKey{
		Version:     BitcoinMainnetPrivate,
		Depth:       0,
		Fingerprint: [4]byte{0, 0, 0, 0},
		ChildNumber: 0,
		KeyData:     key,
		ChainCode:   chainCode,
	}
	return res, nil
}

// FromPrivateKey returns a mainnet master node holding key.
func FromPrivateKey(key *secp256k1.PrivateKey, chainCode []byte) (*ExtendedKey, error) {
	if len(chainCode) != 32 {
		return nil, ErrInvalidChainCode
	}
	return &ExtendedKey{
		Version:   BitcoinMainnetPrivate,
		KeyData:   key.Serialize(),
		ChainCode: bytes.Clone(chainCode),
	}, nil
}

// FromPublicKey returns a mainnet public master node holding pub.
func FromPublicKey(pub secp256k1.Point, chainCode []byte) (*ExtendedKey, error) {
	if len(chainCode) != 32 {
		return nil, ErrInvalidChainCode
	}
	if pub.IsInfinity() {
		return nil, ErrInvalidKey
	}
	return &ExtendedKey{
		Version:   BitcoinMainnetPublic,
		KeyData:   pub.SerializeCompressed(),
		ChainCode: bytes.Clone(chainCode),
	}, nil
}

// FromString parses the Base58 form produced by String.
func FromString(str string) (*ExtendedKey, error) {
	bin, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}

	e := &ExtendedKey{}
	return e, e.UnmarshalBinary(bin)
}

func (k *ExtendedKey) IsPrivate() bool {
	return k.Version.IsPrivate()
}

// Child derives extended key at a given index i.
// If parent is private, then derived key is also private. If parent is public, then derived is public.
//
// If i >= HardenedBit, then hardened key is generated.
// You can only generate hardened keys from private parent keys.
// If you try generating hardened key form public parent key, ErrDerivingHardenedFromPublic is returned.
//
// There are four CKD (child key derivation) scenarios:
// 1) Private extended key -> Hardened child private extended key
// 2) Private extended key -> Non-hardened child private extended key
// 3) Public extended key -> Non-hardened child public extended key
// 4) Public extended key -> Hardened child public extended key (INVALID!)
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	child, _, err := k.child(i)
	return child, err
}

// child derives the child at index i and also returns parse256(IL), the
// scalar added to the parent key.
func (k *ExtendedKey) child(i uint32) (*ExtendedKey, *big.Int, error) {
	if k.Depth == 0xff {
		return nil, nil, ErrMaxDepthExceeded
	}

	// A hardened child may not be created from a public extended key (Case #4).
	isChildHardened := i&HardenedBit == HardenedBit
	if !k.IsPrivate() && isChildHardened {
		return nil, nil, ErrDerivingHardenedFromPublic
	}

	keyLen := 33
	seed := make([]byte, keyLen+4)
	if isChildHardened {
		// Case #1: 0x00 || ser256(parentKey) || ser32(i)
		copy(seed[1:], k.KeyData)
	} else {
		// Case #2 and #3: serP(parentPubKey) || ser32(i)
		copy(seed, k.pubKeyBytes())
	}
	binary.BigEndian.PutUint32(seed[keyLen:], i)

	secretKey, chainCode, err := hmacCKD(seed, k.ChainCode)
	if err != nil {
		return nil, nil, err
	}
	il := parse256(secretKey)

	child := &ExtendedKey{
		ChainCode:   chainCode,
		Depth:       k.Depth + 1,
		ChildNumber: i,
	}
	// The fingerprint for the derived child is the first 4 bytes of the
	// parent's public key hash160.
	copy(child.Fingerprint[:], digest.Hash160(k.pubKeyBytes()))

	if k.IsPrivate() {
		// Case #1 or #2: childKey = parse256(IL) + parentKey
		childKey := addScalars(il, parse256(k.KeyData))
		if childKey.Sign() == 0 {
			return nil, nil, ErrInvalidKey
		}

		// KeyData stays 32 bytes even when the value is shorter, otherwise
		// hardened derivation from this child would shift the key inside
		// its 0x00 || ser256(k) slot.
		child.KeyData = ser256(childKey)
		child.Version = k.Version
	} else {
		// Case #3: childKey = serP(point(parse256(IL)) + parentKey)
		parent, err := secp256k1.ParsePubKey(k.KeyData)
		if err != nil {
			return nil, nil, err
		}
		childKey := secp256k1.ScalarBaseMult(il).Add(parent)
		if childKey.IsInfinity() {
			return nil, nil, ErrInvalidKey
		}
		child.KeyData = childKey.SerializeCompressed()
		child.Version = k.Version.ToPublic()
	}
	return child, il, nil
}

// Derive returns a derived child key at a given path
func (k *ExtendedKey) Derive(path []uint32) (*ExtendedKey, error) {
	_, extKey, err := k.DeriveWithIL(path)
	return extKey, err
}

// DeriveWithIL derives the key at path and also returns the sum modulo N of
// every parse256(IL) added along the way.  For a public parent P the result
// is P + il*G, which lets the holder of the parent secret compute the child
// secret without the chain.
func (k *ExtendedKey) DeriveWithIL(path []uint32) (*big.Int, *ExtendedKey, error) {
	total := new(big.Int)
	extKey := k
	for _, i := range path {
		next, il, err := extKey.child(i)
		if err != nil {
			return nil, nil, errors.Mark(errors.Wrapf(err, "child %d", i), ErrDerivingChild)
		}
		total = addScalars(total, il)
		extKey = next
	}

	return total, extKey, nil
}

// Public returns a new extended public key from a give extended private key.
// If the input extended key is already public, it will be returned unaltered.
func (k *ExtendedKey) Public() (*ExtendedKey, error) {
	// Already an extended public key.
	if !k.IsPrivate() {
		return k, nil
	}

	// Convert it to an extended public key.  The key for the new extended
	// key will simply be the pubkey of the current extended private key.
	return &ExtendedKey{
		Version:     k.Version.ToPublic(),
		KeyData:     k.pubKeyBytes(),
		ChainCode:   k.ChainCode,
		Fingerprint: k.Fingerprint,
		Depth:       k.Depth,
		ChildNumber: k.ChildNumber,
	}, nil
}

// MarshalBinary encodes the key in standard format that can be base58 encoded for humans
func (k *ExtendedKey) MarshalBinary() ([]byte, error) {
	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.ChildNumber)

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)
	serializedBytes := make([]byte, 0, serializedKeyLen+base58.ChecksumLen)
	serializedBytes = append(serializedBytes, k.Version[:]...)
	serializedBytes = append(serializedBytes, k.Depth)
	serializedBytes = append(serializedBytes, k.Fingerprint[:]...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.ChainCode...)
	if k.IsPrivate() {
		serializedBytes = append(serializedBytes, 0x00)
		serializedBytes = append(serializedBytes, ser256(parse256(k.KeyData))...)
	} else {
		serializedBytes = append(serializedBytes, k.pubKeyBytes()...)
	}

	serializedBytes = append(serializedBytes, base58.Checksum(serializedBytes)...)
	return serializedBytes, nil
}

func (k *ExtendedKey) String() string {
	bin, _ := k.MarshalBinary()
	return base58.Encode(bin)
}

// pubKeyBytes returns bytes for the serialized compressed public key associated
// with this extended key.
//
// When the extended key is already a public key, the key is simply returned as
// is since it's already in the correct form.
func (k *ExtendedKey) pubKeyBytes() []byte {
	// Just return the key if it's already an extended public key.
	if !k.IsPrivate() {
		return k.KeyData
	}

	return secp256k1.ScalarBaseMult(parse256(k.KeyData)).SerializeCompressed()
}

// PrivateKey returns the key data as a secp256k1 private key.  It fails for
// public extended keys.
func (k *ExtendedKey) PrivateKey() (*secp256k1.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, errors.Wrap(ErrInvalidKey, "extended key is public")
	}
	return secp256k1.PrivKeyFromBytes(k.KeyData)
}

// PublicKey returns the public point of the extended key.
func (k *ExtendedKey) PublicKey() (secp256k1.Point, error) {
	return secp256k1.ParsePubKey(k.pubKeyBytes())
}

func (k *ExtendedKey) UnmarshalBinary(data []byte) error {
	if len(data) != serializedKeyLen+base58.ChecksumLen {
		return ErrInvalidKeyLen
	}

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)

	// Split the payload and checksum up and ensure the checksum matches.
	payload := data[:serializedKeyLen]
	checkSum := data[serializedKeyLen:]
	if !bytes.Equal(checkSum, base58.Checksum(payload)) {
		return ErrBadChecksum
	}

	// Deserialize each of the payload fields.
	var version KeyVersion
	copy(version[:], payload[:4])
	if !version.IsKnown() {
		return errors.Wrapf(ErrUnknownVersion, "%x", version[:])
	}
	depth := payload[4]
	var fingerprint [4]byte
	copy(fingerprint[:], payload[5:9])
	childNumber := binary.BigEndian.Uint32(payload[9:13])
	chainCode := bytes.Clone(payload[13:45])
	keyData := bytes.Clone(payload[45:78])

	// The key data is a private key if it starts with 0x00.  Serialized
	// compressed pubkeys either start with 0x02 or 0x03.
	isPrivate := keyData[0] == 0x00
	if isPrivate != version.IsPrivate() {
		return ErrInvalidPrivateFlag
	}

	if isPrivate {
		// Ensure the private key is valid.  It must be within the range
		// of the order of the secp256k1 curve and not be 0.
		keyData = keyData[1:]
		keyNum := parse256(keyData)
		if keyNum.Cmp(secp256k1.Order()) >= 0 || keyNum.Sign() == 0 {
			return ErrInvalidKey
		}
	} else {
		// Ensure the public key parses correctly and is actually on the
		// secp256k1 curve.
		_, err := secp256k1.ParsePubKey(keyData)
		if err != nil {
			return err
		}
	}

	k.Version = version
	k.KeyData = keyData
	k.ChainCode = chainCode
	k.Fingerprint = fingerprint
	k.Depth = depth
	k.ChildNumber = childNumber
	return nil
}
