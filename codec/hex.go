package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/hasbyte1/go-crypto-utils/result"
)

var (
	bytesToHex    = result.Wrap1(result.Encoding, encodeHex)
	hexToBytes    = result.Wrap1(result.Encoding, hex.DecodeString)
	bytesToBase64 = result.Wrap1(result.Encoding, encodeBase64)
	base64ToBytes = result.Wrap1(result.Encoding, decodeBase64)
)

// BytesToHex returns the lowercase hex encoding of b.
func BytesToHex(b []byte) result.Result[string] { return bytesToHex(b) }

// HexToBytes decodes a hex string.  Upper- and lowercase digits are accepted.
// It fails when s has odd length or contains a non-hex character.
func HexToBytes(s string) result.Result[[]byte] { return hexToBytes(s) }

// BytesToBase64 returns the standard, padded base64 encoding of b.
func BytesToBase64(b []byte) result.Result[string] { return bytesToBase64(b) }

// Base64ToBytes decodes s using the standard alphabet, falling back to the
// URL-safe alphabet before giving up.
func Base64ToBytes(s string) result.Result[[]byte] { return base64ToBytes(s) }

func encodeHex(b []byte) (string, error) {
	return hex.EncodeToString(b), nil
}

func encodeBase64(b []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}

func decodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return b, nil
	}
	b, err = base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid base64: %w", err)
	}
	return b, nil
}
