package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-crypto-utils/codec"
	"github.com/hasbyte1/go-crypto-utils/result"
)

// phcString is the split form of a PHC string:
//
//	$<id>[$v=<version>]$<k=v,...>$<salt>$<hash>
type phcString struct {
	id      string
	version string // raw "v=19" segment; empty when absent
	params  map[string]uint64
	salt    []byte
	hash    []byte
}

// phcB64 is the standard alphabet without padding, as used by the Argon2
// reference implementation and passlib.
var phcB64 = base64.RawStdEncoding

func encodePHC(id, version, params string, salt, hash []byte) string {
	var b strings.Builder
	b.WriteString("$" + id)
	if version != "" {
		b.WriteString("$" + version)
	}
	b.WriteString("$" + params)
	b.WriteString("$" + phcB64.EncodeToString(salt))
	b.WriteString("$" + phcB64.EncodeToString(hash))
	return b.String()
}

// splitPHC parses the segments of a PHC string.  withVersion selects whether
// a "v=" segment is expected between the id and the parameters.
func splitPHC(encoded string, withVersion bool) (*phcString, error) {
	want := 5
	if withVersion {
		want = 6
	}
	// The leading "$" produces an empty first element.
	parts := strings.Split(encoded, "$")
	if len(parts) != want || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected %d-segment PHC string, got %d segments",
			ErrInvalidHash, want-1, len(parts)-1)
	}

	p := &phcString{id: parts[1]}
	rest := parts[2:]
	if withVersion {
		p.version, rest = rest[0], rest[1:]
	}

	var err error
	if p.params, err = parseParams(rest[0]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if p.salt, err = phcB64.DecodeString(rest[1]); err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidHash, err)
	}
	if p.hash, err = phcB64.DecodeString(rest[2]); err != nil {
		return nil, fmt.Errorf("%w: invalid hash base64: %v", ErrInvalidHash, err)
	}
	if len(p.hash) == 0 {
		return nil, fmt.Errorf("%w: empty hash segment", ErrInvalidHash)
	}
	return p, nil
}

// param returns the named parameter, rejecting values above limit.
func (p *phcString) param(name string, limit uint64) (uint64, error) {
	v, ok := p.params[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q parameter", ErrInvalidHash, name)
	}
	if v > limit {
		return 0, fmt.Errorf("%w: parameter %s=%d out of range", ErrInvalidHash, name, v)
	}
	return v, nil
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 64)
}

// parseParams splits "m=65536,t=3,p=2" into a map.
func parseParams(s string) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		out[kv[:eq]] = v
	}
	return out, nil
}

// randomSalt returns n cryptographically random bytes.  An unreadable
// entropy source surfaces as a PasswordHashing failure.
func randomSalt(n int) ([]byte, error) {
	return result.Try(result.PasswordHashing, func() ([]byte, error) {
		return codec.RandomBytes(n), nil
	}).Unwrap()
}
