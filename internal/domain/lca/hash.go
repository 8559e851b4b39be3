package lca

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"
)

// ContentHash is the submission's "blockchain hash": SHA-256 over the JSON
// record followed by the submission time in unix milliseconds. It is a plain
// content digest. The same record submitted at a different millisecond hashes
// differently.
func ContentHash(r Record, at time.Time) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write(b)
	h.Write([]byte(strconv.FormatInt(at.UnixMilli(), 10)))
	return hex.EncodeToString(h.Sum(nil)), nil
}
