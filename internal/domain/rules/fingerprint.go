package rules

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// Fingerprint computes the stable identity of one logical violation from
// the rule id, a repository-relative path, and a rule-local discriminator.
// Each component is length-prefixed before hashing so ("a","bc") can never
// collide with ("ab","c"). Same inputs yield the same fingerprint on any
// machine, any run.
func Fingerprint(ruleID, stablePath, discriminator string) string {
	h := sha256.New()
	for _, part := range []string{ruleID, stablePath, discriminator} {
		var size [8]byte
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// stablePath converts a corpus path into the repo-relative slash form used
// for fingerprinting, so two checkouts of the same repository produce
// identical fingerprints. Paths that cannot be relativized are used as
// given.
func stablePath(filePath, rootDir string) string {
	if rootDir != "" && filepath.IsAbs(filePath) {
		if rel, err := filepath.Rel(rootDir, filePath); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filePath)
}
