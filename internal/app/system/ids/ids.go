// Package ids generates the identifier formats used across the data model:
// uuid v4 café ids, "UI"-prefixed employee ids, and random hex basenames
// for uploaded logo files. Generators are plain func fields on the stores
// and coordinator so tests can substitute deterministic ones.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"

	"github.com/google/uuid"
)

// employeeAlphabet is the character set for the employee id suffix.
const employeeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EmployeePrefix starts every employee id.
const EmployeePrefix = "UI"

// employeeSuffixLen is the number of random characters after the prefix.
const employeeSuffixLen = 7

// NewCafeID returns a uuid v4 string.
func NewCafeID() string {
	return uuid.NewString()
}

// NewEmployeeID returns "UI" plus seven random uppercase alphanumerics.
func NewEmployeeID() string {
	buf := make([]byte, employeeSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// no sane fallback for id generation.
		panic("ids: crypto/rand unavailable: " + err.Error())
	}
	id := make([]byte, 0, len(EmployeePrefix)+employeeSuffixLen)
	id = append(id, EmployeePrefix...)
	for _, b := range buf {
		id = append(id, employeeAlphabet[int(b)%len(employeeAlphabet)])
	}
	return string(id)
}

// NewBlobName returns a storage filename for an uploaded asset: sixteen
// random bytes hex-encoded, keeping the extension of originalName so the
// stored file remains identifiable by type.
func NewBlobName(originalName string) string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("ids: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf) + filepath.Ext(originalName)
}
