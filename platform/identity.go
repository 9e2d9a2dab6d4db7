package platform

import "strconv"

// ID is a 64-bit opaque identifier naming a platform account or
// remote peer. IDs are plain values: equality and ordering are
// bitwise, and they may be copied freely.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsValid reports whether the ID names an account. The runtime never
// assigns the zero value.
func (id ID) IsValid() bool {
	return id != 0
}
