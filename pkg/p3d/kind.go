package p3d

import "fmt"

// Kind is the 32-bit tag identifying a chunk's record type.
type Kind uint32

var kindNames = func() map[Kind]string {
	m := make(map[Kind]string, len(kindList))
	for _, k := range kindList {
		m[k.kind] = k.name
	}
	return m
}()

// LookupKind reports whether v is a known record kind.
// Every 32-bit value is a valid Kind; a miss only means no name or
// decoder is registered for it.
func LookupKind(v uint32) (Kind, bool) {
	k := Kind(v)
	_, ok := kindNames[k]
	return k, ok
}

// Known reports whether the kind appears in the registry.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the kind's registered name, or its hex value.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(0x%08X)", uint32(k))
}

// KindCount returns the number of registered kinds.
func KindCount() int {
	return len(kindList)
}
