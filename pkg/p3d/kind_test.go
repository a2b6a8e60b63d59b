package p3d

import "testing"

func TestLookupKind(t *testing.T) {
	tests := []struct {
		value  uint32
		want   Kind
		known  bool
		string string
	}{
		{0x00010000, KindMesh, true, "Mesh"},
		{0x00010001, KindSkin, true, "Skin"},
		{0x00011000, KindShader, true, "Shader"},
		{0xFF443350, KindDataFile, true, "DataFile"},
		{0x00004500, KindP3DSkeleton, true, "P3DSkeleton"},
		{0x12345678, Kind(0x12345678), false, "Kind(0x12345678)"},
		{0, Kind(0), false, "Kind(0x00000000)"},
	}

	for _, tt := range tests {
		t.Run(tt.string, func(t *testing.T) {
			got, ok := LookupKind(tt.value)
			if got != tt.want || ok != tt.known {
				t.Errorf("LookupKind(%#x) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.known)
			}
			if got.Known() != tt.known {
				t.Errorf("Known() = %v", got.Known())
			}
			if got.String() != tt.string {
				t.Errorf("String() = %q, want %q", got.String(), tt.string)
			}
		})
	}
}

func TestKindRegistry(t *testing.T) {
	if n := KindCount(); n < 600 {
		t.Fatalf("KindCount() = %d, registry looks incomplete", n)
	}
	seen := make(map[string]Kind, KindCount())
	for _, k := range kindList {
		if prev, dup := seen[k.name]; dup {
			t.Errorf("name %q used by %#x and %#x", k.name, uint32(prev), uint32(k.kind))
		}
		seen[k.name] = k.kind
	}
	if len(kindNames) != len(kindList) {
		t.Errorf("%d distinct values for %d entries", len(kindNames), len(kindList))
	}
}

func TestDecodersOnlyForKnownKinds(t *testing.T) {
	for k := range decoders {
		if !k.Known() {
			t.Errorf("decoder registered for unregistered kind %v", k)
		}
	}
}
