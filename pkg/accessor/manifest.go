package accessor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// SchemaRevision increments whenever the taxonomy table changes shape.
// Tooling compares it before trusting a stored snapshot.
const SchemaRevision uint16 = 1

// Manifest is a serializable snapshot of the taxonomy, used by the code
// generator and by tooling that checks generated artifacts for drift.
// CBOR encoding uses integer keys for compactness; YAML is the
// human-readable form.
type Manifest struct {
	// Revision is the schema revision the snapshot was taken from.
	Revision uint16 `yaml:"revision" cbor:"1,keyasint"`

	// Accessors are the rows in declaration order.
	Accessors []ManifestRow `yaml:"accessors" cbor:"2,keyasint"`
}

// ManifestRow is one taxonomy row in serialized form. Fields that do not
// apply to a row (keyword on markers, addressor axes on non-addressors)
// are omitted.
type ManifestRow struct {
	Kind       string `yaml:"kind" cbor:"1,keyasint"`
	Keyword    string `yaml:"keyword,omitempty" cbor:"2,keyasint,omitempty"`
	Category   string `yaml:"category" cbor:"3,keyasint"`
	Addressor  string `yaml:"addressor,omitempty" cbor:"4,keyasint,omitempty"`
	Mutability string `yaml:"mutability,omitempty" cbor:"5,keyasint,omitempty"`
	Suppressed bool   `yaml:"suppressed,omitempty" cbor:"6,keyasint,omitempty"`
}

// BuildManifest derives a snapshot from the live table. The snapshot
// always covers every row, markers and suppressed rows included, so that
// drift checks see the whole table.
func BuildManifest() Manifest {
	row := func(e Entry) ManifestRow {
		r := ManifestRow{
			Kind:       e.Kind.String(),
			Keyword:    e.Keyword,
			Category:   e.Category.String(),
			Suppressed: e.Suppressed,
		}
		if e.Category == CategoryAddressor {
			r.Mutability = e.Mutability.String()
			if e.Addressor != AddressorNone {
				r.Addressor = e.Addressor.String()
			}
		}
		return r
	}

	rows := Expand(HandlerSet[ManifestRow]{
		Singleton:         row,
		Marker:            row,
		Addressor:         row,
		IncludeSuppressed: true,
	})

	m := Manifest{Revision: SchemaRevision}
	for _, r := range rows {
		m.Accessors = append(m.Accessors, r.Artifact)
	}
	return m
}

// Diff reports the differences between two snapshots as human-readable
// lines, in row order. An empty result means the snapshots match.
func (m Manifest) Diff(other Manifest) []string {
	var diffs []string
	if m.Revision != other.Revision {
		diffs = append(diffs, fmt.Sprintf("revision: %d != %d", m.Revision, other.Revision))
	}
	n := len(m.Accessors)
	if len(other.Accessors) != n {
		diffs = append(diffs, fmt.Sprintf("row count: %d != %d", n, len(other.Accessors)))
		if len(other.Accessors) < n {
			n = len(other.Accessors)
		}
	}
	for i := 0; i < n; i++ {
		if m.Accessors[i] != other.Accessors[i] {
			diffs = append(diffs, fmt.Sprintf("row %d (%s): %+v != %+v",
				i, m.Accessors[i].Kind, m.Accessors[i], other.Accessors[i]))
		}
	}
	return diffs
}

// manifestEncMode is the CBOR encoder mode for snapshots. Deterministic
// encoding so identical tables produce identical bytes.
var manifestEncMode cbor.EncMode

// manifestDecMode is the CBOR decoder mode for snapshots.
var manifestDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	manifestEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create manifest CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	manifestDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create manifest CBOR decoder mode: %v", err))
	}
}

// EncodeManifest encodes a snapshot to CBOR bytes.
func EncodeManifest(m Manifest) ([]byte, error) {
	return manifestEncMode.Marshal(m)
}

// DecodeManifest decodes CBOR bytes into a snapshot.
func DecodeManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := manifestDecMode.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
