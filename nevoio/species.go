package nevoio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/evolab/nevo/activation"
	"github.com/evolab/nevo/core"
)

// WriteSpecies encodes s's topology: magic, version, id, row descriptors,
// the sorted template edge array, per-node activation vocabularies, and
// max_in_degree.
func WriteSpecies(w io.Writer, s *core.Species) error {
	if err := writeU32(w, magic); err != nil {
		return err
	}
	if err := writeU32(w, version); err != nil {
		return err
	}
	if err := writeI64(w, int64(s.ID)); err != nil {
		return err
	}
	if err := writeI64(w, int64(s.MaxInDegree)); err != nil {
		return err
	}

	if err := writeI64(w, int64(len(s.Rows))); err != nil {
		return err
	}
	for _, r := range s.Rows {
		if err := writeI64(w, int64(r.Kind)); err != nil {
			return err
		}
		if err := writeI64(w, int64(r.NodeStart)); err != nil {
			return err
		}
		if err := writeI64(w, int64(r.NodeCount)); err != nil {
			return err
		}
	}

	if err := writeI64(w, int64(len(s.Nodes))); err != nil {
		return err
	}
	for _, n := range s.Nodes {
		if err := writeI64(w, int64(n.Row)); err != nil {
			return err
		}
		if err := writeI64(w, int64(len(n.AllowedActivations))); err != nil {
			return err
		}
		for _, a := range n.AllowedActivations {
			if err := writeI64(w, int64(a)); err != nil {
				return err
			}
		}
	}

	if err := writeI64(w, int64(len(s.TemplateEdges))); err != nil {
		return err
	}
	for _, e := range s.TemplateEdges {
		if err := writeI64(w, int64(e.Source)); err != nil {
			return err
		}
		if err := writeI64(w, int64(e.Dest)); err != nil {
			return err
		}
	}

	return nil
}

// ReadSpecies decodes a Species written by WriteSpecies. Lifecycle
// statistics are not persisted (spec §6.4 only names topology fields);
// the returned Species has them zero-valued.
func ReadSpecies(r io.Reader) (*core.Species, error) {
	m, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if m != magic {
		return nil, fmt.Errorf("nevoio: bad magic %#x", m)
	}
	v, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if v != version {
		return nil, fmt.Errorf("nevoio: unsupported version %d", v)
	}

	id, err := readI64(r)
	if err != nil {
		return nil, err
	}
	maxInDegree, err := readI64(r)
	if err != nil {
		return nil, err
	}

	rowCount, err := readI64(r)
	if err != nil {
		return nil, err
	}
	rows := make([]core.Row, rowCount)
	for i := range rows {
		kind, err := readI64(r)
		if err != nil {
			return nil, err
		}
		start, err := readI64(r)
		if err != nil {
			return nil, err
		}
		count, err := readI64(r)
		if err != nil {
			return nil, err
		}
		rows[i] = core.Row{Kind: core.RowKind(kind), NodeStart: int(start), NodeCount: int(count)}
	}

	nodeCount, err := readI64(r)
	if err != nil {
		return nil, err
	}
	nodes := make([]core.NodeSpec, nodeCount)
	for i := range nodes {
		row, err := readI64(r)
		if err != nil {
			return nil, err
		}
		allowedCount, err := readI64(r)
		if err != nil {
			return nil, err
		}
		var allowed []activation.ID
		if allowedCount > 0 {
			allowed = make([]activation.ID, allowedCount)
			for j := range allowed {
				a, err := readI64(r)
				if err != nil {
					return nil, err
				}
				allowed[j] = activation.ID(a)
			}
		}
		nodes[i] = core.NodeSpec{Row: int(row), AllowedActivations: allowed}
	}

	edgeCount, err := readI64(r)
	if err != nil {
		return nil, err
	}
	edges := make([]core.Edge, edgeCount)
	for i := range edges {
		src, err := readI64(r)
		if err != nil {
			return nil, err
		}
		dst, err := readI64(r)
		if err != nil {
			return nil, err
		}
		edges[i] = core.Edge{Source: int(src), Dest: int(dst)}
	}

	return &core.Species{
		ID:            int(id),
		Rows:          rows,
		Nodes:         nodes,
		MaxInDegree:   int(maxInDegree),
		TemplateEdges: edges,
	}, nil
}

func writeU32(w io.Writer, v uint32) error { return binary.Write(w, binary.LittleEndian, v) }
func readU32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeI64(w io.Writer, v int64) error { return binary.Write(w, binary.LittleEndian, v) }
func readI64(r io.Reader) (int64, error) {
	var v int64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeF32(w io.Writer, v float32) error { return binary.Write(w, binary.LittleEndian, v) }
func readF32(r io.Reader) (float32, error) {
	var v float32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeF64(w io.Writer, v float64) error { return binary.Write(w, binary.LittleEndian, v) }
func readF64(r io.Reader) (float64, error) {
	var v float64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}
