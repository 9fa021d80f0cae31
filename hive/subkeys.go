package hive

import "fmt"

// FlattenSubkeyOffsets walks a resolved subkey list and returns the
// relative NK cell offset of every child, in on-disk order. An "ri" list is
// expanded recursively via a stack-based traversal; a visited-offset guard
// rejects a cycle with CorruptStructure rather than looping forever on a
// malformed hive.
func FlattenSubkeyOffsets(h *Hive, list SubkeyListResult) ([]uint32, error) {
	var out []uint32
	visited := make(map[uint32]bool)

	type pending struct {
		kind SubkeyListKind
		lf   LF
		lh   LH
		li   LI
		ri   RI
	}
	stack := []pending{{kind: list.Kind, lf: list.LF, lh: list.LH, li: list.LI, ri: list.RI}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch cur.kind {
		case ListLF:
			for i := 0; i < cur.lf.Count(); i++ {
				out = append(out, cur.lf.Entry(i).Cell())
			}
		case ListLH:
			for i := 0; i < cur.lh.Count(); i++ {
				out = append(out, cur.lh.Entry(i).Cell())
			}
		case ListLI:
			for i := 0; i < cur.li.Count(); i++ {
				out = append(out, cur.li.CellIndexAt(i))
			}
		case ListRI:
			// Resolve all of this ri's leaves in on-disk order first, then
			// push them onto the LIFO stack back-to-front, so popping
			// processes them front-to-back: the stack preserves the ri's
			// concatenation order instead of reversing it.
			nexts := make([]pending, 0, cur.ri.Count())
			for i := 0; i < cur.ri.Count(); i++ {
				leafOff := cur.ri.LeafCellAt(i)
				if visited[leafOff] {
					return nil, fmt.Errorf("hive: ri list revisits offset 0x%X (cycle)", leafOff)
				}
				visited[leafOff] = true

				payload, err := resolveRelCellPayload(h.Bytes(), leafOff)
				if err != nil {
					return nil, fmt.Errorf("hive: resolve ri leaf: %w", err)
				}
				leafKind := DetectListKind(payload)
				next := pending{kind: leafKind}
				switch leafKind {
				case ListLF:
					next.lf, err = ParseLF(payload)
				case ListLH:
					next.lh, err = ParseLH(payload)
				case ListLI:
					next.li, err = ParseLI(payload)
				case ListRI:
					next.ri, err = ParseRI(payload)
				default:
					return nil, fmt.Errorf("hive: ri leaf has unknown signature at 0x%X", leafOff)
				}
				if err != nil {
					return nil, fmt.Errorf("hive: parse ri leaf: %w", err)
				}
				nexts = append(nexts, next)
			}
			for i := len(nexts) - 1; i >= 0; i-- {
				stack = append(stack, nexts[i])
			}
		default:
			return nil, fmt.Errorf("hive: unknown subkey list kind %d", cur.kind)
		}
	}
	return out, nil
}
