package src

import (
	"fmt"
	"sort"
	"strings"
)

// Three-node motifs are coded on six bits, one per ordered node pair in the
// slot order below. Slot 0 is the most significant bit.
const (
	NumMotifs = 13
	NumSlots  = 6
	NumCodes  = 64
)

//slot k is the edge slotEnds[k][0] -> slotEnds[k][1]
var slotEnds = [NumSlots][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}

var permutations = [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

type EdgeRole int

const (
	TrueEdge EdgeRole = iota
	BackEdge
	AbsentEdge
)

func (r EdgeRole) String() string {
	switch r {
	case TrueEdge:
		return "true"
	case BackEdge:
		return "back"
	}
	return "absent"
}

type motifDef struct {
	name    string
	pattern uint8
}

var motifDefs = [NumMotifs]motifDef{
	{"fan-out", 0x30},              // 110000
	{"fan-in", 0x0A},               // 001010
	{"cascade", 0x24},              // 100100
	{"mutual-out", 0x38},           // 111000
	{"mutual-in", 0x2A},            // 101010
	{"double-mutual", 0x3A},        // 111010
	{"feed-forward loop", 0x34},    // 110100
	{"loop", 0x26},                 // 100110
	{"regulated-mutual-out", 0x35}, // 110101
	{"regulated-mutual-in", 0x0F},  // 001111
	{"mutual-cascade", 0x36},       // 110110
	{"semi-clique", 0x3D},          // 111101
	{"fully-connected", 0x3F},      // 111111
}

type codeEntry struct {
	id   int
	perm [3]int
}

// Catalog is the table of the 13 connected three-node motifs without
// autoregulation. It is built by NewCatalog and read-only afterwards, so a
// single value can be shared by any number of goroutines.
type Catalog struct {
	codes  [NumCodes]codeEntry
	roles  [NumMotifs][NumSlots]EdgeRole
	groups [NumMotifs][][]int
}

func slotBit(slot int) uint8 {
	return 1 << uint(NumSlots-1-slot)
}

func slotOf(from int, to int) int {
	for k, e := range slotEnds {
		if e[0] == from && e[1] == to {
			return k
		}
	}
	return -1
}

func reverseSlot(slot int) int {
	return slotOf(slotEnds[slot][1], slotEnds[slot][0])
}

// Relabel returns the code seen when canonical node i is node perm[i] of
// the triad coded by code.
func Relabel(code uint8, perm [3]int) (out uint8) {
	for k, e := range slotEnds {
		if code&slotBit(slotOf(perm[e[0]], perm[e[1]])) != 0 {
			out |= slotBit(k)
		}
	}
	return out
}

// connectedCode reports whether no node of the coded triad is isolated.
func connectedCode(code uint8) bool {
	var touched [3]bool
	for k, e := range slotEnds {
		if code&slotBit(k) != 0 {
			touched[e[0]] = true
			touched[e[1]] = true
		}
	}
	return touched[0] && touched[1] && touched[2]
}

func NewCatalog() *Catalog {
	c := &Catalog{}
	byPattern := make(map[uint8]int, NumMotifs)
	for id, d := range motifDefs {
		byPattern[d.pattern] = id
	}
	for code := 0; code < NumCodes; code++ {
		c.codes[code] = codeEntry{id: -1}
		if !connectedCode(uint8(code)) {
			continue
		}
		for _, perm := range permutations {
			if id, ok := byPattern[Relabel(uint8(code), perm)]; ok {
				c.codes[code] = codeEntry{id: id, perm: perm}
				break
			}
		}
	}
	for id, d := range motifDefs {
		for k := 0; k < NumSlots; k++ {
			switch {
			case d.pattern&slotBit(k) != 0:
				c.roles[id][k] = TrueEdge
			case d.pattern&slotBit(reverseSlot(k)) != 0:
				c.roles[id][k] = BackEdge
			default:
				c.roles[id][k] = AbsentEdge
			}
		}
		c.groups[id] = slotOrbits(d.pattern)
	}
	return c
}

// slotOrbits merges edge slots that an automorphism of the pattern maps onto
// each other; their ranks follow the same distribution.
func slotOrbits(pattern uint8) (groups [][]int) {
	parent := [NumSlots]int{0, 1, 2, 3, 4, 5}
	find := func(x int) int {
		for parent[x] != x {
			x = parent[x]
		}
		return x
	}
	for _, perm := range permutations {
		if Relabel(pattern, perm) != pattern {
			continue
		}
		for k, e := range slotEnds {
			a, b := find(k), find(slotOf(perm[e[0]], perm[e[1]]))
			if a < b {
				parent[b] = a
			} else if b < a {
				parent[a] = b
			}
		}
	}
	byRoot := make(map[int][]int)
	for k := 0; k < NumSlots; k++ {
		r := find(k)
		byRoot[r] = append(byRoot[r], k)
	}
	for _, g := range byRoot {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}

// Lookup maps a triad code to its motif id and the relabeling that turns
// the triad into the canonical pattern. ok is false for disconnected codes.
func (c *Catalog) Lookup(code uint8) (id int, perm [3]int, ok bool) {
	e := c.codes[code&(NumCodes-1)]
	if e.id < 0 {
		return -1, perm, false
	}
	return e.id, e.perm, true
}

func (c *Catalog) Pattern(id int) uint8 {
	return motifDefs[id].pattern
}

func (c *Catalog) Name(id int) string {
	return motifDefs[id].name
}

func (c *Catalog) Role(id int, slot int) EdgeRole {
	return c.roles[id][slot]
}

func (c *Catalog) Slots(id int, role EdgeRole) (slots []int) {
	for k := 0; k < NumSlots; k++ {
		if c.roles[id][k] == role {
			slots = append(slots, k)
		}
	}
	return slots
}

// Groups lists the edge slots of a motif whose ranks are pooled. Asymmetric
// motifs have one group per slot.
func (c *Catalog) Groups(id int) [][]int {
	return c.groups[id]
}

func (c *Catalog) Symmetric(id int) bool {
	return len(c.groups[id]) < NumSlots
}

func PatternString(code uint8) string {
	var sb strings.Builder
	for k := 0; k < NumSlots; k++ {
		if code&slotBit(k) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func SlotName(slot int) string {
	return fmt.Sprintf("%d->%d", slotEnds[slot][0], slotEnds[slot][1])
}

// Definitions is the motif-definition report.
func (c *Catalog) Definitions() string {
	var sb strings.Builder
	sb.WriteString("# edge order: ")
	for k := 0; k < NumSlots; k++ {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(SlotName(k))
	}
	sb.WriteString("\n")
	sb.WriteString("id\tpattern\tname\tedges\n")
	for id, d := range motifDefs {
		edges := make([]string, 0, NumSlots)
		for k := 0; k < NumSlots; k++ {
			if d.pattern&slotBit(k) != 0 {
				edges = append(edges, SlotName(k))
			}
		}
		fmt.Fprintf(&sb, "%d\t%s\t%s\t%s\n", id, PatternString(d.pattern), d.name, strings.Join(edges, " "))
	}
	return sb.String()
}
