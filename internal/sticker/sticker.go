// Package sticker defines the named corner and edge sticker targets used
// to describe a three-cycle, and their facelet membership.
package sticker

import (
	"github.com/luckasRanarison/three-style/internal/cubeerr"
	"github.com/luckasRanarison/three-style/internal/facelet"
)

// Corner names one of the 24 ways to read a corner piece's stickers,
// starting from any of its three faces.
type Corner int

const (
	UBL Corner = iota
	BLU
	LUB
	URB
	RBU
	BUR
	UFR
	FRU
	RUF
	ULF
	LFU
	FUL
	DFL
	FLD
	LDF
	DRF
	RFD
	FDR
	DBR
	BRD
	RDB
	DLB
	LBD
	BDL
)

var cornerFacelets = [24][3]facelet.Facelet{
	{facelet.U0, facelet.B2, facelet.L0}, // UBL
	{facelet.B2, facelet.L0, facelet.U0}, // BLU
	{facelet.L0, facelet.U0, facelet.B2}, // LUB
	{facelet.U2, facelet.R2, facelet.B0}, // URB
	{facelet.R2, facelet.B0, facelet.U2}, // RBU
	{facelet.B0, facelet.U2, facelet.R2}, // BUR
	{facelet.U8, facelet.F2, facelet.R0}, // UFR
	{facelet.F2, facelet.R0, facelet.U8}, // FRU
	{facelet.R0, facelet.U8, facelet.F2}, // RUF
	{facelet.U6, facelet.L2, facelet.F0}, // ULF
	{facelet.L2, facelet.F0, facelet.U6}, // LFU
	{facelet.F0, facelet.U6, facelet.L2}, // FUL
	{facelet.D0, facelet.F6, facelet.L8}, // DFL
	{facelet.F6, facelet.L8, facelet.D0}, // FLD
	{facelet.L8, facelet.D0, facelet.F6}, // LDF
	{facelet.D2, facelet.R6, facelet.F8}, // DRF
	{facelet.R6, facelet.F8, facelet.D2}, // RFD
	{facelet.F8, facelet.D2, facelet.R6}, // FDR
	{facelet.D8, facelet.B6, facelet.R8}, // DBR
	{facelet.B6, facelet.R8, facelet.D8}, // BRD
	{facelet.R8, facelet.D8, facelet.B6}, // RDB
	{facelet.D6, facelet.L6, facelet.B8}, // DLB
	{facelet.L6, facelet.B8, facelet.D6}, // LBD
	{facelet.B8, facelet.D6, facelet.L6}, // BDL
}

var cornerNames = [...]string{
	"UBL", "BLU", "LUB", "URB", "RBU", "BUR", "UFR", "FRU", "RUF",
	"ULF", "LFU", "FUL", "DFL", "FLD", "LDF", "DRF", "RFD", "FDR",
	"DBR", "BRD", "RDB", "DLB", "LBD", "BDL",
}

var cornerFromName = func() map[string]Corner {
	m := make(map[string]Corner, len(cornerNames))
	for i, n := range cornerNames {
		m[n] = Corner(i)
	}
	return m
}()

// Facelets returns c's three stickers in c's own reading order.
func (c Corner) Facelets() []facelet.Facelet {
	t := cornerFacelets[c]
	return []facelet.Facelet{t[0], t[1], t[2]}
}

func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return "?"
}

// ParseCorner parses a three-letter corner name such as "UFR".
func ParseCorner(s string) (Corner, error) {
	if c, ok := cornerFromName[s]; ok {
		return c, nil
	}
	return 0, cubeerr.New(cubeerr.InvalidCornerString, s)
}

// Edge names one of the 24 ways to read an edge piece's stickers,
// starting from either of its two faces.
type Edge int

const (
	UB Edge = iota
	BU
	UR
	RU
	UF
	FU
	UL
	LU
	FL
	LF
	FR
	RF
	BR
	RB
	BL
	LB
	DF
	FD
	DR
	RD
	DB
	BD
	DL
	LD
)

var edgeFacelets = [24][2]facelet.Facelet{
	{facelet.U1, facelet.B1}, // UB
	{facelet.B1, facelet.U1}, // BU
	{facelet.U5, facelet.R1}, // UR
	{facelet.R1, facelet.U5}, // RU
	{facelet.U7, facelet.F1}, // UF
	{facelet.F1, facelet.U7}, // FU
	{facelet.U3, facelet.L1}, // UL
	{facelet.L1, facelet.U3}, // LU
	{facelet.F3, facelet.L5}, // FL
	{facelet.L5, facelet.F3}, // LF
	{facelet.F5, facelet.R3}, // FR
	{facelet.R3, facelet.F5}, // RF
	{facelet.B3, facelet.R5}, // BR
	{facelet.R5, facelet.B3}, // RB
	{facelet.B5, facelet.L3}, // BL
	{facelet.L3, facelet.B5}, // LB
	{facelet.D1, facelet.F7}, // DF
	{facelet.F7, facelet.D1}, // FD
	{facelet.D5, facelet.R7}, // DR
	{facelet.R7, facelet.D5}, // RD
	{facelet.D7, facelet.B7}, // DB
	{facelet.B7, facelet.D7}, // BD
	{facelet.D3, facelet.L7}, // DL
	{facelet.L7, facelet.D3}, // LD
}

var edgeNames = [...]string{
	"UB", "BU", "UR", "RU", "UF", "FU", "UL", "LU",
	"FL", "LF", "FR", "RF", "BR", "RB", "BL", "LB",
	"DF", "FD", "DR", "RD", "DB", "BD", "DL", "LD",
}

var edgeFromName = func() map[string]Edge {
	m := make(map[string]Edge, len(edgeNames))
	for i, n := range edgeNames {
		m[n] = Edge(i)
	}
	return m
}()

// Facelets returns e's two stickers in e's own reading order.
func (e Edge) Facelets() []facelet.Facelet {
	t := edgeFacelets[e]
	return []facelet.Facelet{t[0], t[1]}
}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return "?"
}

// ParseEdge parses a two-letter edge name such as "UF".
func ParseEdge(s string) (Edge, error) {
	if e, ok := edgeFromName[s]; ok {
		return e, nil
	}
	return 0, cubeerr.New(cubeerr.InvalidEdgeString, s)
}
