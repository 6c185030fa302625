/*
zobrist.go implements the Zobrist hashing algorithm to detect position
repetitions (threefold repetition rule).
*/

package kestrel

import "math/rand/v2"

/*
Keys are used to hash each possible position into a unique number.
Each key is generated randomly and large enough that the probability
of hash collisions is negligible.
*/
var (
	pieceKeys [12][64]uint64
	// epKeys is indexed by file; only the file of an en passant target
	// matters for hashing purposes.
	epKeys       [8]uint64
	castlingKeys [16]uint64
	colorKey     uint64
)

/*
InitZobristKeys initializes the pseudo-random keys used in the Zobrist
hashing scheme. Call this function ONCE as close as possible to the
start of the program.

NOTE: if this function wasn't called, every key is zero, so every
position hashes to the same value and repetition detection is
meaningless.
*/
func InitZobristKeys() {
	for i := PieceWPawn; i <= PieceBKing; i++ {
		for square := range 64 {
			pieceKeys[i][square] = rand.Uint64()
		}
	}

	for file := range 8 {
		epKeys[file] = rand.Uint64()
	}

	for i := range 16 {
		castlingKeys[i] = rand.Uint64()
	}

	colorKey = rand.Uint64()
}

// ZobristKey hashes the position into a 64-bit unsigned integer,
// suitable for use as a repetition-detection lookup key.
func (p *Position) ZobristKey() (key uint64) {
	for i := PieceWPawn; i <= PieceBKing; i++ {
		bb := p.Pieces[i]
		for bb != 0 {
			key ^= pieceKeys[i][popLSB(&bb)]
		}
	}

	if p.EPTarget >= 0 {
		key ^= epKeys[fileOf(p.EPTarget)]
	}

	key ^= castlingKeys[p.CastlingRights]

	if p.SideToMove == ColorBlack {
		key ^= colorKey
	}

	return key
}
