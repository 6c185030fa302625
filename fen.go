// fen.go implements conversions between Forsyth-Edwards Notation (FEN)
// strings and [Position] values. Functions in this file expect the
// passed FEN strings to be valid, and may panic if they are not.

package kestrel

import (
	"strconv"
	"strings"
)

// Each FEN string consists of six fields, separated by a space:
//  1. Piece placement.
//  2. Active color: "w" White to move, "b" Black to move.
//  3. Castling rights: "-" if neither side can castle.
//  4. En passant target square: "-" if there is none.
//  5. Halfmove clock, for the fifty-move rule.
//  6. Fullmove number.

// ParseFEN parses the given FEN string into a [Position]. It's the
// caller's responsibility to validate the provided FEN string.
func ParseFEN(fen string) Position {
	p := NewPosition()
	fields := strings.SplitN(fen, " ", 6)

	p.Pieces, p.Mailbox, p.Occupancy, p.AllPieces = ParseBitboards(fields[0])

	if fields[1] == "b" {
		p.SideToMove = ColorBlack
	}

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			p.CastlingRights |= CastlingWhiteShort
		case 'Q':
			p.CastlingRights |= CastlingWhiteLong
		case 'k':
			p.CastlingRights |= CastlingBlackShort
		case 'q':
			p.CastlingRights |= CastlingBlackLong
		}
	}

	if fields[3] == "-" {
		p.EPTarget = -1
	} else {
		p.EPTarget = string2Square(fields[3])
	}

	var err error
	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil {
		panic("cannot parse halfmove counter from FEN string")
	}

	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil {
		panic("cannot parse fullmove counter from FEN string")
	}

	return p
}

// SerializeFEN serializes the given [Position] into a FEN string.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(SerializeBitboards(p.Pieces))

	if p.SideToMove == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 4
	if p.CastlingRights&CastlingWhiteShort != 0 {
		fen.WriteByte('K')
		cnt--
	}
	if p.CastlingRights&CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
		cnt--
	}
	if p.CastlingRights&CastlingBlackShort != 0 {
		fen.WriteByte('k')
		cnt--
	}
	if p.CastlingRights&CastlingBlackLong != 0 {
		fen.WriteByte('q')
		cnt--
	}
	if cnt == 4 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EPTarget < 0 {
		fen.WriteString("- ")
	} else {
		fen.WriteString(Square2String[p.EPTarget])
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(p.HalfmoveCnt))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.FullmoveCnt))

	return fen.String()
}

// ParseBitboards converts the piece-placement field of a FEN string
// into piece bitboards, a mailbox array, the two color-occupancy
// bitboards, and the combined occupancy bitboard.
//
// May panic if the provided string is not valid.
func ParseBitboards(piecePlacement string) (pieces [12]uint64, mailbox [64]Piece, occupancy [2]uint64, all uint64) {
	for i := range mailbox {
		mailbox[i] = PieceNone
	}

	square := 56
	for i := 0; i < len(piecePlacement); i++ {
		char := piecePlacement[i]

		switch {
		case char == '/':
			square -= 16
		case char >= '1' && char <= '8':
			square += int(char - '0')
		default:
			piece := symbol2Piece(char)
			bb := uint64(1) << square

			pieces[piece] |= bb
			mailbox[square] = piece
			occupancy[colorOf(piece)] |= bb
			all |= bb

			square++
		}
	}

	return pieces, mailbox, occupancy, all
}

// symbol2Piece maps a FEN piece character to its [Piece] index.
func symbol2Piece(char byte) Piece {
	switch char {
	case 'P':
		return PieceWPawn
	case 'N':
		return PieceWKnight
	case 'B':
		return PieceWBishop
	case 'R':
		return PieceWRook
	case 'Q':
		return PieceWQueen
	case 'K':
		return PieceWKing
	case 'p':
		return PieceBPawn
	case 'n':
		return PieceBKnight
	case 'b':
		return PieceBBishop
	case 'r':
		return PieceBRook
	case 'q':
		return PieceBQueen
	case 'k':
		return PieceBKing
	}
	panic("fen: unrecognized piece symbol " + string(char))
}

// SerializeBitboards converts piece bitboards into the piece-placement
// field of a FEN string.
func SerializeBitboards(pieces [12]uint64) string {
	b := strings.Builder{}
	b.Grow(20)

	var board [64]byte
	for i := PieceWPawn; i <= PieceBKing; i++ {
		bb := pieces[i]
		for bb != 0 {
			square := popLSB(&bb)
			board[square] = PieceSymbols[i]
		}
	}

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 {
				emptySquares++
			} else {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(char)
			}

			if (square+1)%8 == 0 {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}

// string2Square parses an algebraic square string (e.g. "e4") into a
// square index.
func string2Square(str string) int {
	file := 0
	switch str[0] {
	case 'b':
		file = 1
	case 'c':
		file = 2
	case 'd':
		file = 3
	case 'e':
		file = 4
	case 'f':
		file = 5
	case 'g':
		file = 6
	case 'h':
		file = 7
	}
	return file + (int(str[1]-'0')-1)*8
}
