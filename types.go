// types.go contains declarations of custom types and predefined constants.

package kestrel

/*
Move represents a chess move, packed into a 32 bit unsigned integer:
  - 0-5:   To (destination) square index.
  - 6-11:  From (origin/source) square index.
  - 12-14: Promotion kind (see [PromoKind]).
  - 15-18: Capture tag + 2 (see below), so the field never goes
    negative and the zero value represents a castling move.

CaptureTag is an overloaded channel, mirroring the move encoding used
throughout the move generator and the make/unmake step:
  - [CaptureCastling] (-2) -> castling. From/To are the squares of the
    ROOK, not the king (see [Position.MakeMove]).
  - [CaptureNone] (-1) -> quiet move (no capture, not a castle).
  - 0..11 -> a capture; the value is the piece index of the captured
    piece. En passant uses the captured pawn's piece index, with To
    equal to the en passant target square, not the captured pawn's
    square.
*/
type Move uint32

// NewMove creates a quiet move.
func NewMove(from, to int) Move {
	return NewCaptureMove(from, to, PieceNone)
}

// NewCaptureMove creates a move capturing the given piece, or a quiet
// move if captured is [PieceNone].
func NewCaptureMove(from, to int, captured Piece) Move {
	var tag uint32
	if captured == PieceNone {
		tag = 1
	} else {
		tag = uint32(captured) + 2
	}
	return Move(uint32(to) | (uint32(from) << 6) | (tag << 15))
}

// NewPromotionMove creates a move promoting a pawn to promo, optionally
// capturing the given piece.
func NewPromotionMove(from, to int, promo PromoKind, captured Piece) Move {
	var tag uint32
	if captured == PieceNone {
		tag = 1
	} else {
		tag = uint32(captured) + 2
	}
	return Move(uint32(to) | (uint32(from) << 6) | (uint32(promo) << 12) | (tag << 15))
}

// NewCastlingMove creates a castling move. rookFrom/rookTo are the
// rook's home and landing squares, per the rook-centric castling
// encoding documented on CaptureTag.
func NewCastlingMove(rookFrom, rookTo int) Move {
	// CaptureTag [CaptureCastling] is encoded as stored value 0, the
	// zero value of the field, so no explicit bits need to be set.
	return Move(rookTo | (rookFrom << 6))
}

func (m Move) To() int              { return int(m & 0x3F) }
func (m Move) From() int            { return int(m>>6) & 0x3F }
func (m Move) PromoKind() PromoKind { return PromoKind(m>>12) & 0x7 }
func (m Move) CaptureTag() int      { return int(m>>15&0xF) - 2 }
func (m Move) IsCastling() bool     { return m.CaptureTag() == CaptureCastling }
func (m Move) IsCapture() bool      { return m.CaptureTag() >= PieceWPawn }
func (m Move) IsPromotion() bool    { return m.PromoKind() != PromoNone }

/*
MoveList stores moves in a preallocated array to avoid dynamic memory
allocation during move generation.
*/
type MoveList struct {
	// Maximum number of moves per chess position is 218.
	// See https://www.talkchess.com/forum/viewtopic.php?t=61792
	Moves         [218]Move
	LastMoveIndex byte
}

// Push adds the move to the end of the move list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.LastMoveIndex] = m
	l.LastMoveIndex++
}

// Slice returns the populated portion of the move list.
func (l *MoveList) Slice() []Move {
	return l.Moves[:l.LastMoveIndex]
}

var (
	// PieceSymbols maps each piece index to its FEN symbol.
	PieceSymbols = [12]byte{
		'P', 'N', 'B', 'R', 'Q', 'K',
		'p', 'n', 'b', 'r', 'q', 'k',
	}
	// Square2String maps each board square to its algebraic notation.
	Square2String = [64]string{
		"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
		"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
		"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
		"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
		"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
		"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
		"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
		"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	}
)

// Piece is an alias type to avoid bothersome conversion between int
// and Piece. Piece kinds are indexed 0..11: white pawn..king occupy
// 0..5, black pawn..king occupy 6..11. A piece index i is white iff
// i < 6; i+6 maps a white-kind index to its black counterpart.
type Piece = int

const (
	PieceWPawn Piece = iota
	PieceWKnight
	PieceWBishop
	PieceWRook
	PieceWQueen
	PieceWKing
	PieceBPawn
	PieceBKnight
	PieceBBishop
	PieceBRook
	PieceBQueen
	PieceBKing
	// PieceNone marks an empty square. Its value equals [CaptureNone],
	// a quiet move's capture tag.
	PieceNone = -1
)

// CaptureCastling is the sentinel CaptureTag value marking a castling
// move, whose From/To fields hold the rook's squares.
const CaptureCastling = -2

// CaptureNone is the sentinel CaptureTag value marking a quiet move
// (no capture, not a castle).
const CaptureNone = -1

// Color is an alias type to avoid bothersome conversion between int
// and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// PromoKind is an alias type to avoid bothersome conversion between
// int and PromoKind.
type PromoKind = int

const (
	PromoNone PromoKind = iota
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
)

/*
CastlingRights defines the players' rights to castle.
  - bit 0: white king-side.
  - bit 1: white queen-side.
  - bit 2: black king-side.
  - bit 3: black queen-side.
*/
type CastlingRights = int

const (
	CastlingWhiteShort CastlingRights = 1
	CastlingWhiteLong  CastlingRights = 2
	CastlingBlackShort CastlingRights = 4
	CastlingBlackLong  CastlingRights = 8
)

// Result represents the possible outcomes of a chess game.
type Result int

const (
	ResultUnscored Result = iota
	ResultCheckmate
	ResultTimeout
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
	ResultResignation
	ResultDrawByAgreement
)

// Termination describes why a [Game] ended.
type Termination int

const (
	TerminationUnterminated Termination = iota
	TerminationNormal
	TerminationTimeForfeit
	TerminationAbandoned
)
