package chessmg

// Piece encodes a colored piece in four bits: the low three bits are the
// type (1..6) and bit 3 marks Black. The encoding stays internal to the
// board; the attack tables are keyed by Color and Square only.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is the colorless piece kind, used to index per-type tables.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owning side. NoPiece reads as White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// MakePiece combines a side and a colorless type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

// CastlingRights is a bitmask of the four castling permissions.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// Square indexes a board square 0-63, rank-major: index = rank*8 + file,
// a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// File returns the square's file 0-7 (a-h).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the square's rank 0-7.
func (sq Square) Rank() int { return int(sq) / 8 }

// Bitboards is the per-piece bitboard view of one side, consumed by the
// aggregate attack query.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Board holds piece placement and game state. All bitboards and the mailbox
// are kept in sync by the mutation helpers below.
type Board struct {
	pieceBB   [2][7]uint64 // [color][PieceType], index 0 unused
	occupancy [2]uint64
	mailbox   [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int
	zobristKey      uint64
}

// NewBoard returns an empty board with White to move. Init runs as a side
// effect so attack tables are always ready before the board is queried.
func NewBoard() *Board {
	Init()
	return &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// EnPassantSquare returns the en passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns half-moves since the last capture or pawn advance.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// CastlingRightsMask returns the current castling permissions.
func (b *Board) CastlingRightsMask() CastlingRights { return b.castlingRights }

// Hash returns the Zobrist key of the current position.
func (b *Board) Hash() uint64 { return b.zobristKey }

// AllOccupancy returns the blocker board: every occupied square of both
// sides.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the occupancy of one side.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// PieceAt returns the piece on a square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.mailbox[sq] }

// PieceBB returns the bitboard of one side's pieces of the given type.
func (b *Board) PieceBB(c Color, pt PieceType) uint64 { return b.pieceBB[c][pt] }

// Bitboards returns a copy of the per-piece bitboards for one side.
func (b *Board) Bitboards(c Color) Bitboards {
	return Bitboards{
		Pawns:   b.pieceBB[c][Pawn],
		Knights: b.pieceBB[c][Knight],
		Bishops: b.pieceBB[c][Bishop],
		Rooks:   b.pieceBB[c][Rook],
		Queens:  b.pieceBB[c][Queen],
		Kings:   b.pieceBB[c][King],
		All:     b.occupancy[c],
	}
}

// KingSquare returns the side's king square, or NoSquare for king-less test
// positions.
func (b *Board) KingSquare(c Color) Square {
	return LowestSetSquare(b.pieceBB[c][King])
}

// IsSquareAttacked reports whether sq is attacked by the given side. This is
// the aggregate attack query applied with the global blocker board, so
// sliders stop at pieces of either color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return AllAttacks(by, b.AllOccupancy(), b.Bitboards(by))&bb(sq) != 0
}

// InCheck reports whether the given side's king is attacked. A king-less
// side is never in check.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ksq, c.Other())
}

// AttackersTo returns all pieces of the given side that attack sq, using the
// supplied blocker board. Pawn attackers are found with the reverse table:
// a pawn of side c attacks sq exactly when sq's c-colored pawn attack mask
// covers the pawn.
func (b *Board) AttackersTo(sq Square, by Color, blockers uint64) uint64 {
	return pawnAttackTable[by.Other()][sq]&b.pieceBB[by][Pawn] |
		knightAttackTable[sq]&b.pieceBB[by][Knight] |
		kingAttackTable[sq]&b.pieceBB[by][King] |
		BishopAttacks(sq, blockers)&(b.pieceBB[by][Bishop]|b.pieceBB[by][Queen]) |
		RookAttacks(sq, blockers)&(b.pieceBB[by][Rook]|b.pieceBB[by][Queen])
}

// xorPiece toggles a piece's presence on the squares in mask, keeping the
// type bitboard, occupancy and Zobrist key in sync. The mailbox is updated
// by callers, which know the from/to squares.
func (b *Board) xorPiece(p Piece, mask uint64) {
	c := p.Color()
	b.pieceBB[c][p.Type()] ^= mask
	b.occupancy[c] ^= mask
}

// addPiece places a piece on an empty square.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.mailbox[sq] = p
	b.xorPiece(p, bb(sq))
	b.zobristKey ^= zobristPieceKey(p, sq)
}

// removePiece clears a square and returns what was on it.
func (b *Board) removePiece(sq Square) Piece {
	p := b.mailbox[sq]
	if p == NoPiece {
		return NoPiece
	}
	b.mailbox[sq] = NoPiece
	b.xorPiece(p, bb(sq))
	b.zobristKey ^= zobristPieceKey(p, sq)
	return p
}

// SetPiece sets a piece on a square, replacing any occupant.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the square.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

// HasLegalMoves reports whether the side to move has at least one legal
// move, probing pseudo-legal moves through the make/unmake legality gate.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.GeneratePseudoMovesInto(make([]Move, 0, 64)) {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a fifty-move-rule draw (the clock counts half-moves).
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// Validate cross-checks the mailbox against the bitboards, occupancy and
// Zobrist key. Used by tests after make/unmake sequences.
func (b *Board) Validate() bool {
	var pieceBB [2][7]uint64
	var occ [2]uint64
	for sq := Square(0); sq < 64; sq++ {
		p := b.mailbox[sq]
		if p == NoPiece {
			continue
		}
		pieceBB[p.Color()][p.Type()] |= bb(sq)
		occ[p.Color()] |= bb(sq)
	}
	return pieceBB == b.pieceBB && occ == b.occupancy && b.zobristKey == b.ComputeZobrist()
}
