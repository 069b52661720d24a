package chessmg

// MoveState holds the irreversible state needed to undo a move.
type MoveState struct {
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
}

// castleRookSquares maps a king destination square to the rook's from/to
// squares for that castle.
func castleRookSquares(kingTo Square) (rookFrom, rookTo Square) {
	switch kingTo {
	case 6: // g1
		return 7, 5
	case 2: // c1
		return 0, 3
	case 62: // g8
		return 63, 61
	case 58: // c8
		return 56, 59
	}
	return NoSquare, NoSquare
}

// MakeMove applies a move for the side to move. It returns ok=false, with
// the position restored, when the move would leave the mover's own king
// attacked; this is the legality gate for pseudo-legal move generation.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st = MoveState{
		captured:      NoPiece,
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassantSquare,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevZobrist:   b.zobristKey,
	}

	from := m.From()
	to := m.To()
	moved := m.MovedPiece()
	mover := b.sideToMove

	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare

	// Capture, including the en passant victim one rank behind 'to'.
	if m.Flags() == FlagEnPassant {
		capSq := to - 8
		if mover == Black {
			capSq = to + 8
		}
		st.captured = b.removePiece(capSq)
	} else if m.CapturedPiece() != NoPiece {
		st.captured = b.removePiece(to)
	}

	// Move the piece; promotions swap the pawn for the promoted piece.
	b.removePiece(from)
	if promo := m.PromotionPiece(); promo != NoPiece {
		b.addPiece(to, promo)
	} else {
		b.addPiece(to, moved)
	}

	if m.Flags() == FlagCastle {
		rookFrom, rookTo := castleRookSquares(to)
		b.addPiece(rookTo, b.removePiece(rookFrom))
	}

	b.updateCastlingRights(moved, from, to)

	// Double pawn push exposes the skipped square to en passant.
	if moved.Type() == Pawn && (to-from == 16 || from-to == 16) {
		ep := (from + to) / 2
		b.enPassantSquare = ep
		b.zobristKey ^= zobristEnPassant[ep.File()]
	}

	if moved.Type() == Pawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = mover.Other()
	b.zobristKey ^= zobristSide

	if b.InCheck(mover) {
		b.UnmakeMove(m, st)
		return false, st
	}
	return true, st
}

func (b *Board) updateCastlingRights(moved Piece, from, to Square) {
	newCR := b.castlingRights
	switch moved {
	case WhiteKing:
		newCR &^= CastleWhiteKing | CastleWhiteQueen
	case BlackKing:
		newCR &^= CastleBlackKing | CastleBlackQueen
	}
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case 0:
			newCR &^= CastleWhiteQueen
		case 7:
			newCR &^= CastleWhiteKing
		case 56:
			newCR &^= CastleBlackQueen
		case 63:
			newCR &^= CastleBlackKing
		}
	}
	if newCR != b.castlingRights {
		b.zobristKey ^= zobristCastle[b.castlingRights] ^ zobristCastle[newCR]
		b.castlingRights = newCR
	}
}

// UnmakeMove restores the position prior to MakeMove. The scalar state and
// Zobrist key come straight from the saved MoveState, so it is exact.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	b.sideToMove = b.sideToMove.Other()
	mover := b.sideToMove

	from := m.From()
	to := m.To()

	// Put the moved piece back, undoing any promotion.
	b.removePiece(to)
	b.addPiece(from, m.MovedPiece())

	if m.Flags() == FlagCastle {
		rookFrom, rookTo := castleRookSquares(to)
		b.addPiece(rookFrom, b.removePiece(rookTo))
	}

	if st.captured != NoPiece {
		capSq := to
		if m.Flags() == FlagEnPassant {
			capSq = to - 8
			if mover == Black {
				capSq = to + 8
			}
		}
		b.addPiece(capSq, st.captured)
	}

	b.castlingRights = st.prevCastling
	b.enPassantSquare = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.zobristKey = st.prevZobrist
}
