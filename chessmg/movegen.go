package chessmg

// Move generation produces pseudo-legal moves: piece rules, blockers and
// castling path/attack conditions are enforced here, while "does this leave
// my king attacked" is left to the MakeMove legality gate. GenerateMoves
// runs that gate for callers that want only legal moves.

// GeneratePseudoMoves returns the pseudo-legal moves in a new slice.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.GeneratePseudoMovesInto(make([]Move, 0, 128))
}

// GeneratePseudoMovesInto appends the pseudo-legal moves for the side to
// move into dst (truncated first) and returns it.
func (b *Board) GeneratePseudoMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := b.sideToMove
	ownOcc := b.occupancy[us]
	oppOcc := b.occupancy[us.Other()]
	allOcc := ownOcc | oppOcc

	moves = b.pawnMoves(moves, allOcc, oppOcc)

	for n := b.pieceBB[us][Knight]; n != 0; {
		from := Square(popLSB(&n))
		moves = b.pieceMoves(moves, from, KnightAttacks(from)&^ownOcc)
	}
	for d := b.pieceBB[us][Bishop]; d != 0; {
		from := Square(popLSB(&d))
		moves = b.pieceMoves(moves, from, BishopAttacks(from, allOcc)&^ownOcc)
	}
	for r := b.pieceBB[us][Rook]; r != 0; {
		from := Square(popLSB(&r))
		moves = b.pieceMoves(moves, from, RookAttacks(from, allOcc)&^ownOcc)
	}
	for q := b.pieceBB[us][Queen]; q != 0; {
		from := Square(popLSB(&q))
		moves = b.pieceMoves(moves, from, QueenAttacks(from, allOcc)&^ownOcc)
	}
	if ksq := b.KingSquare(us); ksq != NoSquare {
		moves = b.pieceMoves(moves, ksq, KingAttacks(ksq)&^ownOcc)
		moves = b.castleMoves(moves)
	}
	return moves
}

// pieceMoves appends one move per target square for a non-pawn piece.
func (b *Board) pieceMoves(moves []Move, from Square, targets uint64) []Move {
	moved := b.mailbox[from]
	for targets != 0 {
		to := Square(popLSB(&targets))
		moves = append(moves, NewMove(from, to, moved, b.mailbox[to], NoPiece, FlagNone))
	}
	return moves
}

// pawnMoves appends pushes, double pushes, captures, promotions and en
// passant for the side to move. White pushes toward higher indices, Black
// toward lower; everything else is shared.
func (b *Board) pawnMoves(moves []Move, allOcc, oppOcc uint64) []Move {
	us := b.sideToMove
	push := Square(8)
	startRank, promoRank := 1, 7
	if us == Black {
		push = -8
		startRank, promoRank = 6, 0
	}

	for pawns := b.pieceBB[us][Pawn]; pawns != 0; {
		from := Square(popLSB(&pawns))
		moved := b.mailbox[from]

		one := from + push
		if one >= 0 && one < 64 && allOcc&bb(one) == 0 {
			if one.Rank() == promoRank {
				moves = b.promotions(moves, from, one, moved, NoPiece)
			} else {
				moves = append(moves, NewMove(from, one, moved, NoPiece, NoPiece, FlagNone))
				if from.Rank() == startRank {
					two := one + push
					if allOcc&bb(two) == 0 {
						moves = append(moves, NewMove(from, two, moved, NoPiece, NoPiece, FlagNone))
					}
				}
			}
		}

		attacks := pawnAttackTable[us][from]
		for caps := attacks & oppOcc; caps != 0; {
			to := Square(popLSB(&caps))
			if to.Rank() == promoRank {
				moves = b.promotions(moves, from, to, moved, b.mailbox[to])
			} else {
				moves = append(moves, NewMove(from, to, moved, b.mailbox[to], NoPiece, FlagNone))
			}
		}

		if b.enPassantSquare != NoSquare && attacks&bb(b.enPassantSquare) != 0 {
			victim := MakePiece(us.Other(), Pawn)
			moves = append(moves, NewMove(from, b.enPassantSquare, moved, victim, NoPiece, FlagEnPassant))
		}
	}
	return moves
}

func (b *Board) promotions(moves []Move, from, to Square, moved, captured Piece) []Move {
	us := b.sideToMove
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		moves = append(moves, NewMove(from, to, moved, captured, MakePiece(us, pt), FlagNone))
	}
	return moves
}

// castleMoves appends castle moves when rights remain, the path is empty and
// neither the king's square nor the squares it crosses are attacked. The
// attack conditions make generated castles fully legal; the MakeMove gate
// re-checks only the destination.
func (b *Board) castleMoves(moves []Move) []Move {
	us := b.sideToMove
	them := us.Other()

	type castle struct {
		right     CastlingRights
		kingFrom  Square
		kingTo    Square
		rookHome  Square
		emptyPath uint64
		safeCross Square // square the king crosses, must not be attacked
	}
	var candidates [2]castle
	if us == White {
		candidates = [2]castle{
			{CastleWhiteKing, 4, 6, 7, bb(5) | bb(6), 5},
			{CastleWhiteQueen, 4, 2, 0, bb(1) | bb(2) | bb(3), 3},
		}
	} else {
		candidates = [2]castle{
			{CastleBlackKing, 60, 62, 63, bb(61) | bb(62), 61},
			{CastleBlackQueen, 60, 58, 56, bb(57) | bb(58) | bb(59), 59},
		}
	}

	allOcc := b.AllOccupancy()
	for _, c := range candidates {
		if b.castlingRights&c.right == 0 {
			continue
		}
		if allOcc&c.emptyPath != 0 || b.mailbox[c.rookHome] != MakePiece(us, Rook) {
			continue
		}
		if b.IsSquareAttacked(c.kingFrom, them) || b.IsSquareAttacked(c.safeCross, them) {
			continue
		}
		king := MakePiece(us, King)
		moves = append(moves, NewMove(c.kingFrom, c.kingTo, king, NoPiece, NoPiece, FlagCastle))
	}
	return moves
}

// GenerateMoves returns the legal moves in a new slice.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesInto(make([]Move, 0, 128))
}

// GenerateMovesInto appends the legal moves for the side to move into dst,
// filtering pseudo-legal moves through make/unmake.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	pseudo := b.GeneratePseudoMovesInto(dst)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateCapturesInto appends the legal capturing moves (including en
// passant and capture promotions) into dst.
func (b *Board) GenerateCapturesInto(dst []Move) []Move {
	all := b.GenerateMovesInto(dst)
	captures := all[:0]
	for _, m := range all {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}
