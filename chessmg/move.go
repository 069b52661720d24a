package chessmg

import (
	"errors"
	"strings"
)

// Move packs a chess move into 32 bits: from and to squares, the moved and
// captured piece codes, the promotion piece and special-move flags.
type Move uint32

const (
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Special move flags.
const (
	FlagNone uint8 = iota
	FlagCastle
	FlagEnPassant
)

// NewMove builds a Move from its components. Promotion is signalled by a
// non-zero promotion piece, not a flag.
func NewMove(from, to Square, moved, captured, promotion Piece, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		uint32(to&0x3F)<<moveToShift |
		uint32(moved&0xF)<<movePieceShift |
		uint32(captured&0xF)<<moveCaptureShift |
		uint32(promotion&0xF)<<movePromoteShift |
		uint32(flag&0x3)<<moveFlagShift)
}

// From returns the source square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square(m >> moveToShift & 0x3F) }

// MovedPiece returns the piece being moved.
func (m Move) MovedPiece() Piece { return Piece(m >> movePieceShift & 0xF) }

// CapturedPiece returns the captured piece, or NoPiece.
func (m Move) CapturedPiece() Piece { return Piece(m >> moveCaptureShift & 0xF) }

// PromotionPiece returns the promotion piece, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece(m >> movePromoteShift & 0xF) }

// Flags returns the special move flags.
func (m Move) Flags() uint8 { return uint8(m >> moveFlagShift & 0x3) }

// IsCapture reports whether the move captures, including en passant.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := SquareName(m.From()) + SquareName(m.To())
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += strings.ToLower(string(charFromPiece(promo)))
	}
	return s
}

// SquareName returns the algebraic name of a square, e.g. "e4".
func SquareName(sq Square) string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic square name into a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return NoSquare, errors.New("invalid square " + quote(name))
	}
	return Square(int(name[1]-'1')*8 + int(name[0]-'a')), nil
}

func quote(s string) string {
	return `"` + s + `"`
}

// FindMove resolves a coordinate-notation string ("e2e4", "e7e8q") against
// the legal moves of the position, so the returned Move carries the full
// moved/captured/flag payload. Returns an error when the string does not
// name a legal move.
func (b *Board) FindMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return 0, errors.New("invalid move " + quote(s))
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, err
	}
	var promo PieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return 0, errors.New("invalid promotion piece")
		}
	}
	for _, m := range b.GenerateMoves() {
		if m.From() == from && m.To() == to && m.PromotionPiece().Type() == promo {
			return m, nil
		}
	}
	return 0, errors.New("no legal move " + quote(s))
}
