package chessmg

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string of the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return NoPiece
}

func charFromPiece(p Piece) rune {
	const white = " PNBRQK"
	const black = " pnbrqk"
	if p.Color() == Black {
		return rune(black[p.Type()])
	}
	return rune(white[p.Type()])
}

// ParseFEN parses a FEN string into a new Board. The first four fields are
// required; the clocks default to 0 and 1 when absent.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := NewBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			b.addPiece(Square(rank*8+file), p)
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castlingRights |= CastleWhiteKing
			case 'Q':
				b.castlingRights |= CastleWhiteQueen
			case 'k':
				b.castlingRights |= CastleBlackKing
			case 'q':
				b.castlingRights |= CastleBlackQueen
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: bad en passant square")
		}
		b.enPassantSquare = ep
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		b.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		b.fullmoveNumber = n
	}

	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

// ToFEN serialises the current position as a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.mailbox[rank*8+file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.enPassantSquare != NoSquare {
		sb.WriteString(SquareName(b.enPassantSquare))
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
