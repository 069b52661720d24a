package chessmg

import (
	"math/bits"
	"testing"
)

func emptyBoard(t *testing.T) *Board {
	t.Helper()
	b, err := ParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN empty: %v", err)
	}
	return b
}

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestKnightAttackCounts(t *testing.T) {
	Init()
	valid := map[int]bool{2: true, 3: true, 4: true, 6: true, 8: true}
	for sq := Square(0); sq < 64; sq++ {
		n := bits.OnesCount64(KnightAttacks(sq))
		if !valid[n] {
			t.Errorf("knight on %s attacks %d squares", SquareName(sq), n)
		}
		edgeDist := min(min(sq.File(), 7-sq.File()), min(sq.Rank(), 7-sq.Rank()))
		if edgeDist >= 2 && n != 8 {
			t.Errorf("interior knight on %s attacks %d squares, want 8", SquareName(sq), n)
		}
	}
	for _, corner := range []string{"a1", "h1", "a8", "h8"} {
		if n := bits.OnesCount64(KnightAttacks(sqOf(corner))); n != 2 {
			t.Errorf("corner knight on %s attacks %d squares, want 2", corner, n)
		}
	}
}

func TestKingAttackCounts(t *testing.T) {
	Init()
	for sq := Square(0); sq < 64; sq++ {
		n := bits.OnesCount64(KingAttacks(sq))
		onFileEdge := sq.File() == 0 || sq.File() == 7
		onRankEdge := sq.Rank() == 0 || sq.Rank() == 7
		want := 8
		switch {
		case onFileEdge && onRankEdge:
			want = 3
		case onFileEdge || onRankEdge:
			want = 5
		}
		if n != want {
			t.Errorf("king on %s attacks %d squares, want %d", SquareName(sq), n, want)
		}
	}
}

func TestPawnAttackSymmetry(t *testing.T) {
	Init()
	for sq := Square(0); sq < 64; sq++ {
		// White's attack set at sq is Black's at the vertically mirrored
		// square, mirrored back.
		white := PawnAttacks(White, sq)
		mirrored := bits.ReverseBytes64(PawnAttacks(Black, sq^56))
		if white != mirrored {
			t.Errorf("pawn attack mirror mismatch at %s: %#x vs %#x",
				SquareName(sq), white, mirrored)
		}
		// Off the last rank a white pawn always attacks something, and
		// likewise for black off the first rank.
		if sq.Rank() < 7 && white == 0 {
			t.Errorf("white pawn on %s attacks nothing", SquareName(sq))
		}
		if sq.Rank() > 0 && PawnAttacks(Black, sq) == 0 {
			t.Errorf("black pawn on %s attacks nothing", SquareName(sq))
		}
	}
}

func TestPawnAttackEdges(t *testing.T) {
	Init()
	if got := PawnAttacks(White, sqOf("a2")); got != bb(sqOf("b3")) {
		t.Fatalf("white pawn a2: got %#x, want b3 only", got)
	}
	if got := PawnAttacks(White, sqOf("h2")); got != bb(sqOf("g3")) {
		t.Fatalf("white pawn h2: got %#x, want g3 only", got)
	}
	if got := PawnAttacks(Black, sqOf("a7")); got != bb(sqOf("b6")) {
		t.Fatalf("black pawn a7: got %#x, want b6 only", got)
	}
	if got := PawnAttacks(White, sqOf("e4")); got != bb(sqOf("d5"))|bb(sqOf("f5")) {
		t.Fatalf("white pawn e4: got %#x, want d5|f5", got)
	}
}

func TestInitIdempotent(t *testing.T) {
	Init()
	knightBefore := knightAttackTable
	kingBefore := kingAttackTable
	pawnBefore := pawnAttackTable
	rookD4 := RookAttacks(sqOf("d4"), 0)
	Init()
	if knightAttackTable != knightBefore || kingAttackTable != kingBefore || pawnAttackTable != pawnBefore {
		t.Fatal("leaper tables changed after repeated Init")
	}
	if RookAttacks(sqOf("d4"), 0) != rookD4 {
		t.Fatal("slider tables changed after repeated Init")
	}
}

func TestAllAttacksSingleRook(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sqOf("d4"), WhiteRook)
	b.SetPiece(sqOf("d7"), BlackPawn)

	got := AllAttacks(White, b.AllOccupancy(), b.Bitboards(White))
	want := RookAttacks(sqOf("d4"), b.AllOccupancy())
	if got != want {
		t.Fatalf("AllAttacks = %#x, want rook attacks %#x", got, want)
	}
	// The side with only a pawn contributes just its pawn attacks, and a
	// missing king is tolerated.
	if got := AllAttacks(Black, b.AllOccupancy(), b.Bitboards(Black)); got != PawnAttacks(Black, sqOf("d7")) {
		t.Fatalf("black AllAttacks = %#x", got)
	}
}

func TestAllAttacksEmptySide(t *testing.T) {
	b := emptyBoard(t)
	if got := AllAttacks(White, 0, b.Bitboards(White)); got != 0 {
		t.Fatalf("no pieces must attack nothing, got %#x", got)
	}
}

func TestIsSquareAttackedRookFiles(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sqOf("e1"), WhiteKing)
	b.SetPiece(sqOf("e8"), BlackRook)
	if !b.InCheck(White) {
		t.Fatal("expected White in check from rook on file")
	}
	if !b.IsSquareAttacked(sqOf("e1"), Black) {
		t.Fatal("expected e1 attacked by Black")
	}
	b.SetPiece(sqOf("e3"), WhitePawn)
	if b.IsSquareAttacked(sqOf("e1"), Black) {
		t.Fatal("did not expect e1 attacked after blocker added")
	}
}

func TestIsSquareAttackedBishopDiagonals(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sqOf("e1"), WhiteKing)
	b.SetPiece(sqOf("b4"), BlackBishop)
	if !b.IsSquareAttacked(sqOf("e1"), Black) || !b.InCheck(White) {
		t.Fatal("expected e1 attacked by bishop along diagonal")
	}
	b.SetPiece(sqOf("d2"), WhitePawn)
	if b.IsSquareAttacked(sqOf("e1"), Black) {
		t.Fatal("did not expect e1 attacked after diagonal blocker")
	}
}

func TestIsSquareAttackedLeapers(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sqOf("e1"), WhiteKing)
	b.SetPiece(sqOf("e4"), WhitePawn)

	b.SetPiece(sqOf("d5"), BlackPawn)
	if !b.IsSquareAttacked(sqOf("e4"), Black) {
		t.Fatal("expected e4 attacked by black pawn from d5")
	}
	b.SetPiece(sqOf("f3"), BlackKnight)
	if !b.IsSquareAttacked(sqOf("e1"), Black) {
		t.Fatal("expected e1 attacked by black knight from f3")
	}
	b.SetPiece(sqOf("d2"), BlackKing)
	if !b.IsSquareAttacked(sqOf("e1"), Black) {
		t.Fatal("expected e1 attacked by adjacent black king")
	}
}

func TestAttackersTo(t *testing.T) {
	b := mustFEN(t, "8/8/8/3q4/8/8/3R4/3K4 w - - 0 1")
	attackers := b.AttackersTo(sqOf("d5"), White, b.AllOccupancy())
	if attackers != bb(sqOf("d2")) {
		t.Fatalf("attackers of d5 = %#x, want the d2 rook", attackers)
	}
	// Remove the queen; the rook's ray now runs through d5 unblocked.
	b.ClearSquare(sqOf("d5"))
	if b.AttackersTo(sqOf("d8"), White, b.AllOccupancy()) != bb(sqOf("d2")) {
		t.Fatal("rook should attack d8 once the queen is gone")
	}
}
