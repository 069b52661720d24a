package chessmg

import "testing"

func moveStrings(moves []Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}

func TestStartposMoveCount(t *testing.T) {
	b := mustFEN(t, FENStartPos)
	legal := b.GenerateMoves()
	if len(legal) != 20 {
		t.Fatalf("startpos: %d legal moves, want 20", len(legal))
	}
	set := moveStrings(legal)
	for _, want := range []string{"e2e4", "e2e3", "g1f3", "b1a3", "h2h4"} {
		if !set[want] {
			t.Errorf("startpos: missing %s", want)
		}
	}
	if set["e1e2"] || set["d1d2"] {
		t.Error("startpos: king or queen cannot move through own pawns")
	}
}

func TestEnPassantGenerated(t *testing.T) {
	b := mustFEN(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	set := moveStrings(b.GenerateMoves())
	if !set["e5d6"] {
		t.Fatal("en passant e5d6 not generated")
	}
	m, err := b.FindMove("e5d6")
	if err != nil {
		t.Fatal(err)
	}
	if m.Flags() != FlagEnPassant || !m.IsCapture() {
		t.Fatal("en passant move missing flag or capture payload")
	}
	ok, st := b.MakeMove(m)
	if !ok {
		t.Fatal("en passant rejected")
	}
	if b.PieceAt(sqOf("d5")) != NoPiece {
		t.Fatal("en passant victim not removed from d5")
	}
	b.UnmakeMove(m, st)
	if b.PieceAt(sqOf("d5")) != BlackPawn {
		t.Fatal("en passant victim not restored")
	}
}

func TestEnPassantPinned(t *testing.T) {
	// Capturing en passant would expose the king along the fifth rank.
	b := mustFEN(t, "8/8/8/K2pP2q/8/8/8/7k w - d6 0 2")
	if set := moveStrings(b.GenerateMoves()); set["e5d6"] {
		t.Fatal("en passant must be rejected when it exposes the king")
	}
}

func TestPromotionsGenerated(t *testing.T) {
	b := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	set := moveStrings(b.GenerateMoves())
	for _, want := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		if !set[want] {
			t.Errorf("missing promotion %s", want)
		}
	}
	if set["a7a8"] {
		t.Error("bare pawn push to last rank generated without promotion piece")
	}
	m, err := b.FindMove("a7a8n")
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := b.MakeMove(m); !ok {
		t.Fatal("underpromotion rejected")
	}
	if b.PieceAt(sqOf("a8")) != WhiteKnight {
		t.Fatalf("a8 holds %v after a7a8n", b.PieceAt(sqOf("a8")))
	}
}

func TestCastlingGeneration(t *testing.T) {
	both := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	b := mustFEN(t, both)
	set := moveStrings(b.GenerateMoves())
	if !set["e1g1"] || !set["e1c1"] {
		t.Fatal("white castles missing with clear paths and full rights")
	}

	// No rights: same position, rights stripped.
	b = mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1")
	set = moveStrings(b.GenerateMoves())
	if set["e1g1"] || set["e1c1"] {
		t.Fatal("castle generated without rights")
	}

	// Blocked path.
	b = mustFEN(t, "r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1")
	set = moveStrings(b.GenerateMoves())
	if set["e1c1"] {
		t.Fatal("queenside castle generated through own queen")
	}
	if !set["e1g1"] {
		t.Fatal("kingside castle should be unaffected by d1 blocker")
	}

	// King in check.
	b = mustFEN(t, "r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1")
	set = moveStrings(b.GenerateMoves())
	if set["e1g1"] || set["e1c1"] {
		t.Fatal("castle generated while in check")
	}

	// Crossed square attacked: rook on f-file bars kingside only.
	b = mustFEN(t, "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1")
	set = moveStrings(b.GenerateMoves())
	if set["e1g1"] {
		t.Fatal("kingside castle generated across an attacked square")
	}
	if !set["e1c1"] {
		t.Fatal("queenside castle should remain available")
	}

	// b1 attacked is fine for queenside: the king never crosses b1.
	b = mustFEN(t, "r3k2r/8/8/8/8/1r6/8/R3K2R w KQkq - 0 1")
	if set := moveStrings(b.GenerateMoves()); !set["e1c1"] {
		t.Fatal("queenside castle must ignore an attack on b1")
	}
}

func TestCastleMovesRook(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	m, err := b.FindMove("e8c8")
	if err != nil {
		t.Fatal(err)
	}
	ok, st := b.MakeMove(m)
	if !ok {
		t.Fatal("black queenside castle rejected")
	}
	if b.PieceAt(sqOf("c8")) != BlackKing || b.PieceAt(sqOf("d8")) != BlackRook {
		t.Fatalf("after e8c8: c8=%v d8=%v", b.PieceAt(sqOf("c8")), b.PieceAt(sqOf("d8")))
	}
	if b.PieceAt(sqOf("a8")) != NoPiece {
		t.Fatal("rook left on a8 after castling")
	}
	if b.CastlingRightsMask()&(CastleBlackKing|CastleBlackQueen) != 0 {
		t.Fatal("black castling rights not cleared")
	}
	b.UnmakeMove(m, st)
	if b.PieceAt(sqOf("a8")) != BlackRook || b.PieceAt(sqOf("e8")) != BlackKing {
		t.Fatal("castle not unmade cleanly")
	}
}

func TestRookCaptureClearsOpponentRight(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := b.FindMove("a1a8")
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := b.MakeMove(m); !ok {
		t.Fatal("rook capture rejected")
	}
	rights := b.CastlingRightsMask()
	if rights&CastleBlackQueen != 0 {
		t.Fatal("capturing the a8 rook must clear black's queenside right")
	}
	if rights&CastleWhiteQueen != 0 {
		t.Fatal("moving the a1 rook must clear white's queenside right")
	}
	if rights&(CastleWhiteKing|CastleBlackKing) == 0 {
		t.Fatal("kingside rights should survive")
	}
}

func TestPinnedPieceFiltered(t *testing.T) {
	// The e-file knight is pinned against the king by the rook.
	b := mustFEN(t, "4r2k/8/8/8/8/4N3/8/4K3 w - - 0 1")
	set := moveStrings(b.GenerateMoves())
	for s := range set {
		if s[:2] == "e3" {
			t.Fatalf("pinned knight move %s generated as legal", s)
		}
	}
	pseudo := moveStrings(b.GeneratePseudoMoves())
	if !pseudo["e3d5"] {
		t.Fatal("pseudo-legal generation should still include pinned knight moves")
	}
}

func TestGenerateCaptures(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	captures := b.GenerateCapturesInto(nil)
	if len(captures) == 0 {
		t.Fatal("kiwipete has captures")
	}
	all := moveStrings(b.GenerateMoves())
	for _, m := range captures {
		if !m.IsCapture() {
			t.Fatalf("%s in capture list without a captured piece", m)
		}
		if !all[m.String()] {
			t.Fatalf("capture %s not in the full legal list", m)
		}
	}
	if !moveStrings(captures)["d5e6"] {
		t.Error("pawn capture d5e6 missing from capture list")
	}
}

func TestFindMoveErrors(t *testing.T) {
	b := mustFEN(t, FENStartPos)
	for _, bad := range []string{"", "e2", "e2e5", "e9e4", "e2e4x", "a7a8q"} {
		if _, err := b.FindMove(bad); err == nil {
			t.Errorf("FindMove(%q): expected error", bad)
		}
	}
	if m, err := b.FindMove(" E2E4 "); err != nil || m.String() != "e2e4" {
		t.Errorf("FindMove should normalize case and whitespace, got %v, %v", m, err)
	}
}
