package shuuro

import "fmt"

// Phase is the game state machine: Shop -> Deploy -> Play -> Finished.
// No transition skips a state and Finished is terminal.
type Phase uint8

const (
	PhaseShop Phase = iota
	PhaseDeploy
	PhasePlay
	PhaseFinished
)

func (ph Phase) String() string {
	switch ph {
	case PhaseShop:
		return "shop"
	case PhaseDeploy:
		return "deploy"
	case PhasePlay:
		return "play"
	}
	return "finished"
}

// Outcome is the terminal result of a finished game.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeRedWins
	OutcomeBlueWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedWins:
		return "red wins"
	case OutcomeBlueWins:
		return "blue wins"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}

// sliderTypes are the piece kinds that deliver line checks a placement or a
// blocker can interpose against.
var sliderTypes = [...]PieceType{Queen, Rook, Bishop, Chancellor, ArchBishop, Lance}

// moveState holds what UnmakeMove needs to restore one play-phase move.
type moveState struct {
	move        NormalMove
	moved       Piece
	captured    Piece
	recaptured  bool
	prevSide    Color
	prevPly     int
	prevPhase   Phase
	prevOutcome Outcome
}

// Position aggregates board, hands, shop and turn state for one game and
// owns the phase state machine. A Position is single-threaded; instances
// are independent and share nothing but the immutable attack tables.
type Position struct {
	variant Variant
	g       *Geometry
	at      *AttackTable
	board   *Board
	hand    Hand
	shop    *Shop

	phase      Phase
	sideToMove Color
	ply        int
	outcome    Outcome

	history []uint64
	undo    []moveState
}

// NewPosition starts a fresh game of the given variant in the Shop phase.
// The Standard variant has no economy and starts directly in Deploy.
func NewPosition(v Variant) *Position {
	p := &Position{
		variant:    v,
		g:          v.Geometry(),
		at:         Tables(v.Geometry()),
		board:      NewBoard(v.Geometry()),
		phase:      PhaseShop,
		sideToMove: Red,
		ply:        1,
	}
	if v == Standard {
		p.phase = PhaseDeploy
	} else {
		p.shop = NewShop(v)
	}
	return p
}

// Variant returns the rule set the position is played under.
func (p *Position) Variant() Variant { return p.variant }

// Geometry returns the board geometry.
func (p *Position) Geometry() *Geometry { return p.g }

// Board exposes the underlying board (read-only use expected).
func (p *Position) Board() *Board { return p.board }

// Hand returns a copy of the off-board piece counts.
func (p *Position) Hand() Hand { return p.hand }

// Shop returns the shop, or nil once the variant has none.
func (p *Position) Shop() *Shop { return p.shop }

// Phase returns the current phase.
func (p *Position) Phase() Phase { return p.phase }

// Outcome returns the terminal result, or OutcomeNone while running.
func (p *Position) Outcome() Outcome { return p.outcome }

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Ply returns the move counter; starts at 1 and grows by one per half-move.
func (p *Position) Ply() int { return p.ply }

// ==========================================================================
// Shop phase
// ==========================================================================

// PlayShop forwards a BuyMove or SelectMove to the shop.
func (p *Position) PlayShop(m Move) error {
	if p.phase != PhaseShop {
		return ErrWrongPhase
	}
	return p.shop.Play(m)
}

// EndShop closes both shops, grants the kings, copies the bought armies
// into the deploy hands and advances to the Deploy phase.
func (p *Position) EndShop() error {
	if p.phase != PhaseShop {
		return ErrWrongPhase
	}
	p.shop.close(Red)
	p.shop.close(Blue)
	p.hand = p.shop.Hand()
	p.phase = PhaseDeploy
	p.sideToMove = Red
	p.ply = 1
	return nil
}

// SetHand loads hand pieces directly from a letter string, bypassing the
// shop. Valid while deploying (or to skip the shop entirely).
func (p *Position) SetHand(s string) {
	if p.phase == PhaseShop {
		p.phase = PhaseDeploy
	}
	p.hand.SetFromSFEN(s)
}

// GeneratePlinths rolls the variant's plinth squares onto the board. Only
// meaningful before placement starts; never called implicitly.
func (p *Position) GeneratePlinths() {
	p.board.SetPlinths(generatePlinths(p.g, p.variant.PlinthCount()))
}

// ==========================================================================
// Deploy phase
// ==========================================================================

// kingSquares is the deploy region for kings: the middle files of the home
// rank (d1..i1 on 12x12, b1..g1 on 8x8, mirrored for Blue).
func (p *Position) kingSquares(c Color) Bitboard {
	lo, hi := 3, 8
	if p.g.Files == 8 {
		lo, hi = 1, 6
	}
	rank := 0
	if c == Blue {
		rank = p.g.Ranks - 1
	}
	var bb Bitboard
	for f := lo; f <= hi; f++ {
		bb = bb.Set(p.g.SquareAt(f, rank))
	}
	return bb
}

// deployRanks lists the color's three home ranks, nearest first. The 8x8
// geometry keeps the same three-rank zone.
func (p *Position) deployRanks(c Color) [3]int {
	if c == Red {
		return [3]int{0, 1, 2}
	}
	return [3]int{p.g.Ranks - 1, p.g.Ranks - 2, p.g.Ranks - 3}
}

// checkBlocks returns the squares a placement may still use while an enemy
// slider already attacks the placed king: the attack line restricted to the
// interior home ranks. Empty when the king is safe or absent.
func (p *Position) checkBlocks(c Color) Bitboard {
	ksq := p.board.KingSquare(c)
	if ksq == NoSquare {
		return Bitboard{}
	}
	interior := p.g.RankBB(1).Or(p.g.RankBB(2))
	if c == Blue {
		interior = p.g.RankBB(p.g.Ranks - 2).Or(p.g.RankBB(p.g.Ranks - 3))
	}
	occ := p.board.Occupied()
	for _, pt := range sliderTypes {
		bb := p.board.Type(pt).And(p.board.Player(c.Flip()))
		for sq, ok := bb.Pop(); ok; sq, ok = bb.Pop() {
			att := p.at.Attacks(p.board.PieceAt(sq), sq, occ)
			if att.IsSet(ksq) {
				return att.And(interior).Clear(ksq)
			}
		}
	}
	return Bitboard{}
}

// EmptySquares returns where the piece may currently be placed. Kings are
// limited to their reserved squares; other pieces fill the nearest home
// rank that still has room. Pawns never stand on plinths and are placed
// only after the rest of the hand; knights may take plinth squares.
func (p *Position) EmptySquares(pc Piece) Bitboard {
	if blocks := p.checkBlocks(pc.Color); blocks.Any() {
		return blocks.AndNot(p.board.Occupied())
	}
	occ := p.board.Occupied()
	if pc.Type == King {
		return p.kingSquares(pc.Color).AndNot(occ).AndNot(p.board.Plinths())
	}
	for _, rank := range p.deployRanks(pc.Color) {
		bb := p.g.RankBB(rank).AndNot(occ)
		if bb.IsEmpty() {
			continue
		}
		switch pc.Type {
		case Knight:
			return bb
		case Pawn:
			bb = bb.AndNot(p.board.Plinths())
			if bb.IsEmpty() {
				continue
			}
			if !p.hand.IsEmpty(pc.Color, Pawn) {
				return Bitboard{}
			}
			return bb
		default:
			bb = bb.AndNot(p.board.Plinths())
			if bb.IsEmpty() {
				continue
			}
			return bb
		}
	}
	return Bitboard{}
}

// Place puts one hand piece on the board. When the final piece lands and
// both hands are empty the position verifies one king per color and enters
// the Play phase; a missing king fails with ErrMissingKing and keeps the
// position in Deploy.
func (p *Position) Place(pc Piece, sq Square) error {
	if p.phase != PhaseDeploy {
		return ErrWrongPhase
	}
	if pc.Color != Red && pc.Color != Blue {
		return fmt.Errorf("%w: piece without color", ErrPieceNotInHand)
	}
	if !p.g.Valid(sq) {
		return fmt.Errorf("%w: square %d", ErrInvalidSquareLabel, int(sq))
	}
	if p.hand.Get(pc) == 0 {
		return fmt.Errorf("%w: %s", ErrPieceNotInHand, pc.SFEN())
	}
	if !p.board.PieceAt(sq).IsEmpty() {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, p.g.SquareLabel(sq))
	}
	if !p.EmptySquares(pc).IsSet(sq) {
		return fmt.Errorf("%w: %s at %s", ErrInvalidDeployZone, pc.SFEN(), p.g.SquareLabel(sq))
	}
	p.board.SetPiece(sq, pc)
	p.hand.Dec(pc)
	if !p.hand.IsEmpty(pc.Color.Flip(), NoPieceType) {
		p.sideToMove = pc.Color.Flip()
	} else {
		p.sideToMove = pc.Color
	}
	if p.hand.IsEmpty(Red, NoPieceType) && p.hand.IsEmpty(Blue, NoPieceType) {
		return p.enterPlay()
	}
	return nil
}

// enterPlay validates end-of-deploy invariants and flips the phase.
func (p *Position) enterPlay() error {
	if p.board.KingSquare(Red) == NoSquare || p.board.KingSquare(Blue) == NoSquare {
		return ErrMissingKing
	}
	if p.board.Type(King).And(p.board.Player(Red)).Count() != 1 ||
		p.board.Type(King).And(p.board.Player(Blue)).Count() != 1 {
		return ErrMissingKing
	}
	p.phase = PhasePlay
	p.sideToMove = Red
	p.history = append(p.history[:0], computeZobrist(p.board, p.sideToMove))
	return nil
}

// ==========================================================================
// Play phase
// ==========================================================================

// promotionZone reports whether sq lies on the color's promotion rank (the
// far edge of the board).
func (p *Position) promotionZone(c Color, sq Square) bool {
	if c == Red {
		return p.g.RankOf(sq) == p.g.Ranks-1
	}
	return p.g.RankOf(sq) == 0
}

// MoveCandidates returns the pseudo-legal destinations for the piece on
// from: its attack set minus own occupancy, with the pawn's quiet step
// added and plinth squares barred for everything but knights.
func (p *Position) MoveCandidates(pc Piece, from Square) Bitboard {
	occ := p.board.Occupied()
	var att Bitboard
	if pc.Type == Pawn && !pc.Promoted {
		att = p.at.Attacks(pc, from, occ).And(p.board.Player(pc.Color.Flip()))
		att = att.Or(p.at.PawnMoves(pc.Color, from).AndNot(occ))
	} else {
		att = p.at.Attacks(pc, from, occ).AndNot(p.board.Player(pc.Color))
	}
	if pc.Type != Knight {
		att = att.AndNot(p.board.Plinths())
	}
	return att
}

// isAttacked reports whether any piece of color by attacks sq.
func (p *Position) isAttacked(sq Square, by Color) bool {
	occ := p.board.Occupied()
	bb := p.board.Player(by)
	for s, ok := bb.Pop(); ok; s, ok = bb.Pop() {
		if p.at.Attacks(p.board.PieceAt(s), s, occ).IsSet(sq) {
			return true
		}
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	ksq := p.board.KingSquare(c)
	return ksq != NoSquare && p.isAttacked(ksq, c.Flip())
}

// safeAfter tests king safety after moving pc from->to, leaving the board
// unchanged. Promotion never changes the verdict: the mover's own pattern
// cannot attack its own king.
func (p *Position) safeAfter(pc Piece, from, to Square) bool {
	captured := p.board.PieceAt(to)
	p.board.Remove(from)
	p.board.SetPiece(to, pc)
	safe := !p.InCheck(pc.Color)
	p.board.Remove(to)
	p.board.SetPiece(from, pc)
	if !captured.IsEmpty() {
		p.board.SetPiece(to, captured)
	}
	return safe
}

// LegalMoves enumerates every legal play-phase move for c.
func (p *Position) LegalMoves(c Color) []NormalMove {
	var moves []NormalMove
	bb := p.board.Player(c)
	for from, ok := bb.Pop(); ok; from, ok = bb.Pop() {
		pc := p.board.PieceAt(from)
		cands := p.MoveCandidates(pc, from)
		for to, ok2 := cands.Pop(); ok2; to, ok2 = cands.Pop() {
			if p.safeAfter(pc, from, to) {
				moves = append(moves, NormalMove{From: from, To: to})
			}
		}
	}
	return moves
}

// MakeMove applies one play-phase move under the full legality contract.
// On any failure the position is left untouched.
func (p *Position) MakeMove(m NormalMove) error {
	if p.phase != PhasePlay {
		return ErrWrongPhase
	}
	if !p.g.Valid(m.From) {
		return fmt.Errorf("%w: square %d", ErrNoPieceAtSource, int(m.From))
	}
	if !p.g.Valid(m.To) {
		return fmt.Errorf("%w: square %d", ErrIllegalDestination, int(m.To))
	}
	pc := p.board.PieceAt(m.From)
	if pc.IsEmpty() || pc.Color != p.sideToMove {
		return fmt.Errorf("%w: %s", ErrNoPieceAtSource, p.g.SquareLabel(m.From))
	}
	if !p.MoveCandidates(pc, m.From).IsSet(m.To) {
		return fmt.Errorf("%w: %s", ErrIllegalDestination, m.Format(p.g))
	}
	if m.Promote {
		if !pc.Type.Promotable() || pc.Promoted ||
			!(p.promotionZone(pc.Color, m.From) || p.promotionZone(pc.Color, m.To)) {
			return fmt.Errorf("%w: %s", ErrPromotionNotAllowed, m.Format(p.g))
		}
	}
	if !p.safeAfter(pc, m.From, m.To) {
		return fmt.Errorf("%w: %s", ErrMovesIntoCheck, m.Format(p.g))
	}

	captured := p.board.PieceAt(m.To)
	st := moveState{
		move:        m,
		moved:       pc,
		captured:    captured,
		prevSide:    p.sideToMove,
		prevPly:     p.ply,
		prevPhase:   p.phase,
		prevOutcome: p.outcome,
	}

	p.board.Remove(m.From)
	placed := pc
	if m.Promote || (pc.Type == Pawn && !pc.Promoted && p.promotionZone(pc.Color, m.To)) {
		placed.Promoted = true
	}
	p.board.SetPiece(m.To, placed)

	if !captured.IsEmpty() && p.variant.RecaptureToHand() {
		p.hand.Inc(Piece{Type: captured.Type, Color: pc.Color})
		st.recaptured = true
	}
	p.undo = append(p.undo, st)

	p.sideToMove = p.sideToMove.Flip()
	p.ply++
	p.history = append(p.history, computeZobrist(p.board, p.sideToMove))
	p.evaluateTerminal()
	return nil
}

// UnmakeMove reverts the most recent successful MakeMove. Returns false
// when there is nothing to undo.
func (p *Position) UnmakeMove() bool {
	if len(p.undo) == 0 {
		return false
	}
	st := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]

	p.board.Remove(st.move.To)
	p.board.SetPiece(st.move.From, st.moved)
	if !st.captured.IsEmpty() {
		p.board.SetPiece(st.move.To, st.captured)
	}
	if st.recaptured {
		p.hand.Dec(Piece{Type: st.captured.Type, Color: st.moved.Color})
	}
	p.sideToMove = st.prevSide
	p.ply = st.prevPly
	p.phase = st.prevPhase
	p.outcome = st.prevOutcome
	p.history = p.history[:len(p.history)-1]
	return true
}

// Play is the label-based convenience wrapper around MakeMove; identical
// semantics, pawns still auto-promote on the last rank.
func (p *Position) Play(from, to string) error {
	fsq, err := p.g.ParseSquare(from)
	if err != nil {
		return err
	}
	tsq, err := p.g.ParseSquare(to)
	if err != nil {
		return err
	}
	return p.MakeMove(NormalMove{From: fsq, To: tsq})
}

// IsCheckmate reports whether c is in check with no legal reply.
func (p *Position) IsCheckmate(c Color) bool {
	return p.InCheck(c) && len(p.LegalMoves(c)) == 0
}

// evaluateTerminal closes the game after a move: checkmate or stalemate of
// the side now to move, or a threefold repetition draw.
func (p *Position) evaluateTerminal() {
	side := p.sideToMove
	if len(p.LegalMoves(side)) == 0 {
		if p.InCheck(side) {
			if side == Red {
				p.outcome = OutcomeBlueWins
			} else {
				p.outcome = OutcomeRedWins
			}
		} else {
			p.outcome = OutcomeDraw
		}
		p.phase = PhaseFinished
		return
	}
	if p.repetitionCount() >= 3 {
		p.outcome = OutcomeDraw
		p.phase = PhaseFinished
	}
}

// repetitionCount counts how often the current position has occurred.
func (p *Position) repetitionCount() int {
	if len(p.history) == 0 {
		return 0
	}
	cur := p.history[len(p.history)-1]
	n := 0
	for _, h := range p.history {
		if h == cur {
			n++
		}
	}
	return n
}
