package shuuro

import (
	"fmt"
	"strconv"
	"strings"
)

// StartSFEN12 is the bare two-piece reference position used by tests.
const StartSFEN12 = "KR10/12/12/12/12/12/12/12/12/12/12/kr10 b - 1"

// GenerateSFEN renders the position as `<board> <side> <hand> <ply>`.
// Ranks run from rank 1 upward, separated by '/'; empty runs are decimal;
// promoted pieces carry a '+' prefix; plinths render as 'L' before their
// occupant, or "L0" when bare. The output is canonical: equal positions
// render byte-identical.
func (p *Position) GenerateSFEN() string {
	var sb strings.Builder
	for r := 0; r < p.g.Ranks; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for f := 0; f < p.g.Files; f++ {
			sq := p.g.SquareAt(f, r)
			pc := p.board.PieceAt(sq)
			plinth := p.board.Plinths().IsSet(sq)
			if pc.IsEmpty() && !plinth {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			if plinth {
				sb.WriteByte('L')
				if pc.IsEmpty() {
					sb.WriteByte('0')
					continue
				}
			}
			sb.WriteString(pc.SFEN())
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	hand := p.hand.ToSFEN(Red) + p.hand.ToSFEN(Blue)
	if hand == "" {
		hand = "-"
	}
	sb.WriteString(hand)

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.ply))
	return sb.String()
}

// ParseSFEN reconstructs a position of the given variant from notation
// text. The resulting phase is Deploy while either hand holds pieces, Play
// otherwise. All malformed input fails with ErrMalformedNotation.
func ParseSFEN(text string, v Variant) (*Position, error) {
	fields := strings.Split(strings.TrimSpace(text), " ")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedNotation, len(fields))
	}

	p := NewPosition(v)
	p.shop = nil

	if err := parseBoardField(p.board, fields[0]); err != nil {
		return nil, err
	}
	for _, c := range []Color{Red, Blue} {
		if p.board.Type(King).And(p.board.Player(c)).Count() > 1 {
			return nil, fmt.Errorf("%w: more than one %s king", ErrMalformedNotation, c)
		}
	}

	switch fields[1] {
	case "r", "w":
		p.sideToMove = Red
	case "b":
		p.sideToMove = Blue
	default:
		return nil, fmt.Errorf("%w: side %q", ErrMalformedNotation, fields[1])
	}

	if fields[2] != "-" {
		if err := parseHandField(&p.hand, fields[2]); err != nil {
			return nil, err
		}
	}

	ply, err := strconv.Atoi(fields[3])
	if err != nil || ply < 1 {
		return nil, fmt.Errorf("%w: move number %q", ErrMalformedNotation, fields[3])
	}
	p.ply = ply

	if p.hand.IsEmpty(Red, NoPieceType) && p.hand.IsEmpty(Blue, NoPieceType) &&
		p.board.KingSquare(Red) != NoSquare && p.board.KingSquare(Blue) != NoSquare {
		p.phase = PhasePlay
		p.history = append(p.history[:0], computeZobrist(p.board, p.sideToMove))
	} else {
		p.phase = PhaseDeploy
	}
	return p, nil
}

// parseBoardField fills the board from the rank-by-rank piece field.
func parseBoardField(b *Board, field string) error {
	g := b.Geometry()
	ranks := strings.Split(field, "/")
	if len(ranks) != g.Ranks {
		return fmt.Errorf("%w: want %d ranks, got %d", ErrMalformedNotation, g.Ranks, len(ranks))
	}
	for r, rankStr := range ranks {
		if rankStr == "" {
			return fmt.Errorf("%w: empty rank", ErrMalformedNotation)
		}
		file := 0
		run := 0
		plinthPending := false
		promoted := false
		flush := func() {
			file += run
			run = 0
		}
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			switch {
			case ch == 'L' && !promoted:
				flush()
				if plinthPending || file >= g.Files {
					return fmt.Errorf("%w: rank %q", ErrMalformedNotation, rankStr)
				}
				b.AddPlinth(g.SquareAt(file, r))
				plinthPending = true
			case ch >= '0' && ch <= '9':
				if plinthPending {
					// "L0": a bare plinth occupies one square.
					if ch != '0' {
						return fmt.Errorf("%w: rank %q", ErrMalformedNotation, rankStr)
					}
					plinthPending = false
					file++
					continue
				}
				if ch == '0' && run == 0 {
					return fmt.Errorf("%w: rank %q", ErrMalformedNotation, rankStr)
				}
				run = run*10 + int(ch-'0')
			case ch == '+':
				flush()
				if promoted || plinthPending {
					return fmt.Errorf("%w: rank %q", ErrMalformedNotation, rankStr)
				}
				promoted = true
			default:
				flush()
				pc := pieceFromChar(ch)
				if pc.IsEmpty() {
					return fmt.Errorf("%w: piece %q", ErrMalformedNotation, string(ch))
				}
				if promoted {
					if !pc.Type.Promotable() {
						return fmt.Errorf("%w: promoted %q", ErrMalformedNotation, string(ch))
					}
					pc.Promoted = true
					promoted = false
				}
				if plinthPending {
					// Only knights stand on plinths.
					if pc.Type != Knight {
						return fmt.Errorf("%w: %q on plinth", ErrMalformedNotation, string(ch))
					}
					plinthPending = false
				}
				if file >= g.Files {
					return fmt.Errorf("%w: rank %q too long", ErrMalformedNotation, rankStr)
				}
				b.SetPiece(g.SquareAt(file, r), pc)
				file++
			}
		}
		flush()
		if plinthPending || promoted {
			return fmt.Errorf("%w: rank %q", ErrMalformedNotation, rankStr)
		}
		if file != g.Files {
			return fmt.Errorf("%w: rank %q covers %d of %d files", ErrMalformedNotation, rankStr, file, g.Files)
		}
	}
	return nil
}

// parseHandField fills the hand from a letter run, accepting decimal count
// prefixes ("2P" equals "PP").
func parseHandField(h *Hand, field string) error {
	count := 0
	for i := 0; i < len(field); i++ {
		ch := field[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			continue
		}
		pc := pieceFromChar(ch)
		if pc.IsEmpty() {
			return fmt.Errorf("%w: hand %q", ErrMalformedNotation, field)
		}
		if count == 0 {
			count = 1
		}
		for j := 0; j < count; j++ {
			h.Inc(pc)
		}
		count = 0
	}
	if count != 0 {
		return fmt.Errorf("%w: hand %q", ErrMalformedNotation, field)
	}
	return nil
}
