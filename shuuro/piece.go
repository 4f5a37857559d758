package shuuro

// Color identifies the owner of a piece. NoColor is used for plinth squares,
// which belong to the board rather than to either player.
type Color uint8

const (
	Red     Color = 0 // uppercase letters, home rank 1
	Blue    Color = 1 // lowercase letters, home rank at the far side
	NoColor Color = 2
)

// Flip returns the opposing color. NoColor flips to itself.
func (c Color) Flip() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoColor
}

// Index returns the color as an array index in [0, 1].
func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "nocolor"
}

// PieceType is a colorless piece kind used for table lookups and hand counts.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	King        PieceType = 1
	Queen       PieceType = 2
	Rook        PieceType = 3
	Bishop      PieceType = 4
	Knight      PieceType = 5
	Pawn        PieceType = 6

	// Fairy pieces (ShuuroFairy variant).
	Chancellor PieceType = 7 // rook + knight
	ArchBishop PieceType = 8 // bishop + knight
	Giraffe    PieceType = 9  // (4,1) leaper
	Lance      PieceType = 10 // forward-only slider
)

const pieceTypeCount = 11

// handOrder is the canonical piece ordering used by hand and shop rendering.
var handOrder = [...]PieceType{King, Queen, Rook, Bishop, Knight, Pawn, Chancellor, ArchBishop, Giraffe, Lance}

// Letter returns the uppercase notation letter for the piece type.
func (pt PieceType) Letter() byte {
	switch pt {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	case Chancellor:
		return 'C'
	case ArchBishop:
		return 'A'
	case Giraffe:
		return 'G'
	case Lance:
		return 'E'
	}
	return '?'
}

// pieceTypeFromLetter maps an uppercase notation letter to its piece type.
// Returns NoPieceType for unknown letters.
func pieceTypeFromLetter(ch byte) PieceType {
	switch ch {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	case 'C':
		return Chancellor
	case 'A':
		return ArchBishop
	case 'G':
		return Giraffe
	case 'E':
		return Lance
	}
	return NoPieceType
}

// Promotable reports whether the type may promote. Only pawns promote; a
// promoted pawn moves like a queen.
func (pt PieceType) Promotable() bool { return pt == Pawn }

func (pt PieceType) String() string {
	switch pt {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	case Chancellor:
		return "chancellor"
	case ArchBishop:
		return "archbishop"
	case Giraffe:
		return "giraffe"
	case Lance:
		return "lance"
	}
	return "none"
}

// Piece is a colored piece, possibly carrying the promoted flag. The zero
// value is the empty piece.
type Piece struct {
	Type     PieceType
	Color    Color
	Promoted bool
}

// NoPiece is the empty piece occupying vacant squares.
var NoPiece = Piece{}

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

// Letter returns the notation letter with case carrying the color.
func (p Piece) Letter() byte {
	ch := p.Type.Letter()
	if p.Color == Blue {
		ch += 'a' - 'A'
	}
	return ch
}

// SFEN returns the notation form of the piece, with the promoted prefix.
func (p Piece) SFEN() string {
	if p.Promoted {
		return "+" + string(p.Letter())
	}
	return string(p.Letter())
}

// Unpromote strips the promoted flag.
func (p Piece) Unpromote() Piece {
	p.Promoted = false
	return p
}

// pieceFromChar converts a notation letter to a concrete piece. Lowercase is
// Blue, uppercase Red. Returns NoPiece for unknown letters.
func pieceFromChar(ch byte) Piece {
	color := Red
	if ch >= 'a' && ch <= 'z' {
		color = Blue
		ch -= 'a' - 'A'
	}
	pt := pieceTypeFromLetter(ch)
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece{Type: pt, Color: color}
}
