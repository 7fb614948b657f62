package gasmlang

type TokenKind uint8

const (
	TokenUnknown TokenKind = iota
	TokenOp
	TokenInt
	TokenString
)

type Op uint8

const (
	OpRight Op = iota + 1
	OpLeft
	OpInc
	OpDec
	OpMultiply
	OpDivide
	OpPrint
	OpPrintInt
	OpRead
	OpReadInt
	OpCell
	OpPos
	OpRandom
	OpParity
	OpOddity
	OpZero
	OpSigned
	OpNonZero
	OpPrime
	OpCompare
	OpQuit
	OpTapeLimit
	OpLoopOpen
	OpLoopClose
)

var symbols = map[rune]Op{
	'>': OpRight,
	'<': OpLeft,
	'+': OpInc,
	'-': OpDec,
	'*': OpMultiply,
	'/': OpDivide,
	'.': OpPrint,
	':': OpPrintInt,
	',': OpRead,
	';': OpReadInt,
	'$': OpCell,
	'#': OpPos,
	'r': OpRandom,
	'p': OpParity,
	'o': OpOddity,
	'z': OpZero,
	's': OpSigned,
	'n': OpNonZero,
	'q': OpPrime,
	'C': OpCompare,
	'Q': OpQuit,
	'L': OpTapeLimit,
	'[': OpLoopOpen,
	']': OpLoopClose,
}

type Token struct {
	Kind TokenKind
	Op   Op
	Int  int
	Text string
	Pos  Pos
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}
