package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT // Base, count, Int

	// Keywords
	CLASS
	ATTR
	DEF
	STATIC
	CLASSMETHOD
	SIGNATURE

	// Operators
	ARROW // ->

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case CLASS:
		return "CLASS"
	case ATTR:
		return "ATTR"
	case DEF:
		return "DEF"
	case STATIC:
		return "STATIC"
	case CLASSMETHOD:
		return "CLASSMETHOD"
	case SIGNATURE:
		return "SIGNATURE"
	case ARROW:
		return "ARROW"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case COMMA:
		return "COMMA"
	case COLON:
		return "COLON"
	case SEMICOLON:
		return "SEMICOLON"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// keywords maps keyword literals to their token types
var keywords = map[string]TokenType{
	"class":       CLASS,
	"attr":        ATTR,
	"def":         DEF,
	"static":      STATIC,
	"classmethod": CLASSMETHOD,
	"signature":   SIGNATURE,
}

// LookupIdent returns the keyword token type for an identifier, or IDENT
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
