package asm

import "fmt"

// Parser performs label binding and instruction parsing in a single pass
// over the token stream, as described in the package doc comment.
type Parser struct {
	lex  *Lexer
	tok  Token
	have bool
}

// NewParser creates a parser reading from src.
func NewParser(src string) *Parser {
	return &Parser{lex: NewLexer(src)}
}

func (p *Parser) next() (Token, error) {
	if p.have {
		p.have = false
		return p.tok, nil
	}
	return p.lex.Next()
}

func (p *Parser) putBack(t Token) {
	p.tok = t
	p.have = true
}

// Parse reads the full token stream and returns the instruction list
// alongside the symbol table binding labels to instruction indices.
func (p *Parser) Parse() (Program, SymbolTable, error) {
	prog := Program{}
	symbols := SymbolTable{}

	for {
		tok, err := p.next()
		if err != nil {
			return nil, nil, err
		}

		switch tok.Kind {
		case TokenEOF:
			return prog, symbols, nil

		case TokenNewline:
			continue

		case TokenIdent:
			// A bare label binds to the NEXT instruction's index and does
			// not itself occupy a slot. It may be followed, on the same
			// line, by the instruction it labels, or stand alone on its
			// own line with the instruction on the next; either way the
			// outer loop picks up whatever comes after.
			symbols[tok.Text] = uint16(len(prog))

		case TokenMnemonic:
			stmt, err := p.parseInstruction(tok)
			if err != nil {
				return nil, nil, err
			}

			prog = append(prog, stmt)

		default:
			return nil, nil, &SyntaxError{Line: tok.Line, Msg: fmt.Sprintf("unexpected token %q", tok.Text)}
		}
	}
}

// parseInstruction consumes the operand (if any) and the terminating
// newline or EOF for the instruction starting at mnemonic.
func (p *Parser) parseInstruction(mnemonic Token) (Statement, error) {
	stmt := Statement{Op: mnemonic.Op, Line: mnemonic.Line}

	if mnemonic.Op.HasOperand() {
		tok, err := p.next()
		if err != nil {
			return Statement{}, err
		}

		switch tok.Kind {
		case TokenNumber:
			stmt.Operand = Operand{Kind: OperandNumber, Value: tok.Num}

		case TokenIdent:
			stmt.Operand = Operand{Kind: OperandLabel, Label: tok.Text}

		case TokenNewline, TokenEOF:
			stmt.Operand = Operand{Kind: OperandNumber, Value: 0}
			p.putBack(tok)

		default:
			return Statement{}, &SyntaxError{Line: tok.Line, Msg: fmt.Sprintf("expected operand, got %q", tok.Text)}
		}
	}

	return stmt, p.expectTerminator()
}

// expectTerminator consumes exactly one newline or EOF after an
// instruction; any other token is a syntax error.
func (p *Parser) expectTerminator() error {
	tok, err := p.next()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case TokenNewline:
		return nil
	case TokenEOF:
		p.putBack(tok)
		return nil
	default:
		return &SyntaxError{Line: tok.Line, Msg: fmt.Sprintf("expected end of instruction, got %q", tok.Text)}
	}
}
