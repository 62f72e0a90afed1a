package asm

import "github.com/cmars/lilmac/internal/vm"

// TokenKind identifies the lexical category of a Token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNewline
	TokenMnemonic
	TokenIdent
	TokenNumber
)

// Token is one lexical unit of an assembly source file.
type Token struct {
	Kind TokenKind
	Text string
	Num  uint16
	Op   vm.Opcode // valid only when Kind == TokenMnemonic
	Line int
}

// mnemonics maps lower-cased keyword text to its opcode. call and ret are
// included alongside the base instruction set: the compiler emits both and
// the vm implements both, so the lexer must recognize them too.
var mnemonics = map[string]vm.Opcode{
	"hlt":  vm.HLT,
	"add":  vm.ADD,
	"sub":  vm.SUB,
	"lda":  vm.LDA,
	"sta":  vm.STA,
	"bra":  vm.BRA,
	"brz":  vm.BRZ,
	"bgt":  vm.BGT,
	"blt":  vm.BLT,
	"inp":  vm.INP,
	"out":  vm.OUT,
	"otc":  vm.OTC,
	"dat":  vm.DAT,
	"call": vm.CALL,
	"ret":  vm.RET,
}
