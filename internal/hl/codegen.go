package hl

// codegen.go lowers the AST to textual assembly. Every expression's value
// is left in the accumulator by convention; control flow and the calling
// convention are built entirely from the branch mnemonics and well-known
// memory cells the assembler and vm already understand.

import (
	"fmt"
	"strings"
)

// CodeGen holds the state threaded through one AST walk: the constants
// pool, the set of declared names (advisory; recorded but not otherwise
// consulted), and the counters for synthetic labels and temporaries.
type CodeGen struct {
	out       strings.Builder
	constants map[int32]string
	declared  map[string]bool
	labelN    int
	tempN     int
}

// NewCodeGen creates an empty code generator.
func NewCodeGen() *CodeGen {
	return &CodeGen{
		constants: map[int32]string{},
		declared:  map[string]bool{},
	}
}

// Compile parses and lowers src in one call.
func Compile(src string) (string, error) {
	prog, err := Parse(src)
	if err != nil {
		return "", err
	}

	return NewCodeGen().Generate(prog)
}

// Generate lowers prog to assembly text, framing it with the implicit
// entry point and trailing data section.
func (cg *CodeGen) Generate(prog *Block) (string, error) {
	cg.emit("call _main")
	cg.emit("hlt")

	if err := cg.genBlock(prog); err != nil {
		return "", err
	}

	// The constant pool's iteration order is unspecified; callers must not
	// depend on it.
	for value, label := range cg.constants {
		cg.emit("%s dat %d", label, value)
	}

	cg.emit("_ret dat 0")

	return cg.out.String(), nil
}

func (cg *CodeGen) emit(format string, args ...any) {
	fmt.Fprintf(&cg.out, format+"\n", args...)
}

func (cg *CodeGen) emitLabel(name string) {
	cg.out.WriteString(name)
	cg.out.WriteByte('\n')
}

func (cg *CodeGen) newLabel() string {
	l := fmt.Sprintf("_l%d", cg.labelN)
	cg.labelN++
	return l
}

func (cg *CodeGen) newTemp() string {
	t := fmt.Sprintf("_t%d", cg.tempN)
	cg.tempN++
	return t
}

func (cg *CodeGen) constLabel(v int32) string {
	if label, ok := cg.constants[v]; ok {
		return label
	}

	label := fmt.Sprintf("_%d", v)
	cg.constants[v] = label

	return label
}

func (cg *CodeGen) genBlock(b *Block) error {
	for _, stmt := range b.Stmts {
		if err := cg.genStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (cg *CodeGen) genStmt(n Node) error {
	switch s := n.(type) {
	case *Declaration:
		cg.declared[s.Name] = true
		cg.emit("%s dat 0", s.Name)

		if err := cg.genExpr(s.Expr); err != nil {
			return err
		}

		cg.emit("sta %s", s.Name)

	case *Assignment:
		if err := cg.genExpr(s.Expr); err != nil {
			return err
		}

		cg.emit("sta %s", s.Name)

	case *Library:
		text, ok := libraries[s.Name]
		if !ok {
			return &CodeGenError{Msg: fmt.Sprintf("unknown library %q", s.Name)}
		}

		cg.out.WriteString(text)

	case *Function:
		return cg.genFunction(s)

	case *Return:
		if err := cg.genExpr(s.Expr); err != nil {
			return err
		}

		cg.emit("sta _ret")
		cg.emit("ret")

	case *Halt:
		cg.emit("hlt")

	case *If:
		return cg.genIf(s)

	case *While:
		return cg.genWhile(s)

	case *For:
		return cg.genFor(s)

	case *Invocation:
		return cg.genInvocation(s)

	default:
		// A bare expression statement: its value lands in acc and is
		// discarded.
		return cg.genExpr(n)
	}

	return nil
}

// genFunction lowers a function to its label, a prologue that copies each
// well-known parameter cell into a locally named one, the body, and a
// trailing ret.
func (cg *CodeGen) genFunction(fn *Function) error {
	cg.emitLabel(fn.Name)

	for i, param := range fn.Params {
		cg.declared[param] = true
		cg.emit("%s dat 0", param)
		cg.emit("lda _p%d", i)
		cg.emit("sta %s", param)
	}

	if err := cg.genBlock(fn.Body); err != nil {
		return err
	}

	cg.emit("ret")

	return nil
}

// genInvocation lowers a call: arguments are copied into _p0.._pN, the
// call is made, and the result is loaded from _ret into acc.
func (cg *CodeGen) genInvocation(inv *Invocation) error {
	for i, arg := range inv.Args {
		pname := fmt.Sprintf("_p%d", i)
		cg.emit("%s dat 0", pname)

		if err := cg.genExpr(arg); err != nil {
			return err
		}

		cg.emit("sta %s", pname)
	}

	cg.emit("call %s", inv.Name)
	cg.emit("lda _ret")

	return nil
}

// genExpr lowers an expression, leaving its value in acc.
func (cg *CodeGen) genExpr(n Node) error {
	switch e := n.(type) {
	case *Number:
		cg.emit("lda %s", cg.constLabel(e.Value))

	case *Identifier:
		cg.emit("lda %s", e.Name)

	case *Infix:
		return cg.genInfix(e)

	case *Invocation:
		return cg.genInvocation(e)

	case *String:
		return &CodeGenError{Msg: "string literals cannot be evaluated as expressions"}

	default:
		return &CodeGenError{Msg: fmt.Sprintf("cannot generate code for %T", n)}
	}

	return nil
}

// genInfix lowers a binary expression. The rhs of an infix must be an
// atom at code-generation time: a Number or an Identifier. A compound rhs
// is spilled to a temporary cell before the lhs is computed, so that
// evaluating it does not clobber acc once the lhs is loaded (see the
// open-question note on infix right-hand sides).
func (cg *CodeGen) genInfix(e *Infix) error {
	rhs, err := cg.rhsOperand(e.RHS)
	if err != nil {
		return err
	}

	if err := cg.genExpr(e.LHS); err != nil {
		return err
	}

	cg.emit("%s %s", infixMnemonic(e.Op), rhs)

	return nil
}

func (cg *CodeGen) rhsOperand(n Node) (string, error) {
	switch v := n.(type) {
	case *Number:
		return cg.constLabel(v.Value), nil

	case *Identifier:
		return v.Name, nil

	default:
		tmp := cg.newTemp()
		cg.emit("%s dat 0", tmp)

		if err := cg.genExpr(n); err != nil {
			return "", err
		}

		cg.emit("sta %s", tmp)

		return tmp, nil
	}
}

// infixMnemonic maps an Infix operator to the instruction that computes
// it. Comparisons lower to sub; the branch that follows decides the
// outcome from the N/C flags sub leaves behind.
func infixMnemonic(op string) string {
	switch op {
	case "+":
		return "add"
	case "-":
		return "sub"
	default:
		return "sub"
	}
}

// branchMnemonics returns the branch instruction(s) that should fire when
// cond holds, given the flags left by genExpr(cond). An Infix condition
// dictates the table below; anything else falls back to bgt, which is
// true exactly when the loaded value is nonzero.
func branchMnemonics(cond Node) []string {
	inf, ok := cond.(*Infix)
	if !ok {
		return []string{"bgt"}
	}

	switch inf.Op {
	case "==":
		return []string{"brz"}
	case "!=":
		return []string{"bgt", "blt"}
	case "<":
		return []string{"blt"}
	case ">":
		return []string{"bgt"}
	case "<=":
		return []string{"blt", "brz"}
	case ">=":
		return []string{"bgt", "brz"}
	default:
		return []string{"bgt"}
	}
}

func (cg *CodeGen) genBranches(cond Node, target string) {
	if _, ok := cond.(*Infix); !ok {
		// lda leaves N as the last sub set it; adding zero clears N without
		// changing acc, so the bgt below tests acc alone.
		cg.emit("add %s", cg.constLabel(0))
	}

	for _, m := range branchMnemonics(cond) {
		cg.emit("%s %s", m, target)
	}
}

func (cg *CodeGen) genIf(n *If) error {
	lend := cg.newLabel()
	consLabels := make([]string, len(n.Conds))

	for i, c := range n.Conds {
		consLabels[i] = cg.newLabel()

		if err := cg.genExpr(c.Cond); err != nil {
			return err
		}

		cg.genBranches(c.Cond, consLabels[i])
	}

	if n.Else != nil {
		if err := cg.genBlock(n.Else); err != nil {
			return err
		}
	}

	cg.emit("bra %s", lend)

	for i, c := range n.Conds {
		cg.emitLabel(consLabels[i])

		if err := cg.genBlock(c.Body); err != nil {
			return err
		}

		cg.emit("bra %s", lend)
	}

	cg.emitLabel(lend)

	return nil
}

func (cg *CodeGen) genWhile(n *While) error {
	lbegin := cg.newLabel()
	lbody := cg.newLabel()
	lend := cg.newLabel()

	cg.emitLabel(lbegin)

	if err := cg.genExpr(n.Cond); err != nil {
		return err
	}

	cg.genBranches(n.Cond, lbody)
	cg.emit("bra %s", lend)

	cg.emitLabel(lbody)

	if err := cg.genBlock(n.Body); err != nil {
		return err
	}

	cg.emit("bra %s", lbegin)
	cg.emitLabel(lend)

	return nil
}

func (cg *CodeGen) genFor(n *For) error {
	if err := cg.genStmt(n.Decl); err != nil {
		return err
	}

	lloop := cg.newLabel()
	lbody := cg.newLabel()
	lend := cg.newLabel()

	cg.emitLabel(lloop)

	if err := cg.genExpr(n.Cond); err != nil {
		return err
	}

	cg.genBranches(n.Cond, lbody)
	cg.emit("bra %s", lend)

	cg.emitLabel(lbody)

	if err := cg.genBlock(n.Body); err != nil {
		return err
	}

	if err := cg.genStmt(n.Step); err != nil {
		return err
	}

	cg.emit("bra %s", lloop)
	cg.emitLabel(lend)

	return nil
}
