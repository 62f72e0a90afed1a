/*
Package hl implements the front-end compiler: a lexer and recursive-descent
parser for a small imperative source language, an AST, and a code generator
that lowers the AST to the textual assembly the asm package consumes.

Grammar, EBNF:

	program := stmt*
	stmt    := "let" IDENT ("=" expr)? ";" | IDENT "=" expr ";"
	         | "use" IDENT ";" | "return" expr? ";" | "halt" ";"
	         | "fn" IDENT "(" (IDENT ("," IDENT)*)? ")" "{" stmt* "}"
	         | "if" expr "{" stmt* "}" ("elif" expr "{" stmt* "}")* ("else" "{" stmt* "}")?
	         | "while" expr "{" stmt* "}"
	         | "for" "(" stmt expr ";" (IDENT "=" expr | expr) ")" "{" stmt* "}"
	         | expr ";"
	expr    := expr op expr | IDENT "(" (expr ("," expr)*)? ")" | IDENT | NUMBER | STRING | "(" expr ")"
	op      := "+" | "-" | "==" | "!=" | "<" | ">" | "<=" | ">="

Expressions are parsed by precedence climbing (see Parser.parseExpr);
statements are parsed by straightforward recursive descent. CodeGen then
walks the resulting AST once, emitting one line of assembly at a time and
threading four pieces of compiler state through the walk: a constants
pool, a synthetic-label counter, a temporary counter, and the advisory set
of declared names.
*/
package hl
