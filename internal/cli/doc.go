// Package cli implements the starlane command line.
//
//	starlane route     FILE FROM TO
//	starlane distances FILE FROM
//	starlane reach     FILE FROM [--max-depth N] [--max-risk R]
//	starlane dot       FILE [--from A --to B] [--rankdir LR]
//	starlane generate  OUT [--planets N] [--edges M] [--seed S] [--topology T] [--names scheme]
//	starlane stats     FILE
//	starlane diff      A B
//	starlane bench     [--sizes 10,100] [--format table|json|yaml]
//
// Exit codes: 0 success, 1 command failure, 2 bad configuration,
// 3 diff found differences.
package cli
