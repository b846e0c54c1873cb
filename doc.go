// Package calculator implements a safe arithmetic calculator core: a phrase
// normalizer that rewrites informal wording like "square root of 16" into
// canonical notation, and a restricted expression evaluator with variables.
//
// Expressions are lexed and parsed into a closed AST and interpreted over
// float64 values. The only names visible to an expression are the fixed
// function registry and the session's variable table, so no input string can
// reach I/O, the process, or the host runtime.
//
// A Session ties the two together for front ends: it detects the assignment
// form "name = expression", owns the variable table, and serializes use of it
// so one session can safely back concurrent callers.
package calculator
