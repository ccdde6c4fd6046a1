// Package debug holds switches for tracing the lexer, parser, tree
// builder, encoder and language server. Each switch is read once from
// the environment:
//
//	SDL_DEBUG_LEX     log every token
//	SDL_DEBUG_PARSE   log parse tree productions
//	SDL_DEBUG_BUILD   log tags as they are built
//	SDL_DEBUG_ENCODE  log tags as they are encoded
//	SDL_DEBUG_MATCH   log tag pattern matching
//	SDL_DEBUG_LSP     log language server requests as json
package debug
