package lexer

import "strings"

type stateFn func(*Lexer) stateFn

func lexText(l *Lexer) stateFn {
	switch r := l.next(); {
	case r == eof:
		return l.emit(KindEOF)
	case strings.ContainsRune(layoutChars, r):
		l.acceptRun(layoutChars)
		l.ignore()
		return lexText
	case r == '=':
		return l.emit(KindAssign)
	case strings.ContainsRune(arithmeticGlyphs, r):
		return l.emit(KindArithmetic)
	case strings.ContainsRune(digits, r):
		return lexNumber
	case strings.ContainsRune(letters, r):
		return lexIdentifier
	default:
		// Let the grammar report it with its position.
		return l.emit(KindIllegal)
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	// A fraction needs at least one digit after the dot.
	if l.peek() == '.' && l.pos+1 < len(l.input) && strings.ContainsRune(digits, rune(l.input[l.pos+1])) {
		l.next()
		l.acceptRun(digits)
	}
	return l.emit(KindNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identifierChars)
	if l.input[l.start:l.pos] == KeywordOutput {
		return l.emit(KindOutput)
	}
	return l.emit(KindIdentifier)
}
