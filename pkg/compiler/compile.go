package compiler

// Compile runs the full pipeline over one source string and returns the
// NASM assembly text. The first error from any phase aborts the
// compilation; compiling the same source twice yields identical assembly.
func Compile(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}
	arena := NewArena(DefaultArenaSize)
	prog, err := Parse(tokens, arena)
	if err != nil {
		return "", err
	}
	return Generate(prog)
}
