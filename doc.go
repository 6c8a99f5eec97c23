/*
Package schwift implements an interpreter for schwift, a small dynamically
typed scripting language whose keywords come from Rick and Morty.

The interpreter is a tree walker. Source text is parsed into a list of
Statements, and a State executes them. Each State is a variable environment
attached to a VM, which holds what the whole program shares: the standard
streams, the logger, and the microverses (native libraries) loaded so far.

The interpreter can easily be embedded in another program. To start, use
NewVM to create the interpreter and its NewState method to create the
top-level environment. RunBuiltins defines the builtin functions, and
RunSource runs a program:

	vm := schwift.NewVM(os.Stdin, os.Stdout)
	s := vm.NewState()
	s.SetArgs(os.Args[2:])
	if err := s.RunBuiltins(); err != nil {
		// ...
	}
	err := s.RunSource(strings.NewReader(src), "prog.y")

Go functions become available to programs as microverses, either registered
statically with RegisterModule or built as plugins. See Library.

Schwift Primer

Hello world in schwift:

	show me what you got "Hello, world!"

Variables are assigned with squanch and deleted with squanch before the name:

	x squanch 5
	squanch x

Values are ints, floats, strings, bools (rick is true and morty is false),
lists, and functions. Every binary operation is written in parentheses, with
no precedence to remember:

	y squanch ((x * 2) + 1)
	big squanch (y moresquanch 10)

The operators are + - * / % == more less moresquanch lesssquanch and or, plus
the shifts <schwift and schwift>. Ints and floats mix freely, promoting to
float. Strings concatenate with + and repeat with *. Nothing converts to a
string implicitly. ! negates a bool.

Lists are created with on a cob and grown with assimilate:

	names on a cob
	names assimilate "Rick"
	names assimilate "Morty"
	names[1] squanch "Summer"
	squanch names[0]
	show me what you got names squanch

The last line prints the length of names. Strings can be indexed the same
way, producing one-character strings.

Blocks are delimited by :< and >:. Conditions must be bools:

	if (x less 10) :<
		show me what you got "small"
	>: else :<
		show me what you got "large"
	>:
	while (x more 0) :<
		x squanch (x - 1)
	>:

Functions are defined by name and parameters and must return a value.
Scoping is dynamic per call: a function sees only its own parameters and the
variables it creates, never its caller's.

	square(n) :<
		return (n * n)
	>:
	show me what you got square(4)

portal gun reads a line from standard input into a variable. show me what
you got! prints without a trailing newline.

Errors can be caught, though the error itself is never visible:

	normal plan :<
		show me what you got undefined
	>: plan for failure :<
		show me what you got "that's planning for failure"
	>:

Braces evaluate a string as an expression in the current scope:

	show me what you got {"(1 + 3)"}

Finally, microverse loads native functions:

	microverse "date" :<
		now()
		strftime()
	>:
*/
package schwift
