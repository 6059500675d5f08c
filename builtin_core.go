// builtin_core.go: native list and logic procedures.
//
// Lists are immutable: cons copies, car and cdr share the tail slice but
// nothing ever writes through it. cons builds proper lists only, so its
// second argument must already be a List or the empty list.
package scheme

func registerCoreBuiltins(s *Session) {
	s.Register("not", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Value{}, errArity("not", 1, len(args))
		}
		return Bool(!truthy(args[0])), nil
	})

	s.Register("list", func(args []Value) (Value, error) {
		return ListOf(args...), nil
	})

	s.Register("cons", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Value{}, errArity("cons", 2, len(args))
		}
		switch args[1].Tag {
		case VTEmpty:
			return ListOf(args[0]), nil
		case VTList:
			tail := args[1].Items()
			items := make([]Value, 0, len(tail)+1)
			items = append(items, args[0])
			items = append(items, tail...)
			return ListOf(items...), nil
		default:
			return Value{}, errType("cons", "a List", args[1].Tag)
		}
	})

	s.Register("car", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Value{}, errArity("car", 1, len(args))
		}
		if args[0].Tag != VTList {
			return Value{}, errType("car", "a non-empty List", args[0].Tag)
		}
		return args[0].Items()[0], nil
	})

	s.Register("cdr", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Value{}, errArity("cdr", 1, len(args))
		}
		if args[0].Tag != VTList {
			return Value{}, errType("cdr", "a non-empty List", args[0].Tag)
		}
		return ListOf(args[0].Items()[1:]...), nil
	})
}
