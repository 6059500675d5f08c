// builtin_math.go: native arithmetic and comparison procedures.
//
// All of these operate on Numbers only; the first non-Number argument is a
// type error naming the procedure. Division truncates toward zero and
// modulo keeps the dividend's sign, matching Go's integer operators.
package scheme

func registerMathBuiltins(s *Session) {
	s.Register("+", func(args []Value) (Value, error) {
		nums, err := numArgs("+", args, 1)
		if err != nil {
			return Value{}, err
		}
		var sum int64
		for _, n := range nums {
			sum += n
		}
		return Num(sum), nil
	})

	s.Register("*", func(args []Value) (Value, error) {
		nums, err := numArgs("*", args, 1)
		if err != nil {
			return Value{}, err
		}
		product := int64(1)
		for _, n := range nums {
			product *= n
		}
		return Num(product), nil
	})

	s.Register("-", func(args []Value) (Value, error) {
		nums, err := numArgs("-", args, 2)
		if err != nil {
			return Value{}, err
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc -= n
		}
		return Num(acc), nil
	})

	s.Register("/", func(args []Value) (Value, error) {
		nums, err := numArgs("/", args, 2)
		if err != nil {
			return Value{}, err
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			if n == 0 {
				return Value{}, &Error{Kind: ErrDivisionByZero, Msg: "division by zero"}
			}
			acc /= n
		}
		return Num(acc), nil
	})

	s.Register("modulo", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Value{}, errArity("modulo", 2, len(args))
		}
		nums, err := numArgs("modulo", args, 2)
		if err != nil {
			return Value{}, err
		}
		if nums[1] == 0 {
			return Value{}, &Error{Kind: ErrDivisionByZero, Msg: "division by zero"}
		}
		return Num(nums[0] % nums[1]), nil
	})

	registerCompare(s, "=", func(a, b int64) bool { return a == b })
	registerCompare(s, "<", func(a, b int64) bool { return a < b })
	registerCompare(s, ">", func(a, b int64) bool { return a > b })
}

// registerCompare installs a chained variadic comparison: every adjacent
// pair must satisfy ok. A single argument is vacuously true.
func registerCompare(s *Session, name string, ok func(a, b int64) bool) {
	s.Register(name, func(args []Value) (Value, error) {
		nums, err := numArgs(name, args, 1)
		if err != nil {
			return Value{}, err
		}
		for i := 0; i+1 < len(nums); i++ {
			if !ok(nums[i], nums[i+1]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	})
}

// numArgs checks the argument floor and that every argument is a Number,
// then unboxes them.
func numArgs(name string, args []Value, atLeast int) ([]int64, error) {
	if len(args) < atLeast {
		return nil, errArityAtLeast(name, atLeast, len(args))
	}
	nums := make([]int64, len(args))
	for i, a := range args {
		if a.Tag != VTNum {
			return nil, errType(name, "Number", a.Tag)
		}
		nums[i] = a.Data.(int64)
	}
	return nums, nil
}
