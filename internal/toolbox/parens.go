package toolbox

import "github.com/sirkon/dstoolbox/internal/dllist"

// HasBalancedParentheses проверка, что круглые скобки в input сбалансированы.
// Остальные символы игнорируются, пустая строка сбалансирована.
func HasBalancedParentheses(input string) bool {
	return CheckBalanced(input)
}

// CheckBalanced проверка сбалансированности скобок в input. Закрывающая скобка
// должна соответствовать последней незакрытой открывающей. Без опций
// проверяются только круглые скобки.
func CheckBalanced(input string, opts ...BalanceOpt) bool {
	var o balanceOptions
	for _, opt := range opts {
		opt(&o, balanceOptRestriction{})
	}
	if len(o.closers) == 0 {
		o.closers = map[rune]rune{')': '('}
		o.openers = map[rune]struct{}{'(': {}}
	}

	stack := dllist.New[rune]()
	for _, c := range input {
		if open, ok := o.closers[c]; ok && open == c {
			// Симметричная пара: символ закрывает, если последняя открытая скобка такая же.
			if last := stack.Last(); last != nil && last.Value() == c {
				stack.PopLast()
			} else {
				stack.Push(c)
			}
			continue
		}

		if _, ok := o.openers[c]; ok {
			stack.Push(c)
			continue
		}

		open, ok := o.closers[c]
		if !ok {
			continue
		}

		top, ok := stack.PopLast()
		if !ok || top != open {
			return false
		}
	}

	return stack.Len() == 0
}
