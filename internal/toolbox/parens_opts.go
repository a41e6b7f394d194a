package toolbox

// BalanceOpt определение опции проверки скобок.
type BalanceOpt func(o *balanceOptions, _ balanceOptRestriction)

type balanceOptRestriction struct{}

type balanceOptions struct {
	openers map[rune]struct{}
	closers map[rune]rune
}

// WithBrackets добавляет пару скобок к проверяемым. Если пара задана хотя бы
// одна, круглые скобки проверяются только когда они тоже переданы явно.
// Пара может состоять из одного символа (например '|'), тогда он закрывает
// последнюю открытую такую же скобку, а иначе открывает новую.
func WithBrackets(opening, closing rune) BalanceOpt {
	return func(o *balanceOptions, _ balanceOptRestriction) {
		if o.openers == nil {
			o.openers = map[rune]struct{}{}
			o.closers = map[rune]rune{}
		}

		o.openers[opening] = struct{}{}
		o.closers[closing] = opening
	}
}
