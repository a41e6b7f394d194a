package toolbox_test

import (
	"fmt"
	"testing"

	"github.com/sirkon/dstoolbox/internal/toolbox"
)

func ExampleHasBalancedParentheses() {
	fmt.Println(toolbox.HasBalancedParentheses("(()())"))
	fmt.Println(toolbox.HasBalancedParentheses("(()"))
	fmt.Println(toolbox.HasBalancedParentheses(")"))
	fmt.Println(toolbox.HasBalancedParentheses(""))

	// Output:
	// true
	// false
	// false
	// true
}

func TestHasBalancedParentheses(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "", want: true},
		{input: "()", want: true},
		{input: "(()())", want: true},
		{input: "(a + b) * (c - (d / e))", want: true},
		{input: "no parentheses at all", want: true},
		{input: "(()", want: false},
		{input: ")", want: false},
		{input: ")(", want: false},
		{input: "())(", want: false},
		{input: "[(])", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := toolbox.HasBalancedParentheses(tt.input); got != tt.want {
				t.Errorf("unexpected result %t for '%s'", got, tt.input)
			}
		})
	}
}

func TestCheckBalanced(t *testing.T) {
	opts := []toolbox.BalanceOpt{
		toolbox.WithBrackets('(', ')'),
		toolbox.WithBrackets('[', ']'),
		toolbox.WithBrackets('{', '}'),
	}

	tests := []struct {
		input string
		opts  []toolbox.BalanceOpt
		want  bool
	}{
		{input: "{[()]}", opts: opts, want: true},
		{input: "[(])", opts: opts, want: false},
		{input: "{", opts: opts, want: false},
		{input: "x]", opts: opts, want: false},
		{input: "(]", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('[', ']')}, want: false},
		{input: "(()", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('[', ']')}, want: true},
		{input: "«»«", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('«', '»')}, want: false},
		{input: "««»»", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('«', '»')}, want: true},
		{input: "||", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('|', '|')}, want: true},
		{input: "|x|y|", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('|', '|')}, want: false},
		{input: "(|a|)", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('(', ')'), toolbox.WithBrackets('|', '|')}, want: true},
		{input: "(|)|", opts: []toolbox.BalanceOpt{toolbox.WithBrackets('(', ')'), toolbox.WithBrackets('|', '|')}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := toolbox.CheckBalanced(tt.input, tt.opts...); got != tt.want {
				t.Errorf("unexpected result %t for '%s'", got, tt.input)
			}
		})
	}
}
