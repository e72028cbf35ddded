package filter

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ParseFunction parses a Solidity function signature with named parameters, like
// "function claim((bytes32[] proof, uint256 number) params, address to)"
func ParseFunction(signature string) (abi.Method, error) {
	s := strings.TrimSpace(signature)
	s = strings.TrimPrefix(s, "function ")
	open := strings.Index(s, "(")
	if open <= 0 {
		return abi.Method{}, fmt.Errorf("invalid function signature %q", signature)
	}
	name := strings.TrimSpace(s[:open])

	p := &signatureParser{input: s, pos: open}
	args, err := p.parseList()
	if err != nil {
		return abi.Method{}, fmt.Errorf("invalid function signature %q: %w", signature, err)
	}

	inputs := make(abi.Arguments, 0, len(args))
	for _, arg := range args {
		typ, err := abi.NewType(arg.Type, "", arg.Components)
		if err != nil {
			return abi.Method{}, fmt.Errorf("invalid parameter %s of %q: %w", arg.Name, signature, err)
		}
		inputs = append(inputs, abi.Argument{Name: arg.Name, Type: typ})
	}
	return abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, inputs, nil), nil
}

type signatureParser struct {
	input string
	pos   int
}

func (p *signatureParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// parseList parses "(param, param, ...)" starting at an opening parenthesis
func (p *signatureParser) parseList() ([]abi.ArgumentMarshaling, error) {
	if p.pos >= len(p.input) || p.input[p.pos] != '(' {
		return nil, fmt.Errorf("expected '(' at %d", p.pos)
	}
	p.pos++
	p.skipSpaces()

	var args []abi.ArgumentMarshaling
	if p.pos < len(p.input) && p.input[p.pos] == ')' {
		p.pos++
		return args, nil
	}
	for {
		arg, err := p.parseParam(len(args))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unterminated parameter list")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
			p.skipSpaces()
		case ')':
			p.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("unexpected %q at %d", p.input[p.pos], p.pos)
		}
	}
}

func (p *signatureParser) parseParam(index int) (abi.ArgumentMarshaling, error) {
	var arg abi.ArgumentMarshaling
	if p.input[p.pos] == '(' {
		components, err := p.parseList()
		if err != nil {
			return arg, err
		}
		arg.Type = "tuple"
		arg.Components = components
	} else {
		arg.Type = p.parseWord()
		if arg.Type == "" {
			return arg, fmt.Errorf("expected a type at %d", p.pos)
		}
	}
	// array suffixes, e.g. [] or [3]
	for p.pos < len(p.input) && p.input[p.pos] == '[' {
		end := strings.IndexByte(p.input[p.pos:], ']')
		if end < 0 {
			return arg, fmt.Errorf("unterminated array type at %d", p.pos)
		}
		arg.Type += p.input[p.pos : p.pos+end+1]
		p.pos += end + 1
	}

	p.skipSpaces()
	word := p.parseWord()
	if word == "memory" || word == "calldata" || word == "indexed" {
		p.skipSpaces()
		word = p.parseWord()
	}
	arg.Name = word
	if arg.Name == "" {
		arg.Name = fmt.Sprintf("arg%d", index)
	}
	return arg, nil
}

func (p *signatureParser) parseWord() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}
