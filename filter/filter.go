package filter

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/0xPolygon/postman/message"
	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CalldataFilterConfig selects messages by their decoded calldata
type CalldataFilterConfig struct {
	// Expression is evaluated against the message. Available variables: from, to, fee, value and
	// calldata.funcSignature, calldata.params.<name>. JSONPath selectors ($.calldata...) are supported
	Expression string `mapstructure:"Expression"`
	// FunctionInterface is the Solidity signature used to decode the calldata, e.g.
	// "function transfer(address to, uint256 amount)"
	FunctionInterface string `mapstructure:"FunctionInterface"`
}

// Config holds the event filters of one listener
type Config struct {
	// FromAddressFilter only keeps messages sent by this address
	FromAddressFilter string `mapstructure:"FromAddressFilter"`
	// ToAddressFilter only keeps messages sent to this address
	ToAddressFilter string `mapstructure:"ToAddressFilter"`
	// CalldataFilter only keeps messages whose calldata matches
	CalldataFilter CalldataFilterConfig `mapstructure:"CalldataFilter"`
}

// language is gval's full language extended with JSONPath and the "and"/"or" keywords
var language = gval.NewLanguage(
	gval.Full(),
	jsonpath.Language(),
	gval.InfixShortCircuit("and", func(a interface{}) (interface{}, bool) { return false, a == false }),
	gval.InfixBoolOperator("and", func(a, b bool) (interface{}, error) { return a && b, nil }),
	gval.InfixShortCircuit("or", func(a interface{}) (interface{}, bool) { return true, a == true }),
	gval.InfixBoolOperator("or", func(a, b bool) (interface{}, error) { return a || b, nil }),
	gval.Precedence("and", 20),
	gval.Precedence("or", 10),
)

// EventFilter decides which sent messages are eligible for claiming
type EventFilter struct {
	From *common.Address
	To   *common.Address

	expression gval.Evaluable
	method     *abi.Method
}

// New validates cfg and compiles its calldata expression
func New(cfg Config) (*EventFilter, error) {
	f := &EventFilter{}
	var err error
	if f.From, err = parseAddress("FromAddressFilter", cfg.FromAddressFilter); err != nil {
		return nil, err
	}
	if f.To, err = parseAddress("ToAddressFilter", cfg.ToAddressFilter); err != nil {
		return nil, err
	}

	if cfg.CalldataFilter.Expression != "" {
		f.expression, err = language.NewEvaluable(cfg.CalldataFilter.Expression)
		if err != nil {
			return nil, fmt.Errorf("invalid calldata filter expression: %w", err)
		}
	}
	if cfg.CalldataFilter.FunctionInterface != "" {
		method, err := ParseFunction(cfg.CalldataFilter.FunctionInterface)
		if err != nil {
			return nil, err
		}
		f.method = &method
	}
	return f, nil
}

func parseAddress(field, value string) (*common.Address, error) {
	if value == "" {
		return nil, nil
	}
	if !common.IsHexAddress(value) {
		return nil, fmt.Errorf("%s: invalid address %q", field, value)
	}
	addr := common.HexToAddress(value)
	return &addr, nil
}

// HasCalldataFilter reports whether a calldata expression is configured
func (f *EventFilter) HasCalldataFilter() bool {
	return f != nil && f.expression != nil
}

// MatchesCalldata evaluates the calldata expression against ev. Events pass when no expression is
// configured. Evaluation errors are returned together with false
func (f *EventFilter) MatchesCalldata(ctx context.Context, ev message.SentEvent) (bool, error) {
	if !f.HasCalldataFilter() {
		return true, nil
	}
	return f.expression.EvalBool(ctx, f.parameters(ev))
}

// parameters builds the variables the expression is evaluated against
func (f *EventFilter) parameters(ev message.SentEvent) map[string]interface{} {
	calldata := map[string]interface{}{
		"funcSignature": "0x",
		"params":        map[string]interface{}{},
	}
	if len(ev.Calldata) >= 4 {
		calldata["funcSignature"] = hexutil.Encode(ev.Calldata[:4])
	}
	if f.method != nil && len(ev.Calldata) >= 4 && bytes.Equal(ev.Calldata[:4], f.method.ID) {
		if values, err := f.method.Inputs.Unpack(ev.Calldata[4:]); err == nil {
			calldata["params"] = namedParams(f.method.Inputs, values)
		}
	}
	return map[string]interface{}{
		"from":        ev.MessageSender.Hex(),
		"to":          ev.Destination.Hex(),
		"fee":         normalize(reflect.ValueOf(ev.Fee)),
		"value":       normalize(reflect.ValueOf(ev.Value)),
		"messageHash": ev.MessageHash.Hex(),
		"calldata":    calldata,
	}
}

// namedParams maps the decoded arguments by name. A single tuple argument is flattened so its
// fields are reachable as calldata.params.<field>
func namedParams(args abi.Arguments, values []interface{}) map[string]interface{} {
	params := make(map[string]interface{}, len(values))
	for i, v := range values {
		params[args[i].Name] = normalize(reflect.ValueOf(v))
	}
	if len(args) == 1 && args[0].Type.T == abi.TupleTy {
		if fields, ok := params[args[0].Name].(map[string]interface{}); ok {
			for k, v := range fields {
				if _, exists := params[k]; !exists {
					params[k] = v
				}
			}
		}
	}
	return params
}

var (
	bigIntType  = reflect.TypeOf((*big.Int)(nil))
	addressType = reflect.TypeOf(common.Address{})
)

// normalize converts decoded ABI values to the types gval compares: numbers to float64,
// addresses and byte strings to hex, tuples to maps
func normalize(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	switch {
	case v.Type() == bigIntType:
		if v.IsNil() {
			return float64(0)
		}
		f, _ := new(big.Float).SetInt(v.Interface().(*big.Int)).Float64()
		return f
	case v.Type() == addressType:
		return v.Interface().(common.Address).Hex()
	}

	switch v.Kind() {
	case reflect.Bool, reflect.String:
		return v.Interface()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Array, reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return hexutil.Encode(b)
		}
		items := make([]interface{}, v.Len())
		for i := range items {
			items[i] = normalize(v.Index(i))
		}
		return items
	case reflect.Struct:
		fields := make(map[string]interface{}, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			name := strings.Split(field.Tag.Get("json"), ",")[0]
			if name == "" {
				name = field.Name
			}
			fields[name] = normalize(v.Field(i))
		}
		return fields
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return normalize(v.Elem())
	default:
		return v.Interface()
	}
}
