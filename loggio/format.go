package loggio

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// truncationSuffix marks a message cut short for exceeding the configured
// length limit.
const truncationSuffix = "...[truncated]"

// UserContext is an optional per-call mapping carrying an authenticated
// identifier. When it contains a "uid" key, the value is prefixed into the
// emitted line. Pass it after the substitution arguments:
//
//	logger.Info("order shipped: %s", orderID, loggio.UserContext{"uid": "user123"})
type UserContext map[string]any

// uid returns the recognized identifier, if present and non-empty.
func (u UserContext) uid() (string, bool) {
	v, ok := u["uid"]
	if !ok {
		return "", false
	}
	s := fmt.Sprint(v)
	return s, s != ""
}

// Per-call overrides. These are typed values appended after the
// substitution arguments, so they can never be mistaken for placeholder
// arguments:
//
//	logger.Info("payload: %s", payload, loggio.JSONEncode(true))
//	logger.Info("dump: %s", blob, loggio.Truncate(false))
//	logger.Info("head: %s", blob, loggio.TruncateLength(100))
type (
	// JSONEncode overrides the logger's JSONFormat setting for one call.
	JSONEncode bool
	// Truncate overrides the logger's Truncate setting for one call.
	Truncate bool
	// TruncateLength overrides the logger's TruncateLength for one call.
	TruncateLength int
)

// callOptions collects the trailing typed values of a log call. Unset
// fields fall back to the logger config.
type callOptions struct {
	user           UserContext
	jsonFormat     *bool
	truncate       *bool
	truncateLength *int
}

// splitCallOptions strips trailing option values from a log call's argument
// list and returns the remaining substitution arguments.
func splitCallOptions(args []any) ([]any, callOptions) {
	var opts callOptions
	for len(args) > 0 {
		switch v := args[len(args)-1].(type) {
		case UserContext:
			opts.user = v
		case JSONEncode:
			b := bool(v)
			opts.jsonFormat = &b
		case Truncate:
			b := bool(v)
			opts.truncate = &b
		case TruncateLength:
			n := int(v)
			opts.truncateLength = &n
		default:
			return args, opts
		}
		args = args[:len(args)-1]
	}
	return args, opts
}

// formatMessage applies percent-style positional substitution of args into
// template. With no arguments the template passes through untouched, so
// literal percent signs in plain messages are harmless. Any mismatch
// between placeholders and arguments returns a *FormatMismatchError; the
// caller degrades to a fallback body rather than dropping the record.
func formatMessage(template string, args []any, jsonFormat bool) (string, error) {
	if len(args) == 0 {
		return template, nil
	}

	n, err := countPlaceholders(template)
	if err != nil {
		return "", err
	}
	if n != len(args) {
		return "", &FormatMismatchError{
			Template: template,
			Detail:   fmt.Sprintf("%d placeholder(s), %d argument(s)", n, len(args)),
		}
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))
	argIdx := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if template[i] == '%' {
			b.WriteByte('%')
			continue
		}
		rendered, err := renderArg(args[argIdx], template[i], jsonFormat)
		if err != nil {
			return "", &FormatMismatchError{Template: template, Detail: err.Error()}
		}
		b.WriteString(rendered)
		argIdx++
	}
	return b.String(), nil
}

// countPlaceholders counts substitution verbs in template, treating %% as a
// literal percent. A bare trailing % is a malformed template.
func countPlaceholders(template string) (int, error) {
	n := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 >= len(template) {
			return 0, &FormatMismatchError{Template: template, Detail: "template ends with a bare %"}
		}
		i++
		if template[i] != '%' {
			n++
		}
	}
	return n, nil
}

// argVariant tags the closed set of supported argument types. Each variant
// has an explicit formatter; anything outside the set is rejected instead
// of being silently stringified.
type argVariant int

const (
	variantString argVariant = iota
	variantInt
	variantUint
	variantFloat
	variantBool
	variantStructured
)

// classifyArg maps an argument to its variant.
func classifyArg(arg any) (argVariant, error) {
	switch arg.(type) {
	case string:
		return variantString, nil
	case bool:
		return variantBool, nil
	case int, int8, int16, int32, int64:
		return variantInt, nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return variantUint, nil
	case float32, float64:
		return variantFloat, nil
	case error, fmt.Stringer:
		return variantString, nil
	}
	if arg == nil {
		return 0, fmt.Errorf("unsupported argument type <nil>")
	}
	switch k := reflect.TypeOf(arg).Kind(); k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return variantStructured, nil
	case reflect.Pointer:
		elem := reflect.TypeOf(arg).Elem().Kind()
		if elem == reflect.Struct || elem == reflect.Map || elem == reflect.Slice || elem == reflect.Array {
			return variantStructured, nil
		}
	}
	return 0, fmt.Errorf("unsupported argument type %T", arg)
}

// renderArg formats one argument for one verb. With jsonFormat set, the
// argument is serialized to its JSON representation first and then treated
// as a string variant, matching how structured values render.
func renderArg(arg any, verb byte, jsonFormat bool) (string, error) {
	if jsonFormat {
		data, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("json encoding of %%%c argument failed: %v", verb, err)
		}
		return renderVariant(string(data), variantString, verb)
	}
	variant, err := classifyArg(arg)
	if err != nil {
		return "", err
	}
	return renderVariant(arg, variant, verb)
}

func renderVariant(arg any, variant argVariant, verb byte) (string, error) {
	switch verb {
	case 's', 'v':
		return renderDefault(arg, variant)
	case 'd':
		switch variant {
		case variantInt:
			return strconv.FormatInt(reflect.ValueOf(arg).Int(), 10), nil
		case variantUint:
			return strconv.FormatUint(reflect.ValueOf(arg).Uint(), 10), nil
		}
		return "", fmt.Errorf("%%d requires an integer, got %T", arg)
	case 'f':
		switch variant {
		case variantFloat:
			return strconv.FormatFloat(reflect.ValueOf(arg).Float(), 'f', 6, 64), nil
		case variantInt:
			return strconv.FormatFloat(float64(reflect.ValueOf(arg).Int()), 'f', 6, 64), nil
		case variantUint:
			return strconv.FormatFloat(float64(reflect.ValueOf(arg).Uint()), 'f', 6, 64), nil
		}
		return "", fmt.Errorf("%%f requires a number, got %T", arg)
	case 't':
		if variant == variantBool {
			return strconv.FormatBool(arg.(bool)), nil
		}
		return "", fmt.Errorf("%%t requires a boolean, got %T", arg)
	case 'q':
		if variant == variantString {
			s, err := renderDefault(arg, variant)
			if err != nil {
				return "", err
			}
			return strconv.Quote(s), nil
		}
		return "", fmt.Errorf("%%q requires a string, got %T", arg)
	case 'x':
		switch variant {
		case variantInt:
			return strconv.FormatInt(reflect.ValueOf(arg).Int(), 16), nil
		case variantUint:
			return strconv.FormatUint(reflect.ValueOf(arg).Uint(), 16), nil
		}
		return "", fmt.Errorf("%%x requires an integer, got %T", arg)
	default:
		return "", fmt.Errorf("unsupported verb %%%c", verb)
	}
}

// renderDefault formats a variant the way %s and %v render it.
func renderDefault(arg any, variant argVariant) (string, error) {
	switch variant {
	case variantString:
		switch v := arg.(type) {
		case string:
			return v, nil
		case error:
			return v.Error(), nil
		case fmt.Stringer:
			return v.String(), nil
		}
	case variantInt:
		return strconv.FormatInt(reflect.ValueOf(arg).Int(), 10), nil
	case variantUint:
		return strconv.FormatUint(reflect.ValueOf(arg).Uint(), 10), nil
	case variantFloat:
		return strconv.FormatFloat(reflect.ValueOf(arg).Float(), 'g', -1, 64), nil
	case variantBool:
		return strconv.FormatBool(arg.(bool)), nil
	case variantStructured:
		data, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("encoding structured argument failed: %v", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("unsupported argument type %T", arg)
}

// fallbackBody builds the degraded message used when formatting fails. The
// raw template is preserved so the record still carries its information.
func fallbackBody(template string, err error) string {
	detail := err.Error()
	var mismatch *FormatMismatchError
	if errors.As(err, &mismatch) {
		detail = mismatch.Detail
	}
	return fmt.Sprintf("%q (format error: %s)", template, detail)
}

// truncateMessage enforces the length limit in runes: messages over the
// limit are cut so that message plus suffix never exceeds it.
func truncateMessage(msg string, limit int) string {
	runes := []rune(msg)
	if len(runes) <= limit {
		return msg
	}
	if limit <= len(truncationSuffix) {
		return truncationSuffix[:limit]
	}
	return string(runes[:limit-len(truncationSuffix)]) + truncationSuffix
}
