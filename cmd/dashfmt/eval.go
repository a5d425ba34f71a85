package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/anomredux/dashfmt/internal/config"
	"github.com/anomredux/dashfmt/internal/format"
)

// evalFlags drive one-shot formatting of a single value.
type evalFlags struct {
	value      string
	typ        string
	decimals   int
	prefix     string
	suffix     string
	compact    bool
	sign       bool
	rawPercent bool
}

func (e *evalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&e.value, "eval", "", "format a single value and exit")
	fs.StringVar(&e.typ, "type", "", "format type for -eval: number, compact, currency, percent (empty picks automatically)")
	fs.IntVar(&e.decimals, "decimals", -1, "fixed fraction digits for -eval (-1 derives them)")
	fs.StringVar(&e.prefix, "prefix", "", "text before the formatted value")
	fs.StringVar(&e.suffix, "suffix", "", "text after the formatted value")
	fs.BoolVar(&e.compact, "compact", false, "compact currency output (e.g., $2.5M)")
	fs.BoolVar(&e.sign, "sign", false, "show + on positive values")
	fs.BoolVar(&e.rawPercent, "raw-percent", false, "percent input is already scaled (15 = 15%)")
}

func (e *evalFlags) set() bool {
	return e.value != ""
}

func (e *evalFlags) options(cfg config.Config) (format.Options, error) {
	o := format.Options{
		Locale:           cfg.Format.Locale,
		Currency:         cfg.Format.Currency,
		Prefix:           e.prefix,
		Suffix:           e.suffix,
		Compact:          e.compact,
		ShowPositiveSign: e.sign,
		Precision:        cfg.Format.Precision,
	}
	if e.typ != "" {
		t, ok := format.ParseType(e.typ)
		if !ok {
			return o, fmt.Errorf("unknown format type %q", e.typ)
		}
		o.Type = t
	}
	if e.decimals >= 0 {
		o.Decimals = format.Ptr(e.decimals)
	}
	if e.rawPercent {
		o.FromDecimal = format.Ptr(false)
	}
	return o, nil
}

// run formats the -eval value. Numeric input goes through the typed
// formatter, or Auto when no type is given; anything else passes through.
func (e *evalFlags) run(cfg config.Config) (string, error) {
	o, err := e.options(cfg)
	if err != nil {
		return "", err
	}
	n := json.Number(strings.TrimSpace(e.value))
	v, err := n.Float64()
	if err != nil || o.Type == format.TypeUnspecified {
		if err != nil {
			return format.Auto(e.value, o), nil
		}
		return format.Auto(v, o), nil
	}
	return format.Format(v, o), nil
}
