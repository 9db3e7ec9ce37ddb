package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/alexanderramin/workboard/internal/timescale"
	"github.com/spf13/pflag"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

type timescaleValue struct{ ts *timescale.Timescale }

var _ pflag.Value = (*timescaleValue)(nil)

func (v *timescaleValue) String() string { return string(*v.ts) }
func (v *timescaleValue) Type() string   { return "day|week|month" }

func (v *timescaleValue) Set(s string) error {
	ts, err := timescale.Parse(s)
	if err != nil {
		return err
	}
	*v.ts = ts
	return nil
}

type outputValue struct{ out *string }

func (v *outputValue) String() string { return *v.out }
func (v *outputValue) Type() string   { return "table|json" }

func (v *outputValue) Set(s string) error {
	switch s {
	case OutputTable, OutputJSON:
		*v.out = s
		return nil
	}
	return fmt.Errorf("invalid output %q (expected table or json)", s)
}

// dateValue is an optional YYYY-MM-DD flag. It stays nil until set.
type dateValue struct{ t **time.Time }

func (v *dateValue) String() string {
	if *v.t == nil {
		return ""
	}
	return domain.FormatDate(**v.t)
}

func (v *dateValue) Type() string { return "date" }

func (v *dateValue) Set(s string) error {
	d, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*v.t = &d
	return nil
}

func dateFlag(fs *pflag.FlagSet, target **time.Time, name, usage string) {
	fs.Var(&dateValue{t: target}, name, usage)
}
