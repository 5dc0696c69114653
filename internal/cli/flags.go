package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/urlstate"
	"github.com/spf13/pflag"
)

// stateFlags are the flags every state-reading command shares.
type stateFlags struct {
	fs      *pflag.FlagSet
	values  map[domain.Factor]*float64
	link    string
	lang    string
	changed bool
}

func (f *stateFlags) register(fs *pflag.FlagSet) {
	f.fs = fs
	f.values = make(map[domain.Factor]*float64, len(domain.Factors))
	for _, factor := range domain.Factors {
		v := new(float64)
		f.values[factor] = v
		fs.Float64Var(v, string(factor), 0,
			fmt.Sprintf("%s share, %.0f-%.0f", factor, domain.SliderMin, domain.SliderMax))
	}
	fs.StringVar(&f.link, "url", "", "share link to start from")
	fs.StringVar(&f.lang, "lang", "", "language for this run (en|cs)")
}

// location builds the starting query. Slider flags override the raw values
// of --url; factors given by neither keep their default share. The result is
// normalized when the simulator reads it.
func (f *stateFlags) location() (*urlstate.Memory, error) {
	q := url.Values{}
	if f.link != "" {
		var err error
		if q, err = urlstate.ParseLink(f.link); err != nil {
			return nil, fmt.Errorf("invalid --url: %w", err)
		}
	}

	var given []domain.Factor
	for _, factor := range domain.Factors {
		if !f.fs.Changed(string(factor)) {
			continue
		}
		v := *f.values[factor]
		if !domain.InSliderRange(v) {
			return nil, fmt.Errorf("invalid --%s %v: must be between %.0f and %.0f",
				factor, v, domain.SliderMin, domain.SliderMax)
		}
		given = append(given, factor)
	}
	if len(given) == 0 {
		return urlstate.NewMemory(q), nil
	}

	if _, ok := urlstate.Decode(q); !ok {
		def := domain.DefaultState()
		for _, factor := range domain.Factors {
			q.Set(string(factor), formatFlag(def.Get(factor)))
		}
	}
	for _, factor := range given {
		q.Set(string(factor), formatFlag(*f.values[factor]))
	}
	return urlstate.NewMemory(q), nil
}

func formatFlag(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
