package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yuya-isaka/bisection/bisect"
	"github.com/yuya-isaka/bisection/bound"
	"github.com/yuya-isaka/bisection/config"
	"github.com/yuya-isaka/bisection/order"
)

// request is one search or insort as given on the command line.
type request struct {
	bias   bisect.Bias
	kind   string
	window bound.Range
	fold   bool
	desc   bool
	target string
	values []string
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("bias", "right", "Where the target lands among equal values: 'left' or 'right'")
	cmd.Flags().String("type", "int", "Value type: 'int', 'float' or 'string'")
	cmd.Flags().String("range", "..", "Window to search, e.g. '2..5', '..=4', '3..'")
	cmd.Flags().Bool("fold", false, "Order strings case-insensitively")
	cmd.Flags().Bool("desc", false, "The sequence is sorted in descending order")
}

// bindSearchFlags is run as PreRunE, so only the running command's flags feed the config.
func (a *app) bindSearchFlags(cmd *cobra.Command, args []string) error {
	for key, name := range map[string]string{
		config.ConfigBias:       "bias",
		config.ConfigType:       "type",
		config.ConfigRange:      "range",
		config.ConfigFold:       "fold",
		config.ConfigDescending: "desc",
	} {
		if err := a.conf.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newRequest(cmd *cobra.Command, args []string) (*request, error) {
	bias, err := bisect.ParseBias(a.conf.GetString(config.ConfigBias))
	if err != nil {
		return nil, err
	}
	window, err := bound.Parse(a.conf.GetString(config.ConfigRange))
	if err != nil {
		return nil, err
	}

	req := &request{
		bias:   bias,
		kind:   strings.ToLower(a.conf.GetString(config.ConfigType)),
		window: window,
		fold:   a.conf.GetBool(config.ConfigFold),
		desc:   a.conf.GetBool(config.ConfigDescending),
		target: args[0],
		values: args[1:],
	}
	if req.fold && req.kind != "string" {
		return nil, fmt.Errorf("--fold only applies to --type string, got %s", req.kind)
	}

	if len(req.values) == 0 {
		req.values, err = readValues(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
	}

	a.log.WithFields(logrus.Fields{
		"bias":   req.bias,
		"type":   req.kind,
		"range":  req.window,
		"fold":   req.fold,
		"desc":   req.desc,
		"values": len(req.values),
	}).Debug("request")
	return req, nil
}

func readValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		values = append(values, scanner.Text())
	}
	return values, scanner.Err()
}

// outcome is the typed result of a request, rendered back to text.
type outcome struct {
	index  int
	values []string
}

func (a *app) run(req *request, insert bool) (*outcome, error) {
	switch req.kind {
	case "int":
		return execute(a, req, insert, parseInt, order.Compare[int64], formatInt)
	case "float":
		return execute(a, req, insert, parseFloat, order.Compare[float64], formatFloat)
	case "string":
		cmp := order.Compare[string]
		if req.fold {
			cmp = order.By(strings.ToLower)
		}
		return execute(a, req, insert, parseString, cmp, formatString)
	}
	return nil, fmt.Errorf("invalid type %q: want int, float or string", req.kind)
}

func execute[E any](a *app, req *request, insert bool,
	parse func(string) (E, error), cmp func(x, y E) order.Ordering, format func(E) string) (*outcome, error) {
	if req.desc {
		asc := cmp
		cmp = func(l, r E) order.Ordering { return order.Reverse(asc(l, r)) }
	}

	x, err := parse(req.target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	values := make([]E, 0, len(req.values)+1)
	for i, s := range req.values {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values = append(values, v)
	}

	if err := req.window.Validate(len(values)); err != nil {
		return nil, err
	}
	if i := unsortedAt(values, cmp); i > 0 {
		a.log.Warnf("values are not sorted at index %d, the result is unspecified", i)
	}

	probe := order.Target(x, cmp)
	res := &outcome{index: bisect.Search(values, req.window, req.bias, probe)}
	a.log.WithField("index", res.index).Debugf("%s bisect of %s in %s", req.bias, req.target, req.window)

	if insert {
		if req.bias == bisect.BiasLeft {
			values = bisect.InsortLeftInFunc(values, x, req.window, cmp)
		} else {
			values = bisect.InsortRightInFunc(values, x, req.window, cmp)
		}
		res.values = make([]string, len(values))
		for i, v := range values {
			res.values[i] = format(v)
		}
	}
	return res, nil
}

// unsortedAt returns the first index whose element sorts before its predecessor, or 0.
func unsortedAt[E any](values []E, cmp func(a, b E) order.Ordering) int {
	for i := 1; i < len(values); i++ {
		if cmp(values[i], values[i-1]) == order.Less {
			return i
		}
	}
	return 0
}

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseString(s string) (string, error) { return s, nil }

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func formatString(v string) string { return v }
