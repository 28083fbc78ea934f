package talib

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hsiuhsiu/talib-go/internal/bindings"
	"github.com/hsiuhsiu/talib-go/pkg/talib/logging"
)

// Library represents an initialised TA-Lib. The indicator functions of this
// package do not need one; it exists to apply Config and to reach the
// native function catalogue.
type Library struct {
	mu     sync.Mutex
	cfg    Config
	log    logging.Logger
	closed bool
}

// Open initialises TA-Lib and applies cfg.
func Open(cfg Config) (*Library, error) {
	log := cfg.logger()
	ctx := context.Background()

	if err := codeError("Open", bindings.Initialize()); err != nil {
		return nil, err
	}
	log.Debug(ctx, "ta-lib initialised", "backend", bindings.Backend(), "version", bindings.Version())

	if err := apply(cfg); err != nil {
		if serr := codeError("Open", bindings.Shutdown()); serr != nil {
			log.Debug(ctx, "ta-lib shutdown failed", "error", serr)
		}
		log.Debug(ctx, "ta-lib configuration rejected", "error", err)
		return nil, err
	}
	log.Debug(ctx, "ta-lib configured", "compatibility", cfg.Compatibility, "unstable", len(cfg.UnstablePeriods))

	return &Library{cfg: cfg, log: log}, nil
}

func apply(cfg Config) error {
	if err := SetCompatibility(cfg.Compatibility); err != nil {
		return err
	}
	names := make([]string, 0, len(cfg.UnstablePeriods))
	for name := range cfg.UnstablePeriods {
		names = append(names, name)
	}
	// ALL must not override the specific entries.
	sort.Slice(names, func(i, j int) bool {
		ai, aj := strings.EqualFold(names[i], "ALL"), strings.EqualFold(names[j], "ALL")
		if ai != aj {
			return ai
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		if err := SetUnstablePeriod(name, cfg.UnstablePeriods[name]); err != nil {
			return err
		}
	}
	return nil
}

// Close shuts TA-Lib down. The method is idempotent, returning
// ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrLibraryClosed
	}
	if err := codeError("Close", bindings.Shutdown()); err != nil {
		return err
	}
	l.closed = true
	l.log.Debug(context.Background(), "ta-lib shut down")
	return nil
}

// ParamInfo describes one input, optional input or output of a native
// TA-Lib function.
type ParamInfo struct {
	Name        string
	DisplayName string
	Type        string
	Default     float64
	Hint        string
}

// FunctionInfo describes a native TA-Lib function.
type FunctionInfo struct {
	Name      string
	Group     string
	Hint      string
	CamelCase string
	Inputs    []ParamInfo
	OptInputs []ParamInfo
	Outputs   []ParamInfo
}

// Functions walks the native abstract interface and returns every function
// TA-Lib exposes, grouped in TA-Lib's order. It returns ErrNotBuilt without
// the native library.
func (l *Library) Functions() ([]FunctionInfo, error) {
	if l == nil {
		return nil, ErrNotInitialized
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrLibraryClosed
	}

	groups, err := bindings.Groups()
	if err != nil {
		return nil, remapError(err)
	}
	var out []FunctionInfo
	for _, g := range groups {
		names, err := bindings.Functions(g)
		if err != nil {
			return nil, remapError(err)
		}
		for _, name := range names {
			fi, err := bindings.GetFuncInfo(name)
			if err != nil {
				return nil, remapError(err)
			}
			out = append(out, functionInfo(fi))
		}
	}
	l.log.Debug(context.Background(), "listed native functions", "groups", len(groups), "functions", len(out))
	return out, nil
}

func functionInfo(fi bindings.FuncInfo) FunctionInfo {
	return FunctionInfo{
		Name:      fi.Name,
		Group:     fi.Group,
		Hint:      fi.Hint,
		CamelCase: fi.CamelCase,
		Inputs:    paramInfos(fi.Inputs),
		OptInputs: paramInfos(fi.OptInputs),
		Outputs:   paramInfos(fi.Outputs),
	}
}

func paramInfos(ps []bindings.ParamInfo) []ParamInfo {
	if len(ps) == 0 {
		return nil
	}
	out := make([]ParamInfo, len(ps))
	for i, p := range ps {
		out[i] = ParamInfo{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Type:        p.Type.String(),
			Default:     p.DefaultValue,
			Hint:        p.Hint,
		}
	}
	return out
}
